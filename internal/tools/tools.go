// Package tools binds the budget reports to the MCP tool surface. Handlers
// never fail the transport: every outcome, errors included, is returned as
// tool result content.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"ynabmcp/internal/core"
	"ynabmcp/internal/log"
	"ynabmcp/internal/services"
)

// Register adds the three YNAB tools to the server.
func Register(s *server.MCPServer, svc *services.ReportService, logger *log.Logger) {
	registerAccountBalances(s, svc, logger)
	registerBudgetSummary(s, svc, logger)
	registerIncomeForPeriod(s, svc, logger)
}

func registerAccountBalances(s *server.MCPServer, svc *services.ReportService, logger *log.Logger) {
	tool := mcp.NewTool("get_account_balances",
		mcp.WithDescription("Get account balances from YNAB budget"),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := svc.AccountBalances(ctx)
		if err != nil {
			logger.ErrorContext(ctx, "Tool call failed", log.FieldTool, "get_account_balances", log.FieldError, err)
			return mcp.NewToolResultError("Error fetching account balances: " + err.Error()), nil
		}
		return mcp.NewToolResultText(result), nil
	})
}

func registerBudgetSummary(s *server.MCPServer, svc *services.ReportService, logger *log.Logger) {
	tool := mcp.NewTool("get_budget_summary",
		mcp.WithDescription("Get budget name and basic info"),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := svc.BudgetSummary(ctx)
		if err != nil {
			logger.ErrorContext(ctx, "Tool call failed", log.FieldTool, "get_budget_summary", log.FieldError, err)
			return mcp.NewToolResultError("Error fetching budget info: " + err.Error()), nil
		}
		return mcp.NewToolResultText(result), nil
	})
}

func registerIncomeForPeriod(s *server.MCPServer, svc *services.ReportService, logger *log.Logger) {
	tool := mcp.NewTool("get_income_for_period",
		mcp.WithDescription("Get all true income transactions (not transfers) for the last N months (default 3). Argument: months (int, optional, default 3)"),
		mcp.WithNumber("months",
			mcp.Description("Number of trailing months to include"),
			mcp.Min(1),
			mcp.DefaultNumber(core.DefaultMonths),
		),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		months := mcp.ParseInt(request, "months", core.DefaultMonths)
		// The schema minimum is client-side only; re-check before any
		// upstream call is made.
		if months < 1 {
			return mcp.NewToolResultError("Error: " + core.ErrInvalidMonths.Error()), nil
		}
		result, err := svc.IncomeForPeriod(ctx, months)
		if err != nil {
			logger.ErrorContext(ctx, "Tool call failed", log.FieldTool, "get_income_for_period", log.FieldMonths, months, log.FieldError, err)
			return mcp.NewToolResultError("Error: " + err.Error()), nil
		}
		return mcp.NewToolResultText(result), nil
	})
}
