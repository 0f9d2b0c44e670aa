package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"ynabmcp/internal/config"
	"ynabmcp/internal/log"
	"ynabmcp/internal/services"
	"ynabmcp/internal/tools"
	"ynabmcp/internal/ynab"
)

const version = "1.0.0"

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	cfg := config.Load()

	logger := log.New(log.Config{
		Level:     cfg.SlogLevel(),
		Component: log.ComponentApp,
	})
	log.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}

	client, err := ynab.New(cfg.Token, cfg.BudgetID, cfg.BaseURL, cfg.HTTPTimeout)
	if err != nil {
		logger.Error("Failed to initialize YNAB client", log.FieldError, err)
		os.Exit(1)
	}

	svc := services.NewReportService(client, logger.WithComponent(log.ComponentReport))

	s := server.NewMCPServer("ynab-mcp", version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	tools.Register(s, svc, logger.WithComponent(log.ComponentTools))

	switch cfg.Transport {
	case config.TransportSSE:
		addr := ":" + cfg.Port
		logger.Info("Starting MCP server",
			log.FieldOperation, log.OpStartup,
			log.FieldBudgetID, cfg.BudgetID,
			"transport", cfg.Transport,
			"addr", addr)
		sse := server.NewSSEServer(s)
		if err := sse.Start(addr); err != nil {
			logger.Error("SSE server stopped", log.FieldError, err)
			os.Exit(1)
		}
	default:
		logger.Info("Starting MCP server",
			log.FieldOperation, log.OpStartup,
			log.FieldBudgetID, cfg.BudgetID,
			"transport", cfg.Transport)
		if err := server.ServeStdio(s); err != nil {
			logger.Error("Stdio server stopped", log.FieldError, err)
			os.Exit(1)
		}
	}
}
