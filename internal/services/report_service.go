package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"ynabmcp/internal/core"
	"ynabmcp/internal/log"
)

// BudgetReader is the port to the upstream budget service. Each call fetches
// a fresh snapshot; implementations hold no state across calls.
type BudgetReader interface {
	Accounts(ctx context.Context) ([]core.Account, error)
	Budget(ctx context.Context) (core.Budget, error)
	TransactionsSince(ctx context.Context, since time.Time) ([]core.Transaction, error)
}

// ReportService renders the three budget reports. It owns no state beyond
// its collaborators; every report is a fetch, compute, render pass.
type ReportService struct {
	budget BudgetReader
	logger *log.Logger
	now    func() time.Time
}

func NewReportService(budget BudgetReader, logger *log.Logger) *ReportService {
	return &ReportService{
		budget: budget,
		logger: logger,
		now:    time.Now,
	}
}

// AccountBalances lists open accounts with their balances and a total, in the
// currency the budget metadata reports. Closed accounts are skipped for both
// the lines and the total.
func (s *ReportService) AccountBalances(ctx context.Context) (string, error) {
	var (
		accounts []core.Account
		budget   core.Budget
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accounts, err = s.budget.Accounts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		budget, err = s.budget.Budget(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("account balances: %w", err)
	}

	var b strings.Builder
	b.WriteString("💰 **YNAB Account Balances:**\n\n")
	var total core.Milliunits
	open := 0
	for _, account := range accounts {
		if account.Closed {
			continue
		}
		open++
		total += account.Balance
		fmt.Fprintf(&b, "• **%s**: %s %s\n", account.Name, account.Balance.Format(), budget.Currency)
	}
	fmt.Fprintf(&b, "\n**Total Balance**: %s %s", total.Format(), budget.Currency)

	s.logger.DebugContext(ctx, "Rendered account balances",
		log.FieldOperation, log.OpBalanceReport,
		log.FieldAccounts, len(accounts),
		"open", open)
	return b.String(), nil
}

// BudgetSummary reports the budget name, last-modified timestamp and
// currency code.
func (s *ReportService) BudgetSummary(ctx context.Context) (string, error) {
	budget, err := s.budget.Budget(ctx)
	if err != nil {
		return "", fmt.Errorf("budget summary: %w", err)
	}
	s.logger.DebugContext(ctx, "Rendered budget summary",
		log.FieldOperation, log.OpBudgetSummary)
	return fmt.Sprintf("📊 **Budget: %s**\nLast Modified: %s\nCurrency: %s",
		budget.Name, budget.LastModifiedOn, budget.Currency), nil
}

// IncomeForPeriod renders the income report for the trailing window of
// months months. The account list and the transaction list have no data
// dependency on each other, so they are fetched concurrently; both must
// succeed before classification starts.
func (s *ReportService) IncomeForPeriod(ctx context.Context, months int) (string, error) {
	window, err := core.ResolveWindow(months, s.now())
	if err != nil {
		return "", err
	}

	var (
		accounts []core.Account
		txs      []core.Transaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accounts, err = s.budget.Accounts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		txs, err = s.budget.TransactionsSince(gctx, window.Start)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("income for period: %w", err)
	}

	names := make(map[string]string, len(accounts))
	for _, account := range accounts {
		names[account.ID] = account.Name
	}

	summary := core.BuildIncomeSummary(txs, window, months, names)
	s.logger.DebugContext(ctx, "Rendered income report",
		log.FieldOperation, log.OpIncomeReport,
		log.FieldMonths, months,
		log.FieldSince, window.Start.Format("2006-01-02"),
		log.FieldTxCount, len(txs),
		"income_lines", len(summary.Lines))
	return summary.Render(), nil
}
