package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"ynabmcp/internal/core"
	"ynabmcp/internal/log"
)

type fakeBudget struct {
	accounts []core.Account
	budget   core.Budget
	txs      []core.Transaction

	accountsErr error
	budgetErr   error
	txsErr      error

	since time.Time
}

func (f *fakeBudget) Accounts(ctx context.Context) ([]core.Account, error) {
	return f.accounts, f.accountsErr
}

func (f *fakeBudget) Budget(ctx context.Context) (core.Budget, error) {
	return f.budget, f.budgetErr
}

func (f *fakeBudget) TransactionsSince(ctx context.Context, since time.Time) ([]core.Transaction, error) {
	f.since = since
	return f.txs, f.txsErr
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func newTestService(f *fakeBudget, today time.Time) *ReportService {
	logger := log.New(log.Config{
		Component: log.ComponentReport,
		Handler:   slog.NewTextHandler(io.Discard, nil),
	})
	svc := NewReportService(f, logger)
	svc.now = func() time.Time { return today }
	return svc
}

func TestAccountBalances(t *testing.T) {
	f := &fakeBudget{
		accounts: []core.Account{
			{ID: "a1", Name: "Checking", Balance: 1500500},
			{ID: "a2", Name: "Savings", Balance: 2000000},
			{ID: "a3", Name: "Old Card", Balance: 99999, Closed: true},
		},
		budget: core.Budget{Name: "My Budget", Currency: "EUR"},
	}
	svc := newTestService(f, date(2024, time.June, 15))

	out, err := svc.AccountBalances(context.Background())
	if err != nil {
		t.Fatalf("AccountBalances: %v", err)
	}
	for _, want := range []string{"**Checking**: 1,500.50 EUR", "**Savings**: 2,000.00 EUR", "**Total Balance**: 3,500.50 EUR"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// Closed accounts stay out of the listing and the total.
	if strings.Contains(out, "Old Card") {
		t.Errorf("closed account rendered:\n%s", out)
	}
}

func TestAccountBalancesPropagatesFetchErrors(t *testing.T) {
	boom := errors.New("boom")
	for name, f := range map[string]*fakeBudget{
		"accounts": {accountsErr: boom},
		"budget":   {budgetErr: boom},
	} {
		t.Run(name, func(t *testing.T) {
			svc := newTestService(f, date(2024, time.June, 15))
			if _, err := svc.AccountBalances(context.Background()); !errors.Is(err, boom) {
				t.Errorf("err = %v, want wrapped boom", err)
			}
		})
	}
}

func TestBudgetSummary(t *testing.T) {
	f := &fakeBudget{
		budget: core.Budget{Name: "My Budget", LastModifiedOn: "2024-06-15T10:00:00Z", Currency: "USD"},
	}
	svc := newTestService(f, date(2024, time.June, 15))

	out, err := svc.BudgetSummary(context.Background())
	if err != nil {
		t.Fatalf("BudgetSummary: %v", err)
	}
	want := "📊 **Budget: My Budget**\nLast Modified: 2024-06-15T10:00:00Z\nCurrency: USD"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestIncomeForPeriod(t *testing.T) {
	f := &fakeBudget{
		accounts: []core.Account{{ID: "a1", Name: "Checking"}},
		txs: []core.Transaction{
			{Date: date(2024, time.May, 10), Amount: 150000, Payee: "Acme", AccountID: "a1"},
			{Date: date(2024, time.May, 11), Amount: 99000, Payee: "Refund", AccountID: "a1", CategoryID: strPtr("cat1")},
			{Date: date(2024, time.March, 1), Amount: 500000, Payee: "TooEarly", AccountID: "a1"},
		},
	}
	svc := newTestService(f, date(2024, time.June, 15))

	out, err := svc.IncomeForPeriod(context.Background(), 3)
	if err != nil {
		t.Fatalf("IncomeForPeriod: %v", err)
	}
	if !f.since.Equal(date(2024, time.April, 1)) {
		t.Errorf("since = %s, want 2024-04-01", f.since)
	}
	for _, want := range []string{"last 3 months, 2024-04-01 to 2024-06-15", "Acme", "150.00", "Checking", "**Total Income**: 150.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	for _, excluded := range []string{"Refund", "TooEarly"} {
		if strings.Contains(out, excluded) {
			t.Errorf("output should not contain %q:\n%s", excluded, out)
		}
	}
}

func TestIncomeForPeriodRejectsInvalidMonths(t *testing.T) {
	f := &fakeBudget{}
	svc := newTestService(f, date(2024, time.June, 15))
	for _, months := range []int{0, -3} {
		if _, err := svc.IncomeForPeriod(context.Background(), months); !errors.Is(err, core.ErrInvalidMonths) {
			t.Errorf("months=%d: err = %v, want ErrInvalidMonths", months, err)
		}
	}
	// Validation happens before any upstream call.
	if !f.since.IsZero() {
		t.Error("upstream was called for invalid months")
	}
}

func TestIncomeForPeriodPropagatesFetchErrors(t *testing.T) {
	boom := errors.New("boom")
	for name, f := range map[string]*fakeBudget{
		"accounts":     {accountsErr: boom},
		"transactions": {txsErr: boom},
	} {
		t.Run(name, func(t *testing.T) {
			svc := newTestService(f, date(2024, time.June, 15))
			if _, err := svc.IncomeForPeriod(context.Background(), 3); !errors.Is(err, boom) {
				t.Errorf("err = %v, want wrapped boom", err)
			}
		})
	}
}

func TestReportsAreIdempotent(t *testing.T) {
	f := &fakeBudget{
		accounts: []core.Account{{ID: "a1", Name: "Checking", Balance: 1000}},
		budget:   core.Budget{Name: "My Budget", LastModifiedOn: "x", Currency: "USD"},
		txs: []core.Transaction{
			{Date: date(2024, time.May, 10), Amount: 150000, Payee: "Acme", AccountID: "a1"},
		},
	}
	svc := newTestService(f, date(2024, time.June, 15))
	ctx := context.Background()

	calls := []func() (string, error){
		func() (string, error) { return svc.AccountBalances(ctx) },
		func() (string, error) { return svc.BudgetSummary(ctx) },
		func() (string, error) { return svc.IncomeForPeriod(ctx, 3) },
	}
	for i, call := range calls {
		first, err := call()
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		second, err := call()
		if err != nil {
			t.Fatalf("call %d repeat: %v", i, err)
		}
		if first != second {
			t.Errorf("call %d not idempotent:\n%s\nvs\n%s", i, first, second)
		}
	}
}
