// Package ynab is the outbound adapter for the YNAB v1 HTTP API. It speaks
// the wire format of exactly one budget and maps responses into core types.
package ynab

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ynabmcp/internal/core"
)

const dateLayout = "2006-01-02"

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	budgetID   string
}

// New creates a client bound to one budget. The timeout bounds every upstream
// call; there are no retries.
func New(token, budgetID, baseURL string, timeout time.Duration) (*Client, error) {
	if token == "" {
		return nil, errors.New("missing YNAB token")
	}
	if budgetID == "" {
		return nil, errors.New("missing YNAB budget id")
	}
	if baseURL == "" {
		return nil, errors.New("missing YNAB base URL")
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		budgetID:   budgetID,
	}, nil
}

// Accounts fetches all accounts of the budget, closed ones included.
func (c *Client) Accounts(ctx context.Context) ([]core.Account, error) {
	var resp accountsResponse
	if err := c.get(ctx, fmt.Sprintf("/budgets/%s/accounts", c.budgetID), nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch accounts: %w", err)
	}
	accounts := make([]core.Account, 0, len(resp.Data.Accounts))
	for _, a := range resp.Data.Accounts {
		accounts = append(accounts, core.Account{
			ID:      a.ID,
			Name:    a.Name,
			Balance: core.Milliunits(a.Balance),
			Closed:  a.Closed,
		})
	}
	return accounts, nil
}

// Budget fetches the budget metadata. A missing currency code falls back to
// USD, matching the upstream default.
func (c *Client) Budget(ctx context.Context) (core.Budget, error) {
	var resp budgetResponse
	if err := c.get(ctx, fmt.Sprintf("/budgets/%s", c.budgetID), nil, &resp); err != nil {
		return core.Budget{}, fmt.Errorf("fetch budget: %w", err)
	}
	currency := resp.Data.Budget.CurrencyFormat.IsoCode
	if currency == "" {
		currency = "USD"
	}
	return core.Budget{
		Name:           resp.Data.Budget.Name,
		LastModifiedOn: resp.Data.Budget.LastModifiedOn,
		Currency:       currency,
	}, nil
}

// TransactionsSince fetches all transactions dated on or after since. The
// upstream since_date filter is advisory; callers re-check both bounds.
func (c *Client) TransactionsSince(ctx context.Context, since time.Time) ([]core.Transaction, error) {
	query := url.Values{"since_date": {since.Format(dateLayout)}}
	var resp transactionsResponse
	if err := c.get(ctx, fmt.Sprintf("/budgets/%s/transactions", c.budgetID), query, &resp); err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}
	txs := make([]core.Transaction, 0, len(resp.Data.Transactions))
	for _, tx := range resp.Data.Transactions {
		date, err := time.Parse(dateLayout, tx.Date)
		if err != nil {
			return nil, fmt.Errorf("fetch transactions: malformed date %q: %w", tx.Date, err)
		}
		txs = append(txs, core.Transaction{
			ID:         tx.ID,
			Date:       date,
			Amount:     core.Milliunits(tx.Amount),
			CategoryID: tx.CategoryID,
			Payee:      deref(tx.PayeeName),
			AccountID:  tx.AccountID,
			Memo:       deref(tx.Memo),
		})
	}
	return txs, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", path, err)
	}
	return nil
}

// apiError extracts the upstream error envelope when parseable, otherwise
// reports the bare status.
func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var envelope errorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Detail != "" {
		return fmt.Errorf("upstream error %s: %s", resp.Status, envelope.Error.Detail)
	}
	return fmt.Errorf("upstream error %s", resp.Status)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
