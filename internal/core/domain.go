package core

import (
	"errors"
	"time"
)

type (
	// Account is a snapshot of a budget account, fetched fresh per request.
	Account struct {
		ID      string
		Name    string
		Balance Milliunits
		Closed  bool
	}

	// Transaction is a single budget transaction. CategoryID is nil when the
	// upstream left the transaction uncategorized, which is how YNAB marks
	// transfers and true external income.
	Transaction struct {
		ID         string
		Date       time.Time
		Amount     Milliunits
		CategoryID *string
		Payee      string
		AccountID  string
		Memo       string
	}

	// Budget holds the metadata shown by the budget summary. LastModifiedOn
	// is the upstream timestamp, passed through untouched.
	Budget struct {
		Name           string
		LastModifiedOn string
		Currency       string
	}

	// Window is an inclusive date range. Start is always the first day of a
	// month and never after End.
	Window struct {
		Start time.Time
		End   time.Time
	}
)

var (
	ErrInvalidMonths = errors.New("months must be a positive integer")
)

// Contains reports whether d falls inside the window, bounds included.
func (w Window) Contains(d time.Time) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}
