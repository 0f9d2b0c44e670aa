package core

import (
	"fmt"
	"strings"
	"time"
)

// IncomeLine is one qualifying transaction, ready for rendering.
type IncomeLine struct {
	Date        time.Time
	Payee       string
	Amount      Milliunits
	AccountName string
	Memo        string
}

// IncomeSummary aggregates the qualifying transactions of one reporting
// window. Total is kept in milliunits so rounding happens once, at render.
type IncomeSummary struct {
	Months int
	Window Window
	Lines  []IncomeLine
	Total  Milliunits
}

// BuildIncomeSummary folds txs into an IncomeSummary, keeping fetch order.
// accountNames resolves account ids to display names; unresolved ids render
// as an empty account name.
func BuildIncomeSummary(txs []Transaction, w Window, months int, accountNames map[string]string) IncomeSummary {
	s := IncomeSummary{Months: months, Window: w}
	for _, tx := range txs {
		if !IsIncome(tx, w) {
			continue
		}
		s.Total += tx.Amount
		s.Lines = append(s.Lines, IncomeLine{
			Date:        tx.Date,
			Payee:       tx.Payee,
			Amount:      tx.Amount,
			AccountName: accountNames[tx.AccountID],
			Memo:        tx.Memo,
		})
	}
	return s
}

// Render produces the human-readable report: a header naming the month count
// and the resolved window, one bullet per income line, and a trailing total.
func (s IncomeSummary) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "💰 **Income Transactions (last %d months, %s to %s):**\n\n",
		s.Months, s.Window.Start.Format(dateLayout), s.Window.End.Format(dateLayout))
	if len(s.Lines) == 0 {
		b.WriteString("No income transactions found.")
	} else {
		for i, line := range s.Lines {
			if i > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "• **%s** | %s | %s | %s",
				line.Date.Format(dateLayout), line.Payee, line.Amount.Format(), line.AccountName)
			if line.Memo != "" {
				b.WriteString(" - " + line.Memo)
			}
		}
	}
	fmt.Fprintf(&b, "\n\n**Total Income**: %s", s.Total.Format())
	return b.String()
}

const dateLayout = "2006-01-02"
