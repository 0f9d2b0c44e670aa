package core

// IsIncome reports whether tx counts as true income for the given window.
//
// A transaction qualifies when its date falls inside the window (the upstream
// since_date filter is advisory, so both bounds are re-checked here), its
// amount is strictly positive, and it carries no category. YNAB leaves
// transfers and external income uncategorized while categorized inflows are
// refunds or adjustments, which is the convention this predicate relies on.
//
// Known limitation: the positive leg of an inter-account transfer is also
// uncategorized and therefore counts as income. The pairing with its negative
// counter-transaction is not deduplicated here.
func IsIncome(tx Transaction, w Window) bool {
	if !w.Contains(tx.Date) {
		return false
	}
	if tx.Amount <= 0 {
		return false
	}
	return tx.CategoryID == nil
}
