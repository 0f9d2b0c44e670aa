package core

import "time"

// DefaultMonths is the trailing window applied when the caller does not
// supply a month count.
const DefaultMonths = 3

// ResolveWindow computes the inclusive reporting window for the last months
// months: from the first day of the month months-1 months before today, up to
// today. Month arithmetic borrows from the year, so a window reaching past
// January lands in the previous year.
//
// The bounds are built in UTC from today's calendar date, whatever zone today
// carries. Transaction dates parse as UTC midnights, so both sides of the
// Contains comparison live in the same calendar frame and the window bounds
// stay inclusive.
func ResolveWindow(months int, today time.Time) (Window, error) {
	if months < 1 {
		return Window{}, ErrInvalidMonths
	}
	year := today.Year()
	month := int(today.Month()) - (months - 1)
	for month <= 0 {
		month += 12
		year--
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: end}, nil
}
