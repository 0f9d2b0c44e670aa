// Package core provides the pure domain logic of the budget reporting
// pipeline: milliunit money handling, trailing-window resolution, income
// classification and summary rendering.
package core

import (
	"strconv"
	"strings"
)

// Milliunits is YNAB's fixed-point monetary unit: one thousandth of a
// currency unit. Positive values are inflows, negative values outflows.
type Milliunits int64

// Units returns the currency value as a float64 for display purposes.
// Keep arithmetic in Milliunits; convert only when formatting.
func (m Milliunits) Units() float64 {
	return float64(m) / 1000.0
}

// Format renders the amount with thousands separators and two decimals,
// e.g. 1234560 -> "1,234.56". Rounding to two decimals is half-up and
// happens here only, never during accumulation.
func (m Milliunits) Format() string {
	milli := int64(m)
	neg := milli < 0
	if neg {
		milli = -milli
	}
	hundredths := (milli + 5) / 10

	whole := strconv.FormatInt(hundredths/100, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(whole) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(whole[:lead])
	for i := lead; i < len(whole); i += 3 {
		b.WriteByte(',')
		b.WriteString(whole[i : i+3])
	}
	b.WriteByte('.')
	frac := hundredths % 100
	b.WriteByte(byte('0' + frac/10))
	b.WriteByte(byte('0' + frac%10))
	return b.String()
}
