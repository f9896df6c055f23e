package layout

import (
	"fmt"
	"strings"
)

// Column splits each entry on Separator and aligns the resulting
// fields into fixed-width columns. Width is the total line width in
// characters, Columns the number of fields an entry is expected to
// carry. The per-column share of Width comes from SetBreakdown, or
// defaults to an even split.
type Column struct {
	Width     int
	Columns   int
	Separator string

	breakdown []int
}

// SetBreakdown replaces the per-column width allocation with explicit
// percentages, one per column, summing to exactly 100. Any other
// input is a configuration bug and panics before the layout is
// touched.
func (c *Column) SetBreakdown(values []int) {
	if len(values) != c.Columns {
		panic(fmt.Sprintf("layout: breakdown needs %d values, got %d", c.Columns, len(values)))
	}

	sum := 0
	for _, v := range values {
		sum += v
	}

	if sum != 100 {
		panic(fmt.Sprintf("layout: breakdown must sum to 100, got %d", sum))
	}

	c.breakdown = append([]int(nil), values...)
}

// Apply pads each field up to its width budget and shortens fields
// that run over. The entry may split into more or fewer fields than
// Columns; without an explicit breakdown every split field gets the
// even 100/Columns share, so the budget list tracks the field count
// rather than Columns in that case. With an explicit breakdown the
// budgets apply positionally and any surplus fields fall back to the
// even share.
func (c *Column) Apply(entry string) string {
	fields := strings.Split(entry, c.Separator)

	even := 100 / c.Columns * c.Width / 100

	var b strings.Builder
	for i, field := range fields {
		budget := even
		if i < len(c.breakdown) {
			budget = c.breakdown[i] * c.Width / 100
		}

		b.WriteString(fit(field, budget))
	}

	return b.String()
}

// fit brings a single field to its budget, measured in runes. Short
// fields are padded with spaces; long ones keep their first budget-2
// runes and end in ".. ", which leaves them one rune over budget.
// Budgets below two runes leave no room for content, so an overlong
// field collapses to the suffix alone.
func fit(field string, budget int) string {
	runes := []rune(field)

	switch {
	case len(runes) < budget:
		return field + strings.Repeat(" ", budget-len(runes))
	case len(runes) > budget:
		cut := max(budget-2, 0)

		return string(runes[:cut]) + ".. "
	default:
		return field
	}
}
