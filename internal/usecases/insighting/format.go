package insighting

import (
	"math"
	"strconv"
)

// formatCurrency renders an amount as Indonesian rupiah with dot
// thousands separators and no decimals, e.g. "Rp 1.234.567".
func formatCurrency(amount float64) string {
	negative := amount < 0
	rounded := int64(math.Round(math.Abs(amount)))

	digits := strconv.FormatInt(rounded, 10)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, d)
	}

	out := "Rp " + string(grouped)
	if negative {
		out = "-" + out
	}
	return out
}

// formatPercentage renders a 0..1 rate as a one-decimal percentage,
// e.g. 0.305 -> "30.5%".
func formatPercentage(value float64) string {
	return strconv.FormatFloat(value*100, 'f', 1, 64) + "%"
}
