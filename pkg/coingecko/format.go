package coingecko

import (
	"math"
	"strconv"
	"strings"
)

// FormatUSD renders an amount as US currency with two decimals and thousands
// separators, e.g. 1234.5 -> "$1,234.50".
func FormatUSD(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	cents := int64(math.Round(v * 100))
	whole := strconv.FormatInt(cents/100, 10)
	frac := cents % 100

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := sign + "$" + b.String() + "." + strconv.FormatInt(frac/10, 10) + strconv.FormatInt(frac%10, 10)
	if out == "-$0.00" {
		return "$0.00"
	}
	return out
}
