package chartview

import (
	"math"

	"github.com/dustin/go-humanize"
)

// FormatLabel formats a tick value with thousands separators, rounded to at
// most decimals fractional digits. Trailing zeros are dropped.
func FormatLabel(v float64, decimals int) string {
	decimals = max(decimals, 0)
	pow := math.Pow(10, float64(decimals))
	v = normalizeZero(math.Round(v*pow) / pow)
	return humanize.CommafWithDigits(v, decimals)
}

// Labels formats the tick values using the tick set's decimals.
func (t Ticks) Labels() []string {
	return formatAll(t.Values, t.Decimals)
}

// CenteredLabels formats the centered tick values using the tick set's
// decimals.
func (t Ticks) CenteredLabels() []string {
	return formatAll(t.Centered, t.Decimals)
}

func formatAll(vs []float64, decimals int) []string {
	if len(vs) == 0 {
		return nil
	}
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = FormatLabel(v, decimals)
	}
	return out
}
