package layout

// ContentWidths returns, for each of the given columns, the rune length of
// the longest wrapped line over the header and value texts. Widths are
// clamped to [1, MaxColWidth].
func ContentWidths(columns [][]string, wrapWidth int) []float64 {
	widths := make([]float64, len(columns))
	for i, texts := range columns {
		n := 1
		for _, text := range texts {
			n = max(n, longestLine(text, wrapWidth))
		}
		widths[i] = float64(min(n, MaxColWidth))
	}
	return widths
}
