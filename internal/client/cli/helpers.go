package cli

import "fmt"

// formatPrice renders a price with two decimals and a currency mark
func formatPrice(v float64) string {
	return fmt.Sprintf("%.2f €", v)
}

// truncate shortens s to max runes with an ellipsis
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
