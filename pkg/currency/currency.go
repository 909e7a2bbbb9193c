package currency

import "fmt"

// DefaultSymbol is the store's display currency. It is a fixed
// configuration value, not derived from locale.
const DefaultSymbol = "₹"

// FormatPrice renders an amount as "<symbol><amount>" with exactly two
// decimal places.
func FormatPrice(symbol string, amount float64) string {
	return fmt.Sprintf("%s%.2f", symbol, amount)
}
