package payments

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// formatMoney renders rupees with grouping, e.g. ₹1,234.50.
func formatMoney(v float64) string {
	return printer.Sprintf("₹%.2f", v)
}
