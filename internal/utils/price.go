package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders a naira amount in major units with thousands
// separators, the way the storefront displays prices. Whole amounts
// drop the decimals.
func FormatPrice(amount float64) string {
	if amount == math.Trunc(amount) {
		return pricePrinter.Sprintf("₦%d", int64(amount))
	}
	return pricePrinter.Sprintf("₦%.2f", amount)
}
