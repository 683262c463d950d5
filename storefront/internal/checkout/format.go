package checkout

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatPrice renders an amount in euros rounded to two digits.
func FormatPrice(amount decimal.Decimal) string {
	return "€" + amount.StringFixed(2)
}

func FormatDeliveryTime(minutes int) string {
	return fmt.Sprintf("%d minutes", minutes)
}
