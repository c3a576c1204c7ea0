package usecases

import "github.com/shopspring/decimal"

var convenienceFeeRate = decimal.NewFromFloat(0.03)

// PriceQuote computes the buyer-facing total for a section selection:
// subtotal = unit price x quantity, convenience fee = 3% of the subtotal
// rounded to the nearest whole rupee.
func PriceQuote(unitPrice decimal.Decimal, quantity int) (subtotal, fee, total decimal.Decimal) {
	subtotal = unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	fee = subtotal.Mul(convenienceFeeRate).Round(0)
	total = subtotal.Add(fee)
	return subtotal, fee, total
}
