package camt

import (
	"github.com/shopspring/decimal"
)

// parseAmount reads an ActiveOrHistoricCurrencyAndAmount element.
func parseAmount(n *node) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(n.text())
	if err != nil {
		return decimal.Zero, formatErrorf("amount %q: %v", n.text(), err)
	}
	return v, nil
}

func amountCurrency(n *node) string {
	return n.attr("Ccy")
}

// inCurrency reports whether an amount element is usable for this statement.
// Amounts in any other currency are dropped, never converted.
func (c *parseContext) inCurrency(amt *node) bool {
	return amountCurrency(amt) == c.currency
}
