// Package billing holds the pure invoice arithmetic. No storage, no I/O;
// everything here is deterministic and safe for concurrent use.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/SharuLucky21/Hospital-Management-System/internal/domain"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
)

// ComputeTotals computes an invoice's subtotal and total.
//
//	subtotal = sum(quantity * unit_price) over items
//	total    = max(0, subtotal - discount - insuranceDeduction) + tax
//
// The clamp to zero happens before tax is added, so an oversized deduction
// can never discount the tax away. No rounding mid-computation; display
// rounding is the renderer's job.
//
// Negative discount, tax, deduction, quantity or unit price are rejected
// with domain.ErrInvalidAmount.
func ComputeTotals(items []entity.LineItem, discount, tax, insuranceDeduction decimal.Decimal) (subtotal, total decimal.Decimal, err error) {
	if discount.IsNegative() || tax.IsNegative() || insuranceDeduction.IsNegative() {
		return decimal.Zero, decimal.Zero, domain.ErrInvalidAmount
	}

	subtotal = decimal.Zero
	for _, it := range items {
		if it.Quantity.IsNegative() || it.UnitPrice.IsNegative() {
			return decimal.Zero, decimal.Zero, domain.ErrInvalidAmount
		}
		subtotal = subtotal.Add(it.Quantity.Mul(it.UnitPrice))
	}

	total = subtotal.Sub(discount).Sub(insuranceDeduction)
	if total.IsNegative() {
		total = decimal.Zero
	}
	total = total.Add(tax)
	return subtotal, total, nil
}

// ItemTotal returns quantity * unit_price for a single line item.
func ItemTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice)
}
