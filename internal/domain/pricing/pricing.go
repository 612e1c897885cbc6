// Package pricing computes order totals. Totals are derived at write time
// and frozen on the order; catalog or settings changes never reprice
// existing orders.
package pricing

import (
	"github.com/shopspring/decimal"

	"protheo/internal/core/types"
	"protheo/internal/domain/catalogs/paymentmethod"
	"protheo/internal/domain/catalogs/procedure"
)

var hundred = decimal.NewFromInt(100)

// FindProcedureByName returns the first catalog entry whose name matches
// exactly (case-sensitive), or nil. Orders referencing a renamed or
// deleted procedure simply get no prefill and keep the operator value.
func FindProcedureByName(catalog []*procedure.Procedure, name string) *procedure.Procedure {
	for _, p := range catalog {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// ResolveDiscountPercent picks the discount percentage for an order.
//
// The payment method's own discount wins when it produces a non-zero
// discount value for the given subtotal. The global discount is a
// fallback that applies only while creating a new order, never while
// editing one: an edited order keeps whatever discount it was saved
// with unless the payment method dictates otherwise.
func ResolveDiscountPercent(method *paymentmethod.PaymentMethod, global *types.Percent, subtotal types.Money, editing bool) types.Percent {
	percent := decimal.Zero
	if method != nil && method.DiscountPercent != nil {
		percent = *method.DiscountPercent
	}

	value := subtotal.Mul(percent).Div(hundred)
	if value.IsZero() && !editing && global != nil && global.IsPositive() {
		return *global
	}
	return percent
}

// Totals is the frozen pricing outcome stored on an order.
type Totals struct {
	Subtotal        types.Money
	DiscountPercent types.Percent
	DiscountValue   types.Money
	TotalValue      types.Money
}

// ComputeTotals derives the pricing outcome from quantity, unit value
// and a resolved discount percentage. The total is clamped at zero.
func ComputeTotals(quantity int, unitValue types.Money, discountPercent types.Percent) Totals {
	subtotal := unitValue.Mul(decimal.NewFromInt(int64(quantity)))
	discountValue := subtotal.Mul(discountPercent).Div(hundred)

	total := subtotal.Sub(discountValue)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Totals{
		Subtotal:        subtotal,
		DiscountPercent: discountPercent,
		DiscountValue:   discountValue,
		TotalValue:      total,
	}
}

// Quote bundles the inputs of a single pricing pass.
type Quote struct {
	Quantity  int
	UnitValue types.Money
	Method    *paymentmethod.PaymentMethod
	Global    *types.Percent
	Editing   bool
}

// Totals resolves the discount and computes the outcome in one step.
func (q Quote) Totals() Totals {
	subtotal := q.UnitValue.Mul(decimal.NewFromInt(int64(q.Quantity)))
	percent := ResolveDiscountPercent(q.Method, q.Global, subtotal, q.Editing)
	return ComputeTotals(q.Quantity, q.UnitValue, percent)
}
