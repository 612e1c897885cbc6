package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protheo/internal/core/types"
	"protheo/internal/domain/catalogs/paymentmethod"
	"protheo/internal/domain/catalogs/procedure"
)

func pct(s string) *types.Percent {
	p := types.MustMoney(s)
	return &p
}

func methodWithDiscount(s string) *paymentmethod.PaymentMethod {
	m := paymentmethod.New("Pix", paymentmethod.TypePix)
	m.DiscountPercent = pct(s)
	return m
}

func TestFindProcedureByName(t *testing.T) {
	catalog := []*procedure.Procedure{
		procedure.New("PRO-001", "Coroa Zircônia Monolítica", types.MustMoney("220.00")),
		procedure.New("PRO-002", "Coroa Zircônia", types.MustMoney("180.00")),
		procedure.New("PRO-003", "Coroa Zircônia", types.MustMoney("999.00")),
	}

	t.Run("exact match only", func(t *testing.T) {
		got := FindProcedureByName(catalog, "Coroa Zircônia")
		require.NotNil(t, got)
		assert.Equal(t, "PRO-002", got.Code, "first match wins")
	})

	t.Run("case sensitive", func(t *testing.T) {
		assert.Nil(t, FindProcedureByName(catalog, "coroa zircônia"))
	})

	t.Run("unknown name", func(t *testing.T) {
		assert.Nil(t, FindProcedureByName(catalog, "Inlay"))
	})
}

func TestResolveDiscountPercent_MethodWins(t *testing.T) {
	got := ResolveDiscountPercent(
		methodWithDiscount("5"),
		pct("10"),
		types.MustMoney("200.00"),
		false,
	)
	assert.True(t, types.MustMoney("5").Equal(got))
}

func TestResolveDiscountPercent_GlobalFallbackOnNewOrder(t *testing.T) {
	tests := []struct {
		name   string
		method *paymentmethod.PaymentMethod
	}{
		{"no method", nil},
		{"method without discount", paymentmethod.New("Dinheiro", paymentmethod.TypeCash)},
		{"method with zero discount", methodWithDiscount("0")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDiscountPercent(tt.method, pct("10"), types.MustMoney("200.00"), false)
			assert.True(t, types.MustMoney("10").Equal(got))
		})
	}
}

// Editing an order never pulls in the global discount; only the payment
// method's own discount applies.
func TestResolveDiscountPercent_EditingSkipsGlobalFallback(t *testing.T) {
	got := ResolveDiscountPercent(nil, pct("10"), types.MustMoney("200.00"), true)
	assert.True(t, got.IsZero())

	got = ResolveDiscountPercent(methodWithDiscount("5"), pct("10"), types.MustMoney("200.00"), true)
	assert.True(t, types.MustMoney("5").Equal(got))
}

func TestResolveDiscountPercent_ZeroSubtotalFallsThroughToGlobal(t *testing.T) {
	// a positive method percent on a zero subtotal yields a zero discount
	// value, which lets the global fallback through on new orders
	got := ResolveDiscountPercent(methodWithDiscount("5"), pct("10"), types.Zero(), false)
	assert.True(t, types.MustMoney("10").Equal(got))

	got = ResolveDiscountPercent(methodWithDiscount("5"), pct("10"), types.Zero(), true)
	assert.True(t, types.MustMoney("5").Equal(got))
}

func TestComputeTotals(t *testing.T) {
	got := ComputeTotals(2, types.MustMoney("220.00"), types.MustMoney("10"))

	assert.True(t, types.MustMoney("440.00").Equal(got.Subtotal))
	assert.True(t, types.MustMoney("44.00").Equal(got.DiscountValue))
	assert.True(t, types.MustMoney("396.00").Equal(got.TotalValue))
}

func TestComputeTotals_ZeroUnitValue(t *testing.T) {
	got := ComputeTotals(3, types.Zero(), types.MustMoney("10"))
	assert.True(t, got.Subtotal.IsZero())
	assert.True(t, got.TotalValue.IsZero())
}

func TestComputeTotals_TotalNeverNegative(t *testing.T) {
	// a percent beyond 100 is rejected upstream, but the clamp still holds
	got := ComputeTotals(1, types.MustMoney("100.00"), types.MustMoney("150"))
	assert.True(t, got.TotalValue.IsZero())
}

func TestComputeTotals_FullDiscount(t *testing.T) {
	got := ComputeTotals(1, types.MustMoney("100.00"), types.MustMoney("100"))
	assert.True(t, got.TotalValue.IsZero())
	assert.True(t, types.MustMoney("100.00").Equal(got.DiscountValue))
}

func TestQuoteTotals_EndToEnd(t *testing.T) {
	t.Run("new order picks up global discount", func(t *testing.T) {
		q := Quote{Quantity: 1, UnitValue: types.MustMoney("100.00"), Global: pct("5")}
		got := q.Totals()
		assert.True(t, types.MustMoney("5.00").Equal(got.DiscountValue))
		assert.True(t, types.MustMoney("95.00").Equal(got.TotalValue))
	})

	t.Run("editing keeps discount at zero without method discount", func(t *testing.T) {
		q := Quote{Quantity: 1, UnitValue: types.MustMoney("100.00"), Global: pct("5"), Editing: true}
		got := q.Totals()
		assert.True(t, got.DiscountValue.IsZero())
		assert.True(t, types.MustMoney("100.00").Equal(got.TotalValue))
	})

	t.Run("method discount applies either way", func(t *testing.T) {
		q := Quote{
			Quantity:  2,
			UnitValue: types.MustMoney("220.00"),
			Method:    methodWithDiscount("10"),
			Global:    pct("5"),
			Editing:   true,
		}
		got := q.Totals()
		assert.True(t, types.MustMoney("44.00").Equal(got.DiscountValue))
		assert.True(t, types.MustMoney("396.00").Equal(got.TotalValue))
	})
}
