package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protheo/internal/core/apperror"
	"protheo/internal/core/id"
	"protheo/internal/core/types"
	"protheo/internal/domain/catalogs/paymentmethod"
	"protheo/internal/domain/catalogs/procedure"
)

type fakeRepo struct {
	byID map[id.ID]*Order
	seq  []id.ID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[id.ID]*Order)}
}

func (r *fakeRepo) Create(_ context.Context, o *Order) error {
	r.byID[o.ID] = o
	r.seq = append(r.seq, o.ID)
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, entityID id.ID) (*Order, error) {
	o, ok := r.byID[entityID]
	if !ok {
		return nil, apperror.NewNotFound("order", entityID.String())
	}
	return o, nil
}

func (r *fakeRepo) Update(_ context.Context, o *Order) error {
	if _, ok := r.byID[o.ID]; !ok {
		return apperror.NewNotFound("order", o.ID.String())
	}
	r.byID[o.ID] = o
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, entityID id.ID) error {
	delete(r.byID, entityID)
	return nil
}

func (r *fakeRepo) List(_ context.Context) ([]*Order, error) {
	out := make([]*Order, 0, len(r.seq))
	for _, oid := range r.seq {
		if o, ok := r.byID[oid]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeCatalog struct{ items []*procedure.Procedure }

func (c *fakeCatalog) List(_ context.Context) ([]*procedure.Procedure, error) {
	return c.items, nil
}

type fakeMethods struct{ byID map[id.ID]*paymentmethod.PaymentMethod }

func (m *fakeMethods) GetByID(_ context.Context, methodID id.ID) (*paymentmethod.PaymentMethod, error) {
	pm, ok := m.byID[methodID]
	if !ok {
		return nil, apperror.NewNotFound("payment method", methodID.String())
	}
	return pm, nil
}

type fakeSettings struct{ global *types.Percent }

func (s *fakeSettings) GlobalDiscount(_ context.Context) (*types.Percent, error) {
	return s.global, nil
}

func pctPtr(s string) *types.Percent {
	p := types.MustMoney(s)
	return &p
}

func idPtr(i id.ID) *id.ID { return &i }

func testService(global *types.Percent, methods ...*paymentmethod.PaymentMethod) (*Service, *fakeRepo) {
	repo := newFakeRepo()
	catalog := &fakeCatalog{items: []*procedure.Procedure{
		procedure.New("PRO-001", "Coroa Zircônia Monolítica", types.MustMoney("220.00")),
		procedure.New("PRO-003", "Protocolo Cerâmico Superior", types.MustMoney("3500.00")),
	}}
	byID := make(map[id.ID]*paymentmethod.PaymentMethod)
	for _, m := range methods {
		byID[m.ID] = m
	}
	svc := NewService(repo, catalog, &fakeMethods{byID: byID}, &fakeSettings{global: global})
	return svc, repo
}

func newOrder(serviceType string, quantity int) *Order {
	o := New("Dra. Maria Santos", "João Pereira")
	o.ServiceType = serviceType
	o.Material = "Zircônia"
	o.Quantity = quantity
	o.DueDate = time.Now().AddDate(0, 0, 7)
	return o
}

func TestCreate_PrefillsUnitValueFromCatalog(t *testing.T) {
	svc, _ := testService(nil)

	o := newOrder("Coroa Zircônia Monolítica", 2)
	require.NoError(t, svc.Create(context.Background(), o))

	assert.True(t, types.MustMoney("220.00").Equal(o.UnitValue))
	assert.True(t, o.DiscountValue.IsZero())
	assert.True(t, types.MustMoney("440.00").Equal(o.TotalValue))
}

func TestCreate_ExplicitUnitValueWinsOverCatalog(t *testing.T) {
	svc, _ := testService(nil)

	o := newOrder("Coroa Zircônia Monolítica", 1)
	o.UnitValue = types.MustMoney("250.00")
	require.NoError(t, svc.Create(context.Background(), o))

	assert.True(t, types.MustMoney("250.00").Equal(o.UnitValue))
	assert.True(t, types.MustMoney("250.00").Equal(o.TotalValue))
}

func TestCreate_UnknownProcedureGetsNoPrefill(t *testing.T) {
	svc, _ := testService(nil)

	o := newOrder("Inlay Cerâmica", 1)
	require.NoError(t, svc.Create(context.Background(), o))

	assert.True(t, o.UnitValue.IsZero())
	assert.True(t, o.TotalValue.IsZero())
}

func TestCreate_MethodDiscountEndToEnd(t *testing.T) {
	// Catalog entry at 220.00, method at 10%, quantity 2:
	// unit value auto-filled, discount 44.00, total 396.00.
	pix := paymentmethod.New("PIX à Vista", paymentmethod.TypePix)
	pix.DiscountPercent = pctPtr("10")
	svc, _ := testService(nil, pix)

	o := newOrder("Coroa Zircônia Monolítica", 2)
	o.PaymentMethodID = idPtr(pix.ID)
	require.NoError(t, svc.Create(context.Background(), o))

	assert.True(t, types.MustMoney("220.00").Equal(o.UnitValue))
	assert.True(t, types.MustMoney("44.00").Equal(o.DiscountValue))
	assert.True(t, types.MustMoney("396.00").Equal(o.TotalValue))
}

func TestCreate_GlobalDiscountAppliesToNewOrders(t *testing.T) {
	svc, _ := testService(pctPtr("5"))

	o := newOrder("Inlay Cerâmica", 1)
	o.UnitValue = types.MustMoney("100.00")
	require.NoError(t, svc.Create(context.Background(), o))

	assert.True(t, types.MustMoney("5.00").Equal(o.DiscountValue))
	assert.True(t, types.MustMoney("95.00").Equal(o.TotalValue))
}

func TestUpdate_GlobalDiscountDoesNotApplyWhileEditing(t *testing.T) {
	svc, _ := testService(pctPtr("5"))

	o := newOrder("Inlay Cerâmica", 1)
	o.UnitValue = types.MustMoney("100.00")
	require.NoError(t, svc.Create(context.Background(), o))
	require.True(t, types.MustMoney("95.00").Equal(o.TotalValue))

	// touching the order again reprices without the global fallback
	require.NoError(t, svc.Update(context.Background(), o))
	assert.True(t, o.DiscountValue.IsZero())
	assert.True(t, types.MustMoney("100.00").Equal(o.TotalValue))
}

func TestMethodDiscountBeatsGlobal(t *testing.T) {
	pix := paymentmethod.New("PIX à Vista", paymentmethod.TypePix)
	pix.DiscountPercent = pctPtr("5")
	svc, _ := testService(pctPtr("10"), pix)

	o := newOrder("Protocolo Cerâmico Superior", 1)
	o.PaymentMethodID = idPtr(pix.ID)
	require.NoError(t, svc.Create(context.Background(), o))

	assert.True(t, types.MustMoney("175.00").Equal(o.DiscountValue))
	assert.True(t, types.MustMoney("3325.00").Equal(o.TotalValue))
}

func TestDanglingMethodIDIsTolerated(t *testing.T) {
	svc, _ := testService(nil)

	dangling := id.New()
	o := newOrder("Coroa Zircônia Monolítica", 1)
	o.PaymentMethodID = idPtr(dangling)
	require.NoError(t, svc.Create(context.Background(), o))

	require.NotNil(t, o.PaymentMethodID)
	assert.Equal(t, dangling, *o.PaymentMethodID, "stored reference survives")
	assert.True(t, o.DiscountValue.IsZero())
}

func TestCreate_Validation(t *testing.T) {
	svc, repo := testService(nil)

	tests := []struct {
		name  string
		order *Order
	}{
		{"missing dentist", func() *Order {
			o := newOrder("Coroa Zircônia Monolítica", 1)
			o.DentistName = ""
			return o
		}()},
		{"missing service type", newOrder("", 1)},
		{"zero quantity", newOrder("Coroa Zircônia Monolítica", 0)},
		{"negative unit value", func() *Order {
			o := newOrder("Coroa Zircônia Monolítica", 1)
			o.UnitValue = types.MustMoney("-1")
			return o
		}()},
		{"bad status", func() *Order {
			o := newOrder("Coroa Zircônia Monolítica", 1)
			o.Status = Status("Shipped")
			return o
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Create(context.Background(), tt.order)
			require.Error(t, err)
			assert.True(t, apperror.IsValidation(err))
		})
	}

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items, "failed writes leave the store untouched")
}

func TestDeliveredStatusStampsDeliveryDate(t *testing.T) {
	svc, _ := testService(nil)

	o := newOrder("Coroa Zircônia Monolítica", 1)
	require.NoError(t, svc.Create(context.Background(), o))
	require.Nil(t, o.Delivered)

	o.Status = StatusDelivered
	require.NoError(t, svc.Update(context.Background(), o))
	require.NotNil(t, o.Delivered)

	o.Status = StatusFinished
	require.NoError(t, svc.Update(context.Background(), o))
	assert.Nil(t, o.Delivered)
}

func TestQuote_DoesNotPersist(t *testing.T) {
	svc, repo := testService(pctPtr("10"))

	draft := newOrder("Coroa Zircônia Monolítica", 2)
	totals, err := svc.Quote(context.Background(), draft, false)
	require.NoError(t, err)

	assert.True(t, types.MustMoney("440.00").Equal(totals.Subtotal))
	assert.True(t, types.MustMoney("44.00").Equal(totals.DiscountValue))
	assert.True(t, types.MustMoney("396.00").Equal(totals.TotalValue))

	stored, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestSearch_Filters(t *testing.T) {
	svc, _ := testService(nil)
	ctx := context.Background()

	a := newOrder("Coroa Zircônia Monolítica", 1)
	a.Status = StatusDelivered
	require.NoError(t, svc.Create(ctx, a))

	b := New("Dr. Carlos Lima", "Ana Souza")
	b.ServiceType = "Coroa Zircônia Monolítica"
	b.Material = "Zircônia"
	b.Quantity = 1
	b.DueDate = time.Now().AddDate(0, 0, 3)
	require.NoError(t, svc.Create(ctx, b))

	got, err := svc.Search(ctx, ListFilter{Search: "maria"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID)

	got, err = svc.Search(ctx, ListFilter{Status: StatusPending})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)

	got, err = svc.Search(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
