package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protheo/internal/core/apperror"
	"protheo/internal/core/id"
	"protheo/internal/core/types"
)

type fakeRepo struct {
	byID map[id.ID]*Transaction
	seq  []id.ID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[id.ID]*Transaction)}
}

func (r *fakeRepo) Create(_ context.Context, t *Transaction) error {
	r.byID[t.ID] = t
	r.seq = append(r.seq, t.ID)
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, entityID id.ID) (*Transaction, error) {
	t, ok := r.byID[entityID]
	if !ok {
		return nil, apperror.NewNotFound("transaction", entityID.String())
	}
	return t, nil
}

func (r *fakeRepo) Update(_ context.Context, t *Transaction) error {
	if _, ok := r.byID[t.ID]; !ok {
		return apperror.NewNotFound("transaction", t.ID.String())
	}
	r.byID[t.ID] = t
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, entityID id.ID) error {
	delete(r.byID, entityID)
	return nil
}

func (r *fakeRepo) List(_ context.Context) ([]*Transaction, error) {
	out := make([]*Transaction, 0, len(r.seq))
	for _, tid := range r.seq {
		if t, ok := r.byID[tid]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func at(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := at(s)
	return &t
}

func entry(typ Type, status Status, description, category, amount, date string) *Transaction {
	t := New(typ, description, types.MustMoney(amount))
	t.Status = status
	t.Category = &category
	t.Date = at(date)
	return t
}

func seedLedger(t *testing.T, svc *Service) []*Transaction {
	t.Helper()
	entries := []*Transaction{
		entry(TypeIncome, StatusPaid, "Protocolo Cerâmico", "Próteses", "3500.00", "2026-03-05"),
		entry(TypeIncome, StatusPending, "Coroa Zircônia", "Próteses", "440.00", "2026-03-12"),
		entry(TypeExpense, StatusPaid, "Bloco de zircônia", "Material", "800.00", "2026-03-08"),
		entry(TypeExpense, StatusPending, "Aluguel do laboratório", "Fixas", "2200.00", "2026-04-01"),
	}
	for _, e := range entries {
		require.NoError(t, svc.Create(context.Background(), e))
	}
	return entries
}

func TestSearch_Filters(t *testing.T) {
	svc := NewService(newFakeRepo())
	entries := seedLedger(t, svc)
	ctx := context.Background()

	t.Run("text matches description and category", func(t *testing.T) {
		got, err := svc.Search(ctx, ListFilter{Search: "zircônia"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, entries[1].ID, got[0].ID)
		assert.Equal(t, entries[2].ID, got[1].ID)

		got, err = svc.Search(ctx, ListFilter{Search: "material"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, entries[2].ID, got[0].ID)
	})

	t.Run("by type", func(t *testing.T) {
		got, err := svc.Search(ctx, ListFilter{Type: TypeExpense})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("by status", func(t *testing.T) {
		got, err := svc.Search(ctx, ListFilter{Status: StatusPending})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("date range with inclusive bounds", func(t *testing.T) {
		got, err := svc.Search(ctx, ListFilter{DateFrom: datePtr("2026-03-08"), DateTo: datePtr("2026-03-12")})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, entries[1].ID, got[0].ID)
		assert.Equal(t, entries[2].ID, got[1].ID)
	})

	t.Run("one-sided lower bound", func(t *testing.T) {
		got, err := svc.Search(ctx, ListFilter{DateFrom: datePtr("2026-04-01")})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, entries[3].ID, got[0].ID)
	})

	t.Run("dimensions combine", func(t *testing.T) {
		got, err := svc.Search(ctx, ListFilter{Search: "zircônia", Type: TypeIncome})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, entries[1].ID, got[0].ID)
	})

	t.Run("empty filter returns everything", func(t *testing.T) {
		got, err := svc.Search(ctx, ListFilter{})
		require.NoError(t, err)
		assert.Len(t, got, 4)
	})
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newFakeRepo())

	tests := []struct {
		name string
		txn  *Transaction
	}{
		{"missing description", New(TypeIncome, "", types.MustMoney("10.00"))},
		{"bad type", New(Type("Transfer"), "entry", types.MustMoney("10.00"))},
		{"zero amount", New(TypeIncome, "entry", types.Zero())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Create(context.Background(), tt.txn)
			require.Error(t, err)
			assert.True(t, apperror.IsValidation(err))
		})
	}
}
