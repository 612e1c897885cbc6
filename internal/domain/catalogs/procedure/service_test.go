package procedure

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protheo/internal/core/apperror"
	"protheo/internal/core/id"
	"protheo/internal/core/types"
	"protheo/pkg/numerator"
)

type fakeRepo struct {
	byID map[id.ID]*Procedure
	seq  []id.ID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[id.ID]*Procedure)}
}

func (r *fakeRepo) Create(_ context.Context, p *Procedure) error {
	r.byID[p.ID] = p
	r.seq = append(r.seq, p.ID)
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, entityID id.ID) (*Procedure, error) {
	p, ok := r.byID[entityID]
	if !ok {
		return nil, apperror.NewNotFound("procedure", entityID.String())
	}
	return p, nil
}

func (r *fakeRepo) Update(_ context.Context, p *Procedure) error {
	if _, ok := r.byID[p.ID]; !ok {
		return apperror.NewNotFound("procedure", p.ID.String())
	}
	r.byID[p.ID] = p
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, entityID id.ID) error {
	delete(r.byID, entityID)
	return nil
}

func (r *fakeRepo) List(_ context.Context) ([]*Procedure, error) {
	out := make([]*Procedure, 0, len(r.seq))
	for _, pid := range r.seq {
		if p, ok := r.byID[pid]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetByCode(_ context.Context, code string) (*Procedure, error) {
	for _, p := range r.byID {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, apperror.NewNotFound("procedure", code)
}

func (r *fakeRepo) ExistsByCode(_ context.Context, code string) (bool, error) {
	for _, p := range r.byID {
		if p.Code == code {
			return true, nil
		}
	}
	return false, nil
}

type seqRow struct{ val int64 }

func (r *seqRow) Scan(dest ...any) error {
	if ptr, ok := dest[0].(*int64); ok {
		*ptr = r.val
	}
	return nil
}

type seqQuerier struct{ current int64 }

func (q *seqQuerier) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	q.current++
	return &seqRow{val: q.current}
}

func testService() (*Service, *fakeRepo) {
	repo := newFakeRepo()
	return NewService(repo, numerator.New(&seqQuerier{})), repo
}

func TestCreate_GeneratesCodeWhenBlank(t *testing.T) {
	svc, _ := testService()
	ctx := context.Background()

	year := time.Now().UTC().Format("2006")

	a := New("", "Coroa Zircônia Monolítica", types.MustMoney("220.00"))
	require.NoError(t, svc.Create(ctx, a))
	assert.Equal(t, "PRO-"+year+"-00001", a.Code)

	b := New("", "Prótese Total Convencional", types.MustMoney("1100.00"))
	require.NoError(t, svc.Create(ctx, b))
	assert.Equal(t, "PRO-"+year+"-00002", b.Code)
}

func TestCreate_RejectsDuplicateCode(t *testing.T) {
	svc, _ := testService()
	ctx := context.Background()

	a := New("PRO-001", "Coroa Zircônia Monolítica", types.MustMoney("220.00"))
	require.NoError(t, svc.Create(ctx, a))

	b := New("PRO-001", "Prótese Total Convencional", types.MustMoney("1100.00"))
	err := svc.Create(ctx, b)
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
}

func TestCreate_Validation(t *testing.T) {
	svc, repo := testService()

	tests := []struct {
		name string
		proc *Procedure
	}{
		{"missing name", New("PRO-001", "", types.MustMoney("220.00"))},
		{"negative price", New("PRO-001", "Coroa", types.MustMoney("-1"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Create(context.Background(), tt.proc)
			require.Error(t, err)
			assert.True(t, apperror.IsValidation(err))
		})
	}

	stored, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestGetByCode(t *testing.T) {
	svc, _ := testService()
	ctx := context.Background()

	p := New("PRO-001", "Coroa Zircônia Monolítica", types.MustMoney("220.00"))
	require.NoError(t, svc.Create(ctx, p))

	got, err := svc.GetByCode(ctx, "PRO-001")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = svc.GetByCode(ctx, "PRO-999")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
