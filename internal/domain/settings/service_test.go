package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protheo/internal/core/apperror"
	"protheo/internal/core/types"
)

type fakeRepo struct {
	stored *CompanySettings
}

func (r *fakeRepo) Get(_ context.Context) (*CompanySettings, error) {
	if r.stored == nil {
		return nil, apperror.NewNotFound("settings", nil)
	}
	return r.stored, nil
}

func (r *fakeRepo) Upsert(_ context.Context, s *CompanySettings) error {
	r.stored = s
	return nil
}

func TestGet_DefaultsBeforeFirstSave(t *testing.T) {
	svc := NewService(&fakeRepo{})

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Laboratório de Prótese", got.Name)
	assert.Nil(t, got.GlobalDiscount)
}

func TestSave_CreatesThenOverwrites(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	first := Default()
	first.Name = "ProTech Lab"
	saved, err := svc.Save(ctx, first)
	require.NoError(t, err)
	firstID := saved.ID

	second := Default()
	second.Name = "ProTech Laboratório"
	pct := types.MustMoney("10")
	second.GlobalDiscount = &pct

	saved, err = svc.Save(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, firstID, saved.ID, "row identity survives overwrites")
	assert.Equal(t, "ProTech Laboratório", repo.stored.Name)
	require.NotNil(t, repo.stored.GlobalDiscount)
}

func TestSave_Validation(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	in := Default()
	in.Name = ""
	_, err := svc.Save(ctx, in)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	in = Default()
	bad := types.MustMoney("120")
	in.GlobalDiscount = &bad
	_, err = svc.Save(ctx, in)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestGlobalDiscount(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	got, err := svc.GlobalDiscount(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	cfg := Default()
	pct := types.MustMoney("7.5")
	cfg.GlobalDiscount = &pct
	_, err = svc.Save(ctx, cfg)
	require.NoError(t, err)

	got, err = svc.GlobalDiscount(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, types.MustMoney("7.5").Equal(*got))
}
