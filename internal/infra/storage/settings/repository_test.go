package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
	"github.com/m04kA/SMC-LuxeBook/internal/infra/kv/memstore"
	"github.com/m04kA/SMC-LuxeBook/pkg/logger"
)

func TestRepository_DefaultsAndSave(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewStore()
	repo := NewRepository(store, logger.NewNop())

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), got)

	updated := domain.BusinessSettings{Name: "Night Spa", OpenTime: "18:00", CloseTime: "23:30"}
	require.NoError(t, repo.Save(ctx, updated))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestRepository_MalformedFallsBack(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewStore()
	require.NoError(t, store.Set(ctx, domain.KeySettings, []byte("{broken")))

	got, err := NewRepository(store, logger.NewNop()).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), got)
}
