package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
	"github.com/m04kA/SMC-LuxeBook/internal/infra/kv/memstore"
	"github.com/m04kA/SMC-LuxeBook/pkg/logger"
)

func TestRepository_SeedWhenEmpty(t *testing.T) {
	repo := NewRepository(memstore.NewStore(), logger.NewNop())

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, domain.DefaultServices(), got)
}

func TestRepository_SavedEmptyCatalogueStaysEmpty(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(memstore.NewStore(), logger.NewNop())

	require.NoError(t, repo.SaveAll(ctx, nil))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(memstore.NewStore(), logger.NewNop())

	svc, err := repo.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Gel Manicure Deluxe", svc.Name)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(memstore.NewStore(), logger.NewNop())

	saved := []domain.Service{{
		ID:              "x",
		Name:            "Hot Stone",
		Description:     "Warm basalt stones.",
		DurationMinutes: 90,
		Price:           110.5,
		Category:        domain.CategorySpa,
	}}
	require.NoError(t, repo.SaveAll(ctx, saved))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestRepository_AddReplaceDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(memstore.NewStore(), logger.NewNop())

	added := domain.Service{ID: "x", Name: "Hot Stone", DurationMinutes: 90, Price: 110, Category: domain.CategorySpa}
	require.NoError(t, repo.Add(ctx, added))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "x", all[4].ID)

	added.Price = 120
	require.NoError(t, repo.Replace(ctx, added))
	got, err := repo.GetByID(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, 120.0, got.Price)

	err = repo.Replace(ctx, domain.Service{ID: "missing"})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	remaining, err := repo.Delete(ctx, "x")
	require.NoError(t, err)
	assert.Len(t, remaining, 4)

	// повторное удаление - no-op
	remaining, err = repo.Delete(ctx, "x")
	require.NoError(t, err)
	assert.Len(t, remaining, 4)
}

func TestRepository_ConcurrentAddKeepsEveryWrite(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(memstore.NewStore(), logger.NewNop())

	const writers = 50
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			assert.NoError(t, repo.Add(ctx, domain.Service{
				ID:              fmt.Sprintf("s-%d", i),
				Name:            "Service",
				DurationMinutes: 30,
				Price:           10,
				Category:        domain.CategoryNails,
			}))
		}(i)
	}
	close(start)
	wg.Wait()

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, len(domain.DefaultServices())+writers)
}
