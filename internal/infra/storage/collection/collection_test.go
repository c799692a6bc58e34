package collection

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
	"github.com/m04kA/SMC-LuxeBook/internal/infra/kv/memstore"
	"github.com/m04kA/SMC-LuxeBook/pkg/logger"
)

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) { return nil, errors.New("boom") }
func (failingStore) Set(context.Context, string, []byte) error   { return errors.New("boom") }

func TestCollection_DefaultsWhenAbsent(t *testing.T) {
	coll := New(memstore.NewStore(), domain.KeyServices, domain.DefaultServices, logger.NewNop())

	got, err := coll.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultServices(), got)
}

func TestCollection_RoundTrip(t *testing.T) {
	ctx := context.Background()
	coll := New(memstore.NewStore(), domain.KeySettings, domain.DefaultSettings, logger.NewNop())

	saved := domain.BusinessSettings{Name: "Night Owl", OpenTime: "18:00", CloseTime: "23:30"}
	require.NoError(t, coll.Set(ctx, saved))

	got, err := coll.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestCollection_MalformedFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "broken json", raw: `[{"id":`},
		{name: "null", raw: `null`},
		{name: "empty", raw: ``},
		{name: "wrong shape", raw: `{"id":"1"}`},
		{name: "unknown status", raw: `[{"id":"1","status":"archived"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memstore.NewStore()
			require.NoError(t, store.Set(ctx, domain.KeyAppointments, []byte(tt.raw)))

			coll := New(store, domain.KeyAppointments, domain.DefaultAppointments, logger.NewNop())
			got, err := coll.Get(ctx)
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestCollection_StorageErrors(t *testing.T) {
	ctx := context.Background()
	coll := New[[]domain.Service](failingStore{}, domain.KeyServices, domain.DefaultServices, logger.NewNop())

	_, err := coll.Get(ctx)
	assert.ErrorIs(t, err, ErrStorage)

	err = coll.Set(ctx, nil)
	assert.ErrorIs(t, err, ErrStorage)
}
