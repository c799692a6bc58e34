package redisstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LuxeBook/internal/infra/kv"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client, "test:"), server
}

func TestStore_GetSet(t *testing.T) {
	ctx := context.Background()
	store, server := newTestStore(t)

	_, err := store.Get(ctx, "luxebook_settings")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, store.Set(ctx, "luxebook_settings", []byte(`{"name":"Spa"}`)))

	raw, err := server.Get("test:luxebook_settings")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Spa"}`, raw)

	got, err := store.Get(ctx, "luxebook_settings")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Spa"}`, string(got))
}

func TestStore_ServerDown(t *testing.T) {
	store, server := newTestStore(t)
	server.Close()

	_, err := store.Get(context.Background(), "luxebook_settings")
	assert.ErrorIs(t, err, ErrCommand)
}
