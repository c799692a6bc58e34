package redisstore

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-LuxeBook/internal/infra/kv"
)

// ErrCommand возвращается при ошибке выполнения команды Redis
var ErrCommand = errors.New("kv.redisstore: command failed")

// Store хранилище документов в Redis: один строковый ключ на коллекцию
type Store struct {
	client goredis.Cmdable
	prefix string
}

// NewStore создает новый экземпляр хранилища; prefix добавляется ко всем ключам
func NewStore(client goredis.Cmdable, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrCommand, key, err)
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: SET %s: %v", ErrCommand, key, err)
	}
	return nil
}
