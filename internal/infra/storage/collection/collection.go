package collection

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LuxeBook/internal/infra/kv"
)

// ErrStorage возвращается при ошибках хранилища (кроме отсутствия ключа)
var ErrStorage = errors.New("collection: storage error")

// ErrEncode возвращается, если значение не удалось сериализовать
var ErrEncode = errors.New("collection: failed to encode value")

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Collection JSON-документ под фиксированным ключом с значением по умолчанию.
//
// Отсутствующий ключ, "null" и JSON, который не удалось разобрать, трактуются одинаково:
// возвращается свежая копия значения по умолчанию. Разобранные документы дальше не валидируются,
// кроме закрытых перечислений (статус, категория), которые отклоняются на этапе разбора.
type Collection[T any] struct {
	store    kv.Store
	key      string
	defaults func() T
	logger   Logger
}

// New создает коллекцию поверх хранилища
func New[T any](store kv.Store, key string, defaults func() T, logger Logger) *Collection[T] {
	return &Collection[T]{
		store:    store,
		key:      key,
		defaults: defaults,
		logger:   logger,
	}
}

// Key возвращает ключ документа
func (c *Collection[T]) Key() string {
	return c.key
}

// Get читает документ или значение по умолчанию
func (c *Collection[T]) Get(ctx context.Context) (T, error) {
	raw, err := c.store.Get(ctx, c.key)
	if errors.Is(err, kv.ErrNotFound) {
		return c.defaults(), nil
	}
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: get %s: %v", ErrStorage, c.key, err)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return c.defaults(), nil
	}

	var value T
	if err := json.Unmarshal(trimmed, &value); err != nil {
		c.logger.Warn("collection %s: stored document is malformed, using defaults: %v", c.key, err)
		return c.defaults(), nil
	}

	return value, nil
}

// Set перезаписывает документ целиком
func (c *Collection[T]) Set(ctx context.Context, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, c.key, err)
	}

	if err := c.store.Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrStorage, c.key, err)
	}

	return nil
}
