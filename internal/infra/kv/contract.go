package kv

import (
	"context"
	"errors"
)

// ErrNotFound возвращается, когда по ключу ничего не сохранено
var ErrNotFound = errors.New("kv: key not found")

// Store хранилище JSON-документов по фиксированным ключам.
//
// Set перезаписывает значение целиком одной операцией: частично записанное состояние снаружи не наблюдается.
// Сам Store писателей не синхронизирует. Внутри процесса цикл чтение-запись сериализуют репозитории.
// Два процесса, одновременно прочитавшие и записавшие один ключ, теряют изменения друг друга
// (побеждает последняя запись). Это принятое ограничение.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
