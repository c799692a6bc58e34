package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-LuxeBook/internal/infra/kv"
	"github.com/m04kA/SMC-LuxeBook/pkg/psqlbuilder"
)

// TableName таблица с документами коллекций
const TableName = "luxebook_kv"

const createTableQuery = `CREATE TABLE IF NOT EXISTS ` + TableName + ` (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Store хранилище документов в PostgreSQL: одна строка на ключ
type Store struct {
	db DBExecutor
}

// NewStore создает новый экземпляр хранилища
func NewStore(db DBExecutor) *Store {
	return &Store{db: db}
}

// EnsureSchema создает таблицу, если её ещё нет
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableQuery); err != nil {
		return fmt.Errorf("%w: EnsureSchema - create table: %v", ErrExecQuery, err)
	}
	return nil
}

// Get получает документ по ключу
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := psqlbuilder.Select("value").
		From(TableName).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan value: %v", ErrScanRow, err)
	}

	return value, nil
}

// Set перезаписывает документ одним upsert-запросом
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := psqlbuilder.Insert(TableName).
		Columns("key", "value", "updated_at").
		Values(key, string(value), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
