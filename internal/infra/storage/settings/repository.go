package settings

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
	"github.com/m04kA/SMC-LuxeBook/internal/infra/kv"
	"github.com/m04kA/SMC-LuxeBook/internal/infra/storage/collection"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Repository репозиторий настроек заведения (единственная запись)
type Repository struct {
	coll *collection.Collection[domain.BusinessSettings]
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(store kv.Store, logger Logger) *Repository {
	return &Repository{
		coll: collection.New(store, domain.KeySettings, domain.DefaultSettings, logger),
	}
}

// Get возвращает настройки или значения по умолчанию
func (r *Repository) Get(ctx context.Context) (domain.BusinessSettings, error) {
	settings, err := r.coll.Get(ctx)
	if err != nil {
		return domain.BusinessSettings{}, fmt.Errorf("%w: Get: %v", ErrStorage, err)
	}
	return settings, nil
}

// Save перезаписывает настройки целиком
func (r *Repository) Save(ctx context.Context, settings domain.BusinessSettings) error {
	if err := r.coll.Set(ctx, settings); err != nil {
		return fmt.Errorf("%w: Save: %v", ErrStorage, err)
	}
	return nil
}
