package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
	"github.com/m04kA/SMC-LuxeBook/internal/infra/kv"
	"github.com/m04kA/SMC-LuxeBook/internal/infra/storage/collection"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Repository репозиторий каталога услуг.
// Изменения выполняются под мьютексом: чтение и перезапись каталога не перемежаются.
type Repository struct {
	mu   sync.Mutex
	coll *collection.Collection[[]domain.Service]
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(store kv.Store, logger Logger) *Repository {
	return &Repository{
		coll: collection.New(store, domain.KeyServices, domain.DefaultServices, logger),
	}
}

// List возвращает каталог; если ничего не сохранено - стартовый набор
func (r *Repository) List(ctx context.Context) ([]domain.Service, error) {
	services, err := r.coll.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: List: %v", ErrStorage, err)
	}
	return services, nil
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	services, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range services {
		if services[i].ID == id {
			return &services[i], nil
		}
	}
	return nil, ErrServiceNotFound
}

// SaveAll перезаписывает каталог целиком
func (r *Repository) SaveAll(ctx context.Context, services []domain.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.save(ctx, services)
}

// Add добавляет услугу в конец каталога
func (r *Repository) Add(ctx context.Context, service domain.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.List(ctx)
	if err != nil {
		return err
	}
	return r.save(ctx, append(current, service))
}

// Replace заменяет услугу с тем же ID
func (r *Repository) Replace(ctx context.Context, service domain.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.List(ctx)
	if err != nil {
		return err
	}

	index := indexOf(current, service.ID)
	if index < 0 {
		return ErrServiceNotFound
	}
	current[index] = service
	return r.save(ctx, current)
}

// Delete удаляет услугу и возвращает оставшийся каталог; отсутствующая услуга - не ошибка
func (r *Repository) Delete(ctx context.Context, id string) ([]domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	index := indexOf(current, id)
	if index < 0 {
		return current, nil
	}

	updated := append(current[:index:index], current[index+1:]...)
	if err := r.save(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// save пишет каталог; вызывается под r.mu
func (r *Repository) save(ctx context.Context, services []domain.Service) error {
	if services == nil {
		services = []domain.Service{}
	}
	if err := r.coll.Set(ctx, services); err != nil {
		return fmt.Errorf("%w: SaveAll: %v", ErrStorage, err)
	}
	return nil
}

func indexOf(services []domain.Service, id string) int {
	for i := range services {
		if services[i].ID == id {
			return i
		}
	}
	return -1
}
