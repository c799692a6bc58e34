package appointment

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
	"github.com/m04kA/SMC-LuxeBook/internal/infra/kv"
	"github.com/m04kA/SMC-LuxeBook/internal/infra/storage/collection"
	"github.com/m04kA/SMC-LuxeBook/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Repository репозиторий записей на услуги.
// Все изменения выполняются как чтение + преобразование + перезапись всей коллекции
// под мьютексом репозитория. Писатели из разных процессов не синхронизируются.
type Repository struct {
	mu   sync.Mutex
	coll *collection.Collection[[]domain.Appointment]
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(store kv.Store, logger Logger) *Repository {
	return &Repository{
		coll: collection.New(store, domain.KeyAppointments, domain.DefaultAppointments, logger),
	}
}

// List возвращает все записи в порядке хранения
func (r *Repository) List(ctx context.Context) ([]domain.Appointment, error) {
	appointments, err := r.coll.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: List: %v", ErrStorage, err)
	}
	return appointments, nil
}

// ListByDate возвращает записи на указанную дату (любого статуса)
func (r *Repository) ListByDate(ctx context.Context, date types.DateString) ([]domain.Appointment, error) {
	appointments, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Appointment, 0)
	for _, a := range appointments {
		if a.Date == date {
			result = append(result, a)
		}
	}
	return result, nil
}

// SaveAll перезаписывает всю коллекцию
func (r *Repository) SaveAll(ctx context.Context, appointments []domain.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.save(ctx, appointments)
}

// Add добавляет запись в начало коллекции без проверки слота
func (r *Repository) Add(ctx context.Context, appointment domain.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.List(ctx)
	if err != nil {
		return err
	}
	return r.save(ctx, prepend(appointment, current))
}

// AddIfSlotFree добавляет запись в начало коллекции, только если на ее дату и время нет активной записи.
// Проверка и запись выполняются под одной блокировкой.
func (r *Repository) AddIfSlotFree(ctx context.Context, appointment domain.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.List(ctx)
	if err != nil {
		return err
	}

	for i := range current {
		if current[i].Date == appointment.Date && current[i].Time == appointment.Time && current[i].IsActive() {
			return fmt.Errorf("%w: %s %s", ErrSlotTaken, appointment.Date, appointment.Time)
		}
	}
	return r.save(ctx, prepend(appointment, current))
}

// Update заменяет запись с тем же ID; если записи нет, ничего не делает
func (r *Repository) Update(ctx context.Context, appointment domain.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.List(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range current {
		if current[i].ID == appointment.ID {
			current[i] = appointment
			found = true
		}
	}
	if !found {
		return nil
	}

	return r.save(ctx, current)
}

// Modify применяет fn к записи с указанным ID и сохраняет результат.
// Если fn вернула ошибку, коллекция не меняется и ошибка возвращается как есть.
func (r *Repository) Modify(ctx context.Context, id string, fn func(appointment *domain.Appointment) error) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range current {
		if current[i].ID != id {
			continue
		}
		if err := fn(&current[i]); err != nil {
			return nil, err
		}
		if err := r.save(ctx, current); err != nil {
			return nil, err
		}
		modified := current[i]
		return &modified, nil
	}
	return nil, ErrAppointmentNotFound
}

// Delete удаляет запись по ID; если записи нет, ничего не делает
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.List(ctx)
	if err != nil {
		return err
	}

	updated := make([]domain.Appointment, 0, len(current))
	for _, a := range current {
		if a.ID != id {
			updated = append(updated, a)
		}
	}
	if len(updated) == len(current) {
		return nil
	}

	return r.save(ctx, updated)
}

// save пишет коллекцию; вызывается под r.mu
func (r *Repository) save(ctx context.Context, appointments []domain.Appointment) error {
	if appointments == nil {
		appointments = domain.DefaultAppointments()
	}
	if err := r.coll.Set(ctx, appointments); err != nil {
		return fmt.Errorf("%w: SaveAll: %v", ErrStorage, err)
	}
	return nil
}

func prepend(appointment domain.Appointment, current []domain.Appointment) []domain.Appointment {
	updated := make([]domain.Appointment, 0, len(current)+1)
	updated = append(updated, appointment)
	return append(updated, current...)
}
