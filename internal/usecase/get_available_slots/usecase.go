package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	serviceRepo "github.com/m04kA/SMC-LuxeBook/internal/infra/storage/service"
)

// UseCase use case для получения слотов на дату
type UseCase struct {
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	settingsRepo    SettingsRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		settingsRepo:    settingsRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: service=%s, date=%s", req.ServiceID, req.Date)

	// 2. Дата не должна быть в прошлом
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем существование услуги
	if _, err := uc.serviceRepo.GetByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Получаем часы работы
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	if err := validateSettings(settings); err != nil {
		uc.logger.Error("GetAvailableSlots: %v", err)
		return nil, err
	}

	// 5. Получаем записи на дату
	appointments, err := uc.appointmentRepo.ListByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Генерируем слоты
	slots := GenerateSlots(settings.OpenTime, settings.CloseTime, appointments)

	uc.logger.Info("GetAvailableSlots: generated %d slots for service=%s, date=%s", len(slots), req.ServiceID, req.Date)

	return &Response{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		OpenTime:  settings.OpenTime,
		CloseTime: settings.CloseTime,
		Slots:     slots,
	}, nil
}
