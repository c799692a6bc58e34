package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-LuxeBook/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/SMC-LuxeBook/internal/infra/storage/service"
	"github.com/m04kA/SMC-LuxeBook/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-LuxeBook/pkg/types"
)

// UseCase use case для создания записи клиентом
type UseCase struct {
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	slots           SlotsProvider
	metrics         Metrics
	submitDelay     time.Duration
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// submitDelay - искусственная пауза перед записью (0 - без паузы)
func NewUseCase(
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	slots SlotsProvider,
	metrics Metrics,
	submitDelay time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		slots:           slots,
		metrics:         metrics,
		submitDelay:     submitDelay,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// После паузы занятость слота перепроверяется в репозитории атомарно с записью.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	// 1. Валидация входных данных (до любого обращения к хранилищу)
	normalizeRequest(req)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: service=%s, date=%s, time=%s", req.ServiceID, req.Date, req.Time)

	// 2. Получаем услугу для снимка названия и цены
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Проверяем, что время - один из свободных слотов дня
	if err := uc.checkSlot(ctx, req); err != nil {
		return nil, err
	}

	// 4. Искусственная пауза перед записью
	if err := uc.wait(ctx); err != nil {
		uc.logger.Warn("CreateBooking: submission abandoned for service=%s, date=%s, time=%s: %v",
			req.ServiceID, req.Date, req.Time, err)
		return nil, fmt.Errorf("%w: %v", ErrCancelled, err)
	}

	// 5. Создаем запись со снимком услуги
	now := uc.timeProvider.Now()
	appointment := domain.Appointment{
		ID:            uuid.NewString(),
		ServiceID:     service.ID,
		ServiceName:   service.Name,
		ServicePrice:  service.Price,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Date:          req.Date,
		Time:          req.Time,
		Status:        domain.StatusPending,
		Notes:         req.Notes,
		CreatedAt:     now.UnixMilli(),
	}

	if err := uc.appointmentRepo.AddIfSlotFree(ctx, appointment); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: slot %s %s was taken during submission", req.Date, req.Time)
			return nil, fmt.Errorf("%w: %s %s", ErrSlotNotAvailable, req.Date, req.Time)
		}
		uc.logger.Error("CreateBooking: failed to save appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to save appointment: %v", ErrInternal, err)
	}

	if uc.metrics != nil {
		uc.metrics.IncBookingsCreated()
	}

	uc.logger.Info("CreateBooking: successfully created appointment id=%s", appointment.ID)

	return &Response{
		ID:            appointment.ID,
		ServiceID:     appointment.ServiceID,
		ServiceName:   appointment.ServiceName,
		ServicePrice:  appointment.ServicePrice,
		CustomerName:  appointment.CustomerName,
		CustomerPhone: appointment.CustomerPhone,
		Date:          appointment.Date,
		Time:          appointment.Time,
		Status:        string(appointment.Status),
		Notes:         appointment.Notes,
		CreatedAt:     appointment.CreatedAtTime(),
	}, nil
}

// checkSlot проверяет время по сгенерированным слотам даты
func (uc *UseCase) checkSlot(ctx context.Context, req *Request) error {
	resp, err := uc.slots.Execute(ctx, &get_available_slots.Request{
		ServiceID: req.ServiceID,
		Date:      req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, get_available_slots.ErrServiceNotFound):
			return ErrServiceNotFound
		case errors.Is(err, get_available_slots.ErrInvalidDate):
			return fmt.Errorf("%w: %v", ErrInvalidDate, err)
		case errors.Is(err, get_available_slots.ErrInvalidInput):
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("CreateBooking: failed to get slots: %v", err)
			return fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
		}
	}

	slot, ok := domain.FindSlot(resp.Slots, normalizeTime(req.Time))
	if !ok {
		uc.logger.Warn("CreateBooking: time=%s is not a slot of %s", req.Time, req.Date)
		return fmt.Errorf("%w: %s is not offered on %s", ErrInvalidTimeSlot, req.Time, req.Date)
	}
	if !slot.Available {
		uc.logger.Warn("CreateBooking: slot %s %s is already taken", req.Date, req.Time)
		return ErrSlotNotAvailable
	}

	req.Time = slot.Time
	return nil
}

// wait выдерживает паузу, прерываясь при отмене контекста
func (uc *UseCase) wait(ctx context.Context) error {
	if uc.submitDelay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(uc.submitDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// normalizeTime приводит "9:00" к "09:00"
func normalizeTime(t types.TimeString) types.TimeString {
	normalized, err := types.NewTimeStringFromString(string(t))
	if err != nil {
		return t
	}
	return normalized
}
