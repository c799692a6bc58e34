package booking_flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
	serviceRepo "github.com/m04kA/SMC-LuxeBook/internal/infra/storage/service"
	"github.com/m04kA/SMC-LuxeBook/internal/usecase/create_booking"
	"github.com/m04kA/SMC-LuxeBook/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-LuxeBook/pkg/types"
)

const (
	outcomeOK       = "ok"
	outcomeRejected = "rejected"
)

// Machine функция переходов мастера записи.
// Состояния не хранит: каждое состояние - значение, переход строит новое.
type Machine struct {
	serviceRepo  ServiceRepository
	slots        SlotsProvider
	booker       BookingCreator
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewMachine создает новый экземпляр машины состояний
func NewMachine(
	serviceRepo ServiceRepository,
	slots SlotsProvider,
	booker BookingCreator,
	metrics Metrics,
	logger Logger,
) *Machine {
	return &Machine{
		serviceRepo:  serviceRepo,
		slots:        slots,
		booker:       booker,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Initial возвращает стартовое состояние
func (m *Machine) Initial() State {
	return SelectService{}
}

// Transition применяет событие к состоянию.
// При ошибке возвращается исходное состояние без изменений.
func (m *Machine) Transition(ctx context.Context, state State, event Event) (State, error) {
	next, err := m.transition(ctx, state, event)

	outcome := outcomeOK
	if err != nil {
		outcome = outcomeRejected
		m.logger.Warn("BookingFlow: %s on %s rejected: %v", event.Type(), state.Name(), err)
		next = state
	} else {
		m.logger.Info("BookingFlow: %s -> %s (%s)", state.Name(), next.Name(), event.Type())
	}

	if m.metrics != nil {
		m.metrics.ObserveFlowTransition(string(state.Name()), string(event.Type()), outcome)
	}

	return next, err
}

func (m *Machine) transition(ctx context.Context, state State, event Event) (State, error) {
	// Выйти можно из любого шага, кроме уже завершенного
	if _, ok := event.(Exit); ok {
		if _, exited := state.(Exited); !exited {
			return Exited{}, nil
		}
	}

	switch s := state.(type) {
	case SelectService:
		if e, ok := event.(ChooseService); ok {
			return m.chooseService(ctx, e)
		}

	case SelectSlot:
		switch e := event.(type) {
		case ChangeDate:
			return m.changeDate(ctx, s, e)
		case ChooseSlot:
			return chooseSlot(s, e)
		case Next:
			return m.next(ctx, s)
		case Back:
			return SelectService{}, nil
		}

	case ConfirmDetails:
		switch e := event.(type) {
		case Back:
			return m.back(ctx, s)
		case Submit:
			return m.submit(ctx, s, e)
		}

	case Success:
		if _, ok := event.(BookAnother); ok {
			return SelectService{}, nil
		}
	}

	return nil, fmt.Errorf("%w: %s in state %s", ErrIllegalTransition, event.Type(), state.Name())
}

// chooseService переходит к выбору слота на сегодняшнюю дату
func (m *Machine) chooseService(ctx context.Context, e ChooseService) (State, error) {
	service, err := m.serviceRepo.GetByID(ctx, e.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrServiceNotFound, e.ServiceID)
		}
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	today := types.NewDateString(m.timeProvider.Now())
	slots, err := m.loadSlots(ctx, service.ID, today)
	if err != nil {
		return nil, err
	}

	return SelectSlot{
		Service: *service,
		Date:    today,
		Slots:   slots,
	}, nil
}

// changeDate перегенерирует слоты; выбор сохраняется, только если слот все еще свободен
func (m *Machine) changeDate(ctx context.Context, s SelectSlot, e ChangeDate) (State, error) {
	slots, err := m.loadSlots(ctx, s.Service.ID, e.Date)
	if err != nil {
		return nil, err
	}

	return SelectSlot{
		Service:      s.Service,
		Date:         e.Date,
		Slots:        slots,
		SelectedTime: keepSelection(slots, s.SelectedTime),
	}, nil
}

func chooseSlot(s SelectSlot, e ChooseSlot) (State, error) {
	slot, ok := domain.FindSlot(s.Slots, e.Time)
	if !ok || !slot.Available {
		return nil, fmt.Errorf("%w: %s on %s", ErrSlotNotAvailable, e.Time, s.Date)
	}

	s.SelectedTime = slot.Time
	return s, nil
}

// next проверяет выбранный слот по свежим данным
func (m *Machine) next(ctx context.Context, s SelectSlot) (State, error) {
	if !s.HasSelection() {
		return nil, ErrSlotNotSelected
	}

	slots, err := m.loadSlots(ctx, s.Service.ID, s.Date)
	if err != nil {
		return nil, err
	}
	if keepSelection(slots, s.SelectedTime) == "" {
		return nil, fmt.Errorf("%w: %s on %s was taken", ErrSlotNotAvailable, s.SelectedTime, s.Date)
	}

	return ConfirmDetails{
		Service: s.Service,
		Date:    s.Date,
		Time:    s.SelectedTime,
	}, nil
}

// back возвращает к выбору слота, сохраняя выбранное время
func (m *Machine) back(ctx context.Context, s ConfirmDetails) (State, error) {
	slots, err := m.loadSlots(ctx, s.Service.ID, s.Date)
	if err != nil {
		return nil, err
	}

	return SelectSlot{
		Service:      s.Service,
		Date:         s.Date,
		Slots:        slots,
		SelectedTime: keepSelection(slots, s.Time),
	}, nil
}

func (m *Machine) submit(ctx context.Context, s ConfirmDetails, e Submit) (State, error) {
	resp, err := m.booker.Execute(ctx, &create_booking.Request{
		ServiceID:     s.Service.ID,
		Date:          s.Date,
		Time:          s.Time,
		CustomerName:  e.CustomerName,
		CustomerPhone: e.CustomerPhone,
		Notes:         e.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, create_booking.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidDetails, err)
		case errors.Is(err, create_booking.ErrSlotNotAvailable),
			errors.Is(err, create_booking.ErrInvalidTimeSlot):
			return nil, fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
		case errors.Is(err, create_booking.ErrServiceNotFound):
			return nil, fmt.Errorf("%w: %v", ErrServiceNotFound, err)
		case errors.Is(err, create_booking.ErrInvalidDate):
			return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		case errors.Is(err, create_booking.ErrCancelled):
			return nil, fmt.Errorf("%w: %v", ErrSubmissionCancelled, err)
		default:
			return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
	}

	return Success{Appointment: domain.Appointment{
		ID:            resp.ID,
		ServiceID:     resp.ServiceID,
		ServiceName:   resp.ServiceName,
		ServicePrice:  resp.ServicePrice,
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		Date:          resp.Date,
		Time:          resp.Time,
		Status:        domain.AppointmentStatus(resp.Status),
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.UnixMilli(),
	}}, nil
}

func (m *Machine) loadSlots(ctx context.Context, serviceID string, date types.DateString) ([]domain.TimeSlot, error) {
	resp, err := m.slots.Execute(ctx, &get_available_slots.Request{
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, get_available_slots.ErrServiceNotFound):
			return nil, fmt.Errorf("%w: id=%s", ErrServiceNotFound, serviceID)
		case errors.Is(err, get_available_slots.ErrInvalidDate),
			errors.Is(err, get_available_slots.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		default:
			return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
		}
	}
	return resp.Slots, nil
}

// keepSelection возвращает время, если оно есть среди свободных слотов, иначе пустую строку
func keepSelection(slots []domain.TimeSlot, selected types.TimeString) types.TimeString {
	if selected == "" {
		return ""
	}
	slot, ok := domain.FindSlot(slots, selected)
	if !ok || !slot.Available {
		return ""
	}
	return slot.Time
}
