package booking_flow

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
	serviceRepo "github.com/m04kA/SMC-LuxeBook/internal/infra/storage/service"
	"github.com/m04kA/SMC-LuxeBook/internal/usecase/create_booking"
	"github.com/m04kA/SMC-LuxeBook/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-LuxeBook/pkg/logger"
	"github.com/m04kA/SMC-LuxeBook/pkg/types"
)

var testNow = time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)

const (
	today    types.DateString = "2026-10-15"
	tomorrow types.DateString = "2026-10-16"
)

type fixedTimeProvider struct {
	mu  sync.Mutex
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.now
}

func (p *fixedTimeProvider) Advance(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.now = p.now.Add(d)
}

type stubServices struct{}

func (stubServices) GetByID(_ context.Context, id string) (*domain.Service, error) {
	for _, s := range domain.DefaultServices() {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, serviceRepo.ErrServiceNotFound
}

// stubSlots отдает слоты по дате; занятость можно менять между вызовами
type stubSlots struct {
	mu    sync.Mutex
	taken map[types.DateString]map[types.TimeString]bool
}

func newStubSlots() *stubSlots {
	return &stubSlots{taken: make(map[types.DateString]map[types.TimeString]bool)}
}

func (s *stubSlots) Take(date types.DateString, t types.TimeString) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.taken[date] == nil {
		s.taken[date] = make(map[types.TimeString]bool)
	}
	s.taken[date][t] = true
}

func (s *stubSlots) Execute(_ context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error) {
	if !req.Date.IsValid() {
		return nil, get_available_slots.ErrInvalidInput
	}
	if req.Date < today {
		return nil, get_available_slots.ErrInvalidDate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var appointments []domain.Appointment
	for t := range s.taken[req.Date] {
		appointments = append(appointments, domain.Appointment{Date: req.Date, Time: t, Status: domain.StatusConfirmed})
	}

	return &get_available_slots.Response{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		OpenTime:  "09:00",
		CloseTime: "10:30",
		Slots:     get_available_slots.GenerateSlots("09:00", "10:30", appointments),
	}, nil
}

// stubBooker записывает запросы; release (если задан) блокирует Execute до закрытия
type stubBooker struct {
	mu       sync.Mutex
	requests []create_booking.Request
	err      error
	entered  chan struct{}
	release  chan struct{}
}

func (b *stubBooker) Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error) {
	if b.entered != nil {
		b.entered <- struct{}{}
	}
	if b.release != nil {
		select {
		case <-b.release:
		case <-ctx.Done():
			return nil, create_booking.ErrCancelled
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.err != nil {
		return nil, b.err
	}
	b.requests = append(b.requests, *req)

	return &create_booking.Response{
		ID:            "appt-1",
		ServiceID:     req.ServiceID,
		ServiceName:   "Luxury Swedish Massage",
		ServicePrice:  85,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Date:          req.Date,
		Time:          req.Time,
		Status:        string(domain.StatusPending),
		Notes:         req.Notes,
		CreatedAt:     testNow,
	}, nil
}

func (b *stubBooker) Requests() []create_booking.Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]create_booking.Request(nil), b.requests...)
}

type recordingMetrics struct {
	mu    sync.Mutex
	calls []string
}

func (m *recordingMetrics) ObserveFlowTransition(from, event, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, from+"/"+event+"/"+outcome)
}

func newTestMachine(slots *stubSlots, booker *stubBooker, metrics Metrics) *Machine {
	m := NewMachine(stubServices{}, slots, booker, metrics, logger.NewNop())
	m.timeProvider = &fixedTimeProvider{now: testNow}
	return m
}
