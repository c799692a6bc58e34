package create_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
	"github.com/m04kA/SMC-LuxeBook/internal/infra/kv/memstore"
	appointmentRepo "github.com/m04kA/SMC-LuxeBook/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/SMC-LuxeBook/internal/infra/storage/service"
	settingsRepo "github.com/m04kA/SMC-LuxeBook/internal/infra/storage/settings"
	"github.com/m04kA/SMC-LuxeBook/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-LuxeBook/pkg/logger"
)

const futureDate = "2099-03-10"

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type countingMetrics struct {
	created int
}

func (m *countingMetrics) IncBookingsCreated() {
	m.created++
}

type fixture struct {
	uc           *UseCase
	appointments *appointmentRepo.Repository
	services     *serviceRepo.Repository
	metrics      *countingMetrics
	now          time.Time
}

func newFixture(t *testing.T, delay time.Duration) *fixture {
	t.Helper()
	store := memstore.NewStore()
	log := logger.NewNop()

	services := serviceRepo.NewRepository(store, log)
	appointments := appointmentRepo.NewRepository(store, log)
	settings := settingsRepo.NewRepository(store, log)
	require.NoError(t, settings.Save(context.Background(), domain.BusinessSettings{
		Name:      "Test Spa",
		OpenTime:  "09:00",
		CloseTime: "11:00",
	}))

	slots := get_available_slots.NewUseCase(services, appointments, settings, log)
	f := &fixture{
		appointments: appointments,
		services:     services,
		metrics:      &countingMetrics{},
		now:          time.Date(2026, 10, 15, 12, 30, 0, 0, time.UTC),
	}
	f.uc = NewUseCase(services, appointments, slots, f.metrics, delay, log)
	f.uc.timeProvider = &fixedTimeProvider{now: f.now}
	return f
}

func validRequest() *Request {
	return &Request{
		ServiceID:     "1",
		Date:          futureDate,
		Time:          "09:30",
		CustomerName:  "  Jane Doe ",
		CustomerPhone: "555-0101",
		Notes:         "first visit",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0)

	resp, err := f.uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	_, err = uuid.Parse(resp.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Luxury Swedish Massage", resp.ServiceName)
	assert.Equal(t, 85.0, resp.ServicePrice)
	assert.Equal(t, "Jane Doe", resp.CustomerName)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, f.now.UnixMilli(), resp.CreatedAt.UnixMilli())
	assert.Equal(t, 1, f.metrics.created)

	stored, err := f.appointments.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, resp.ID, stored[0].ID)
	assert.Equal(t, domain.StatusPending, stored[0].Status)
}

func TestUseCase_Execute_NewestFirst(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0)

	first, err := f.uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Time = "10:00"
	second, err := f.uc.Execute(ctx, req)
	require.NoError(t, err)

	stored, err := f.appointments.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, second.ID, stored[0].ID)
	assert.Equal(t, first.ID, stored[1].ID)
}

func TestUseCase_Execute_RejectedBeforePersistence(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "empty customer name", mutate: func(r *Request) { r.CustomerName = "" }, wantErr: ErrInvalidInput},
		{name: "blank customer name", mutate: func(r *Request) { r.CustomerName = "   " }, wantErr: ErrInvalidInput},
		{name: "empty phone", mutate: func(r *Request) { r.CustomerPhone = "" }, wantErr: ErrInvalidInput},
		{name: "empty service", mutate: func(r *Request) { r.ServiceID = "" }, wantErr: ErrInvalidInput},
		{name: "malformed date", mutate: func(r *Request) { r.Date = "10.03.2099" }, wantErr: ErrInvalidInput},
		{name: "malformed time", mutate: func(r *Request) { r.Time = "half past nine" }, wantErr: ErrInvalidInput},
		{name: "unknown service", mutate: func(r *Request) { r.ServiceID = "404" }, wantErr: ErrServiceNotFound},
		{name: "past date", mutate: func(r *Request) { r.Date = "2001-01-01" }, wantErr: ErrInvalidDate},
		{name: "not on the grid", mutate: func(r *Request) { r.Time = "09:15" }, wantErr: ErrInvalidTimeSlot},
		{name: "after closing", mutate: func(r *Request) { r.Time = "11:00" }, wantErr: ErrInvalidTimeSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t, 0)

			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(ctx, req)
			assert.ErrorIs(t, err, tt.wantErr)

			stored, err := f.appointments.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, stored)
			assert.Zero(t, f.metrics.created)
		})
	}
}

func TestUseCase_Execute_SlotTaken(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0)

	_, err := f.uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	_, err = f.uc.Execute(ctx, validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	stored, err := f.appointments.List(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestUseCase_Execute_SlotTakenDuringDelay(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 50*time.Millisecond)

	// оба запроса проходят проверку слота до того, как любой из них запишет
	const clients = 2
	start := make(chan struct{})
	errs := make([]error, clients)
	var wg sync.WaitGroup
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = f.uc.Execute(ctx, validRequest())
		}(i)
	}
	close(start)
	wg.Wait()

	succeeded, rejected := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrSlotNotAvailable):
			rejected++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)

	stored, err := f.appointments.List(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestUseCase_Execute_CancelledDuringDelay(t *testing.T) {
	f := newFixture(t, time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := f.uc.Execute(ctx, validRequest())
	assert.ErrorIs(t, err, ErrCancelled)

	stored, err := f.appointments.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestUseCase_Execute_WaitsForDelay(t *testing.T) {
	f := newFixture(t, 30*time.Millisecond)

	started := time.Now()
	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(started), 30*time.Millisecond)
}

func TestUseCase_Execute_DeletedServiceKeepsSnapshot(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0)

	resp, err := f.uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, f.services.SaveAll(ctx, []domain.Service{}))

	stored, err := f.appointments.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, resp.ServiceName, stored[0].ServiceName)
	assert.Equal(t, resp.ServicePrice, stored[0].ServicePrice)
}
