package appointments

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
	"github.com/m04kA/SMC-LuxeBook/internal/infra/kv/memstore"
	appointmentRepo "github.com/m04kA/SMC-LuxeBook/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-LuxeBook/pkg/logger"
)

func newTestService(t *testing.T, seed ...domain.Appointment) (*Service, *appointmentRepo.Repository) {
	t.Helper()
	repo := appointmentRepo.NewRepository(memstore.NewStore(), logger.NewNop())
	require.NoError(t, repo.SaveAll(context.Background(), seed))
	return NewService(repo, logger.NewNop()), repo
}

func appt(id string, createdAt int64, status domain.AppointmentStatus) domain.Appointment {
	return domain.Appointment{
		ID:            id,
		ServiceID:     "1",
		ServiceName:   "Luxury Swedish Massage",
		ServicePrice:  85,
		CustomerName:  "Ann",
		CustomerPhone: "555",
		Date:          "2026-10-20",
		Time:          "09:00",
		Status:        status,
		CreatedAt:     createdAt,
	}
}

func TestService_ListNewestFirst(t *testing.T) {
	svc, _ := newTestService(t,
		appt("old", 100, domain.StatusPending),
		appt("new", 300, domain.StatusConfirmed),
		appt("mid-a", 200, domain.StatusCancelled),
		appt("mid-b", 200, domain.StatusPending),
	)

	resp, err := svc.List(context.Background())
	require.NoError(t, err)

	got := make([]string, 0, len(resp.Appointments))
	for _, a := range resp.Appointments {
		got = append(got, a.ID)
	}
	assert.Equal(t, []string{"new", "mid-a", "mid-b", "old"}, got)
}

func TestService_Confirm(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t,
		appt("p", 1, domain.StatusPending),
		appt("c", 2, domain.StatusConfirmed),
		appt("x", 3, domain.StatusCancelled),
	)

	resp, err := svc.Confirm(ctx, "p")
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 3)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	for _, a := range all {
		if a.ID == "p" {
			assert.Equal(t, domain.StatusConfirmed, a.Status)
		}
	}

	_, err = svc.Confirm(ctx, "c")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.Confirm(ctx, "x")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.Confirm(ctx, "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_Cancel(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t,
		appt("p", 1, domain.StatusPending),
		appt("c", 2, domain.StatusConfirmed),
	)

	_, err := svc.Cancel(ctx, "p")
	require.NoError(t, err)
	_, err = svc.Cancel(ctx, "c")
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	for _, a := range all {
		assert.Equal(t, domain.StatusCancelled, a.Status)
	}

	_, err = svc.Cancel(ctx, "p")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t,
		appt("a", 1, domain.StatusConfirmed),
		appt("b", 2, domain.StatusCancelled),
	)

	_, err := svc.Delete(ctx, "a", false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	resp, err := svc.Delete(ctx, "a", true)
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "b", resp.Appointments[0].ID)

	// повторное удаление - no-op
	resp, err = svc.Delete(ctx, "a", true)
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)
}

func TestService_ConcurrentConfirmAndCancel(t *testing.T) {
	ctx := context.Background()
	const count = 30
	seed := make([]domain.Appointment, 0, count)
	for i := 0; i < count; i++ {
		seed = append(seed, appt(fmt.Sprintf("a-%d", i), int64(i), domain.StatusPending))
	}
	svc, repo := newTestService(t, seed...)

	start := make(chan struct{})
	var wg sync.WaitGroup
	for _, a := range seed {
		wg.Add(2)
		go func(id string) {
			defer wg.Done()
			<-start
			// подтверждение может проиграть отмене
			_, err := svc.Confirm(ctx, id)
			if err != nil {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		}(a.ID)
		go func(id string) {
			defer wg.Done()
			<-start
			_, err := svc.Cancel(ctx, id)
			assert.NoError(t, err)
		}(a.ID)
	}
	close(start)
	wg.Wait()

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, count)
	for _, a := range all {
		assert.Equal(t, domain.StatusCancelled, a.Status, a.ID)
	}
}
