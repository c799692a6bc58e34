package booking_flow

import (
	"context"
	"sync"
	"time"
)

// Flow один экземпляр мастера записи.
// Обычные события применяются под мьютексом; Submit выполняется без блокировки,
// но пока он не завершился, любое новое событие отклоняется с ErrSubmissionInFlight.
type Flow struct {
	id string

	mu           sync.Mutex
	state        State
	submitting   bool
	lastActivity time.Time
}

// Snapshot неизменяемая копия состояния сценария
type Snapshot struct {
	ID           string
	State        State
	Submitting   bool
	LastActivity time.Time
}

func newFlow(id string, initial State, now time.Time) *Flow {
	return &Flow{
		id:           id,
		state:        initial,
		lastActivity: now,
	}
}

// ID возвращает идентификатор сценария
func (f *Flow) ID() string {
	return f.id
}

// Snapshot возвращает текущее состояние
func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	return Snapshot{
		ID:           f.id,
		State:        f.state,
		Submitting:   f.submitting,
		LastActivity: f.lastActivity,
	}
}

// Apply применяет событие через машину состояний
func (f *Flow) Apply(ctx context.Context, m *Machine, event Event, now time.Time) (Snapshot, error) {
	f.mu.Lock()

	if f.submitting {
		snapshot := f.snapshotLocked()
		f.mu.Unlock()
		return snapshot, ErrSubmissionInFlight
	}

	if _, isSubmit := event.(Submit); !isSubmit {
		defer f.mu.Unlock()

		next, err := m.Transition(ctx, f.state, event)
		f.state = next
		f.lastActivity = now
		return f.snapshotLocked(), err
	}

	f.submitting = true
	current := f.state
	f.mu.Unlock()

	next, err := m.Transition(ctx, current, event)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.submitting = false
	f.state = next
	f.lastActivity = now
	return f.snapshotLocked(), err
}

// idleSince возвращает true, если сценарий простаивает с момента deadline и не занят отправкой
func (f *Flow) idleSince(deadline time.Time) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return !f.submitting && f.lastActivity.Before(deadline)
}

func (f *Flow) snapshotLocked() Snapshot {
	return Snapshot{
		ID:           f.id,
		State:        f.state,
		Submitting:   f.submitting,
		LastActivity: f.lastActivity,
	}
}
