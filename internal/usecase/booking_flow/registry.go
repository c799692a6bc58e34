package booking_flow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

const (
	// DefaultIdleTTL время простоя, после которого сценарий удаляется
	DefaultIdleTTL = 30 * time.Minute

	// DefaultSweepSchedule расписание очистки простаивающих сценариев
	DefaultSweepSchedule = "@every 5m"
)

// Registry хранит активные сценарии записи в памяти процесса
type Registry struct {
	machine      *Machine
	idleTTL      time.Duration
	timeProvider TimeProvider
	logger       Logger

	mu    sync.RWMutex
	flows map[string]*Flow

	cron *cron.Cron
}

// NewRegistry создает новый реестр сценариев
func NewRegistry(machine *Machine, idleTTL time.Duration, logger Logger) *Registry {
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}

	return &Registry{
		machine:      machine,
		idleTTL:      idleTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		flows:        make(map[string]*Flow),
	}
}

// Start создает новый сценарий в начальном состоянии
func (r *Registry) Start() Snapshot {
	flow := newFlow(uuid.NewString(), r.machine.Initial(), r.timeProvider.Now())

	r.mu.Lock()
	r.flows[flow.ID()] = flow
	r.mu.Unlock()

	r.logger.Info("BookingFlow: started flow id=%s", flow.ID())
	return flow.Snapshot()
}

// Get возвращает состояние сценария
func (r *Registry) Get(id string) (Snapshot, error) {
	flow, err := r.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	return flow.Snapshot(), nil
}

// Apply применяет событие к сценарию; после Exit сценарий удаляется из реестра
func (r *Registry) Apply(ctx context.Context, id string, event Event) (Snapshot, error) {
	flow, err := r.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}

	snapshot, err := flow.Apply(ctx, r.machine, event, r.timeProvider.Now())
	if err != nil {
		return snapshot, err
	}

	if _, exited := snapshot.State.(Exited); exited {
		r.remove(id)
		r.logger.Info("BookingFlow: flow id=%s exited", id)
	}

	return snapshot, nil
}

// Len возвращает количество активных сценариев
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.flows)
}

// Sweep удаляет сценарии, простаивающие дольше idleTTL. Возвращает количество удаленных
func (r *Registry) Sweep() int {
	deadline := r.timeProvider.Now().Add(-r.idleTTL)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, flow := range r.flows {
		if flow.idleSince(deadline) {
			delete(r.flows, id)
			removed++
		}
	}

	if removed > 0 {
		r.logger.Info("BookingFlow: swept %d idle flows, %d left", removed, len(r.flows))
	}
	return removed
}

// StartSweeper запускает периодическую очистку по cron-расписанию
func (r *Registry) StartSweeper(schedule string) error {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { r.Sweep() }); err != nil {
		return fmt.Errorf("%w: invalid sweep schedule %q: %v", ErrInternal, schedule, err)
	}
	c.Start()

	r.mu.Lock()
	r.cron = c
	r.mu.Unlock()

	r.logger.Info("BookingFlow: sweeper started, schedule=%s, idle ttl=%s", schedule, r.idleTTL)
	return nil
}

// StopSweeper останавливает очистку и ждет завершения текущего запуска
func (r *Registry) StopSweeper() {
	r.mu.Lock()
	c := r.cron
	r.cron = nil
	r.mu.Unlock()

	if c == nil {
		return
	}
	<-c.Stop().Done()
}

func (r *Registry) lookup(id string) (*Flow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	flow, ok := r.flows[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrFlowNotFound, id)
	}
	return flow, nil
}

func (r *Registry) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.flows, id)
}
