package health

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Pinger checks whether the upstream provider is reachable.
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}

// Status is the result of the most recent upstream probe. CheckedAt is the
// zero time until the first probe has run.
type Status struct {
	Upstream  string        `json:"upstream"`
	Reachable bool          `json:"reachable"`
	CheckedAt time.Time     `json:"checked_at"`
	Latency   time.Duration `json:"latency_ns"`
}

// Monitor periodically probes the upstream provider and keeps the latest
// result for the /health endpoint. No forecast data is stored.
type Monitor struct {
	scheduler *gocron.Scheduler
	pinger    Pinger
	interval  time.Duration
	log       *zap.SugaredLogger

	mu     sync.RWMutex
	status Status
}

// New creates a Monitor probing at the given interval.
func New(pinger Pinger, interval time.Duration, log *zap.SugaredLogger) *Monitor {
	return &Monitor{
		scheduler: gocron.NewScheduler(time.UTC),
		pinger:    pinger,
		interval:  interval,
		log:       log,
	}
}

// Start schedules the periodic probe and runs one immediately so /health
// has data from startup.
func (m *Monitor) Start() error {
	minutes := int(m.interval.Minutes())
	if minutes <= 0 {
		minutes = 5
	}

	if _, err := m.scheduler.Every(minutes).Minutes().Do(m.runProbe); err != nil {
		return err
	}

	m.scheduler.StartAsync()
	go m.runProbe()
	return nil
}

// Stop stops the scheduler and cancels any future probes.
func (m *Monitor) Stop() {
	if m.scheduler != nil {
		m.scheduler.Stop()
	}
}

// Status returns the latest probe result.
func (m *Monitor) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) runProbe() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := time.Now()
	err := m.pinger.Ping(ctx)
	elapsed := time.Since(start)

	if err != nil {
		m.log.Warnw("upstream probe failed", "upstream", m.pinger.Name(), "error", err)
	}

	m.mu.Lock()
	m.status = Status{
		Upstream:  m.pinger.Name(),
		Reachable: err == nil,
		CheckedAt: start.UTC(),
		Latency:   elapsed,
	}
	m.mu.Unlock()
}
