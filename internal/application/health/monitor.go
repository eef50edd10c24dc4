package health

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Pinger is the storage probe run on every check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Metrics receives health check outcomes.
type Metrics interface {
	SetStorageUp(up bool)
	IncStorageChecks(status string)
}

// Status represents the outcome of the latest storage check
type Status struct {
	Healthy   bool
	Error     string
	CheckedAt time.Time
}

// Monitor periodically pings storage and records the outcome
type Monitor struct {
	pinger   Pinger
	metrics  Metrics
	interval time.Duration
	timeout  time.Duration
	logger   *zap.Logger

	mu      sync.RWMutex
	running bool
	stopCh  chan struct{}
	last    Status
}

// NewMonitor creates a new storage health monitor
func NewMonitor(pinger Pinger, metrics Metrics, interval, timeout time.Duration, logger *zap.Logger) *Monitor {
	return &Monitor{
		pinger:   pinger,
		metrics:  metrics,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
}

// Start starts the health monitor
func (m *Monitor) Start() {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return
	}
	m.running = true
	m.mu.Unlock()

	go m.run()
}

// Stop stops the health monitor
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	m.mu.Unlock()

	close(m.stopCh)
}

// run is the main health monitoring loop
func (m *Monitor) run() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	// First check runs immediately so status is known right after startup.
	m.checkHealth()

	for {
		select {
		case <-m.stopCh:
			return
		case <-ticker.C:
			m.checkHealth()
		}
	}
}

// checkHealth pings storage once and records the outcome
func (m *Monitor) checkHealth() {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	status := Status{
		Healthy:   true,
		CheckedAt: time.Now(),
	}
	if err := m.pinger.Ping(ctx); err != nil {
		status.Healthy = false
		status.Error = err.Error()
	}

	m.mu.Lock()
	m.last = status
	m.mu.Unlock()

	if status.Healthy {
		m.metrics.SetStorageUp(true)
		m.metrics.IncStorageChecks("healthy")
		m.logger.Debug("storage health check passed")
		return
	}

	m.metrics.SetStorageUp(false)
	m.metrics.IncStorageChecks("unhealthy")
	m.logger.Warn("storage health check failed", zap.String("error", status.Error))
}

// GetStatus returns the latest check snapshot
func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.last
}

// IsHealthy returns true if the latest storage check passed
func (m *Monitor) IsHealthy() bool {
	return m.GetStatus().Healthy
}
