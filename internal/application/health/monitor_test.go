package health

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPinger struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (p *stubPinger) Ping(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls++
	return p.err
}

func (p *stubPinger) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.calls
}

func (p *stubPinger) setErr(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.err = err
}

type stubMetrics struct {
	mu       sync.Mutex
	lastUp   bool
	statuses []string
}

func (m *stubMetrics) SetStorageUp(up bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastUp = up
}

func (m *stubMetrics) IncStorageChecks(status string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.statuses = append(m.statuses, status)
}

func (m *stubMetrics) snapshot() (bool, []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.lastUp, append([]string(nil), m.statuses...)
}

// TestMonitor_FirstCheckIsImmediate verifies a check runs at startup, not one interval later.
func TestMonitor_FirstCheckIsImmediate(t *testing.T) {
	t.Parallel()

	pinger := &stubPinger{}
	metrics := &stubMetrics{}

	m := NewMonitor(pinger, metrics, time.Hour, time.Second, zap.NewNop())
	m.Start()
	defer m.Stop()

	require.Eventually(t, func() bool {
		return !m.GetStatus().CheckedAt.IsZero()
	}, time.Second, 5*time.Millisecond, "first check should run without waiting for the interval")

	status := m.GetStatus()
	assert.True(t, status.Healthy)
	assert.Empty(t, status.Error)
	assert.True(t, m.IsHealthy())
	assert.Equal(t, 1, pinger.callCount())

	up, statuses := metrics.snapshot()
	assert.True(t, up)
	assert.Equal(t, []string{"healthy"}, statuses)
}

// TestMonitor_UnhealthyStorage verifies ping failures surface in status and metrics.
func TestMonitor_UnhealthyStorage(t *testing.T) {
	t.Parallel()

	pinger := &stubPinger{err: errors.New("database is locked")}
	metrics := &stubMetrics{}

	m := NewMonitor(pinger, metrics, time.Hour, time.Second, zap.NewNop())
	m.Start()
	defer m.Stop()

	require.Eventually(t, func() bool {
		return !m.GetStatus().CheckedAt.IsZero()
	}, time.Second, 5*time.Millisecond)

	status := m.GetStatus()
	assert.False(t, status.Healthy)
	assert.Contains(t, status.Error, "database is locked")
	assert.False(t, m.IsHealthy())

	up, statuses := metrics.snapshot()
	assert.False(t, up)
	assert.Equal(t, []string{"unhealthy"}, statuses)
}

// TestMonitor_StatusFollowsStorage verifies status flips as storage fails and recovers.
func TestMonitor_StatusFollowsStorage(t *testing.T) {
	t.Parallel()

	pinger := &stubPinger{err: errors.New("disk I/O error")}
	metrics := &stubMetrics{}

	m := NewMonitor(pinger, metrics, 10*time.Millisecond, time.Second, zap.NewNop())
	m.Start()
	defer m.Stop()

	require.Eventually(t, func() bool {
		status := m.GetStatus()
		return !status.CheckedAt.IsZero() && !status.Healthy
	}, time.Second, 5*time.Millisecond)

	pinger.setErr(nil)

	require.Eventually(t, m.IsHealthy, time.Second, 5*time.Millisecond)

	up, _ := metrics.snapshot()
	assert.True(t, up)
}

// TestMonitor_PeriodicChecks verifies checks repeat on the configured interval.
func TestMonitor_PeriodicChecks(t *testing.T) {
	t.Parallel()

	pinger := &stubPinger{}

	m := NewMonitor(pinger, &stubMetrics{}, 10*time.Millisecond, time.Second, zap.NewNop())
	m.Start()
	defer m.Stop()

	require.Eventually(t, func() bool {
		return pinger.callCount() >= 3
	}, time.Second, 5*time.Millisecond)
}

// TestMonitor_StartStopIdempotent verifies repeated Start and Stop calls are safe.
func TestMonitor_StartStopIdempotent(t *testing.T) {
	t.Parallel()

	m := NewMonitor(&stubPinger{}, &stubMetrics{}, time.Hour, time.Second, zap.NewNop())

	m.Start()
	m.Start()
	m.Stop()
	m.Stop()
}
