package search

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitorRecordAndStats(t *testing.T) {
	m := NewMonitor(100)

	m.Record("search", 100*time.Millisecond, true, nil)
	m.Record("search", 200*time.Millisecond, true, nil)
	m.Record("search", 300*time.Millisecond, true, nil)
	m.Record("search", 400*time.Millisecond, false, errors.New("timeout"))

	stats := m.Stats(time.Minute)
	assert.Equal(t, 4, stats.TotalRequests)
	assert.Equal(t, 75, stats.SuccessRate)
	assert.Equal(t, 25, stats.ErrorRate)
	assert.InDelta(t, 250.0, stats.AverageResponseTime, 0.001)
	assert.Equal(t, 0, stats.SlowRequests)
}

func TestMonitorSuccessRateRounding(t *testing.T) {
	m := NewMonitor(100)

	m.Record("search", time.Millisecond, true, nil)
	m.Record("search", time.Millisecond, true, nil)
	m.Record("search", time.Millisecond, false, errors.New("boom"))

	stats := m.Stats(time.Minute)
	assert.Equal(t, 67, stats.SuccessRate)
	assert.Equal(t, 33, stats.ErrorRate)
}

func TestMonitorEmptyStats(t *testing.T) {
	m := NewMonitor(100)

	stats := m.Stats(time.Minute)
	assert.Equal(t, 0, stats.TotalRequests)
	assert.Equal(t, 0, stats.SuccessRate)
	assert.NotNil(t, stats.TopSlowEndpoints)
	assert.Empty(t, stats.TopSlowEndpoints)
}

func TestMonitorRingBufferOverflow(t *testing.T) {
	m := NewMonitor(DefaultMonitorCapacity)

	for i := 0; i < 1500; i++ {
		m.Record("search", time.Millisecond, true, nil)
	}

	assert.Equal(t, DefaultMonitorCapacity, m.Len())
}

func TestMonitorOverflowDropsOldest(t *testing.T) {
	m := NewMonitor(3)

	m.Record("first", time.Millisecond, false, errors.New("old failure"))
	m.Record("second", time.Millisecond, true, nil)
	m.Record("third", time.Millisecond, true, nil)
	m.Record("fourth", time.Millisecond, true, nil)

	assert.Equal(t, 3, m.Len())
	assert.Empty(t, m.RecentErrors(10), "the overwritten oldest sample was the only failure")
}

func TestMonitorPrunesSamplesOlderThan24h(t *testing.T) {
	clock := newFakeClock()
	m := NewMonitor(100)
	m.now = clock.now

	m.Record("search", time.Millisecond, true, nil)
	clock.advance(25 * time.Hour)
	m.Record("search", time.Millisecond, true, nil)

	assert.Equal(t, 1, m.Len())
}

func TestMonitorStatsWindowFiltersOldSamples(t *testing.T) {
	clock := newFakeClock()
	m := NewMonitor(100)
	m.now = clock.now

	m.Record("search", time.Millisecond, true, nil)
	clock.advance(10 * time.Minute)
	m.Record("search", time.Millisecond, false, errors.New("recent failure"))

	stats := m.Stats(5 * time.Minute)
	assert.Equal(t, 1, stats.TotalRequests)
	assert.Equal(t, 0, stats.SuccessRate)
	assert.Equal(t, 100, stats.ErrorRate)
}

func TestMonitorSlowRequests(t *testing.T) {
	m := NewMonitor(100)

	m.Record("search", 500*time.Millisecond, true, nil)
	m.Record("search", 1500*time.Millisecond, true, nil)
	m.Record("search", 2*time.Second, true, nil)

	stats := m.Stats(time.Minute)
	assert.Equal(t, 2, stats.SlowRequests)
}

func TestMonitorTopSlowEndpointsCappedAtTen(t *testing.T) {
	m := NewMonitor(100)

	for i := 0; i < 15; i++ {
		m.Record(fmt.Sprintf("endpoint-%d", i), time.Duration(i)*time.Millisecond, true, nil)
	}

	stats := m.Stats(time.Minute)
	require.Len(t, stats.TopSlowEndpoints, 10)
	assert.Equal(t, "endpoint-14", stats.TopSlowEndpoints[0].Name)
	for i := 1; i < len(stats.TopSlowEndpoints); i++ {
		assert.GreaterOrEqual(t,
			stats.TopSlowEndpoints[i-1].AverageMs,
			stats.TopSlowEndpoints[i].AverageMs,
			"top slow endpoints must be sorted by descending average",
		)
	}
}

func TestMonitorPerEndpointAverages(t *testing.T) {
	m := NewMonitor(100)

	m.Record("fast", 10*time.Millisecond, true, nil)
	m.Record("fast", 30*time.Millisecond, true, nil)
	m.Record("slow", 200*time.Millisecond, true, nil)

	stats := m.Stats(time.Minute)
	require.Len(t, stats.TopSlowEndpoints, 2)
	assert.Equal(t, "slow", stats.TopSlowEndpoints[0].Name)
	assert.InDelta(t, 200.0, stats.TopSlowEndpoints[0].AverageMs, 0.001)
	assert.Equal(t, "fast", stats.TopSlowEndpoints[1].Name)
	assert.InDelta(t, 20.0, stats.TopSlowEndpoints[1].AverageMs, 0.001)
	assert.Equal(t, 2, stats.TopSlowEndpoints[1].Count)
}

func TestMonitorRecentErrors(t *testing.T) {
	m := NewMonitor(100)

	m.Record("search", time.Millisecond, false, errors.New("first"))
	m.Record("search", time.Millisecond, true, nil)
	m.Record("search", time.Millisecond, false, errors.New("second"))
	m.Record("search", time.Millisecond, false, errors.New("third"))

	failures := m.RecentErrors(2)
	require.Len(t, failures, 2)
	assert.Equal(t, "third", failures[0].Error)
	assert.Equal(t, "second", failures[1].Error)
}

func TestMonitorDefaultCapacity(t *testing.T) {
	m := NewMonitor(0)
	assert.Equal(t, DefaultMonitorCapacity, m.capacity)
}
