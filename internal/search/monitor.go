package search

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultMonitorCapacity is the ring buffer size for recorded metrics.
	DefaultMonitorCapacity = 1000

	// metricMaxAge bounds how long samples stay relevant; older entries are
	// pruned on the next record.
	metricMaxAge = 24 * time.Hour

	// SlowAPIThreshold flags slow API-level operations.
	SlowAPIThreshold = time.Second
	// SlowStoreThreshold flags slow record-store calls. Store calls sit
	// inside the API budget, so their threshold is tighter.
	SlowStoreThreshold = 500 * time.Millisecond

	// slowRequestCutoff is the duration above which a sample counts as a
	// slow request in Stats.
	slowRequestCutoff = time.Second

	topSlowLimit = 10
)

// Metric is a single recorded operation sample.
type Metric struct {
	Name       string    `json:"name"`
	DurationMs int64     `json:"duration_ms"`
	Timestamp  time.Time `json:"timestamp"`
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
}

// EndpointTiming aggregates samples for one operation name.
type EndpointTiming struct {
	Name      string  `json:"name"`
	AverageMs float64 `json:"average_ms"`
	Count     int     `json:"count"`
}

// Snapshot summarizes recorded operations over a rolling window.
type Snapshot struct {
	TotalRequests       int              `json:"total_requests"`
	SuccessRate         int              `json:"success_rate"`
	AverageResponseTime float64          `json:"average_response_time_ms"`
	SlowRequests        int              `json:"slow_requests"`
	ErrorRate           int              `json:"error_rate"`
	TopSlowEndpoints    []EndpointTiming `json:"top_slow_endpoints"`
}

// Monitor records operation durations in a fixed-capacity ring buffer and
// computes rolling statistics. The oldest sample is dropped on overflow,
// and samples older than 24h are pruned opportunistically.
type Monitor struct {
	mu       sync.Mutex
	buf      []Metric
	head     int
	size     int
	capacity int

	// now is swappable in tests.
	now func() time.Time
}

// NewMonitor creates a monitor with the given ring buffer capacity.
func NewMonitor(capacity int) *Monitor {
	if capacity <= 0 {
		capacity = DefaultMonitorCapacity
	}
	return &Monitor{
		buf:      make([]Metric, capacity),
		capacity: capacity,
		now:      time.Now,
	}
}

// Record appends an API-level sample, logging a diagnostic line when the
// duration exceeds SlowAPIThreshold.
func (m *Monitor) Record(name string, duration time.Duration, success bool, err error) {
	m.record(name, duration, success, err, SlowAPIThreshold)
}

// RecordStore appends a store-level sample with the tighter
// SlowStoreThreshold.
func (m *Monitor) RecordStore(name string, duration time.Duration, success bool, err error) {
	m.record(name, duration, success, err, SlowStoreThreshold)
}

func (m *Monitor) record(name string, duration time.Duration, success bool, err error, slowAfter time.Duration) {
	if duration > slowAfter {
		log.Warn().
			Str("operation", name).
			Int64("duration_ms", duration.Milliseconds()).
			Int64("threshold_ms", slowAfter.Milliseconds()).
			Msg("Slow operation")
	}

	metric := Metric{
		Name:       name,
		DurationMs: duration.Milliseconds(),
		Timestamp:  m.now(),
		Success:    success,
	}
	if err != nil {
		metric.Error = err.Error()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.pruneLocked()

	if m.size == m.capacity {
		m.buf[m.head] = metric
		m.head = (m.head + 1) % m.capacity
		return
	}
	m.buf[(m.head+m.size)%m.capacity] = metric
	m.size++
}

// pruneLocked drops samples older than metricMaxAge. Caller must hold mu.
func (m *Monitor) pruneLocked() {
	cutoff := m.now().Add(-metricMaxAge)
	for m.size > 0 && m.buf[m.head].Timestamp.Before(cutoff) {
		m.head = (m.head + 1) % m.capacity
		m.size--
	}
}

// Len returns the number of buffered samples.
func (m *Monitor) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.size
}

// Stats computes a snapshot over samples recorded within the window.
func (m *Monitor) Stats(window time.Duration) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-window)
	snapshot := Snapshot{TopSlowEndpoints: []EndpointTiming{}}

	var totalMs int64
	var successes int
	perName := make(map[string]*EndpointTiming)

	for i := 0; i < m.size; i++ {
		sample := m.buf[(m.head+i)%m.capacity]
		if sample.Timestamp.Before(cutoff) {
			continue
		}

		snapshot.TotalRequests++
		totalMs += sample.DurationMs
		if sample.Success {
			successes++
		}
		if sample.DurationMs > slowRequestCutoff.Milliseconds() {
			snapshot.SlowRequests++
		}

		timing, ok := perName[sample.Name]
		if !ok {
			timing = &EndpointTiming{Name: sample.Name}
			perName[sample.Name] = timing
		}
		timing.AverageMs += float64(sample.DurationMs)
		timing.Count++
	}

	if snapshot.TotalRequests == 0 {
		return snapshot
	}

	snapshot.SuccessRate = int(math.Round(float64(successes) / float64(snapshot.TotalRequests) * 100))
	snapshot.ErrorRate = int(math.Round(float64(snapshot.TotalRequests-successes) / float64(snapshot.TotalRequests) * 100))
	snapshot.AverageResponseTime = float64(totalMs) / float64(snapshot.TotalRequests)

	for _, timing := range perName {
		timing.AverageMs /= float64(timing.Count)
		snapshot.TopSlowEndpoints = append(snapshot.TopSlowEndpoints, *timing)
	}
	sort.Slice(snapshot.TopSlowEndpoints, func(i, j int) bool {
		return snapshot.TopSlowEndpoints[i].AverageMs > snapshot.TopSlowEndpoints[j].AverageMs
	})
	if len(snapshot.TopSlowEndpoints) > topSlowLimit {
		snapshot.TopSlowEndpoints = snapshot.TopSlowEndpoints[:topSlowLimit]
	}

	return snapshot
}

// RecentErrors returns up to limit failed samples, most recent first.
func (m *Monitor) RecentErrors(limit int) []Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	if limit <= 0 {
		limit = topSlowLimit
	}

	failures := make([]Metric, 0, limit)
	for i := m.size - 1; i >= 0 && len(failures) < limit; i-- {
		sample := m.buf[(m.head+i)%m.capacity]
		if !sample.Success {
			failures = append(failures, sample)
		}
	}
	return failures
}
