package ai

import (
	"sync"
	"time"

	"github.com/camilomiori/POSAI-frontend-sub000/models"
)

// metrics holds the request core's running counters. All counters only
// move forward; Reset is the single way back to zero. One mutex keeps
// snapshots and resets atomic from the caller's perspective.
type metrics struct {
	mu                sync.Mutex
	requests          int64
	errors            int64
	cacheHits         int64
	cacheMisses       int64
	totalResponseTime time.Duration
	since             time.Time
	now               func() time.Time
}

func newMetrics(now func() time.Time) *metrics {
	return &metrics{since: now(), now: now}
}

func (m *metrics) recordRequest() {
	m.mu.Lock()
	m.requests++
	m.mu.Unlock()
}

func (m *metrics) recordError() {
	m.mu.Lock()
	m.errors++
	m.mu.Unlock()
}

func (m *metrics) recordHit() {
	m.mu.Lock()
	m.cacheHits++
	m.mu.Unlock()
}

func (m *metrics) recordMiss() {
	m.mu.Lock()
	m.cacheMisses++
	m.mu.Unlock()
}

func (m *metrics) recordLatency(d time.Duration) {
	m.mu.Lock()
	m.totalResponseTime += d
	m.mu.Unlock()
}

func (m *metrics) snapshot() models.PerformanceSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := models.PerformanceSnapshot{
		Requests: m.requests,
		Errors:   m.errors,
		Uptime:   m.now().Sub(m.since),
	}
	if m.requests > 0 {
		snap.ErrorRate = float64(m.errors) / float64(m.requests)
		snap.AvgResponseTime = m.totalResponseTime / time.Duration(m.requests)
	}
	if lookups := m.cacheHits + m.cacheMisses; lookups > 0 {
		snap.CacheHitRate = float64(m.cacheHits) / float64(lookups)
	}
	return snap
}

func (m *metrics) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = 0
	m.errors = 0
	m.cacheHits = 0
	m.cacheMisses = 0
	m.totalResponseTime = 0
	m.since = m.now()
}

func (m *metrics) counters() (hits, misses int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheHits, m.cacheMisses
}
