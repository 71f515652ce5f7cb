package models

import "time"

// PerformanceSnapshot is the running view of the request core counters.
// Counters only move forward until an explicit reset.
type PerformanceSnapshot struct {
	Requests        int64         `json:"requests"`
	Errors          int64         `json:"errors"`
	ErrorRate       float64       `json:"error_rate"`        // errors / requests, 0 when idle
	AvgResponseTime time.Duration `json:"avg_response_time"` // cumulative / requests
	CacheHitRate    float64       `json:"cache_hit_rate"`
	Uptime          time.Duration `json:"uptime"` // since last reset
}

// CacheStats describes the response cache at a point in time.
type CacheStats struct {
	Entries    int     `json:"entries"`
	MaxEntries int     `json:"max_entries"`
	Hits       int64   `json:"hits"`
	Misses     int64   `json:"misses"`
	HitRate    float64 `json:"hit_rate"`
	Enabled    bool    `json:"enabled"`
}

// ModelStatistics is the diagnostic summary of the engine. There is no
// trained model behind it: predictions are closed-form heuristics, so
// these are operational figures only.
type ModelStatistics struct {
	Version        string  `json:"version"`
	Mode           string  `json:"mode"` // network | local
	BaseConfidence int     `json:"base_confidence"`
	Requests       int64   `json:"requests"`
	ErrorRate      float64 `json:"error_rate"`
	CacheHitRate   float64 `json:"cache_hit_rate"`
	UptimeSeconds  float64 `json:"uptime_seconds"`
}
