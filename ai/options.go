package ai

import (
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const (
	defaultVersion        = "2.1.0"
	defaultBaseConfidence = 85
	defaultTimeout        = 8 * time.Second
)

// Options configures an Engine. The zero value is usable: local-only
// computation, caching disabled, wall-clock time and a time-seeded
// random source.
type Options struct {
	Version        string
	BaseURL        string        // remote intelligence service; empty means local-only
	BaseConfidence int           // base confidence percentage for suggestions
	CacheTTL       time.Duration // default response cache TTL; 0 disables caching
	EnableCache    bool
	LocalOnly      bool          // skip the network entirely
	Timeout        time.Duration // per-request HTTP timeout
	Seed           int64         // deterministic randomness when non-zero
	Now            func() time.Time
	Tokens         TokenStore   // bearer credential source, may be nil
	HTTPClient     *http.Client // override for tests
}

func (o Options) withDefaults() Options {
	if o.Version == "" {
		o.Version = defaultVersion
	}
	if o.BaseConfidence <= 0 {
		o.BaseConfidence = defaultBaseConfidence
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.BaseURL == "" {
		o.LocalOnly = true
	}
	return o
}

// lockedRand guards a rand.Rand so concurrent batch computations can
// share one deterministic source.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func newLockedRand(seed int64) *lockedRand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// between returns a uniform value in [lo, hi).
func (l *lockedRand) between(lo, hi float64) float64 {
	return lo + (hi-lo)*l.Float64()
}
