package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/camilomiori/POSAI-frontend-sub000/models"
)

// RequestOptions carries method and body for one outbound call.
type RequestOptions struct {
	Method string
	Body   any
}

// Core owns the network-call contract, the response cache and the
// performance counters. It has no knowledge of business semantics; the
// domain services hand it an endpoint plus a local fallback computation.
type Core struct {
	baseURL    string
	httpClient *http.Client
	cache      *responseCache
	metrics    *metrics
	tokens     TokenStore
	localOnly  atomic.Bool
	now        func() time.Time
}

func newCore(opts Options) *Core {
	opts = opts.withDefaults()

	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	m := newMetrics(opts.Now)
	c := &Core{
		baseURL:    opts.BaseURL,
		httpClient: client,
		cache:      newResponseCache(opts.CacheTTL, opts.EnableCache, opts.Now, m),
		metrics:    m,
		tokens:     opts.Tokens,
		now:        opts.Now,
	}
	c.localOnly.Store(opts.LocalOnly)
	return c
}

// SetLocalMode switches every service between network mode and
// local-computation-only mode.
func (c *Core) SetLocalMode(local bool) {
	c.localOnly.Store(local || c.baseURL == "")
}

func (c *Core) LocalMode() bool {
	return c.localOnly.Load()
}

// PerformRequest attempts the network call and downgrades any failure to
// the supplied fallback. Callers never see an error from the network
// path; the only error that can surface is the fallback's own. Every
// call counts as a request regardless of outcome.
//
// On success the returned value is the raw payload as json.RawMessage
// (the `data` field when the response is an envelope, the whole body
// otherwise).
func (c *Core) PerformRequest(ctx context.Context, endpoint string, opts RequestOptions, fallback func(context.Context) (any, error)) (any, error) {
	c.metrics.recordRequest()

	if c.LocalMode() {
		return fallback(ctx)
	}

	start := c.now()
	payload, err := c.doRequest(ctx, endpoint, opts)
	if err != nil {
		c.metrics.recordError()
		log.Printf("[ai.core] %s %s failed, falling back to local computation: %v", opts.Method, endpoint, err)
		return fallback(ctx)
	}
	c.metrics.recordLatency(c.now().Sub(start))
	return payload, nil
}

func (c *Core) doRequest(ctx context.Context, endpoint string, opts RequestOptions) (json.RawMessage, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if opts.Body != nil {
		encoded, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token, err := c.tokens.Token(ctx); err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("malformed response from %s", endpoint)
	}

	// Responses arrive either bare or wrapped in a {"data": ...} envelope.
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 {
		return envelope.Data, nil
	}
	return raw, nil
}

// request is the typed wrapper every domain service goes through: cache
// lookup, PerformRequest, payload decoding and cache write-back. A
// payload that fails to decode counts as an upstream failure and falls
// back like any transport error.
func request[T any](ctx context.Context, c *Core, cacheKey, endpoint string, opts RequestOptions, fallback func(context.Context) (T, error)) (T, error) {
	var zero T

	if cacheKey != "" {
		if cached, ok := c.cache.Get(cacheKey); ok {
			if typed, ok := cached.(T); ok {
				return typed, nil
			}
		}
	}

	raw, err := c.PerformRequest(ctx, endpoint, opts, func(ctx context.Context) (any, error) {
		return fallback(ctx)
	})
	if err != nil {
		return zero, err
	}

	var result T
	switch v := raw.(type) {
	case json.RawMessage:
		if err := json.Unmarshal(v, &result); err != nil {
			c.metrics.recordError()
			log.Printf("[ai.core] could not decode %s payload, falling back: %v", endpoint, err)
			result, err = fallback(ctx)
			if err != nil {
				return zero, err
			}
		}
	case T:
		result = v
	default:
		// Fallback produced something unexpected for this call site.
		return zero, fmt.Errorf("unexpected payload type %T from %s", raw, endpoint)
	}

	if cacheKey != "" {
		c.cache.Set(cacheKey, result)
	}
	return result, nil
}

// Cache maintenance passthroughs used by the engine facade.

func (c *Core) ClearCache(pattern string) {
	c.cache.Clear(pattern)
}

func (c *Core) CacheStats() models.CacheStats {
	hits, misses := c.metrics.counters()
	stats := models.CacheStats{
		Entries:    c.cache.Len(),
		MaxEntries: maxCacheEntries,
		Hits:       hits,
		Misses:     misses,
		Enabled:    c.cache.enabled,
	}
	if lookups := hits + misses; lookups > 0 {
		stats.HitRate = float64(hits) / float64(lookups)
	}
	return stats
}

func (c *Core) PerformanceMetrics() models.PerformanceSnapshot {
	return c.metrics.snapshot()
}

func (c *Core) ResetMetrics() {
	c.metrics.reset()
}
