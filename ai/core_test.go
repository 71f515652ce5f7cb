package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/camilomiori/POSAI-frontend-sub000/catalog"
)

// fixedTime is a quiet Tuesday morning: no seasonal factor applies to
// any category in February, and 10:00 sits outside the peak-hour window.
var fixedTime = time.Date(2026, time.February, 10, 10, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return fixedTime }

// tripwireTransport fails the test the moment anything touches the
// network.
type tripwireTransport struct {
	t *testing.T
}

func (tr tripwireTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	tr.t.Errorf("unexpected network call: %s %s", req.Method, req.URL)
	return nil, fmt.Errorf("network disabled in this test")
}

func testOptions() Options {
	return Options{
		Seed:        1,
		Now:         fixedNow,
		EnableCache: true,
		CacheTTL:    time.Minute,
	}
}

func newLocalEngine(t *testing.T, cat catalog.Catalog) *Engine {
	t.Helper()
	opts := testOptions()
	opts.HTTPClient = &http.Client{Transport: tripwireTransport{t}}
	return NewEngine(cat, opts)
}

func TestPerformRequestLocalModeSkipsNetwork(t *testing.T) {
	core := newCore(Options{
		Now:        fixedNow,
		HTTPClient: &http.Client{Transport: tripwireTransport{t}},
	})

	result, err := core.PerformRequest(context.Background(), "/ai/predict", RequestOptions{}, func(ctx context.Context) (any, error) {
		return "local-result", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "local-result" {
		t.Fatalf("expected fallback result, got %v", result)
	}

	snap := core.PerformanceMetrics()
	if snap.Requests != 1 || snap.Errors != 0 {
		t.Fatalf("expected 1 request 0 errors, got %d/%d", snap.Requests, snap.Errors)
	}
}

func TestPerformRequestFallsBackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	core := newCore(Options{BaseURL: server.URL, Now: fixedNow})

	result, err := core.PerformRequest(context.Background(), "/ai/insights", RequestOptions{}, func(ctx context.Context) (any, error) {
		return 42, nil
	})
	if err != nil {
		t.Fatalf("network failure must not surface as an error, got: %v", err)
	}
	if result != 42 {
		t.Fatalf("expected fallback result 42, got %v", result)
	}

	snap := core.PerformanceMetrics()
	if snap.Requests != 1 || snap.Errors != 1 {
		t.Fatalf("expected 1 request 1 error, got %d/%d", snap.Requests, snap.Errors)
	}
}

func TestRequestUnwrapsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"value":7}}`)
	}))
	defer server.Close()

	core := newCore(Options{BaseURL: server.URL, Now: fixedNow})

	type payload struct {
		Value int `json:"value"`
	}
	got, err := request(context.Background(), core, "", "/ai/insights", RequestOptions{},
		func(ctx context.Context) (payload, error) {
			t.Fatal("fallback must not run on a healthy response")
			return payload{}, nil
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Value != 7 {
		t.Fatalf("expected enveloped value 7, got %d", got.Value)
	}
}

func TestRequestAcceptsBareBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"value":9}`)
	}))
	defer server.Close()

	core := newCore(Options{BaseURL: server.URL, Now: fixedNow})

	type payload struct {
		Value int `json:"value"`
	}
	got, err := request(context.Background(), core, "", "/ai/insights", RequestOptions{},
		func(ctx context.Context) (payload, error) { return payload{}, nil })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Value != 9 {
		t.Fatalf("expected bare value 9, got %d", got.Value)
	}
}

func TestRequestMalformedPayloadFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":"not a struct"}`)
	}))
	defer server.Close()

	core := newCore(Options{BaseURL: server.URL, Now: fixedNow})

	type payload struct {
		Value int `json:"value"`
	}
	got, err := request(context.Background(), core, "", "/ai/insights", RequestOptions{},
		func(ctx context.Context) (payload, error) {
			return payload{Value: -1}, nil
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Value != -1 {
		t.Fatalf("expected fallback payload, got %+v", got)
	}

	snap := core.PerformanceMetrics()
	if snap.Errors != 1 {
		t.Fatalf("decode failure must count as an error, got %d", snap.Errors)
	}
}

func TestRequestServesSecondCallFromCache(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"value":3}`)
	}))
	defer server.Close()

	core := newCore(Options{BaseURL: server.URL, Now: fixedNow, EnableCache: true, CacheTTL: time.Minute})

	type payload struct {
		Value int `json:"value"`
	}
	fallback := func(ctx context.Context) (payload, error) { return payload{}, nil }

	first, err := request(context.Background(), core, "k", "/ai/insights", RequestOptions{}, fallback)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := request(context.Background(), core, "k", "/ai/insights", RequestOptions{}, fallback)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 1 {
		t.Fatalf("expected exactly one upstream call, got %d", calls)
	}
	if first != second {
		t.Fatalf("expected cached result to match, got %+v and %+v", first, second)
	}

	stats := core.CacheStats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Fatalf("expected 1 hit 1 miss, got %d/%d", stats.Hits, stats.Misses)
	}
}

func TestRequestSendsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"value":1}`)
	}))
	defer server.Close()

	core := newCore(Options{BaseURL: server.URL, Now: fixedNow, Tokens: StaticToken("secret")})

	type payload struct {
		Value int `json:"value"`
	}
	if _, err := request(context.Background(), core, "", "/ai/insights", RequestOptions{},
		func(ctx context.Context) (payload, error) { return payload{}, nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer secret" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestRequestPostsEncodedBody(t *testing.T) {
	var gotMethod string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		json.NewDecoder(r.Body).Decode(&gotBody)
		fmt.Fprint(w, `{"value":1}`)
	}))
	defer server.Close()

	core := newCore(Options{BaseURL: server.URL, Now: fixedNow})

	type payload struct {
		Value int `json:"value"`
	}
	opts := RequestOptions{Method: http.MethodPost, Body: map[string]int{"horizon_days": 7}}
	if _, err := request(context.Background(), core, "", "/ai/predict", opts,
		func(ctx context.Context) (payload, error) { return payload{}, nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Fatalf("expected POST, got %s", gotMethod)
	}
	if gotBody["horizon_days"] != float64(7) {
		t.Fatalf("expected encoded body, got %v", gotBody)
	}
}

func TestSetLocalModeStaysLocalWithoutBaseURL(t *testing.T) {
	core := newCore(Options{Now: fixedNow})
	core.SetLocalMode(false)
	if !core.LocalMode() {
		t.Fatal("a core without a base URL must stay in local mode")
	}
}

func TestZeroOptionsDisableCaching(t *testing.T) {
	core := newCore(Options{Now: fixedNow})
	if core.CacheStats().Enabled {
		t.Fatal("zero-value options must leave caching disabled")
	}
}

func TestMetricsSnapshotIdle(t *testing.T) {
	core := newCore(Options{Now: fixedNow})
	snap := core.PerformanceMetrics()
	if snap.ErrorRate != 0 {
		t.Fatalf("idle error rate must be 0, got %f", snap.ErrorRate)
	}
	if snap.AvgResponseTime != 0 {
		t.Fatalf("idle avg response time must be 0, got %v", snap.AvgResponseTime)
	}
}

// Compile-time checks that both catalog adapters satisfy the interface
// the services are written against.
var (
	_ catalog.Catalog = (*catalog.Memory)(nil)
	_ catalog.Catalog = (*catalog.Gorm)(nil)
)
