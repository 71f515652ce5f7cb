package ai

import (
	"context"
	"log"

	"github.com/camilomiori/POSAI-frontend-sub000/catalog"
	"github.com/camilomiori/POSAI-frontend-sub000/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Engine is the single entry point to the intelligence subsystem. It is
// an explicit instance: construct one with NewEngine and pass it where
// it is needed, there is no package-level singleton. All sub-services
// share one Core, so cache and counters are consistent across domains.
type Engine struct {
	core      *Core
	demand    *DemandService
	pricing   *PricingService
	inventory *InventoryService

	version        string
	baseConfidence int
}

// NewEngine wires the three domain services around a shared request
// core. Sub-services are constructed eagerly; accessors never have
// first-access side effects.
func NewEngine(cat catalog.Catalog, opts Options) *Engine {
	opts = opts.withDefaults()
	core := newCore(opts)
	rng := newLockedRand(opts.Seed)

	e := &Engine{
		core:           core,
		version:        opts.Version,
		baseConfidence: opts.BaseConfidence,
	}
	e.demand = &DemandService{core: core, catalog: cat, rng: rng, now: opts.Now}
	e.pricing = &PricingService{core: core, catalog: cat, rng: rng, baseConfidence: opts.BaseConfidence, now: opts.Now}
	e.inventory = &InventoryService{core: core, catalog: cat, now: opts.Now}

	log.Printf("[ai.engine] initialized v%s (mode=%s)", e.version, e.mode())
	return e
}

func (e *Engine) Demand() *DemandService       { return e.demand }
func (e *Engine) Pricing() *PricingService     { return e.pricing }
func (e *Engine) Inventory() *InventoryService { return e.inventory }

// SetLocalMode switches all services between network mode and
// local-computation-only mode.
func (e *Engine) SetLocalMode(local bool) {
	e.core.SetLocalMode(local)
}

func (e *Engine) mode() string {
	if e.core.LocalMode() {
		return "local"
	}
	return "network"
}

// ── Batch computation ────────────────────────────────────────────────────────

// BatchPrediction is one product's outcome of a batch run. Err is set
// when that product's computation failed; the rest of the batch is
// unaffected.
type BatchPrediction struct {
	ProductID  uuid.UUID
	Prediction *models.DemandPrediction
	Err        error
}

// PredictBatch runs independent predictions concurrently and awaits them
// jointly. One product failing never cancels or corrupts the others.
func (e *Engine) PredictBatch(ctx context.Context, productIDs []uuid.UUID, horizonDays int) []BatchPrediction {
	results := make([]BatchPrediction, len(productIDs))

	var g errgroup.Group
	g.SetLimit(8)
	for i, id := range productIDs {
		i, id := i, id
		g.Go(func() error {
			prediction, err := e.demand.Predict(ctx, id, horizonDays)
			results[i] = BatchPrediction{ProductID: id, Prediction: prediction, Err: err}
			return nil
		})
	}
	g.Wait()

	return results
}

// ── Diagnostics ──────────────────────────────────────────────────────────────

func (e *Engine) PerformanceMetrics() models.PerformanceSnapshot {
	return e.core.PerformanceMetrics()
}

func (e *Engine) CacheStats() models.CacheStats {
	return e.core.CacheStats()
}

func (e *Engine) ModelStatistics() models.ModelStatistics {
	snap := e.core.PerformanceMetrics()
	return models.ModelStatistics{
		Version:        e.version,
		Mode:           e.mode(),
		BaseConfidence: e.baseConfidence,
		Requests:       snap.Requests,
		ErrorRate:      snap.ErrorRate,
		CacheHitRate:   snap.CacheHitRate,
		UptimeSeconds:  snap.Uptime.Seconds(),
	}
}

// ResetModel zeroes the performance counters. There is no trained model
// behind the engine, so this is a metrics reset and nothing more.
func (e *Engine) ResetModel() {
	e.core.ResetMetrics()
	log.Printf("[ai.engine] model counters reset")
}

// RetrainModel resets counters and drops cached responses so the next
// round of requests is computed fresh. No learning takes place.
func (e *Engine) RetrainModel() {
	e.core.ResetMetrics()
	e.core.ClearCache("")
	log.Printf("[ai.engine] model retrained (cache cleared, counters reset)")
}

// ClearCache removes cached responses, optionally only those whose key
// contains the given substring.
func (e *Engine) ClearCache(pattern string) {
	e.core.ClearCache(pattern)
}
