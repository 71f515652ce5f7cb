package ai

import (
	"context"

	"github.com/camilomiori/POSAI-frontend-sub000/models"
	"github.com/google/uuid"
)

// Flat methods kept for call sites that predate the per-domain
// sub-services. They are thin delegates and must stay behaviorally
// identical to the nested calls; new code should use Demand(), Pricing()
// and Inventory() directly.

// Deprecated: use Demand().Predict.
func (e *Engine) PredictDemand(ctx context.Context, productID uuid.UUID, horizonDays int) (*models.DemandPrediction, error) {
	return e.demand.Predict(ctx, productID, horizonDays)
}

// Deprecated: use Demand().HourlyDemand.
func (e *Engine) GetHourlyDemand(ctx context.Context) ([]models.HourlyDemand, error) {
	return e.demand.HourlyDemand(ctx)
}

// Deprecated: use Pricing().Optimize.
func (e *Engine) OptimizePrice(ctx context.Context, productID uuid.UUID) (*models.PriceOptimization, error) {
	return e.pricing.Optimize(ctx, productID)
}

// Deprecated: use Pricing().DynamicSuggestions.
func (e *Engine) GetPricingSuggestions(ctx context.Context) ([]models.PriceSuggestion, error) {
	return e.pricing.DynamicSuggestions(ctx, nil)
}

// Deprecated: use Inventory().AdvancedAlerts.
func (e *Engine) GetStockAlerts(ctx context.Context) ([]models.StockAlert, error) {
	return e.inventory.AdvancedAlerts(ctx)
}

// Deprecated: use Inventory().Opportunities.
func (e *Engine) GetOpportunities(ctx context.Context) ([]models.Opportunity, error) {
	return e.inventory.Opportunities(ctx)
}

// Deprecated: use PerformanceMetrics.
func (e *Engine) GetPerformanceMetrics() models.PerformanceSnapshot {
	return e.PerformanceMetrics()
}

// Deprecated: use CacheStats.
func (e *Engine) GetCacheStats() models.CacheStats {
	return e.CacheStats()
}

// Deprecated: use ModelStatistics.
func (e *Engine) GetModelStatistics() models.ModelStatistics {
	return e.ModelStatistics()
}
