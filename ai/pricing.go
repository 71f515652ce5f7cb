package ai

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"sort"
	"time"

	"github.com/camilomiori/POSAI-frontend-sub000/catalog"
	"github.com/camilomiori/POSAI-frontend-sub000/models"
	"github.com/google/uuid"
)

// suggestionValidity is how long a price suggestion stays actionable.
const suggestionValidity = 2 * time.Hour

// minSuggestionChangePercent filters out noise: dynamic suggestions below
// this absolute change are not emitted.
const minSuggestionChangePercent = 2.0

// PricingService recommends per-product price moves and keeps the
// catalog-wide dynamic suggestion list.
type PricingService struct {
	core           *Core
	catalog        catalog.Catalog
	rng            *lockedRand
	baseConfidence int
	now            func() time.Time
}

type optimizeRequest struct {
	ProductID uuid.UUID `json:"product_id"`
}

// Optimize recommends a new price for one product. Unknown products
// yield (nil, nil).
func (s *PricingService) Optimize(ctx context.Context, productID uuid.UUID) (*models.PriceOptimization, error) {
	product, err := s.catalog.Product(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	cacheKey := fmt.Sprintf("optimize:%s", productID)
	return request(ctx, s.core, cacheKey, "/ai/optimize-price",
		RequestOptions{Method: http.MethodPost, Body: optimizeRequest{ProductID: productID}},
		func(ctx context.Context) (*models.PriceOptimization, error) {
			return s.localOptimize(ctx, product)
		})
}

// localOptimize applies the pricing decision rules, first match wins.
func (s *PricingService) localOptimize(ctx context.Context, p *models.Product) (*models.PriceOptimization, error) {
	marketAverage, err := s.categoryAverage(ctx, p.Category)
	if err != nil {
		return nil, err
	}

	suggested := p.Price
	reasoning := "price is in balance, maintain current price"
	urgency := models.UrgencyLow

	switch {
	case p.Trend == models.TrendUp && p.Stock <= p.ReorderPoint:
		suggested = p.Price * 1.08
		reasoning = "high demand with low stock supports a premium"
		urgency = models.UrgencyHigh
	case p.Trend == models.TrendDown:
		suggested = p.Price * 0.95
		reasoning = "declining demand, discount to accelerate turnover"
		urgency = models.UrgencyMedium
	case p.Stock > p.ReorderPoint*3:
		suggested = p.Price * 0.92
		reasoning = "excess inventory, discount to free up capital"
		urgency = models.UrgencyMedium
	case marketAverage > p.Price*1.1:
		suggested = p.Price * 1.06
		reasoning = "price sits below the category market average"
		urgency = models.UrgencyMedium
	}
	suggested = round2(suggested)

	changePercent := 0.0
	if p.Price > 0 {
		changePercent = round2((suggested - p.Price) / p.Price * 100)
	}
	newMargin := 0.0
	if suggested > 0 {
		newMargin = round2((suggested - p.Cost) / suggested * 100)
	}

	return &models.PriceOptimization{
		ProductID:       p.ID,
		ProductName:     p.Name,
		Category:        p.Category,
		CurrentPrice:    p.Price,
		SuggestedPrice:  suggested,
		ChangePercent:   changePercent,
		NewMargin:       newMargin,
		Confidence:      int(math.Round(p.QualityScore * 100)),
		Reasoning:       reasoning,
		Urgency:         urgency,
		ValidUntil:      s.now().Add(suggestionValidity),
		MarketAverage:   round2(marketAverage),
		CompetitorPrice: round2(p.Price * s.rng.between(0.95, 1.05)),
		Elasticity:      elasticityFor(p.Category),
	}, nil
}

func (s *PricingService) categoryAverage(ctx context.Context, category string) (float64, error) {
	products, err := s.catalog.Products(ctx)
	if err != nil {
		return 0, err
	}
	var sum float64
	var count int
	for _, p := range products {
		if p.Category == category {
			sum += p.Price
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return sum / float64(count), nil
}

// DynamicSuggestions computes the continuously refreshed suggestion list
// across the whole catalog, or for a single product when productID is
// non-nil. Only changes of at least 2% are emitted.
func (s *PricingService) DynamicSuggestions(ctx context.Context, productID *uuid.UUID) ([]models.PriceSuggestion, error) {
	cacheKey := "pricing:suggestions"
	if productID != nil {
		cacheKey = "pricing:suggestions:" + productID.String()
	}
	return request(ctx, s.core, cacheKey, "/ai/pricing-suggestions",
		RequestOptions{Method: http.MethodGet},
		func(ctx context.Context) ([]models.PriceSuggestion, error) {
			return s.localSuggestions(ctx, productID)
		})
}

func (s *PricingService) localSuggestions(ctx context.Context, productID *uuid.UUID) ([]models.PriceSuggestion, error) {
	products, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, err
	}

	var avgSales float64
	if len(products) > 0 {
		var total int
		for _, p := range products {
			total += p.SalesLast30Days
		}
		avgSales = float64(total) / float64(len(products))
	}

	suggestions := make([]models.PriceSuggestion, 0)
	for i := range products {
		p := &products[i]
		if productID != nil && p.ID != *productID {
			continue
		}
		if suggestion := s.suggestFor(p, avgSales); suggestion != nil {
			suggestions = append(suggestions, *suggestion)
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		ri, rj := urgencyRank(suggestions[i].Urgency), urgencyRank(suggestions[j].Urgency)
		if ri != rj {
			return ri < rj
		}
		return math.Abs(suggestions[i].RevenueImpact) > math.Abs(suggestions[j].RevenueImpact)
	})
	return suggestions, nil
}

// suggestFor combines four independent adjustments into the base price:
// demand ratio vs the catalog average, stock pressure, peak-hour
// surcharge and competitor-gap correction.
func (s *PricingService) suggestFor(p *models.Product, avgSales float64) *models.PriceSuggestion {
	if p.Price <= 0 {
		return nil
	}

	demandRatio := 1.0
	if avgSales > 0 {
		demandRatio = float64(p.SalesLast30Days) / avgSales
	}
	stockRatio := 3.0
	if p.ReorderPoint > 0 {
		stockRatio = float64(p.Stock) / float64(p.ReorderPoint)
	} else if p.Stock == 0 {
		// No reorder point and nothing on hand: there is no stock
		// signal, and an empty shelf is never overstocked.
		stockRatio = 1.5
	}

	factor := 1.0
	reasons := make([]string, 0, 4)

	switch {
	case demandRatio > 1.5:
		factor *= 1.06
		reasons = append(reasons, "demand well above catalog average")
	case demandRatio > 1.2:
		factor *= 1.03
		reasons = append(reasons, "demand above catalog average")
	case demandRatio < 0.7:
		factor *= 0.97
		reasons = append(reasons, "demand below catalog average")
	}

	switch {
	case stockRatio <= 0.8:
		factor *= 1.05
		reasons = append(reasons, "stock nearly depleted, scarcity premium")
	case stockRatio <= 1.0:
		factor *= 1.02
		reasons = append(reasons, "stock at reorder level")
	case stockRatio >= 3.0:
		factor *= 0.94
		reasons = append(reasons, "overstocked, move inventory")
	}

	if hour := s.now().Hour(); hour >= 16 && hour <= closingHour {
		factor *= 1.02
		reasons = append(reasons, "peak business hours")
	}

	competitor := p.Price * s.rng.between(0.95, 1.05)
	switch {
	case competitor > p.Price*1.02:
		factor *= 1.015
		reasons = append(reasons, "competitor priced higher")
	case competitor < p.Price*0.98:
		factor *= 0.985
		reasons = append(reasons, "competitor priced lower")
	}

	suggested := round2(p.Price * factor)
	changePercent := round2((suggested - p.Price) / p.Price * 100)
	if math.Abs(changePercent) < minSuggestionChangePercent {
		return nil
	}

	urgency := models.UrgencyLow
	switch {
	case (p.Trend == models.TrendUp && stockRatio <= 1.2) || demandRatio > 1.5 || stockRatio <= 0.8:
		urgency = models.UrgencyHigh
	case demandRatio > 1.2 || stockRatio <= 1.0:
		urgency = models.UrgencyMedium
	}

	dailySales := float64(p.SalesLast30Days) / 30
	return &models.PriceSuggestion{
		ID:             uuid.Must(uuid.NewV7()),
		ProductID:      p.ID,
		ProductName:    p.Name,
		Category:       p.Category,
		CurrentPrice:   p.Price,
		SuggestedPrice: suggested,
		ChangePercent:  changePercent,
		Confidence:     s.baseConfidence,
		Reasons:        reasons,
		Urgency:        urgency,
		RevenueImpact:  round2((suggested - p.Price) * dailySales),
		ValidUntil:     s.now().Add(suggestionValidity),
	}
}

func urgencyRank(urgency string) int {
	switch urgency {
	case models.UrgencyHigh:
		return 0
	case models.UrgencyMedium:
		return 1
	default:
		return 2
	}
}
