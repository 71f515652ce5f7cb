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

const (
	leadTimeDays    = 7 // supplier lead time assumed for reorder sizing
	safetyStockDays = 3
)

// InventoryService classifies products into urgency tiers based on
// projected stockout and recommends reorder quantities.
type InventoryService struct {
	core    *Core
	catalog catalog.Catalog
	now     func() time.Time
}

// upstreamAlert is the wire shape of the backend stock-alert feed.
type upstreamAlert struct {
	ProductID         uuid.UUID `json:"product_id"`
	ProductName       string    `json:"product_name"`
	Category          string    `json:"category"`
	CurrentStock      int       `json:"current_stock"`
	ReorderPoint      int       `json:"reorder_point"`
	DaysUntilStockout int       `json:"days_until_stockout"`
	DailyRate         float64   `json:"daily_rate"`
	Priority          string    `json:"priority"`
}

// AdvancedAlerts returns the upstream stock-alert feed normalized into
// the local alert shape. When no upstream data is available the result
// is an empty list; unlike the other services there is no synthetic
// fallback here.
func (s *InventoryService) AdvancedAlerts(ctx context.Context) ([]models.StockAlert, error) {
	upstream, err := request(ctx, s.core, "alerts:advanced", "/ai/stock-alerts",
		RequestOptions{Method: http.MethodGet},
		func(ctx context.Context) ([]upstreamAlert, error) {
			return nil, nil
		})
	if err != nil {
		return nil, err
	}

	alerts := make([]models.StockAlert, 0, len(upstream))
	for _, u := range upstream {
		alerts = append(alerts, s.normalize(ctx, u))
	}
	sortAlerts(alerts)
	return alerts, nil
}

func (s *InventoryService) normalize(ctx context.Context, u upstreamAlert) models.StockAlert {
	priority := u.Priority
	switch priority {
	case models.AlertUrgent, models.AlertCritical, models.AlertWarning:
	default:
		priority = models.AlertWarning
	}

	alert := models.StockAlert{
		ProductID:         u.ProductID,
		ProductName:       u.ProductName,
		Category:          u.Category,
		CurrentStock:      u.CurrentStock,
		ReorderPoint:      u.ReorderPoint,
		DaysUntilStockout: u.DaysUntilStockout,
		Velocity: models.SalesVelocity{
			Daily:   round2(u.DailyRate),
			Weekly:  round2(u.DailyRate * 7),
			Monthly: round2(u.DailyRate * 30),
			Trend:   "stable",
		},
		Priority: priority,
	}
	alert.Title, alert.Message, alert.RecommendedAction = alertWording(priority, u.ProductName, u.DaysUntilStockout)

	// Enrich with local figures when the product is in the catalog.
	if product, err := s.catalog.Product(ctx, u.ProductID); err == nil && product != nil {
		velocity := s.velocity(ctx, product)
		alert.Velocity = velocity
		alert.RecommendedOrderQty = reorderQuantity(product.ReorderPoint, velocity.Daily)
		alert.PotentialRevenueLoss = revenueLoss(velocity.Daily, u.DaysUntilStockout, product.UnitProfit())
	}
	return alert
}

// LocalAlerts is the network-independent alert pass used by the simpler
// call paths: it scans the catalog and flags products whose projected
// stockout falls inside the lead-time window.
func (s *InventoryService) LocalAlerts(ctx context.Context) ([]models.StockAlert, error) {
	products, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, err
	}

	alerts := make([]models.StockAlert, 0)
	for i := range products {
		p := &products[i]

		velocity := s.velocity(ctx, p)

		daysToStockout := 999
		if velocity.Daily > 0 {
			daysToStockout = int(math.Round(float64(p.Stock) / velocity.Daily))
		}
		if p.Stock > p.ReorderPoint && daysToStockout > leadTimeDays {
			continue
		}

		priority := models.AlertWarning
		switch {
		case p.Stock == 0 || daysToStockout <= 2:
			priority = models.AlertUrgent
		case daysToStockout <= 5 || p.Stock*2 <= p.ReorderPoint:
			priority = models.AlertCritical
		}

		alert := models.StockAlert{
			ProductID:            p.ID,
			ProductName:          p.Name,
			Category:             p.Category,
			CurrentStock:         p.Stock,
			ReorderPoint:         p.ReorderPoint,
			DaysUntilStockout:    daysToStockout,
			Velocity:             velocity,
			Priority:             priority,
			RecommendedOrderQty:  reorderQuantity(p.ReorderPoint, velocity.Daily),
			PotentialRevenueLoss: revenueLoss(velocity.Daily, daysToStockout, p.UnitProfit()),
		}
		alert.Title, alert.Message, alert.RecommendedAction = alertWording(priority, p.Name, daysToStockout)
		alerts = append(alerts, alert)
	}

	sortAlerts(alerts)
	return alerts, nil
}

// velocity derives daily/weekly/monthly movement from the trailing 30
// days of sales. The trend compares the last 7 days against the 23
// before them. Without per-day data, or when the lookup fails, it
// falls back to the product's aggregate counter and qualitative trend
// tag, so this never errors.
func (s *InventoryService) velocity(ctx context.Context, p *models.Product) models.SalesVelocity {
	series, err := s.catalog.DailySales(ctx, p.ID, 30)
	if err != nil || len(series) < 30 {
		daily := float64(p.SalesLast30Days) / 30
		return models.SalesVelocity{
			Daily:   round2(daily),
			Weekly:  round2(daily * 7),
			Monthly: float64(p.SalesLast30Days),
			Trend:   trendFromTag(p.Trend),
		}
	}

	var total, recent int
	for i, qty := range series {
		total += qty
		if i >= len(series)-7 {
			recent += qty
		}
	}
	older := total - recent

	recentAvg := float64(recent) / 7
	olderAvg := float64(older) / 23

	trend := "stable"
	switch {
	case recentAvg > olderAvg*1.15:
		trend = "increasing"
	case recentAvg < olderAvg*0.85:
		trend = "decreasing"
	}

	daily := float64(total) / 30
	return models.SalesVelocity{
		Daily:   round2(daily),
		Weekly:  round2(daily * 7),
		Monthly: float64(total),
		Trend:   trend,
	}
}

func trendFromTag(tag string) string {
	switch tag {
	case models.TrendUp:
		return "increasing"
	case models.TrendDown:
		return "decreasing"
	default:
		return "stable"
	}
}

// reorderQuantity covers lead-time demand plus a safety buffer, never
// below the reorder point itself.
func reorderQuantity(reorderPoint int, dailyRate float64) int {
	qty := int(math.Ceil(dailyRate * (leadTimeDays + safetyStockDays)))
	if qty < reorderPoint {
		qty = reorderPoint
	}
	return qty
}

// revenueLoss estimates the profit lost to the days of the coming week
// the product would spend out of stock.
func revenueLoss(dailyRate float64, daysToStockout int, unitProfit float64) float64 {
	exposed := float64(7 - daysToStockout)
	if exposed < 0 {
		exposed = 0
	}
	return round2(dailyRate * exposed * unitProfit)
}

func alertWording(priority, productName string, daysToStockout int) (title, message, action string) {
	switch priority {
	case models.AlertUrgent:
		title = "Stockout imminent"
		message = fmt.Sprintf("%s is about to run out (%d day(s) of stock left)", productName, daysToStockout)
		action = "Place an emergency order today"
	case models.AlertCritical:
		title = "Stock critically low"
		message = fmt.Sprintf("%s will run out in roughly %d days", productName, daysToStockout)
		action = "Reorder within the next 48 hours"
	default:
		title = "Stock below reorder point"
		message = fmt.Sprintf("%s is below its reorder point", productName)
		action = "Include in the next regular order"
	}
	return title, message, action
}

func sortAlerts(alerts []models.StockAlert) {
	rank := func(priority string) int {
		switch priority {
		case models.AlertUrgent:
			return 0
		case models.AlertCritical:
			return 1
		default:
			return 2
		}
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		return rank(alerts[i].Priority) < rank(alerts[j].Priority)
	})
}

// Opportunities surfaces the positive side of the same math: products
// whose demand profile supports a promotion or a price review.
func (s *InventoryService) Opportunities(ctx context.Context) ([]models.Opportunity, error) {
	return request(ctx, s.core, "opportunities", "/ai/opportunities",
		RequestOptions{Method: http.MethodGet},
		func(ctx context.Context) ([]models.Opportunity, error) {
			return s.localOpportunities(ctx)
		})
}

func (s *InventoryService) localOpportunities(ctx context.Context) ([]models.Opportunity, error) {
	products, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, err
	}

	opportunities := make([]models.Opportunity, 0)
	for i := range products {
		p := &products[i]
		dailySales := float64(p.SalesLast30Days) / 30

		if p.Trend == models.TrendUp && p.Stock > p.ReorderPoint*2 {
			opportunities = append(opportunities, models.Opportunity{
				ProductID:   p.ID,
				ProductName: p.Name,
				Category:    p.Category,
				Type:        "promotion",
				Headline:    "Rising demand with healthy stock",
				Detail:      fmt.Sprintf("%s is trending up and has %d units on hand; a promotion can capture the momentum", p.Name, p.Stock),
				Score:       round2(p.QualityScore * dailySales),
			})
		}

		if marginPct := marginPercent(p); marginPct >= 40 && p.Trend == models.TrendUp {
			opportunities = append(opportunities, models.Opportunity{
				ProductID:   p.ID,
				ProductName: p.Name,
				Category:    p.Category,
				Type:        "price_review",
				Headline:    "High margin with rising demand",
				Detail:      fmt.Sprintf("%s carries a %.0f%% margin while demand grows; the price has room to move", p.Name, marginPct),
				Score:       round2(marginPct / 100 * dailySales),
			})
		}
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].Score > opportunities[j].Score
	})
	return opportunities, nil
}

func marginPercent(p *models.Product) float64 {
	if p.Price <= 0 {
		return 0
	}
	return p.UnitProfit() / p.Price * 100
}
