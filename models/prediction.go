package models

import (
	"time"

	"github.com/google/uuid"
)

// Recommendation tags returned by demand predictions, strongest first.
const (
	RecommendReorder        = "reorder"
	RecommendMonitorClosely = "monitor_closely"
	RecommendMonitor        = "monitor"
)

// DemandPrediction is the forecast for one product over a requested
// horizon. Computed on demand, never persisted; the request core caches
// it keyed by product+horizon.
type DemandPrediction struct {
	ProductID      uuid.UUID    `json:"product_id"`
	ProductName    string       `json:"product_name"`
	HorizonDays    int          `json:"horizon_days"`
	PredictedSales int          `json:"predicted_sales"` // Units expected over the horizon
	Confidence     int          `json:"confidence"`      // Percentage 0-100
	Recommendation string       `json:"recommendation"`  // reorder | monitor_closely | monitor
	DaysToStockout int          `json:"days_to_stockout"`
	DailyTrend     []DailyTrend `json:"daily_trend"`  // Per-day breakdown, 7 entries max
	TurnoverRate   float64      `json:"turnover_rate"`
	ProfitImpact   ProfitImpact `json:"profit_impact"`
	GeneratedAt    time.Time    `json:"generated_at"`
}

// DailyTrend is one day of the per-day demand breakdown.
type DailyTrend struct {
	Day        int     `json:"day"`        // 1-based day within the horizon
	Expected   float64 `json:"expected"`   // Expected unit sales that day
	Confidence int     `json:"confidence"` // Percentage, decays with distance
}

// ProfitImpact estimates what the predicted sales are worth.
type ProfitImpact struct {
	ExpectedProfit float64 `json:"expected_profit"` // unit profit x predicted sales
	MarginPercent  float64 `json:"margin_percent"`
	RiskLevel      string  `json:"risk_level"` // high when stock is at/below the reorder point
}

// HourlyDemand is one slot of the 08:00-19:00 intraday series. Actual is
// only populated for hours already past.
type HourlyDemand struct {
	Hour      int  `json:"hour"` // 8..19
	Predicted int  `json:"predicted"`
	Actual    *int `json:"actual,omitempty"`
}
