package models

import (
	"time"

	"github.com/google/uuid"
)

// Urgency tiers for price suggestions.
const (
	UrgencyHigh   = "high"
	UrgencyMedium = "medium"
	UrgencyLow    = "low"
)

// PriceOptimization is a single-product price recommendation together
// with the market context used to justify it.
type PriceOptimization struct {
	ProductID       uuid.UUID        `json:"product_id"`
	ProductName     string           `json:"product_name"`
	Category        string           `json:"category"`
	CurrentPrice    float64          `json:"current_price"`
	SuggestedPrice  float64          `json:"suggested_price"`
	ChangePercent   float64          `json:"change_percent"`
	NewMargin       float64          `json:"new_margin"` // (suggested - cost) / suggested x 100
	Confidence      int              `json:"confidence"`
	Reasoning       string           `json:"reasoning"`
	Urgency         string           `json:"urgency"`
	ValidUntil      time.Time        `json:"valid_until"` // suggestions are time-boxed
	MarketAverage   float64          `json:"market_average"`   // category average price
	CompetitorPrice float64          `json:"competitor_price"` // simulated, current +/- 5%
	Elasticity      DemandElasticity `json:"elasticity"`
}

// DemandElasticity describes how sensitive a category's demand is to
// price changes. |Coefficient| > 1 means elastic.
type DemandElasticity struct {
	Coefficient float64 `json:"coefficient"`
	Label       string  `json:"label"`       // elastic | inelastic
	Flexibility string  `json:"flexibility"` // how much room pricing has
}

// PriceSuggestion is one entry of the continuously refreshed dynamic
// suggestion list. Only emitted when the net change is at least 2%.
type PriceSuggestion struct {
	ID             uuid.UUID `json:"id"`
	ProductID      uuid.UUID `json:"product_id"`
	ProductName    string    `json:"product_name"`
	Category       string    `json:"category"`
	CurrentPrice   float64   `json:"current_price"`
	SuggestedPrice float64   `json:"suggested_price"`
	ChangePercent  float64   `json:"change_percent"`
	Confidence     int       `json:"confidence"`
	Reasons        []string  `json:"reasons"`
	Urgency        string    `json:"urgency"`
	RevenueImpact  float64   `json:"revenue_impact"` // expected daily revenue delta
	ValidUntil     time.Time `json:"valid_until"`
}
