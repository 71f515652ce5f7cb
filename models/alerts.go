package models

import "github.com/google/uuid"

// Alert priority tiers, strongest first. Sorting follows this order.
const (
	AlertUrgent   = "urgent"
	AlertCritical = "critical"
	AlertWarning  = "warning"
)

// StockAlert flags a product heading towards a stockout.
type StockAlert struct {
	ProductID            uuid.UUID     `json:"product_id"`
	ProductName          string        `json:"product_name"`
	Category             string        `json:"category"`
	CurrentStock         int           `json:"current_stock"`
	ReorderPoint         int           `json:"reorder_point"`
	DaysUntilStockout    int           `json:"days_until_stockout"`
	Velocity             SalesVelocity `json:"velocity"`
	Priority             string        `json:"priority"` // urgent | critical | warning
	Title                string        `json:"title"`
	Message              string        `json:"message"`
	RecommendedAction    string        `json:"recommended_action"`
	RecommendedOrderQty  int           `json:"recommended_order_qty"`
	PotentialRevenueLoss float64       `json:"potential_revenue_loss"` // if left unaddressed
}

// SalesVelocity is how fast a product moves, derived from the trailing
// 30 days of sales.
type SalesVelocity struct {
	Daily   float64 `json:"daily"`
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
	Trend   string  `json:"trend"` // increasing | decreasing | stable
}

// Opportunity is a positive-action counterpart to StockAlert: products
// whose demand profile supports a promotion or a price review.
type Opportunity struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Category    string    `json:"category"`
	Type        string    `json:"type"` // promotion | price_review
	Headline    string    `json:"headline"`
	Detail      string    `json:"detail"`
	Score       float64   `json:"score"` // higher is more attractive
}
