package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Demand trend tags
// ═══════════════════════════════════════════════════════════

const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// Product categories carried by the POS catalog. The seasonal demand
// tables in the ai package are keyed by these values.
const (
	CategoryTires       = "tires"
	CategoryLubricants  = "lubricants"
	CategoryParts       = "parts"
	CategoryAccessories = "accessories"
	CategoryBatteries   = "batteries"
)

type TagsList []string

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

// Product is read-only to the intelligence subsystem: the engine consumes
// it, it never writes it back. Stock is assumed >= 0; price >= cost is
// assumed but not enforced here.
type Product struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name            string    `json:"name" gorm:"not null;index"`
	Category        string    `json:"category" gorm:"not null;index"`
	Price           float64   `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	Cost            float64   `json:"cost" gorm:"type:numeric(12,2);not null;check:cost >= 0"`
	Stock           int       `json:"stock" gorm:"not null;default:0;check:stock >= 0"`
	ReorderPoint    int       `json:"reorder_point" gorm:"not null;default:0"`
	MaxStock        int       `json:"max_stock" gorm:"not null;default:0"`
	SalesLast30Days int       `json:"sales_last_30_days" gorm:"not null;default:0"`
	Trend           string    `json:"trend" gorm:"not null;default:'stable';check:trend IN ('up', 'down', 'stable')"`
	QualityScore    float64   `json:"quality_score" gorm:"not null;default:0.8"` // confidence proxy in [0,1]
	Tags            TagsList  `json:"tags" gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// UnitProfit returns the per-unit margin in currency.
func (p *Product) UnitProfit() float64 {
	return p.Price - p.Cost
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM
// ═══════════════════════════════════════════════════════════

func (t *TagsList) Scan(value interface{}) error {
	if value == nil {
		*t = make(TagsList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan TagsList")
	}
	return json.Unmarshal(bytes, t)
}

func (t TagsList) Value() (driver.Value, error) {
	if t == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(t)
}
