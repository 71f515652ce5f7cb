package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale is a single line of sold product. The intelligence subsystem only
// aggregates it (30-day velocity windows); order/checkout handling lives
// elsewhere.
type Sale struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index:idx_sales_product_sold_at,priority:1"`
	Quantity  int       `json:"quantity" gorm:"not null;check:quantity > 0"`
	UnitPrice float64   `json:"unit_price" gorm:"type:numeric(12,2);not null"`
	SoldAt    time.Time `json:"sold_at" gorm:"not null;index:idx_sales_product_sold_at,priority:2"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Sale) TableName() string {
	return "sales"
}
