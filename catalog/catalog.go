package catalog

import (
	"context"

	"github.com/camilomiori/POSAI-frontend-sub000/models"
	"github.com/google/uuid"
)

// Catalog is the read-only product/sales source the intelligence engine
// works from. Lookups for unknown products return (nil, nil): a missing
// product is an empty result, not an error.
type Catalog interface {
	// Product returns one product, or nil when the id is unknown.
	Product(ctx context.Context, id uuid.UUID) (*models.Product, error)

	// Products returns the full catalog.
	Products(ctx context.Context) ([]models.Product, error)

	// DailySales returns per-day sold quantities for the trailing window,
	// oldest day first. Days with no sales are zero, so the slice always
	// has exactly `days` entries.
	DailySales(ctx context.Context, id uuid.UUID, days int) ([]int, error)
}
