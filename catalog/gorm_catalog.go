package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	product_cache "github.com/camilomiori/POSAI-frontend-sub000/cache"
	"github.com/camilomiori/POSAI-frontend-sub000/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"
)

// Gorm reads products through GORM and aggregates sales with raw SQL on
// the pgx pool, mirroring how the rest of the backend splits the two.
type Gorm struct {
	db   *gorm.DB
	pool *pgxpool.Pool
}

func NewGorm(db *gorm.DB, pool *pgxpool.Pool) *Gorm {
	return &Gorm{db: db, pool: pool}
}

func (g *Gorm) Product(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := g.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product %s: %w", id, err)
	}
	return &product, nil
}

func (g *Gorm) Products(ctx context.Context) ([]models.Product, error) {
	if products, ok := product_cache.GetProducts(); ok {
		return products, nil
	}

	var products []models.Product
	if err := g.db.WithContext(ctx).Order("name").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	product_cache.SetProducts(products)
	return products, nil
}

// DailySales buckets sold quantities per calendar day. The query only
// returns days that had sales; the dense slice is filled here.
func (g *Gorm) DailySales(ctx context.Context, id uuid.UUID, days int) ([]int, error) {
	if days <= 0 {
		return nil, nil
	}

	rows, err := g.pool.Query(ctx, `
		SELECT sold_at::date AS day, COALESCE(SUM(quantity), 0) AS qty
		FROM sales
		WHERE product_id = $1
		  AND sold_at >= (CURRENT_DATE - ($2 - 1) * INTERVAL '1 day')
		GROUP BY day
		ORDER BY day
	`, id, days)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales for %s: %w", id, err)
	}
	defer rows.Close()

	byDay := make(map[string]int)
	for rows.Next() {
		var day time.Time
		var qty int64
		if err := rows.Scan(&day, &qty); err != nil {
			return nil, fmt.Errorf("failed to scan sales row: %w", err)
		}
		byDay[day.Format("2006-01-02")] = int(qty)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sales rows: %w", err)
	}

	series := make([]int, days)
	start := time.Now().AddDate(0, 0, -(days - 1))
	for i := 0; i < days; i++ {
		series[i] = byDay[start.AddDate(0, 0, i).Format("2006-01-02")]
	}
	return series, nil
}
