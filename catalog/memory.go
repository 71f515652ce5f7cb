package catalog

import (
	"context"
	"sync"

	"github.com/camilomiori/POSAI-frontend-sub000/models"
	"github.com/google/uuid"
)

// Memory is a seedable in-memory catalog. It backs tests and lets the
// server run without a database.
type Memory struct {
	mu       sync.RWMutex
	products map[uuid.UUID]models.Product
	order    []uuid.UUID
	sales    map[uuid.UUID][]int // per-day quantities, oldest first
}

func NewMemory(products ...models.Product) *Memory {
	m := &Memory{
		products: make(map[uuid.UUID]models.Product),
		sales:    make(map[uuid.UUID][]int),
	}
	for _, p := range products {
		m.Add(p)
	}
	return m
}

// Add inserts or replaces a product, assigning an id when missing.
func (m *Memory) Add(p models.Product) uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	if _, exists := m.products[p.ID]; !exists {
		m.order = append(m.order, p.ID)
	}
	m.products[p.ID] = p
	return p.ID
}

// SetDailySales seeds the per-day sales series used by velocity math.
func (m *Memory) SetDailySales(id uuid.UUID, series []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sales[id] = append([]int(nil), series...)
}

func (m *Memory) Product(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *Memory) Products(ctx context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Product, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.products[id])
	}
	return out, nil
}

// DailySales returns the seeded series resized to the window. Without a
// seeded series it spreads the product's trailing-30-day count evenly.
func (m *Memory) DailySales(ctx context.Context, id uuid.UUID, days int) ([]int, error) {
	if days <= 0 {
		return nil, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	series := make([]int, days)
	if seeded, ok := m.sales[id]; ok {
		offset := len(seeded) - days
		for i := 0; i < days; i++ {
			if j := offset + i; j >= 0 && j < len(seeded) {
				series[i] = seeded[j]
			}
		}
		return series, nil
	}

	p, ok := m.products[id]
	if !ok {
		return series, nil
	}
	perDay := p.SalesLast30Days / 30
	for i := range series {
		series[i] = perDay
	}
	return series, nil
}
