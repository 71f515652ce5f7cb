package product_cache

import (
	"sync"
	"time"

	"github.com/camilomiori/POSAI-frontend-sub000/models"
)

const TTL = 5 * time.Minute

// ── Full catalog cache ───────────────────────────────────────────────────────
// Stores the complete product list so the pricing and inventory passes that
// sweep the whole catalog don't hammer the database on every refresh.

type listEntry struct {
	products  []models.Product
	fetchedAt time.Time
}

var (
	listMu    sync.RWMutex
	listCache *listEntry
)

func GetProducts() ([]models.Product, bool) {
	listMu.RLock()
	defer listMu.RUnlock()
	if listCache != nil && time.Since(listCache.fetchedAt) < TTL {
		return listCache.products, true
	}
	return nil, false
}

func SetProducts(products []models.Product) {
	listMu.Lock()
	defer listMu.Unlock()
	listCache = &listEntry{products: products, fetchedAt: time.Now()}
}

// ── Invalidate (call on any product create/update/delete) ────────────────────

func Invalidate() {
	listMu.Lock()
	listCache = nil
	listMu.Unlock()
}
