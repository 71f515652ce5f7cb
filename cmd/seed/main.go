package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/camilomiori/POSAI-frontend-sub000/config"
	"github.com/camilomiori/POSAI-frontend-sub000/models"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds a demo catalog plus 30 days of sales history so the
// intelligence endpoints have something to chew on.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("POS INTELLIGENCE - Demo Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	if err := config.PosGorm.AutoMigrate(&models.Product{}, &models.Sale{}); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	log.Println("✓ Schema migrated")

	products := demoProducts()
	for i := range products {
		if err := config.PosGorm.Create(&products[i]).Error; err != nil {
			log.Fatalf("Failed to create product %q: %v", products[i].Name, err)
		}
	}
	log.Printf("✓ Seeded %d products", len(products))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var saleCount int
	for i := range products {
		saleCount += seedSales(&products[i], rng)
	}
	log.Printf("✓ Seeded %d sales across the trailing 30 days", saleCount)

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Demo Catalog Ready!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Try POST /api/v1/ai/predict with one of the product ids above")
}

func demoProducts() []models.Product {
	return []models.Product{
		{Name: "All-Season Tire 205/55R16", Category: models.CategoryTires, Price: 120, Cost: 78, Stock: 48, ReorderPoint: 16, MaxStock: 80, SalesLast30Days: 62, Trend: models.TrendUp, QualityScore: 0.9, Tags: models.TagsList{"tire", "all-season"}},
		{Name: "Winter Tire 195/65R15", Category: models.CategoryTires, Price: 140, Cost: 95, Stock: 12, ReorderPoint: 20, MaxStock: 60, SalesLast30Days: 75, Trend: models.TrendUp, QualityScore: 0.85, Tags: models.TagsList{"tire", "winter"}},
		{Name: "Synthetic Oil 5W-30 4L", Category: models.CategoryLubricants, Price: 45, Cost: 28, Stock: 90, ReorderPoint: 25, MaxStock: 120, SalesLast30Days: 110, Trend: models.TrendStable, QualityScore: 0.8, Tags: models.TagsList{"oil", "synthetic"}},
		{Name: "Brake Pad Set Front", Category: models.CategoryParts, Price: 65, Cost: 38, Stock: 34, ReorderPoint: 12, MaxStock: 50, SalesLast30Days: 40, Trend: models.TrendStable, QualityScore: 0.75},
		{Name: "Car Battery 12V 60Ah", Category: models.CategoryBatteries, Price: 110, Cost: 72, Stock: 8, ReorderPoint: 10, MaxStock: 30, SalesLast30Days: 22, Trend: models.TrendUp, QualityScore: 0.85, Tags: models.TagsList{"battery"}},
		{Name: "Wiper Blade Pair 24in", Category: models.CategoryAccessories, Price: 18, Cost: 8, Stock: 150, ReorderPoint: 30, MaxStock: 200, SalesLast30Days: 95, Trend: models.TrendDown, QualityScore: 0.7, Tags: models.TagsList{"wiper"}},
		{Name: "Air Filter Universal", Category: models.CategoryParts, Price: 22, Cost: 11, Stock: 60, ReorderPoint: 15, MaxStock: 90, SalesLast30Days: 33, Trend: models.TrendStable, QualityScore: 0.8},
		{Name: "LED Headlight Bulb H7", Category: models.CategoryAccessories, Price: 35, Cost: 17, Stock: 25, ReorderPoint: 20, MaxStock: 70, SalesLast30Days: 58, Trend: models.TrendUp, QualityScore: 0.9, Tags: models.TagsList{"led", "bulb"}},
	}
}

// seedSales spreads the product's trailing-30-day count over the window
// with mild day-to-day noise, skewed towards the recent week when the
// product trends up.
func seedSales(p *models.Product, rng *rand.Rand) int {
	var count int
	now := time.Now()
	perDay := float64(p.SalesLast30Days) / 30

	for day := 29; day >= 0; day-- {
		qty := perDay * (0.6 + rng.Float64()*0.8)
		if p.Trend == models.TrendUp && day < 7 {
			qty *= 1.4
		}
		if p.Trend == models.TrendDown && day < 7 {
			qty *= 0.6
		}

		units := int(qty + 0.5)
		if units == 0 {
			continue
		}
		sale := models.Sale{
			ID:        uuid.Must(uuid.NewV7()),
			ProductID: p.ID,
			Quantity:  units,
			UnitPrice: p.Price,
			SoldAt:    now.AddDate(0, 0, -day).Add(-time.Duration(rng.Intn(8)) * time.Hour),
		}
		if err := config.PosGorm.Create(&sale).Error; err != nil {
			log.Fatalf("Failed to create sale for %q: %v", p.Name, err)
		}
		count++
	}
	return count
}
