package ai

import (
	"time"

	"github.com/camilomiori/POSAI-frontend-sub000/models"
)

// Fixed seasonal demand factors keyed by category and calendar month.
// Anything not listed sells flat (factor 1.0). Tires spike around the
// season changes, batteries in the cold months, lubricants before the
// holiday road trips.
var seasonalFactors = map[string]map[time.Month]float64{
	models.CategoryTires: {
		time.March:     1.3,
		time.April:     1.3,
		time.May:       1.1,
		time.September: 1.3,
		time.October:   1.3,
		time.November:  1.1,
	},
	models.CategoryBatteries: {
		time.June:   1.2,
		time.July:   1.25,
		time.August: 1.15,
	},
	models.CategoryLubricants: {
		time.January:  1.15,
		time.July:     1.1,
		time.December: 1.2,
	},
	models.CategoryAccessories: {
		time.December: 1.25,
		time.January:  1.1,
	},
}

func seasonalFactor(category string, month time.Month) float64 {
	if byMonth, ok := seasonalFactors[category]; ok {
		if factor, ok := byMonth[month]; ok {
			return factor
		}
	}
	return 1.0
}

func trendMultiplier(trend string) float64 {
	switch trend {
	case models.TrendUp:
		return 1.2
	case models.TrendDown:
		return 0.8
	default:
		return 1.0
	}
}

// hourlyShape spreads a daily sales baseline over the 08:00-19:00
// business hours. Fractions sum to 1.
var hourlyShape = map[int]float64{
	8:  0.04,
	9:  0.06,
	10: 0.09,
	11: 0.11,
	12: 0.10,
	13: 0.07,
	14: 0.06,
	15: 0.07,
	16: 0.09,
	17: 0.11,
	18: 0.12,
	19: 0.08,
}

const (
	openingHour = 8
	closingHour = 19
)

// Demand elasticity descriptors per category. Coefficients are static
// estimates, not fitted values.
var elasticities = map[string]models.DemandElasticity{
	models.CategoryTires:       {Coefficient: -0.8, Label: "inelastic", Flexibility: "low"},
	models.CategoryBatteries:   {Coefficient: -0.7, Label: "inelastic", Flexibility: "low"},
	models.CategoryParts:       {Coefficient: -0.9, Label: "inelastic", Flexibility: "moderate"},
	models.CategoryLubricants:  {Coefficient: -1.2, Label: "elastic", Flexibility: "moderate"},
	models.CategoryAccessories: {Coefficient: -1.5, Label: "elastic", Flexibility: "high"},
}

func elasticityFor(category string) models.DemandElasticity {
	if e, ok := elasticities[category]; ok {
		return e
	}
	return models.DemandElasticity{Coefficient: -1.0, Label: "inelastic", Flexibility: "moderate"}
}
