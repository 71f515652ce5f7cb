package ai

import (
	"context"
	"math"
	"testing"

	"github.com/camilomiori/POSAI-frontend-sub000/catalog"
	"github.com/camilomiori/POSAI-frontend-sub000/models"
	"github.com/google/uuid"
)

// flatProduct sells evenly all year: parts have no seasonal factor and
// the stable trend multiplies by 1. With quality 1.0 the weekly base is
// exactly stock x 0.3.
func flatProduct() models.Product {
	return models.Product{
		Name:            "Brake Pad Set Front",
		Category:        models.CategoryParts,
		Price:           100,
		Cost:            60,
		Stock:           70,
		ReorderPoint:    10,
		SalesLast30Days: 60,
		Trend:           models.TrendStable,
		QualityScore:    1.0,
	}
}

func TestPredictFlatProduct(t *testing.T) {
	mem := catalog.NewMemory()
	id := mem.Add(flatProduct())
	engine := newLocalEngine(t, mem)

	got, err := engine.Demand().Predict(context.Background(), id, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected a prediction")
	}

	// Weekly base is 70 x 0.3 = 21 units.
	if got.PredictedSales != 21 {
		t.Errorf("expected 21 predicted sales, got %d", got.PredictedSales)
	}
	if got.Confidence != 100 {
		t.Errorf("expected confidence 100, got %d", got.Confidence)
	}
	if got.DaysToStockout != 23 {
		t.Errorf("expected 23 days to stockout, got %d", got.DaysToStockout)
	}
	if got.Recommendation != models.RecommendMonitor {
		t.Errorf("expected monitor, got %s", got.Recommendation)
	}
	if got.ProfitImpact.ExpectedProfit != 840 {
		t.Errorf("expected 840 expected profit, got %f", got.ProfitImpact.ExpectedProfit)
	}
	if got.ProfitImpact.MarginPercent != 40 {
		t.Errorf("expected 40%% margin, got %f", got.ProfitImpact.MarginPercent)
	}
	if got.ProfitImpact.RiskLevel != "low" {
		t.Errorf("expected low risk, got %s", got.ProfitImpact.RiskLevel)
	}
	if !got.GeneratedAt.Equal(fixedTime) {
		t.Errorf("expected injected clock timestamp, got %v", got.GeneratedAt)
	}
}

func TestPredictDailyTrendShape(t *testing.T) {
	mem := catalog.NewMemory()
	id := mem.Add(flatProduct())
	engine := newLocalEngine(t, mem)

	got, err := engine.Demand().Predict(context.Background(), id, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got.DailyTrend) != 7 {
		t.Fatalf("expected 7 trend entries, got %d", len(got.DailyTrend))
	}
	perDay := 3.0
	for i, day := range got.DailyTrend {
		if day.Day != i+1 {
			t.Errorf("entry %d: expected day %d, got %d", i, i+1, day.Day)
		}
		// Jitter stays inside +/-15% of the daily base.
		if day.Expected < perDay*0.85 || day.Expected > perDay*1.15 {
			t.Errorf("day %d: expected value within jitter band, got %f", day.Day, day.Expected)
		}
		wantConfidence := 100 - i*3
		if wantConfidence < 50 {
			wantConfidence = 50
		}
		if day.Confidence != wantConfidence {
			t.Errorf("day %d: expected confidence %d, got %d", day.Day, wantConfidence, day.Confidence)
		}
	}

	if got.TurnoverRate < 2 || got.TurnoverRate > 14 {
		t.Errorf("turnover rate out of range: %f", got.TurnoverRate)
	}
}

func TestPredictHorizonScalesLinearly(t *testing.T) {
	mem := catalog.NewMemory()
	id := mem.Add(flatProduct())
	engine := newLocalEngine(t, mem)

	got, err := engine.Demand().Predict(context.Background(), id, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.PredictedSales != 42 {
		t.Errorf("expected 42 predicted sales over 14 days, got %d", got.PredictedSales)
	}
	if len(got.DailyTrend) != 7 {
		t.Errorf("daily trend must cap at 7 entries, got %d", len(got.DailyTrend))
	}
}

func TestPredictDefaultsHorizon(t *testing.T) {
	mem := catalog.NewMemory()
	id := mem.Add(flatProduct())
	engine := newLocalEngine(t, mem)

	got, err := engine.Demand().Predict(context.Background(), id, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.HorizonDays != DefaultHorizonDays {
		t.Errorf("expected default horizon %d, got %d", DefaultHorizonDays, got.HorizonDays)
	}
}

func TestPredictRecommendsReorderAtReorderPoint(t *testing.T) {
	p := flatProduct()
	p.Stock = 10
	mem := catalog.NewMemory()
	id := mem.Add(p)
	engine := newLocalEngine(t, mem)

	got, err := engine.Demand().Predict(context.Background(), id, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Recommendation != models.RecommendReorder {
		t.Errorf("stock at reorder point must recommend reorder, got %s", got.Recommendation)
	}
	if got.ProfitImpact.RiskLevel != "high" {
		t.Errorf("expected high risk at reorder point, got %s", got.ProfitImpact.RiskLevel)
	}
}

func TestPredictUnknownProduct(t *testing.T) {
	engine := newLocalEngine(t, catalog.NewMemory())

	got, err := engine.Demand().Predict(context.Background(), uuid.Must(uuid.NewV7()), 7)
	if err != nil {
		t.Fatalf("unknown product must not error: %v", err)
	}
	if got != nil {
		t.Fatalf("unknown product must yield nil, got %+v", got)
	}
}

func TestPredictZeroStockNeverStocksOut(t *testing.T) {
	p := flatProduct()
	p.Stock = 0
	mem := catalog.NewMemory()
	id := mem.Add(p)
	engine := newLocalEngine(t, mem)

	got, err := engine.Demand().Predict(context.Background(), id, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Zero stock means zero projected movement; the sentinel marks the
	// stockout horizon as unknown rather than dividing by zero.
	if got.DaysToStockout != 999 {
		t.Errorf("expected sentinel 999, got %d", got.DaysToStockout)
	}
	if got.PredictedSales != 0 {
		t.Errorf("expected 0 predicted sales, got %d", got.PredictedSales)
	}
}

func TestSeasonalAndTrendFactorsRaiseForecast(t *testing.T) {
	cases := []struct {
		name     string
		category string
		trend    string
		want     int // stock 70, quality 1.0, February
	}{
		{"flat", models.CategoryParts, models.TrendStable, 21},
		{"trending up", models.CategoryParts, models.TrendUp, 25},     // 21 x 1.2
		{"trending down", models.CategoryParts, models.TrendDown, 17}, // 21 x 0.8
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := flatProduct()
			p.Category = tc.category
			p.Trend = tc.trend
			mem := catalog.NewMemory()
			id := mem.Add(p)
			engine := newLocalEngine(t, mem)

			got, err := engine.Demand().Predict(context.Background(), id, 7)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.PredictedSales != tc.want {
				t.Errorf("expected %d predicted sales, got %d", tc.want, got.PredictedSales)
			}
		})
	}
}

func TestHourlyDemandSeries(t *testing.T) {
	engine := newLocalEngine(t, catalog.NewMemory())

	series, err := engine.Demand().HourlyDemand(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != closingHour-openingHour+1 {
		t.Fatalf("expected %d slots, got %d", closingHour-openingHour+1, len(series))
	}

	var predictedTotal int
	for i, slot := range series {
		wantHour := openingHour + i
		if slot.Hour != wantHour {
			t.Errorf("slot %d: expected hour %d, got %d", i, wantHour, slot.Hour)
		}
		wantPredicted := int(math.Round(defaultDailyBaseline * hourlyShape[wantHour]))
		if slot.Predicted != wantPredicted {
			t.Errorf("hour %d: expected %d predicted, got %d", wantHour, wantPredicted, slot.Predicted)
		}
		predictedTotal += slot.Predicted

		// The injected clock reads 10:00, so only the first three slots
		// carry simulated actuals.
		if wantHour <= 10 {
			if slot.Actual == nil {
				t.Errorf("hour %d: expected an actual for a past hour", wantHour)
				continue
			}
			lo := float64(slot.Predicted) * 0.8
			hi := float64(slot.Predicted) * 1.1
			if float64(*slot.Actual) < math.Floor(lo) || float64(*slot.Actual) > math.Ceil(hi) {
				t.Errorf("hour %d: actual %d outside 80-110%% of predicted %d", wantHour, *slot.Actual, slot.Predicted)
			}
		} else if slot.Actual != nil {
			t.Errorf("hour %d: future hours must not carry actuals", wantHour)
		}
	}

	// The hourly fractions sum to 1, so the series redistributes the
	// whole daily baseline.
	if predictedTotal != defaultDailyBaseline {
		t.Errorf("expected predicted total %d, got %d", defaultDailyBaseline, predictedTotal)
	}
}
