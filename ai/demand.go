package ai

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/camilomiori/POSAI-frontend-sub000/catalog"
	"github.com/camilomiori/POSAI-frontend-sub000/models"
	"github.com/google/uuid"
)

// DefaultHorizonDays is the forecast window used when callers don't ask
// for a specific one.
const DefaultHorizonDays = 7

// DemandService forecasts unit sales per product, decomposing the signal
// into seasonal, trend and hourly factors. The network path asks the
// remote service; the local path is the closed-form heuristic below.
type DemandService struct {
	core    *Core
	catalog catalog.Catalog
	rng     *lockedRand
	now     func() time.Time
}

type predictRequest struct {
	ProductID   uuid.UUID `json:"product_id"`
	HorizonDays int       `json:"horizon_days"`
}

// Predict forecasts unit sales for one product over the horizon. An
// unknown product yields (nil, nil), not an error.
func (s *DemandService) Predict(ctx context.Context, productID uuid.UUID, horizonDays int) (*models.DemandPrediction, error) {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	product, err := s.catalog.Product(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	cacheKey := fmt.Sprintf("predict:%s:%d", productID, horizonDays)
	return request(ctx, s.core, cacheKey, "/ai/predict",
		RequestOptions{Method: http.MethodPost, Body: predictRequest{ProductID: productID, HorizonDays: horizonDays}},
		func(ctx context.Context) (*models.DemandPrediction, error) {
			return s.localPredict(product, horizonDays), nil
		})
}

// localPredict is the heuristic fallback. basePrediction is the expected
// weekly unit sales; everything else derives from it.
func (s *DemandService) localPredict(p *models.Product, horizonDays int) *models.DemandPrediction {
	now := s.now()

	base := float64(p.Stock) * 0.3 * p.QualityScore *
		seasonalFactor(p.Category, now.Month()) *
		trendMultiplier(p.Trend)

	predictedSales := int(math.Round(base * float64(horizonDays) / 7))
	confidence := int(math.Round(p.QualityScore * 100))

	perDay := base / 7
	daysToStockout := 999
	if perDay > 0 {
		daysToStockout = int(math.Round(float64(p.Stock) / perDay))
	}

	recommendation := models.RecommendMonitor
	switch {
	case p.Stock <= p.ReorderPoint:
		recommendation = models.RecommendReorder
	case daysToStockout <= 14:
		recommendation = models.RecommendMonitorClosely
	}

	trendDays := horizonDays
	if trendDays > 7 {
		trendDays = 7
	}
	dailyTrend := make([]models.DailyTrend, 0, trendDays)
	for day := 1; day <= trendDays; day++ {
		jitter := s.rng.between(-0.15, 0.15)
		dayConfidence := confidence - (day-1)*3
		if dayConfidence < 50 {
			dayConfidence = 50
		}
		dailyTrend = append(dailyTrend, models.DailyTrend{
			Day:        day,
			Expected:   round2(perDay * (1 + jitter)),
			Confidence: dayConfidence,
		})
	}

	unitProfit := p.UnitProfit()
	risk := "low"
	if p.Stock <= p.ReorderPoint {
		risk = "high"
	}
	marginPercent := 0.0
	if p.Price > 0 {
		marginPercent = round2(unitProfit / p.Price * 100)
	}

	return &models.DemandPrediction{
		ProductID:      p.ID,
		ProductName:    p.Name,
		HorizonDays:    horizonDays,
		PredictedSales: predictedSales,
		Confidence:     confidence,
		Recommendation: recommendation,
		DaysToStockout: daysToStockout,
		DailyTrend:     dailyTrend,
		// TODO: replace with a real turnover computation once sales
		// history goes back far enough (needs ~6 months of data).
		TurnoverRate: round1(s.rng.between(2, 14)),
		ProfitImpact: models.ProfitImpact{
			ExpectedProfit: round2(unitProfit * float64(predictedSales)),
			MarginPercent:  marginPercent,
			RiskLevel:      risk,
		},
		GeneratedAt: now,
	}
}

type insightSummary struct {
	DailySalesAverage float64 `json:"daily_sales_average"`
}

// defaultDailyBaseline is used when no upstream insight data is
// available.
const defaultDailyBaseline = 2000

// HourlyDemand derives the 08:00-19:00 intraday series from an aggregate
// daily baseline. Hours already past also carry a simulated actual at
// 80-110% of predicted.
func (s *DemandService) HourlyDemand(ctx context.Context) ([]models.HourlyDemand, error) {
	summary, err := request(ctx, s.core, "insights:summary", "/ai/insights",
		RequestOptions{Method: http.MethodGet},
		func(ctx context.Context) (insightSummary, error) {
			return insightSummary{DailySalesAverage: defaultDailyBaseline}, nil
		})
	if err != nil {
		return nil, err
	}

	baseline := summary.DailySalesAverage
	if baseline <= 0 {
		baseline = defaultDailyBaseline
	}

	currentHour := s.now().Hour()
	series := make([]models.HourlyDemand, 0, closingHour-openingHour+1)
	for hour := openingHour; hour <= closingHour; hour++ {
		predicted := int(math.Round(baseline * hourlyShape[hour]))
		slot := models.HourlyDemand{Hour: hour, Predicted: predicted}
		if hour <= currentHour {
			actual := int(math.Round(float64(predicted) * s.rng.between(0.8, 1.1)))
			slot.Actual = &actual
		}
		series = append(series, slot)
	}
	return series, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
