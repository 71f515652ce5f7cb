package routes

import (
	"github.com/camilomiori/POSAI-frontend-sub000/ai"
	"github.com/camilomiori/POSAI-frontend-sub000/controllers/ai_controller"
	"github.com/gin-gonic/gin"
)

// SetupAIRoutes registers the intelligence surface under /ai.
func SetupAIRoutes(rg *gin.RouterGroup, engine *ai.Engine) {
	ctl := ai_controller.New(engine)

	group := rg.Group("/ai")

	// Domain services
	group.POST("/predict", ctl.Predict)
	group.GET("/predict/batch", ctl.PredictBatch)
	group.GET("/insights", ctl.HourlyInsights)
	group.POST("/optimize-price", ctl.OptimizePrice)
	group.GET("/pricing-suggestions", ctl.PricingSuggestions)
	group.GET("/stock-alerts", ctl.StockAlerts)
	group.GET("/opportunities", ctl.Opportunities)

	// Diagnostics
	group.GET("/metrics", ctl.PerformanceMetrics)
	group.GET("/cache-stats", ctl.CacheStats)
	group.GET("/model-stats", ctl.ModelStatistics)
	group.POST("/model/reset", ctl.ResetModel)
	group.POST("/model/retrain", ctl.RetrainModel)
}
