package ai_controller

import (
	"log"
	"net/http"

	"github.com/camilomiori/POSAI-frontend-sub000/models"
	"github.com/gin-gonic/gin"
)

// PerformanceMetrics godoc
// @Summary Get request core counters
// @Tags AI - Diagnostics
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.PerformanceSnapshot}
// @Router /ai/metrics [get]
func (ctl *Controller) PerformanceMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Performance metrics", ctl.Engine.PerformanceMetrics()))
}

// CacheStats godoc
// @Summary Get response cache statistics
// @Tags AI - Diagnostics
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CacheStats}
// @Router /ai/cache-stats [get]
func (ctl *Controller) CacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cache statistics", ctl.Engine.CacheStats()))
}

// ModelStatistics godoc
// @Summary Get engine diagnostics
// @Tags AI - Diagnostics
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.ModelStatistics}
// @Router /ai/model-stats [get]
func (ctl *Controller) ModelStatistics(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Model statistics", ctl.Engine.ModelStatistics()))
}

// ResetModel godoc
// @Summary Reset engine counters
// @Tags AI - Diagnostics
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /ai/model/reset [post]
func (ctl *Controller) ResetModel(c *gin.Context) {
	ctl.Engine.ResetModel()
	log.Printf("[ai.diagnostics] model reset requested")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Model counters reset", nil))
}

// RetrainModel godoc
// @Summary Retrain the model (counters reset, cache cleared)
// @Tags AI - Diagnostics
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /ai/model/retrain [post]
func (ctl *Controller) RetrainModel(c *gin.Context) {
	ctl.Engine.RetrainModel()
	log.Printf("[ai.diagnostics] model retrain requested")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Model retrained", nil))
}
