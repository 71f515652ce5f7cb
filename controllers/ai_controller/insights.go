package ai_controller

import (
	"log"
	"net/http"

	"github.com/camilomiori/POSAI-frontend-sub000/models"
	"github.com/gin-gonic/gin"
)

// HourlyInsights godoc
// @Summary Get the intraday demand curve
// @Description Returns the 08:00-19:00 predicted series; hours already past also carry the observed value
// @Tags AI - Demand
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.HourlyDemand}
// @Failure 500 {object} models.ApiResponse
// @Router /ai/insights [get]
func (ctl *Controller) HourlyInsights(c *gin.Context) {
	series, err := ctl.Engine.Demand().HourlyDemand(c.Request.Context())
	if err != nil {
		log.Printf("[ai.insights] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to compute hourly demand"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Hourly demand computed", series))
}
