package ai_controller

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/camilomiori/POSAI-frontend-sub000/ai"
	"github.com/camilomiori/POSAI-frontend-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type predictRequest struct {
	ProductID   uuid.UUID `json:"product_id" binding:"required"`
	HorizonDays int       `json:"horizon_days"`
}

// Predict godoc
// @Summary Forecast product demand
// @Description Returns the unit-sales forecast for one product over the requested horizon
// @Tags AI - Demand
// @Accept json
// @Produce json
// @Param request body predictRequest true "Product and horizon"
// @Success 200 {object} models.ApiResponse{data=models.DemandPrediction}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /ai/predict [post]
func (ctl *Controller) Predict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}
	if req.HorizonDays <= 0 {
		req.HorizonDays = ai.DefaultHorizonDays
	}

	prediction, err := ctl.Engine.Demand().Predict(c.Request.Context(), req.ProductID, req.HorizonDays)
	if err != nil {
		log.Printf("[ai.predict] ERROR product=%s err=%v", req.ProductID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to compute prediction"))
		return
	}
	if prediction == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	log.Printf("[ai.predict] respond 200 product=%s horizon=%d sales=%d",
		req.ProductID, req.HorizonDays, prediction.PredictedSales)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Demand prediction computed", prediction))
}

// PredictBatch godoc
// @Summary Forecast demand for several products
// @Description Runs independent predictions concurrently; one failure does not affect the rest
// @Tags AI - Demand
// @Produce json
// @Param ids query string true "Comma-separated product ids"
// @Param horizon query int false "Horizon in days" default(7)
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /ai/predict/batch [get]
func (ctl *Controller) PredictBatch(c *gin.Context) {
	ids, ok := parseUUIDList(c.Query("ids"))
	if !ok || len(ids) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid or missing product ids"))
		return
	}
	horizon, _ := strconv.Atoi(c.DefaultQuery("horizon", "7"))

	results := ctl.Engine.PredictBatch(c.Request.Context(), ids, horizon)

	type batchItem struct {
		ProductID  uuid.UUID                `json:"product_id"`
		Prediction *models.DemandPrediction `json:"prediction,omitempty"`
		Error      string                   `json:"error,omitempty"`
	}
	items := make([]batchItem, 0, len(results))
	for _, r := range results {
		item := batchItem{ProductID: r.ProductID, Prediction: r.Prediction}
		if r.Err != nil {
			item.Error = r.Err.Error()
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Batch predictions computed", items))
}

func parseUUIDList(raw string) ([]uuid.UUID, bool) {
	if raw == "" {
		return nil, false
	}
	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
