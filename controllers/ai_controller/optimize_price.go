package ai_controller

import (
	"log"
	"net/http"

	"github.com/camilomiori/POSAI-frontend-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type optimizeRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

// OptimizePrice godoc
// @Summary Recommend a new price
// @Description Returns a price recommendation for one product based on demand trend, stock pressure and market context
// @Tags AI - Pricing
// @Accept json
// @Produce json
// @Param request body optimizeRequest true "Product to optimize"
// @Success 200 {object} models.ApiResponse{data=models.PriceOptimization}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /ai/optimize-price [post]
func (ctl *Controller) OptimizePrice(c *gin.Context) {
	var req optimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	optimization, err := ctl.Engine.Pricing().Optimize(c.Request.Context(), req.ProductID)
	if err != nil {
		log.Printf("[ai.optimize-price] ERROR product=%s err=%v", req.ProductID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to optimize price"))
		return
	}
	if optimization == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	log.Printf("[ai.optimize-price] respond 200 product=%s change=%.1f%%",
		req.ProductID, optimization.ChangePercent)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Price optimization computed", optimization))
}

// PricingSuggestions godoc
// @Summary List dynamic price suggestions
// @Description Returns the refreshed suggestion list across the catalog, or for one product when product_id is given
// @Tags AI - Pricing
// @Produce json
// @Param product_id query string false "Limit to one product"
// @Success 200 {object} models.ApiResponse{data=[]models.PriceSuggestion}
// @Failure 400 {object} models.ApiResponse
// @Router /ai/pricing-suggestions [get]
func (ctl *Controller) PricingSuggestions(c *gin.Context) {
	var productID *uuid.UUID
	if raw := c.Query("product_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
			return
		}
		productID = &id
	}

	suggestions, err := ctl.Engine.Pricing().DynamicSuggestions(c.Request.Context(), productID)
	if err != nil {
		log.Printf("[ai.pricing-suggestions] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to compute suggestions"))
		return
	}

	log.Printf("[ai.pricing-suggestions] respond 200 count=%d", len(suggestions))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Pricing suggestions computed", suggestions))
}
