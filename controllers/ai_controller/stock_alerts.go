package ai_controller

import (
	"log"
	"net/http"

	"github.com/camilomiori/POSAI-frontend-sub000/models"
	"github.com/gin-gonic/gin"
)

// StockAlerts godoc
// @Summary List stock-depletion alerts
// @Description Returns alerts sorted urgent > critical > warning; local velocity math is used when the upstream feed has nothing
// @Tags AI - Inventory
// @Produce json
// @Param source query string false "Set to 'local' to force the local computation"
// @Success 200 {object} models.ApiResponse{data=[]models.StockAlert}
// @Failure 500 {object} models.ApiResponse
// @Router /ai/stock-alerts [get]
func (ctl *Controller) StockAlerts(c *gin.Context) {
	inventory := ctl.Engine.Inventory()

	var (
		alerts []models.StockAlert
		err    error
	)
	if c.Query("source") == "local" {
		alerts, err = inventory.LocalAlerts(c.Request.Context())
	} else {
		alerts, err = inventory.AdvancedAlerts(c.Request.Context())
	}
	if err != nil {
		log.Printf("[ai.stock-alerts] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to compute stock alerts"))
		return
	}

	log.Printf("[ai.stock-alerts] respond 200 count=%d", len(alerts))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stock alerts computed", alerts))
}

// Opportunities godoc
// @Summary List sales opportunities
// @Description Returns products whose demand profile supports a promotion or price review, best score first
// @Tags AI - Inventory
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.Opportunity}
// @Failure 500 {object} models.ApiResponse
// @Router /ai/opportunities [get]
func (ctl *Controller) Opportunities(c *gin.Context) {
	opportunities, err := ctl.Engine.Inventory().Opportunities(c.Request.Context())
	if err != nil {
		log.Printf("[ai.opportunities] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to compute opportunities"))
		return
	}

	log.Printf("[ai.opportunities] respond 200 count=%d", len(opportunities))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Opportunities computed", opportunities))
}
