package handlers

import (
	"net/http"

	"saas-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler handles HTTP requests for dashboard analytics
type AnalyticsHandler struct {
	service service.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service service.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// DashboardStats handles GET /api/v1/analytics/dashboard
// @Summary Dashboard statistics
// @Description Get platform-wide user, activity and organization statistics with a 30-day activity timeline
// @Tags analytics
// @Produce json
// @Success 200 {object} service.DashboardStatsResponse "Successfully retrieved statistics"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) DashboardStats(c *gin.Context) {
	stats, err := h.service.DashboardStats()
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
