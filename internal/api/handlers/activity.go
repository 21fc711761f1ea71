package handlers

import (
	"net/http"

	"saas-dashboard-backend/internal/auth"
	"saas-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ActivityHandler handles HTTP requests for activity logs
type ActivityHandler struct {
	service service.ActivityServiceInterface
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(service service.ActivityServiceInterface) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// ListActivity handles GET /api/v1/activity
// @Summary List activity logs
// @Description List activity visible to the caller: their own actions plus actions in organizations they belong to
// @Tags activity
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param action query string false "Filter by action name"
// @Param resource_type query string false "Filter by resource type"
// @Param organization_id query string false "Filter by organization (requires membership)"
// @Param user_id query string false "Filter by acting user"
// @Success 200 {object} service.ActivityListResponse "Successfully retrieved activity"
// @Failure 400 {object} ErrorResponse "Invalid filter value"
// @Failure 403 {object} ErrorResponse "Not a member of the requested organization"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /activity [get]
func (h *ActivityHandler) ListActivity(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	req := &service.ListActivityRequest{
		Page:         parseIntQuery(c, "page", 1),
		PageSize:     parseIntQuery(c, "page_size", 20),
		Action:       c.Query("action"),
		ResourceType: c.Query("resource_type"),
	}
	if raw := c.Query("organization_id"); raw != "" {
		orgID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization_id: invalid UUID format"})
			return
		}
		req.OrganizationID = &orgID
	}
	if raw := c.Query("user_id"); raw != "" {
		filterUserID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id: invalid UUID format"})
			return
		}
		req.UserID = &filterUserID
	}

	logs, err := h.service.List(userID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}
