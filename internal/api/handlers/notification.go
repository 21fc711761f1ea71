package handlers

import (
	"net/http"
	"strconv"

	"saas-dashboard-backend/internal/auth"
	"saas-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NotificationHandler handles HTTP requests for notifications
type NotificationHandler struct {
	service service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(service service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// ListNotifications handles GET /api/v1/notifications
// @Summary List my notifications
// @Description List the caller's notifications, newest first, with optional read-state and type filters
// @Tags notifications
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param is_read query bool false "Filter by read state"
// @Param type query string false "Filter by notification type"
// @Success 200 {object} service.NotificationListResponse "Successfully retrieved notifications"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	req := &service.ListNotificationsRequest{
		Page:     parseIntQuery(c, "page", 1),
		PageSize: parseIntQuery(c, "page_size", 20),
		Type:     c.Query("type"),
	}
	if raw := c.Query("is_read"); raw != "" {
		isRead, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid is_read value"})
			return
		}
		req.IsRead = &isRead
	}

	notifications, err := h.service.List(userID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// UnreadCount handles GET /api/v1/notifications/unread-count
// @Summary Count unread notifications
// @Description Get the number of unread notifications for the caller
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]int64 "Unread notification count"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	count, err := h.service.UnreadCount(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

// MarkNotificationRead handles PUT /api/v1/notifications/:id/read
// @Summary Mark a notification as read
// @Description Mark one of the caller's notifications as read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 200 {object} service.NotificationResponse "Successfully marked read"
// @Failure 400 {object} ErrorResponse "Invalid notification ID"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID: invalid UUID format"})
		return
	}

	notification, err := h.service.MarkRead(userID, notificationID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, notification)
}

// MarkAllNotificationsRead handles PUT /api/v1/notifications/read-all
// @Summary Mark all notifications as read
// @Description Mark all of the caller's unread notifications as read
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]int64 "Number of notifications marked read"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications/read-all [put]
func (h *NotificationHandler) MarkAllNotificationsRead(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	affected, err := h.service.MarkAllRead(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"marked_read": affected})
}

// parseIntQuery reads an integer query parameter, falling back to a default
func parseIntQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
