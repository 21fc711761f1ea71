package handlers

import (
	"net/http"

	"saas-dashboard-backend/internal/auth"
	"saas-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MemberHandler handles HTTP requests for organization members
type MemberHandler struct {
	service service.MembershipServiceInterface
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(service service.MembershipServiceInterface) *MemberHandler {
	return &MemberHandler{service: service}
}

// ListMembers handles GET /api/v1/organizations/:id/members
// @Summary List organization members
// @Description List all members of an organization. Requires membership.
// @Tags members
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {array} service.MemberResponse "Successfully retrieved members"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 403 {object} ErrorResponse "Not a member of this organization"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	members, err := h.service.ListMembers(orgID, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// UpdateMemberRole handles PUT /api/v1/organizations/:id/members/:userId
// @Summary Update a member's role
// @Description Change a member's role. Requires owner or admin; only an owner may assign the owner role. The sole owner cannot demote themselves.
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param userId path string true "Target user ID (UUID)"
// @Param role body service.UpdateMemberRoleRequest true "New role"
// @Success 200 {object} service.MemberResponse "Successfully updated member"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 409 {object} ErrorResponse "Sole owner cannot be demoted"
// @Failure 422 {object} ErrorResponse "Invalid role"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/members/{userId} [put]
func (h *MemberHandler) UpdateMemberRole(c *gin.Context) {
	actingUserID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}
	targetUserID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID: invalid UUID format"})
		return
	}

	var req service.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	member, err := h.service.UpdateRole(orgID, targetUserID, actingUserID, &req, requestMeta(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// RemoveMember handles DELETE /api/v1/organizations/:id/members/:userId
// @Summary Remove a member
// @Description Remove a member from an organization. Requires owner or admin; only an owner may remove owners. The sole owner cannot remove themselves.
// @Tags members
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param userId path string true "Target user ID (UUID)"
// @Success 200 {object} map[string]string "Successfully removed member"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 409 {object} ErrorResponse "Sole owner cannot leave"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/members/{userId} [delete]
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	actingUserID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}
	targetUserID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID: invalid UUID format"})
		return
	}

	if err := h.service.Remove(orgID, targetUserID, actingUserID, requestMeta(c)); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member removed successfully"})
}
