package handlers

import (
	"net/http"

	"saas-dashboard-backend/internal/auth"
	"saas-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvitationHandler handles HTTP requests for invitations
type InvitationHandler struct {
	service service.InvitationServiceInterface
}

// NewInvitationHandler creates a new invitation handler
func NewInvitationHandler(service service.InvitationServiceInterface) *InvitationHandler {
	return &InvitationHandler{service: service}
}

// CreateInvitation handles POST /api/v1/organizations/:id/invitations
// @Summary Invite an email address to an organization
// @Description Create a pending invitation for the given email and role. Requires the owner or admin role; only an owner may invite as owner.
// @Tags invitations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param invitation body service.CreateInvitationRequest true "Invitation data"
// @Success 201 {object} service.InvitationResponse "Successfully created invitation"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 409 {object} ErrorResponse "Already a member or invitation pending"
// @Failure 422 {object} ErrorResponse "Invalid role"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/invitations [post]
func (h *InvitationHandler) CreateInvitation(c *gin.Context) {
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

	var req service.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	invitation, err := h.service.Create(orgID, userID, &req, requestMeta(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invitation)
}

// AcceptInvitation handles POST /api/v1/invitations/accept
// @Summary Accept an invitation
// @Description Redeem an invitation token. The invitation must be pending, unexpired and addressed to the caller's email.
// @Tags invitations
// @Accept json
// @Produce json
// @Param invitation body service.AcceptInvitationRequest true "Invitation token"
// @Success 201 {object} service.MemberResponse "Membership created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Invitation addressed to a different email"
// @Failure 404 {object} ErrorResponse "Invitation not found"
// @Failure 409 {object} ErrorResponse "Invitation already resolved or already a member"
// @Failure 410 {object} ErrorResponse "Invitation expired"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /invitations/accept [post]
func (h *InvitationHandler) AcceptInvitation(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	email, ok := auth.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.AcceptInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	member, err := h.service.Accept(userID, email, &req, requestMeta(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// ListMyInvitations handles GET /api/v1/invitations
// @Summary List my pending invitations
// @Description List pending, unexpired invitations addressed to the caller's email
// @Tags invitations
// @Produce json
// @Success 200 {array} service.InvitationResponse "Successfully retrieved invitations"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /invitations [get]
func (h *InvitationHandler) ListMyInvitations(c *gin.Context) {
	email, ok := auth.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	invitations, err := h.service.ListPendingForEmail(email)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, invitations)
}
