package service

import (
	"errors"
	"fmt"

	"saas-dashboard-backend/internal/database/models"
	apperrors "saas-dashboard-backend/internal/errors"
	"saas-dashboard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipService handles the membership lifecycle: listing, role updates
// and removal. The first owner membership is created by the organization
// repository at organization-creation time, before any role check can apply.
type MembershipService struct {
	repo      repository.MembershipRepositoryInterface
	authz     AuthzServiceInterface
	activity  ActivityRecorderInterface
	validator *validator.Validate
}

// NewMembershipService creates a new membership service
func NewMembershipService(repo repository.MembershipRepositoryInterface, authz AuthzServiceInterface, activity ActivityRecorderInterface, validator *validator.Validate) *MembershipService {
	return &MembershipService{
		repo:      repo,
		authz:     authz,
		activity:  activity,
		validator: validator,
	}
}

// UpdateMemberRoleRequest represents a role change request
type UpdateMemberRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// MemberResponse represents a membership joined with its user projection
type MemberResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Role           string    `json:"role"`
	CreatedAt      string    `json:"created_at"`
	UserEmail      string    `json:"user_email"`
	UserName       string    `json:"user_name"`
}

// ListMembers returns all members of an organization. Any member may call;
// there is no role restriction beyond membership itself.
func (s *MembershipService) ListMembers(orgID, actingUserID uuid.UUID) ([]MemberResponse, error) {
	if _, err := s.authz.ResolveMembership(orgID, actingUserID); err != nil {
		return nil, err
	}

	memberships, err := s.repo.ListByOrganization(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	responses := make([]MemberResponse, len(memberships))
	for i := range memberships {
		responses[i] = *toMemberResponse(&memberships[i], &memberships[i].User)
	}
	return responses, nil
}

// UpdateRole changes a member's role. Owner or admin may call; assigning the
// owner role needs an owner; a sole owner cannot demote themselves.
func (s *MembershipService) UpdateRole(orgID, targetUserID, actingUserID uuid.UUID, req *UpdateMemberRoleRequest, meta RequestMeta) (*MemberResponse, error) {
	acting, err := s.authz.RequireRole(orgID, actingUserID,
		models.MembershipRoleOwner, models.MembershipRoleAdmin)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	newRole := models.MembershipRole(req.Role)
	if !newRole.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	target, err := s.repo.GetByOrgAndUser(orgID, targetUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	if newRole == models.MembershipRoleOwner && acting.Role != models.MembershipRoleOwner {
		return nil, apperrors.ErrOwnerRoleAssignOnly
	}

	// Sole-owner invariant: self demotion is allowed only when another owner
	// remains. Check-then-act without a lock; see HasOtherOwner.
	if target.UserID == actingUserID && target.Role == models.MembershipRoleOwner && newRole != models.MembershipRoleOwner {
		hasOther, err := s.repo.HasOtherOwner(orgID, actingUserID)
		if err != nil {
			return nil, fmt.Errorf("failed to check for other owners: %w", err)
		}
		if !hasOther {
			return nil, apperrors.ErrSoleOwner
		}
	}

	previousRole := target.Role
	target.Role = newRole
	if err := s.repo.Update(target); err != nil {
		return nil, fmt.Errorf("failed to update member role: %w", err)
	}

	s.activity.Record(ActionMembershipUpdate, &actingUserID, ResourceMembership, &target.ID, &orgID,
		map[string]interface{}{"user_id": targetUserID.String(), "from": string(previousRole), "to": string(newRole)}, meta)

	refreshed, err := s.repo.GetWithUser(orgID, targetUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload member: %w", err)
	}
	return toMemberResponse(refreshed, &refreshed.User), nil
}

// Remove deletes a membership. Owner or admin may call; removing an owner
// needs an owner; a sole owner cannot remove themselves. Hard delete, the
// audit trail is the activity log.
func (s *MembershipService) Remove(orgID, targetUserID, actingUserID uuid.UUID, meta RequestMeta) error {
	acting, err := s.authz.RequireRole(orgID, actingUserID,
		models.MembershipRoleOwner, models.MembershipRoleAdmin)
	if err != nil {
		return err
	}

	target, err := s.repo.GetByOrgAndUser(orgID, targetUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMembershipNotFound
		}
		return fmt.Errorf("failed to get member: %w", err)
	}

	if target.Role == models.MembershipRoleOwner && acting.Role != models.MembershipRoleOwner {
		return apperrors.ErrOwnerRemoveOnly
	}

	if target.UserID == actingUserID && target.Role == models.MembershipRoleOwner {
		hasOther, err := s.repo.HasOtherOwner(orgID, actingUserID)
		if err != nil {
			return fmt.Errorf("failed to check for other owners: %w", err)
		}
		if !hasOther {
			return apperrors.ErrSoleOwner
		}
	}

	if err := s.repo.Delete(target.ID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	s.activity.Record(ActionMembershipDelete, &actingUserID, ResourceMembership, &target.ID, &orgID,
		map[string]interface{}{"user_id": targetUserID.String(), "role": string(target.Role)}, meta)

	return nil
}

func toMemberResponse(membership *models.Membership, user *models.User) *MemberResponse {
	return &MemberResponse{
		ID:             membership.ID,
		UserID:         membership.UserID,
		OrganizationID: membership.OrganizationID,
		Role:           string(membership.Role),
		CreatedAt:      membership.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UserEmail:      user.Email,
		UserName:       user.Name,
	}
}
