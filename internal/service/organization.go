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

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repo      repository.OrganizationRepositoryInterface
	authz     AuthzServiceInterface
	activity  ActivityRecorderInterface
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, authz AuthzServiceInterface, activity ActivityRecorderInterface, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repo:      repo,
		authz:     authz,
		activity:  activity,
		validator: validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt string    `json:"created_at"`
}

// Create creates a new organization. The creator becomes its first owner; the
// organization insert and the owner membership insert happen in one
// transaction so no reader observes an ownerless organization.
func (s *OrganizationService) Create(userID uuid.UUID, req *CreateOrganizationRequest, meta RequestMeta) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org := &models.Organization{Name: req.Name}
	if err := s.repo.CreateWithOwner(org, userID); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	s.activity.Record(ActionOrgCreate, &userID, ResourceOrganization, &org.ID, &org.ID,
		map[string]interface{}{"name": org.Name}, meta)

	return s.toResponse(org), nil
}

// ListMine retrieves all organizations the user belongs to
func (s *OrganizationService) ListMine(userID uuid.UUID) ([]OrganizationResponse, error) {
	orgs, err := s.repo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	responses := make([]OrganizationResponse, len(orgs))
	for i := range orgs {
		responses[i] = *s.toResponse(&orgs[i])
	}
	return responses, nil
}

// Delete removes an organization together with its memberships and
// invitations in one transaction. Only an owner may delete.
func (s *OrganizationService) Delete(orgID, actingUserID uuid.UUID, meta RequestMeta) error {
	membership, err := s.authz.ResolveMembership(orgID, actingUserID)
	if err != nil {
		return err
	}
	if membership.Role != models.MembershipRoleOwner {
		return apperrors.ErrOwnerDeleteOnly
	}

	org, err := s.repo.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to get organization: %w", err)
	}

	if err := s.repo.DeleteCascade(orgID); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	s.activity.Record(ActionOrgDelete, &actingUserID, ResourceOrganization, &orgID, &orgID,
		map[string]interface{}{"name": org.Name}, meta)

	return nil
}

func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:        org.ID,
		Name:      org.Name,
		CreatedAt: org.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
