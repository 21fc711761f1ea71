package service

import (
	"errors"
	"fmt"
	"strings"

	"saas-dashboard-backend/internal/database/models"
	apperrors "saas-dashboard-backend/internal/errors"
	"saas-dashboard-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthzService resolves a (user, organization) pair to a membership and
// enforces role-based permission checks. Centralizing the check keeps every
// mutation endpoint behind the same predicate.
type AuthzService struct {
	memberships repository.MembershipRepositoryInterface
}

// NewAuthzService creates a new authorization guard
func NewAuthzService(memberships repository.MembershipRepositoryInterface) *AuthzService {
	return &AuthzService{memberships: memberships}
}

// ResolveMembership returns the caller's membership in the organization, or
// ErrNotAMember when no membership row exists. The row is read fresh on every
// call; there is no cross-request caching.
func (s *AuthzService) ResolveMembership(orgID, userID uuid.UUID) (*models.Membership, error) {
	membership, err := s.memberships.GetByOrgAndUser(orgID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotAMember
		}
		return nil, fmt.Errorf("failed to resolve membership: %w", err)
	}
	return membership, nil
}

// RequireRole resolves the membership and verifies its role is one of the
// allowed roles. An empty allowed set means membership alone suffices.
func (s *AuthzService) RequireRole(orgID, userID uuid.UUID, allowed ...models.MembershipRole) (*models.Membership, error) {
	membership, err := s.ResolveMembership(orgID, userID)
	if err != nil {
		return nil, err
	}

	if len(allowed) == 0 {
		return membership, nil
	}
	for _, role := range allowed {
		if membership.Role == role {
			return membership, nil
		}
	}

	names := make([]string, len(allowed))
	for i, role := range allowed {
		names[i] = string(role)
	}
	return nil, apperrors.NewInsufficientRoleError(strings.Join(names, ", "), string(membership.Role))
}
