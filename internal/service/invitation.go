package service

import (
	"errors"
	"fmt"
	"time"

	"saas-dashboard-backend/internal/database/models"
	apperrors "saas-dashboard-backend/internal/errors"
	"saas-dashboard-backend/internal/logger"
	"saas-dashboard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// invitationTTL is how long a fresh invitation stays acceptable
const invitationTTL = 7 * 24 * time.Hour

// InvitationService implements the invitation lifecycle:
// pending -> accepted and pending -> expired, both terminal. Expiry is lazy,
// persisted when an expired invitation is touched at accept time.
type InvitationService struct {
	repo        repository.InvitationRepositoryInterface
	memberships repository.MembershipRepositoryInterface
	users       repository.UserRepositoryInterface
	orgs        repository.OrganizationRepositoryInterface
	authz       AuthzServiceInterface
	email       EmailSenderInterface
	notifier    InvitationNotifierInterface
	activity    ActivityRecorderInterface
	validator   *validator.Validate
	now         func() time.Time
}

// NewInvitationService creates a new invitation service
func NewInvitationService(
	repo repository.InvitationRepositoryInterface,
	memberships repository.MembershipRepositoryInterface,
	users repository.UserRepositoryInterface,
	orgs repository.OrganizationRepositoryInterface,
	authz AuthzServiceInterface,
	email EmailSenderInterface,
	notifier InvitationNotifierInterface,
	activity ActivityRecorderInterface,
	validator *validator.Validate,
) *InvitationService {
	return &InvitationService{
		repo:        repo,
		memberships: memberships,
		users:       users,
		orgs:        orgs,
		authz:       authz,
		email:       email,
		notifier:    notifier,
		activity:    activity,
		validator:   validator,
		now:         time.Now,
	}
}

// CreateInvitationRequest represents the request to invite an email address
type CreateInvitationRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
	Role  string `json:"role" validate:"required"`
}

// AcceptInvitationRequest carries the opaque token being redeemed
type AcceptInvitationRequest struct {
	Token string `json:"token" validate:"required"`
}

// InvitationResponse represents the response for invitation operations
type InvitationResponse struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	Email          string     `json:"email"`
	Role           string     `json:"role"`
	Token          string     `json:"token"`
	Status         string     `json:"status"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	CreatedAt      string     `json:"created_at"`
}

// Create creates a pending invitation and dispatches the email and in-app
// notification side effects. The side effects run after the invitation is
// persisted and their failure is logged, never surfaced: the invitation can
// still be accepted from the UI.
func (s *InvitationService) Create(orgID, inviterUserID uuid.UUID, req *CreateInvitationRequest, meta RequestMeta) (*InvitationResponse, error) {
	membership, err := s.authz.RequireRole(orgID, inviterUserID,
		models.MembershipRoleOwner, models.MembershipRoleAdmin)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := models.MembershipRole(req.Role)
	if !role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	// Only an owner may mint another owner
	if role == models.MembershipRoleOwner && membership.Role != models.MembershipRoleOwner {
		return nil, apperrors.ErrOwnerRoleInviteOnly
	}

	org, err := s.orgs.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	// Reject when the email already belongs to a member of this organization
	var targetUser *models.User
	user, err := s.users.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}
	if err == nil {
		targetUser = user
		_, err := s.memberships.GetByOrgAndUser(orgID, user.ID)
		if err == nil {
			return nil, apperrors.ErrAlreadyMember
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing membership: %w", err)
		}
	}

	// Reject when a pending, non-expired invitation already exists for the
	// pair. Query-before-insert: a concurrent create can race past this.
	now := s.now()
	existing, err := s.repo.GetPendingByOrgAndEmail(orgID, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing invitation: %w", err)
	}
	if existing != nil && !existing.IsExpired(now) {
		return nil, apperrors.ErrInvitationExists
	}

	expiresAt := now.Add(invitationTTL)
	invitation := &models.Invitation{
		OrganizationID: orgID,
		Email:          req.Email,
		Role:           role,
		Token:          uuid.NewString(),
		Status:         models.InvitationStatusPending,
		ExpiresAt:      &expiresAt,
	}
	if err := s.repo.Create(invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	s.activity.Record(ActionInvitationCreate, &inviterUserID, ResourceInvitation, &invitation.ID, &orgID,
		map[string]interface{}{"email": req.Email, "role": req.Role}, meta)

	inviterName := s.inviterName(inviterUserID)
	s.dispatchInvitationEmail(invitation, org.Name, inviterName)
	if targetUser != nil {
		s.notifier.NotifyInvitation(targetUser.ID, org.Name, inviterName, role, invitation.ID)
	}

	return toInvitationResponse(invitation), nil
}

// Accept redeems an invitation token for the authenticated user. On success
// the membership insert and the pending -> accepted transition commit in one
// transaction.
func (s *InvitationService) Accept(userID uuid.UUID, userEmail string, req *AcceptInvitationRequest, meta RequestMeta) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	invitation, err := s.repo.GetByToken(req.Token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	// Terminal states are immutable; report which one the invitation is in
	if invitation.Status != models.InvitationStatusPending {
		return nil, apperrors.NewInvalidStateError("invitation", string(invitation.Status))
	}

	// Invitations are email-bound, not user-bound
	if invitation.Email != userEmail {
		return nil, apperrors.ErrInvitationEmailMismatch
	}

	now := s.now()
	if invitation.IsExpired(now) {
		// Lazy expiry: persist the pending -> expired transition now
		invitation.Status = models.InvitationStatusExpired
		if err := s.repo.Update(invitation); err != nil {
			return nil, fmt.Errorf("failed to expire invitation: %w", err)
		}
		s.activity.Record(ActionInvitationExpire, &userID, ResourceInvitation, &invitation.ID, &invitation.OrganizationID, nil, meta)
		return nil, apperrors.ErrInvitationExpired
	}

	// Already a member: close out the invitation anyway so it stops showing
	// up as pending, then report the conflict
	_, err = s.memberships.GetByOrgAndUser(invitation.OrganizationID, userID)
	if err == nil {
		invitation.Status = models.InvitationStatusAccepted
		if err := s.repo.Update(invitation); err != nil {
			return nil, fmt.Errorf("failed to update invitation: %w", err)
		}
		return nil, apperrors.ErrAlreadyMember
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing membership: %w", err)
	}

	// Resolve the user before writing anything so a lookup failure cannot
	// surface as an error for an accept that already committed
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	membership := &models.Membership{
		OrganizationID: invitation.OrganizationID,
		UserID:         userID,
		Role:           invitation.Role,
	}
	if err := s.repo.Accept(invitation, membership); err != nil {
		return nil, fmt.Errorf("failed to accept invitation: %w", err)
	}

	s.activity.Record(ActionInvitationAccept, &userID, ResourceMembership, &membership.ID, &invitation.OrganizationID,
		map[string]interface{}{"role": string(invitation.Role), "invitation_email": invitation.Email}, meta)
	s.activity.Record(ActionMembershipCreate, &userID, ResourceMembership, &membership.ID, &invitation.OrganizationID,
		map[string]interface{}{"role": string(invitation.Role)}, meta)

	return toMemberResponse(membership, user), nil
}

// ListPendingForEmail returns pending invitations whose expiry is unset or in
// the future. Point-in-time only: a listed invitation can still fail with an
// expiry error by the time it is accepted.
func (s *InvitationService) ListPendingForEmail(email string) ([]InvitationResponse, error) {
	invitations, err := s.repo.ListPendingByEmail(email, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}

	responses := make([]InvitationResponse, len(invitations))
	for i := range invitations {
		responses[i] = *toInvitationResponse(&invitations[i])
	}
	return responses, nil
}

func (s *InvitationService) inviterName(inviterUserID uuid.UUID) string {
	log := logger.New().WithField("inviter_id", inviterUserID)

	inviter, err := s.users.GetByID(inviterUserID)
	if err != nil {
		log.Warnf("failed to resolve inviter: %v", err)
		return "A teammate"
	}
	return inviter.Name
}

func (s *InvitationService) dispatchInvitationEmail(invitation *models.Invitation, orgName, inviterName string) {
	log := logger.New().WithFields(map[string]interface{}{
		"invitation_id": invitation.ID,
		"email":         invitation.Email,
	})

	go func() {
		if err := s.email.SendInvitationEmail(invitation.Email, orgName, inviterName, invitation.Role, invitation.Token); err != nil {
			log.Warnf("failed to send invitation email: %v", err)
		}
	}()
}

func toInvitationResponse(invitation *models.Invitation) *InvitationResponse {
	return &InvitationResponse{
		ID:             invitation.ID,
		OrganizationID: invitation.OrganizationID,
		Email:          invitation.Email,
		Role:           string(invitation.Role),
		Token:          invitation.Token,
		Status:         string(invitation.Status),
		ExpiresAt:      invitation.ExpiresAt,
		CreatedAt:      invitation.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
