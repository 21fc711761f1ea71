package testutils

import (
	"fmt"
	"time"

	"saas-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The email embeds part of
// the UUID so repeated calls never collide on the unique index.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:        fmt.Sprintf("user-%s@test.com", id.String()[:8]),
		Name:         "Test User",
		PasswordHash: "not-a-real-hash",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithName sets a custom name for the user
func (f *UserFactory) WithName(name string) *models.User {
	user := f.Create()
	user.Name = name
	return user
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Test Organization",
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// MembershipFactory provides methods to create test Membership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a test Membership with default values
func (f *MembershipFactory) Create(orgID, userID uuid.UUID) *models.Membership {
	return &models.Membership{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		UserID:         userID,
		Role:           models.MembershipRoleMember,
	}
}

// WithRole sets a custom role for the membership
func (f *MembershipFactory) WithRole(orgID, userID uuid.UUID, role models.MembershipRole) *models.Membership {
	membership := f.Create(orgID, userID)
	membership.Role = role
	return membership
}

// InvitationFactory provides methods to create test Invitation data
type InvitationFactory struct{}

// NewInvitationFactory creates a new InvitationFactory
func NewInvitationFactory() *InvitationFactory {
	return &InvitationFactory{}
}

// Create creates a pending test Invitation expiring in seven days
func (f *InvitationFactory) Create(orgID uuid.UUID, email string) *models.Invitation {
	expiresAt := time.Now().Add(7 * 24 * time.Hour)
	return &models.Invitation{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		Email:          email,
		Role:           models.MembershipRoleMember,
		Token:          uuid.NewString(),
		Status:         models.InvitationStatusPending,
		ExpiresAt:      &expiresAt,
	}
}

// WithRole sets the proposed role for the invitation
func (f *InvitationFactory) WithRole(orgID uuid.UUID, email string, role models.MembershipRole) *models.Invitation {
	invitation := f.Create(orgID, email)
	invitation.Role = role
	return invitation
}

// Expired creates an invitation whose expiry is already in the past but whose
// status is still pending, the shape lazy expiry acts on
func (f *InvitationFactory) Expired(orgID uuid.UUID, email string) *models.Invitation {
	invitation := f.Create(orgID, email)
	expiresAt := time.Now().Add(-time.Hour)
	invitation.ExpiresAt = &expiresAt
	return invitation
}

// NotificationFactory provides methods to create test Notification data
type NotificationFactory struct{}

// NewNotificationFactory creates a new NotificationFactory
func NewNotificationFactory() *NotificationFactory {
	return &NotificationFactory{}
}

// Create creates an unread test Notification
func (f *NotificationFactory) Create(userID uuid.UUID) *models.Notification {
	return &models.Notification{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:  userID,
		Type:    models.NotificationTypeSystem,
		Title:   "Test Notification",
		Message: "A test notification",
	}
}

// ActivityLogFactory provides methods to create test ActivityLog data
type ActivityLogFactory struct{}

// NewActivityLogFactory creates a new ActivityLogFactory
func NewActivityLogFactory() *ActivityLogFactory {
	return &ActivityLogFactory{}
}

// Create creates a test ActivityLog entry
func (f *ActivityLogFactory) Create(userID uuid.UUID) *models.ActivityLog {
	return &models.ActivityLog{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:       &userID,
		Action:       "organization.create",
		ResourceType: "organization",
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Organization *OrganizationFactory
	Membership   *MembershipFactory
	Invitation   *InvitationFactory
	Notification *NotificationFactory
	ActivityLog  *ActivityLogFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Organization: NewOrganizationFactory(),
		Membership:   NewMembershipFactory(),
		Invitation:   NewInvitationFactory(),
		Notification: NewNotificationFactory(),
		ActivityLog:  NewActivityLogFactory(),
	}
}
