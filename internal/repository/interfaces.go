package repository

import (
	"time"

	"saas-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	CreateWithOwner(org *models.Organization, ownerUserID uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	ListByUserID(userID uuid.UUID) ([]models.Organization, error)
	DeleteCascade(id uuid.UUID) error
	Count() (int64, error)
	CountCreatedSince(since time.Time) (int64, error)
}

// MembershipRepositoryInterface defines the interface for membership repository operations
type MembershipRepositoryInterface interface {
	Create(membership *models.Membership) error
	GetByOrgAndUser(orgID, userID uuid.UUID) (*models.Membership, error)
	GetWithUser(orgID, userID uuid.UUID) (*models.Membership, error)
	ListByOrganization(orgID uuid.UUID) ([]models.Membership, error)
	ListOrgIDsByUser(userID uuid.UUID) ([]uuid.UUID, error)
	HasOtherOwner(orgID, excludeUserID uuid.UUID) (bool, error)
	Update(membership *models.Membership) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

// InvitationRepositoryInterface defines the interface for invitation repository operations
type InvitationRepositoryInterface interface {
	Create(invitation *models.Invitation) error
	GetByToken(token string) (*models.Invitation, error)
	GetPendingByOrgAndEmail(orgID uuid.UUID, email string) (*models.Invitation, error)
	ListPendingByEmail(email string, now time.Time) ([]models.Invitation, error)
	Update(invitation *models.Invitation) error
	Accept(invitation *models.Invitation, membership *models.Membership) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Count() (int64, error)
	CountCreatedSince(since time.Time) (int64, error)
}

// ActivityRepositoryInterface defines the interface for activity log repository operations
type ActivityRepositoryInterface interface {
	Create(log *models.ActivityLog) error
	List(filter *ActivityFilter) ([]models.ActivityLog, int64, error)
	Count() (int64, error)
	CountSince(since time.Time) (int64, error)
	CountDistinctUsersSince(since time.Time) (int64, error)
	CountByAction() (map[string]int64, error)
	CountByResourceType() (map[string]int64, error)
	TimelineSince(since time.Time) ([]TimelinePoint, error)
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	GetByIDForUser(id, userID uuid.UUID) (*models.Notification, error)
	ListByUser(userID uuid.UUID, filter *NotificationFilter) ([]models.Notification, int64, error)
	UnreadCount(userID uuid.UUID) (int64, error)
	Update(notification *models.Notification) error
	MarkAllRead(userID uuid.UUID, readAt time.Time) (int64, error)
}
