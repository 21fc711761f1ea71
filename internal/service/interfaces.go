package service

import (
	"saas-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AuthzServiceInterface defines the authorization guard contract. Every check
// re-reads the membership row so role changes take effect on the next request.
type AuthzServiceInterface interface {
	ResolveMembership(orgID, userID uuid.UUID) (*models.Membership, error)
	RequireRole(orgID, userID uuid.UUID, allowed ...models.MembershipRole) (*models.Membership, error)
}

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(userID uuid.UUID, req *CreateOrganizationRequest, meta RequestMeta) (*OrganizationResponse, error)
	ListMine(userID uuid.UUID) ([]OrganizationResponse, error)
	Delete(orgID, actingUserID uuid.UUID, meta RequestMeta) error
}

// InvitationServiceInterface defines the interface for invitation service
type InvitationServiceInterface interface {
	Create(orgID, inviterUserID uuid.UUID, req *CreateInvitationRequest, meta RequestMeta) (*InvitationResponse, error)
	Accept(userID uuid.UUID, userEmail string, req *AcceptInvitationRequest, meta RequestMeta) (*MemberResponse, error)
	ListPendingForEmail(email string) ([]InvitationResponse, error)
}

// MembershipServiceInterface defines the interface for membership service
type MembershipServiceInterface interface {
	ListMembers(orgID, actingUserID uuid.UUID) ([]MemberResponse, error)
	UpdateRole(orgID, targetUserID, actingUserID uuid.UUID, req *UpdateMemberRoleRequest, meta RequestMeta) (*MemberResponse, error)
	Remove(orgID, targetUserID, actingUserID uuid.UUID, meta RequestMeta) error
}

// NotificationServiceInterface defines the interface for notification service
type NotificationServiceInterface interface {
	List(userID uuid.UUID, req *ListNotificationsRequest) (*NotificationListResponse, error)
	UnreadCount(userID uuid.UUID) (int64, error)
	MarkRead(userID, notificationID uuid.UUID) (*NotificationResponse, error)
	MarkAllRead(userID uuid.UUID) (int64, error)
}

// ActivityServiceInterface defines the interface for activity log listing
type ActivityServiceInterface interface {
	List(userID uuid.UUID, req *ListActivityRequest) (*ActivityListResponse, error)
}

// AnalyticsServiceInterface defines the interface for dashboard analytics
type AnalyticsServiceInterface interface {
	DashboardStats() (*DashboardStatsResponse, error)
}

// ActivityRecorderInterface is the audit sink consumed by the mutating
// services. Record is best-effort: implementations log failures and never
// propagate them.
type ActivityRecorderInterface interface {
	Record(action string, actorUserID *uuid.UUID, resourceType string, resourceID, orgID *uuid.UUID, details map[string]interface{}, meta RequestMeta)
}

// EmailSenderInterface is the outbound email collaborator. Failures are the
// caller's to log and drop, never to surface.
type EmailSenderInterface interface {
	SendInvitationEmail(email, orgName, inviterName string, role models.MembershipRole, token string) error
}

// InvitationNotifierInterface creates best-effort in-app notifications for
// invitations whose target email maps to a registered user.
type InvitationNotifierInterface interface {
	NotifyInvitation(userID uuid.UUID, orgName, inviterName string, role models.MembershipRole, invitationID uuid.UUID)
}

// RequestMeta carries client metadata handlers extract from the request and
// the audit sink stores alongside events.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}
