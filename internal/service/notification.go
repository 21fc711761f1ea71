package service

import (
	"errors"
	"fmt"
	"time"

	"saas-dashboard-backend/internal/database/models"
	apperrors "saas-dashboard-backend/internal/errors"
	"saas-dashboard-backend/internal/logger"
	"saas-dashboard-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationService handles in-app notifications. Users only ever see their
// own rows; every query is scoped by user ID.
type NotificationService struct {
	repo repository.NotificationRepositoryInterface
	now  func() time.Time
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{repo: repo, now: time.Now}
}

// ListNotificationsRequest represents the query parameters for a notification listing
type ListNotificationsRequest struct {
	Page     int
	PageSize int
	IsRead   *bool
	Type     string
}

// NotificationResponse represents a single notification
type NotificationResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Type                string     `json:"type"`
	Title               string     `json:"title"`
	Message             string     `json:"message,omitempty"`
	LinkURL             string     `json:"link_url,omitempty"`
	IsRead              bool       `json:"is_read"`
	ReadAt              *time.Time `json:"read_at,omitempty"`
	RelatedResourceType string     `json:"related_resource_type,omitempty"`
	RelatedResourceID   *uuid.UUID `json:"related_resource_id,omitempty"`
	CreatedAt           string     `json:"created_at"`
}

// NotificationListResponse represents a paginated notification listing
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
	UnreadCount   int64                  `json:"unread_count"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// List returns the user's notifications, newest first
func (s *NotificationService) List(userID uuid.UUID, req *ListNotificationsRequest) (*NotificationListResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		req.PageSize = 20
	}

	filter := &repository.NotificationFilter{
		IsRead: req.IsRead,
		Type:   req.Type,
		Limit:  req.PageSize,
		Offset: (req.Page - 1) * req.PageSize,
	}
	notifications, total, err := s.repo.ListByUser(userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread, err := s.repo.UnreadCount(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	responses := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		responses[i] = *toNotificationResponse(&notifications[i])
	}
	return &NotificationListResponse{
		Notifications: responses,
		Total:         total,
		UnreadCount:   unread,
		Page:          req.Page,
		PageSize:      req.PageSize,
	}, nil
}

// UnreadCount returns the number of unread notifications for the user
func (s *NotificationService) UnreadCount(userID uuid.UUID) (int64, error) {
	count, err := s.repo.UnreadCount(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead marks one of the user's notifications as read
func (s *NotificationService) MarkRead(userID, notificationID uuid.UUID) (*NotificationResponse, error) {
	notification, err := s.repo.GetByIDForUser(notificationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	if !notification.IsRead {
		readAt := s.now()
		notification.IsRead = true
		notification.ReadAt = &readAt
		if err := s.repo.Update(notification); err != nil {
			return nil, fmt.Errorf("failed to mark notification read: %w", err)
		}
	}
	return toNotificationResponse(notification), nil
}

// MarkAllRead marks all of the user's unread notifications as read and
// returns how many were affected
func (s *NotificationService) MarkAllRead(userID uuid.UUID) (int64, error) {
	affected, err := s.repo.MarkAllRead(userID, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return affected, nil
}

// NotifyInvitation creates an in-app notification for an invited user who is
// already registered. Best-effort: a failed write is logged and dropped.
func (s *NotificationService) NotifyInvitation(userID uuid.UUID, orgName, inviterName string, role models.MembershipRole, invitationID uuid.UUID) {
	log := logger.New().WithField("user_id", userID)

	notification := &models.Notification{
		UserID:              userID,
		Type:                models.NotificationTypeInvitation,
		Title:               fmt.Sprintf("You've been invited to join %s", orgName),
		Message:             fmt.Sprintf("%s invited you to join %s as %s", inviterName, orgName, role),
		LinkURL:             "/invitations",
		RelatedResourceType: ResourceInvitation,
		RelatedResourceID:   &invitationID,
	}
	if err := s.repo.Create(notification); err != nil {
		log.Warnf("failed to create invitation notification: %v", err)
	}
}

func toNotificationResponse(notification *models.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:                  notification.ID,
		Type:                string(notification.Type),
		Title:               notification.Title,
		Message:             notification.Message,
		LinkURL:             notification.LinkURL,
		IsRead:              notification.IsRead,
		ReadAt:              notification.ReadAt,
		RelatedResourceType: notification.RelatedResourceType,
		RelatedResourceID:   notification.RelatedResourceID,
		CreatedAt:           notification.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
