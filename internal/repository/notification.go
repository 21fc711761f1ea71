package repository

import (
	"time"

	"saas-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationFilter narrows a notification listing
type NotificationFilter struct {
	IsRead *bool
	Type   string
	Limit  int
	Offset int
}

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new notification
func (r *NotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// GetByIDForUser retrieves a notification by ID scoped to its owner
func (r *NotificationRepository) GetByIDForUser(id, userID uuid.UUID) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// ListByUser retrieves notifications for a user, newest first, with the total
// count before pagination
func (r *NotificationRepository) ListByUser(userID uuid.UUID, filter *NotificationFilter) ([]models.Notification, int64, error) {
	query := r.db.Model(&models.Notification{}).Where("user_id = ?", userID)

	if filter.IsRead != nil {
		query = query.Where("is_read = ?", *filter.IsRead)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []models.Notification
	err := query.Order("created_at DESC").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

// UnreadCount returns the number of unread notifications for a user
func (r *NotificationRepository) UnreadCount(userID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&total).Error
	return total, err
}

// Update updates a notification
func (r *NotificationRepository) Update(notification *models.Notification) error {
	return r.db.Save(notification).Error
}

// MarkAllRead marks every unread notification of a user as read and returns
// the number of rows affected
func (r *NotificationRepository) MarkAllRead(userID uuid.UUID, readAt time.Time) (int64, error) {
	result := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": readAt})
	return result.RowsAffected, result.Error
}
