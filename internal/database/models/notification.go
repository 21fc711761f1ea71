package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NotificationType categorizes in-app notifications
type NotificationType string

const (
	NotificationTypeInvitation NotificationType = "invitation"
	NotificationTypeActivity   NotificationType = "activity"
	NotificationTypeSystem     NotificationType = "system"
)

// Notification is an in-app message for a single user
type Notification struct {
	BaseModel
	UserID  uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Type    NotificationType `json:"type" gorm:"type:varchar(50);not null;index" validate:"required"`
	Title   string           `json:"title" gorm:"not null;size:255" validate:"required,max=255"`
	Message string           `json:"message,omitempty" gorm:"type:text"`
	LinkURL string           `json:"link_url,omitempty" gorm:"size:500"`

	IsRead bool       `json:"is_read" gorm:"not null;default:false;index"`
	ReadAt *time.Time `json:"read_at,omitempty"`

	RelatedResourceType string          `json:"related_resource_type,omitempty" gorm:"size:50;index"`
	RelatedResourceID   *uuid.UUID      `json:"related_resource_id,omitempty" gorm:"type:uuid"`
	ExtraData           json.RawMessage `json:"extra_data,omitempty" gorm:"type:jsonb"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
