package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ActivityLog records a user or system action for auditing. Writes are
// best-effort from the caller's perspective; membership mutations do not fail
// because an audit record could not be persisted.
type ActivityLog struct {
	BaseModel
	UserID         *uuid.UUID      `json:"user_id,omitempty" gorm:"type:uuid;index"`
	Action         string          `json:"action" gorm:"not null;size:100;index" validate:"required,max=100"`
	ResourceType   string          `json:"resource_type,omitempty" gorm:"size:50;index"`
	ResourceID     *uuid.UUID      `json:"resource_id,omitempty" gorm:"type:uuid;index"`
	OrganizationID *uuid.UUID      `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	Details        json.RawMessage `json:"details,omitempty" gorm:"type:jsonb"`
	IPAddress      string          `json:"ip_address,omitempty" gorm:"size:45"`
	UserAgent      string          `json:"user_agent,omitempty" gorm:"size:500"`

	// Relationships
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for ActivityLog
func (ActivityLog) TableName() string {
	return "activity_logs"
}
