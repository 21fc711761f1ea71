package models

import (
	"time"

	"github.com/google/uuid"
)

// Invitation is an email-addressed, tokenized offer to join an organization
// with a proposed role. It is email-bound rather than user-bound so that
// invitees can register after being invited. Lifecycle:
// pending -> accepted or pending -> expired, both terminal.
//
// Expiry is lazy: there is no background sweeper, the pending -> expired
// transition is persisted when an expired invitation is touched at accept
// time.
type Invitation struct {
	BaseModel
	OrganizationID uuid.UUID        `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Email          string           `json:"email" gorm:"not null;size:255;index" validate:"required,email,max=255"`
	Role           MembershipRole   `json:"role" gorm:"type:varchar(20);not null" validate:"required"`
	Token          string           `json:"token" gorm:"uniqueIndex;not null;size:36"`
	Status         InvitationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	ExpiresAt      *time.Time       `json:"expires_at"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Invitation
func (Invitation) TableName() string {
	return "invitations"
}

// IsExpired reports whether the invitation's deadline has passed at the given
// instant. Invitations without a deadline never expire.
func (i *Invitation) IsExpired(now time.Time) bool {
	return i.ExpiresAt != nil && i.ExpiresAt.Before(now)
}
