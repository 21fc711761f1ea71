package models

import "github.com/google/uuid"

// Membership links exactly one user to exactly one organization with a role.
// The composite unique index enforces at most one membership per (org, user)
// pair. The sole-owner invariant (an organization never loses its last owner)
// is enforced at mutation time by the membership service.
type Membership struct {
	BaseModel
	OrganizationID uuid.UUID      `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_org_user" validate:"required"`
	UserID         uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_org_user" validate:"required"`
	Role           MembershipRole `json:"role" gorm:"type:varchar(20);not null" validate:"required"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	User         User         `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}
