package models

import "time"

// User represents a registered account. Registration, password hashing and
// token issuance live outside this service; the row is read for identity
// lookups and member projections.
type User struct {
	BaseModel
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Name         string `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	PasswordHash string `json:"-" gorm:"size:255"`
	AvatarURL    string `json:"avatar_url" gorm:"size:500"`

	// Password reset fields, written by the auth collaborator
	PasswordResetToken     *string    `json:"-" gorm:"size:255;index"`
	PasswordResetExpiresAt *time.Time `json:"-"`

	// Relationships
	Memberships []Membership `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
