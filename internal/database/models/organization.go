package models

// Organization represents the root entity for multi-tenancy. Deleting an
// organization removes its memberships and invitations in the same
// transaction; the FK cascades are a backstop, not the mechanism.
type Organization struct {
	BaseModel
	Name string `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`

	// Relationships
	Memberships []Membership `json:"memberships,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Invitations []Invitation `json:"invitations,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
