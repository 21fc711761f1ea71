package repository

import (
	"saas-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create creates a new membership
func (r *MembershipRepository) Create(membership *models.Membership) error {
	return r.db.Create(membership).Error
}

// GetByOrgAndUser retrieves the membership for a (organization, user) pair.
// Authorization checks call this on every request so role changes take effect
// immediately; nothing is cached.
func (r *MembershipRepository) GetByOrgAndUser(orgID, userID uuid.UUID) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.First(&membership, "organization_id = ? AND user_id = ?", orgID, userID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetWithUser retrieves a membership with its user preloaded
func (r *MembershipRepository) GetWithUser(orgID, userID uuid.UUID) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.Preload("User").First(&membership, "organization_id = ? AND user_id = ?", orgID, userID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// ListByOrganization retrieves all memberships of an organization with users preloaded
func (r *MembershipRepository) ListByOrganization(orgID uuid.UUID) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.Preload("User").
		Where("organization_id = ?", orgID).
		Order("created_at").
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// ListOrgIDsByUser retrieves the IDs of all organizations the user belongs to
func (r *MembershipRepository) ListOrgIDsByUser(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Membership{}).
		Where("user_id = ?", userID).
		Pluck("organization_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// HasOtherOwner reports whether the organization has an owner-role membership
// belonging to a user other than excludeUserID. Backs the sole-owner check.
func (r *MembershipRepository) HasOtherOwner(orgID, excludeUserID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Membership{}).
		Where("organization_id = ? AND role = ? AND user_id <> ?", orgID, models.MembershipRoleOwner, excludeUserID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update updates a membership
func (r *MembershipRepository) Update(membership *models.Membership) error {
	return r.db.Save(membership).Error
}

// Delete deletes a membership by ID. Hard delete, no tombstone; auditability
// relies on the activity log written before removal.
func (r *MembershipRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Membership{}, "id = ?", id).Error
}

// Count returns the total number of memberships
func (r *MembershipRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.Membership{}).Count(&total).Error
	return total, err
}
