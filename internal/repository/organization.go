package repository

import (
	"time"

	"saas-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// CreateWithOwner creates an organization together with its first owner
// membership in one transaction. A reader must never observe the organization
// without an owner.
func (r *OrganizationRepository) CreateWithOwner(org *models.Organization, ownerUserID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		membership := &models.Membership{
			OrganizationID: org.ID,
			UserID:         ownerUserID,
			Role:           models.MembershipRoleOwner,
		}
		return tx.Create(membership).Error
	})
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// ListByUserID retrieves all organizations the user holds a membership in
func (r *OrganizationRepository) ListByUserID(userID uuid.UUID) ([]models.Organization, error) {
	var orgs []models.Organization
	err := r.db.
		Joins("JOIN memberships ON memberships.organization_id = organizations.id").
		Where("memberships.user_id = ?", userID).
		Order("organizations.created_at").
		Find(&orgs).Error
	if err != nil {
		return nil, err
	}
	return orgs, nil
}

// DeleteCascade deletes an organization and its memberships and invitations
// inside one transaction. The deletes are issued explicitly rather than
// relying on FK cascade behavior.
func (r *OrganizationRepository) DeleteCascade(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("organization_id = ?", id).Delete(&models.Invitation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("organization_id = ?", id).Delete(&models.Membership{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Organization{}, "id = ?", id).Error
	})
}

// Count returns the total number of organizations
func (r *OrganizationRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.Organization{}).Count(&total).Error
	return total, err
}

// CountCreatedSince returns the number of organizations created at or after the given time
func (r *OrganizationRepository) CountCreatedSince(since time.Time) (int64, error) {
	var total int64
	err := r.db.Model(&models.Organization{}).Where("created_at >= ?", since).Count(&total).Error
	return total, err
}
