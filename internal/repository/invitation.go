package repository

import (
	"time"

	"saas-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvitationRepository handles database operations for invitations
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new invitation repository
func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// Create creates a new invitation
func (r *InvitationRepository) Create(invitation *models.Invitation) error {
	return r.db.Create(invitation).Error
}

// GetByToken retrieves an invitation by its opaque token
func (r *InvitationRepository) GetByToken(token string) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.db.First(&invitation, "token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetPendingByOrgAndEmail retrieves the newest pending invitation for the
// (organization, email) pair. Stale pending rows left behind by lazy expiry
// must not shadow a fresher one, so the newest row decides the duplicate
// check. There is no DB constraint backing this, so a concurrent create can
// still race past it.
func (r *InvitationRepository) GetPendingByOrgAndEmail(orgID uuid.UUID, email string) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.db.
		Where("organization_id = ? AND email = ? AND status = ?",
			orgID, email, models.InvitationStatusPending).
		Order("created_at DESC").
		First(&invitation).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// ListPendingByEmail retrieves pending invitations for an email whose expiry
// is unset or in the future. Point-in-time filter only: a listed invitation
// can still expire before it is accepted.
func (r *InvitationRepository) ListPendingByEmail(email string, now time.Time) ([]models.Invitation, error) {
	var invitations []models.Invitation
	err := r.db.
		Where("email = ? AND status = ?", email, models.InvitationStatusPending).
		Where("expires_at IS NULL OR expires_at > ?", now).
		Order("created_at DESC").
		Find(&invitations).Error
	if err != nil {
		return nil, err
	}
	return invitations, nil
}

// Update updates an invitation
func (r *InvitationRepository) Update(invitation *models.Invitation) error {
	return r.db.Save(invitation).Error
}

// Accept marks the invitation accepted and creates the resulting membership
// in one transaction. Either both writes land or neither does; no reader may
// observe an accepted invitation without its membership.
func (r *InvitationRepository) Accept(invitation *models.Invitation, membership *models.Membership) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		invitation.Status = models.InvitationStatusAccepted
		if err := tx.Save(invitation).Error; err != nil {
			return err
		}
		return tx.Create(membership).Error
	})
}
