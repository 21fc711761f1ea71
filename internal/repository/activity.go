package repository

import (
	"time"

	"saas-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityFilter narrows an activity log listing. VisibleToUser together with
// VisibleOrgIDs implements the "own actions plus actions in my organizations"
// scoping; the remaining fields are optional exact-match filters.
type ActivityFilter struct {
	VisibleToUser  *uuid.UUID
	VisibleOrgIDs  []uuid.UUID
	UserID         *uuid.UUID
	Action         string
	ResourceType   string
	OrganizationID *uuid.UUID
	Limit          int
	Offset         int
}

// TimelinePoint is a per-day activity count
type TimelinePoint struct {
	Date  time.Time `gorm:"column:date"`
	Count int64     `gorm:"column:count"`
}

// ActivityRepository handles database operations for activity logs
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create creates a new activity log entry
func (r *ActivityRepository) Create(log *models.ActivityLog) error {
	return r.db.Create(log).Error
}

// List retrieves activity logs matching the filter, newest first, with the
// total count before pagination.
func (r *ActivityRepository) List(filter *ActivityFilter) ([]models.ActivityLog, int64, error) {
	query := r.db.Model(&models.ActivityLog{})

	if filter.OrganizationID != nil {
		query = query.Where("organization_id = ?", *filter.OrganizationID)
	} else if filter.VisibleToUser != nil {
		if len(filter.VisibleOrgIDs) > 0 {
			query = query.Where("user_id = ? OR organization_id IN ?", *filter.VisibleToUser, filter.VisibleOrgIDs)
		} else {
			query = query.Where("user_id = ?", *filter.VisibleToUser)
		}
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.ResourceType != "" {
		query = query.Where("resource_type = ?", filter.ResourceType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.ActivityLog
	err := query.Order("created_at DESC").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// Count returns the total number of activity log entries
func (r *ActivityRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.ActivityLog{}).Count(&total).Error
	return total, err
}

// CountSince returns the number of entries created at or after the given time
func (r *ActivityRepository) CountSince(since time.Time) (int64, error) {
	var total int64
	err := r.db.Model(&models.ActivityLog{}).Where("created_at >= ?", since).Count(&total).Error
	return total, err
}

// CountDistinctUsersSince returns the number of distinct users with activity
// at or after the given time
func (r *ActivityRepository) CountDistinctUsersSince(since time.Time) (int64, error) {
	var total int64
	err := r.db.Model(&models.ActivityLog{}).
		Where("created_at >= ? AND user_id IS NOT NULL", since).
		Distinct("user_id").
		Count(&total).Error
	return total, err
}

// CountByAction returns entry counts grouped by action
func (r *ActivityRepository) CountByAction() (map[string]int64, error) {
	var rows []struct {
		Action string
		Count  int64
	}
	err := r.db.Model(&models.ActivityLog{}).
		Select("action, COUNT(*) as count").
		Group("action").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Action] = row.Count
	}
	return result, nil
}

// CountByResourceType returns entry counts grouped by resource type
func (r *ActivityRepository) CountByResourceType() (map[string]int64, error) {
	var rows []struct {
		ResourceType string
		Count        int64
	}
	err := r.db.Model(&models.ActivityLog{}).
		Select("resource_type, COUNT(*) as count").
		Where("resource_type <> ''").
		Group("resource_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.ResourceType] = row.Count
	}
	return result, nil
}

// TimelineSince returns per-day entry counts at or after the given time
func (r *ActivityRepository) TimelineSince(since time.Time) ([]TimelinePoint, error) {
	var points []TimelinePoint
	err := r.db.Model(&models.ActivityLog{}).
		Select("DATE(created_at) as date, COUNT(*) as count").
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("date").
		Scan(&points).Error
	if err != nil {
		return nil, err
	}
	return points, nil
}
