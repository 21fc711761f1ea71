package service

import (
	"fmt"
	"time"

	"saas-dashboard-backend/internal/repository"
)

// AnalyticsService aggregates platform-wide dashboard statistics
type AnalyticsService struct {
	userRepo       repository.UserRepositoryInterface
	orgRepo        repository.OrganizationRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	activityRepo   repository.ActivityRepositoryInterface
	now            func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	userRepo repository.UserRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	activityRepo repository.ActivityRepositoryInterface,
) *AnalyticsService {
	return &AnalyticsService{
		userRepo:       userRepo,
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		activityRepo:   activityRepo,
		now:            time.Now,
	}
}

// UserStats summarizes user growth
type UserStats struct {
	Total        int64 `json:"total"`
	NewThisWeek  int64 `json:"new_this_week"`
	NewThisMonth int64 `json:"new_this_month"`
}

// ActivityStats summarizes recorded activity
type ActivityStats struct {
	Total           int64            `json:"total"`
	Today           int64            `json:"today"`
	ActiveUsersWeek int64            `json:"active_users_week"`
	ByAction        map[string]int64 `json:"by_action"`
	ByResourceType  map[string]int64 `json:"by_resource_type"`
}

// OrganizationStats summarizes organizations and memberships
type OrganizationStats struct {
	Total        int64   `json:"total"`
	NewThisMonth int64   `json:"new_this_month"`
	AvgMembers   float64 `json:"avg_members"`
}

// TimelineEntry is one day of the activity timeline
type TimelineEntry struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// DashboardStatsResponse represents the dashboard statistics payload
type DashboardStatsResponse struct {
	Users         UserStats         `json:"users"`
	Activity      ActivityStats     `json:"activity"`
	Organizations OrganizationStats `json:"organizations"`
	Timeline      []TimelineEntry   `json:"timeline"`
}

// DashboardStats computes the dashboard statistics payload
func (s *AnalyticsService) DashboardStats() (*DashboardStatsResponse, error) {
	now := s.now()
	dayStart := startOfDay(now)
	weekStart := dayStart.AddDate(0, 0, -7)
	monthStart := dayStart.AddDate(0, -1, 0)

	totalUsers, err := s.userRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	usersThisWeek, err := s.userRepo.CountCreatedSince(weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to count users this week: %w", err)
	}
	usersThisMonth, err := s.userRepo.CountCreatedSince(monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to count users this month: %w", err)
	}

	totalActivity, err := s.activityRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count activity: %w", err)
	}
	activityToday, err := s.activityRepo.CountSince(dayStart)
	if err != nil {
		return nil, fmt.Errorf("failed to count activity today: %w", err)
	}
	activeUsersWeek, err := s.activityRepo.CountDistinctUsersSince(weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}
	byAction, err := s.activityRepo.CountByAction()
	if err != nil {
		return nil, fmt.Errorf("failed to count activity by action: %w", err)
	}
	byResourceType, err := s.activityRepo.CountByResourceType()
	if err != nil {
		return nil, fmt.Errorf("failed to count activity by resource type: %w", err)
	}

	totalOrgs, err := s.orgRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count organizations: %w", err)
	}
	orgsThisMonth, err := s.orgRepo.CountCreatedSince(monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to count organizations this month: %w", err)
	}
	totalMemberships, err := s.membershipRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count memberships: %w", err)
	}
	avgMembers := 0.0
	if totalOrgs > 0 {
		avgMembers = float64(totalMemberships) / float64(totalOrgs)
	}

	points, err := s.activityRepo.TimelineSince(dayStart.AddDate(0, 0, -29))
	if err != nil {
		return nil, fmt.Errorf("failed to build activity timeline: %w", err)
	}
	timeline := make([]TimelineEntry, len(points))
	for i, p := range points {
		timeline[i] = TimelineEntry{Date: p.Date.Format("2006-01-02"), Count: p.Count}
	}

	return &DashboardStatsResponse{
		Users: UserStats{
			Total:        totalUsers,
			NewThisWeek:  usersThisWeek,
			NewThisMonth: usersThisMonth,
		},
		Activity: ActivityStats{
			Total:           totalActivity,
			Today:           activityToday,
			ActiveUsersWeek: activeUsersWeek,
			ByAction:        byAction,
			ByResourceType:  byResourceType,
		},
		Organizations: OrganizationStats{
			Total:        totalOrgs,
			NewThisMonth: orgsThisMonth,
			AvgMembers:   avgMembers,
		},
		Timeline: timeline,
	}, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
