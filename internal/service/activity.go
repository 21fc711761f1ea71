package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"saas-dashboard-backend/internal/database/models"
	apperrors "saas-dashboard-backend/internal/errors"
	"saas-dashboard-backend/internal/logger"
	"saas-dashboard-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Standard action names for activity logging
const (
	ActionOrgCreate        = "organization.create"
	ActionOrgDelete        = "organization.delete"
	ActionMembershipCreate = "membership.create"
	ActionMembershipUpdate = "membership.update"
	ActionMembershipDelete = "membership.delete"
	ActionInvitationCreate = "invitation.create"
	ActionInvitationAccept = "invitation.accept"
	ActionInvitationExpire = "invitation.expire"
)

// Standard resource type names for activity logging
const (
	ResourceUser         = "user"
	ResourceOrganization = "organization"
	ResourceMembership   = "membership"
	ResourceInvitation   = "invitation"
)

// ActivityService records audit events and serves the activity log listing
type ActivityService struct {
	repo        repository.ActivityRepositoryInterface
	memberships repository.MembershipRepositoryInterface
}

// NewActivityService creates a new activity service
func NewActivityService(repo repository.ActivityRepositoryInterface, memberships repository.MembershipRepositoryInterface) *ActivityService {
	return &ActivityService{repo: repo, memberships: memberships}
}

// Record writes an audit event. It is fire-and-forget: a failed write is
// logged and swallowed so the mutation that produced the event never fails
// because of it.
func (s *ActivityService) Record(action string, actorUserID *uuid.UUID, resourceType string, resourceID, orgID *uuid.UUID, details map[string]interface{}, meta RequestMeta) {
	log := logger.New().WithField("action", action)

	var raw json.RawMessage
	if details != nil {
		data, err := json.Marshal(details)
		if err != nil {
			log.Warnf("failed to marshal activity details: %v", err)
		} else {
			raw = data
		}
	}

	entry := &models.ActivityLog{
		UserID:         actorUserID,
		Action:         action,
		ResourceType:   resourceType,
		ResourceID:     resourceID,
		OrganizationID: orgID,
		Details:        raw,
		IPAddress:      meta.IPAddress,
		UserAgent:      meta.UserAgent,
	}
	if err := s.repo.Create(entry); err != nil {
		log.Warnf("failed to record activity: %v", err)
	}
}

// ListActivityRequest represents the query parameters for an activity listing
type ListActivityRequest struct {
	Page           int
	PageSize       int
	UserID         *uuid.UUID
	Action         string
	ResourceType   string
	OrganizationID *uuid.UUID
}

// ActivityLogResponse represents a single activity log entry
type ActivityLogResponse struct {
	ID             uuid.UUID       `json:"id"`
	UserID         *uuid.UUID      `json:"user_id,omitempty"`
	Action         string          `json:"action"`
	ResourceType   string          `json:"resource_type,omitempty"`
	ResourceID     *uuid.UUID      `json:"resource_id,omitempty"`
	OrganizationID *uuid.UUID      `json:"organization_id,omitempty"`
	Details        json.RawMessage `json:"details,omitempty" swaggertype:"object"`
	IPAddress      string          `json:"ip_address,omitempty"`
	UserAgent      string          `json:"user_agent,omitempty"`
	CreatedAt      string          `json:"created_at"`
}

// ActivityListResponse represents a paginated activity listing
type ActivityListResponse struct {
	Logs     []ActivityLogResponse `json:"logs"`
	Total    int64                 `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

// List returns activity logs visible to the caller: their own actions plus
// actions in organizations they belong to. Filtering by a specific
// organization requires membership in it.
func (s *ActivityService) List(userID uuid.UUID, req *ListActivityRequest) (*ActivityListResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		req.PageSize = 20
	}

	filter := &repository.ActivityFilter{
		UserID:       req.UserID,
		Action:       req.Action,
		ResourceType: req.ResourceType,
		Limit:        req.PageSize,
		Offset:       (req.Page - 1) * req.PageSize,
	}

	if req.OrganizationID != nil {
		_, err := s.memberships.GetByOrgAndUser(*req.OrganizationID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNotAMember
			}
			return nil, fmt.Errorf("failed to check membership: %w", err)
		}
		filter.OrganizationID = req.OrganizationID
	} else {
		orgIDs, err := s.memberships.ListOrgIDsByUser(userID)
		if err != nil {
			return nil, fmt.Errorf("failed to list user organizations: %w", err)
		}
		filter.VisibleToUser = &userID
		filter.VisibleOrgIDs = orgIDs
	}

	logs, total, err := s.repo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}

	responses := make([]ActivityLogResponse, len(logs))
	for i := range logs {
		responses[i] = *toActivityResponse(&logs[i])
	}
	return &ActivityListResponse{
		Logs:     responses,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

func toActivityResponse(log *models.ActivityLog) *ActivityLogResponse {
	return &ActivityLogResponse{
		ID:             log.ID,
		UserID:         log.UserID,
		Action:         log.Action,
		ResourceType:   log.ResourceType,
		ResourceID:     log.ResourceID,
		OrganizationID: log.OrganizationID,
		Details:        log.Details,
		IPAddress:      log.IPAddress,
		UserAgent:      log.UserAgent,
		CreatedAt:      log.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
