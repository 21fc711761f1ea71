package service_test

import (
	"testing"

	"saas-dashboard-backend/internal/database/models"
	apperrors "saas-dashboard-backend/internal/errors"
	"saas-dashboard-backend/internal/mocks"
	"saas-dashboard-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// MembershipServiceTestSuite defines the test suite for MembershipService
type MembershipServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockMembershipRepo *mocks.MockMembershipRepositoryInterface
	mockAuthz          *mocks.MockAuthzServiceInterface
	mockActivity       *mocks.MockActivityRecorderInterface
	membershipService  *service.MembershipService
	validator          *validator.Validate

	orgID        uuid.UUID
	ownerID      uuid.UUID
	adminID      uuid.UUID
	memberUserID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *MembershipServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockAuthz = mocks.NewMockAuthzServiceInterface(suite.ctrl)
	suite.mockActivity = mocks.NewMockActivityRecorderInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.membershipService = service.NewMembershipService(
		suite.mockMembershipRepo, suite.mockAuthz, suite.mockActivity, suite.validator)

	suite.orgID = uuid.New()
	suite.ownerID = uuid.New()
	suite.adminID = uuid.New()
	suite.memberUserID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *MembershipServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MembershipServiceTestSuite) membership(userID uuid.UUID, role models.MembershipRole) *models.Membership {
	return &models.Membership{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: suite.orgID,
		UserID:         userID,
		Role:           role,
	}
}

// TestListMembers tests that any member can list the roster
func (suite *MembershipServiceTestSuite) TestListMembers() {
	caller := suite.membership(suite.memberUserID, models.MembershipRoleMember)
	roster := []models.Membership{
		{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: suite.orgID, UserID: suite.ownerID,
			Role: models.MembershipRoleOwner, User: models.User{Email: "owner@test.com", Name: "Owner"}},
		{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: suite.orgID, UserID: suite.memberUserID,
			Role: models.MembershipRoleMember, User: models.User{Email: "member@test.com", Name: "Member"}},
	}

	suite.mockAuthz.EXPECT().
		ResolveMembership(suite.orgID, suite.memberUserID).
		Return(caller, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		ListByOrganization(suite.orgID).
		Return(roster, nil).
		Times(1)

	members, err := suite.membershipService.ListMembers(suite.orgID, suite.memberUserID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), members, 2)
	assert.Equal(suite.T(), "owner@test.com", members[0].UserEmail)
	assert.Equal(suite.T(), "owner", members[0].Role)
}

// TestListMembersNotAMember tests the roster is hidden from outsiders
func (suite *MembershipServiceTestSuite) TestListMembersNotAMember() {
	outsider := uuid.New()

	suite.mockAuthz.EXPECT().
		ResolveMembership(suite.orgID, outsider).
		Return(nil, apperrors.ErrNotAMember).
		Times(1)

	members, err := suite.membershipService.ListMembers(suite.orgID, outsider)

	assert.Nil(suite.T(), members)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotAMember)
}

// TestUpdateRole tests an admin promoting a member to admin
func (suite *MembershipServiceTestSuite) TestUpdateRole() {
	acting := suite.membership(suite.adminID, models.MembershipRoleAdmin)
	target := suite.membership(suite.memberUserID, models.MembershipRoleMember)
	refreshed := *target
	refreshed.Role = models.MembershipRoleAdmin
	refreshed.User = models.User{Email: "member@test.com", Name: "Member"}

	suite.mockAuthz.EXPECT().
		RequireRole(suite.orgID, suite.adminID, models.MembershipRoleOwner, models.MembershipRoleAdmin).
		Return(acting, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.memberUserID).
		Return(target, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)
	suite.mockActivity.EXPECT().
		Record("membership.update", gomock.Any(), "membership", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetWithUser(suite.orgID, suite.memberUserID).
		Return(&refreshed, nil).
		Times(1)

	response, err := suite.membershipService.UpdateRole(suite.orgID, suite.memberUserID, suite.adminID,
		&service.UpdateMemberRoleRequest{Role: "admin"}, service.RequestMeta{})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "admin", response.Role)
	assert.Equal(suite.T(), "member@test.com", response.UserEmail)
}

// TestUpdateRoleInvalidRole tests a role outside the closed enum
func (suite *MembershipServiceTestSuite) TestUpdateRoleInvalidRole() {
	acting := suite.membership(suite.adminID, models.MembershipRoleAdmin)

	suite.mockAuthz.EXPECT().
		RequireRole(suite.orgID, suite.adminID, models.MembershipRoleOwner, models.MembershipRoleAdmin).
		Return(acting, nil).
		Times(1)

	response, err := suite.membershipService.UpdateRole(suite.orgID, suite.memberUserID, suite.adminID,
		&service.UpdateMemberRoleRequest{Role: "superuser"}, service.RequestMeta{})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRole)
}

// TestUpdateRoleOwnerAssignmentByAdmin tests the role-escalation guard:
// an admin cannot mint an owner
func (suite *MembershipServiceTestSuite) TestUpdateRoleOwnerAssignmentByAdmin() {
	acting := suite.membership(suite.adminID, models.MembershipRoleAdmin)
	target := suite.membership(suite.memberUserID, models.MembershipRoleMember)

	suite.mockAuthz.EXPECT().
		RequireRole(suite.orgID, suite.adminID, models.MembershipRoleOwner, models.MembershipRoleAdmin).
		Return(acting, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.memberUserID).
		Return(target, nil).
		Times(1)

	response, err := suite.membershipService.UpdateRole(suite.orgID, suite.memberUserID, suite.adminID,
		&service.UpdateMemberRoleRequest{Role: "owner"}, service.RequestMeta{})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOwnerRoleAssignOnly)
}

// TestUpdateRoleSoleOwnerSelfDemotion tests the sole-owner invariant
func (suite *MembershipServiceTestSuite) TestUpdateRoleSoleOwnerSelfDemotion() {
	acting := suite.membership(suite.ownerID, models.MembershipRoleOwner)

	suite.mockAuthz.EXPECT().
		RequireRole(suite.orgID, suite.ownerID, models.MembershipRoleOwner, models.MembershipRoleAdmin).
		Return(acting, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.ownerID).
		Return(acting, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		HasOtherOwner(suite.orgID, suite.ownerID).
		Return(false, nil).
		Times(1)

	response, err := suite.membershipService.UpdateRole(suite.orgID, suite.ownerID, suite.ownerID,
		&service.UpdateMemberRoleRequest{Role: "member"}, service.RequestMeta{})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSoleOwner)
}

// TestUpdateRoleSelfDemotionWithCoOwner tests demotion succeeds when another
// owner remains
func (suite *MembershipServiceTestSuite) TestUpdateRoleSelfDemotionWithCoOwner() {
	acting := suite.membership(suite.ownerID, models.MembershipRoleOwner)
	refreshed := *acting
	refreshed.Role = models.MembershipRoleMember
	refreshed.User = models.User{Email: "owner@test.com", Name: "Former Owner"}

	suite.mockAuthz.EXPECT().
		RequireRole(suite.orgID, suite.ownerID, models.MembershipRoleOwner, models.MembershipRoleAdmin).
		Return(acting, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.ownerID).
		Return(acting, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		HasOtherOwner(suite.orgID, suite.ownerID).
		Return(true, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)
	suite.mockActivity.EXPECT().
		Record("membership.update", gomock.Any(), "membership", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetWithUser(suite.orgID, suite.ownerID).
		Return(&refreshed, nil).
		Times(1)

	response, err := suite.membershipService.UpdateRole(suite.orgID, suite.ownerID, suite.ownerID,
		&service.UpdateMemberRoleRequest{Role: "member"}, service.RequestMeta{})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "member", response.Role)
}

// TestUpdateRoleTargetNotFound tests changing the role of a non-member
func (suite *MembershipServiceTestSuite) TestUpdateRoleTargetNotFound() {
	acting := suite.membership(suite.ownerID, models.MembershipRoleOwner)

	suite.mockAuthz.EXPECT().
		RequireRole(suite.orgID, suite.ownerID, models.MembershipRoleOwner, models.MembershipRoleAdmin).
		Return(acting, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.memberUserID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.membershipService.UpdateRole(suite.orgID, suite.memberUserID, suite.ownerID,
		&service.UpdateMemberRoleRequest{Role: "admin"}, service.RequestMeta{})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipNotFound)
}

// TestRemoveMember tests an admin removing a regular member
func (suite *MembershipServiceTestSuite) TestRemoveMember() {
	acting := suite.membership(suite.adminID, models.MembershipRoleAdmin)
	target := suite.membership(suite.memberUserID, models.MembershipRoleMember)

	suite.mockAuthz.EXPECT().
		RequireRole(suite.orgID, suite.adminID, models.MembershipRoleOwner, models.MembershipRoleAdmin).
		Return(acting, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.memberUserID).
		Return(target, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		Delete(target.ID).
		Return(nil).
		Times(1)
	suite.mockActivity.EXPECT().
		Record("membership.delete", gomock.Any(), "membership", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(1)

	err := suite.membershipService.Remove(suite.orgID, suite.memberUserID, suite.adminID, service.RequestMeta{})

	assert.NoError(suite.T(), err)
}

// TestRemoveOwnerByAdmin tests that an admin cannot remove an owner
func (suite *MembershipServiceTestSuite) TestRemoveOwnerByAdmin() {
	acting := suite.membership(suite.adminID, models.MembershipRoleAdmin)
	target := suite.membership(suite.ownerID, models.MembershipRoleOwner)

	suite.mockAuthz.EXPECT().
		RequireRole(suite.orgID, suite.adminID, models.MembershipRoleOwner, models.MembershipRoleAdmin).
		Return(acting, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.ownerID).
		Return(target, nil).
		Times(1)

	err := suite.membershipService.Remove(suite.orgID, suite.ownerID, suite.adminID, service.RequestMeta{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrOwnerRemoveOnly)
}

// TestRemoveSoleOwnerSelf tests that the last owner cannot leave
func (suite *MembershipServiceTestSuite) TestRemoveSoleOwnerSelf() {
	acting := suite.membership(suite.ownerID, models.MembershipRoleOwner)

	suite.mockAuthz.EXPECT().
		RequireRole(suite.orgID, suite.ownerID, models.MembershipRoleOwner, models.MembershipRoleAdmin).
		Return(acting, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.ownerID).
		Return(acting, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		HasOtherOwner(suite.orgID, suite.ownerID).
		Return(false, nil).
		Times(1)

	err := suite.membershipService.Remove(suite.orgID, suite.ownerID, suite.ownerID, service.RequestMeta{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrSoleOwner)
}

// TestRemoveOwnerSelfWithCoOwner tests an owner leaving when another remains
func (suite *MembershipServiceTestSuite) TestRemoveOwnerSelfWithCoOwner() {
	acting := suite.membership(suite.ownerID, models.MembershipRoleOwner)

	suite.mockAuthz.EXPECT().
		RequireRole(suite.orgID, suite.ownerID, models.MembershipRoleOwner, models.MembershipRoleAdmin).
		Return(acting, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.ownerID).
		Return(acting, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		HasOtherOwner(suite.orgID, suite.ownerID).
		Return(true, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		Delete(acting.ID).
		Return(nil).
		Times(1)
	suite.mockActivity.EXPECT().
		Record("membership.delete", gomock.Any(), "membership", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(1)

	err := suite.membershipService.Remove(suite.orgID, suite.ownerID, suite.ownerID, service.RequestMeta{})

	assert.NoError(suite.T(), err)
}

// TestMembershipServiceTestSuite runs the test suite
func TestMembershipServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipServiceTestSuite))
}
