package service_test

import (
	"testing"
	"time"

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

// InvitationServiceTestSuite defines the test suite for InvitationService
type InvitationServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockInvitationRepo *mocks.MockInvitationRepositoryInterface
	mockMembershipRepo *mocks.MockMembershipRepositoryInterface
	mockUserRepo       *mocks.MockUserRepositoryInterface
	mockOrgRepo        *mocks.MockOrganizationRepositoryInterface
	mockAuthz          *mocks.MockAuthzServiceInterface
	mockEmail          *mocks.MockEmailSenderInterface
	mockNotifier       *mocks.MockInvitationNotifierInterface
	mockActivity       *mocks.MockActivityRecorderInterface
	invitationService  *service.InvitationService
	validator          *validator.Validate

	orgID     uuid.UUID
	inviterID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *InvitationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockInvitationRepo = mocks.NewMockInvitationRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockAuthz = mocks.NewMockAuthzServiceInterface(suite.ctrl)
	suite.mockEmail = mocks.NewMockEmailSenderInterface(suite.ctrl)
	suite.mockNotifier = mocks.NewMockInvitationNotifierInterface(suite.ctrl)
	suite.mockActivity = mocks.NewMockActivityRecorderInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.invitationService = service.NewInvitationService(
		suite.mockInvitationRepo, suite.mockMembershipRepo, suite.mockUserRepo, suite.mockOrgRepo,
		suite.mockAuthz, suite.mockEmail, suite.mockNotifier, suite.mockActivity, suite.validator)

	suite.orgID = uuid.New()
	suite.inviterID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *InvitationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *InvitationServiceTestSuite) adminMembership() *models.Membership {
	return &models.Membership{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: suite.orgID,
		UserID:         suite.inviterID,
		Role:           models.MembershipRoleAdmin,
	}
}

func (suite *InvitationServiceTestSuite) pendingInvitation(email string, role models.MembershipRole) *models.Invitation {
	expiresAt := time.Now().Add(7 * 24 * time.Hour)
	return &models.Invitation{
		BaseModel:      models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
		OrganizationID: suite.orgID,
		Email:          email,
		Role:           role,
		Token:          uuid.NewString(),
		Status:         models.InvitationStatusPending,
		ExpiresAt:      &expiresAt,
	}
}

// expectInviterLookup satisfies the inviter-name resolution used when
// dispatching side effects
func (suite *InvitationServiceTestSuite) expectInviterLookup() {
	suite.mockUserRepo.EXPECT().
		GetByID(suite.inviterID).
		Return(&models.User{BaseModel: models.BaseModel{ID: suite.inviterID}, Name: "Inviter", Email: "inviter@test.com"}, nil).
		Times(1)
}

// TestCreateInvitation tests the happy path: a fresh email, no prior
// invitation, email + notification side effects dispatched
func (suite *InvitationServiceTestSuite) TestCreateInvitation() {
	req := &service.CreateInvitationRequest{Email: "newcomer@test.com", Role: "member"}
	targetUser := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: req.Email, Name: "Newcomer"}
	org := &models.Organization{BaseModel: models.BaseModel{ID: suite.orgID}, Name: "Acme Inc"}

	suite.mockAuthz.EXPECT().
		RequireRole(suite.orgID, suite.inviterID, models.MembershipRoleOwner, models.MembershipRoleAdmin).
		Return(suite.adminMembership(), nil).
		Times(1)
	suite.mockOrgRepo.EXPECT().GetByID(suite.orgID).Return(org, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByEmail(req.Email).Return(targetUser, nil).Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, targetUser.ID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockInvitationRepo.EXPECT().
		GetPendingByOrgAndEmail(suite.orgID, req.Email).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockInvitationRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(invitation *models.Invitation) error {
			invitation.ID = uuid.New()
			return nil
		}).
		Times(1)
	suite.mockActivity.EXPECT().
		Record("invitation.create", gomock.Any(), "invitation", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(1)
	suite.expectInviterLookup()

	// Email is dispatched from a goroutine; synchronize on its delivery
	emailSent := make(chan struct{})
	suite.mockEmail.EXPECT().
		SendInvitationEmail(req.Email, org.Name, "Inviter", models.MembershipRoleMember, gomock.Any()).
		DoAndReturn(func(email, orgName, inviterName string, role models.MembershipRole, token string) error {
			close(emailSent)
			return nil
		}).
		Times(1)
	suite.mockNotifier.EXPECT().
		NotifyInvitation(targetUser.ID, org.Name, "Inviter", models.MembershipRoleMember, gomock.Any()).
		Times(1)

	response, err := suite.invitationService.Create(suite.orgID, suite.inviterID, req, service.RequestMeta{})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "pending", response.Status)
	assert.Equal(suite.T(), req.Email, response.Email)
	assert.NotEmpty(suite.T(), response.Token)
	assert.NotNil(suite.T(), response.ExpiresAt)

	select {
	case <-emailSent:
	case <-time.After(2 * time.Second):
		suite.T().Fatal("invitation email was not dispatched")
	}
}

// TestCreateInvitationUnknownEmail tests inviting an email with no account:
// no in-app notification is created
func (suite *InvitationServiceTestSuite) TestCreateInvitationUnknownEmail() {
	req := &service.CreateInvitationRequest{Email: "stranger@test.com", Role: "member"}
	org := &models.Organization{BaseModel: models.BaseModel{ID: suite.orgID}, Name: "Acme Inc"}

	suite.mockAuthz.EXPECT().
		RequireRole(suite.orgID, suite.inviterID, models.MembershipRoleOwner, models.MembershipRoleAdmin).
		Return(suite.adminMembership(), nil).
		Times(1)
	suite.mockOrgRepo.EXPECT().GetByID(suite.orgID).Return(org, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByEmail(req.Email).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockInvitationRepo.EXPECT().
		GetPendingByOrgAndEmail(suite.orgID, req.Email).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockInvitationRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	suite.mockActivity.EXPECT().
		Record("invitation.create", gomock.Any(), "invitation", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(1)
	suite.expectInviterLookup()

	emailSent := make(chan struct{})
	suite.mockEmail.EXPECT().
		SendInvitationEmail(req.Email, org.Name, "Inviter", models.MembershipRoleMember, gomock.Any()).
		DoAndReturn(func(email, orgName, inviterName string, role models.MembershipRole, token string) error {
			close(emailSent)
			return nil
		}).
		Times(1)

	response, err := suite.invitationService.Create(suite.orgID, suite.inviterID, req, service.RequestMeta{})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)

	select {
	case <-emailSent:
	case <-time.After(2 * time.Second):
		suite.T().Fatal("invitation email was not dispatched")
	}
}

// TestCreateInvitationRequiresElevatedRole tests that plain members cannot invite
func (suite *InvitationServiceTestSuite) TestCreateInvitationRequiresElevatedRole() {
	req := &service.CreateInvitationRequest{Email: "newcomer@test.com", Role: "member"}

	suite.mockAuthz.EXPECT().
		RequireRole(suite.orgID, suite.inviterID, models.MembershipRoleOwner, models.MembershipRoleAdmin).
		Return(nil, apperrors.NewInsufficientRoleError("owner, admin", "member")).
		Times(1)

	response, err := suite.invitationService.Create(suite.orgID, suite.inviterID, req, service.RequestMeta{})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestCreateInvitationInvalidRole tests a role outside the closed enum
func (suite *InvitationServiceTestSuite) TestCreateInvitationInvalidRole() {
	req := &service.CreateInvitationRequest{Email: "newcomer@test.com", Role: "superuser"}

	suite.mockAuthz.EXPECT().
		RequireRole(suite.orgID, suite.inviterID, models.MembershipRoleOwner, models.MembershipRoleAdmin).
		Return(suite.adminMembership(), nil).
		Times(1)

	response, err := suite.invitationService.Create(suite.orgID, suite.inviterID, req, service.RequestMeta{})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRole)
}

// TestCreateInvitationOwnerRoleByAdmin tests that only owners mint owners
func (suite *InvitationServiceTestSuite) TestCreateInvitationOwnerRoleByAdmin() {
	req := &service.CreateInvitationRequest{Email: "newcomer@test.com", Role: "owner"}

	suite.mockAuthz.EXPECT().
		RequireRole(suite.orgID, suite.inviterID, models.MembershipRoleOwner, models.MembershipRoleAdmin).
		Return(suite.adminMembership(), nil).
		Times(1)

	response, err := suite.invitationService.Create(suite.orgID, suite.inviterID, req, service.RequestMeta{})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOwnerRoleInviteOnly)
}

// TestCreateInvitationAlreadyMember tests inviting an existing member
func (suite *InvitationServiceTestSuite) TestCreateInvitationAlreadyMember() {
	req := &service.CreateInvitationRequest{Email: "member@test.com", Role: "member"}
	targetUser := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: req.Email}
	org := &models.Organization{BaseModel: models.BaseModel{ID: suite.orgID}, Name: "Acme Inc"}

	suite.mockAuthz.EXPECT().
		RequireRole(suite.orgID, suite.inviterID, models.MembershipRoleOwner, models.MembershipRoleAdmin).
		Return(suite.adminMembership(), nil).
		Times(1)
	suite.mockOrgRepo.EXPECT().GetByID(suite.orgID).Return(org, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByEmail(req.Email).Return(targetUser, nil).Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, targetUser.ID).
		Return(&models.Membership{OrganizationID: suite.orgID, UserID: targetUser.ID, Role: models.MembershipRoleMember}, nil).
		Times(1)

	response, err := suite.invitationService.Create(suite.orgID, suite.inviterID, req, service.RequestMeta{})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyMember)
}

// TestCreateInvitationDuplicatePending tests the duplicate pending guard
func (suite *InvitationServiceTestSuite) TestCreateInvitationDuplicatePending() {
	req := &service.CreateInvitationRequest{Email: "newcomer@test.com", Role: "member"}
	org := &models.Organization{BaseModel: models.BaseModel{ID: suite.orgID}, Name: "Acme Inc"}

	suite.mockAuthz.EXPECT().
		RequireRole(suite.orgID, suite.inviterID, models.MembershipRoleOwner, models.MembershipRoleAdmin).
		Return(suite.adminMembership(), nil).
		Times(1)
	suite.mockOrgRepo.EXPECT().GetByID(suite.orgID).Return(org, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByEmail(req.Email).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockInvitationRepo.EXPECT().
		GetPendingByOrgAndEmail(suite.orgID, req.Email).
		Return(suite.pendingInvitation(req.Email, models.MembershipRoleMember), nil).
		Times(1)

	response, err := suite.invitationService.Create(suite.orgID, suite.inviterID, req, service.RequestMeta{})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationExists)
}

// TestCreateInvitationStalePendingAllowsReinvite tests that a pending
// invitation past its expiry does not block a fresh one
func (suite *InvitationServiceTestSuite) TestCreateInvitationStalePendingAllowsReinvite() {
	req := &service.CreateInvitationRequest{Email: "newcomer@test.com", Role: "member"}
	org := &models.Organization{BaseModel: models.BaseModel{ID: suite.orgID}, Name: "Acme Inc"}
	stale := suite.pendingInvitation(req.Email, models.MembershipRoleMember)
	staleExpiry := time.Now().Add(-time.Hour)
	stale.ExpiresAt = &staleExpiry

	suite.mockAuthz.EXPECT().
		RequireRole(suite.orgID, suite.inviterID, models.MembershipRoleOwner, models.MembershipRoleAdmin).
		Return(suite.adminMembership(), nil).
		Times(1)
	suite.mockOrgRepo.EXPECT().GetByID(suite.orgID).Return(org, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByEmail(req.Email).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockInvitationRepo.EXPECT().
		GetPendingByOrgAndEmail(suite.orgID, req.Email).
		Return(stale, nil).
		Times(1)
	suite.mockInvitationRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	suite.mockActivity.EXPECT().
		Record("invitation.create", gomock.Any(), "invitation", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(1)
	suite.expectInviterLookup()

	emailSent := make(chan struct{})
	suite.mockEmail.EXPECT().
		SendInvitationEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(email, orgName, inviterName string, role models.MembershipRole, token string) error {
			close(emailSent)
			return nil
		}).
		Times(1)

	response, err := suite.invitationService.Create(suite.orgID, suite.inviterID, req, service.RequestMeta{})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)

	select {
	case <-emailSent:
	case <-time.After(2 * time.Second):
		suite.T().Fatal("invitation email was not dispatched")
	}
}

// TestAcceptInvitation tests the happy path: transition + membership in one
// repository transaction
func (suite *InvitationServiceTestSuite) TestAcceptInvitation() {
	userID := uuid.New()
	invitation := suite.pendingInvitation("newcomer@test.com", models.MembershipRoleAdmin)

	suite.mockInvitationRepo.EXPECT().GetByToken(invitation.Token).Return(invitation, nil).Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, userID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockInvitationRepo.EXPECT().
		Accept(invitation, gomock.Any()).
		DoAndReturn(func(inv *models.Invitation, membership *models.Membership) error {
			inv.Status = models.InvitationStatusAccepted
			membership.ID = uuid.New()
			return nil
		}).
		Times(1)
	suite.mockActivity.EXPECT().
		Record("invitation.accept", gomock.Any(), "membership", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(1)
	suite.mockActivity.EXPECT().
		Record("membership.create", gomock.Any(), "membership", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(1)
	suite.mockUserRepo.EXPECT().
		GetByID(userID).
		Return(&models.User{BaseModel: models.BaseModel{ID: userID}, Email: "newcomer@test.com", Name: "Newcomer"}, nil).
		Times(1)

	response, err := suite.invitationService.Accept(userID, "newcomer@test.com",
		&service.AcceptInvitationRequest{Token: invitation.Token}, service.RequestMeta{})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "admin", response.Role)
	assert.Equal(suite.T(), suite.orgID, response.OrganizationID)
}

// TestAcceptInvitationUserLookupFailure tests that a failed user lookup is
// reported before anything is written, leaving the invitation pending
func (suite *InvitationServiceTestSuite) TestAcceptInvitationUserLookupFailure() {
	userID := uuid.New()
	invitation := suite.pendingInvitation("newcomer@test.com", models.MembershipRoleMember)

	suite.mockInvitationRepo.EXPECT().GetByToken(invitation.Token).Return(invitation, nil).Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, userID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockUserRepo.EXPECT().GetByID(userID).Return(nil, assert.AnError).Times(1)
	// No Accept expectation: the transaction must not run

	response, err := suite.invitationService.Accept(userID, "newcomer@test.com",
		&service.AcceptInvitationRequest{Token: invitation.Token}, service.RequestMeta{})

	assert.Nil(suite.T(), response)
	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), models.InvitationStatusPending, invitation.Status)
}

// TestAcceptInvitationNotFound tests an unknown token
func (suite *InvitationServiceTestSuite) TestAcceptInvitationNotFound() {
	suite.mockInvitationRepo.EXPECT().
		GetByToken("no-such-token").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.invitationService.Accept(uuid.New(), "user@test.com",
		&service.AcceptInvitationRequest{Token: "no-such-token"}, service.RequestMeta{})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationNotFound)
}

// TestAcceptInvitationAlreadyAccepted tests that terminal states are immutable
func (suite *InvitationServiceTestSuite) TestAcceptInvitationAlreadyAccepted() {
	invitation := suite.pendingInvitation("newcomer@test.com", models.MembershipRoleMember)
	invitation.Status = models.InvitationStatusAccepted

	suite.mockInvitationRepo.EXPECT().GetByToken(invitation.Token).Return(invitation, nil).Times(1)

	response, err := suite.invitationService.Accept(uuid.New(), "newcomer@test.com",
		&service.AcceptInvitationRequest{Token: invitation.Token}, service.RequestMeta{})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsInvalidState(err))
	assert.Contains(suite.T(), err.Error(), "accepted")
}

// TestAcceptInvitationEmailMismatch tests that invitations are email-bound
func (suite *InvitationServiceTestSuite) TestAcceptInvitationEmailMismatch() {
	invitation := suite.pendingInvitation("intended@test.com", models.MembershipRoleMember)

	suite.mockInvitationRepo.EXPECT().GetByToken(invitation.Token).Return(invitation, nil).Times(1)

	response, err := suite.invitationService.Accept(uuid.New(), "interloper@test.com",
		&service.AcceptInvitationRequest{Token: invitation.Token}, service.RequestMeta{})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationEmailMismatch)
}

// TestAcceptInvitationExpired tests lazy expiry: the accept attempt persists
// the pending to expired transition and reports the staleness
func (suite *InvitationServiceTestSuite) TestAcceptInvitationExpired() {
	userID := uuid.New()
	invitation := suite.pendingInvitation("newcomer@test.com", models.MembershipRoleMember)
	pastExpiry := time.Now().Add(-time.Minute)
	invitation.ExpiresAt = &pastExpiry

	suite.mockInvitationRepo.EXPECT().GetByToken(invitation.Token).Return(invitation, nil).Times(1)
	suite.mockInvitationRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(inv *models.Invitation) error {
			assert.Equal(suite.T(), models.InvitationStatusExpired, inv.Status)
			return nil
		}).
		Times(1)
	suite.mockActivity.EXPECT().
		Record("invitation.expire", gomock.Any(), "invitation", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(1)

	response, err := suite.invitationService.Accept(userID, "newcomer@test.com",
		&service.AcceptInvitationRequest{Token: invitation.Token}, service.RequestMeta{})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationExpired)
}

// TestAcceptInvitationSecondAttemptAfterExpiry tests that once expired has
// been persisted, later attempts report the terminal state, not expiry
func (suite *InvitationServiceTestSuite) TestAcceptInvitationSecondAttemptAfterExpiry() {
	invitation := suite.pendingInvitation("newcomer@test.com", models.MembershipRoleMember)
	invitation.Status = models.InvitationStatusExpired

	suite.mockInvitationRepo.EXPECT().GetByToken(invitation.Token).Return(invitation, nil).Times(1)

	response, err := suite.invitationService.Accept(uuid.New(), "newcomer@test.com",
		&service.AcceptInvitationRequest{Token: invitation.Token}, service.RequestMeta{})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsInvalidState(err))
	assert.False(suite.T(), apperrors.IsExpired(err))
}

// TestAcceptInvitationAlreadyMember tests that accepting while already a
// member closes out the invitation and reports the conflict
func (suite *InvitationServiceTestSuite) TestAcceptInvitationAlreadyMember() {
	userID := uuid.New()
	invitation := suite.pendingInvitation("newcomer@test.com", models.MembershipRoleMember)

	suite.mockInvitationRepo.EXPECT().GetByToken(invitation.Token).Return(invitation, nil).Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, userID).
		Return(&models.Membership{OrganizationID: suite.orgID, UserID: userID, Role: models.MembershipRoleMember}, nil).
		Times(1)
	suite.mockInvitationRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(inv *models.Invitation) error {
			assert.Equal(suite.T(), models.InvitationStatusAccepted, inv.Status)
			return nil
		}).
		Times(1)

	response, err := suite.invitationService.Accept(userID, "newcomer@test.com",
		&service.AcceptInvitationRequest{Token: invitation.Token}, service.RequestMeta{})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyMember)
}

// TestListPendingForEmail tests the pending listing projection
func (suite *InvitationServiceTestSuite) TestListPendingForEmail() {
	email := "newcomer@test.com"
	invitations := []models.Invitation{
		*suite.pendingInvitation(email, models.MembershipRoleMember),
		*suite.pendingInvitation(email, models.MembershipRoleAdmin),
	}

	suite.mockInvitationRepo.EXPECT().
		ListPendingByEmail(email, gomock.Any()).
		Return(invitations, nil).
		Times(1)

	responses, err := suite.invitationService.ListPendingForEmail(email)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 2)
	assert.Equal(suite.T(), "pending", responses[0].Status)
}

// TestInvitationServiceTestSuite runs the test suite
func TestInvitationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvitationServiceTestSuite))
}
