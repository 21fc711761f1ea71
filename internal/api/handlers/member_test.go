package handlers_test

import (
	"net/http"
	"testing"

	"saas-dashboard-backend/internal/api/handlers"
	apperrors "saas-dashboard-backend/internal/errors"
	"saas-dashboard-backend/internal/mocks"
	"saas-dashboard-backend/internal/service"
	"saas-dashboard-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MemberHandlerTestSuite defines the test suite for MemberHandler
type MemberHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockMembershipServiceInterface
	handler     *handlers.MemberHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *MemberHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockMembershipServiceInterface(suite.ctrl)
	suite.handler = handlers.NewMemberHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()

	// Stand in for the auth middleware
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.userID)
		c.Set("email", "user@test.com")
		c.Next()
	})

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.GET("/organizations/:id/members", suite.handler.ListMembers)
	v1.PUT("/organizations/:id/members/:userId", suite.handler.UpdateMemberRole)
	v1.DELETE("/organizations/:id/members/:userId", suite.handler.RemoveMember)
}

// TearDownTest cleans up after each test
func (suite *MemberHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListMembers tests the ListMembers handler
func (suite *MemberHandlerTestSuite) TestListMembers() {
	suite.T().Run("Success", func(t *testing.T) {
		orgID := uuid.New()
		expected := []service.MemberResponse{
			{ID: uuid.New(), OrganizationID: orgID, Role: "owner", UserEmail: "owner@test.com"},
			{ID: uuid.New(), OrganizationID: orgID, Role: "member", UserEmail: "member@test.com"},
		}

		suite.mockService.EXPECT().
			ListMembers(orgID, suite.userID).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+orgID.String()+"/members", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []service.MemberResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response, 2)
	})

	suite.T().Run("NotAMember", func(t *testing.T) {
		orgID := uuid.New()

		suite.mockService.EXPECT().
			ListMembers(orgID, suite.userID).
			Return(nil, apperrors.ErrNotAMember).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+orgID.String()+"/members", nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

// TestUpdateMemberRole tests the UpdateMemberRole handler
func (suite *MemberHandlerTestSuite) TestUpdateMemberRole() {
	suite.T().Run("Success", func(t *testing.T) {
		orgID := uuid.New()
		targetUserID := uuid.New()
		expected := &service.MemberResponse{
			ID:             uuid.New(),
			UserID:         targetUserID,
			OrganizationID: orgID,
			Role:           "admin",
		}

		suite.mockService.EXPECT().
			UpdateRole(orgID, targetUserID, suite.userID, gomock.Any(), gomock.Any()).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT",
			"/api/v1/organizations/"+orgID.String()+"/members/"+targetUserID.String(),
			map[string]interface{}{"role": "admin"})

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.MemberResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "admin", response.Role)
	})

	suite.T().Run("InvalidUserID", func(t *testing.T) {
		orgID := uuid.New()

		recorder := suite.httpSuite.MakeRequest("PUT",
			"/api/v1/organizations/"+orgID.String()+"/members/not-a-uuid",
			map[string]interface{}{"role": "admin"})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("InvalidRole", func(t *testing.T) {
		orgID := uuid.New()
		targetUserID := uuid.New()

		suite.mockService.EXPECT().
			UpdateRole(orgID, targetUserID, suite.userID, gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrInvalidRole).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT",
			"/api/v1/organizations/"+orgID.String()+"/members/"+targetUserID.String(),
			map[string]interface{}{"role": "superuser"})

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})

	suite.T().Run("SoleOwner", func(t *testing.T) {
		orgID := uuid.New()
		targetUserID := uuid.New()

		suite.mockService.EXPECT().
			UpdateRole(orgID, targetUserID, suite.userID, gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrSoleOwner).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT",
			"/api/v1/organizations/"+orgID.String()+"/members/"+targetUserID.String(),
			map[string]interface{}{"role": "member"})

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	suite.T().Run("TargetNotFound", func(t *testing.T) {
		orgID := uuid.New()
		targetUserID := uuid.New()

		suite.mockService.EXPECT().
			UpdateRole(orgID, targetUserID, suite.userID, gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrMembershipNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT",
			"/api/v1/organizations/"+orgID.String()+"/members/"+targetUserID.String(),
			map[string]interface{}{"role": "admin"})

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestRemoveMember tests the RemoveMember handler
func (suite *MemberHandlerTestSuite) TestRemoveMember() {
	suite.T().Run("Success", func(t *testing.T) {
		orgID := uuid.New()
		targetUserID := uuid.New()

		suite.mockService.EXPECT().
			Remove(orgID, targetUserID, suite.userID, gomock.Any()).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE",
			"/api/v1/organizations/"+orgID.String()+"/members/"+targetUserID.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("OwnerRemovalByAdmin", func(t *testing.T) {
		orgID := uuid.New()
		targetUserID := uuid.New()

		suite.mockService.EXPECT().
			Remove(orgID, targetUserID, suite.userID, gomock.Any()).
			Return(apperrors.ErrOwnerRemoveOnly).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE",
			"/api/v1/organizations/"+orgID.String()+"/members/"+targetUserID.String(), nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("SoleOwner", func(t *testing.T) {
		orgID := uuid.New()

		suite.mockService.EXPECT().
			Remove(orgID, suite.userID, suite.userID, gomock.Any()).
			Return(apperrors.ErrSoleOwner).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE",
			"/api/v1/organizations/"+orgID.String()+"/members/"+suite.userID.String(), nil)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

// TestMemberHandlerTestSuite runs the test suite
func TestMemberHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MemberHandlerTestSuite))
}
