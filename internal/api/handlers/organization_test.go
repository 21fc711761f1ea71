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

// OrganizationHandlerTestSuite defines the test suite for OrganizationHandler
type OrganizationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockOrganizationServiceInterface
	handler     *handlers.OrganizationHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *OrganizationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)
	suite.handler = handlers.NewOrganizationHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()

	// Stand in for the auth middleware
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.userID)
		c.Set("email", "user@test.com")
		c.Next()
	})

	v1 := suite.httpSuite.Router.Group("/api/v1")
	organizations := v1.Group("/organizations")
	{
		organizations.POST("", suite.handler.CreateOrganization)
		organizations.GET("", suite.handler.ListMyOrganizations)
		organizations.DELETE("/:id", suite.handler.DeleteOrganization)
	}
}

// TearDownTest cleans up after each test
func (suite *OrganizationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateOrganization tests the CreateOrganization handler
func (suite *OrganizationHandlerTestSuite) TestCreateOrganization() {
	suite.T().Run("Success", func(t *testing.T) {
		orgID := uuid.New()
		expectedResponse := &service.OrganizationResponse{
			ID:        orgID,
			Name:      "Acme Inc",
			CreatedAt: "2026-01-01T00:00:00Z",
		}

		suite.mockService.EXPECT().
			Create(suite.userID, gomock.Any(), gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations",
			map[string]interface{}{"name": "Acme Inc"})

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.OrganizationResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, orgID, response.ID)
		assert.Equal(t, "Acme Inc", response.Name)
	})

	suite.T().Run("ValidationError", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(suite.userID, gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewValidationError("name", "name is required")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations",
			map[string]interface{}{"name": ""})

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})

	suite.T().Run("InvalidJSON", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", "not an object")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestListMyOrganizations tests the ListMyOrganizations handler
func (suite *OrganizationHandlerTestSuite) TestListMyOrganizations() {
	expected := []service.OrganizationResponse{
		{ID: uuid.New(), Name: "Acme Inc"},
		{ID: uuid.New(), Name: "Globex"},
	}

	suite.mockService.EXPECT().
		ListMine(suite.userID).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.OrganizationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 2)
}

// TestDeleteOrganization tests the DeleteOrganization handler
func (suite *OrganizationHandlerTestSuite) TestDeleteOrganization() {
	suite.T().Run("Success", func(t *testing.T) {
		orgID := uuid.New()

		suite.mockService.EXPECT().
			Delete(orgID, suite.userID, gomock.Any()).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/organizations/"+orgID.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("InvalidID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/organizations/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("NotAMember", func(t *testing.T) {
		orgID := uuid.New()

		suite.mockService.EXPECT().
			Delete(orgID, suite.userID, gomock.Any()).
			Return(apperrors.ErrNotAMember).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/organizations/"+orgID.String(), nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("NotOwner", func(t *testing.T) {
		orgID := uuid.New()

		suite.mockService.EXPECT().
			Delete(orgID, suite.userID, gomock.Any()).
			Return(apperrors.ErrOwnerDeleteOnly).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/organizations/"+orgID.String(), nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		orgID := uuid.New()

		suite.mockService.EXPECT().
			Delete(orgID, suite.userID, gomock.Any()).
			Return(apperrors.ErrOrganizationNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/organizations/"+orgID.String(), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestOrganizationHandlerTestSuite runs the test suite
func TestOrganizationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationHandlerTestSuite))
}
