package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/modelproof/biasradar-api/internal/api/dto"
	"github.com/modelproof/biasradar-api/internal/service"
)

type OrganizationHandlerTestSuite struct {
	suite.Suite
	mockService *MockOrganizationService
	handler     *OrganizationHandler
}

type MockOrganizationService struct {
	mock.Mock
}

func (m *MockOrganizationService) Register(ctx context.Context, req dto.RegisterRequest) (dto.OrganizationResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.OrganizationResponse), args.Error(1)
}

func (m *MockOrganizationService) Revoke(ctx context.Context, email string) (dto.OrganizationResponse, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(dto.OrganizationResponse), args.Error(1)
}

func (m *MockOrganizationService) SetPlan(ctx context.Context, email string, isPaid bool) (dto.OrganizationResponse, error) {
	args := m.Called(ctx, email, isPaid)
	return args.Get(0).(dto.OrganizationResponse), args.Error(1)
}

func (m *MockOrganizationService) List(ctx context.Context) ([]dto.OrganizationResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.OrganizationResponse), args.Error(1)
}

func (s *OrganizationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockOrganizationService)
	s.handler = NewOrganizationHandler(s.mockService)
}

func TestOrganizationHandler(t *testing.T) {
	suite.Run(t, new(OrganizationHandlerTestSuite))
}

func (s *OrganizationHandlerTestSuite) jsonRequest(method, path string, body any) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		s.NoError(json.NewEncoder(&buf).Encode(body))
	}
	c.Request, _ = http.NewRequest(method, path, &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func (s *OrganizationHandlerTestSuite) TestRegister_Success() {
	req := dto.RegisterRequest{Name: "Acme Corp", Email: "acme@example.com"}
	created := dto.OrganizationResponse{
		ID:     "org1",
		Name:   req.Name,
		Email:  req.Email,
		APIKey: "bdr_0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
	}
	s.mockService.On("Register", mock.Anything, req).Return(created, nil)

	w, c := s.jsonRequest(http.MethodPost, "/api/v1/register", req)
	s.handler.Register(c)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.RegisterResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Success)
	s.Equal(created.APIKey, resp.Organization.APIKey)
	s.mockService.AssertExpectations(s.T())
}

func (s *OrganizationHandlerTestSuite) TestRegister_MissingBody() {
	w, c := s.jsonRequest(http.MethodPost, "/api/v1/register", nil)
	s.handler.Register(c)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Register", mock.Anything, mock.Anything)
}

func (s *OrganizationHandlerTestSuite) TestRegister_Conflict() {
	req := dto.RegisterRequest{Name: "Acme Corp", Email: "acme@example.com"}
	s.mockService.On("Register", mock.Anything, req).Return(
		dto.OrganizationResponse{}, service.ErrConflict("Organization with this email already exists"))

	w, c := s.jsonRequest(http.MethodPost, "/api/v1/register", req)
	s.handler.Register(c)

	s.Equal(http.StatusConflict, w.Code)
	var body dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("Organization with this email already exists", body.Error)
}

func (s *OrganizationHandlerTestSuite) TestRevoke_Success() {
	revoked := dto.OrganizationResponse{
		ID:    "org1",
		Name:  "Acme Corp",
		Email: "acme@example.com",
	}
	s.mockService.On("Revoke", mock.Anything, "acme@example.com").Return(revoked, nil)

	w, c := s.jsonRequest(http.MethodPost, "/api/v1/revoke", dto.RevokeRequest{Email: "acme@example.com"})
	s.handler.Revoke(c)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.RevokeResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Success)
	s.Equal("API key for Acme Corp (acme@example.com) has been revoked", resp.Message)
}

func (s *OrganizationHandlerTestSuite) TestRevoke_NotFound() {
	s.mockService.On("Revoke", mock.Anything, "missing@example.com").Return(
		dto.OrganizationResponse{}, service.ErrNotFound("Organization not found"))

	w, c := s.jsonRequest(http.MethodPost, "/api/v1/revoke", dto.RevokeRequest{Email: "missing@example.com"})
	s.handler.Revoke(c)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *OrganizationHandlerTestSuite) TestUpgrade_Success() {
	upgraded := dto.OrganizationResponse{
		ID:     "org1",
		Email:  "acme@example.com",
		IsPaid: true,
	}
	s.mockService.On("SetPlan", mock.Anything, "acme@example.com", true).Return(upgraded, nil)

	isPaid := true
	w, c := s.jsonRequest(http.MethodPatch, "/api/v1/upgrade", dto.UpgradeRequest{
		Email:  "acme@example.com",
		IsPaid: &isPaid,
	})
	s.handler.Upgrade(c)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.UpgradeResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Organization.IsPaid)
	s.mockService.AssertExpectations(s.T())
}

func (s *OrganizationHandlerTestSuite) TestUpgrade_MissingIsPaid() {
	w, c := s.jsonRequest(http.MethodPatch, "/api/v1/upgrade", map[string]string{"email": "acme@example.com"})
	s.handler.Upgrade(c)

	s.Equal(http.StatusBadRequest, w.Code)
	var body dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("Email and is_paid (boolean) are required", body.Error)
	s.mockService.AssertNotCalled(s.T(), "SetPlan", mock.Anything, mock.Anything, mock.Anything)
}

func (s *OrganizationHandlerTestSuite) TestListOrganizations_Success() {
	orgs := []dto.OrganizationResponse{
		{ID: "org2", Name: "Beta Inc", APIKey: "bdr_ffffffffffffffff..."},
		{ID: "org1", Name: "Acme Corp", APIKey: "bdr_0000000000000000..."},
	}
	s.mockService.On("List", mock.Anything).Return(orgs, nil)

	w, c := s.jsonRequest(http.MethodGet, "/api/admin/organizations", nil)
	s.handler.ListOrganizations(c)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ListOrganizationsResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Success)
	s.Len(resp.Organizations, 2)
	s.Equal("org2", resp.Organizations[0].ID)
}

func (s *OrganizationHandlerTestSuite) TestListOrganizations_StoreFailure() {
	s.mockService.On("List", mock.Anything).Return(nil, service.ErrInternal("Internal server error"))

	w, c := s.jsonRequest(http.MethodGet, "/api/admin/organizations", nil)
	s.handler.ListOrganizations(c)

	s.Equal(http.StatusInternalServerError, w.Code)
}
