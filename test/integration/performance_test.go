package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/modelproof/biasradar-api/internal/api"
	"github.com/modelproof/biasradar-api/internal/api/dto"
	"github.com/modelproof/biasradar-api/internal/domain"
	"github.com/modelproof/biasradar-api/internal/mocks"
	"github.com/modelproof/biasradar-api/internal/utils"
)

func BenchmarkScan(b *testing.B) {
	gin.SetMode(gin.TestMode)
	mockService := new(mocks.AnalysisService)
	handler := api.NewAnalysisHandler(mockService)

	org := &domain.Organization{
		ID:           "bench-org",
		Email:        "bench@example.com",
		RequestsMade: 1,
	}

	// Stand-in for the auth middleware.
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(string(utils.OrganizationKey), org)
		c.Next()
	})
	router.POST("/scan", handler.Scan)

	mockService.On("Scan", mock.Anything, org, mock.AnythingOfType("dto.ScanRequest")).Return(
		dto.AnalysisResponse{
			Success:           true,
			Data:              json.RawMessage(`{"biases_detected":[],"summary":{"total_issues":0}}`),
			RequestsRemaining: dto.RequestsRemaining{Count: 18},
		}, nil)

	payloadBytes, _ := json.Marshal(dto.ScanRequest{
		Text:      "Our engineers are hard working and our salespeople are aggressive",
		BiasTypes: []string{"gender", "language_tone"},
	})

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest("POST", "/scan", bytes.NewBuffer(payloadBytes))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				b.Errorf("Expected status 200, got %d", w.Code)
			}
		}
	})
}

func BenchmarkListOrganizations(b *testing.B) {
	gin.SetMode(gin.TestMode)
	mockService := new(MockOrganizationService)
	handler := api.NewOrganizationHandler(mockService)

	router := gin.New()
	router.GET("/admin/organizations", handler.ListOrganizations)

	orgs := []dto.OrganizationResponse{
		{ID: "org1", Name: "Acme Corp", APIKey: "bdr_0123456789abcdef..."},
		{ID: "org2", Name: "Beta Inc", APIKey: "bdr_fedcba9876543210..."},
	}
	mockService.On("List", mock.Anything).Return(orgs, nil)

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest("GET", "/admin/organizations", nil)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				b.Errorf("Expected status 200, got %d", w.Code)
			}
		}
	})
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
	return args.Get(0).([]dto.OrganizationResponse), args.Error(1)
}
