package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/modelproof/biasradar-api/internal/config"
	"github.com/modelproof/biasradar-api/internal/domain"
	"github.com/modelproof/biasradar-api/internal/mocks"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo *mocks.Repository
	mockOrg  *mocks.OrganizationRepository
	cfg      *config.Config
	service  *AuthService
	now      time.Time
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockOrg = new(mocks.OrganizationRepository)
	s.mockRepo.On("Organization").Return(s.mockOrg)

	s.cfg = &config.Config{
		FreeDailyLimit: 20,
		QuotaWindow:    24 * time.Hour,
	}

	s.now = time.Date(2025, 7, 17, 12, 0, 0, 0, time.UTC)
	s.service = NewAuthService(s.mockRepo, s.cfg)
	s.service.now = func() time.Time { return s.now }
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) TestAuthenticate_MissingKey() {
	_, err := s.service.Authenticate(context.Background(), "")

	s.Equal(KindUnauthenticated, KindOf(err))
	s.mockOrg.AssertNotCalled(s.T(), "GetByAPIKey", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestAuthenticate_UnknownKey() {
	ctx := context.Background()
	s.mockOrg.On("GetByAPIKey", ctx, "bdr_unknown").Return(nil, gorm.ErrRecordNotFound)

	_, err := s.service.Authenticate(ctx, "bdr_unknown")

	s.Equal(KindUnauthenticated, KindOf(err))
	s.mockOrg.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestAuthenticate_FreshWindowSkipsReset() {
	ctx := context.Background()
	org := &domain.Organization{
		ID:           "org1",
		APIKey:       "bdr_abc",
		RequestsMade: 5,
		LastReset:    s.now.Add(-1 * time.Hour),
	}
	s.mockOrg.On("GetByAPIKey", ctx, "bdr_abc").Return(org, nil)

	got, err := s.service.Authenticate(ctx, "bdr_abc")

	s.NoError(err)
	s.Equal(5, got.RequestsMade)
	s.mockOrg.AssertNotCalled(s.T(), "ResetUsage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestAuthenticate_ResetsElapsedWindow() {
	ctx := context.Background()
	org := &domain.Organization{
		ID:           "org1",
		APIKey:       "bdr_abc",
		RequestsMade: 20,
		LastReset:    s.now.Add(-25 * time.Hour),
	}
	s.mockOrg.On("GetByAPIKey", ctx, "bdr_abc").Return(org, nil)
	s.mockOrg.On("ResetUsage", ctx, "org1", s.now, s.now.Add(-24*time.Hour)).Return(true, nil)

	got, err := s.service.Authenticate(ctx, "bdr_abc")

	s.NoError(err)
	s.Equal(0, got.RequestsMade)
	s.Equal(s.now, got.LastReset)
	s.mockOrg.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestResetWindow_IdempotentWithinWindow() {
	ctx := context.Background()
	org := &domain.Organization{
		ID:           "org1",
		RequestsMade: 20,
		LastReset:    s.now.Add(-25 * time.Hour),
	}
	s.mockOrg.On("ResetUsage", ctx, "org1", s.now, s.now.Add(-24*time.Hour)).Return(true, nil).Once()

	s.NoError(s.service.ResetWindow(ctx, org))
	s.Equal(0, org.RequestsMade)
	s.Equal(s.now, org.LastReset)

	// Second call inside the fresh window must not touch the store.
	s.NoError(s.service.ResetWindow(ctx, org))
	s.Equal(0, org.RequestsMade)
	s.Equal(s.now, org.LastReset)
	s.mockOrg.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestResetWindow_LostRaceStillZeroes() {
	ctx := context.Background()
	org := &domain.Organization{
		ID:           "org1",
		RequestsMade: 20,
		LastReset:    s.now.Add(-25 * time.Hour),
	}
	// Another request won the conditional update first.
	s.mockOrg.On("ResetUsage", ctx, "org1", s.now, s.now.Add(-24*time.Hour)).Return(false, nil)

	s.NoError(s.service.ResetWindow(ctx, org))
	s.Equal(0, org.RequestsMade)
}
