package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/modelproof/biasradar-api/internal/config"
	"github.com/modelproof/biasradar-api/internal/domain"
	"github.com/modelproof/biasradar-api/internal/repository"
)

// AuthService resolves API keys to organizations. Authentication is the one
// read path that may write: an elapsed quota window is reset before the
// organization is handed to quota checks, so every caller sees a current
// counter.
type AuthService struct {
	repo repository.Repository
	cfg  *config.Config
	now  func() time.Time
}

func NewAuthService(repo repository.Repository, cfg *config.Config) *AuthService {
	return &AuthService{
		repo: repo,
		cfg:  cfg,
		now:  time.Now,
	}
}

// Authenticate matches the credential against stored keys by exact equality
// and applies the window reset. The returned record reflects any reset.
func (s *AuthService) Authenticate(ctx context.Context, apiKey string) (*domain.Organization, error) {
	if apiKey == "" {
		return nil, ErrUnauthenticated("Missing or invalid Authorization header")
	}

	org, err := s.repo.Organization().GetByAPIKey(ctx, apiKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthenticated("Invalid API key")
		}
		return nil, ErrInternal("failed to look up API key")
	}

	if err := s.ResetWindow(ctx, org); err != nil {
		return nil, err
	}

	return org, nil
}

// ResetWindow zeroes the usage counter when the quota window has elapsed.
// The store-level update is conditional on last_reset, so concurrent calls
// within one window reset at most once; calls inside a live window are
// no-ops.
func (s *AuthService) ResetWindow(ctx context.Context, org *domain.Organization) error {
	now := s.now()
	if now.Sub(org.LastReset) < s.cfg.QuotaWindow {
		return nil
	}

	if _, err := s.repo.Organization().ResetUsage(ctx, org.ID, now, now.Add(-s.cfg.QuotaWindow)); err != nil {
		return ErrInternal("failed to reset usage window")
	}

	// Whether this call or a concurrent one won the conditional update, the
	// stored counter is now zero-based for the new window.
	org.RequestsMade = 0
	org.LastReset = now
	return nil
}
