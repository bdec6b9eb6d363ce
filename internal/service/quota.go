package service

import (
	"context"

	"github.com/modelproof/biasradar-api/internal/config"
	"github.com/modelproof/biasradar-api/internal/domain"
	"github.com/modelproof/biasradar-api/internal/repository"
)

// QuotaService decides whether an organization may make another analysis
// call and records consumption afterwards. Paid organizations always pass.
type QuotaService struct {
	repo repository.Repository
	cfg  *config.Config
}

func NewQuotaService(repo repository.Repository, cfg *config.Config) *QuotaService {
	return &QuotaService{repo: repo, cfg: cfg}
}

// Check assumes the window reset already ran (AuthService.ResetWindow); the
// counter it sees is current for the active window.
func (s *QuotaService) Check(org *domain.Organization) error {
	if org.IsPaid {
		return nil
	}
	if org.RequestsMade >= s.cfg.FreeDailyLimit {
		return ErrQuotaExceeded(org.RequestsMade, s.cfg.FreeDailyLimit)
	}
	return nil
}

// Record meters one successful analysis call. The increment happens inside
// the store so concurrent requests never lose updates.
func (s *QuotaService) Record(ctx context.Context, orgID string) error {
	if err := s.repo.Organization().IncrementUsage(ctx, orgID); err != nil {
		return ErrInternal("failed to record usage")
	}
	return nil
}

// Remaining computes requests left in the current window after n calls were
// just metered, clamped at zero.
func (s *QuotaService) Remaining(org *domain.Organization, metered int) int {
	remaining := s.cfg.FreeDailyLimit - (org.RequestsMade + metered)
	if remaining < 0 {
		return 0
	}
	return remaining
}
