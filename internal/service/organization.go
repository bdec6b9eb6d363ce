package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/modelproof/biasradar-api/internal/api/dto"
	"github.com/modelproof/biasradar-api/internal/domain"
	"github.com/modelproof/biasradar-api/internal/repository"
)

const apiKeyPrefix = "bdr_"

// OrganizationService implements the privileged tenant-management
// operations. Callers are expected to have passed the admin passcode gate
// before reaching any of these.
type OrganizationService struct {
	repo repository.Repository
}

func NewOrganizationService(repo repository.Repository) *OrganizationService {
	return &OrganizationService{repo: repo}
}

// Register provisions an organization with a freshly minted key on the free
// plan. The response is the only place the full plaintext key ever appears.
func (s *OrganizationService) Register(ctx context.Context, req dto.RegisterRequest) (dto.OrganizationResponse, error) {
	if req.Name == "" || req.Email == "" {
		return dto.OrganizationResponse{}, ErrBadRequest("Name and email are required")
	}

	if _, err := s.repo.Organization().GetByEmail(ctx, req.Email); err == nil {
		return dto.OrganizationResponse{}, ErrConflict("Organization with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.OrganizationResponse{}, ErrInternal("failed to register organization")
	}

	apiKey, err := generateAPIKey()
	if err != nil {
		return dto.OrganizationResponse{}, ErrInternal("failed to generate API key")
	}

	org := &domain.Organization{
		Name:         req.Name,
		Email:        req.Email,
		APIKey:       apiKey,
		IsPaid:       false,
		RequestsMade: 0,
		LastReset:    time.Now(),
	}

	created, err := s.repo.Organization().Create(ctx, org)
	if err != nil {
		// The unique index catches registrations racing past the lookup.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.OrganizationResponse{}, ErrConflict("Organization with this email already exists")
		}
		return dto.OrganizationResponse{}, ErrInternal("failed to register organization")
	}

	return dto.FromOrganization(created), nil
}

// Revoke hard-deletes the organization; the key becomes invalid immediately
// and is never reissued.
func (s *OrganizationService) Revoke(ctx context.Context, email string) (dto.OrganizationResponse, error) {
	if email == "" {
		return dto.OrganizationResponse{}, ErrBadRequest("Email is required")
	}

	deleted, err := s.repo.Organization().Delete(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.OrganizationResponse{}, ErrNotFound("Organization not found")
		}
		return dto.OrganizationResponse{}, ErrInternal("failed to revoke API key")
	}

	return dto.FromOrganizationMasked(deleted), nil
}

// SetPlan flips the paid flag and leaves usage counters untouched, so a
// downgrade takes effect against whatever the organization already consumed
// this window.
func (s *OrganizationService) SetPlan(ctx context.Context, email string, isPaid bool) (dto.OrganizationResponse, error) {
	if email == "" {
		return dto.OrganizationResponse{}, ErrBadRequest("Email and is_paid (boolean) are required")
	}

	updated, err := s.repo.Organization().SetPlan(ctx, email, isPaid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.OrganizationResponse{}, ErrNotFound("Organization not found")
		}
		return dto.OrganizationResponse{}, ErrInternal("failed to update organization")
	}

	return dto.FromOrganizationMasked(updated), nil
}

// List returns all organizations newest first with keys masked to a prefix.
func (s *OrganizationService) List(ctx context.Context) ([]dto.OrganizationResponse, error) {
	orgs, err := s.repo.Organization().List(ctx)
	if err != nil {
		return nil, ErrInternal("failed to fetch organizations")
	}
	return dto.FromOrganizationsMasked(orgs), nil
}

// generateAPIKey mints a bdr_-prefixed key from 32 bytes of a
// cryptographically secure random source.
func generateAPIKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return apiKeyPrefix + hex.EncodeToString(buf), nil
}
