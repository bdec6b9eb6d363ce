package repository

import (
	"context"
	"time"

	"github.com/modelproof/biasradar-api/internal/domain"
)

//go:generate mockery --name OrganizationRepository --output ../mocks
type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) (*domain.Organization, error)
	GetByEmail(ctx context.Context, email string) (*domain.Organization, error)
	GetByAPIKey(ctx context.Context, apiKey string) (*domain.Organization, error)
	SetPlan(ctx context.Context, email string, isPaid bool) (*domain.Organization, error)
	Delete(ctx context.Context, email string) (*domain.Organization, error)
	List(ctx context.Context) ([]domain.Organization, error)

	// ResetUsage zeroes requests_made and moves last_reset forward in a
	// single conditional UPDATE. The reset only fires when last_reset is at
	// or before windowStart, which makes concurrent resets within the same
	// window a no-op after the first. Returns whether a row was changed.
	ResetUsage(ctx context.Context, id string, now, windowStart time.Time) (bool, error)

	// IncrementUsage adds one to requests_made as an atomic UPDATE
	// expression. Concurrent increments for the same organization must not
	// lose updates.
	IncrementUsage(ctx context.Context, id string) error
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	Organization() OrganizationRepository
}
