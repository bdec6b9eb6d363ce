package utils

import (
	"context"
	"errors"

	"github.com/modelproof/biasradar-api/internal/domain"
)

type ContextKey string

const OrganizationKey ContextKey = "organization"

var (
	ErrNoOrganizationInContext = errors.New("no organization found in context")
	ErrInvalidOrganizationType = errors.New("organization has unexpected type")
)

// GetOrganizationFromContext returns the authenticated organization placed
// in the context by the API-key middleware.
func GetOrganizationFromContext(ctx context.Context) (*domain.Organization, error) {
	value := ctx.Value(OrganizationKey)
	if value == nil {
		return nil, ErrNoOrganizationInContext
	}

	org, ok := value.(*domain.Organization)
	if !ok {
		return nil, ErrInvalidOrganizationType
	}

	return org, nil
}
