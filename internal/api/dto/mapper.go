package dto

import (
	"github.com/modelproof/biasradar-api/internal/domain"
)

// maskedKeyLen covers the bdr_ prefix plus enough of the key to identify it
// in a listing without disclosing it.
const maskedKeyLen = 20

// MaskAPIKey truncates a key to a recognizable prefix.
func MaskAPIKey(key string) string {
	if len(key) <= maskedKeyLen {
		return key
	}
	return key[:maskedKeyLen] + "..."
}

// FromOrganization converts a domain record including the full plaintext
// key. Registration is the only caller.
func FromOrganization(org *domain.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:           org.ID,
		Name:         org.Name,
		Email:        org.Email,
		APIKey:       org.APIKey,
		IsPaid:       org.IsPaid,
		RequestsMade: org.RequestsMade,
		LastReset:    org.LastReset,
		CreatedAt:    org.CreatedAt,
	}
}

// FromOrganizationMasked converts a domain record with the key reduced to a
// prefix.
func FromOrganizationMasked(org *domain.Organization) OrganizationResponse {
	resp := FromOrganization(org)
	resp.APIKey = MaskAPIKey(org.APIKey)
	return resp
}

func FromOrganizationsMasked(orgs []domain.Organization) []OrganizationResponse {
	responses := make([]OrganizationResponse, len(orgs))
	for i, org := range orgs {
		responses[i] = FromOrganizationMasked(&org)
	}
	return responses
}
