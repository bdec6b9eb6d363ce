package dto

import (
	"encoding/json"
	"strconv"
	"time"
)

// RequestsRemaining renders as a number for metered plans and as the string
// "unlimited" for paid plans.
type RequestsRemaining struct {
	Unlimited bool
	Count     int
}

func (r RequestsRemaining) MarshalJSON() ([]byte, error) {
	if r.Unlimited {
		return json.Marshal("unlimited")
	}
	return []byte(strconv.Itoa(r.Count)), nil
}

func (r *RequestsRemaining) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.Unlimited = s == "unlimited"
		r.Count = 0
		return nil
	}
	r.Unlimited = false
	return json.Unmarshal(data, &r.Count)
}

// AnalysisResponse wraps the analyzer payload without inspecting it.
type AnalysisResponse struct {
	Success           bool              `json:"success" example:"true"`
	Data              json.RawMessage   `json:"data" swaggertype:"string" example:"{\"biases_detected\":[]}"`
	RequestsRemaining RequestsRemaining `json:"requests_remaining" swaggertype:"string" example:"19"`
}

// OrganizationResponse carries an organization record. APIKey holds the full
// plaintext key only in the register response; every other context masks it
// to a prefix.
type OrganizationResponse struct {
	ID           string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name         string    `json:"name" example:"Acme Corp"`
	Email        string    `json:"email" example:"acme@example.com"`
	APIKey       string    `json:"api_key,omitempty" example:"bdr_4f6d2a..."`
	IsPaid       bool      `json:"is_paid" example:"false"`
	RequestsMade int       `json:"requests_made" example:"0"`
	LastReset    time.Time `json:"last_reset" example:"2025-07-17T21:20:48Z"`
	CreatedAt    time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
}

type RegisterResponse struct {
	Success      bool                 `json:"success" example:"true"`
	Organization OrganizationResponse `json:"organization"`
}

type RevokeResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"API key for Acme Corp (acme@example.com) has been revoked"`
}

type UpgradeResponse struct {
	Success      bool                 `json:"success" example:"true"`
	Organization OrganizationResponse `json:"organization"`
}

type ListOrganizationsResponse struct {
	Success       bool                   `json:"success" example:"true"`
	Organizations []OrganizationResponse `json:"organizations"`
}
