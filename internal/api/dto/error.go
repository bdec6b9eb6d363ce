package dto

// Error is the standard error response body. RequestsMade and Limit are only
// present on quota failures, Details only on upstream failures.
type Error struct {
	Error        string `json:"error" example:"error message"`
	Message      string `json:"message,omitempty" example:"additional detail"`
	RequestsMade int    `json:"requests_made,omitempty" example:"20"`
	Limit        int    `json:"limit,omitempty" example:"20"`
	Details      string `json:"details,omitempty"`
}
