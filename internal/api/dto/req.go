package dto

// ScanRequest asks the analyzer to evaluate text for bias. bias_types is an
// opaque pass-through list; omitted means all categories.
type ScanRequest struct {
	Text      string   `json:"text" example:"The chairman should ensure all employees are treated fairly."`
	BiasTypes []string `json:"bias_types,omitempty" example:"gender,race,age"`
}

// FixRequest asks the analyzer to rewrite text without the detected bias.
type FixRequest struct {
	Text string `json:"text" example:"The chairman should ensure all employees are treated fairly."`
}

type RegisterRequest struct {
	Name  string `json:"name" example:"Acme Corp"`
	Email string `json:"email" example:"acme@example.com"`
}

type RevokeRequest struct {
	Email string `json:"email" example:"acme@example.com"`
}

// UpgradeRequest flips the plan flag. IsPaid is a pointer so a missing or
// mistyped field is distinguishable from an explicit false.
type UpgradeRequest struct {
	Email  string `json:"email" example:"acme@example.com"`
	IsPaid *bool  `json:"is_paid" example:"true"`
}
