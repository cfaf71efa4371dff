package response_models

// Limit is nil for unlimited plans.
type PlanResponse struct {
	Code      string `json:"code"`
	Limit     *int   `json:"limit"`
	Unlimited bool   `json:"unlimited"`
}

type UsageResponse struct {
	Plan      string `json:"plan"`
	Used      int    `json:"used"`
	Limit     *int   `json:"limit"`
	Remaining *int   `json:"remaining"`
	ResetsAt  string `json:"resets_at"`
}
