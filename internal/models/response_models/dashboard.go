package response_models

import "time"

type TimeRange struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Interval string    `json:"interval"` // day|week|month
	Timezone string    `json:"timezone,omitempty"`
}

type SeriesPoint struct {
	Bucket time.Time `json:"bucket"`
	Value  int64     `json:"value"`
}

type PlanMixItem struct {
	Plan     string  `json:"plan"`
	Accounts int64   `json:"accounts"`
	Percent  float64 `json:"percent"`
}

type KindCount struct {
	Kind  string `json:"kind"`
	Count int64  `json:"count"`
}

type UsageDashboard struct {
	Range             TimeRange     `json:"range"`
	TotalAccounts     int64         `json:"total_accounts"`
	NewAccounts       int64         `json:"new_accounts"`
	PlanMix           []PlanMixItem `json:"plan_mix"`
	GenerationsByKind []KindCount   `json:"generations_by_kind"`
	GenerationSeries  []SeriesPoint `json:"generation_series"`
	TotalGenerations  int64         `json:"total_generations"`
	AccountsAtLimit   int64         `json:"accounts_at_limit"`
	GeneratedAt       time.Time     `json:"generated_at"`
}
