package request_models

type UpgradePlanRequest struct {
	AccountID string `json:"account_id" binding:"required,uuid"`
	Plan      string `json:"plan" binding:"required"`
}
