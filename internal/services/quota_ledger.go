package services

import (
	"fmt"
	"time"

	"autopilot/internal/models/db_models"
	"autopilot/internal/models/response_models"
	"autopilot/pkg/utils"
)

// QuotaLedger applies the monthly generation allowance to an account snapshot.
// It only mutates the struct it is handed; persisting the result is the caller's job.
type QuotaLedger struct {
	now func() time.Time
}

func NewQuotaLedger(now func() time.Time) *QuotaLedger {
	if now == nil {
		now = time.Now
	}
	return &QuotaLedger{now: now}
}

// CheckAndReset starts a fresh period when the account has never been reset or when the
// current UTC month is later than the stored one. It reports whether the account changed.
func (l *QuotaLedger) CheckAndReset(account *db_models.Account) bool {
	now := l.now().UTC()

	if account.LastResetAt == nil || *account.LastResetAt <= 0 {
		ts := now.Unix()
		account.LastResetAt = &ts
		account.GenerationCount = 0
		return true
	}

	last := utils.FromUnixSeconds(*account.LastResetAt)
	if utils.MonthIndex(now) <= utils.MonthIndex(last) {
		return false
	}

	ts := now.Unix()
	account.LastResetAt = &ts
	account.GenerationCount = 0
	return true
}

func (l *QuotaLedger) LimitFor(account *db_models.Account) db_models.PlanLimit {
	return db_models.LimitFor(string(account.SubscriptionTier))
}

// Enforce must run after CheckAndReset so a stale count from a previous month never blocks.
func (l *QuotaLedger) Enforce(account *db_models.Account) error {
	limit := l.LimitFor(account)
	used := normalizeCount(account.GenerationCount)
	if limit.Allows(used) {
		return nil
	}
	return fmt.Errorf("%w: used %d of %d", utils.ErrQuotaExceeded, used, limit.Max)
}

// Consume records one successful generation.
func (l *QuotaLedger) Consume(account *db_models.Account) {
	account.GenerationCount = normalizeCount(account.GenerationCount) + 1
}

// ApplyUpgrade is the billing-side mutation: new tier, fresh count, period untouched.
func (l *QuotaLedger) ApplyUpgrade(account *db_models.Account, tier db_models.SubscriptionTier) {
	account.SubscriptionTier = tier
	account.GenerationCount = 0
}

// Usage reports the account's standing without mutating it.
func (l *QuotaLedger) Usage(account db_models.Account) response_models.UsageResponse {
	l.CheckAndReset(&account)

	limit := l.LimitFor(&account)
	used := normalizeCount(account.GenerationCount)
	tier, _ := db_models.ParseTier(string(account.SubscriptionTier))

	usage := response_models.UsageResponse{
		Plan:     string(tier),
		Used:     used,
		ResetsAt: utils.FormatRFC3339(utils.NextMonthStartUTC(l.now())),
	}
	if !limit.Unlimited {
		max := limit.Max
		remaining := max - used
		if remaining < 0 {
			remaining = 0
		}
		usage.Limit = &max
		usage.Remaining = &remaining
	}
	return usage
}

func normalizeCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
