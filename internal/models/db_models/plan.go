package db_models

import "strings"

type SubscriptionTier string

const (
	TierFree   SubscriptionTier = "free"
	TierBasic  SubscriptionTier = "basic"
	TierGrowth SubscriptionTier = "growth"
	TierPro    SubscriptionTier = "pro"
)

// PlanLimit is the monthly generation allowance of a tier.
type PlanLimit struct {
	Max       int
	Unlimited bool
}

// Allows reports whether an account that already used `used` generations may run one more.
func (l PlanLimit) Allows(used int) bool {
	return l.Unlimited || used < l.Max
}

// PlanLimits is the single source of truth for tier allowances.
var PlanLimits = []struct {
	Tier  SubscriptionTier
	Limit PlanLimit
}{
	{Tier: TierFree, Limit: PlanLimit{Max: 10}},
	{Tier: TierBasic, Limit: PlanLimit{Max: 100}},
	{Tier: TierGrowth, Limit: PlanLimit{Unlimited: true}},
	{Tier: TierPro, Limit: PlanLimit{Unlimited: true}},
}

// ParseTier normalizes a stored or requested plan name. ok is false for unknown names.
func ParseTier(plan string) (SubscriptionTier, bool) {
	tier := SubscriptionTier(strings.ToLower(strings.TrimSpace(plan)))
	for _, p := range PlanLimits {
		if p.Tier == tier {
			return tier, true
		}
	}
	return TierFree, false
}

// LimitFor resolves the allowance of a plan name; unknown and empty names get the free limit.
func LimitFor(plan string) PlanLimit {
	tier, _ := ParseTier(plan)
	for _, p := range PlanLimits {
		if p.Tier == tier {
			return p.Limit
		}
	}
	return PlanLimits[0].Limit
}
