package repositories

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	dbm "autopilot/internal/models/db_models"
)

type DashboardRepository interface {
	CountTotalAccounts(ctx context.Context) (int64, error)
	CountNewAccounts(ctx context.Context, start, end time.Time) (int64, error)

	PlanMix(ctx context.Context) ([]PlanMixRow, error)
	GenerationsByKind(ctx context.Context, start, end time.Time) ([]KindCountRow, error)
	GenerationsSeries(ctx context.Context, start, end time.Time, interval, tz string) ([]BucketSum, error)

	// CountAccountsAtLimit counts accounts of a finite tier whose current period is exhausted.
	CountAccountsAtLimit(ctx context.Context, tier dbm.SubscriptionTier, max int, periodStart time.Time) (int64, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------
type BucketSum struct {
	Bucket time.Time `gorm:"column:bucket"`
	Sum    int64     `gorm:"column:sum"`
}

type PlanMixRow struct {
	Plan  string `gorm:"column:plan"`
	Count int64  `gorm:"column:count"`
}

type KindCountRow struct {
	Kind  string `gorm:"column:kind"`
	Count int64  `gorm:"column:count"`
}

// ---------- Helpers ----------

// normalizedTier mirrors db_models.ParseTier in SQL: trimmed, lower-cased, unknown names read as free.
func normalizedTier() string {
	known := make([]string, 0, len(dbm.PlanLimits))
	for _, p := range dbm.PlanLimits {
		known = append(known, "'"+string(p.Tier)+"'")
	}
	tier := "LOWER(TRIM(COALESCE(subscription_tier, '')))"
	return "CASE WHEN " + tier + " IN (" + strings.Join(known, ", ") + ") THEN " + tier +
		" ELSE '" + string(dbm.TierFree) + "' END"
}

// dateTrunc buckets a column holding unix seconds, optionally in a named time zone.
func dateTrunc(tz string, unixColumn string) string {
	if tz == "" {
		return "date_trunc(?, to_timestamp(" + unixColumn + "))"
	}
	return "date_trunc(?, timezone(?, to_timestamp(" + unixColumn + ")))"
}

// ---------- Counts ----------
func (r *dashboardRepository) CountTotalAccounts(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Account{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountNewAccounts(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Account{}).
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountAccountsAtLimit(ctx context.Context, tier dbm.SubscriptionTier, max int, periodStart time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Account{}).
		Where(normalizedTier()+" = ?", string(tier)).
		Where("COALESCE(generation_count, 0) >= ?", max).
		Where("last_reset_at >= ?", periodStart.Unix()).
		Count(&n).Error
	return n, err
}

// ---------- Plan mix ----------
func (r *dashboardRepository) PlanMix(ctx context.Context) ([]PlanMixRow, error) {
	var rows []PlanMixRow
	err := r.db.WithContext(ctx).
		Table("accounts").
		Select(normalizedTier() + " AS plan, COUNT(*) AS count").
		Where("deleted_at IS NULL").
		Group("plan").
		Order("count DESC").
		Find(&rows).Error
	return rows, err
}

// ---------- Generations ----------
func (r *dashboardRepository) GenerationsByKind(ctx context.Context, start, end time.Time) ([]KindCountRow, error) {
	var rows []KindCountRow
	err := r.db.WithContext(ctx).
		Table("generated_artifacts").
		Select("content_kind AS kind, COUNT(*) AS count").
		Where("deleted_at IS NULL").
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Group("content_kind").
		Order("count DESC").
		Find(&rows).Error
	return rows, err
}

func (r *dashboardRepository) GenerationsSeries(ctx context.Context, start, end time.Time, interval, tz string) ([]BucketSum, error) {
	var rows []BucketSum
	args := []interface{}{interval}
	if tz != "" {
		args = append(args, tz)
	}
	err := r.db.WithContext(ctx).
		Table("generated_artifacts").
		Select(dateTrunc(tz, "created_at")+" AS bucket, COUNT(*) AS sum", args...).
		Where("deleted_at IS NULL").
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Group("bucket").
		Order("bucket ASC").
		Find(&rows).Error
	return rows, err
}
