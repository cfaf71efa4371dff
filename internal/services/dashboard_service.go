package services

import (
	"context"
	"fmt"
	"time"

	dbm "autopilot/internal/models/db_models"
	resp "autopilot/internal/models/response_models"
	"autopilot/internal/repositories"
	"autopilot/pkg/utils"
)

type DashboardService interface {
	BuildDashboard(ctx context.Context, rng resp.TimeRange) (*resp.UsageDashboard, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
	now  func() time.Time
}

func NewDashboardService(repo repositories.DashboardRepository, ledger *QuotaLedger) DashboardService {
	return &dashboardService{repo: repo, now: ledger.now}
}

var validIntervals = map[string]bool{"day": true, "week": true, "month": true}

// normalizeRange ensures sane defaults and ordering
func normalizeRange(r resp.TimeRange, now time.Time) resp.TimeRange {
	out := r
	if !validIntervals[out.Interval] {
		out.Interval = "day"
	}
	if out.End.IsZero() {
		out.End = now.UTC()
	}
	if out.Start.IsZero() {
		out.Start = out.End.AddDate(0, 0, -30) // last 30 days default
	}
	if out.Start.After(out.End) {
		out.Start, out.End = out.End, out.Start
	}
	return out
}

func (s *dashboardService) BuildDashboard(ctx context.Context, rng resp.TimeRange) (*resp.UsageDashboard, error) {
	now := s.now()
	rng = normalizeRange(rng, now)

	// ---------- Core counts ----------
	totalAccounts, err := s.repo.CountTotalAccounts(ctx)
	if err != nil {
		return nil, dbErr(err)
	}

	newAccounts, err := s.repo.CountNewAccounts(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, dbErr(err)
	}

	// ---------- Plan mix ----------
	planRows, err := s.repo.PlanMix(ctx)
	if err != nil {
		return nil, dbErr(err)
	}
	var planTotal float64
	for _, r := range planRows {
		planTotal += float64(r.Count)
	}
	planMix := make([]resp.PlanMixItem, 0, len(planRows))
	for _, r := range planRows {
		var pct float64
		if planTotal > 0 {
			pct = float64(r.Count) * 100.0 / planTotal
		}
		planMix = append(planMix, resp.PlanMixItem{Plan: r.Plan, Accounts: r.Count, Percent: pct})
	}

	// ---------- Generations ----------
	kindRows, err := s.repo.GenerationsByKind(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, dbErr(err)
	}
	var totalGenerations int64
	byKind := make([]resp.KindCount, 0, len(kindRows))
	for _, r := range kindRows {
		byKind = append(byKind, resp.KindCount{Kind: r.Kind, Count: r.Count})
		totalGenerations += r.Count
	}

	seriesRows, err := s.repo.GenerationsSeries(ctx, rng.Start, rng.End, rng.Interval, rng.Timezone)
	if err != nil {
		return nil, dbErr(err)
	}
	series := make([]resp.SeriesPoint, 0, len(seriesRows))
	for _, r := range seriesRows {
		series = append(series, resp.SeriesPoint{Bucket: r.Bucket, Value: r.Sum})
	}

	// ---------- Accounts at their limit this month ----------
	periodStart := utils.MonthStartUTC(now)
	var atLimit int64
	for _, pl := range dbm.PlanLimits {
		if pl.Limit.Unlimited {
			continue
		}
		n, err := s.repo.CountAccountsAtLimit(ctx, pl.Tier, pl.Limit.Max, periodStart)
		if err != nil {
			return nil, dbErr(err)
		}
		atLimit += n
	}

	return &resp.UsageDashboard{
		Range:             rng,
		TotalAccounts:     totalAccounts,
		NewAccounts:       newAccounts,
		PlanMix:           planMix,
		GenerationsByKind: byKind,
		GenerationSeries:  series,
		TotalGenerations:  totalGenerations,
		AccountsAtLimit:   atLimit,
		GeneratedAt:       now.UTC(),
	}, nil
}

func dbErr(err error) error {
	return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
}
