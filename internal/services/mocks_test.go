package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"autopilot/internal/models/db_models"
	"autopilot/internal/repositories"
	"autopilot/pkg/utils"
)

type mockAccountRepo struct {
	mock.Mock
}

func (m *mockAccountRepo) InsertTx(account *db_models.Account, ctx context.Context) error {
	args := m.Called(account, ctx)
	return args.Error(0)
}

func (m *mockAccountRepo) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	args := m.Called(ctx, id)
	acc, _ := args.Get(0).(*db_models.Account)
	return acc, args.Error(1)
}

func (m *mockAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	args := m.Called(ctx, email)
	acc, _ := args.Get(0).(*db_models.Account)
	return acc, args.Error(1)
}

func (m *mockAccountRepo) ResetUsagePeriod(ctx context.Context, id uuid.UUID, previous *int64, startedAt int64) (bool, error) {
	args := m.Called(ctx, id, previous, startedAt)
	return args.Bool(0), args.Error(1)
}

func (m *mockAccountRepo) UpdateSubscription(ctx context.Context, id uuid.UUID, tier db_models.SubscriptionTier) error {
	args := m.Called(ctx, id, tier)
	return args.Error(0)
}

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.PreferenceProfile, error) {
	args := m.Called(ctx, accountID)
	p, _ := args.Get(0).(*db_models.PreferenceProfile)
	return p, args.Error(1)
}

func (m *mockProfileRepo) Upsert(ctx context.Context, profile *db_models.PreferenceProfile) (bool, error) {
	args := m.Called(ctx, profile)
	return args.Bool(0), args.Error(1)
}

type mockArtifactRepo struct {
	mock.Mock
}

func (m *mockArtifactRepo) CommitGeneration(ctx context.Context, artifact *db_models.GeneratedArtifact, limit db_models.PlanLimit) error {
	args := m.Called(ctx, artifact, limit)
	return args.Error(0)
}

func (m *mockArtifactRepo) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.GeneratedArtifact, int64, error) {
	args := m.Called(ctx, accountID, page, pageSize)
	items, _ := args.Get(0).([]db_models.GeneratedArtifact)
	return items, args.Get(1).(int64), args.Error(2)
}

type mockDashboardRepo struct {
	mock.Mock
}

func (m *mockDashboardRepo) CountTotalAccounts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDashboardRepo) CountNewAccounts(ctx context.Context, start, end time.Time) (int64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDashboardRepo) PlanMix(ctx context.Context) ([]repositories.PlanMixRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]repositories.PlanMixRow)
	return rows, args.Error(1)
}

func (m *mockDashboardRepo) GenerationsByKind(ctx context.Context, start, end time.Time) ([]repositories.KindCountRow, error) {
	args := m.Called(ctx, start, end)
	rows, _ := args.Get(0).([]repositories.KindCountRow)
	return rows, args.Error(1)
}

func (m *mockDashboardRepo) GenerationsSeries(ctx context.Context, start, end time.Time, interval, tz string) ([]repositories.BucketSum, error) {
	args := m.Called(ctx, start, end, interval, tz)
	rows, _ := args.Get(0).([]repositories.BucketSum)
	return rows, args.Error(1)
}

func (m *mockDashboardRepo) CountAccountsAtLimit(ctx context.Context, tier db_models.SubscriptionTier, max int, periodStart time.Time) (int64, error) {
	args := m.Called(ctx, tier, max, periodStart)
	return args.Get(0).(int64), args.Error(1)
}

type mockGenerationClient struct {
	mock.Mock
}

func (m *mockGenerationClient) Generate(ctx context.Context, req utils.GenerationRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockGenerationClient) Provider() string { return "fake" }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func unixPtr(t time.Time) *int64 {
	ts := t.Unix()
	return &ts
}
