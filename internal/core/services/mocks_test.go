package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vncsmyrnk/mealpoll/internal/core/domain"
)

type mockConfigRepo struct {
	mock.Mock
}

func (m *mockConfigRepo) Get(ctx context.Context) (*domain.PollConfig, error) {
	args := m.Called(ctx)
	cfg, _ := args.Get(0).(*domain.PollConfig)
	return cfg, args.Error(1)
}

func (m *mockConfigRepo) Replace(ctx context.Context, cfg domain.ValidatedConfig, resetVotes bool) error {
	return m.Called(ctx, cfg, resetVotes).Error(0)
}

func (m *mockConfigRepo) Seed(ctx context.Context, cfg domain.PollConfig) error {
	return m.Called(ctx, cfg).Error(0)
}

type mockVoteRepo struct {
	mock.Mock
}

func (m *mockVoteRepo) SaveVote(ctx context.Context, vote *domain.Vote) error {
	return m.Called(ctx, vote).Error(0)
}

func (m *mockVoteRepo) GetByDevice(ctx context.Context, deviceID string) (*domain.Vote, error) {
	args := m.Called(ctx, deviceID)
	vote, _ := args.Get(0).(*domain.Vote)
	return vote, args.Error(1)
}

func (m *mockVoteRepo) CountByOption(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[string]int64)
	return counts, args.Error(1)
}

type mockSuggestionRepo struct {
	mock.Mock
}

func (m *mockSuggestionRepo) Save(ctx context.Context, s *domain.Suggestion) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockSuggestionRepo) ExistsForDay(ctx context.Context, deviceID, dayKey string) (bool, error) {
	args := m.Called(ctx, deviceID, dayKey)
	return args.Bool(0), args.Error(1)
}

func (m *mockSuggestionRepo) Recent(ctx context.Context, limit int) ([]domain.RecentSuggestion, error) {
	args := m.Called(ctx, limit)
	recent, _ := args.Get(0).([]domain.RecentSuggestion)
	return recent, args.Error(1)
}

func storedConfig() *domain.PollConfig {
	cfg := domain.DefaultPollConfig()
	cfg.UpgradeMeatLabels()
	return &cfg
}
