package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/mealpoll/internal/core/domain"
	"github.com/vncsmyrnk/mealpoll/internal/core/ports"
)

type pollService struct {
	configRepo     ports.PollConfigRepository
	voteRepo       ports.VoteRepository
	suggestionRepo ports.SuggestionRepository
	recentLimit    int
	clock          Clock
}

func NewPollService(
	configRepo ports.PollConfigRepository,
	voteRepo ports.VoteRepository,
	suggestionRepo ports.SuggestionRepository,
	recentLimit int,
	clock Clock,
) ports.PollService {
	if recentLimit <= 0 {
		recentLimit = domain.DefaultRecentSuggestion
	}
	return &pollService{
		configRepo:     configRepo,
		voteRepo:       voteRepo,
		suggestionRepo: suggestionRepo,
		recentLimit:    recentLimit,
		clock:          clock,
	}
}

func (s *pollService) CurrentConfig(ctx context.Context) (*domain.PollConfig, error) {
	return loadConfig(ctx, s.configRepo)
}

func (s *pollService) Tally(ctx context.Context) (domain.Tally, error) {
	cfg, err := loadConfig(ctx, s.configRepo)
	if err != nil {
		return domain.Tally{}, err
	}
	return s.tally(ctx, cfg)
}

func (s *pollService) Bootstrap(ctx context.Context, deviceID string) (*ports.Bootstrap, error) {
	cfg, err := loadConfig(ctx, s.configRepo)
	if err != nil {
		return nil, err
	}

	tally, err := s.tally(ctx, cfg)
	if err != nil {
		return nil, err
	}

	today := domain.DayKey(s.clock.now())
	out := &ports.Bootstrap{
		PollOptions: cfg.Options,
		PollCounts:  tally.Counts,
		TotalVotes:  tally.Total,
		Nutrition:   cfg.Nutrition,
		Today:       today,
	}

	if deviceID != "" {
		vote, err := s.voteRepo.GetByDevice(ctx, deviceID)
		if err != nil {
			return nil, err
		}
		if vote != nil && cfg.HasOption(vote.OptionName) {
			out.UserVote = &vote.OptionName
		}

		submitted, err := s.suggestionRepo.ExistsForDay(ctx, deviceID, today)
		if err != nil {
			return nil, err
		}
		allowed := !submitted
		out.SuggestionAllowed = &allowed
	}

	recent, err := s.suggestionRepo.Recent(ctx, s.recentLimit)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []domain.RecentSuggestion{}
	}
	out.RecentSuggestions = recent

	return out, nil
}

func (s *pollService) tally(ctx context.Context, cfg *domain.PollConfig) (domain.Tally, error) {
	raw, err := s.voteRepo.CountByOption(ctx)
	if err != nil {
		return domain.Tally{}, fmt.Errorf("failed to count votes: %w", err)
	}
	return domain.NewTally(cfg.Options, raw), nil
}

// loadConfig returns the stored config, or the built-in one when the row has
// not been seeded yet.
func loadConfig(ctx context.Context, repo ports.PollConfigRepository) (*domain.PollConfig, error) {
	cfg, err := repo.Get(ctx)
	if errors.Is(err, domain.ErrConfigNotFound) {
		def := domain.DefaultPollConfig()
		def.UpgradeMeatLabels()
		return &def, nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
