package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/vncsmyrnk/mealpoll/internal/core/domain"
	"github.com/vncsmyrnk/mealpoll/internal/core/ports"
)

type summaryService struct {
	configRepo     ports.PollConfigRepository
	voteRepo       ports.VoteRepository
	suggestionRepo ports.SuggestionRepository
	clock          Clock
}

func NewSummaryService(
	configRepo ports.PollConfigRepository,
	voteRepo ports.VoteRepository,
	suggestionRepo ports.SuggestionRepository,
	clock Clock,
) ports.SummaryService {
	return &summaryService{
		configRepo:     configRepo,
		voteRepo:       voteRepo,
		suggestionRepo: suggestionRepo,
		clock:          clock,
	}
}

// Summarize reports the tally in option order together with the most recent
// suggestions. The independent reads run concurrently.
func (s *summaryService) Summarize(ctx context.Context, recentLimit int) (*ports.Summary, error) {
	if recentLimit <= 0 {
		recentLimit = domain.DefaultRecentSuggestion
	}

	var (
		wg      sync.WaitGroup
		cfg     *domain.PollConfig
		counts  map[string]int64
		recent  []domain.RecentSuggestion
		errChan = make(chan error, 3)
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		var err error
		if cfg, err = loadConfig(ctx, s.configRepo); err != nil {
			errChan <- fmt.Errorf("failed to load poll config: %w", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if counts, err = s.voteRepo.CountByOption(ctx); err != nil {
			errChan <- fmt.Errorf("failed to count votes: %w", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if recent, err = s.suggestionRepo.Recent(ctx, recentLimit); err != nil {
			errChan <- fmt.Errorf("failed to list suggestions: %w", err)
		}
	}()

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	tally := domain.NewTally(cfg.Options, counts)
	summary := &ports.Summary{
		GeneratedAt:       s.clock.now(),
		ConfigUpdatedAt:   cfg.UpdatedAt,
		Options:           make([]ports.SummaryOption, 0, len(cfg.Options)),
		TotalVotes:        tally.Total,
		RecentSuggestions: recent,
	}
	for _, opt := range cfg.Options {
		summary.Options = append(summary.Options, ports.SummaryOption{Name: opt, Votes: tally.Counts[opt]})
	}
	if summary.RecentSuggestions == nil {
		summary.RecentSuggestions = []domain.RecentSuggestion{}
	}

	return summary, nil
}
