package ports

import (
	"context"

	"github.com/vncsmyrnk/mealpoll/internal/core/domain"
)

type PollConfigRepository interface {
	Get(ctx context.Context) (*domain.PollConfig, error)
	// Replace overwrites the singleton config and, when resetVotes is set,
	// deletes every vote in the same transaction.
	Replace(ctx context.Context, cfg domain.ValidatedConfig, resetVotes bool) error
	Seed(ctx context.Context, cfg domain.PollConfig) error
}

type Bootstrap struct {
	PollOptions       []string                  `json:"pollOptions"`
	PollCounts        map[string]int64          `json:"pollCounts"`
	TotalVotes        int64                     `json:"totalVotes"`
	UserVote          *string                   `json:"userVote"`
	Nutrition         domain.Nutrition          `json:"nutrition"`
	Today             string                    `json:"today"`
	SuggestionAllowed *bool                     `json:"suggestionAllowed"`
	RecentSuggestions []domain.RecentSuggestion `json:"recentSuggestions"`
}

type PollService interface {
	// Bootstrap gathers everything the voting page needs. deviceID may be
	// empty, in which case the per-device fields are nil.
	Bootstrap(ctx context.Context, deviceID string) (*Bootstrap, error)
	CurrentConfig(ctx context.Context) (*domain.PollConfig, error)
	Tally(ctx context.Context) (domain.Tally, error)
}
