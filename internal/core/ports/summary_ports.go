package ports

import (
	"context"
	"time"

	"github.com/vncsmyrnk/mealpoll/internal/core/domain"
)

type SummaryOption struct {
	Name  string `json:"name" yaml:"name"`
	Votes int64  `json:"votes" yaml:"votes"`
}

type Summary struct {
	GeneratedAt       time.Time                 `json:"generated_at" yaml:"generated_at"`
	ConfigUpdatedAt   *time.Time                `json:"config_updated_at" yaml:"config_updated_at"`
	Options           []SummaryOption           `json:"options" yaml:"options"`
	TotalVotes        int64                     `json:"total_votes" yaml:"total_votes"`
	RecentSuggestions []domain.RecentSuggestion `json:"recent_suggestions" yaml:"recent_suggestions"`
}

type SummaryService interface {
	Summarize(ctx context.Context, recentLimit int) (*Summary, error)
}
