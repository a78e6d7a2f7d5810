package ports

import (
	"context"

	"github.com/vncsmyrnk/mealpoll/internal/core/domain"
)

// ReplaceConfigInput holds the admin payload as decoded JSON values so the
// validation rules can inspect their types.
type ReplaceConfigInput struct {
	Options    any
	Nutrition  any
	ResetVotes bool
}

type ReplaceConfigResult struct {
	VotesReset bool
	Config     *domain.PollConfig
}

type AdminService interface {
	GetConfig(ctx context.Context) (*domain.PollConfig, error)
	ReplaceConfig(ctx context.Context, input ReplaceConfigInput) (*ReplaceConfigResult, error)
}
