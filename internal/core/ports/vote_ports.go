package ports

import (
	"context"

	"github.com/vncsmyrnk/mealpoll/internal/core/domain"
)

type VoteRepository interface {
	// SaveVote returns domain.ErrAlreadyVoted when the device already has a
	// vote on record.
	SaveVote(ctx context.Context, vote *domain.Vote) error
	GetByDevice(ctx context.Context, deviceID string) (*domain.Vote, error)
	CountByOption(ctx context.Context) (map[string]int64, error)
}

type VoteInput struct {
	DeviceID string
	Option   string
}

type VoteService interface {
	Vote(ctx context.Context, input VoteInput) error
}
