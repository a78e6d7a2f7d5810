package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/mealpoll/internal/core/domain"
	"github.com/vncsmyrnk/mealpoll/internal/core/ports"
)

type voteService struct {
	configRepo ports.PollConfigRepository
	voteRepo   ports.VoteRepository
	clock      Clock
}

func NewVoteService(configRepo ports.PollConfigRepository, voteRepo ports.VoteRepository, clock Clock) ports.VoteService {
	return &voteService{
		configRepo: configRepo,
		voteRepo:   voteRepo,
		clock:      clock,
	}
}

func (s *voteService) Vote(ctx context.Context, input ports.VoteInput) error {
	deviceID := strings.TrimSpace(input.DeviceID)
	if deviceID == "" {
		return domain.ErrDeviceIDRequired
	}

	cfg, err := loadConfig(ctx, s.configRepo)
	if err != nil {
		return err
	}

	option := strings.TrimSpace(input.Option)
	if !cfg.HasOption(option) {
		return domain.ErrInvalidOption
	}

	vote := &domain.Vote{
		ID:         uuid.Must(uuid.NewV7()),
		DeviceID:   deviceID,
		OptionName: option,
		CreatedAt:  s.clock.now(),
	}

	err = s.voteRepo.SaveVote(ctx, vote)
	if !errors.Is(err, domain.ErrAlreadyVoted) {
		return err
	}

	// The unique constraint rejected the insert; report what is on record.
	conflict := &domain.AlreadyVotedError{}
	prev, err := s.voteRepo.GetByDevice(ctx, deviceID)
	if err != nil {
		return err
	}
	if prev != nil {
		conflict.Option = prev.OptionName
	}
	return conflict
}
