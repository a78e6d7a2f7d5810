package services

import (
	"context"
	"fmt"

	"github.com/vncsmyrnk/mealpoll/internal/core/domain"
	"github.com/vncsmyrnk/mealpoll/internal/core/ports"
)

type adminService struct {
	configRepo ports.PollConfigRepository
}

func NewAdminService(configRepo ports.PollConfigRepository) ports.AdminService {
	return &adminService{
		configRepo: configRepo,
	}
}

func (s *adminService) GetConfig(ctx context.Context) (*domain.PollConfig, error) {
	return loadConfig(ctx, s.configRepo)
}

func (s *adminService) ReplaceConfig(ctx context.Context, input ports.ReplaceConfigInput) (*ports.ReplaceConfigResult, error) {
	validated, err := domain.ValidateConfig(input.Options, input.Nutrition)
	if err != nil {
		return nil, err
	}

	if err := s.configRepo.Replace(ctx, validated, input.ResetVotes); err != nil {
		return nil, fmt.Errorf("failed to replace poll config: %w", err)
	}

	cfg, err := loadConfig(ctx, s.configRepo)
	if err != nil {
		return nil, err
	}

	return &ports.ReplaceConfigResult{
		VotesReset: input.ResetVotes,
		Config:     cfg,
	}, nil
}
