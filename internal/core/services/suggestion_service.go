package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/mealpoll/internal/core/domain"
	"github.com/vncsmyrnk/mealpoll/internal/core/ports"
)

type suggestionService struct {
	repo  ports.SuggestionRepository
	clock Clock
}

func NewSuggestionService(repo ports.SuggestionRepository, clock Clock) ports.SuggestionService {
	return &suggestionService{
		repo:  repo,
		clock: clock,
	}
}

func (s *suggestionService) Submit(ctx context.Context, input ports.SuggestionInput) error {
	deviceID := strings.TrimSpace(input.DeviceID)
	if deviceID == "" {
		return domain.ErrDeviceIDRequired
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return domain.ErrSuggestionRequired
	}
	if utf8.RuneCountInString(text) > domain.MaxSuggestionLength {
		return domain.ErrSuggestionTooLong
	}

	now := s.clock.now()
	return s.repo.Save(ctx, &domain.Suggestion{
		ID:        uuid.Must(uuid.NewV7()),
		DeviceID:  deviceID,
		DayKey:    domain.DayKey(now),
		Text:      text,
		CreatedAt: now,
	})
}
