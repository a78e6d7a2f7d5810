package ports

import (
	"context"

	"github.com/vncsmyrnk/mealpoll/internal/core/domain"
)

type SuggestionRepository interface {
	// Save returns domain.ErrAlreadySuggested when the device already
	// submitted on suggestion.DayKey.
	Save(ctx context.Context, suggestion *domain.Suggestion) error
	ExistsForDay(ctx context.Context, deviceID, dayKey string) (bool, error)
	Recent(ctx context.Context, limit int) ([]domain.RecentSuggestion, error)
}

type SuggestionInput struct {
	DeviceID string
	Text     string
}

type SuggestionService interface {
	Submit(ctx context.Context, input SuggestionInput) error
}
