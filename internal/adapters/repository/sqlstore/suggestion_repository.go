package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/mealpoll/internal/core/domain"
	"github.com/vncsmyrnk/mealpoll/internal/core/ports"
)

type suggestionRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewSuggestionRepository(db *sql.DB, dialect Dialect) ports.SuggestionRepository {
	return &suggestionRepository{
		db:      db,
		dialect: dialect,
	}
}

func (r *suggestionRepository) Save(ctx context.Context, s *domain.Suggestion) error {
	query := `
		INSERT INTO suggestions (id, device_id, day_key, suggestion_text, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, r.dialect.rebind(query),
		s.ID, s.DeviceID, s.DayKey, s.Text, s.CreatedAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadySuggested
		}
		return fmt.Errorf("failed to save suggestion: %w", err)
	}
	return nil
}

func (r *suggestionRepository) ExistsForDay(ctx context.Context, deviceID, dayKey string) (bool, error) {
	query := `SELECT 1 FROM suggestions WHERE device_id = ? AND day_key = ? LIMIT 1`
	var exists int
	err := r.db.QueryRowContext(ctx, r.dialect.rebind(query), deviceID, dayKey).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check existing suggestion: %w", err)
	}
	return true, nil
}

// Recent returns the newest suggestions first. Ids are UUIDv7, so their
// order follows insertion time.
func (r *suggestionRepository) Recent(ctx context.Context, limit int) ([]domain.RecentSuggestion, error) {
	if limit <= 0 {
		limit = domain.DefaultRecentSuggestion
	}

	query := `
		SELECT day_key, suggestion_text
		FROM suggestions
		ORDER BY id DESC
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, r.dialect.rebind(query), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	defer rows.Close()

	recent := []domain.RecentSuggestion{}
	for rows.Next() {
		var s domain.RecentSuggestion
		if err := rows.Scan(&s.Date, &s.Text); err != nil {
			return nil, fmt.Errorf("failed to scan suggestion: %w", err)
		}
		recent = append(recent, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate suggestions: %w", err)
	}

	return recent, nil
}
