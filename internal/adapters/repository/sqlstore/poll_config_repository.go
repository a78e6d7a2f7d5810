package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vncsmyrnk/mealpoll/internal/core/domain"
	"github.com/vncsmyrnk/mealpoll/internal/core/ports"
)

type pollConfigRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewPollConfigRepository(db *sql.DB, dialect Dialect) ports.PollConfigRepository {
	return &pollConfigRepository{
		db:      db,
		dialect: dialect,
	}
}

func (r *pollConfigRepository) Get(ctx context.Context) (*domain.PollConfig, error) {
	query := `
		SELECT options_json, nutrition_json, meat_label, updated_at
		FROM poll_config
		WHERE id = ?
	`

	var (
		optionsJSON, nutritionJSON []byte
		meatLabel                  sql.NullString
		updatedAt                  timestamp
	)
	err := r.db.QueryRowContext(ctx, r.dialect.rebind(query), domain.PollConfigID).Scan(
		&optionsJSON, &nutritionJSON, &meatLabel, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to get poll config: %w", err)
	}

	cfg := &domain.PollConfig{MeatLabel: meatLabel.String}
	if err := json.Unmarshal(optionsJSON, &cfg.Options); err != nil {
		return nil, fmt.Errorf("failed to decode poll options: %w", err)
	}
	if err := json.Unmarshal(nutritionJSON, &cfg.Nutrition); err != nil {
		return nil, fmt.Errorf("failed to decode nutrition: %w", err)
	}
	if !updatedAt.IsZero() {
		t := updatedAt.UTC()
		cfg.UpdatedAt = &t
	}
	cfg.UpgradeMeatLabels()

	return cfg, nil
}

func (r *pollConfigRepository) Replace(ctx context.Context, cfg domain.ValidatedConfig, resetVotes bool) error {
	optionsJSON, nutritionJSON, err := encodeConfig(cfg.Options, cfg.Nutrition)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO poll_config (id, options_json, nutrition_json, meat_label, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			options_json = excluded.options_json,
			nutrition_json = excluded.nutrition_json,
			meat_label = excluded.meat_label,
			updated_at = excluded.updated_at
	`
	_, err = tx.ExecContext(ctx, r.dialect.rebind(query),
		domain.PollConfigID, optionsJSON, nutritionJSON, domain.DefaultMeatLabel, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save poll config: %w", err)
	}

	if resetVotes {
		if _, err := tx.ExecContext(ctx, `DELETE FROM votes`); err != nil {
			return fmt.Errorf("failed to reset votes: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Seed stores cfg unless a config row already exists.
func (r *pollConfigRepository) Seed(ctx context.Context, cfg domain.PollConfig) error {
	optionsJSON, nutritionJSON, err := encodeConfig(cfg.Options, cfg.Nutrition)
	if err != nil {
		return err
	}

	meatLabel := cfg.MeatLabel
	if meatLabel == "" {
		meatLabel = domain.DefaultMeatLabel
	}

	query := `
		INSERT INTO poll_config (id, options_json, nutrition_json, meat_label, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING
	`
	_, err = r.db.ExecContext(ctx, r.dialect.rebind(query),
		domain.PollConfigID, optionsJSON, nutritionJSON, meatLabel, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to seed poll config: %w", err)
	}
	return nil
}

func encodeConfig(options []string, nutrition domain.Nutrition) (string, string, error) {
	optionsJSON, err := json.Marshal(options)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode poll options: %w", err)
	}
	if nutrition == nil {
		nutrition = domain.Nutrition{}
	}
	nutritionJSON, err := json.Marshal(nutrition)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode nutrition: %w", err)
	}
	return string(optionsJSON), string(nutritionJSON), nil
}
