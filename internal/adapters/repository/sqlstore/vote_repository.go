package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/mealpoll/internal/core/domain"
	"github.com/vncsmyrnk/mealpoll/internal/core/ports"
)

type voteRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewVoteRepository(db *sql.DB, dialect Dialect) ports.VoteRepository {
	return &voteRepository{
		db:      db,
		dialect: dialect,
	}
}

func (r *voteRepository) SaveVote(ctx context.Context, vote *domain.Vote) error {
	query := `
		INSERT INTO votes (id, device_id, option_name, created_at)
		VALUES (?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, r.dialect.rebind(query),
		vote.ID, vote.DeviceID, vote.OptionName, vote.CreatedAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyVoted
		}
		return fmt.Errorf("failed to save vote: %w", err)
	}
	return nil
}

// GetByDevice returns nil when the device has not voted.
func (r *voteRepository) GetByDevice(ctx context.Context, deviceID string) (*domain.Vote, error) {
	query := `
		SELECT id, device_id, option_name, created_at
		FROM votes
		WHERE device_id = ?
	`

	var (
		vote      domain.Vote
		createdAt timestamp
	)
	err := r.db.QueryRowContext(ctx, r.dialect.rebind(query), deviceID).Scan(
		&vote.ID, &vote.DeviceID, &vote.OptionName, &createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}
	vote.CreatedAt = createdAt.Time

	return &vote, nil
}

func (r *voteRepository) CountByOption(ctx context.Context) (map[string]int64, error) {
	query := `
		SELECT option_name, COUNT(*)
		FROM votes
		GROUP BY option_name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			option string
			n      int64
		)
		if err := rows.Scan(&option, &n); err != nil {
			return nil, fmt.Errorf("failed to scan vote count: %w", err)
		}
		counts[option] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vote counts: %w", err)
	}

	return counts, nil
}
