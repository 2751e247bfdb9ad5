package repository

import (
	"context"
	"fmt"

	"lottotrack/database"
	"lottotrack/models"

	"github.com/jackc/pgx/v5"
)

// StatRepository implements the StatRepository interface
type StatRepository struct {
	q queryable
}

// NewStatRepository creates a new stat repository
func NewStatRepository(db *database.DB) *StatRepository {
	return &StatRepository{q: db.Pool}
}

func newStatRepositoryWithTx(tx queryable) *StatRepository {
	return &StatRepository{q: tx}
}

// ReplaceAll swaps the stored stats for the given set. It must run inside a
// transaction: the table lock serialises concurrent refreshes and readers
// keep seeing the previous set until commit.
func (r *StatRepository) ReplaceAll(ctx context.Context, stats []models.NumberStat) error {
	if _, err := r.q.Exec(ctx, `LOCK TABLE lotto_stat IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return fmt.Errorf("failed to lock number stats: %w", err)
	}

	if _, err := r.q.Exec(ctx, `DELETE FROM lotto_stat`); err != nil {
		return fmt.Errorf("failed to clear number stats: %w", err)
	}

	copied, err := r.q.CopyFrom(ctx,
		pgx.Identifier{"lotto_stat"},
		[]string{"number", "frequency", "last_draw_gap"},
		pgx.CopyFromSlice(len(stats), func(i int) ([]any, error) {
			return []any{stats[i].Number, stats[i].Frequency, stats[i].LastDrawGap}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to insert number stats: %w", err)
	}
	if int(copied) != len(stats) {
		return fmt.Errorf("inserted %d number stats, expected %d", copied, len(stats))
	}

	return nil
}

// GetAll returns every stored stat ordered by number
func (r *StatRepository) GetAll(ctx context.Context) ([]models.NumberStat, error) {
	query := `
		SELECT number, frequency, last_draw_gap
		FROM lotto_stat
		ORDER BY number
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get number stats: %w", err)
	}
	defer rows.Close()

	var stats []models.NumberStat
	for rows.Next() {
		var s models.NumberStat
		if err := rows.Scan(&s.Number, &s.Frequency, &s.LastDrawGap); err != nil {
			return nil, fmt.Errorf("failed to scan number stat: %w", err)
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating number stats: %w", err)
	}

	return stats, nil
}

// Count returns the number of stored stat rows
func (r *StatRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM lotto_stat`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count number stats: %w", err)
	}
	return count, nil
}
