package repository

import (
	"context"
	"fmt"

	"lottotrack/database"
	"lottotrack/models"

	"github.com/jackc/pgx/v5"
)

const pickColumns = `pick_id, user_id, draw_no, n1, n2, n3, n4, n5, n6, reg_date`

// PickRepository implements the PickRepository interface
type PickRepository struct {
	q queryable
}

// NewPickRepository creates a new pick repository
func NewPickRepository(db *database.DB) *PickRepository {
	return &PickRepository{q: db.Pool}
}

func newPickRepositoryWithTx(tx queryable) *PickRepository {
	return &PickRepository{q: tx}
}

// Save stores a pick that is not bound to a draw
func (r *PickRepository) Save(ctx context.Context, userID int64, numbers [6]int) (*models.Pick, error) {
	query := `
		INSERT INTO user_pick (user_id, draw_no, n1, n2, n3, n4, n5, n6)
		VALUES ($1, NULL, $2, $3, $4, $5, $6, $7)
		RETURNING ` + pickColumns

	row := r.q.QueryRow(ctx, query, userID,
		numbers[0], numbers[1], numbers[2], numbers[3], numbers[4], numbers[5])

	pick, err := scanPick(row)
	if err != nil {
		return nil, fmt.Errorf("failed to save pick for user %d: %w", userID, err)
	}
	return pick, nil
}

// ListByUser returns the user's picks, newest first
func (r *PickRepository) ListByUser(ctx context.Context, userID int64) ([]models.Pick, error) {
	query := `
		SELECT ` + pickColumns + `
		FROM user_pick
		WHERE user_id = $1
		ORDER BY reg_date DESC, pick_id DESC
	`

	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get picks for user %d: %w", userID, err)
	}
	defer rows.Close()

	var picks []models.Pick
	for rows.Next() {
		pick, err := scanPick(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pick: %w", err)
		}
		picks = append(picks, *pick)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating picks: %w", err)
	}

	return picks, nil
}

// Delete removes the pick only when it belongs to the user
func (r *PickRepository) Delete(ctx context.Context, pickID, userID int64) (bool, error) {
	result, err := r.q.Exec(ctx, `DELETE FROM user_pick WHERE pick_id = $1 AND user_id = $2`, pickID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete pick %d: %w", pickID, err)
	}
	return result.RowsAffected() > 0, nil
}

func scanPick(row pgx.Row) (*models.Pick, error) {
	var p models.Pick
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.DrawNo,
		&p.Numbers[0],
		&p.Numbers[1],
		&p.Numbers[2],
		&p.Numbers[3],
		&p.Numbers[4],
		&p.Numbers[5],
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
