package repository

import (
	"context"
	"fmt"

	"lottotrack/database"
	"lottotrack/models"

	"github.com/jackc/pgx/v5"
)

const drawColumns = `draw_no, draw_date, n1, n2, n3, n4, n5, n6, bonus`

// DrawRepository implements the DrawRepository interface
type DrawRepository struct {
	q queryable
}

// NewDrawRepository creates a new draw repository
func NewDrawRepository(db *database.DB) *DrawRepository {
	return &DrawRepository{q: db.Pool}
}

func newDrawRepositoryWithTx(tx queryable) *DrawRepository {
	return &DrawRepository{q: tx}
}

// GetAll returns every stored draw, newest first
func (r *DrawRepository) GetAll(ctx context.Context) ([]models.Draw, error) {
	query := `SELECT ` + drawColumns + ` FROM lotto_draw ORDER BY draw_no DESC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get draws: %w", err)
	}
	return collectDraws(rows)
}

// GetPage returns up to limit draws, newest first, skipping offset
func (r *DrawRepository) GetPage(ctx context.Context, offset, limit int) ([]models.Draw, error) {
	query := `
		SELECT ` + drawColumns + `
		FROM lotto_draw
		ORDER BY draw_no DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get draw page (offset %d, limit %d): %w", offset, limit, err)
	}
	return collectDraws(rows)
}

// Count returns the number of stored draws
func (r *DrawRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM lotto_draw`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count draws: %w", err)
	}
	return count, nil
}

// LatestDrawNo returns the highest stored draw number, 0 if there are none
func (r *DrawRepository) LatestDrawNo(ctx context.Context) (int, error) {
	var latest int
	if err := r.q.QueryRow(ctx, `SELECT COALESCE(MAX(draw_no), 0) FROM lotto_draw`).Scan(&latest); err != nil {
		return 0, fmt.Errorf("failed to get latest draw number: %w", err)
	}
	return latest, nil
}

// InsertIgnoringDuplicates stores the draws in one batch. Draw numbers that
// already exist are left untouched.
func (r *DrawRepository) InsertIgnoringDuplicates(ctx context.Context, draws []models.Draw) (int, error) {
	if len(draws) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO lotto_draw (` + drawColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (draw_no) DO NOTHING
	`

	batch := &pgx.Batch{}
	for _, d := range draws {
		batch.Queue(query, d.DrawNo, d.DrawDate,
			d.Numbers[0], d.Numbers[1], d.Numbers[2], d.Numbers[3], d.Numbers[4], d.Numbers[5],
			d.Bonus)
	}

	results := r.q.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for _, d := range draws {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("failed to insert draw %d: %w", d.DrawNo, err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

func collectDraws(rows pgx.Rows) ([]models.Draw, error) {
	defer rows.Close()

	var draws []models.Draw
	for rows.Next() {
		var d models.Draw
		err := rows.Scan(
			&d.DrawNo,
			&d.DrawDate,
			&d.Numbers[0],
			&d.Numbers[1],
			&d.Numbers[2],
			&d.Numbers[3],
			&d.Numbers[4],
			&d.Numbers[5],
			&d.Bonus,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan draw: %w", err)
		}
		draws = append(draws, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating draws: %w", err)
	}

	return draws, nil
}
