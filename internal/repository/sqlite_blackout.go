package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lenaweber/paceflow/internal/db"
	"github.com/lenaweber/paceflow/internal/domain"
)

// SQLiteBlackoutRepo implements BlackoutRepo over a SQLite database.
type SQLiteBlackoutRepo struct {
	db db.DBTX
}

// NewSQLiteBlackoutRepo creates a new SQLiteBlackoutRepo.
func NewSQLiteBlackoutRepo(dbtx db.DBTX) *SQLiteBlackoutRepo {
	return &SQLiteBlackoutRepo{db: dbtx}
}

func (r *SQLiteBlackoutRepo) Create(ctx context.Context, b *domain.BlackoutDate) error {
	query := `INSERT INTO blackout_dates (id, course_id, event_title, start_date, end_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.CourseID,
		b.EventTitle,
		b.StartDate.Format(dateLayout),
		b.EndDate.Format(dateLayout),
		b.CreatedAt.Format(time.RFC3339),
		b.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting blackout date: %w", err)
	}
	return nil
}

func (r *SQLiteBlackoutRepo) ListByCourse(ctx context.Context, courseID string) ([]domain.BlackoutDate, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, course_id, event_title, start_date, end_date, created_at, updated_at
		FROM blackout_dates WHERE course_id = ? ORDER BY start_date`, courseID)
	if err != nil {
		return nil, fmt.Errorf("listing blackout dates: %w", err)
	}
	defer rows.Close()

	var blackouts []domain.BlackoutDate
	for rows.Next() {
		var b domain.BlackoutDate
		var startStr, endStr, createdAtStr, updatedAtStr string
		if err := rows.Scan(&b.ID, &b.CourseID, &b.EventTitle, &startStr, &endStr, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning blackout date: %w", err)
		}

		var parseErr error
		if b.StartDate, parseErr = time.Parse(dateLayout, startStr); parseErr != nil {
			return nil, fmt.Errorf("parsing blackout start_date: %w", parseErr)
		}
		if b.EndDate, parseErr = time.Parse(dateLayout, endStr); parseErr != nil {
			return nil, fmt.Errorf("parsing blackout end_date: %w", parseErr)
		}
		if b.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr); parseErr != nil {
			return nil, fmt.Errorf("parsing blackout created_at: %w", parseErr)
		}
		if b.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr); parseErr != nil {
			return nil, fmt.Errorf("parsing blackout updated_at: %w", parseErr)
		}
		blackouts = append(blackouts, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating blackout dates: %w", err)
	}
	return blackouts, nil
}

func (r *SQLiteBlackoutRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blackout_dates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting blackout date: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("blackout date not found: %s", id)
	}
	return nil
}
