package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lenaweber/paceflow/internal/db"
	"github.com/lenaweber/paceflow/internal/domain"
)

// SQLiteCourseRepo implements CourseRepo over a SQLite database.
type SQLiteCourseRepo struct {
	db db.DBTX
}

// NewSQLiteCourseRepo creates a new SQLiteCourseRepo.
func NewSQLiteCourseRepo(dbtx db.DBTX) *SQLiteCourseRepo {
	return &SQLiteCourseRepo{db: dbtx}
}

const dateLayout = "2006-01-02"

const courseColumns = `id, code, name, term, status, archived_at, created_at, updated_at`

func (r *SQLiteCourseRepo) Create(ctx context.Context, c *domain.Course) error {
	query := `INSERT INTO courses (` + courseColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Code,
		c.Name,
		c.Term,
		string(c.Status),
		nullableTimeToString(c.ArchivedAt, time.RFC3339),
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting course: %w", err)
	}
	return nil
}

func (r *SQLiteCourseRepo) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = ?`, id)
	return scanCourse(row)
}

func (r *SQLiteCourseRepo) GetByCode(ctx context.Context, code string) (*domain.Course, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+courseColumns+` FROM courses WHERE UPPER(code) = UPPER(?)`, code)
	return scanCourse(row)
}

func (r *SQLiteCourseRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses`
	if !includeArchived {
		query += ` WHERE archived_at IS NULL`
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*domain.Course
	for rows.Next() {
		c, err := scanCourseFromRows(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}
	return courses, nil
}

func (r *SQLiteCourseRepo) Update(ctx context.Context, c *domain.Course) error {
	query := `UPDATE courses SET code = ?, name = ?, term = ?, status = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		c.Code,
		c.Name,
		c.Term,
		string(c.Status),
		c.UpdatedAt.Format(time.RFC3339),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating course: %w", err)
	}
	return nil
}

func (r *SQLiteCourseRepo) Archive(ctx context.Context, id string) error {
	now := nowUTC()
	query := `UPDATE courses SET status = 'archived', archived_at = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, now, now, id)
	if err != nil {
		return fmt.Errorf("archiving course: %w", err)
	}
	return nil
}

func (r *SQLiteCourseRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting course: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourseRow(s rowScanner) (*domain.Course, error) {
	var c domain.Course
	var statusStr, createdAtStr, updatedAtStr string
	var archivedAtStr sql.NullString

	err := s.Scan(&c.ID, &c.Code, &c.Name, &c.Term, &statusStr, &archivedAtStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("course not found")
		}
		return nil, fmt.Errorf("scanning course: %w", err)
	}

	c.Status = domain.CourseStatus(statusStr)
	c.ArchivedAt = parseNullableTime(archivedAtStr, time.RFC3339)

	var parseErr error
	if c.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr); parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	if c.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr); parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &c, nil
}

func scanCourse(row *sql.Row) (*domain.Course, error) {
	return scanCourseRow(row)
}

func scanCourseFromRows(rows *sql.Rows) (*domain.Course, error) {
	return scanCourseRow(rows)
}
