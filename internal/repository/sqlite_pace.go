package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lenaweber/paceflow/internal/db"
	"github.com/lenaweber/paceflow/internal/domain"
)

// SQLitePaceRepo implements PaceRepo over a SQLite database. Paces are
// stored across three tables (course_paces, pace_modules, pace_items) and
// always round-trip as a fully loaded tree.
type SQLitePaceRepo struct {
	db db.DBTX
}

// NewSQLitePaceRepo creates a new SQLitePaceRepo.
func NewSQLitePaceRepo(dbtx db.DBTX) *SQLitePaceRepo {
	return &SQLitePaceRepo{db: dbtx}
}

func (r *SQLitePaceRepo) Create(ctx context.Context, p *domain.CoursePace) error {
	query := `INSERT INTO course_paces (id, course_id, start_date, calendar_days, exclude_weekends, days_to_skip, workflow_state, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.CourseID,
		p.StartDate.Format(dateLayout),
		p.TimeToCompleteCalendarDays,
		boolToInt(p.ExcludeWeekends),
		strings.Join(p.SelectedDaysToSkip, ","),
		string(p.WorkflowState),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting pace: %w", err)
	}

	for _, m := range p.Modules {
		if err := r.insertModule(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLitePaceRepo) insertModule(ctx context.Context, m *domain.PaceModule) error {
	query := `INSERT INTO pace_modules (id, pace_id, name, position) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, m.ID, m.PaceID, m.Name, m.Position); err != nil {
		return fmt.Errorf("inserting pace module: %w", err)
	}
	for _, item := range m.Items {
		if err := r.insertItem(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLitePaceRepo) insertItem(ctx context.Context, item *domain.PaceItem) error {
	query := `INSERT INTO pace_items (id, module_id, title, item_type, duration, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.ModuleID,
		item.Title,
		string(item.ModuleItemType),
		item.Duration,
		item.Position,
		item.CreatedAt.Format(time.RFC3339),
		item.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting pace item: %w", err)
	}
	return nil
}

func (r *SQLitePaceRepo) GetByID(ctx context.Context, id string) (*domain.CoursePace, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, course_id, start_date, calendar_days, exclude_weekends, days_to_skip, workflow_state, created_at, updated_at
		FROM course_paces WHERE id = ?`, id)
	return r.scanPaceTree(ctx, row)
}

func (r *SQLitePaceRepo) GetByCourse(ctx context.Context, courseID string) (*domain.CoursePace, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, course_id, start_date, calendar_days, exclude_weekends, days_to_skip, workflow_state, created_at, updated_at
		FROM course_paces WHERE course_id = ? ORDER BY created_at DESC LIMIT 1`, courseID)
	return r.scanPaceTree(ctx, row)
}

func (r *SQLitePaceRepo) scanPaceTree(ctx context.Context, row *sql.Row) (*domain.CoursePace, error) {
	var p domain.CoursePace
	var startDateStr, daysToSkip, stateStr, createdAtStr, updatedAtStr string
	var excludeWeekends int

	err := row.Scan(&p.ID, &p.CourseID, &startDateStr, &p.TimeToCompleteCalendarDays,
		&excludeWeekends, &daysToSkip, &stateStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("pace not found")
		}
		return nil, fmt.Errorf("scanning pace: %w", err)
	}

	p.ExcludeWeekends = intToBool(excludeWeekends)
	if daysToSkip != "" {
		p.SelectedDaysToSkip = strings.Split(daysToSkip, ",")
	}
	p.WorkflowState = domain.PaceWorkflowState(stateStr)

	var parseErr error
	if p.StartDate, parseErr = time.Parse(dateLayout, startDateStr); parseErr != nil {
		return nil, fmt.Errorf("parsing start_date: %w", parseErr)
	}
	if p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr); parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	if p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr); parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	if p.Modules, err = r.loadModules(ctx, p.ID); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLitePaceRepo) loadModules(ctx context.Context, paceID string) ([]*domain.PaceModule, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, pace_id, name, position
		FROM pace_modules WHERE pace_id = ? ORDER BY position`, paceID)
	if err != nil {
		return nil, fmt.Errorf("listing pace modules: %w", err)
	}
	defer rows.Close()

	var modules []*domain.PaceModule
	for rows.Next() {
		var m domain.PaceModule
		if err := rows.Scan(&m.ID, &m.PaceID, &m.Name, &m.Position); err != nil {
			return nil, fmt.Errorf("scanning pace module: %w", err)
		}
		modules = append(modules, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pace modules: %w", err)
	}

	for _, m := range modules {
		if m.Items, err = r.loadItems(ctx, m.ID); err != nil {
			return nil, err
		}
	}
	return modules, nil
}

func (r *SQLitePaceRepo) loadItems(ctx context.Context, moduleID string) ([]*domain.PaceItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, module_id, title, item_type, duration, position, created_at, updated_at
		FROM pace_items WHERE module_id = ? ORDER BY position`, moduleID)
	if err != nil {
		return nil, fmt.Errorf("listing pace items: %w", err)
	}
	defer rows.Close()

	var items []*domain.PaceItem
	for rows.Next() {
		var item domain.PaceItem
		var typeStr, createdAtStr, updatedAtStr string
		if err := rows.Scan(&item.ID, &item.ModuleID, &item.Title, &typeStr,
			&item.Duration, &item.Position, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning pace item: %w", err)
		}
		item.ModuleItemType = domain.ModuleItemType(typeStr)

		var parseErr error
		if item.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr); parseErr != nil {
			return nil, fmt.Errorf("parsing item created_at: %w", parseErr)
		}
		if item.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr); parseErr != nil {
			return nil, fmt.Errorf("parsing item updated_at: %w", parseErr)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pace items: %w", err)
	}
	return items, nil
}

func (r *SQLitePaceRepo) Update(ctx context.Context, p *domain.CoursePace) error {
	query := `UPDATE course_paces SET start_date = ?, calendar_days = ?, exclude_weekends = ?, days_to_skip = ?, workflow_state = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.StartDate.Format(dateLayout),
		p.TimeToCompleteCalendarDays,
		boolToInt(p.ExcludeWeekends),
		strings.Join(p.SelectedDaysToSkip, ","),
		string(p.WorkflowState),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating pace: %w", err)
	}
	return nil
}

func (r *SQLitePaceRepo) UpdateItemDuration(ctx context.Context, itemID string, duration int) error {
	query := `UPDATE pace_items SET duration = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, duration, nowUTC(), itemID)
	if err != nil {
		return fmt.Errorf("updating item duration: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("pace item not found: %s", itemID)
	}
	return nil
}

func (r *SQLitePaceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM course_paces WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting pace: %w", err)
	}
	return nil
}
