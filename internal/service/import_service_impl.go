package service

import (
	"context"
	"fmt"

	"github.com/lenaweber/paceflow/internal/db"
	"github.com/lenaweber/paceflow/internal/importer"
	"github.com/lenaweber/paceflow/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
}

// NewImportService creates an ImportService that writes the whole course
// inside one transaction; a failure anywhere rolls everything back.
func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

func (s *importService) ImportCourse(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportCourseFromSchema(ctx, schema)
}

func (s *importService) ImportCourseFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	imported, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repos := repository.NewTxRepos(tx)

		if err := repos.Courses.Create(ctx, imported.Course); err != nil {
			return fmt.Errorf("creating course: %w", err)
		}
		if err := repos.Paces.Create(ctx, imported.Pace); err != nil {
			return fmt.Errorf("creating pace: %w", err)
		}
		for _, b := range imported.Blackouts {
			if err := repos.Blackouts.Create(ctx, b); err != nil {
				return fmt.Errorf("creating blackout date %q: %w", b.EventTitle, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	itemCount := 0
	for _, m := range imported.Pace.Modules {
		itemCount += len(m.Items)
	}
	return &ImportResult{
		Course:        imported.Course,
		Pace:          imported.Pace,
		ModuleCount:   len(imported.Pace.Modules),
		ItemCount:     itemCount,
		BlackoutCount: len(imported.Blackouts),
	}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
