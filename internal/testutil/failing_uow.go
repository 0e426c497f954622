package testutil

import (
	"context"
	"fmt"

	"github.com/lenaweber/paceflow/internal/db"
)

// FailingUoW wraps a real UnitOfWork and injects a failure after the
// callback succeeds, forcing a rollback. Used to verify that multi-entity
// writes leave no partial rows behind.
type FailingUoW struct {
	Inner db.UnitOfWork
}

func (f *FailingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return f.Inner.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := fn(ctx, tx); err != nil {
			return err
		}
		return fmt.Errorf("injected failure after callback")
	})
}
