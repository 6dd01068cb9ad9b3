package repository

import (
	"context"
	"strings"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
)

// Tx is the unit of work a service opens for a multi-statement write
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// SafeRollback is meant to be deferred right after a transaction begins.
// After a successful Commit the rollback reports a closed tx, which is not logged.
func SafeRollback(ctx context.Context, tx Tx) {
	err := tx.Rollback(ctx)
	if err == nil || strings.Contains(err.Error(), domain.ErrMsgTxClosed) {
		return
	}
	logger.FromContext(ctx).Warn("rollback failed", "error", err)
}
