package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/exchange_audit_app/internal/apperrors"
	portsrepo "github.com/SscSPs/exchange_audit_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// TxBeginner is implemented by *pgxpool.Pool and pgxmock pools.
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// PgxTxManager implements portsrepo.TransactionManager on a pgx pool.
type PgxTxManager struct {
	pool TxBeginner
}

var _ portsrepo.TransactionManager = (*PgxTxManager)(nil)

// NewPgxTxManager creates a new PgxTxManager.
func NewPgxTxManager(pool TxBeginner) *PgxTxManager {
	return &PgxTxManager{pool: pool}
}

// WithTx begins a transaction, runs fn and commits. Errors returned by fn are passed
// through untouched so callers can still match domain errors.
func (m *PgxTxManager) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, apperrors.NewAppError(500, "failed to rollback transaction", rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}
