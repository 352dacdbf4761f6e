package pgsql

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"

	"github.com/elitecrew/elite-crew-backend/internal/apperrors"
)

// stubTx satisfies pgx.Tx through embedding; only Rollback is wired.
type stubTx struct {
	pgx.Tx
	rollbackErr error
}

func (s stubTx) Rollback(_ context.Context) error { return s.rollbackErr }

func TestRollback(t *testing.T) {
	repo := &BaseRepository{}
	ctx := context.Background()

	t.Run("clean rollback", func(t *testing.T) {
		assert.NoError(t, repo.Rollback(ctx, stubTx{}))
	})

	t.Run("deferred rollback after commit is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.Rollback(ctx, stubTx{rollbackErr: pgx.ErrTxClosed}))
	})

	t.Run("real failure surfaces as AppError", func(t *testing.T) {
		err := repo.Rollback(ctx, stubTx{rollbackErr: errors.New("connection reset")})
		var appErr *apperrors.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 500, appErr.Code)
	})
}
