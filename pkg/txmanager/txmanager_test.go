package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labims/LIMS-BookingService/pkg/dbmetrics"
)

// fakeTx транзакция с настраиваемыми ошибками коммита
type fakeTx struct {
	commitErr  error
	committed  int
	rolledBack int
}

func (t *fakeTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) Commit() error {
	t.committed++
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rolledBack++
	return nil
}

// fakeBeginner выдает по одной транзакции на каждую попытку
type fakeBeginner struct {
	beginErr error
	attempts int
	txs      []*fakeTx
	// commitErrs[i] — ошибка коммита i-й попытки; за пределами среза коммит успешен
	commitErrs []error
}

func (b *fakeBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}

	tx := &fakeTx{}
	if b.attempts < len(b.commitErrs) {
		tx.commitErr = b.commitErrs[b.attempts]
	}
	b.attempts++
	b.txs = append(b.txs, tx)

	return tx, nil
}

func serializationError() *pq.Error {
	return &pq.Error{Code: "40001"}
}

func TestDoSerializable_Success(t *testing.T) {
	beginner := &fakeBeginner{}
	manager := NewTransactionManager(beginner)

	calls := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, beginner.attempts)
	assert.Equal(t, 1, beginner.txs[0].committed)
}

func TestDoSerializable_RetriesCommitSerializationFailure(t *testing.T) {
	// Конфликт сериализации на COMMIT дважды, третья попытка проходит
	beginner := &fakeBeginner{
		commitErrs: []error{serializationError(), serializationError()},
	}
	manager := NewTransactionManager(beginner)

	calls := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, beginner.attempts)
	assert.Equal(t, 1, beginner.txs[2].committed)
}

func TestDoSerializable_ExhaustsRetriesOnPersistentConflict(t *testing.T) {
	beginner := &fakeBeginner{
		commitErrs: []error{serializationError(), serializationError(), serializationError()},
	}
	manager := NewTransactionManager(beginner)

	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetriesExhausted)
	assert.Equal(t, maxRetries, beginner.attempts)
}

func TestDoSerializable_RetriesWrappedConflictFromRepository(t *testing.T) {
	// Репозитории оборачивают ошибку БД, сохраняя ее в цепочке —
	// код 40001 должен быть виден через errors.As и вызывать повтор
	errExec := errors.New("storage: failed to execute query")
	wrapped := fmt.Errorf("%w: Create - execute insert: %w", errExec, serializationError())

	beginner := &fakeBeginner{}
	manager := NewTransactionManager(beginner)

	calls := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return wrapped
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, beginner.txs[0].rolledBack)
	assert.Equal(t, 1, beginner.txs[1].committed)
}

func TestDoSerializable_DoesNotRetryOtherErrors(t *testing.T) {
	beginner := &fakeBeginner{}
	manager := NewTransactionManager(beginner)

	errBusiness := errors.New("booking not found")

	calls := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return errBusiness
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errBusiness)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, beginner.txs[0].rolledBack)
}

func TestDoSerializable_DoesNotRetryOtherCommitErrors(t *testing.T) {
	beginner := &fakeBeginner{
		commitErrs: []error{errors.New("connection reset")},
	}
	manager := NewTransactionManager(beginner)

	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCommitTx)
	assert.Equal(t, 1, beginner.attempts)
}

func TestDoSerializable_BeginError(t *testing.T) {
	beginner := &fakeBeginner{beginErr: errors.New("connection refused")}
	manager := NewTransactionManager(beginner)

	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		t.Fatal("fn must not be called when BeginTx fails")
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBeginTx)
}
