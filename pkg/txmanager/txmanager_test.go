package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acornglobus/court-booking-service/pkg/dbmetrics"
)

type fakeTx struct {
	commits   int
	rollbacks int
}

func (t *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	t.commits++
	return nil
}

func (t *fakeTx) Rollback() error {
	t.rollbacks++
	return nil
}

type fakeDB struct {
	txs  []*fakeTx
	opts []*sql.TxOptions
}

func (f *fakeDB) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	tx := &fakeTx{}
	f.txs = append(f.txs, tx)
	f.opts = append(f.opts, opts)
	return tx, nil
}

func serializationErr() error {
	return &pq.Error{Code: serializationFailure}
}

func TestDoSerializable_CommitsOnSuccess(t *testing.T) {
	db := &fakeDB{}
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		// Транзакция доступна репозиториям через context
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})
	require.NoError(t, err)

	require.Len(t, db.txs, 1)
	assert.Equal(t, 1, db.txs[0].commits)
	assert.Equal(t, 0, db.txs[0].rollbacks)
	assert.Equal(t, sql.LevelSerializable, db.opts[0].Isolation)
}

func TestDoSerializable_RollsBackWhenFnFails(t *testing.T) {
	db := &fakeDB{}
	m := NewTransactionManager(db)

	insertFailed := errors.New("insert equipment line: broken")

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return insertFailed
	})
	require.ErrorIs(t, err, insertFailed)

	// Ошибка внутри fn откатывает всю транзакцию: бронирование без
	// строк инвентаря не фиксируется
	require.Len(t, db.txs, 1)
	assert.Equal(t, 0, db.txs[0].commits)
	assert.Equal(t, 1, db.txs[0].rollbacks)
}

func TestDoSerializable_RetriesSerializationFailure(t *testing.T) {
	db := &fakeDB{}
	m := NewTransactionManager(db)

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return serializationErr()
		}
		return nil
	})
	require.NoError(t, err)

	require.Len(t, db.txs, 2)
	assert.Equal(t, 1, db.txs[0].rollbacks)
	assert.Equal(t, 0, db.txs[0].commits)
	assert.Equal(t, 1, db.txs[1].commits)
}

func TestDoSerializable_RetriesExhausted(t *testing.T) {
	db := &fakeDB{}
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return serializationErr()
	})
	require.Error(t, err)

	var pqErr *pq.Error
	assert.True(t, errors.As(err, &pqErr))

	require.Len(t, db.txs, maxRetries)
	for _, tx := range db.txs {
		assert.Equal(t, 0, tx.commits)
		assert.Equal(t, 1, tx.rollbacks)
	}
}

func TestDoSerializable_NonRetryableErrorNotRetried(t *testing.T) {
	db := &fakeDB{}
	m := NewTransactionManager(db)

	boom := errors.New("constraint violated")

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}
