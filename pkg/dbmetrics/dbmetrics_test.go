package dbmetrics

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	mu     sync.Mutex
	ops    []string
	errs   int
	pooled bool
}

func (r *fakeRecorder) ObserveDBQuery(operation string, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, operation)
	if err != nil {
		r.errs++
	}
}

func (r *fakeRecorder) SetDBPoolStats(_, _, _ int, _ int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pooled = true
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", Operation("SELECT id FROM contacts"))
	assert.Equal(t, "insert", Operation("  insert into contacts (name) values ($1)"))
	assert.Equal(t, "other", Operation("VACUUM"))
	assert.Equal(t, "unknown", Operation(""))
}

func TestDB_ObservesQueries(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	rec := &fakeRecorder{}
	db := Wrap(sqlDB, rec)

	mock.ExpectExec("UPDATE contacts").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id FROM contacts").WillReturnError(errors.New("boom"))

	_, err = db.ExecContext(context.Background(), "UPDATE contacts SET name = $1", "x")
	require.NoError(t, err)

	_, err = db.QueryContext(context.Background(), "SELECT id FROM contacts")
	require.Error(t, err)

	assert.Equal(t, []string{"update", "select"}, rec.ops)
	assert.Equal(t, 1, rec.errs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_TransactionInContext(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db := Wrap(sqlDB, nil)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM contacts").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ctx := context.Background()
	assert.False(t, IsInTransaction(ctx))
	assert.Equal(t, DBExecutor(db), GetExecutor(ctx, db))

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))

	_, err = GetExecutor(txCtx, db).ExecContext(txCtx, "DELETE FROM contacts WHERE id = $1", 1)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_CollectPoolStats(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	rec := &fakeRecorder{}
	db := Wrap(sqlDB, rec)

	stop := make(chan struct{})
	close(stop)
	db.CollectPoolStats(time.Hour, stop)

	assert.True(t, rec.pooled)
}
