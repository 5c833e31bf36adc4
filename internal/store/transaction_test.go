package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestRunInTransaction_Commits(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bundles").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO bundles (id, label) VALUES ($1, $2)", "article", "Article")
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	fnErr := errors.New("constraint violated")
	err := RunInTransaction(context.Background(), db, func(context.Context, *sql.Tx) error {
		return fnErr
	})

	assert.ErrorIs(t, err, fnErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_RollbackFailure(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	rbErr := errors.New("connection lost")
	mock.ExpectRollback().WillReturnError(rbErr)

	fnErr := errors.New("constraint violated")
	err := RunInTransaction(context.Background(), db, func(context.Context, *sql.Tx) error {
		return fnErr
	})

	assert.ErrorIs(t, err, fnErr)
	assert.ErrorIs(t, err, rbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_BeginFailure(t *testing.T) {
	db, mock := newMockDB(t)
	beginErr := errors.New("too many connections")
	mock.ExpectBegin().WillReturnError(beginErr)

	called := false
	err := RunInTransaction(context.Background(), db, func(context.Context, *sql.Tx) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, beginErr)
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_CommitFailure(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	commitErr := errors.New("serialization failure")
	mock.ExpectCommit().WillReturnError(commitErr)

	err := RunInTransaction(context.Background(), db, func(context.Context, *sql.Tx) error {
		return nil
	})

	assert.ErrorIs(t, err, commitErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_RollsBackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		_ = RunInTransaction(context.Background(), db, func(context.Context, *sql.Tx) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
