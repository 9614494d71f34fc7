package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newSQLMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestTransactor_Commit(t *testing.T) {
	db, mock := newSQLMock(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	called := false
	err := NewTransactor(db).WithinTx(context.Background(), func(ctx context.Context) error {
		called = true
		assert.NotNil(t, GetTxFromContext(ctx))
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_RollbackOnError(t *testing.T) {
	db, mock := newSQLMock(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	fnErr := errors.New("insert failed")
	err := NewTransactor(db).WithinTx(context.Background(), func(ctx context.Context) error {
		return fnErr
	})

	assert.ErrorIs(t, err, fnErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_BeginError(t *testing.T) {
	db, mock := newSQLMock(t)

	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	called := false
	err := NewTransactor(db).WithinTx(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.False(t, called)
}

func TestTransactor_CommitError(t *testing.T) {
	db, mock := newSQLMock(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(sql.ErrConnDone)

	err := NewTransactor(db).WithinTx(context.Background(), func(ctx context.Context) error {
		return nil
	})

	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_Panic(t *testing.T) {
	db, mock := newSQLMock(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		NewTransactor(db).WithinTx(context.Background(), func(ctx context.Context) error {
			panic("test panic")
		})
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_JoinsOuterTransaction(t *testing.T) {
	db, mock := newSQLMock(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	transactor := NewTransactor(db)
	err := transactor.WithinTx(context.Background(), func(ctx context.Context) error {
		outer := GetTxFromContext(ctx)
		return transactor.WithinTx(ctx, func(ctx context.Context) error {
			assert.Same(t, outer, GetTxFromContext(ctx))
			return nil
		})
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecutor(t *testing.T) {
	db, mock := newSQLMock(t)
	mock.ExpectBegin()

	tx, err := db.Beginx()
	assert.NoError(t, err)

	ctx := setTxToContext(context.Background(), tx)

	assert.Equal(t, sqlx.ExtContext(tx), executor(ctx, db, GetTxFromContext))
	assert.Equal(t, sqlx.ExtContext(db), executor(context.Background(), db, GetTxFromContext))
	assert.Equal(t, sqlx.ExtContext(db), executor(ctx, db, nil))
}
