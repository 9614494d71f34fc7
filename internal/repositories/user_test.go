package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/pereval-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUserRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewUserReadRepository(db, GetTxFromContext)
	writeRepo := NewUserWriteRepository(db, GetTxFromContext)
	ctx := context.Background()

	id, err := writeRepo.Save(ctx, &models.UserDB{
		Username:  "qwerty",
		Email:     strPtr("qwerty@mail.ru"),
		Phone:     strPtr("+7 555 55 55"),
		FirstName: "Пупкин",
		LastName:  "Василий",
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	t.Run("GetByEmail", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "qwerty@mail.ru")
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "qwerty", user.Username)
		assert.Equal(t, "Пупкин", user.FirstName)
		assert.False(t, user.DateJoined.IsZero())
	})

	t.Run("GetByPhone", func(t *testing.T) {
		user, err := readRepo.GetByPhone(ctx, "+7 555 55 55")
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, id, user.ID)
	})

	t.Run("missing user is nil", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "nobody@mail.ru")
		assert.NoError(t, err)
		assert.Nil(t, user)

		user, err = readRepo.GetByPhone(ctx, "000")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("ExistsByUsername", func(t *testing.T) {
		exists, err := readRepo.ExistsByUsername(ctx, "qwerty")
		assert.NoError(t, err)
		assert.True(t, exists)

		exists, err = readRepo.ExistsByUsername(ctx, "qwerty1")
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("users without email or phone coexist", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, &models.UserDB{Username: "phoneless1", Email: strPtr("a@mail.ru")})
		assert.NoError(t, err)
		_, err = writeRepo.Save(ctx, &models.UserDB{Username: "phoneless2", Email: strPtr("b@mail.ru")})
		assert.NoError(t, err)
	})

	t.Run("duplicate email is a unique violation", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, &models.UserDB{Username: "other", Email: strPtr("qwerty@mail.ru")})
		assert.ErrorIs(t, err, models.ErrUniqueViolation)
	})

	t.Run("transaction stays usable after a violation", func(t *testing.T) {
		var newID int64
		err := NewTransactor(db).WithinTx(ctx, func(ctx context.Context) error {
			_, err := writeRepo.Save(ctx, &models.UserDB{Username: "dup", Phone: strPtr("+7 555 55 55")})
			if !errors.Is(err, models.ErrUniqueViolation) {
				return errors.New("expected unique violation")
			}

			existing, err := readRepo.GetByPhone(ctx, "+7 555 55 55")
			if err != nil || existing == nil {
				return errors.New("expected existing user")
			}

			newID, err = writeRepo.Save(ctx, &models.UserDB{Username: "fresh", Email: strPtr("fresh@mail.ru")})
			return err
		})
		assert.NoError(t, err)

		user, err := readRepo.GetByEmail(ctx, "fresh@mail.ru")
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, newID, user.ID)
	})
}

func TestUserWriteRepository_Savepoint(t *testing.T) {
	insert := regexp.QuoteMeta("INSERT INTO users")

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr error
	}{
		{
			name: "released on success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("SAVEPOINT user_insert").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(insert).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
				mock.ExpectExec("RELEASE SAVEPOINT user_insert").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantID: 7,
		},
		{
			name: "rolled back on unique violation",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("SAVEPOINT user_insert").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(insert).WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
				mock.ExpectExec("ROLLBACK TO SAVEPOINT user_insert").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: models.ErrUniqueViolation,
		},
		{
			name: "other errors are returned as is",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("SAVEPOINT user_insert").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(insert).WillReturnError(errConnReset)
				mock.ExpectExec("ROLLBACK TO SAVEPOINT user_insert").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: errConnReset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newSQLMock(t)
			mock.ExpectBegin()
			tt.setup(mock)

			tx, err := db.Beginx()
			require.NoError(t, err)
			ctx := setTxToContext(context.Background(), tx)

			repo := NewUserWriteRepository(db, GetTxFromContext)
			id, err := repo.Save(ctx, &models.UserDB{Username: "u", Email: strPtr("u@mail.ru")})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantID, id)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserWriteRepository_NoSavepointOutsideTx(t *testing.T) {
	db, mock := newSQLMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_phone_key"})

	_, err := NewUserWriteRepository(db, GetTxFromContext).Save(context.Background(), &models.UserDB{Username: "u"})

	assert.ErrorIs(t, err, models.ErrUniqueViolation)
	assert.Contains(t, err.Error(), "users_phone_key")
	assert.NoError(t, mock.ExpectationsWereMet())
}

var errConnReset = errors.New("connection reset by peer")
