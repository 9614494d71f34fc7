package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/pereval-api/internal/logger"
	"github.com/sbilibin2017/pereval-api/internal/models"
)

// pgUniqueViolation is the PostgreSQL SQLSTATE of a unique constraint hit
const pgUniqueViolation = "23505"

const userColumns = "id, username, email, phone, first_name, last_name, patronymic, date_joined"

// UserReadRepository handles user lookups
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByEmail returns the user with the given email, or nil if none exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	return r.getBy(ctx, "email", email)
}

// GetByPhone returns the user with the given phone, or nil if none exists.
func (r *UserReadRepository) GetByPhone(ctx context.Context, phone string) (*models.UserDB, error) {
	return r.getBy(ctx, "phone", phone)
}

func (r *UserReadRepository) getBy(ctx context.Context, column, value string) (*models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE ` + column + ` = $1
		LIMIT 1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, value)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{value},
		"result", user.ID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByUsername reports whether the username is taken.
func (r *UserReadRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, username)

	logger.Log.Infow(
		"query", query,
		"args", []any{username},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// UserWriteRepository handles user inserts
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts the user and returns its id. Inside a transaction the insert runs
// under a savepoint, so a unique violation leaves the transaction usable.
// Unique violations are returned wrapping models.ErrUniqueViolation.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) (int64, error) {
	const query = `
		INSERT INTO users (username, email, phone, first_name, last_name, patronymic, date_joined)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id
	`
	args := []any{user.Username, user.Email, user.Phone, user.FirstName, user.LastName, user.Patronymic}

	var tx *sqlx.Tx
	if r.txGetter != nil {
		tx = r.txGetter(ctx)
	}
	if tx != nil {
		if _, err := tx.ExecContext(ctx, "SAVEPOINT user_insert"); err != nil {
			logger.Log.Errorw("failed to create savepoint", "error", err)
			return 0, err
		}
	}

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	if tx != nil {
		savepoint := "RELEASE SAVEPOINT user_insert"
		if err != nil {
			savepoint = "ROLLBACK TO SAVEPOINT user_insert"
		}
		if _, spErr := tx.ExecContext(ctx, savepoint); spErr != nil {
			logger.Log.Errorw("failed to finish savepoint", "statement", savepoint, "error", spErr)
			if err == nil {
				return 0, spErr
			}
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return 0, fmt.Errorf("%w: %s", models.ErrUniqueViolation, pgErr.ConstraintName)
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}
