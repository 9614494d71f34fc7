package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/pereval-api/internal/logger"
	"github.com/sbilibin2017/pereval-api/internal/models"
)

// ActivityTypeReadRepository reads the activity type reference table
type ActivityTypeReadRepository struct {
	db *sqlx.DB
}

func NewActivityTypeReadRepository(db *sqlx.DB) *ActivityTypeReadRepository {
	return &ActivityTypeReadRepository{db: db}
}

// GetByID returns the activity type, or nil if it does not exist.
func (r *ActivityTypeReadRepository) GetByID(ctx context.Context, id int64) (*models.ActivityTypeDB, error) {
	const query = `
		SELECT id, title
		FROM activity_types
		WHERE id = $1
	`

	var activityType models.ActivityTypeDB
	err := r.db.GetContext(ctx, &activityType, query, id)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", activityType,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &activityType, nil
}
