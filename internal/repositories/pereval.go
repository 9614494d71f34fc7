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

// PerevalWriteRepository handles writes of perevals and the rows they own
type PerevalWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPerevalWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PerevalWriteRepository {
	return &PerevalWriteRepository{db: db, txGetter: txGetter}
}

// SaveCoords inserts a coordinates row and returns its id.
func (r *PerevalWriteRepository) SaveCoords(ctx context.Context, coords *models.CoordsDB) (int64, error) {
	const query = `
		INSERT INTO coords (latitude, longitude, height)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.insert(ctx, query, coords.Latitude, coords.Longitude, coords.Height)
}

// SaveLevel inserts a level row and returns its id.
func (r *PerevalWriteRepository) SaveLevel(ctx context.Context, level *models.LevelDB) (int64, error) {
	const query = `
		INSERT INTO levels (winter, summer, autumn, spring)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.insert(ctx, query, level.Winter, level.Summer, level.Autumn, level.Spring)
}

// Save inserts a pereval and returns its id.
func (r *PerevalWriteRepository) Save(ctx context.Context, p *models.PerevalDB) (int64, error) {
	const query = `
		INSERT INTO perevals (beauty_title, title, other_titles, "connect", add_time, status,
		                      user_id, coords_id, level_id, activity_type_id)
		VALUES ($1, $2, $3, $4, NOW(), $5, $6, $7, $8, $9)
		RETURNING id
	`
	return r.insert(ctx, query,
		p.BeautyTitle, p.Title, p.OtherTitles, p.Connect, p.Status,
		p.UserID, p.CoordsID, p.LevelID, p.ActivityTypeID,
	)
}

// AttachImage inserts an image row and links it to the pereval. It returns the image id.
func (r *PerevalWriteRepository) AttachImage(ctx context.Context, perevalID int64, image *models.ImageDB) (int64, error) {
	const imageQuery = `
		INSERT INTO images (data, title, date_added)
		VALUES ($1, $2, NOW())
		RETURNING id
	`
	imageID, err := r.insert(ctx, imageQuery, image.Data, image.Title)
	if err != nil {
		return 0, err
	}

	const linkQuery = `
		INSERT INTO pereval_images (pereval_id, image_id)
		VALUES ($1, $2)
	`
	if err := r.exec(ctx, linkQuery, perevalID, imageID); err != nil {
		return 0, err
	}
	return imageID, nil
}

// DetachImages removes every image link of the pereval. Image rows are kept.
func (r *PerevalWriteRepository) DetachImages(ctx context.Context, perevalID int64) error {
	const query = `DELETE FROM pereval_images WHERE pereval_id = $1`
	return r.exec(ctx, query, perevalID)
}

// GetForUpdate returns the pereval locked for the rest of the transaction, or nil if missing.
func (r *PerevalWriteRepository) GetForUpdate(ctx context.Context, id int64) (*models.PerevalDB, error) {
	const query = `
		SELECT id, beauty_title, title, other_titles, "connect", add_time, status,
		       user_id, coords_id, level_id, activity_type_id
		FROM perevals
		WHERE id = $1
		FOR UPDATE
	`

	var p models.PerevalDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &p, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", p.Status,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetCoords returns the coordinates row, or nil if missing.
func (r *PerevalWriteRepository) GetCoords(ctx context.Context, id int64) (*models.CoordsDB, error) {
	const query = `SELECT id, latitude, longitude, height FROM coords WHERE id = $1`

	var coords models.CoordsDB
	if found, err := r.get(ctx, &coords, query, id); !found || err != nil {
		return nil, err
	}
	return &coords, nil
}

// GetLevel returns the level row, or nil if missing.
func (r *PerevalWriteRepository) GetLevel(ctx context.Context, id int64) (*models.LevelDB, error) {
	const query = `SELECT id, winter, summer, autumn, spring FROM levels WHERE id = $1`

	var level models.LevelDB
	if found, err := r.get(ctx, &level, query, id); !found || err != nil {
		return nil, err
	}
	return &level, nil
}

// Update overwrites the editable columns of a pereval. Status and owner are not touched.
func (r *PerevalWriteRepository) Update(ctx context.Context, p *models.PerevalDB) error {
	const query = `
		UPDATE perevals
		SET beauty_title = $2, title = $3, other_titles = $4, "connect" = $5, activity_type_id = $6
		WHERE id = $1
	`
	return r.exec(ctx, query, p.ID, p.BeautyTitle, p.Title, p.OtherTitles, p.Connect, p.ActivityTypeID)
}

func (r *PerevalWriteRepository) UpdateCoords(ctx context.Context, coords *models.CoordsDB) error {
	const query = `
		UPDATE coords
		SET latitude = $2, longitude = $3, height = $4
		WHERE id = $1
	`
	return r.exec(ctx, query, coords.ID, coords.Latitude, coords.Longitude, coords.Height)
}

func (r *PerevalWriteRepository) UpdateLevel(ctx context.Context, level *models.LevelDB) error {
	const query = `
		UPDATE levels
		SET winter = $2, summer = $3, autumn = $4, spring = $5
		WHERE id = $1
	`
	return r.exec(ctx, query, level.ID, level.Winter, level.Summer, level.Autumn, level.Spring)
}

func (r *PerevalWriteRepository) insert(ctx context.Context, query string, args ...any) (int64, error) {
	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	return id, err
}

func (r *PerevalWriteRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

func (r *PerevalWriteRepository) get(ctx context.Context, dest any, query string, args ...any) (bool, error) {
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), dest, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", dest,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}
