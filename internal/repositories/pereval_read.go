package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sbilibin2017/pereval-api/internal/logger"
	"github.com/sbilibin2017/pereval-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewGormDB opens a gorm session over an existing connection pool.
func NewGormDB(db *sql.DB) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

// PerevalReadRepository serves the nested pereval read model
type PerevalReadRepository struct {
	db *gorm.DB
}

func NewPerevalReadRepository(db *gorm.DB) *PerevalReadRepository {
	return &PerevalReadRepository{db: db}
}

// GetByID returns the pereval with its user, coords, level, activity type and images,
// or nil if it does not exist.
func (r *PerevalReadRepository) GetByID(ctx context.Context, id int64) (*models.PerevalDetail, error) {
	var detail models.PerevalDetail
	err := r.withRelations(ctx).Where("perevals.id = ?", id).First(&detail).Error

	logger.Log.Infow(
		"query", "select pereval detail by id",
		"args", []any{id},
		"result", detail.ID,
		"error", err,
	)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// ListByUserEmail returns the perevals owned by the user with the given email, oldest first.
func (r *PerevalReadRepository) ListByUserEmail(ctx context.Context, email string) ([]models.PerevalDetail, error) {
	owners := r.db.WithContext(ctx).Model(&models.UserDB{}).Select("id").Where("email = ?", email)

	var details []models.PerevalDetail
	err := r.withRelations(ctx).
		Where("perevals.user_id IN (?)", owners).
		Order("perevals.id").
		Find(&details).Error

	logger.Log.Infow(
		"query", "select pereval details by user email",
		"args", []any{email},
		"result", len(details),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return details, nil
}

func (r *PerevalReadRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("User").
		Preload("Coords").
		Preload("Level").
		Preload("ActivityType").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("images.id")
		})
}
