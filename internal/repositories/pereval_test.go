package repositories

import (
	"context"
	"testing"

	"github.com/sbilibin2017/pereval-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerevalRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	transactor := NewTransactor(db)
	users := NewUserWriteRepository(db, GetTxFromContext)
	writer := NewPerevalWriteRepository(db, GetTxFromContext)

	gormDB, err := NewGormDB(db.DB)
	require.NoError(t, err)
	reader := NewPerevalReadRepository(gormDB)

	create := func(t *testing.T, email string, images ...string) int64 {
		t.Helper()
		var id int64
		err := transactor.WithinTx(ctx, func(ctx context.Context) error {
			userID, err := users.Save(ctx, &models.UserDB{Username: email, Email: strPtr(email), FirstName: "Иван", LastName: "Петров"})
			if err != nil {
				return err
			}
			coordsID, err := writer.SaveCoords(ctx, &models.CoordsDB{Latitude: 45.3842, Longitude: 7.1525, Height: 1200})
			if err != nil {
				return err
			}
			levelID, err := writer.SaveLevel(ctx, &models.LevelDB{Summer: strPtr("1А")})
			if err != nil {
				return err
			}
			id, err = writer.Save(ctx, &models.PerevalDB{
				BeautyTitle:    "пер.",
				Title:          "Пхия",
				Connect:        "ручей",
				Status:         models.StatusNew,
				UserID:         userID,
				CoordsID:       coordsID,
				LevelID:        levelID,
				ActivityTypeID: 1,
			})
			if err != nil {
				return err
			}
			for _, key := range images {
				if _, err := writer.AttachImage(ctx, id, &models.ImageDB{Data: key, Title: "title " + key}); err != nil {
					return err
				}
			}
			return nil
		})
		require.NoError(t, err)
		return id
	}

	t.Run("detail with nested rows", func(t *testing.T) {
		id := create(t, "detail@mail.ru", "perevals/b.jpg", "perevals/a.jpg")

		detail, err := reader.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, detail)

		assert.Equal(t, "Пхия", detail.Title)
		assert.Equal(t, "ручей", detail.Connect)
		assert.Equal(t, models.StatusNew, detail.Status)
		assert.False(t, detail.AddTime.IsZero())
		assert.Equal(t, "detail@mail.ru", *detail.User.Email)
		assert.Equal(t, 1200, detail.Coords.Height)
		assert.Equal(t, "1А", *detail.Level.Summer)
		assert.Nil(t, detail.Level.Winter)
		assert.Equal(t, int64(1), detail.ActivityType.ID)
		assert.NotEmpty(t, detail.ActivityType.Title)

		require.Len(t, detail.Images, 2)
		assert.Equal(t, "perevals/b.jpg", detail.Images[0].Data)
		assert.Equal(t, "perevals/a.jpg", detail.Images[1].Data)
		assert.Less(t, detail.Images[0].ID, detail.Images[1].ID)
	})

	t.Run("missing detail is nil", func(t *testing.T) {
		detail, err := reader.GetByID(ctx, 999999)
		assert.NoError(t, err)
		assert.Nil(t, detail)
	})

	t.Run("list by user email", func(t *testing.T) {
		first := create(t, "owner@mail.ru")
		create(t, "stranger@mail.ru")

		var second int64
		err := transactor.WithinTx(ctx, func(ctx context.Context) error {
			var ownerID int64
			if err := db.GetContext(ctx, &ownerID, "SELECT id FROM users WHERE email = $1", "owner@mail.ru"); err != nil {
				return err
			}
			coordsID, _ := writer.SaveCoords(ctx, &models.CoordsDB{Latitude: 1, Longitude: 2, Height: 3})
			levelID, _ := writer.SaveLevel(ctx, &models.LevelDB{})
			var err error
			second, err = writer.Save(ctx, &models.PerevalDB{
				BeautyTitle: "пер.", Title: "Второй", Status: models.StatusNew,
				UserID: ownerID, CoordsID: coordsID, LevelID: levelID, ActivityTypeID: 2,
			})
			return err
		})
		require.NoError(t, err)

		details, err := reader.ListByUserEmail(ctx, "owner@mail.ru")
		require.NoError(t, err)
		require.Len(t, details, 2)
		assert.Equal(t, first, details[0].ID)
		assert.Equal(t, second, details[1].ID)
		for _, d := range details {
			assert.Equal(t, "owner@mail.ru", *d.User.Email)
		}

		details, err = reader.ListByUserEmail(ctx, "nobody@mail.ru")
		assert.NoError(t, err)
		assert.Empty(t, details)
	})

	t.Run("update merges and replaces image links", func(t *testing.T) {
		id := create(t, "update@mail.ru", "perevals/old.jpg")

		err := transactor.WithinTx(ctx, func(ctx context.Context) error {
			p, err := writer.GetForUpdate(ctx, id)
			if err != nil {
				return err
			}
			p.Title = "Новое"
			if err := writer.Update(ctx, p); err != nil {
				return err
			}

			coords, err := writer.GetCoords(ctx, p.CoordsID)
			if err != nil {
				return err
			}
			coords.Height = 1500
			if err := writer.UpdateCoords(ctx, coords); err != nil {
				return err
			}

			level, err := writer.GetLevel(ctx, p.LevelID)
			if err != nil {
				return err
			}
			level.Winter = strPtr("2А")
			if err := writer.UpdateLevel(ctx, level); err != nil {
				return err
			}

			if err := writer.DetachImages(ctx, id); err != nil {
				return err
			}
			_, err = writer.AttachImage(ctx, id, &models.ImageDB{Data: "perevals/new.jpg", Title: "new"})
			return err
		})
		require.NoError(t, err)

		detail, err := reader.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Новое", detail.Title)
		assert.Equal(t, 1500, detail.Coords.Height)
		assert.Equal(t, "2А", *detail.Level.Winter)
		assert.Equal(t, "1А", *detail.Level.Summer)
		require.Len(t, detail.Images, 1)
		assert.Equal(t, "perevals/new.jpg", detail.Images[0].Data)

		var orphans int
		require.NoError(t, db.Get(&orphans, "SELECT COUNT(*) FROM images WHERE data = 'perevals/old.jpg'"))
		assert.Equal(t, 1, orphans)
	})

	t.Run("missing rows are nil", func(t *testing.T) {
		p, err := writer.GetForUpdate(ctx, 999999)
		assert.NoError(t, err)
		assert.Nil(t, p)

		coords, err := writer.GetCoords(ctx, 999999)
		assert.NoError(t, err)
		assert.Nil(t, coords)

		level, err := writer.GetLevel(ctx, 999999)
		assert.NoError(t, err)
		assert.Nil(t, level)
	})

	t.Run("rollback leaves no rows", func(t *testing.T) {
		var before int
		require.NoError(t, db.Get(&before, "SELECT COUNT(*) FROM coords"))

		err := transactor.WithinTx(ctx, func(ctx context.Context) error {
			if _, err := writer.SaveCoords(ctx, &models.CoordsDB{Latitude: 1, Longitude: 1, Height: 1}); err != nil {
				return err
			}
			_, err := writer.Save(ctx, &models.PerevalDB{Title: "x", BeautyTitle: "x", Status: models.StatusNew, ActivityTypeID: 999})
			return err
		})
		assert.Error(t, err)

		var after int
		require.NoError(t, db.Get(&after, "SELECT COUNT(*) FROM coords"))
		assert.Equal(t, before, after)
	})

	t.Run("deleting a pereval removes its coords and level", func(t *testing.T) {
		id := create(t, "delete@mail.ru")
		p, err := writer.GetForUpdate(ctx, id)
		require.NoError(t, err)

		_, err = db.Exec("DELETE FROM perevals WHERE id = $1", id)
		require.NoError(t, err)

		coords, err := writer.GetCoords(ctx, p.CoordsID)
		assert.NoError(t, err)
		assert.Nil(t, coords)

		level, err := writer.GetLevel(ctx, p.LevelID)
		assert.NoError(t, err)
		assert.Nil(t, level)
	})

	t.Run("status outside the enum is refused", func(t *testing.T) {
		id := create(t, "status@mail.ru")
		_, err := db.Exec("UPDATE perevals SET status = 'NEW' WHERE id = $1", id)
		assert.Error(t, err)
	})
}
