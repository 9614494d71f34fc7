package services

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/pereval-api/internal/logger"
	"github.com/sbilibin2017/pereval-api/internal/models"
)

//go:generate mockgen -source=perevals.go -destination=perevals_mock.go -package=services

// imageKeyPrefix is the object storage folder of pereval images.
const imageKeyPrefix = "perevals/"

// Transactor runs fn in one database transaction carried by the context.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserResolver finds or creates the owner of a submission.
type UserResolver interface {
	Resolve(ctx context.Context, in UserInput) (*models.UserDB, error)
}

// PerevalWriter defines write operations on a pereval and the rows it owns.
type PerevalWriter interface {
	SaveCoords(ctx context.Context, coords *models.CoordsDB) (int64, error)
	SaveLevel(ctx context.Context, level *models.LevelDB) (int64, error)
	Save(ctx context.Context, pereval *models.PerevalDB) (int64, error)
	AttachImage(ctx context.Context, perevalID int64, image *models.ImageDB) (int64, error)
	DetachImages(ctx context.Context, perevalID int64) error
	GetForUpdate(ctx context.Context, id int64) (*models.PerevalDB, error)
	GetCoords(ctx context.Context, id int64) (*models.CoordsDB, error)
	GetLevel(ctx context.Context, id int64) (*models.LevelDB, error)
	Update(ctx context.Context, pereval *models.PerevalDB) error
	UpdateCoords(ctx context.Context, coords *models.CoordsDB) error
	UpdateLevel(ctx context.Context, level *models.LevelDB) error
}

// PerevalReader defines read operations returning the nested read model.
type PerevalReader interface {
	GetByID(ctx context.Context, id int64) (*models.PerevalDetail, error)
	ListByUserEmail(ctx context.Context, email string) ([]models.PerevalDetail, error)
}

// ActivityTypeReader looks up reference activity types.
type ActivityTypeReader interface {
	GetByID(ctx context.Context, id int64) (*models.ActivityTypeDB, error)
}

// ActivityTypeCache caches activity types; Get returns nil, nil on a miss.
type ActivityTypeCache interface {
	Get(ctx context.Context, id int64) (*models.ActivityTypeDB, error)
	Set(ctx context.Context, activityType *models.ActivityTypeDB) error
}

// ImageStorage stores image binaries under object keys.
type ImageStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
}

// EventPublisher publishes pereval events to a message broker.
type EventPublisher interface {
	Publish(ctx context.Context, event models.PerevalEvent) error
}

// PerevalService creates, edits and reads perevals.
type PerevalService struct {
	tx         Transactor
	users      UserResolver
	writer     PerevalWriter
	reader     PerevalReader
	activities ActivityTypeReader
	cache      ActivityTypeCache
	storage    ImageStorage
	publisher  EventPublisher
}

// NewPerevalService creates a new PerevalService.
// cache and publisher may be nil.
func NewPerevalService(
	tx Transactor,
	users UserResolver,
	writer PerevalWriter,
	reader PerevalReader,
	activities ActivityTypeReader,
	cache ActivityTypeCache,
	storage ImageStorage,
	publisher EventPublisher,
) *PerevalService {
	return &PerevalService{
		tx:         tx,
		users:      users,
		writer:     writer,
		reader:     reader,
		activities: activities,
		cache:      cache,
		storage:    storage,
		publisher:  publisher,
	}
}

// Create validates data, stores the images and persists the pereval with its user,
// coords, level and image links in one transaction. It returns the new pereval id.
func (s *PerevalService) Create(ctx context.Context, data map[string]any, uploads []models.ImageUpload) (int64, error) {
	in, errs := parseCreate(data)
	if len(uploads) == 0 {
		uploads = parseJSONImages(data["images"], errs)
	}
	validateImageTitles(uploads, errs)
	if !errs.Empty() {
		return 0, &ValidationError{Fields: errs.prune()}
	}

	if err := s.checkActivityType(ctx, in.ActivityTypeID); err != nil {
		return 0, err
	}

	images, err := s.storeImages(ctx, uploads)
	if err != nil {
		return 0, err
	}

	var (
		perevalID int64
		owner     *models.UserDB
	)
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.users.Resolve(ctx, in.User)
		if err != nil {
			return err
		}
		owner = user

		coordsID, err := s.writer.SaveCoords(ctx, &in.Coords)
		if err != nil {
			logger.Log.Errorw("failed to save coords", "err", err)
			return err
		}
		levelID, err := s.writer.SaveLevel(ctx, &in.Level)
		if err != nil {
			logger.Log.Errorw("failed to save level", "err", err)
			return err
		}

		perevalID, err = s.writer.Save(ctx, &models.PerevalDB{
			BeautyTitle:    in.BeautyTitle,
			Title:          in.Title,
			OtherTitles:    in.OtherTitles,
			Connect:        in.Connect,
			Status:         models.StatusNew,
			UserID:         user.ID,
			CoordsID:       coordsID,
			LevelID:        levelID,
			ActivityTypeID: in.ActivityTypeID,
		})
		if err != nil {
			logger.Log.Errorw("failed to save pereval", "err", err)
			return err
		}

		return s.attachImages(ctx, perevalID, images)
	})
	if err != nil {
		s.discardImages(ctx, images)
		return 0, err
	}

	s.publish(ctx, models.EventPerevalSubmitted, perevalID, owner.ID, models.StatusNew, len(images))
	return perevalID, nil
}

// Update applies a partial edit to a pereval that is still new.
// User identity fields are refused, coords and level are merged, and a present
// images key replaces every image link of the pereval.
func (s *PerevalService) Update(ctx context.Context, id int64, data map[string]any, uploads []models.ImageUpload) error {
	if fields := forbiddenUserFields(data); len(fields) > 0 {
		logger.Log.Infow("edit of user fields refused", "pereval_id", id, "fields", fields)
		return &RejectedError{Reason: "User fields cannot be edited: " + strings.Join(fields, ", ")}
	}

	patch, errs := parsePatch(data)
	_, imagesPresent := data["images"]
	replaceImages := imagesPresent || len(uploads) > 0
	if len(uploads) == 0 && imagesPresent {
		uploads = parseJSONImages(data["images"], errs)
	}
	validateImageTitles(uploads, errs)
	if !errs.Empty() {
		return &ValidationError{Fields: errs.prune()}
	}

	if patch.ActivityTypeID != nil {
		if err := s.checkActivityType(ctx, *patch.ActivityTypeID); err != nil {
			return err
		}
	}

	var images []models.ImageDB
	if replaceImages {
		var err error
		if images, err = s.storeImages(ctx, uploads); err != nil {
			return err
		}
	}

	var current *models.PerevalDB
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		current, err = s.writer.GetForUpdate(ctx, id)
		if err != nil {
			logger.Log.Errorw("failed to get pereval for update", "pereval_id", id, "err", err)
			return err
		}
		if current == nil {
			return ErrPerevalNotFound
		}
		if current.Status != models.StatusNew {
			return &RejectedError{Reason: fmt.Sprintf("Cannot edit pereval with status '%s'", current.Status)}
		}

		if patch.touchesPereval() {
			applyPatch(current, patch)
			if err := s.writer.Update(ctx, current); err != nil {
				logger.Log.Errorw("failed to update pereval", "pereval_id", id, "err", err)
				return err
			}
		}
		if err := s.mergeCoords(ctx, current.CoordsID, patch.Coords); err != nil {
			return err
		}
		if err := s.mergeLevel(ctx, current.LevelID, patch.Level); err != nil {
			return err
		}

		if !replaceImages {
			return nil
		}
		if err := s.writer.DetachImages(ctx, id); err != nil {
			logger.Log.Errorw("failed to detach images", "pereval_id", id, "err", err)
			return err
		}
		return s.attachImages(ctx, id, images)
	})
	if err != nil {
		s.discardImages(ctx, images)
		return err
	}

	s.publish(ctx, models.EventPerevalUpdated, id, current.UserID, current.Status, len(images))
	return nil
}

// Get returns the nested detail of a pereval.
func (s *PerevalService) Get(ctx context.Context, id int64) (*models.PerevalDetail, error) {
	detail, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get pereval", "pereval_id", id, "err", err)
		return nil, err
	}
	if detail == nil {
		return nil, ErrPerevalNotFound
	}
	return detail, nil
}

// ListByUserEmail returns every pereval owned by the user with the given email.
func (s *PerevalService) ListByUserEmail(ctx context.Context, email string) ([]models.PerevalDetail, error) {
	if email == "" {
		return []models.PerevalDetail{}, nil
	}

	details, err := s.reader.ListByUserEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to list perevals", "email", email, "err", err)
		return nil, err
	}
	if details == nil {
		details = []models.PerevalDetail{}
	}
	return details, nil
}

func applyPatch(p *models.PerevalDB, patch *perevalPatch) {
	if patch.BeautyTitle != nil {
		p.BeautyTitle = *patch.BeautyTitle
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.OtherTitles != nil {
		p.OtherTitles = *patch.OtherTitles
	}
	if patch.Connect != nil {
		p.Connect = *patch.Connect
	}
	if patch.ActivityTypeID != nil {
		p.ActivityTypeID = *patch.ActivityTypeID
	}
}

func (s *PerevalService) mergeCoords(ctx context.Context, coordsID int64, patch *coordsPatch) error {
	if patch == nil || (patch.Latitude == nil && patch.Longitude == nil && patch.Height == nil) {
		return nil
	}

	coords, err := s.writer.GetCoords(ctx, coordsID)
	if err != nil {
		logger.Log.Errorw("failed to get coords", "coords_id", coordsID, "err", err)
		return err
	}
	if coords == nil {
		return fmt.Errorf("coords %d of pereval not found", coordsID)
	}

	if patch.Latitude != nil {
		coords.Latitude = *patch.Latitude
	}
	if patch.Longitude != nil {
		coords.Longitude = *patch.Longitude
	}
	if patch.Height != nil {
		coords.Height = *patch.Height
	}

	if err := s.writer.UpdateCoords(ctx, coords); err != nil {
		logger.Log.Errorw("failed to update coords", "coords_id", coordsID, "err", err)
		return err
	}
	return nil
}

func (s *PerevalService) mergeLevel(ctx context.Context, levelID int64, seasons map[string]*string) error {
	if len(seasons) == 0 {
		return nil
	}

	level, err := s.writer.GetLevel(ctx, levelID)
	if err != nil {
		logger.Log.Errorw("failed to get level", "level_id", levelID, "err", err)
		return err
	}
	if level == nil {
		return fmt.Errorf("level %d of pereval not found", levelID)
	}

	for season, value := range seasons {
		setSeason(level, season, value)
	}

	if err := s.writer.UpdateLevel(ctx, level); err != nil {
		logger.Log.Errorw("failed to update level", "level_id", levelID, "err", err)
		return err
	}
	return nil
}

// checkActivityType validates the reference through the cache, then the database.
func (s *PerevalService) checkActivityType(ctx context.Context, id int64) error {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			logger.Log.Warnw("activity type cache unavailable", "activity_type_id", id, "err", err)
		} else if cached != nil {
			return nil
		}
	}

	activityType, err := s.activities.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get activity type", "activity_type_id", id, "err", err)
		return err
	}
	if activityType == nil {
		return NewValidationError("activity_type", fmt.Sprintf(msgUnknownPK, id))
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, activityType); err != nil {
			logger.Log.Warnw("failed to cache activity type", "activity_type_id", id, "err", err)
		}
	}
	return nil
}

// storeImages uploads the binaries and returns the rows to insert, in upload order.
func (s *PerevalService) storeImages(ctx context.Context, uploads []models.ImageUpload) ([]models.ImageDB, error) {
	images := make([]models.ImageDB, 0, len(uploads))
	for _, upload := range uploads {
		key := imageKey(upload.Filename)
		if err := s.storage.Upload(ctx, key, upload.Data, upload.ContentType); err != nil {
			logger.Log.Errorw("failed to upload image", "key", key, "err", err)
			s.discardImages(ctx, images)
			return nil, err
		}
		images = append(images, models.ImageDB{Data: key, Title: upload.Title})
	}
	return images, nil
}

func (s *PerevalService) attachImages(ctx context.Context, perevalID int64, images []models.ImageDB) error {
	for i := range images {
		imageID, err := s.writer.AttachImage(ctx, perevalID, &images[i])
		if err != nil {
			logger.Log.Errorw("failed to attach image", "pereval_id", perevalID, "key", images[i].Data, "err", err)
			return err
		}
		images[i].ID = imageID
	}
	return nil
}

// discardImages removes objects whose rows were never committed.
func (s *PerevalService) discardImages(ctx context.Context, images []models.ImageDB) {
	ctx = context.WithoutCancel(ctx)
	for _, img := range images {
		if err := s.storage.Delete(ctx, img.Data); err != nil {
			logger.Log.Warnw("failed to delete orphan image", "key", img.Data, "err", err)
		}
	}
}

func (s *PerevalService) publish(ctx context.Context, eventType string, perevalID, userID int64, status models.Status, images int) {
	if s.publisher == nil {
		logger.Log.Warnw("event publisher not configured, skipping publishing", "pereval_id", perevalID)
		return
	}

	event := models.PerevalEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		PerevalID:  perevalID,
		UserID:     userID,
		Status:     status,
		Images:     images,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Log.Errorw("failed to publish event", "type", eventType, "pereval_id", perevalID, "err", err)
		return
	}
	logger.Log.Infow("event published", "type", eventType, "pereval_id", perevalID)
}

var imageExt = regexp.MustCompile(`^\.[a-z0-9]{1,8}$`)

func imageKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if !imageExt.MatchString(ext) {
		ext = ""
	}
	return imageKeyPrefix + uuid.NewString() + ext
}
