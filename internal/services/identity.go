package services

import (
	"context"
	"errors"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/sbilibin2017/pereval-api/internal/logger"
	"github.com/sbilibin2017/pereval-api/internal/models"
)

//go:generate mockgen -source=identity.go -destination=identity_mock.go -package=services

const (
	maxUsernameLength    = 150
	usernameAttempts     = 5
	usernameSuffixLength = 6
	usernameFallback     = "user"
)

var usernameDisallowed = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// UserReader defines read-only operations for users.
// Lookups return nil, nil when no user matches.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByPhone(ctx context.Context, phone string) (*models.UserDB, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// UserWriter defines write operations for users.
// Save returns an error wrapping models.ErrUniqueViolation on a unique constraint hit.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) (int64, error)
}

// IdentityResolver finds or creates the user that owns a submission.
type IdentityResolver struct {
	reader UserReader
	writer UserWriter
	suffix func(n int) string
}

// NewIdentityResolver creates a new IdentityResolver instance.
func NewIdentityResolver(reader UserReader, writer UserWriter) *IdentityResolver {
	return &IdentityResolver{
		reader: reader,
		writer: writer,
		suffix: randomSuffix,
	}
}

// Resolve returns the existing user matching the email and/or phone of in,
// or creates a new one. A stored user is never updated from in.
func (r *IdentityResolver) Resolve(ctx context.Context, in UserInput) (*models.UserDB, error) {
	if in.Email == nil && in.Phone == nil {
		return nil, NewValidationError("user", "Either email or phone is required.")
	}

	user, err := r.lookup(ctx, in)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	username, err := r.username(ctx, in.Email)
	if err != nil {
		logger.Log.Errorw("failed to derive username", "err", err)
		return nil, err
	}

	user = &models.UserDB{
		Username:   username,
		Email:      in.Email,
		Phone:      in.Phone,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Patronymic: in.Patronymic,
	}

	id, err := r.writer.Save(ctx, user)
	if err == nil {
		user.ID = id
		return user, nil
	}
	if !errors.Is(err, models.ErrUniqueViolation) {
		logger.Log.Errorw("failed to save user", "username", username, "err", err)
		return nil, err
	}

	// A concurrent submission created the same email or phone first.
	existing, lookupErr := r.reresolve(ctx, in)
	if lookupErr != nil {
		return nil, lookupErr
	}
	if existing == nil {
		logger.Log.Errorw("user conflict could not be resolved", "username", username, "err", err)
		return nil, err
	}
	return existing, nil
}

func (r *IdentityResolver) lookup(ctx context.Context, in UserInput) (*models.UserDB, error) {
	var byEmail, byPhone *models.UserDB
	var err error

	if in.Email != nil {
		if byEmail, err = r.reader.GetByEmail(ctx, *in.Email); err != nil {
			logger.Log.Errorw("failed to get user by email", "err", err)
			return nil, err
		}
	}
	if in.Phone != nil {
		if byPhone, err = r.reader.GetByPhone(ctx, *in.Phone); err != nil {
			logger.Log.Errorw("failed to get user by phone", "err", err)
			return nil, err
		}
	}

	switch {
	case byEmail != nil && byPhone != nil && byEmail.ID != byPhone.ID:
		logger.Log.Infow("email and phone belong to different users", "email_user", byEmail.ID, "phone_user", byPhone.ID)
		return nil, NewValidationError("user", "Email and phone belong to different users.")
	case byEmail != nil:
		return byEmail, nil
	default:
		return byPhone, nil
	}
}

// reresolve re-reads by email, then by phone, and returns the first match.
func (r *IdentityResolver) reresolve(ctx context.Context, in UserInput) (*models.UserDB, error) {
	if in.Email != nil {
		user, err := r.reader.GetByEmail(ctx, *in.Email)
		if err != nil || user != nil {
			return user, err
		}
	}
	if in.Phone != nil {
		return r.reader.GetByPhone(ctx, *in.Phone)
	}
	return nil, nil
}

// username picks a free username: the base, then base1..base5, then base plus a random suffix.
func (r *IdentityResolver) username(ctx context.Context, email *string) (string, error) {
	base := usernameBase(email)

	taken, err := r.reader.ExistsByUsername(ctx, base)
	if err != nil || !taken {
		return base, err
	}

	for i := 1; i <= usernameAttempts; i++ {
		candidate := withSuffix(base, strconv.Itoa(i))
		taken, err := r.reader.ExistsByUsername(ctx, candidate)
		if err != nil || !taken {
			return candidate, err
		}
	}

	return withSuffix(base, r.suffix(usernameSuffixLength)), nil
}

func usernameBase(email *string) string {
	base := usernameFallback
	if email != nil {
		base, _, _ = strings.Cut(*email, "@")
	}

	base = strings.ToLower(usernameDisallowed.ReplaceAllString(base, ""))
	if base == "" {
		base = usernameFallback
	}
	if len(base) > maxUsernameLength {
		base = base[:maxUsernameLength]
	}
	return base
}

func withSuffix(base, suffix string) string {
	if limit := maxUsernameLength - len(suffix); len(base) > limit {
		base = base[:limit]
	}
	return base + suffix
}

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}
