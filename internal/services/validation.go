package services

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sbilibin2017/pereval-api/internal/models"
)

const (
	maxTitleLength = 255
	maxNameLength  = 50
	maxEmailLength = 200
	maxPhoneLength = 16
	maxLevelLength = 10
)

const (
	msgRequired      = "This field is required."
	msgBlank         = "This field may not be blank."
	msgInvalidString = "Not a valid string."
	msgInvalidNumber = "A valid number is required."
	msgInvalidInt    = "A valid integer is required."
	msgInvalidEmail  = "Enter a valid email address."
	msgMaxLength     = "Ensure this field has no more than %d characters."
	msgNotMapping    = "Invalid data. Expected a dictionary, but got %s."
	msgNotList       = "Expected a list of items but got type \"%s\"."
	msgUnknownPK     = "Invalid pk \"%d\" - object does not exist."
)

// userIdentityFields may not be changed once the user exists.
var userIdentityFields = []string{"first_name", "last_name", "patronymic", "email", "phone"}

// UserInput is the validated user fragment of a submission.
type UserInput struct {
	Email      *string
	Phone      *string
	FirstName  string
	LastName   string
	Patronymic string
}

type perevalInput struct {
	BeautyTitle    string
	Title          string
	OtherTitles    string
	Connect        string
	User           UserInput
	Coords         models.CoordsDB
	Level          models.LevelDB
	ActivityTypeID int64
}

type coordsPatch struct {
	Latitude  *float64
	Longitude *float64
	Height    *int
}

type perevalPatch struct {
	BeautyTitle    *string
	Title          *string
	OtherTitles    *string
	Connect        *string
	Coords         *coordsPatch
	Level          map[string]*string
	ActivityTypeID *int64
}

func (p *perevalPatch) touchesPereval() bool {
	return p.BeautyTitle != nil || p.Title != nil || p.OtherTitles != nil ||
		p.Connect != nil || p.ActivityTypeID != nil
}

func parseCreate(data map[string]any) (*perevalInput, FieldErrors) {
	errs := FieldErrors{}
	in := &perevalInput{}

	in.BeautyTitle, _ = readString(data, "beauty_title", true, maxTitleLength, errs)
	in.Title, _ = readString(data, "title", true, maxTitleLength, errs)
	in.OtherTitles, _ = readString(data, "other_titles", false, maxTitleLength, errs)
	in.Connect, _ = readString(data, "connect", false, 0, errs)

	if user, ok := readMapping(data, "user", true, errs); ok {
		in.User = parseUser(user, errs.Nested("user"))
	}

	if coords, ok := readMapping(data, "coords", true, errs); ok {
		cerrs := errs.Nested("coords")
		in.Coords.Latitude, _ = readFloat(coords, "latitude", true, cerrs)
		in.Coords.Longitude, _ = readFloat(coords, "longitude", true, cerrs)
		in.Coords.Height, _ = readInt(coords, "height", true, cerrs)
	}

	if level, ok := readMapping(data, "level", true, errs); ok {
		for season, value := range parseLevel(level, errs.Nested("level")) {
			setSeason(&in.Level, season, value)
		}
	}

	if id, ok := readInt(data, "activity_type", true, errs); ok {
		in.ActivityTypeID = int64(id)
	}

	return in, errs.prune()
}

func parseUser(user map[string]any, errs FieldErrors) UserInput {
	var in UserInput

	if email, ok := readString(user, "email", false, maxEmailLength, errs); ok && email != "" {
		if !validEmail(email) {
			errs.Add("email", msgInvalidEmail)
		}
		in.Email = &email
	}
	if phone, ok := readString(user, "phone", false, maxPhoneLength, errs); ok && phone != "" {
		in.Phone = &phone
	}
	in.FirstName, _ = readString(user, "first_name", true, maxNameLength, errs)
	in.LastName, _ = readString(user, "last_name", true, maxNameLength, errs)
	in.Patronymic, _ = readString(user, "patronymic", false, maxNameLength, errs)

	return in
}

// parseLevel returns only the seasons present in the fragment; a nil value clears the season.
func parseLevel(level map[string]any, errs FieldErrors) map[string]*string {
	seasons := make(map[string]*string)
	for _, season := range []string{"winter", "summer", "autumn", "spring"} {
		raw, present := level[season]
		if !present {
			continue
		}
		if raw == nil {
			seasons[season] = nil
			continue
		}
		value, ok := readString(level, season, false, maxLevelLength, errs)
		if !ok {
			continue
		}
		if value == "" {
			seasons[season] = nil
			continue
		}
		seasons[season] = &value
	}
	return seasons
}

func setSeason(level *models.LevelDB, season string, value *string) {
	switch season {
	case "winter":
		level.Winter = value
	case "summer":
		level.Summer = value
	case "autumn":
		level.Autumn = value
	case "spring":
		level.Spring = value
	}
}

func parsePatch(data map[string]any) (*perevalPatch, FieldErrors) {
	errs := FieldErrors{}
	patch := &perevalPatch{}

	if v, ok := readString(data, "beauty_title", false, maxTitleLength, errs); ok {
		if v == "" {
			errs.Add("beauty_title", msgBlank)
		}
		patch.BeautyTitle = &v
	}
	if v, ok := readString(data, "title", false, maxTitleLength, errs); ok {
		if v == "" {
			errs.Add("title", msgBlank)
		}
		patch.Title = &v
	}
	if v, ok := readString(data, "other_titles", false, maxTitleLength, errs); ok {
		patch.OtherTitles = &v
	}
	if v, ok := readString(data, "connect", false, 0, errs); ok {
		patch.Connect = &v
	}

	if coords, ok := readMapping(data, "coords", false, errs); ok {
		cerrs := errs.Nested("coords")
		patch.Coords = &coordsPatch{}
		if v, ok := readFloat(coords, "latitude", false, cerrs); ok {
			patch.Coords.Latitude = &v
		}
		if v, ok := readFloat(coords, "longitude", false, cerrs); ok {
			patch.Coords.Longitude = &v
		}
		if v, ok := readInt(coords, "height", false, cerrs); ok {
			patch.Coords.Height = &v
		}
	}

	if level, ok := readMapping(data, "level", false, errs); ok {
		patch.Level = parseLevel(level, errs.Nested("level"))
	}

	if id, ok := readInt(data, "activity_type", false, errs); ok {
		v := int64(id)
		patch.ActivityTypeID = &v
	}

	return patch, errs.prune()
}

// forbiddenUserFields lists the identity fields an edit payload tries to change.
func forbiddenUserFields(data map[string]any) []string {
	raw, present := data["user"]
	if !present {
		return nil
	}
	user, ok := raw.(map[string]any)
	if !ok {
		return []string{"user"}
	}

	var fields []string
	for _, name := range userIdentityFields {
		if _, ok := user[name]; ok {
			fields = append(fields, "user."+name)
		}
	}
	return fields
}

// parseJSONImages decodes images sent inline in a JSON body as
// [{"data": "<base64>", "title": "...", "filename": "..."}].
// A missing key or null means no images; any other non-list value is an error.
func parseJSONImages(raw any, errs FieldErrors) []models.ImageUpload {
	if raw == nil {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		errs.Add("images", fmt.Sprintf(msgNotList, typeName(raw)))
		return nil
	}

	images := make([]models.ImageUpload, 0, len(items))
	for i, item := range items {
		key := strconv.Itoa(i)
		obj, ok := item.(map[string]any)
		if !ok {
			errs.Nested("images").Add(key, fmt.Sprintf(msgNotMapping, typeName(item)))
			continue
		}

		ierrs := errs.Nested("images").Nested(key)
		encoded, ok := readString(obj, "data", true, 0, ierrs)
		if !ok {
			continue
		}
		if idx := strings.Index(encoded, ";base64,"); idx >= 0 {
			encoded = encoded[idx+len(";base64,"):]
		}
		data, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil || len(data) == 0 {
			ierrs.Add("data", "Upload a valid image.")
			continue
		}

		filename, _ := readString(obj, "filename", false, maxTitleLength, ierrs)
		if filename == "" {
			filename = fmt.Sprintf("image%d", i)
		}
		title, present := readString(obj, "title", false, maxTitleLength, ierrs)
		if !present {
			title = filename
		}

		images = append(images, models.ImageUpload{
			Filename:    filename,
			ContentType: http.DetectContentType(data),
			Title:       title,
			Data:        data,
		})
	}
	return images
}

func validateImageTitles(images []models.ImageUpload, errs FieldErrors) {
	for i, img := range images {
		if utf8.RuneCountInString(img.Title) > maxTitleLength {
			errs.Nested("images").Nested(strconv.Itoa(i)).Add("title", fmt.Sprintf(msgMaxLength, maxTitleLength))
		}
	}
	errs.prune()
}

// readString reads a string field. Numbers are accepted and formatted, surrounding
// whitespace is trimmed. The second result reports whether a usable value was read.
func readString(data map[string]any, key string, required bool, maxLen int, errs FieldErrors) (string, bool) {
	raw, present := data[key]
	if !present || raw == nil {
		if required {
			errs.Add(key, msgRequired)
		}
		return "", false
	}

	var s string
	switch v := raw.(type) {
	case string:
		s = strings.TrimSpace(v)
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		s = v.String()
	default:
		errs.Add(key, msgInvalidString)
		return "", false
	}

	if required && s == "" {
		errs.Add(key, msgBlank)
		return "", false
	}
	if maxLen > 0 && utf8.RuneCountInString(s) > maxLen {
		errs.Add(key, fmt.Sprintf(msgMaxLength, maxLen))
		return "", false
	}
	return s, true
}

func readFloat(data map[string]any, key string, required bool, errs FieldErrors) (float64, bool) {
	raw, present := data[key]
	if !present || raw == nil {
		if required {
			errs.Add(key, msgRequired)
		}
		return 0, false
	}

	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			errs.Add(key, msgInvalidNumber)
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			errs.Add(key, msgInvalidNumber)
			return 0, false
		}
		f = parsed
	default:
		errs.Add(key, msgInvalidNumber)
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		errs.Add(key, msgInvalidNumber)
		return 0, false
	}
	return f, true
}

func readInt(data map[string]any, key string, required bool, errs FieldErrors) (int, bool) {
	raw, present := data[key]
	if !present || raw == nil {
		if required {
			errs.Add(key, msgRequired)
		}
		return 0, false
	}

	var n int64
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
			errs.Add(key, msgInvalidInt)
			return 0, false
		}
		if v > math.MaxInt32 || v < math.MinInt32 {
			errs.Add(key, msgInvalidInt)
			return 0, false
		}
		n = int64(v)
	case json.Number:
		parsed, err := v.Int64()
		if err != nil {
			errs.Add(key, msgInvalidInt)
			return 0, false
		}
		n = parsed
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs.Add(key, msgInvalidInt)
			return 0, false
		}
		n = parsed
	default:
		errs.Add(key, msgInvalidInt)
		return 0, false
	}

	if n > math.MaxInt32 || n < math.MinInt32 {
		errs.Add(key, msgInvalidInt)
		return 0, false
	}
	return int(n), true
}

func readMapping(data map[string]any, key string, required bool, errs FieldErrors) (map[string]any, bool) {
	raw, present := data[key]
	if !present || raw == nil {
		if required {
			errs.Add(key, msgRequired)
		}
		return nil, false
	}

	m, ok := raw.(map[string]any)
	if !ok {
		errs.Add(key, fmt.Sprintf(msgNotMapping, typeName(raw)))
		return nil, false
	}
	return m, true
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email && strings.Contains(email, "@")
}

func typeName(v any) string {
	switch v.(type) {
	case string:
		return "str"
	case float64, json.Number:
		return "number"
	case bool:
		return "bool"
	case []any:
		return "list"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
