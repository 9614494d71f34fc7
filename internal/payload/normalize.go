package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// DefaultMaxMemory is the multipart memory limit used when none is configured.
const DefaultMaxMemory = 32 << 20

// ErrInvalidBody is returned when a JSON body is not a JSON object.
var ErrInvalidBody = errors.New("invalid request body")

// IsJSON reports whether the request declares a JSON body.
// A malformed Content-Type header is treated as non-JSON.
func IsJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// Normalize converts the request body into one nested mapping.
// JSON bodies are decoded as is. Form bodies (multipart or url-encoded) go through Unflatten.
func Normalize(r *http.Request, maxMemory int64) (map[string]any, error) {
	if IsJSON(r) {
		return decodeJSON(r.Body)
	}

	// ParseMediaType returns the media type even when a parameter is malformed.
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxMemory); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
	default:
		return map[string]any{}, nil
	}

	return Unflatten(r.PostForm), nil
}

func decodeJSON(body io.Reader) (map[string]any, error) {
	data := map[string]any{}
	if body == nil {
		return data, nil
	}

	if err := json.NewDecoder(body).Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("%w: JSON parse error - %w", ErrInvalidBody, err)
	}
	if data == nil {
		return map[string]any{}, nil
	}
	return data, nil
}

// Unflatten turns form values into a nested mapping.
// A key with several values keeps them as []any in order, a single value becomes a string.
// Keys containing "." are nested paths; there is no escape for a literal dot.
// Plain keys are applied before dotted keys, so a nested path replaces a scalar on its way.
func Unflatten(values url.Values) map[string]any {
	data := make(map[string]any, len(values))

	var dotted []string
	for key, vals := range values {
		if strings.Contains(key, ".") {
			dotted = append(dotted, key)
			continue
		}
		data[key] = formValue(vals)
	}

	sort.Strings(dotted)
	for _, key := range dotted {
		setPath(data, strings.Split(key, "."), formValue(values[key]))
	}

	return data
}

func formValue(vals []string) any {
	if len(vals) == 1 {
		return vals[0]
	}
	list := make([]any, len(vals))
	for i, v := range vals {
		list[i] = v
	}
	return list
}

func setPath(data map[string]any, path []string, value any) {
	current := data
	for _, segment := range path[:len(path)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[segment] = next
		}
		current = next
	}
	current[path[len(path)-1]] = value
}
