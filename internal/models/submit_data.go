package models

import "time"

// SubmitDataResponse is returned by the create endpoint
// swagger:model SubmitDataResponse
type SubmitDataResponse struct {
	// HTTP status mirrored in the body
	// example: 200
	Status int `json:"status"`

	// Error text, null on success
	// example: Validation error: {"title":["This field is required."]}
	Message *string `json:"message"`

	// Identifier of the new pereval, null on failure
	// example: 42
	ID *int64 `json:"id"`
}

// UpdateResponse is returned by the update endpoint
// swagger:model UpdateResponse
type UpdateResponse struct {
	// 1 when the update was applied, 0 otherwise
	// example: 1
	State int `json:"state"`

	// Rejection reason, null on success
	// example: Cannot edit pereval with status 'pending'
	Message *string `json:"message"`
}

// NotFoundResponse is returned when a pereval or media object does not exist
// swagger:model NotFoundResponse
type NotFoundResponse struct {
	// example: Not found.
	Detail string `json:"detail"`
}

// UserResponse is the public part of the pereval owner
// swagger:model UserResponse
type UserResponse struct {
	Email      *string `json:"email"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Patronymic string  `json:"patronymic"`
	Phone      *string `json:"phone"`
}

// CoordsResponse holds the pass coordinates
// swagger:model CoordsResponse
type CoordsResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Height    int     `json:"height"`
}

// LevelResponse holds seasonal difficulty grades
// swagger:model LevelResponse
type LevelResponse struct {
	Winter *string `json:"winter"`
	Summer *string `json:"summer"`
	Autumn *string `json:"autumn"`
	Spring *string `json:"spring"`
}

// ActivityTypeResponse is the referenced activity type
// swagger:model ActivityTypeResponse
type ActivityTypeResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// ImageResponse is an attached image with its absolute URL
// swagger:model ImageResponse
type ImageResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	DateAdded time.Time `json:"date_added"`
	URL       string    `json:"url"`
}

// PerevalResponse is the nested detail of a pereval
// swagger:model PerevalResponse
type PerevalResponse struct {
	ID           int64                `json:"id"`
	BeautyTitle  string               `json:"beauty_title"`
	Title        string               `json:"title"`
	OtherTitles  string               `json:"other_titles"`
	Connect      string               `json:"connect"`
	AddTime      time.Time            `json:"add_time"`
	Status       Status               `json:"status"`
	User         UserResponse         `json:"user"`
	Coords       CoordsResponse       `json:"coords"`
	Level        LevelResponse        `json:"level"`
	ActivityType ActivityTypeResponse `json:"activity_type"`
	Images       []ImageResponse      `json:"images"`
}
