package models

// ImageUpload is an image extracted from a request, before it is stored.
type ImageUpload struct {
	Filename    string
	ContentType string
	Title       string
	Data        []byte
}
