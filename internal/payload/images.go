package payload

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"regexp"
	"sort"
	"strconv"

	"github.com/sbilibin2017/pereval-api/internal/models"
)

const (
	imagesKey       = "images"
	imagesTitlesKey = "images_titles"
)

var (
	indexedDataKey  = regexp.MustCompile(`^images\[(\d+)\]\.data$`)
	indexedTitleKey = regexp.MustCompile(`^images\[(\d+)\]\.title$`)
)

// ExtractImages returns the uploaded images of an already parsed multipart request.
// The list convention (images + images_titles) is tried first; the indexed
// convention (images[N].data + images[N].title) only when the list yields nothing.
func ExtractImages(r *http.Request) ([]models.ImageUpload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	form := r.MultipartForm

	images, err := extractList(form)
	if err != nil || len(images) > 0 {
		return images, err
	}
	return extractIndexed(form)
}

func extractList(form *multipart.Form) ([]models.ImageUpload, error) {
	files := form.File[imagesKey]
	titles := form.Value[imagesTitlesKey]

	images := make([]models.ImageUpload, 0, len(files))
	for i, fh := range files {
		title := fh.Filename
		if i < len(titles) {
			title = titles[i]
		}
		img, err := readUpload(fh, title)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

func extractIndexed(form *multipart.Form) ([]models.ImageUpload, error) {
	files := make(map[int]*multipart.FileHeader)
	for key, fhs := range form.File {
		if len(fhs) == 0 {
			continue
		}
		if key == imagesKey {
			if _, ok := files[0]; !ok {
				files[0] = fhs[len(fhs)-1]
			}
			continue
		}
		if idx, ok := matchIndex(indexedDataKey, key); ok {
			files[idx] = fhs[len(fhs)-1]
		}
	}
	if len(files) == 0 {
		return nil, nil
	}

	titles := make(map[int]string)
	for key, vals := range form.Value {
		if len(vals) == 0 {
			continue
		}
		if idx, ok := matchIndex(indexedTitleKey, key); ok {
			titles[idx] = vals[len(vals)-1]
		}
	}

	indexes := make([]int, 0, len(files))
	for idx := range files {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	images := make([]models.ImageUpload, 0, len(indexes))
	for _, idx := range indexes {
		fh := files[idx]
		title, ok := titles[idx]
		if !ok {
			title = fh.Filename
		}
		img, err := readUpload(fh, title)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

func matchIndex(re *regexp.Regexp, key string) (int, bool) {
	m := re.FindStringSubmatch(key)
	if m == nil {
		return 0, false
	}
	idx, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return idx, true
}

func readUpload(fh *multipart.FileHeader, title string) (models.ImageUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return models.ImageUpload{}, fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return models.ImageUpload{}, fmt.Errorf("read upload %q: %w", fh.Filename, err)
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	return models.ImageUpload{
		Filename:    fh.Filename,
		ContentType: contentType,
		Title:       title,
		Data:        data,
	}, nil
}
