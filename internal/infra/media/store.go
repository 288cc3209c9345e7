// Package media stores uploaded product images on disk. PNG and JPEG
// uploads are decoded, scaled down to a maximum width and re-encoded as
// JPEG; other allowed formats are stored as-is. Stored files get
// UUID-based names so uploads never collide or leak client filenames.
package media

import (
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

var ErrUnsupportedImage = errors.New("unsupported image format")

const (
	maxWidth    = 800
	jpegQuality = 80
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
}

type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Allowed reports whether the upload's filename carries a supported
// image extension.
func (s *Store) Allowed(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Save writes the upload to the store and returns the stored filename.
func (s *Store) Save(file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedImage
	}

	switch ext {
	case ".png", ".jpg", ".jpeg":
		var img image.Image
		var err error
		if ext == ".png" {
			img, err = png.Decode(file)
		} else {
			img, err = jpeg.Decode(file)
		}
		if err != nil {
			return "", err
		}
		return s.saveJPEG(img)
	default:
		// No stdlib decoder for webp/gif animations; store the bytes
		// untouched.
		return s.saveRaw(file, ext)
	}
}

func (s *Store) saveJPEG(img image.Image) (string, error) {
	scaled := img
	if img.Bounds().Dx() > maxWidth {
		scaled = resize.Resize(maxWidth, 0, img, resize.Lanczos3)
	}
	name := uuid.New().String() + ".jpg"

	out, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer out.Close()

	if err := jpeg.Encode(out, scaled, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", err
	}
	return name, nil
}

func (s *Store) saveRaw(file io.Reader, ext string) (string, error) {
	name := uuid.New().String() + ext
	out, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return "", err
	}
	return name, nil
}

// PublicPath maps a stored filename to the URL path it is served under.
func PublicPath(name string) string {
	return "/api/uploads/" + name
}
