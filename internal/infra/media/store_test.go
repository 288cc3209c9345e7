package media

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf
}

func TestSave_PNGBecomesJPEG(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save(pngBytes(t, 16, 16), "photo.png")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(name, ".jpg"))
	require.NotEqual(t, "photo.jpg", name, "stored name never reuses the client filename")

	f, err := os.Open(filepath.Join(store.Dir(), name))
	require.NoError(t, err)
	defer f.Close()
	_, err = jpeg.Decode(f)
	require.NoError(t, err)
}

func TestSave_ScalesDownWideImages(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save(pngBytes(t, 1600, 400), "banner.png")
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(store.Dir(), name))
	require.NoError(t, err)
	defer f.Close()
	img, err := jpeg.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 800, img.Bounds().Dx())
	require.Equal(t, 200, img.Bounds().Dy(), "aspect ratio is preserved")
}

func TestSave_UnsupportedExtension(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save(strings.NewReader("plain text"), "notes.txt")
	require.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestSave_WebpStoredVerbatim(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	payload := "fake-webp-bytes"
	name, err := store.Save(strings.NewReader(payload), "photo.webp")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(name, ".webp"))

	raw, err := os.ReadFile(filepath.Join(store.Dir(), name))
	require.NoError(t, err)
	require.Equal(t, payload, string(raw))
}

func TestAllowed(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.True(t, store.Allowed("a.PNG"))
	require.True(t, store.Allowed("b.jpeg"))
	require.True(t, store.Allowed("c.gif"))
	require.False(t, store.Allowed("d.pdf"))
	require.False(t, store.Allowed("noext"))
}

func TestSave_CorruptImageFails(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save(strings.NewReader("not a png"), "broken.png")
	require.Error(t, err)
}
