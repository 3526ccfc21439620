package resources

import (
	"encoding/base64"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestImage(t *testing.T, path string, width int, height int) {
	t.Helper()
	img := imaging.New(width, height, color.NRGBA{R: 10, G: 120, B: 30, A: 255})
	require.NoError(t, imaging.Save(img, path))
}

func TestImageToDataURI(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "banner.png")
	writeTestImage(t, path, 40, 20)

	uri := ImageToDataURI(path)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
}

func TestImageToDataURISiblingExtension(t *testing.T) {
	dir := t.TempDir()
	writeTestImage(t, filepath.Join(dir, "obra.png"), 40, 20)

	// Request the .jpg, find the .png.
	uri := ImageToDataURI(filepath.Join(dir, "obra.jpg"))
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
}

func TestImageToDataURIMissing(t *testing.T) {
	assert.Equal(t, "", ImageToDataURI(filepath.Join(t.TempDir(), "missing.png")))
}

func TestOversizedImageIsResized(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "huge.jpg")
	writeTestImage(t, path, maxEmbedWidth*2, 400)

	uri := ImageToDataURI(path)
	require.NotEqual(t, "", uri)

	decoded := decodeDataURI(t, uri)
	loaded, _, decodeErr := image.Decode(strings.NewReader(decoded))
	require.NoError(t, decodeErr)
	assert.Equal(t, maxEmbedWidth, loaded.Bounds().Dx())
}

func TestWorkImages(t *testing.T) {
	dir := t.TempDir()
	writeTestImage(t, filepath.Join(dir, "OTRAS-001.jpg"), 30, 30)
	writeTestImage(t, filepath.Join(dir, "OTRAS-001_2.jpg"), 30, 30)
	writeTestImage(t, filepath.Join(dir, "OTRAS-001_1.png"), 30, 30)
	writeTestImage(t, filepath.Join(dir, "CONVE-009.jpg"), 30, 30)

	principal, extras := WorkImages("OTRAS-001", dir)
	assert.NotEqual(t, "", principal)
	assert.Len(t, extras, 2)
}

func TestWorkImagesMissingDir(t *testing.T) {
	principal, extras := WorkImages("OTRAS-001", "/nonexistent/images")
	assert.Equal(t, "", principal)
	assert.Empty(t, extras)
}

func TestFontToBase64(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regular.ttf")
	require.NoError(t, os.WriteFile(path, []byte("fake-font-bytes"), 0o644))

	assert.NotEqual(t, "", FontToBase64(path))
	assert.Equal(t, "", FontToBase64(filepath.Join(dir, "missing.ttf")))
}

func decodeDataURI(t *testing.T, uri string) string {
	t.Helper()
	commaIndex := strings.Index(uri, ",")
	require.True(t, commaIndex > 0)

	decoded, decodeErr := base64.StdEncoding.DecodeString(uri[commaIndex+1:])
	require.NoError(t, decodeErr)
	return string(decoded)
}
