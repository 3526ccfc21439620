// Package resources converts images and fonts into HTML-embeddable form.
package resources

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
)

// maxEmbedWidth bounds embedded photo width; obra photos come straight off
// phones and would otherwise balloon the rendered HTML.
const maxEmbedWidth = 1600

/*
Bundle holds the shared visual resources for every report of a run, already
converted to embeddable form.
*/
type Bundle struct {
	Banner        string // data URI
	Footer        string // data URI
	DobleFlecha   string // data URI
	FuenteRegular string // raw base64 for CSS @font-face
	FuenteBold    string // raw base64 for CSS @font-face
}

/*
Prepare loads the standard report assets from assetsDir.

Every asset is best effort: a missing banner degrades to an empty string
and a plainer report, never to a failed run.
*/
func Prepare(assetsDir string) Bundle {
	tl.Log(tl.Info, palette.Blue, "%s report assets from '%s'", "Preparing", assetsDir)

	bundle := Bundle{
		Banner:        ImageToDataURI(filepath.Join(assetsDir, "banner.png")),
		Footer:        ImageToDataURI(filepath.Join(assetsDir, "footer.png")),
		DobleFlecha:   ImageToDataURI(filepath.Join(assetsDir, "doble-flecha.png")),
		FuenteRegular: FontToBase64(filepath.Join(assetsDir, "fonts", "regular.ttf")),
		FuenteBold:    FontToBase64(filepath.Join(assetsDir, "fonts", "bold.ttf")),
	}

	tl.Log(tl.Info1, palette.Green, "%s", "Report assets prepared")
	return bundle
}

/*
FontToBase64 reads a TTF font and returns it base64-encoded for embedding
in CSS. Missing or unreadable fonts return an empty string.
*/
func FontToBase64(fontPath string) string {
	fontBytes, readErr := os.ReadFile(fontPath)
	if readErr != nil {
		tl.Log(tl.Warning, palette.PurpleBright, "Font not available: '%s'", fontPath)
		return ""
	}

	return base64.StdEncoding.EncodeToString(fontBytes)
}

/*
ImageToDataURI converts an image file to a data URI for inline embedding.

If the exact path does not exist, the sibling extension is tried (a .jpg
request finds the .png and vice versa). Photos wider than maxEmbedWidth are
resized down first. Failures return an empty string.
*/
func ImageToDataURI(imagePath string) string {
	resolvedPath := resolveImagePath(imagePath)
	if resolvedPath == "" {
		tl.Log(tl.Warning, palette.PurpleBright, "Image not available: '%s'", imagePath)
		return ""
	}

	encoded, mimeType, ok := encodeImage(resolvedPath)
	if !ok {
		return ""
	}

	tl.Log(tl.Verbose, palette.CyanDim, "Embedded image '%s' (%s)", filepath.Base(resolvedPath), mimeType)
	return "data:" + mimeType + ";base64," + encoded
}

/*
WorkImages finds the images attached to one obra inside imagesDir: the
principal image named <id>.jpg or <id>.png, plus any extras named <id>_*.
Missing directory or images degrade to empty results.
*/
func WorkImages(obraID string, imagesDir string) (principal string, extras []string) {
	extras = make([]string, 0)

	if obraID == "" {
		return principal, extras
	}

	entries, readErr := os.ReadDir(imagesDir)
	if readErr != nil {
		tl.Log(tl.Warning, palette.PurpleBright, "Images directory not available: '%s'", imagesDir)
		return principal, extras
	}

	for _, candidate := range []string{obraID + ".jpg", obraID + ".png"} {
		candidatePath := filepath.Join(imagesDir, candidate)
		if _, statErr := os.Stat(candidatePath); statErr == nil {
			principal = ImageToDataURI(candidatePath)
			break
		}
	}

	extraNames := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !strings.HasPrefix(name, obraID+"_") || (ext != ".jpg" && ext != ".png") {
			continue
		}
		extraNames = append(extraNames, name)
	}
	sort.Strings(extraNames)

	for _, name := range extraNames {
		uri := ImageToDataURI(filepath.Join(imagesDir, name))
		if uri != "" {
			extras = append(extras, uri)
		}
	}

	return principal, extras
}

/*
resolveImagePath returns the path to use, trying the sibling extension when
the exact file is absent. Empty string when nothing exists.
*/
func resolveImagePath(imagePath string) string {
	if _, statErr := os.Stat(imagePath); statErr == nil {
		return imagePath
	}

	ext := strings.ToLower(filepath.Ext(imagePath))
	var sibling string
	switch ext {
	case ".jpg", ".jpeg":
		sibling = strings.TrimSuffix(imagePath, filepath.Ext(imagePath)) + ".png"
	case ".png":
		sibling = strings.TrimSuffix(imagePath, filepath.Ext(imagePath)) + ".jpg"
	default:
		return ""
	}

	if _, statErr := os.Stat(sibling); statErr == nil {
		return sibling
	}
	return ""
}

/*
encodeImage reads, optionally downsizes, and base64-encodes an image.
*/
func encodeImage(imagePath string) (encoded string, mimeType string, ok bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(imagePath), "."))
	if ext == "jpg" {
		ext = "jpeg"
	}
	mimeType = "image/" + ext

	loaded, openErr := imaging.Open(imagePath)
	if openErr != nil {
		tl.Log(tl.Warning, palette.PurpleBright, "Could not open image '%s': '%s'", imagePath, openErr)
		return "", mimeType, false
	}

	if loaded.Bounds().Dx() > maxEmbedWidth {
		loaded = imaging.Resize(loaded, maxEmbedWidth, 0, imaging.Lanczos)
	}

	imagingFormat := imaging.JPEG
	if ext == "png" {
		imagingFormat = imaging.PNG
	}

	var buffer bytes.Buffer
	encodeErr := imaging.Encode(&buffer, loaded, imagingFormat)
	if encodeErr != nil {
		tl.Log(tl.Warning, palette.PurpleBright, "Could not encode image '%s': '%s'", imagePath, encodeErr)
		return "", mimeType, false
	}

	return base64.StdEncoding.EncodeToString(buffer.Bytes()), mimeType, true
}
