package uvi

import (
	"compress/flate"
	"compress/gzip"
	"io"
	"net/http"

	"github.com/andybalholm/brotli"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
)

/*
readBody reads an http.Response body, handling compression.
Pass the original url for clearer logging.
*/
func readBody(resp *http.Response, urlStr string) (body []byte, err error) {
	var reader io.Reader
	contentEncoding := resp.Header.Get("Content-Encoding")

	tl.Log(tl.Verbose5, palette.BlueDim, "Reading body (content encoding is '%s') for '%s'", contentEncoding, urlStr)
	switch contentEncoding {
	case "gzip":
		gzipReader, gzipErr := gzip.NewReader(resp.Body)
		if gzipErr != nil {
			return body, gzipErr
		}
		defer gzipReader.Close()
		reader = gzipReader
	case "deflate":
		flateReader := flate.NewReader(resp.Body)
		defer flateReader.Close()
		reader = flateReader
	case "br":
		reader = brotli.NewReader(resp.Body) // no close needed
	case "", "none":
		reader = resp.Body
	default:
		reader = resp.Body
		tl.Log(tl.Warning, palette.YellowDim, "Unsupported %s: '%s'", "Content-Encoding", contentEncoding)
	}

	body, readErr := io.ReadAll(reader)
	if readErr != nil {
		return body, readErr
	}
	tl.Log(tl.Verbose6, palette.GreenDim, "Got body length %d (content encoding is '%s') for '%s'", len(body), contentEncoding, urlStr)

	return body, nil
}
