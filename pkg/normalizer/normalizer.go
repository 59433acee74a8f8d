// Package normalizer turns an uploaded document into an ordered list of RGB
// page images. PDFs are rasterized one image per page, single images become a
// one-page list. The format check runs on the file extension before any
// decoding work happens.
package normalizer

import (
	"image"
	"path/filepath"
	"strings"
)

// Page is one rasterized page, numbered from 1 in document order.
type Page struct {
	Number int

	Image *image.RGBA
}

var imageExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"bmp":  true,
	"tiff": true,
	"webp": true,
}

// Supported reports whether the file's extension is on the allow-list.
func Supported(filename string) bool {
	ext := Extension(filename)
	return ext == "pdf" || imageExtensions[ext]
}

// Extension returns the lower-cased extension without the leading dot.
func Extension(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// Normalize decodes the uploaded file into pages. Unknown extensions return
// an UnsupportedFormatError, broken content a DecodeError. Either way the
// whole document is rejected, there is no partial result.
func Normalize(data []byte, filename string) ([]Page, error) {
	ext := Extension(filename)

	switch {
	case ext == "pdf":
		return normalizePDF(data)

	case imageExtensions[ext]:
		return normalizeImage(data)
	}

	return nil, &UnsupportedFormatError{Extension: ext}
}
