package normalizer

import (
	"errors"

	"github.com/gen2brain/go-fitz"
)

// renderDPI matches the 300/72 scale used for print-quality rasterization.
const renderDPI = 300

func normalizePDF(data []byte) ([]Page, error) {
	doc, err := fitz.NewFromMemory(data)

	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	defer doc.Close()

	count := doc.NumPage()

	if count == 0 {
		return nil, &DecodeError{Err: errors.New("pdf contains no pages")}
	}

	pages := make([]Page, 0, count)

	for i := 0; i < count; i++ {
		img, err := doc.ImageDPI(i, renderDPI)

		if err != nil {
			return nil, &DecodeError{Err: err}
		}

		pages = append(pages, Page{
			Number: i + 1,

			Image: flattenRGB(img),
		})
	}

	return pages, nil
}
