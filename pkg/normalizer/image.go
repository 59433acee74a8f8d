package normalizer

import (
	"bytes"
	"image"
	"image/draw"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

func normalizeImage(data []byte) ([]Page, error) {
	img, _, err := image.Decode(bytes.NewReader(data))

	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	return []Page{
		{
			Number: 1,

			Image: flattenRGB(img),
		},
	}, nil
}

// flattenRGB copies the image into RGBA with the alpha channel forced opaque,
// so transparent formats come out as plain RGB data.
func flattenRGB(img image.Image) *image.RGBA {
	bounds := img.Bounds()

	flat := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(flat, flat.Bounds(), img, bounds.Min, draw.Src)

	for i := 3; i < len(flat.Pix); i += 4 {
		flat.Pix[i] = 0xff
	}

	return flat
}
