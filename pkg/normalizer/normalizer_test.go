package normalizer_test

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/scriptor-ai/scriptor/pkg/normalizer"

	"github.com/stretchr/testify/require"
)

func makePNG(t *testing.T, alpha uint8) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: alpha})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func makePDF(t *testing.T, pages int) []byte {
	t.Helper()

	kids := make([]string, 0, pages)

	for i := 0; i < pages; i++ {
		kids = append(kids, fmt.Sprintf("%d 0 R", 3+i))
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), pages),
	}

	for i := 0; i < pages; i++ {
		objects = append(objects, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 72 72] >>")
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))

	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	start := buf.Len()

	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")

	for _, offset := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offset)
	}

	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, start)

	return buf.Bytes()
}

func TestExtension(t *testing.T) {
	require.Equal(t, "pdf", normalizer.Extension("scan.PDF"))
	require.Equal(t, "jpg", normalizer.Extension("dir/photo.jpg"))
	require.Equal(t, "", normalizer.Extension("README"))
}

func TestSupported(t *testing.T) {
	for _, name := range []string{"a.pdf", "a.jpg", "a.jpeg", "a.png", "a.gif", "a.bmp", "a.tiff", "a.webp", "A.PNG"} {
		require.True(t, normalizer.Supported(name), name)
	}

	for _, name := range []string{"a.docx", "a.txt", "a", "a.svg"} {
		require.False(t, normalizer.Supported(name), name)
	}
}

func TestNormalizeImage(t *testing.T) {
	pages, err := normalizer.Normalize(makePNG(t, 128), "scan.png")
	require.NoError(t, err)
	require.Len(t, pages, 1)

	require.Equal(t, 1, pages[0].Number)
	require.Equal(t, 8, pages[0].Image.Bounds().Dx())
	require.Equal(t, 8, pages[0].Image.Bounds().Dy())

	for i := 3; i < len(pages[0].Image.Pix); i += 4 {
		require.EqualValues(t, 0xff, pages[0].Image.Pix[i])
	}
}

func TestNormalizeUnsupported(t *testing.T) {
	_, err := normalizer.Normalize([]byte("hello"), "notes.docx")
	require.Error(t, err)

	var unsupported *normalizer.UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	require.Equal(t, "docx", unsupported.Extension)
}

func TestNormalizeBrokenImage(t *testing.T) {
	_, err := normalizer.Normalize([]byte("not a png"), "scan.png")

	var decode *normalizer.DecodeError
	require.ErrorAs(t, err, &decode)
}

func TestNormalizePDF(t *testing.T) {
	pages, err := normalizer.Normalize(makePDF(t, 3), "scan.pdf")
	require.NoError(t, err)
	require.Len(t, pages, 3)

	for i, page := range pages {
		require.Equal(t, i+1, page.Number)
		require.Greater(t, page.Image.Bounds().Dx(), 0)
		require.Greater(t, page.Image.Bounds().Dy(), 0)
	}
}

func TestNormalizeZeroPagePDF(t *testing.T) {
	_, err := normalizer.Normalize(makePDF(t, 0), "scan.pdf")
	require.Error(t, err)

	var decode *normalizer.DecodeError
	require.ErrorAs(t, err, &decode)
	require.Contains(t, err.Error(), "no pages")
}

func TestNormalizeBrokenPDF(t *testing.T) {
	_, err := normalizer.Normalize([]byte("%PDF-1.4 garbage"), "scan.pdf")

	var decode *normalizer.DecodeError
	require.ErrorAs(t, err, &decode)
}
