package pipeline

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/scriptor-ai/scriptor/pkg/normalizer"
	"github.com/scriptor-ai/scriptor/pkg/provider"
)

// Page is a rasterized page encoded once as PNG. The same bytes feed the
// recognition engine and the stream's page preview.
type Page struct {
	Number int

	PNG []byte
}

func encodePage(page normalizer.Page) (*Page, error) {
	var buffer bytes.Buffer

	if err := png.Encode(&buffer, page.Image); err != nil {
		return nil, err
	}

	return &Page{
		Number: page.Number,

		PNG: buffer.Bytes(),
	}, nil
}

func (p *Page) File() provider.File {
	return provider.File{
		Name:        fmt.Sprintf("page-%d.png", p.Number),
		Content:     p.PNG,
		ContentType: "image/png",
	}
}

// DataURL returns the page as an inline image for browser clients.
func (p *Page) DataURL() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(p.PNG)
}
