// Package pipeline runs the page-by-page recognition job. Both delivery
// surfaces, the buffered JSON response and the live event stream, consume the
// same event sequence so they cannot drift apart in behavior.
package pipeline

import (
	"context"
	"iter"

	"github.com/scriptor-ai/scriptor/pkg/normalizer"
	"github.com/scriptor-ai/scriptor/pkg/recognizer"
)

type Pipeline struct {
	client *recognizer.Client
}

func New(client *recognizer.Client) *Pipeline {
	return &Pipeline{
		client: client,
	}
}

// Run normalizes the document and recognizes each page strictly in order,
// one engine call per page. A failed page yields a failure Result and the
// run continues. Only a document that cannot be decoded at all ends the
// sequence with an error.
func (p *Pipeline) Run(ctx context.Context, data []byte, filename string) iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		pages, err := normalizer.Normalize(data, filename)

		if err != nil {
			yield(nil, err)
			return
		}

		if !yield(Metadata{TotalPages: len(pages)}, nil) {
			return
		}

		calls := 0

		for _, page := range pages {
			if ctx.Err() != nil {
				yield(nil, ctx.Err())
				return
			}

			encoded, err := encodePage(page)

			if err != nil {
				if !yield(Result{Number: page.Number, Err: err}, nil) {
					return
				}

				continue
			}

			if !yield(Processing{Page: encoded}, nil) {
				return
			}

			calls++

			text, err := p.client.Recognize(ctx, page.Number, encoded.File())

			if err != nil {
				if !yield(Result{Number: page.Number, Err: err}, nil) {
					return
				}

				continue
			}

			if !yield(Result{Number: page.Number, Text: text, Page: encoded}, nil) {
				return
			}
		}

		yield(Complete{CallsMade: calls}, nil)
	}
}
