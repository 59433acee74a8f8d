package provider

import (
	"context"
)

// Recognizer is a remote vision-language model capable of reading text from a
// single page image. Implementations submit exactly one model request per
// call and return the raw recognized text.
type Recognizer interface {
	Recognize(ctx context.Context, instruction string, image File, options *RecognizeOptions) (*Recognition, error)
}

type RecognizeOptions struct {
	MaxTokens   *int
	Temperature *float32
}

type Recognition struct {
	ID    string
	Model string

	Text string

	Usage *Usage
}
