// Package recognizer wraps a provider.Recognizer with the fixed generation
// settings handwriting transcription requires: zero temperature, a bounded
// output length and plain-text framing. One call recognizes one page.
package recognizer

import (
	"context"
	"strings"
	"time"

	"github.com/scriptor-ai/scriptor/pkg/provider"
)

const (
	// MaxOutputTokens caps a single page transcription.
	MaxOutputTokens = 8192

	// DefaultTimeout bounds one recognition call so a stalled engine surfaces
	// as that page's failure instead of hanging the job.
	DefaultTimeout = 2 * time.Minute
)

type Client struct {
	provider provider.Recognizer

	prompt  string
	timeout time.Duration
}

type Option func(*Client)

func WithPrompt(prompt string) Option {
	return func(c *Client) {
		c.prompt = prompt
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func New(p provider.Recognizer, options ...Option) *Client {
	c := &Client{
		provider: p,

		prompt:  Prompt,
		timeout: DefaultTimeout,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// Recognize submits a single page image and returns the transcribed text.
// Engine failures, timeouts and blank responses are all reported as a
// PageError carrying the page number; errors are never retried.
func (c *Client) Recognize(ctx context.Context, page int, image provider.File) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	temperature := float32(0)
	maxTokens := MaxOutputTokens

	options := &provider.RecognizeOptions{
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	}

	result, err := c.provider.Recognize(ctx, c.prompt, image, options)

	if err != nil {
		return "", &PageError{Page: page, Err: err}
	}

	text := strings.TrimSpace(result.Text)

	if text == "" {
		return "", &PageError{Page: page, Err: ErrEmptyResponse}
	}

	return text, nil
}
