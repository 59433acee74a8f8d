package recognizer

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse marks a recognition call that returned no text at all.
// A blank page is still a failure outcome so callers can tell "nothing
// extracted" apart from "recognized blank".
var ErrEmptyResponse = errors.New("empty response from recognition engine")

// PageError is a recognition failure scoped to a single page.
type PageError struct {
	Page int
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %d: %v", e.Page, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}
