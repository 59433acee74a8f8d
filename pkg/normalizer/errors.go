package normalizer

import (
	"fmt"
)

// UnsupportedFormatError rejects a file whose extension is not on the
// allow-list. It is returned before any content is inspected.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type: .%s. please upload a PDF or image file (JPG, PNG, etc.)", e.Extension)
}

// DecodeError marks content that could not be turned into page images. It
// aborts the whole job.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unable to decode document: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
