package corpus

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrEmptyVocabulary = errors.New("vocabulary is empty")
	ErrNoLabels        = errors.New("label file is empty")
	ErrMissingField    = errors.New("missing field")
	ErrNonPositiveId   = errors.New("id must be positive")
)

// IOError is returned when an input file cannot be read or an
// output file cannot be created
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *IOError) Cause() error  { return e.Err }
func (e *IOError) Unwrap() error { return e.Err }

// NewIOError wraps err with the path of the file it happened on
func NewIOError(path string, err error) error {
	return &IOError{Path: path, Err: err}
}

// FormatError is returned when a line does not parse into the expected
// shape. Line is 1-based, 0 means the whole file.
type FormatError struct {
	Path string
	Line int
	Text string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v (line %q)", e.Path, e.Line, e.Err, e.Text)
}

func (e *FormatError) Cause() error  { return e.Err }
func (e *FormatError) Unwrap() error { return e.Err }

// NewFormatError builds a FormatError for the given line
func NewFormatError(path string, line int, text string, err error) error {
	return &FormatError{Path: path, Line: line, Text: text, Err: err}
}
