package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMoveToken    = errors.New("invalid move token")
	ErrInvalidOutcomeToken = errors.New("invalid outcome token")
	ErrMalformedLine       = errors.New("malformed line")
)

// LineError - reports which input line failed and why. Line is 1-based.
type LineError struct {
	Line    int
	Content string
	Err     error
}

func (that *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", that.Line, that.Content, that.Err)
}

func (that *LineError) Unwrap() error {
	return that.Err
}
