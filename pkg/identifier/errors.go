package identifier

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when the text, once dashes are removed,
	// does not have exactly Width.HexLen characters.
	ErrInvalidLength = errors.New("invalid length")
	// ErrInvalidChars is returned when the text has the right length but is
	// not hexadecimal.
	ErrInvalidChars = errors.New("invalid chars")
	// ErrInvalid is returned when the bound validator rejects the value.
	ErrInvalid = errors.New("invalid")
)

// ParseError describes a failed parse. It unwraps to one of ErrInvalidLength,
// ErrInvalidChars or ErrInvalid.
type ParseError struct {
	Input string
	Width Width
	Err   error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrInvalidLength) {
		return fmt.Sprintf("identifier %q: length is expected to be %d characters", e.Input, e.Width.HexLen())
	}
	return fmt.Sprintf("identifier %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
