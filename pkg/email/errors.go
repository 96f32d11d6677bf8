package email

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is the single error kind for unparsable input. Every
// parse failure matches it via errors.Is, whether the input was blank or
// rejected by the underlying parser.
var ErrInvalidFormat = errors.New("invalid email address")

// ParseError reports an input string that could not be parsed as an email
// address. Input holds the rejected string verbatim.
type ParseError struct {
	Input string
	cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("'%s' is not a valid email address", e.Input)
}

// Is makes every ParseError match ErrInvalidFormat.
func (e *ParseError) Is(target error) bool { return target == ErrInvalidFormat }

// Unwrap returns the underlying parser rejection, or nil when the input was
// blank and never reached the parser.
func (e *ParseError) Unwrap() error { return e.cause }
