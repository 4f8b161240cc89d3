package pla

import (
	"errors"
	"fmt"
)

// Parse error kinds. A *ParseError unwraps to exactly one of these.
var (
	// ErrMalformedID indicates an entry header whose id is absent or not a uint32.
	ErrMalformedID = errors.New("malformed entry id")

	// ErrOrphanCommand indicates a command line with no preceding entry header.
	ErrOrphanCommand = errors.New("command line with no owning entry")

	ErrInvalidDate       = errors.New("invalid start date")
	ErrInvalidHour       = errors.New("invalid start hour")
	ErrInvalidDuration   = errors.New("invalid duration")
	ErrInvalidDependency = errors.New("invalid dependency id")
	ErrInvalidChild      = errors.New("invalid child id")
	ErrInvalidResource   = errors.New("invalid resource")
)

// ParseError reports the first failure that aborted a parse.
type ParseError struct {
	Kind   error  // one of the Err* kinds above
	LineNo int    // 1-based source line; 0 when unknown
	Text   string // trimmed source line
	Cause  error  // underlying conversion error, if any
}

func (e *ParseError) Error() string {
	msg := e.Kind.Error()
	if e.Text != "" {
		msg = fmt.Sprintf("%s in %q", msg, e.Text)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.LineNo > 0 {
		return fmt.Sprintf("line %d: %s", e.LineNo, msg)
	}
	return msg
}

func (e *ParseError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

func newParseError(kind error, text string, cause error) *ParseError {
	return &ParseError{Kind: kind, Text: text, Cause: cause}
}

// atLine stamps a line number onto err when it is a *ParseError without one.
func atLine(err error, lineNo int) error {
	var perr *ParseError
	if errors.As(err, &perr) && perr.LineNo == 0 {
		perr.LineNo = lineNo
	}
	return err
}
