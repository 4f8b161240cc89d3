package pla

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError_Message(t *testing.T) {
	err := &ParseError{Kind: ErrInvalidDuration, LineNo: 4, Text: "duration soon"}
	assert.Equal(t, `line 4: invalid duration in "duration soon"`, err.Error())

	noLine := &ParseError{Kind: ErrOrphanCommand, Text: "child 202"}
	assert.Equal(t, `command line with no owning entry in "child 202"`, noLine.Error())
}

func TestParseError_UnwrapsKindAndCause(t *testing.T) {
	_, cause := strconv.ParseUint("x", 10, 32)
	require.Error(t, cause)

	var err error = &ParseError{Kind: ErrInvalidChild, Text: "child x", Cause: cause}
	assert.ErrorIs(t, err, ErrInvalidChild)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.NotErrorIs(t, err, ErrInvalidDependency)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "child x", perr.Text)
}

func TestAtLine_KeepsExistingLine(t *testing.T) {
	err := atLine(&ParseError{Kind: ErrInvalidDate, LineNo: 2}, 9)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.LineNo)

	err = atLine(&ParseError{Kind: ErrInvalidDate}, 9)
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 9, perr.LineNo)
}
