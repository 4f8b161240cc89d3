package pla

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var resourceLine = regexp.MustCompile(`^res\s+(.*)$`)

// commandArgs splits on single spaces and drops the command word.
func commandArgs(text string) []string {
	return strings.Split(text, " ")[1:]
}

func argAt(args []string, i int) (string, bool) {
	if i < len(args) {
		return args[i], true
	}
	return "", false
}

// ParseStart parses "start YYYY-MM-DD [hour]". The hour defaults to 0.
func ParseStart(parentID uint32, text string) (Start, error) {
	args := commandArgs(text)

	rawDate, ok := argAt(args, 0)
	if !ok {
		return Start{}, newParseError(ErrInvalidDate, text, nil)
	}
	date, err := time.Parse(dateLayout, rawDate)
	if err != nil {
		return Start{}, newParseError(ErrInvalidDate, text, err)
	}

	var hour uint32
	if rawHour, ok := argAt(args, 1); ok {
		h, err := strconv.ParseUint(rawHour, 10, 32)
		if err != nil {
			return Start{}, newParseError(ErrInvalidHour, text, err)
		}
		if h > 23 {
			return Start{}, newParseError(ErrInvalidHour, text, nil)
		}
		hour = uint32(h)
	}

	return Start{Parent: parentID, Date: date, Hour: hour}, nil
}

// ParseDuration parses "duration <days>".
func ParseDuration(parentID uint32, text string) (Duration, error) {
	n, err := uintArg(text, ErrInvalidDuration)
	if err != nil {
		return Duration{}, err
	}
	return Duration{Parent: parentID, Length: n}, nil
}

// ParseDependency parses "dep <id>".
func ParseDependency(parentID uint32, text string) (Dependency, error) {
	n, err := uintArg(text, ErrInvalidDependency)
	if err != nil {
		return Dependency{}, err
	}
	return Dependency{Parent: parentID, DependencyID: n}, nil
}

// ParseChild parses "child <id>".
func ParseChild(parentID uint32, text string) (Child, error) {
	n, err := uintArg(text, ErrInvalidChild)
	if err != nil {
		return Child{}, err
	}
	return Child{Parent: parentID, ChildID: n}, nil
}

// ParseResource parses "res <name>", keeping the name verbatim.
func ParseResource(parentID uint32, text string) (Resource, error) {
	m := resourceLine.FindStringSubmatch(text)
	if m == nil {
		return Resource{}, newParseError(ErrInvalidResource, text, nil)
	}
	return Resource{Parent: parentID, Name: m[1]}, nil
}

func uintArg(text string, kind error) (uint32, error) {
	raw, ok := argAt(commandArgs(text), 0)
	if !ok {
		return 0, newParseError(kind, text, nil)
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, newParseError(kind, text, err)
	}
	return uint32(n), nil
}

// ParseSubRecord converts a hierarchical command line into its sub-record.
// Lines without an owning entry fail with ErrOrphanCommand.
func ParseSubRecord(hl HierarchicalLine) (SubRecord, error) {
	if !hl.Command.IsSubRecord() {
		return nil, fmt.Errorf("pla: %s lines carry no sub-record", hl.Command)
	}
	if hl.ParentID == nil {
		return nil, &ParseError{Kind: ErrOrphanCommand, LineNo: hl.LineNo, Text: hl.Text}
	}
	parent := *hl.ParentID

	var (
		rec SubRecord
		err error
	)
	switch hl.Command {
	case CommandStart:
		rec, err = ParseStart(parent, hl.Text)
	case CommandDuration:
		rec, err = ParseDuration(parent, hl.Text)
	case CommandDependency:
		rec, err = ParseDependency(parent, hl.Text)
	case CommandChild:
		rec, err = ParseChild(parent, hl.Text)
	case CommandResource:
		rec, err = ParseResource(parent, hl.Text)
	}
	if err != nil {
		return nil, atLine(err, hl.LineNo)
	}
	return rec, nil
}
