package pla

import (
	"regexp"
	"strconv"
	"strings"
)

// LineKind classifies a non-blank source line.
type LineKind int

const (
	LineUnknown LineKind = iota
	LineEntry
	LineCommand
)

func (k LineKind) String() string {
	switch k {
	case LineEntry:
		return "entry"
	case LineCommand:
		return "command"
	default:
		return "unknown"
	}
}

// entryHeader matches "[<digits>] <description>". The id group may be empty
// so that "[] foo" classifies as a header and then fails with ErrMalformedID.
var entryHeader = regexp.MustCompile(`^\[(\d*)\](\s)*(.*)`)

// Line is one classified, trimmed source line.
type Line struct {
	LineNo  int
	Kind    LineKind
	Command Command // CommandEntry for headers, CommandUnknown for unknown lines
	Text    string
}

// ClassifyLine trims raw and classifies it. The second result is false for
// blank lines, which carry nothing and are dropped from the stream.
func ClassifyLine(lineNo int, raw string) (Line, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Line{}, false
	}

	if entryHeader.MatchString(text) {
		return Line{LineNo: lineNo, Kind: LineEntry, Command: CommandEntry, Text: text}, true
	}

	cmd := ParseCommand(strings.Fields(text)[0])
	kind := LineCommand
	if cmd == CommandUnknown {
		kind = LineUnknown
	}
	return Line{LineNo: lineNo, Kind: kind, Command: cmd, Text: text}, true
}

// parseEntryHeader extracts the id and description of a header line.
func parseEntryHeader(text string) (uint32, string, error) {
	m := entryHeader.FindStringSubmatch(text)
	if m == nil || m[1] == "" {
		return 0, "", newParseError(ErrMalformedID, text, nil)
	}
	id, err := strconv.ParseUint(m[1], 10, 32)
	if err != nil {
		return 0, "", newParseError(ErrMalformedID, text, err)
	}
	return uint32(id), m[3], nil
}
