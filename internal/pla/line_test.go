package pla

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		kind    LineKind
		command Command
		text    string
	}{
		{"entry header", "[10000] Autumn's Early Arrival Blonde", LineEntry, CommandEntry, "[10000] Autumn's Early Arrival Blonde"},
		{"indented header", "   [7]Mash  ", LineEntry, CommandEntry, "[7]Mash"},
		{"empty id header", "[] nothing", LineEntry, CommandEntry, "[] nothing"},
		{"start", "\tstart 2021-01-15 15", LineCommand, CommandStart, "start 2021-01-15 15"},
		{"duration", "duration 22", LineCommand, CommandDuration, "duration 22"},
		{"dep", "dep 12", LineCommand, CommandDependency, "dep 12"},
		{"child", "child 202", LineCommand, CommandChild, "child 202"},
		{"res", "res Fermenter 3", LineCommand, CommandResource, "res Fermenter 3"},
		{"tab separated command", "start\t2021-01-15", LineCommand, CommandStart, "start\t2021-01-15"},
		{"entry keyword", "entry 5", LineCommand, CommandEntry, "entry 5"},
		{"unknown", "color red", LineUnknown, CommandUnknown, "color red"},
		{"case sensitive", "Start 2021-01-15", LineUnknown, CommandUnknown, "Start 2021-01-15"},
		{"not quite a header", "10000] oops", LineUnknown, CommandUnknown, "10000] oops"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, ok := ClassifyLine(3, tt.raw)
			require.True(t, ok)
			assert.Equal(t, 3, line.LineNo)
			assert.Equal(t, tt.kind, line.Kind)
			assert.Equal(t, tt.command, line.Command)
			assert.Equal(t, tt.text, line.Text)
		})
	}
}

func TestClassifyLine_BlankLinesDropped(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\t", "\r"} {
		_, ok := ClassifyLine(1, raw)
		assert.False(t, ok, "%q should be dropped", raw)
	}
}

func TestParseEntryHeader(t *testing.T) {
	id, desc, err := parseEntryHeader("[10000] Autumn's Early Arrival Blonde (Batch: 10000)")
	require.NoError(t, err)
	assert.Equal(t, uint32(10000), id)
	assert.Equal(t, "Autumn's Early Arrival Blonde (Batch: 10000)", desc)

	id, desc, err = parseEntryHeader("[42]")
	require.NoError(t, err)
	assert.Equal(t, uint32(42), id)
	assert.Empty(t, desc)
}

func TestParseEntryHeader_Malformed(t *testing.T) {
	for _, text := range []string{"[] nothing", "[99999999999] too big", "entry 5"} {
		_, _, err := parseEntryHeader(text)
		assert.ErrorIs(t, err, ErrMalformedID, text)
	}
}

func TestLineKind_String(t *testing.T) {
	assert.Equal(t, "entry", LineEntry.String())
	assert.Equal(t, "command", LineCommand.String())
	assert.Equal(t, "unknown", LineUnknown.String())
}
