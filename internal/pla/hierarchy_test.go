package pla

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classifyAll(t *testing.T, raws ...string) []Line {
	t.Helper()
	var lines []Line
	for i, raw := range raws {
		if l, ok := ClassifyLine(i+1, raw); ok {
			lines = append(lines, l)
		}
	}
	return lines
}

func TestBuildHierarchy_AssignsLatestHeader(t *testing.T) {
	lines := classifyAll(t,
		"[1] First",
		"start 2021-01-15",
		"color blue",
		"duration 3",
		"[2] Second",
		"dep 1",
	)

	hls, err := BuildHierarchy(lines)
	require.NoError(t, err)
	require.Len(t, hls, 5, "unknown line is dropped")

	assert.True(t, hls[0].IsEntry())
	assert.Nil(t, hls[0].ParentID)

	require.NotNil(t, hls[1].ParentID)
	assert.Equal(t, uint32(1), *hls[1].ParentID)
	assert.Equal(t, CommandStart, hls[1].Command)

	require.NotNil(t, hls[2].ParentID)
	assert.Equal(t, uint32(1), *hls[2].ParentID, "unknown line does not reset the parent")
	assert.Equal(t, 4, hls[2].LineNo)

	assert.Nil(t, hls[3].ParentID)
	require.NotNil(t, hls[4].ParentID)
	assert.Equal(t, uint32(2), *hls[4].ParentID)
}

func TestBuildHierarchy_CommandBeforeHeaderHasNoParent(t *testing.T) {
	hls, err := BuildHierarchy(classifyAll(t, "child 202", "[5] Later"))
	require.NoError(t, err)
	require.Len(t, hls, 2)
	assert.Nil(t, hls[0].ParentID)
	assert.Equal(t, CommandChild, hls[0].Command)
}

func TestBuildHierarchy_ParentIDsDoNotAlias(t *testing.T) {
	hls, err := BuildHierarchy(classifyAll(t, "[1] A", "duration 1", "duration 2"))
	require.NoError(t, err)
	require.Len(t, hls, 3)
	*hls[1].ParentID = 99
	assert.Equal(t, uint32(1), *hls[2].ParentID)
}

func TestBuildHierarchy_MalformedHeader(t *testing.T) {
	tests := []struct {
		name string
		raws []string
		line int
	}{
		{"empty id", []string{"[] Nothing"}, 1},
		{"overflow", []string{"[1] ok", "[4294967296] too big"}, 2},
		{"bare entry keyword", []string{"[1] ok", "", "entry 5"}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildHierarchy(classifyAll(t, tt.raws...))
			require.ErrorIs(t, err, ErrMalformedID)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.line, perr.LineNo)
		})
	}
}

func TestBuildHierarchy_Empty(t *testing.T) {
	hls, err := BuildHierarchy(nil)
	require.NoError(t, err)
	assert.Empty(t, hls)
}
