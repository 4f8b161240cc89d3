package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotValidate(t *testing.T) {
	now := time.Date(2021, 10, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		snap    Snapshot
		wantErr string
	}{
		{"valid", Snapshot{ID: "0b6f1c2e-aaaa", SourcePath: "plan.pla", ImportedAt: now}, ""},
		{"missing id", Snapshot{SourcePath: "plan.pla", ImportedAt: now}, "ID is required"},
		{"blank path", Snapshot{ID: "abc", SourcePath: "  ", ImportedAt: now}, "no source path"},
		{"zero time", Snapshot{ID: "abc", SourcePath: "plan.pla"}, "no import time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.snap.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSnapshotDisplayID(t *testing.T) {
	assert.Equal(t, "0b6f1c2e", (&Snapshot{ID: "0b6f1c2e-1234-5678"}).DisplayID())
	assert.Equal(t, "abc", (&Snapshot{ID: "abc"}).DisplayID())
}

func TestSnapshotSourceName(t *testing.T) {
	s := &Snapshot{SourcePath: "/home/brewer/plans/autumn.pla"}
	assert.Equal(t, "autumn.pla", s.SourceName())
}
