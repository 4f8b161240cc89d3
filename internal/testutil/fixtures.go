package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/pla2html/internal/domain"
	"github.com/google/uuid"
)

// BrewPlan is a small schedule with one group, two scheduled children (one
// placed by dependency) and an entry with no sub-records.
const BrewPlan = `[1] Autumn's Blonde
  child 10000
  child 10001

[10000] Brew day
  start 2021-10-12 15
  duration 22
  res Fermenter 2

[10001] Bottling
  dep 10000
  duration 30
  res Bottles

[30000] Order malt
`

// SnapshotOption customises a snapshot built by NewTestSnapshot.
type SnapshotOption func(*domain.Snapshot)

func WithSourcePath(p string) SnapshotOption {
	return func(s *domain.Snapshot) {
		s.SourcePath = p
	}
}

func WithImportedAt(t time.Time) SnapshotOption {
	return func(s *domain.Snapshot) {
		s.ImportedAt = t
	}
}

func NewTestSnapshot(opts ...SnapshotOption) *domain.Snapshot {
	s := &domain.Snapshot{
		ID:         uuid.New().String(),
		SourcePath: "plan.pla",
		ImportedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WritePLA writes source into a temp file and returns its path.
func WritePLA(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.pla")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}
