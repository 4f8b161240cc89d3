package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Snapshot is one imported PLA file persisted in the local store.
type Snapshot struct {
	ID         string
	SourcePath string
	EntryCount int
	ImportedAt time.Time
}

// Validate checks the fields the store requires.
func (s *Snapshot) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("snapshot ID is required")
	}
	if strings.TrimSpace(s.SourcePath) == "" {
		return fmt.Errorf("snapshot %s has no source path", s.DisplayID())
	}
	if s.ImportedAt.IsZero() {
		return fmt.Errorf("snapshot %s has no import time", s.DisplayID())
	}
	return nil
}

// DisplayID returns the first 8 characters of ID.
func (s *Snapshot) DisplayID() string {
	if len(s.ID) >= 8 {
		return s.ID[:8]
	}
	return s.ID
}

// SourceName is the base name of the imported file.
func (s *Snapshot) SourceName() string {
	return filepath.Base(s.SourcePath)
}
