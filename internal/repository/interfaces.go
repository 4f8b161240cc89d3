package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/pla2html/internal/domain"
	"github.com/alexanderramin/pla2html/internal/pla"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type SnapshotRepo interface {
	Create(ctx context.Context, s *domain.Snapshot, entries []pla.Entry) error
	GetByID(ctx context.Context, id string) (*domain.Snapshot, error)
	// FindByPrefix returns snapshots whose ID starts with prefix.
	FindByPrefix(ctx context.Context, prefix string) ([]*domain.Snapshot, error)
	List(ctx context.Context) ([]*domain.Snapshot, error)
	LoadEntries(ctx context.Context, snapshotID string) ([]pla.Entry, error)
	Delete(ctx context.Context, id string) error
}
