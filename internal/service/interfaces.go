package service

import (
	"context"
	"io"

	"github.com/alexanderramin/pla2html/internal/domain"
	"github.com/alexanderramin/pla2html/internal/pla"
	"github.com/alexanderramin/pla2html/internal/render"
)

type ScheduleService interface {
	// Load parses the PLA file at path.
	Load(ctx context.Context, path string) (*pla.Parser, error)
	// Render parses path and writes its HTML calendar to w.
	Render(ctx context.Context, path string, w io.Writer, opts render.Options) (*RenderResult, error)
	// Import parses path and stores its entries as a new snapshot.
	Import(ctx context.Context, path string) (*domain.Snapshot, error)
	History(ctx context.Context) ([]*domain.Snapshot, error)
	// Snapshot loads a stored snapshot by ID or unique ID prefix.
	Snapshot(ctx context.Context, id string) (*domain.Snapshot, []pla.Entry, error)
	Forget(ctx context.Context, id string) error
}

// RenderResult summarises a rendered calendar.
type RenderResult struct {
	Calendar    *render.Calendar
	EntryCount  int
	BarCount    int
	Unscheduled int
}
