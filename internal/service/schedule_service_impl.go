package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/alexanderramin/pla2html/internal/db"
	"github.com/alexanderramin/pla2html/internal/domain"
	"github.com/alexanderramin/pla2html/internal/pla"
	"github.com/alexanderramin/pla2html/internal/render"
	"github.com/alexanderramin/pla2html/internal/repository"
	"github.com/google/uuid"
)

// ErrAmbiguousSnapshot is returned when an ID prefix matches more than one snapshot.
var ErrAmbiguousSnapshot = errors.New("ambiguous snapshot id")

type scheduleService struct {
	snapshots repository.SnapshotRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
	now       func() time.Time
}

func NewScheduleService(
	snapshots repository.SnapshotRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ScheduleService {
	return &scheduleService{
		snapshots: snapshots,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
		now:       time.Now,
	}
}

func (s *scheduleService) observe(ctx context.Context, name string, startedAt time.Time, fields ScheduleFields, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func (s *scheduleService) Load(ctx context.Context, path string) (p *pla.Parser, err error) {
	startedAt := time.Now()
	fields := ScheduleFields{Path: path}
	defer func() { s.observe(ctx, "load", startedAt, fields, err) }()

	p, err = pla.ParseFile(path)
	if err != nil {
		return nil, err
	}
	fields.SetEntries(p.Len())
	return p, nil
}

func (s *scheduleService) Render(ctx context.Context, path string, w io.Writer, opts render.Options) (res *RenderResult, err error) {
	startedAt := time.Now()
	fields := ScheduleFields{Path: path}
	defer func() { s.observe(ctx, "render", startedAt, fields, err) }()

	p, err := pla.ParseFile(path)
	if err != nil {
		return nil, err
	}
	if opts.Today.IsZero() {
		opts.Today = s.now()
	}

	cal, err := render.Layout(p.Entries(), opts)
	if err != nil {
		return nil, fmt.Errorf("laying out calendar: %w", err)
	}
	if err := render.WriteHTML(w, cal); err != nil {
		return nil, fmt.Errorf("writing calendar: %w", err)
	}

	res = &RenderResult{
		Calendar:    cal,
		EntryCount:  p.Len(),
		Unscheduled: len(cal.Unscheduled),
	}
	for _, row := range cal.Rows {
		res.BarCount += len(row.Bars)
	}
	fields.SetEntries(res.EntryCount)
	fields.SetBars(res.BarCount)
	return res, nil
}

func (s *scheduleService) Import(ctx context.Context, path string) (snap *domain.Snapshot, err error) {
	startedAt := time.Now()
	fields := ScheduleFields{Path: path}
	defer func() { s.observe(ctx, "import", startedAt, fields, err) }()

	p, err := pla.ParseFile(path)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	snap = &domain.Snapshot{
		ID:         uuid.New().String(),
		SourcePath: abs,
		ImportedAt: s.now().UTC().Truncate(time.Second),
	}
	fields.SnapshotID = snap.ID

	entries := p.Entries()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteSnapshotRepo(tx).Create(ctx, snap, entries)
	})
	if err != nil {
		return nil, fmt.Errorf("storing snapshot: %w", err)
	}
	fields.SetEntries(snap.EntryCount)
	return snap, nil
}

func (s *scheduleService) History(ctx context.Context) (list []*domain.Snapshot, err error) {
	startedAt := time.Now()
	var fields ScheduleFields
	defer func() { s.observe(ctx, "history", startedAt, fields, err) }()

	list, err = s.snapshots.List(ctx)
	if err != nil {
		return nil, err
	}
	fields.SetSnapshots(len(list))
	return list, nil
}

func (s *scheduleService) Snapshot(ctx context.Context, id string) (snap *domain.Snapshot, entries []pla.Entry, err error) {
	startedAt := time.Now()
	fields := ScheduleFields{SnapshotID: id}
	defer func() { s.observe(ctx, "snapshot", startedAt, fields, err) }()

	snap, err = s.resolve(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	fields.SnapshotID = snap.ID

	entries, err = s.snapshots.LoadEntries(ctx, snap.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("loading snapshot %s: %w", snap.DisplayID(), err)
	}
	fields.SetEntries(len(entries))
	return snap, entries, nil
}

func (s *scheduleService) Forget(ctx context.Context, id string) (err error) {
	startedAt := time.Now()
	fields := ScheduleFields{SnapshotID: id}
	defer func() { s.observe(ctx, "forget", startedAt, fields, err) }()

	snap, err := s.resolve(ctx, id)
	if err != nil {
		return err
	}
	fields.SnapshotID = snap.ID
	return s.snapshots.Delete(ctx, snap.ID)
}

// resolve accepts a full snapshot ID or a prefix matching exactly one snapshot.
func (s *scheduleService) resolve(ctx context.Context, id string) (*domain.Snapshot, error) {
	snap, err := s.snapshots.GetByID(ctx, id)
	if err == nil {
		return snap, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	matches, err := s.snapshots.FindByPrefix(ctx, id)
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("snapshot %s: %w", id, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	}
	return nil, fmt.Errorf("%w: %q matches %d snapshots", ErrAmbiguousSnapshot, id, len(matches))
}
