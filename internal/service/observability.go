package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

type scheduleCount uint8

const (
	countEntries scheduleCount = 1 << iota
	countBars
	countSnapshots
)

// ScheduleFields are the schedule attributes a use case reports. Counts are
// only emitted once set, so a failed load does not log entries=0.
type ScheduleFields struct {
	Path       string
	SnapshotID string
	Entries    int
	Bars       int
	Snapshots  int
	set        scheduleCount
}

func (f *ScheduleFields) SetEntries(n int)   { f.Entries = n; f.set |= countEntries }
func (f *ScheduleFields) SetBars(n int)      { f.Bars = n; f.set |= countBars }
func (f *ScheduleFields) SetSnapshots(n int) { f.Snapshots = n; f.set |= countSnapshots }

// has reports whether the given count was recorded.
func (f ScheduleFields) has(c scheduleCount) bool { return f.set&c != 0 }

// Attrs returns the populated fields as slog attributes.
func (f ScheduleFields) Attrs() []slog.Attr {
	var attrs []slog.Attr
	if f.Path != "" {
		attrs = append(attrs, slog.String("path", f.Path))
	}
	if f.SnapshotID != "" {
		attrs = append(attrs, slog.String("snapshot_id", f.SnapshotID))
	}
	if f.has(countEntries) {
		attrs = append(attrs, slog.Int("entries", f.Entries))
	}
	if f.has(countBars) {
		attrs = append(attrs, slog.Int("bars", f.Bars))
	}
	if f.has(countSnapshots) {
		attrs = append(attrs, slog.Int("snapshots", f.Snapshots))
	}
	return attrs
}

// UseCaseEvent is the telemetry for one schedule service call.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    ScheduleFields
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver logs one line per use case to w, or ignores events when w is nil.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := []slog.Attr{
		slog.String("use_case", event.Name),
		slog.Int64("duration_ms", event.Duration.Milliseconds()),
		slog.Bool("success", event.Success),
	}
	attrs = append(attrs, event.Fields.Attrs()...)

	level := slog.LevelInfo
	if event.Err != nil {
		attrs = append(attrs, slog.String("error", event.Err.Error()))
		level = slog.LevelError
	}
	o.logger.LogAttrs(ctx, level, "schedule_use_case", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
