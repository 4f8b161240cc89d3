package render

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/pla2html/internal/pla"
)

// ErrDependencyCycle is returned when start dates cannot be derived because
// entries depend on each other in a loop.
var ErrDependencyCycle = errors.New("dependency cycle")

const defaultDayWidthPx = 45

// Options controls the calendar window and cell geometry.
type Options struct {
	From       *time.Time // first visible day; nil derives it from the bars
	To         *time.Time // last visible day; nil derives it from the bars
	DayWidthPx int
	Today      time.Time // window fallback for schedules without bars
}

// Bar is one scheduled entry placed on the calendar.
type Bar struct {
	EntryID   uint32
	Label     string
	Start     time.Time
	Days      int
	Resources []string
	Offset    int // day index of the first visible day of the bar
	Visible   int // number of visible days
}

// Row groups bars under a label. Entries listed as a child of a group entry
// share the group's row block.
type Row struct {
	GroupID uint32
	Label   string
	Bars    []Bar
}

// Month is a run of visible days within one calendar month.
type Month struct {
	Name     string
	FirstDay int
	Days     int
}

// Calendar is the laid-out schedule handed to the HTML writer.
type Calendar struct {
	From        time.Time
	To          time.Time
	DayWidthPx  int
	Months      []Month
	Rows        []Row
	Unscheduled []pla.Entry
}

// TotalDays is the number of visible day columns.
func (c *Calendar) TotalDays() int {
	return daysBetween(c.From, c.To) + 1
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

type span struct {
	start time.Time
	days  int
}

func (s span) end() time.Time {
	return truncateDay(s.start).AddDate(0, 0, s.days)
}

type resolver struct {
	byID     map[uint32]pla.Entry
	spans    map[uint32]*span
	visiting map[uint32]bool
}

// resolve returns the span of id, or nil when the entry cannot be placed.
// Entries without a start begin when their latest dependency ends.
func (r *resolver) resolve(id uint32) (*span, error) {
	if s, ok := r.spans[id]; ok {
		return s, nil
	}
	if r.visiting[id] {
		return nil, fmt.Errorf("%w: entry %d", ErrDependencyCycle, id)
	}
	e, ok := r.byID[id]
	if !ok {
		return nil, nil
	}

	r.visiting[id] = true
	defer delete(r.visiting, id)

	days := 1
	if d, ok := e.Duration(); ok && d.Length > 0 {
		days = int(d.Length)
	}

	var result *span
	if st, ok := e.Start(); ok {
		result = &span{start: st.Date.Add(time.Duration(st.Hour) * time.Hour), days: days}
	} else {
		var latest time.Time
		for _, depID := range e.DependencyIDs() {
			dep, err := r.resolve(depID)
			if err != nil {
				return nil, err
			}
			if dep != nil && dep.end().After(latest) {
				latest = dep.end()
			}
		}
		if !latest.IsZero() {
			result = &span{start: latest, days: days}
		}
	}

	r.spans[id] = result
	return result, nil
}

// Layout places entries on a calendar. Entries that have neither a start nor
// a placed dependency are returned as unscheduled.
func Layout(entries []pla.Entry, opts Options) (*Calendar, error) {
	byID := make(map[uint32]pla.Entry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}
	groupOf := make(map[uint32]uint32)
	for _, e := range entries {
		for _, child := range e.ChildIDs() {
			if _, claimed := groupOf[child]; !claimed && child != e.ID {
				groupOf[child] = e.ID
			}
		}
	}

	r := &resolver{byID: byID, spans: make(map[uint32]*span), visiting: make(map[uint32]bool)}

	type placed struct {
		entry pla.Entry
		span  span
	}
	var bars []placed
	var unscheduled []pla.Entry
	seen := make(map[uint32]bool)
	for _, e := range entries {
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		e = byID[e.ID]

		s, err := r.resolve(e.ID)
		if err != nil {
			return nil, err
		}
		if s == nil {
			if len(e.ChildIDs()) == 0 {
				unscheduled = append(unscheduled, e)
			}
			continue
		}
		bars = append(bars, placed{entry: e, span: *s})
	}

	spans := make([]span, len(bars))
	for i, p := range bars {
		spans[i] = p.span
	}
	from, to := window(opts, spans)

	cal := &Calendar{
		From:        from,
		To:          to,
		DayWidthPx:  opts.DayWidthPx,
		Months:      months(from, to),
		Unscheduled: unscheduled,
	}
	if cal.DayWidthPx <= 0 {
		cal.DayWidthPx = defaultDayWidthPx
	}

	rowIndex := make(map[uint32]int)
	for _, p := range bars {
		bar, ok := clip(p.entry, p.span, from, to)
		if !ok {
			continue
		}
		groupID := p.entry.ID
		if g, ok := groupOf[p.entry.ID]; ok {
			groupID = g
		}
		idx, ok := rowIndex[groupID]
		if !ok {
			idx = len(cal.Rows)
			rowIndex[groupID] = idx
			cal.Rows = append(cal.Rows, Row{GroupID: groupID, Label: byID[groupID].Description})
		}
		cal.Rows[idx].Bars = append(cal.Rows[idx].Bars, bar)
	}

	return cal, nil
}

// window picks the visible range: whole months around the bars unless the
// options pin either end.
func window(opts Options, spans []span) (time.Time, time.Time) {
	var from, to time.Time
	for _, s := range spans {
		first := truncateDay(s.start)
		last := s.end().AddDate(0, 0, -1)
		if from.IsZero() || first.Before(from) {
			from = first
		}
		if to.IsZero() || last.After(to) {
			to = last
		}
	}
	if from.IsZero() {
		today := opts.Today
		if today.IsZero() {
			today = time.Now().UTC()
		}
		from, to = truncateDay(today), truncateDay(today)
	}

	from = time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), DaysInMonth(to.Year(), to.Month()), 0, 0, 0, 0, time.UTC)

	if opts.From != nil {
		from = truncateDay(*opts.From)
	}
	if opts.To != nil {
		to = truncateDay(*opts.To)
	}
	if to.Before(from) {
		to = from
	}
	return from, to
}

func months(from, to time.Time) []Month {
	var out []Month
	for cur := from; !cur.After(to); {
		last := time.Date(cur.Year(), cur.Month(), DaysInMonth(cur.Year(), cur.Month()), 0, 0, 0, 0, time.UTC)
		if last.After(to) {
			last = to
		}
		out = append(out, Month{
			Name:     cur.Format("January 2006"),
			FirstDay: cur.Day(),
			Days:     last.Day() - cur.Day() + 1,
		})
		cur = last.AddDate(0, 0, 1)
	}
	return out
}

func clip(e pla.Entry, s span, from, to time.Time) (Bar, bool) {
	first := truncateDay(s.start)
	last := s.end().AddDate(0, 0, -1)
	if last.Before(from) || first.After(to) {
		return Bar{}, false
	}
	visFirst, visLast := first, last
	if visFirst.Before(from) {
		visFirst = from
	}
	if visLast.After(to) {
		visLast = to
	}
	return Bar{
		EntryID:   e.ID,
		Label:     e.Description,
		Start:     s.start,
		Days:      s.days,
		Resources: e.Resources(),
		Offset:    daysBetween(from, visFirst),
		Visible:   daysBetween(visFirst, visLast) + 1,
	}, true
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

const secondsPerDay = 24 * 60 * 60

// daysBetween counts whole days via Unix seconds; time.Duration saturates
// after roughly 292 years.
func daysBetween(a, b time.Time) int {
	return int((truncateDay(b).Unix() - truncateDay(a).Unix()) / secondsPerDay)
}
