package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/pla2html/internal/pla"
)

// EntryLookup resolves an entry id; it matches (*pla.Parser).GetEntryByID.
type EntryLookup func(id uint32) (pla.Entry, bool)

// FormatEntryList renders all entries as a table.
func FormatEntryList(entries []pla.Entry) string {
	if len(entries) == 0 {
		return Dim("No entries.") + "\n"
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		start := Dim("—")
		if s, ok := e.Start(); ok {
			start = s.Date.Format(dateLayout)
		}
		days := Dim("—")
		if d, ok := e.Duration(); ok {
			days = strconv.FormatUint(uint64(d.Length), 10)
		}
		rows = append(rows, []string{
			StyleBold.Render(strconv.FormatUint(uint64(e.ID), 10)),
			Truncate(e.Description, 48),
			start,
			days,
			strconv.Itoa(len(e.Children)),
		})
	}

	t := Table{
		Headers:    []string{"ID", "DESCRIPTION", "START", "DAYS", "SUB"},
		Rows:       rows,
		RightAlign: map[int]bool{0: true, 3: true, 4: true},
	}
	return Header("Entries") + "\n" + t.Render() + Dim(Plural(len(entries), "entry", "entries")) + "\n"
}

// FormatSubRecord renders one sub-record the way it reads in a PLA file.
func FormatSubRecord(rec pla.SubRecord) string {
	switch r := rec.(type) {
	case pla.Start:
		return fmt.Sprintf("%s %s %02d:00", CommandBadge(r.Command()), r.Date.Format(dateLayout), r.Hour)
	case pla.Duration:
		return fmt.Sprintf("%s %s", CommandBadge(r.Command()), Plural(int(r.Length), "day", "days"))
	case pla.Dependency:
		return fmt.Sprintf("%s %d", CommandBadge(r.Command()), r.DependencyID)
	case pla.Child:
		return fmt.Sprintf("%s %d", CommandBadge(r.Command()), r.ChildID)
	case pla.Resource:
		return fmt.Sprintf("%s %s", CommandBadge(r.Command()), r.Name)
	}
	return ""
}

// FormatEntryDetail renders an entry and its sub-records as a tree inside a
// box. Child and dependency references are resolved through lookup; child
// entries are expanded once, so a group shows its members' schedules.
func FormatEntryDetail(e pla.Entry, lookup EntryLookup) string {
	var items []TreeItem
	visited := map[uint32]bool{e.ID: true}
	appendSubRecords(&items, e, 1, lookup, visited)

	title := fmt.Sprintf("[%d] %s", e.ID, e.Description)
	if len(items) == 0 {
		return RenderBox(title, Dim("No sub-records."))
	}
	return RenderBox(title, strings.TrimRight(RenderTree(items), "\n"))
}

func appendSubRecords(items *[]TreeItem, e pla.Entry, level int, lookup EntryLookup, visited map[uint32]bool) {
	for i, rec := range e.Children {
		item := TreeItem{
			Title:  FormatSubRecord(rec),
			Level:  level,
			IsLast: i == len(e.Children)-1,
		}

		var ref uint32
		var expand bool
		switch r := rec.(type) {
		case pla.Child:
			ref, expand = r.ChildID, true
		case pla.Dependency:
			ref = r.DependencyID
		default:
			*items = append(*items, item)
			continue
		}

		target, ok := lookup(ref)
		if !ok {
			item.Missing = true
			*items = append(*items, item)
			continue
		}
		item.Badge = Truncate(target.Description, 32)
		*items = append(*items, item)

		if expand && !visited[ref] {
			visited[ref] = true
			appendSubRecords(items, target, level+1, lookup, visited)
		}
	}
}
