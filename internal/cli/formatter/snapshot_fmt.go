package formatter

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/pla2html/internal/domain"
)

// FormatHistory renders stored snapshots, newest first.
func FormatHistory(snaps []*domain.Snapshot, now time.Time) string {
	if len(snaps) == 0 {
		return Dim("No snapshots. Run 'pla2html import FILE' to store one.") + "\n"
	}

	rows := make([][]string, 0, len(snaps))
	for _, s := range snaps {
		rows = append(rows, []string{
			StyleBold.Render(s.DisplayID()),
			s.SourceName(),
			strconv.Itoa(s.EntryCount),
			s.ImportedAt.Local().Format("2006-01-02 15:04"),
			Dim(RelativeDateFrom(s.ImportedAt, now)),
		})
	}
	t := Table{
		Headers:    []string{"ID", "SOURCE", "ENTRIES", "IMPORTED", ""},
		Rows:       rows,
		RightAlign: map[int]bool{2: true},
	}
	return Header("History") + "\n" + t.Render()
}

// FormatImported confirms a stored snapshot.
func FormatImported(s *domain.Snapshot) string {
	return fmt.Sprintf("%s %s as snapshot %s (%s)\n",
		StyleGreen.Render("Imported"),
		s.SourceName(),
		StyleBold.Render(s.DisplayID()),
		Plural(s.EntryCount, "entry", "entries"))
}

// FormatSnapshotHeader describes a snapshot above its entry listing.
func FormatSnapshotHeader(s *domain.Snapshot) string {
	return fmt.Sprintf("%s %s  %s  %s\n",
		Dim("snapshot"),
		StyleBold.Render(s.DisplayID()),
		s.SourcePath,
		Dim(s.ImportedAt.Local().Format("2006-01-02 15:04")))
}
