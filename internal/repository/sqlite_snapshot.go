package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/pla2html/internal/db"
	"github.com/alexanderramin/pla2html/internal/domain"
	"github.com/alexanderramin/pla2html/internal/pla"
)

// SQLiteSnapshotRepo implements SnapshotRepo using a SQLite database.
type SQLiteSnapshotRepo struct {
	db db.DBTX
}

// NewSQLiteSnapshotRepo creates a new SQLiteSnapshotRepo. conn may be a
// *sql.DB or a *sql.Tx.
func NewSQLiteSnapshotRepo(conn db.DBTX) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{db: conn}
}

// Create stores the snapshot row followed by its entries and their
// sub-records. Run it inside a UnitOfWork to make the write atomic.
func (r *SQLiteSnapshotRepo) Create(ctx context.Context, s *domain.Snapshot, entries []pla.Entry) error {
	if err := s.Validate(); err != nil {
		return err
	}
	query := `INSERT INTO snapshots (id, source_path, entry_count, imported_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, s.ID, s.SourcePath, len(entries), s.ImportedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}
	s.EntryCount = len(entries)

	for pos, e := range entries {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO entries (snapshot_id, position, entry_id, description) VALUES (?, ?, ?, ?)`,
			s.ID, pos, int64(e.ID), e.Description)
		if err != nil {
			return fmt.Errorf("inserting entry %d: %w", e.ID, err)
		}
		for subPos, rec := range e.Children {
			if err := r.insertSubRecord(ctx, s.ID, pos, subPos, rec); err != nil {
				return fmt.Errorf("inserting sub-record of entry %d: %w", e.ID, err)
			}
		}
	}
	return nil
}

func (r *SQLiteSnapshotRepo) insertSubRecord(ctx context.Context, snapshotID string, entryPos, pos int, rec pla.SubRecord) error {
	var (
		startDate, name string
		hour, length    uint32
		refID           uint32
		hasDate         bool
		hasHour         bool
		hasLength       bool
		hasRef          bool
		hasName         bool
	)
	switch v := rec.(type) {
	case pla.Start:
		startDate, hasDate = v.Date.Format(dateLayout), true
		hour, hasHour = v.Hour, true
	case pla.Duration:
		length, hasLength = v.Length, true
	case pla.Dependency:
		refID, hasRef = v.DependencyID, true
	case pla.Child:
		refID, hasRef = v.ChildID, true
	case pla.Resource:
		name, hasName = v.Name, true
	}

	query := `INSERT INTO sub_records
		(snapshot_id, entry_position, position, kind, parent_id, start_date, hour, length, ref_id, name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		snapshotID, entryPos, pos,
		rec.Command().String(),
		int64(rec.ParentID()),
		nullableString(startDate, hasDate),
		nullableUint(hour, hasHour),
		nullableUint(length, hasLength),
		nullableUint(refID, hasRef),
		nullableString(name, hasName),
	)
	return err
}

func (r *SQLiteSnapshotRepo) GetByID(ctx context.Context, id string) (*domain.Snapshot, error) {
	query := `SELECT id, source_path, entry_count, imported_at FROM snapshots WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	s, err := scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("snapshot %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLiteSnapshotRepo) FindByPrefix(ctx context.Context, prefix string) ([]*domain.Snapshot, error) {
	query := `SELECT id, source_path, entry_count, imported_at FROM snapshots
		WHERE substr(id, 1, ?) = ? ORDER BY imported_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query, len(prefix), prefix)
	if err != nil {
		return nil, fmt.Errorf("finding snapshots by prefix: %w", err)
	}
	return collectSnapshots(rows)
}

func (r *SQLiteSnapshotRepo) List(ctx context.Context) ([]*domain.Snapshot, error) {
	query := `SELECT id, source_path, entry_count, imported_at FROM snapshots ORDER BY imported_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	return collectSnapshots(rows)
}

func collectSnapshots(rows *sql.Rows) ([]*domain.Snapshot, error) {
	defer rows.Close()

	var out []*domain.Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshots: %w", err)
	}
	return out, nil
}

// LoadEntries rebuilds the entries of a snapshot in their original order.
// Entries stored without sub-records come back with nil Children.
func (r *SQLiteSnapshotRepo) LoadEntries(ctx context.Context, snapshotID string) ([]pla.Entry, error) {
	if _, err := r.GetByID(ctx, snapshotID); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT entry_id, description FROM entries WHERE snapshot_id = ? ORDER BY position`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	var entries []pla.Entry
	for rows.Next() {
		var id int64
		var e pla.Entry
		if err := rows.Scan(&id, &e.Description); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		e.ID = uint32(id)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating entries: %w", err)
	}
	rows.Close()

	subRows, err := r.db.QueryContext(ctx,
		`SELECT entry_position, kind, parent_id, start_date, hour, length, ref_id, name
		FROM sub_records WHERE snapshot_id = ? ORDER BY entry_position, position`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("listing sub-records: %w", err)
	}
	defer subRows.Close()

	for subRows.Next() {
		pos, rec, err := scanSubRecord(subRows)
		if err != nil {
			return nil, err
		}
		if pos < 0 || pos >= len(entries) {
			return nil, fmt.Errorf("sub-record references missing entry position %d", pos)
		}
		entries[pos].Children = append(entries[pos].Children, rec)
	}
	if err := subRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sub-records: %w", err)
	}
	return entries, nil
}

func (r *SQLiteSnapshotRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("snapshot %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*domain.Snapshot, error) {
	var s domain.Snapshot
	var importedAt string
	if err := row.Scan(&s.ID, &s.SourcePath, &s.EntryCount, &importedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning snapshot: %w", err)
	}
	t, err := time.Parse(time.RFC3339, importedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing imported_at: %w", err)
	}
	s.ImportedAt = t
	return &s, nil
}

func scanSubRecord(rows *sql.Rows) (int, pla.SubRecord, error) {
	var (
		pos                 int
		kind                string
		parent              int64
		startDate, name     sql.NullString
		hour, length, refID sql.NullInt64
	)
	if err := rows.Scan(&pos, &kind, &parent, &startDate, &hour, &length, &refID, &name); err != nil {
		return 0, nil, fmt.Errorf("scanning sub-record: %w", err)
	}
	p := uint32(parent)

	switch pla.ParseCommand(kind) {
	case pla.CommandStart:
		d, ok := parseNullableTime(startDate, dateLayout)
		if !ok {
			return 0, nil, fmt.Errorf("start sub-record of entry %d has no date", p)
		}
		return pos, pla.Start{Parent: p, Date: d, Hour: uint32(hour.Int64)}, nil
	case pla.CommandDuration:
		return pos, pla.Duration{Parent: p, Length: uint32(length.Int64)}, nil
	case pla.CommandDependency:
		return pos, pla.Dependency{Parent: p, DependencyID: uint32(refID.Int64)}, nil
	case pla.CommandChild:
		return pos, pla.Child{Parent: p, ChildID: uint32(refID.Int64)}, nil
	case pla.CommandResource:
		return pos, pla.Resource{Parent: p, Name: name.String}, nil
	}
	return 0, nil, fmt.Errorf("unknown sub-record kind %q", kind)
}
