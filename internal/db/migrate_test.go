package db_test

import (
	"testing"

	"github.com/alexanderramin/pla2html/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesTables(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	for _, table := range []string{"snapshots", "entries", "sub_records"} {
		var name string
		err := database.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.Migrate(database))
	require.NoError(t, db.Migrate(database))
}

func TestMigrate_RejectsUnknownSubRecordKind(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	_, err = database.Exec(`INSERT INTO snapshots (id, source_path, imported_at) VALUES ('s1', 'x.pla', '2021-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO entries (snapshot_id, position, entry_id) VALUES ('s1', 0, 1)`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO sub_records (snapshot_id, entry_position, position, kind, parent_id) VALUES ('s1', 0, 0, 'color', 1)`)
	assert.Error(t, err)
}
