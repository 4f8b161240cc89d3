package repository

import (
	"database/sql"
	"time"
)

const dateLayout = "2006-01-02"

// parseNullableTime parses a sql.NullString into a time.Time using the given layout.
func parseNullableTime(s sql.NullString, layout string) (time.Time, bool) {
	if !s.Valid || s.String == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// nullableUint converts an optional uint32 to a value suitable for SQLite storage.
func nullableUint(v uint32, ok bool) interface{} {
	if !ok {
		return nil
	}
	return int64(v)
}

// nullableString converts an optional string to a value suitable for SQLite storage.
func nullableString(v string, ok bool) interface{} {
	if !ok {
		return nil
	}
	return v
}
