package history

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenAt(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndList(t *testing.T) {
	db := openTestDB(t)

	id, err := Record(db, Entry{
		Kind:      "trim",
		Inputs:    "in.mp4",
		Output:    "out.mp4",
		SizeBytes: 1024,
		Duration:  10.5,
		Elapsed:   2.25,
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	entries, err := List(db, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "trim", e.Kind)
	assert.Equal(t, "in.mp4", e.Inputs)
	assert.Equal(t, "out.mp4", e.Output)
	assert.Equal(t, int64(1024), e.SizeBytes)
	assert.InDelta(t, 10.5, e.Duration, 1e-9)
	assert.InDelta(t, 2.25, e.Elapsed, 1e-9)
	assert.False(t, e.CreatedAt.IsZero())
}

func TestListNewestFirstWithLimit(t *testing.T) {
	db := openTestDB(t)

	for _, kind := range []string{"merge", "trim", "remove"} {
		_, err := Record(db, Entry{Kind: kind, Inputs: "a", Output: "b"})
		require.NoError(t, err)
	}

	entries, err := List(db, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "remove", entries[0].Kind)
	assert.Equal(t, "trim", entries[1].Kind)
}

func TestListEmpty(t *testing.T) {
	db := openTestDB(t)

	entries, err := List(db, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMigrateIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	db, err := OpenAt(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening runs the migration again against the same file.
	db, err = OpenAt(path)
	require.NoError(t, err)
	defer db.Close()

	_, err = Record(db, Entry{Kind: "merge", Inputs: "a; b", Output: "c"})
	assert.NoError(t, err)
}
