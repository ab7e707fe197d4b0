package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE cache (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteAdapter_GetMissingKey(t *testing.T) {
	a := NewSQLiteAdapter(setupDB(t))

	v, err := a.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSQLiteAdapter_SetGetRoundTrip(t *testing.T) {
	a := NewSQLiteAdapter(setupDB(t))
	ctx := context.Background()

	require.NoError(t, a.Set(ctx, "k", []byte(`["a"]`)))

	v, err := a.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`["a"]`), v)

	// second Set replaces the whole blob
	require.NoError(t, a.Set(ctx, "k", []byte(`["b","c"]`)))
	v, err = a.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`["b","c"]`), v)
}

func TestSQLiteAdapter_Remove(t *testing.T) {
	a := NewSQLiteAdapter(setupDB(t))
	ctx := context.Background()

	require.NoError(t, a.Set(ctx, "k", []byte(`[]`)))
	require.NoError(t, a.Remove(ctx, "k"))

	v, err := a.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, v)

	// removing a missing key is a no-op
	require.NoError(t, a.Remove(ctx, "k"))
}
