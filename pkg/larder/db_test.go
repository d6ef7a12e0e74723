package larder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/larder/pkg/sqlite"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// newTestDB opens a DB over a private in-memory database.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(sqlite.Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

var carSchema = types.Schema{
	Name: "Car",
	Fields: []types.Field{
		{Name: "make", Type: types.Text},
	},
}

func TestTableIsLazyAndIdempotent(t *testing.T) {
	db := newTestDB(t)

	a, err := db.Table(carSchema)
	require.NoError(t, err)
	b, err := db.Table(carSchema)
	require.NoError(t, err)
	assert.Same(t, a, b, "same name yields the cached handle")
}

func TestTableConflictingRedeclaration(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Table(carSchema)
	require.NoError(t, err)

	changed := carSchema
	changed.Fields = []types.Field{
		{Name: "make", Type: types.Text},
		{Name: "year", Type: types.Integer},
	}
	_, err = db.Table(changed)
	assert.ErrorIs(t, err, types.ErrInvalidSchema)
}

func TestTableRejectsInvalidSchema(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Table(types.Schema{Name: "Bad", Fields: []types.Field{
		{Name: "a", Type: types.Integer, Key: true},
		{Name: "b", Type: types.Integer, Key: true},
	}})
	assert.ErrorIs(t, err, types.ErrInvalidSchema)
}

func TestCloseIdempotentAndFinal(t *testing.T) {
	db := newTestDB(t)

	cars, err := db.Table(carSchema)
	require.NoError(t, err)

	require.NoError(t, db.Close())
	require.NoError(t, db.Close())

	_, err = db.Table(carSchema)
	assert.ErrorIs(t, err, types.ErrClosed)

	_, err = cars.Create(map[string]any{"make": "Opel"})
	assert.ErrorIs(t, err, types.ErrClosed)

	_, err = cars.Filter(nil)
	assert.ErrorIs(t, err, types.ErrClosed)
}

func TestNewWrapsExistingBackend(t *testing.T) {
	backend, err := sqlite.Open(sqlite.Config{Path: ":memory:"})
	require.NoError(t, err)

	db := New(backend)
	t.Cleanup(func() { db.Close() })

	cars, err := db.Table(carSchema)
	require.NoError(t, err)
	_, err = cars.Create(map[string]any{"make": "Opel"})
	require.NoError(t, err)
}
