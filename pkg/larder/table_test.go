package larder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/larder/pkg/types"
)

func carTable(t *testing.T) *Table {
	t.Helper()
	db := newTestDB(t)
	cars, err := db.Table(carSchema)
	require.NoError(t, err)
	return cars
}

func makes(t *testing.T, cur *Cursor) []string {
	t.Helper()
	var out []string
	for cur.Next() {
		out = append(out, cur.Record().Text("make"))
	}
	require.NoError(t, cur.Err())
	require.NoError(t, cur.Close())
	return out
}

// TestCarLifecycle walks a small table through create, lookup, filter, and
// delete.
func TestCarLifecycle(t *testing.T) {
	cars := carTable(t)

	opel, err := cars.Create(map[string]any{"make": "Opel"})
	require.NoError(t, err)
	_, err = cars.Create(map[string]any{"make": "BMW"})
	require.NoError(t, err)

	key, ok := opel.Key()
	require.True(t, ok)
	assert.Equal(t, int64(1), key)

	got, err := cars.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Opel", got.Text("make"))

	cur, err := cars.Filter(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Opel", "BMW"}, makes(t, cur), "insertion order")

	first, err := cars.Get(1)
	require.NoError(t, err)
	require.NoError(t, first.Delete())

	cur, err = cars.Filter(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"BMW"}, makes(t, cur))
}

func TestGetNotFound(t *testing.T) {
	cars := carTable(t)

	_, err := cars.Get(99)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestGetByCardinality(t *testing.T) {
	cars := carTable(t)

	_, err := cars.Create(map[string]any{"make": "Opel"})
	require.NoError(t, err)
	_, err = cars.Create(map[string]any{"make": "Opel"})
	require.NoError(t, err)
	_, err = cars.Create(map[string]any{"make": "BMW"})
	require.NoError(t, err)

	rec, err := cars.GetBy(map[string]any{"make": "BMW"})
	require.NoError(t, err)
	assert.Equal(t, "BMW", rec.Text("make"))

	_, err = cars.GetBy(map[string]any{"make": "Opel"})
	assert.ErrorIs(t, err, types.ErrMultipleResults)

	_, err = cars.GetBy(map[string]any{"make": "Saab"})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestFilterEquality(t *testing.T) {
	cars := carTable(t)

	for _, make := range []string{"Opel", "BMW", "Opel"} {
		_, err := cars.Create(map[string]any{"make": make})
		require.NoError(t, err)
	}

	cur, err := cars.Filter(map[string]any{"make": "Opel"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Opel", "Opel"}, makes(t, cur))

	cur, err = cars.Filter(map[string]any{"make": "Saab"})
	require.NoError(t, err)
	assert.Empty(t, makes(t, cur))
}

func TestFilterUnknownFieldBeforeBackend(t *testing.T) {
	cars := carTable(t)

	_, err := cars.Filter(map[string]any{"color": "red"})
	assert.ErrorIs(t, err, types.ErrUnknownField)
}

func TestFilterSorted(t *testing.T) {
	cars := carTable(t)

	for _, make := range []string{"Opel", "BMW", "Saab"} {
		_, err := cars.Create(map[string]any{"make": make})
		require.NoError(t, err)
	}

	cur, err := cars.FilterSorted(nil, "make", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"BMW", "Opel", "Saab"}, makes(t, cur))

	cur, err = cars.FilterSorted(nil, "make", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Saab", "Opel", "BMW"}, makes(t, cur))
}

func TestAll(t *testing.T) {
	cars := carTable(t)

	_, err := cars.Create(map[string]any{"make": "Opel"})
	require.NoError(t, err)
	_, err = cars.Create(map[string]any{"make": "BMW"})
	require.NoError(t, err)

	recs, err := cars.All()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Opel", recs[0].Text("make"))
	assert.Equal(t, "BMW", recs[1].Text("make"))
}

func TestBulkDelete(t *testing.T) {
	cars := carTable(t)

	for _, make := range []string{"Opel", "BMW", "Opel"} {
		_, err := cars.Create(map[string]any{"make": make})
		require.NoError(t, err)
	}

	n, err := cars.Delete(map[string]any{"make": "Opel"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	recs, err := cars.All()
	require.NoError(t, err)
	assert.Len(t, recs, 1)

	// Empty criteria empty the table.
	n, err = cars.Delete(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	recs, err = cars.All()
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestDeleteUnknownField(t *testing.T) {
	cars := carTable(t)

	_, err := cars.Delete(map[string]any{"color": "red"})
	assert.ErrorIs(t, err, types.ErrUnknownField)
}

func TestNewRejectsBadValues(t *testing.T) {
	cars := carTable(t)

	_, err := cars.New(map[string]any{"color": "red"})
	assert.ErrorIs(t, err, types.ErrUnknownField)

	_, err = cars.New(map[string]any{"make": 42})
	assert.ErrorIs(t, err, types.ErrTypeMismatch)
}

func TestQueriesReturnIndependentCopies(t *testing.T) {
	cars := carTable(t)

	_, err := cars.Create(map[string]any{"make": "Opel"})
	require.NoError(t, err)

	a, err := cars.Get(1)
	require.NoError(t, err)
	b, err := cars.Get(1)
	require.NoError(t, err)
	require.NotSame(t, a, b)

	require.NoError(t, a.Set("make", "BMW"))
	assert.Equal(t, "Opel", b.Text("make"), "records are copies, not identity-mapped")
}
