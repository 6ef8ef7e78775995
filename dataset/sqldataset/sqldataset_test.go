package sqldataset

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	crosserrors "github.com/YuminosukeSato/crossval/pkg/errors"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE samples (x REAL, y REAL, region TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO samples (x, y, region) VALUES
		(0.1, 1.0, 'north'),
		(0.2, 1.2, 'north'),
		(0.3, 1.1, 'south')`)
	require.NoError(t, err)
	return db
}

func TestSource_Load(t *testing.T) {
	src, err := NewSource(testDB(t), "samples")
	require.NoError(t, err)

	ds, err := src.Load(context.Background(), []string{"x"}, "y", "region")
	require.NoError(t, err)

	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, 1, ds.NumFeatures())
	assert.InDelta(t, 0.2, ds.Features().At(1, 0), 1e-12)
	assert.InDelta(t, 1.1, ds.TargetVec().AtVec(2), 1e-12)
	assert.Equal(t, []string{"north", "north", "south"}, ds.Strata())
}

func TestSource_LoadWithoutStratum(t *testing.T) {
	src, err := NewSource(testDB(t), "samples")
	require.NoError(t, err)

	ds, err := src.Load(context.Background(), []string{"x"}, "y", "")
	require.NoError(t, err)
	assert.Nil(t, ds.Strata())
}

func TestSource_EmptyTable(t *testing.T) {
	db := testDB(t)
	_, err := db.Exec(`DELETE FROM samples`)
	require.NoError(t, err)

	src, err := NewSource(db, "samples")
	require.NoError(t, err)

	_, err = src.Load(context.Background(), []string{"x"}, "y", "")
	assert.True(t, crosserrors.Is(err, crosserrors.ErrEmptyData))
}

func TestSource_InvalidIdentifiers(t *testing.T) {
	var paramErr *crosserrors.ParameterError

	_, err := NewSource(testDB(t), `bad"name`)
	require.ErrorAs(t, err, &paramErr)

	src, err := NewSource(testDB(t), "samples")
	require.NoError(t, err)

	_, err = src.Load(context.Background(), nil, "y", "")
	require.ErrorAs(t, err, &paramErr)

	_, err = src.Load(context.Background(), []string{"x"}, "", "")
	require.ErrorAs(t, err, &paramErr)
}
