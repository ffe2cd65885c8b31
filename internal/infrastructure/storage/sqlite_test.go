package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
)

func openTestDB(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "puzzles.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLite_RoundTrip(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()

	want := testPuzzle(t, "p1")
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSQLite_Upsert(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()

	p := testPuzzle(t, "p1")
	require.NoError(t, s.Save(ctx, p))

	p.Name = "renamed"
	p.Board.Values[0][2] = 4
	p.Board.Fixed[0][2] = false
	require.NoError(t, s.Save(ctx, p))

	got, err := s.Load(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
	assert.Equal(t, uint8(4), got.Board.Values[0][2])
	assert.False(t, got.Board.Fixed[0][2])

	metas, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, metas, 1)
}

func TestSQLite_SaveRequiresID(t *testing.T) {
	s := openTestDB(t)
	assert.Error(t, s.Save(context.Background(), &domain.Puzzle{}))
}

func TestSQLite_LoadMissing(t *testing.T) {
	s := openTestDB(t)
	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSQLite_ListNewestFirst(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()

	older := testPuzzle(t, "older")
	older.CreatedAt = 100
	newer := testPuzzle(t, "newer")
	newer.CreatedAt = 200
	require.NoError(t, s.Save(ctx, older))
	require.NoError(t, s.Save(ctx, newer))

	metas, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 2)
	assert.Equal(t, "newer", metas[0].ID)
	assert.Equal(t, "older", metas[1].ID)
}

func TestSQLite_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzles.db")
	ctx := context.Background()

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, testPuzzle(t, "p1")))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Load(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)
}

func TestGridCodec(t *testing.T) {
	b := testPuzzle(t, "x").Board

	grid := encodeGrid(&b)
	fixed := encodeFixed(&b)
	require.Len(t, grid, 81)
	require.Len(t, fixed, 81)

	got, err := decodeGrid(grid, fixed)
	require.NoError(t, err)
	assert.Equal(t, &b, got)

	_, err = decodeGrid("123", fixed)
	assert.Error(t, err)
}
