package store

import (
	"connectfour/game"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) (*SQLiteStore, context.Context) {
	t.Helper()

	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "qtable.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	ctx := context.Background()
	require.NoError(t, s.Init(ctx))
	return s, ctx
}

func TestSQLiteStoreRoundtrip(t *testing.T) {
	s, ctx := newTestSQLiteStore(t)

	values := map[game.StateID]float64{
		"X--O": 0.5,
		"----": -1,
	}
	require.NoError(t, s.Save(ctx, values))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestSQLiteStoreSaveReplaces(t *testing.T) {
	s, ctx := newTestSQLiteStore(t)

	require.NoError(t, s.Save(ctx, map[game.StateID]float64{"X---": 1, "O---": 2}))
	require.NoError(t, s.Save(ctx, map[game.StateID]float64{"--X-": 3}))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, map[game.StateID]float64{"--X-": 3}, got)
}

func TestSQLiteStoreLoadEmpty(t *testing.T) {
	s, ctx := newTestSQLiteStore(t)

	_, err := s.Load(ctx)

	require.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStoreInitTwice(t *testing.T) {
	s, ctx := newTestSQLiteStore(t)

	require.NoError(t, s.Init(ctx))
}
