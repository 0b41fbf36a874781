package agent

import (
	"connectfour/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrainingMoveExploit(t *testing.T) {
	t.Run("own turn picks the highest-valued successor", func(t *testing.T) {
		g := game.NewGame(1, 5)
		a := New(g, WithEpsilon(0), WithSeed(1))
		states, actions := g.OpenMoves()
		for i, v := range []float64{0.1, -0.4, 0.9, 0.2, 0.0} {
			a.values[states[i]] = v
		}

		got := a.trainingMove(states, actions)

		require.Equal(t, actions[2], got, "Agent on its own turn should maximize")
	})

	t.Run("opponent turn picks the lowest-valued successor", func(t *testing.T) {
		g := game.NewGame(1, 5)
		_, err := g.Play(0) // X moved, O to move against the X agent
		require.NoError(t, err)
		a := New(g, WithEpsilon(0), WithSeed(1))
		states, actions := g.OpenMoves()
		for i, v := range []float64{0.8, -0.2, 0.5, 0.3} {
			a.values[states[i]] = v
		}

		got := a.trainingMove(states, actions)

		require.Equal(t, actions[1], got, "Agent on the opponent's turn should minimize")
	})
}

func TestTrainingMoveExplore(t *testing.T) {
	g := game.NewGame(2, 2)
	a := New(g, WithEpsilon(1), WithSeed(7))
	states, actions := g.OpenMoves()
	a.values[states[3]] = 1.0 // the best successor must not matter when exploring

	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		action := a.trainingMove(states, actions)
		require.Contains(t, actions, action)
		seen[action] = true
	}

	require.Greater(t, len(seen), 1, "Exploration should not settle on one action")
}

func TestGreedyTieBreakVaries(t *testing.T) {
	g := game.NewGame(2, 2)
	a := New(g, WithEpsilon(0), WithSeed(7))

	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		action, ok := a.BestMove()
		require.True(t, ok)
		seen[action] = true
	}

	require.Greater(t, len(seen), 1, "Equally-valued successors should be drawn at random, not first found")
}

func TestBestMoveFullBoard(t *testing.T) {
	g := game.NewGame(1, 4)
	for _, cell := range []int{0, 1, 2, 3} {
		_, err := g.Play(cell)
		require.NoError(t, err)
	}
	a := New(g)

	_, ok := a.BestMove()

	require.False(t, ok)
}

func TestArgMaxTieBreakCoversAllCandidates(t *testing.T) {
	a := New(game.NewGame(1, 3), WithSeed(11))
	values := []float64{0.5, 0.5, 0.5}

	seen := map[int]bool{}
	for i := 0; i < 300; i++ {
		seen[a.argMax(values)] = true
	}

	require.Len(t, seen, 3, "Every tied index should be reachable")
}

func TestArgMinPicksOnlyTiedMinima(t *testing.T) {
	a := New(game.NewGame(1, 3), WithSeed(3))
	values := []float64{0.2, -0.1, 0.4, -0.1}

	for i := 0; i < 100; i++ {
		require.Contains(t, []int{1, 3}, a.argMin(values))
	}
}
