package engine

import (
	"bytes"
	"connectfour/agent"
	"connectfour/game"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type scriptMover struct {
	moves []int
	next  int
}

func (m *scriptMover) NextMove(g *game.Game) (int, error) {
	if m.next >= len(m.moves) {
		return 0, errors.New("out of scripted moves")
	}
	action := m.moves[m.next]
	m.next++
	return action, nil
}

func TestMatchRun(t *testing.T) {
	t.Run("plays to a win", func(t *testing.T) {
		g := game.NewGame(4, 4)
		x := &scriptMover{moves: []int{0, 1, 2, 3}}
		o := &scriptMover{moves: []int{4, 5, 6}}
		var out bytes.Buffer
		m := NewMatch(g, x, o, &out)

		status, err := m.Run()

		require.NoError(t, err)
		require.Equal(t, game.WinX, status)
		require.Contains(t, out.String(), "Winner: X")
		require.Equal(t, game.StateID("----------------"), g.State(), "Game should reset after the match")
	})

	t.Run("plays to a draw", func(t *testing.T) {
		g := game.NewGame(1, 4)
		x := &scriptMover{moves: []int{0, 2}}
		o := &scriptMover{moves: []int{1, 3}}
		var out bytes.Buffer
		m := NewMatch(g, x, o, &out)

		status, err := m.Run()

		require.NoError(t, err)
		require.Equal(t, game.Draw, status)
		require.Contains(t, out.String(), "Draw.")
	})

	t.Run("renders the board after every move", func(t *testing.T) {
		g := game.NewGame(1, 4)
		x := &scriptMover{moves: []int{0, 2}}
		o := &scriptMover{moves: []int{1, 3}}
		var out bytes.Buffer
		m := NewMatch(g, x, o, &out)

		_, err := m.Run()

		require.NoError(t, err)
		require.Equal(t, 4, strings.Count(out.String(), "==============="))
	})

	t.Run("stops when a mover fails", func(t *testing.T) {
		g := game.NewGame(1, 4)
		x := &scriptMover{}
		o := &scriptMover{moves: []int{1}}
		m := NewMatch(g, x, o, io.Discard)

		_, err := m.Run()

		require.Error(t, err)
	})

	t.Run("surfaces an illegal scripted move", func(t *testing.T) {
		g := game.NewGame(1, 4)
		x := &scriptMover{moves: []int{0}}
		o := &scriptMover{moves: []int{0}}
		m := NewMatch(g, x, o, io.Discard)

		_, err := m.Run()

		require.ErrorIs(t, err, game.ErrInvalidMove)
	})
}

func TestNewMatchPanics(t *testing.T) {
	mover := &scriptMover{}

	require.Panics(t, func() { NewMatch(nil, mover, mover, io.Discard) })
	require.Panics(t, func() { NewMatch(game.NewGame(1, 4), nil, mover, io.Discard) })
	require.Panics(t, func() { NewMatch(game.NewGame(1, 4), mover, nil, io.Discard) })
}

func TestHumanMover(t *testing.T) {
	t.Run("reprompts until the move is legal", func(t *testing.T) {
		g := game.NewGame(1, 4)
		var out bytes.Buffer
		m := NewHumanMover(strings.NewReader("banana\n99\n2\n"), &out)

		action, err := m.NextMove(g)

		require.NoError(t, err)
		require.Equal(t, 2, action)
		require.Equal(t, 2, strings.Count(out.String(), "Invalid move."))
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		g := game.NewGame(1, 4)
		m := NewHumanMover(strings.NewReader("  3 \n"), io.Discard)

		action, err := m.NextMove(g)

		require.NoError(t, err)
		require.Equal(t, 3, action)
	})

	t.Run("reports exhausted input", func(t *testing.T) {
		g := game.NewGame(1, 4)
		m := NewHumanMover(strings.NewReader(""), io.Discard)

		_, err := m.NextMove(g)

		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}

func TestAgentMover(t *testing.T) {
	t.Run("plays a legal greedy move", func(t *testing.T) {
		g := game.NewGame(1, 4)
		m := NewAgentMover(agent.New(g, agent.WithSeed(3)))

		action, err := m.NextMove(g)

		require.NoError(t, err)
		require.True(t, g.IsValidMove(action))
	})

	t.Run("fails on a full board", func(t *testing.T) {
		g := game.NewGame(1, 4)
		for _, cell := range []int{0, 1, 2, 3} {
			_, err := g.Play(cell)
			require.NoError(t, err)
		}
		m := NewAgentMover(agent.New(g))

		_, err := m.NextMove(g)

		require.Error(t, err)
	})

	t.Run("panics without an agent", func(t *testing.T) {
		require.Panics(t, func() { NewAgentMover(nil) })
	})
}
