package engine

import (
	"connectfour/game"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
)

// Match wires one mover per mark to a shared game.
type Match struct {
	game   *game.Game
	movers map[game.Mark]Mover
	out    io.Writer
}

func NewMatch(g *game.Game, x, o Mover, out io.Writer) *Match {
	if g == nil {
		panic("Must specify a game to play")
	}
	if x == nil || o == nil {
		panic("Must specify movers for both players")
	}
	return &Match{
		game: g,
		movers: map[game.Mark]Mover{
			game.PlayerX: x,
			game.PlayerO: o,
		},
		out: out,
	}
}

// Run plays moves until the game ends, rendering the board after each one,
// then resets the game and returns the final status.
func (m *Match) Run() (game.Status, error) {
	log.Info().Msgf("%s is starting", m.game.Player())

	for {
		mover := m.movers[m.game.Player()]
		action, err := mover.NextMove(m.game)
		if err != nil {
			return game.InProgress, fmt.Errorf("failed to get a move: %w", err)
		}

		status, err := m.game.Play(action)
		if err != nil {
			return game.InProgress, fmt.Errorf("failed to play move %d: %w", action, err)
		}
		fmt.Fprint(m.out, game.Render(m.game))

		if status.Terminal() {
			if winner, ok := status.Winner(); ok {
				fmt.Fprintf(m.out, "Winner: %s\n", winner)
			} else {
				fmt.Fprintln(m.out, "Draw.")
			}
			m.game.Reset()
			return status, nil
		}
	}
}
