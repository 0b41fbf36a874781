package game

import (
	"errors"
	"fmt"
)

// Mark is the content of a single board cell.
type Mark byte

const (
	Empty   Mark = '-'
	PlayerX Mark = 'X'
	PlayerO Mark = 'O'
)

// Opponent returns the other player's mark. Empty has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	}
	return m
}

func (m Mark) String() string {
	return string(rune(m))
}

// StateID is the canonical encoding of full board contents: the cell marks
// concatenated in index order. Two boards with identical contents always
// share the same identifier.
type StateID string

var ErrInvalidMove = errors.New("invalid move")

// Game is a rows x cols four-in-a-row board and the mark that moves next.
// PlayerX always moves first.
type Game struct {
	rows  int
	cols  int
	cells []Mark
	turn  Mark
}

// NewGame returns an empty rows x cols game. The classic board is 6 rows by
// 7 columns; common variations include 8x7, 9x7, 10x7 and 8x8.
func NewGame(rows, cols int) *Game {
	if rows < 1 || cols < 1 {
		panic("board dimensions must be positive")
	}
	g := &Game{rows: rows, cols: cols}
	g.Reset()
	return g
}

// Reset clears the board and hands the first move back to PlayerX.
func (g *Game) Reset() {
	g.cells = make([]Mark, g.rows*g.cols)
	for i := range g.cells {
		g.cells[i] = Empty
	}
	g.turn = PlayerX
}

func (g *Game) Rows() int { return g.rows }

func (g *Game) Cols() int { return g.cols }

// Player returns the mark that moves next.
func (g *Game) Player() Mark { return g.turn }

// Cells returns a copy of the flat board contents in index order.
func (g *Game) Cells() []Mark {
	cells := make([]Mark, len(g.cells))
	copy(cells, g.cells)
	return cells
}

// State returns the identifier of the current position.
func (g *Game) State() StateID {
	return encode(g.cells)
}

func encode(cells []Mark) StateID {
	buf := make([]byte, len(cells))
	for i, m := range cells {
		buf[i] = byte(m)
	}
	return StateID(buf)
}

// OpenMoves returns, for every empty cell in board-index order, the state
// identifier the active player's mark would produce there and the cell index
// itself, as two parallel slices. The board is left untouched.
func (g *Game) OpenMoves() ([]StateID, []int) {
	states := []StateID{}
	actions := []int{}
	for i, m := range g.cells {
		if m != Empty {
			continue
		}
		g.cells[i] = g.turn
		states = append(states, encode(g.cells))
		g.cells[i] = Empty
		actions = append(actions, i)
	}
	return states, actions
}

// IsValidMove reports whether cell is on the board and unoccupied.
func (g *Game) IsValidMove(cell int) bool {
	if cell < 0 || cell >= len(g.cells) {
		return false
	}
	return g.cells[cell] == Empty
}

// Play puts the active player's mark on cell, passes the turn to the
// opponent and returns the resulting status. The board is unchanged when the
// move is invalid.
func (g *Game) Play(cell int) (Status, error) {
	if !g.IsValidMove(cell) {
		return InProgress, fmt.Errorf("%w: cell %d", ErrInvalidMove, cell)
	}
	g.cells[cell] = g.turn
	g.turn = g.turn.Opponent()
	return g.Status(), nil
}
