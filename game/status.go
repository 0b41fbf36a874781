package game

// Status classifies a board position.
type Status int

const (
	InProgress Status = iota
	WinX
	WinO
	Draw
)

func (s Status) String() string {
	switch s {
	case WinX:
		return "X wins"
	case WinO:
		return "O wins"
	case Draw:
		return "draw"
	}
	return "in progress"
}

// Terminal reports whether the game is over.
func (s Status) Terminal() bool {
	return s != InProgress
}

// Winner returns the winning mark, if any.
func (s Status) Winner() (Mark, bool) {
	switch s {
	case WinX:
		return PlayerX, true
	case WinO:
		return PlayerO, true
	}
	return Empty, false
}

// WonBy reports whether s is a win for m.
func (s Status) WonBy(m Mark) bool {
	winner, ok := s.Winner()
	return ok && winner == m
}

// winLength is the run length that decides the game.
const winLength = 4

// The four direction vectors cover every possible run: right, down,
// down-right and down-left. Up and left runs are the same cells scanned from
// their other end.
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// Status recomputes the position's outcome from board contents alone, without
// mutation. Every cell is tried as the start of a four-run in each direction,
// in row-major scan order; the first completed run decides the winner. Under
// alternating play a position can never hold winning runs for both marks, so
// scan order is unobservable. A full board with no run is a draw.
func (g *Game) Status() Status {
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			mark := g.cells[i*g.cols+j]
			if mark == Empty {
				continue
			}
			for _, d := range directions {
				if g.runFrom(i, j, d[0], d[1], mark) {
					if mark == PlayerX {
						return WinX
					}
					return WinO
				}
			}
		}
	}
	for _, m := range g.cells {
		if m == Empty {
			return InProgress
		}
	}
	return Draw
}

// runFrom reports whether winLength cells starting at (i,j) along (di,dj)
// stay on the board and all hold mark.
func (g *Game) runFrom(i, j, di, dj int, mark Mark) bool {
	endRow := i + (winLength-1)*di
	endCol := j + (winLength-1)*dj
	if endRow < 0 || endRow >= g.rows || endCol < 0 || endCol >= g.cols {
		return false
	}
	for k := 1; k < winLength; k++ {
		if g.cells[(i+k*di)*g.cols+(j+k*dj)] != mark {
			return false
		}
	}
	return true
}
