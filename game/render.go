package game

import (
	"fmt"
	"strings"
)

const boardRule = "==============="

// Render formats the board as the grid players see: one mark per cell, space
// separated, one row per line, closed by a horizontal rule.
func Render(g *Game) string {
	var b strings.Builder
	for i, m := range g.cells {
		b.WriteByte(byte(m))
		b.WriteByte(' ')
		if (i+1)%g.cols == 0 && i+1 < len(g.cells) {
			b.WriteByte('\n')
		}
	}
	b.WriteByte('\n')
	b.WriteString(boardRule)
	b.WriteByte('\n')
	return b.String()
}

// Instructions returns the how-to-play text for the board's dimensions.
func Instructions(g *Game) string {
	var b strings.Builder
	b.WriteString(boardRule + "\n")
	b.WriteString("How to play:\n")
	fmt.Fprintf(&b, "Possible moves are [0,%d) on a %dx%d board,\n", g.rows*g.cols, g.rows, g.cols)
	b.WriteString("corresponding to these spaces:\n\n")
	fmt.Fprintf(&b, "0 | 1 | 2 | ... | %d\n", g.cols-1)
	b.WriteString(".\n.\n.\n")
	fmt.Fprintf(&b, ". | . | . | ... | %d\n", g.rows*g.cols-1)
	return b.String()
}
