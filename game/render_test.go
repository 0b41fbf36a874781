package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	g := boardOf(t, 2, 3, "XO----")

	got := Render(g)

	assert.Equal(t, "X O - \n- - - \n===============\n", got)
}

func TestInstructions(t *testing.T) {
	g := NewGame(6, 7)

	got := Instructions(g)

	assert.Contains(t, got, "Possible moves are [0,42) on a 6x7 board,")
	assert.Contains(t, got, "0 | 1 | 2 | ... | 6")
	assert.Contains(t, got, ". | . | . | ... | 41")
}
