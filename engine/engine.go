// Package engine plays interactive matches between two movers sharing one
// board, typically a trained agent against a human on stdin.
package engine

import (
	"bufio"
	"connectfour/agent"
	"connectfour/game"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Mover produces the next action index for the active player.
type Mover interface {
	NextMove(g *game.Game) (int, error)
}

// AgentMover plays the greedy move from the agent's value table. The agent
// must be bound to the same game the match runs on.
type AgentMover struct {
	agent *agent.Agent
}

func NewAgentMover(a *agent.Agent) *AgentMover {
	if a == nil {
		panic("Must specify an agent")
	}
	return &AgentMover{agent: a}
}

func (m *AgentMover) NextMove(g *game.Game) (int, error) {
	action, ok := m.agent.BestMove()
	if !ok {
		return 0, errors.New("no open moves left")
	}
	return action, nil
}

// HumanMover reads one action index per line, reprompting until the input
// parses and names an open cell.
type HumanMover struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHumanMover(in io.Reader, out io.Writer) *HumanMover {
	return &HumanMover{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (m *HumanMover) NextMove(g *game.Game) (int, error) {
	for {
		fmt.Fprintf(m.out, "%s to move: ", g.Player())
		if !m.scanner.Scan() {
			if err := m.scanner.Err(); err != nil {
				return 0, fmt.Errorf("failed to read move: %w", err)
			}
			return 0, io.ErrUnexpectedEOF
		}
		action, err := strconv.Atoi(strings.TrimSpace(m.scanner.Text()))
		if err != nil || !g.IsValidMove(action) {
			fmt.Fprintln(m.out, "Invalid move.")
			continue
		}
		return action, nil
	}
}
