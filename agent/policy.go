package agent

import (
	"connectfour/game"
)

// trainingMove selects an action by the epsilon-greedy policy. The epsilon
// test consumes one draw; exploring consumes one more for the uniform pick,
// exploiting one more for the tie-break.
func (a *Agent) trainingMove(states []game.StateID, actions []int) int {
	if a.rng.Float64() < a.epsilon {
		// Explore
		return actions[a.rng.Intn(len(actions))]
	}
	// Exploit
	return actions[a.optimalIndex(states)]
}

// BestMove returns the greedy action for the current position. The second
// return is false when the board has no open cells.
func (a *Agent) BestMove() (int, bool) {
	states, actions := a.game.OpenMoves()
	if len(actions) == 0 {
		return 0, false
	}
	return actions[a.optimalIndex(states)], true
}

// optimalIndex picks the successor optimal from the active player's
// perspective. On the agent's own turn that is the highest-valued successor;
// on the opponent's turn the lowest, modeling an opponent who reads the same
// table and plays against the agent.
func (a *Agent) optimalIndex(states []game.StateID) int {
	values := make([]float64, len(states))
	for i, s := range states {
		values[i] = a.Value(s)
	}
	if a.game.Player() == a.mark {
		return a.argMax(values)
	}
	return a.argMin(values)
}

// lookahead returns the optimal successor value under the same perspective
// rule, without consuming a random draw.
func (a *Agent) lookahead(states []game.StateID) float64 {
	maximize := a.game.Player() == a.mark
	best := a.Value(states[0])
	for _, s := range states[1:] {
		v := a.Value(s)
		if (maximize && v > best) || (!maximize && v < best) {
			best = v
		}
	}
	return best
}

// argMax returns the index of the maximum value. Ties are broken by a
// uniform draw among all tied indices, never by first found.
func (a *Agent) argMax(values []float64) int {
	vmax := values[0]
	for _, v := range values[1:] {
		if v > vmax {
			vmax = v
		}
	}
	var tied []int
	for i, v := range values {
		if v == vmax {
			tied = append(tied, i)
		}
	}
	return tied[a.rng.Intn(len(tied))]
}

// argMin mirrors argMax for the minimum.
func (a *Agent) argMin(values []float64) int {
	vmin := values[0]
	for _, v := range values[1:] {
		if v < vmin {
			vmin = v
		}
	}
	var tied []int
	for i, v := range values {
		if v == vmin {
			tied = append(tied, i)
		}
	}
	return tied[a.rng.Intn(len(tied))]
}
