// Package agent implements a tabular Q-learning player. One shared value
// table scores board states for both sides of self-play: moves are picked
// epsilon-greedily during training, observed rewards are backed up into the
// table, and evaluation and demo play read the table fully greedily.
package agent

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/store"
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

type Option func(a *Agent)

// Agent learns state values for a game through self-play. It owns the value
// table exclusively; the game never reads or writes it.
type Agent struct {
	game    *game.Game
	values  map[game.StateID]float64
	mark    game.Mark
	alpha   float64 // learning rate
	gamma   float64 // discount factor
	epsilon float64 // exploration probability
	rng     *rand.Rand
	metrics metrics.Collector
}

func WithLearningRate(alpha float64) Option {
	return func(a *Agent) {
		if alpha > 0 && alpha <= 1 {
			a.alpha = alpha
		}
	}
}

func WithDiscount(gamma float64) Option {
	return func(a *Agent) {
		if gamma >= 0 && gamma <= 1 {
			a.gamma = gamma
		}
	}
}

func WithEpsilon(epsilon float64) Option {
	return func(a *Agent) {
		if epsilon >= 0 && epsilon <= 1 {
			a.epsilon = epsilon
		}
	}
}

func WithMark(mark game.Mark) Option {
	return func(a *Agent) {
		if mark == game.PlayerX || mark == game.PlayerO {
			a.mark = mark
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(a *Agent) {
		a.rng = rand.New(rand.NewSource(seed))
	}
}

func WithValues(values map[game.StateID]float64) Option {
	return func(a *Agent) {
		if values != nil {
			a.values = values
		}
	}
}

func WithMetrics() Option {
	return func(a *Agent) {
		a.metrics = metrics.NewCollector()
	}
}

func New(g *game.Game, options ...Option) *Agent {
	if g == nil {
		panic("Must specify a game to play")
	}
	a := &Agent{ // Default values
		game:    g,
		values:  make(map[game.StateID]float64),
		mark:    game.PlayerX,
		alpha:   0.5,
		gamma:   1.0,
		epsilon: 0.5,
		rng:     rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// Mark returns which side the agent optimizes for.
func (a *Agent) Mark() game.Mark {
	return a.mark
}

// Value returns the estimate for state s, entering unseen states at 0.
func (a *Agent) Value(s game.StateID) float64 {
	if _, ok := a.values[s]; !ok {
		a.values[s] = 0.0
	}
	return a.values[s]
}

// Values returns a copy of the value table.
func (a *Agent) Values() map[game.StateID]float64 {
	values := make(map[game.StateID]float64, len(a.values))
	for s, v := range a.values {
		values[s] = v
	}
	return values
}

// Reward scores a move outcome from the agent's side: +1 for winning the
// game, -1 for losing it, 0 for a draw or an unfinished position.
func (a *Agent) Reward(status game.Status) float64 {
	switch {
	case status.WonBy(a.mark):
		return 1.0
	case status.WonBy(a.mark.Opponent()):
		return -1.0
	default:
		return 0.0
	}
}

// Update backs the observed reward up into prev, the state the move was
// taken from. The future term bootstraps one step ahead: the optimal
// successor value seen from the post-move position, zero once the game is
// over.
func (a *Agent) Update(prev game.StateID, reward float64, status game.Status) {
	future := 0.0
	if !status.Terminal() {
		states, _ := a.game.OpenMoves()
		future = a.lookahead(states)
	}
	a.values[prev] = (1-a.alpha)*a.Value(prev) + a.alpha*(reward+a.gamma*future)
}

// Step plays one self-play transition: select a move by the training policy,
// apply it, and update the value of the state it was taken from. Returns the
// resulting status.
func (a *Agent) Step() game.Status {
	prev := a.game.State()
	states, actions := a.game.OpenMoves()
	if len(actions) == 0 {
		panic("no open moves to play")
	}
	status, err := a.game.Play(a.trainingMove(states, actions))
	if err != nil {
		panic(err) // moves from OpenMoves are always legal
	}
	a.Update(prev, a.Reward(status), status)
	return status
}

// LoadValues replaces the value table with a previously saved one.
func (a *Agent) LoadValues(ctx context.Context, st store.Store) error {
	values, err := st.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load value table: %w", err)
	}
	if values == nil {
		values = make(map[game.StateID]float64)
	}
	a.values = values
	return nil
}

// SaveValues writes the value table to st.
func (a *Agent) SaveValues(ctx context.Context, st store.Store) error {
	if err := st.Save(ctx, a.values); err != nil {
		return fmt.Errorf("failed to save value table: %w", err)
	}
	return nil
}
