package agent

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
	"time"

	"github.com/rs/zerolog/log"
)

// Train plays self-play games and accumulates into the shared value table
// across all episodes. Counters are collected only when a real collector is
// attached via WithMetrics.
func (a *Agent) Train(episodes int) metrics.TrainMetric {
	if episodes <= 0 {
		panic("Must train for at least one episode")
	}

	a.metrics.Start()
	progress := episodes / 10
	for i := 0; i < episodes; i++ {
		for {
			status := a.Step()
			a.metrics.AddMove()
			if status.Terminal() {
				a.game.Reset()
				break
			}
		}
		a.metrics.AddEpisode()
		if progress > 0 && (i+1)%progress == 0 {
			log.Info().Msgf("Trained %d/%d episodes", i+1, episodes)
		}
	}
	a.metrics.SetStates(len(a.values))
	return a.metrics.Complete()
}

// Evaluate plays fully greedy self-play games, no exploration and no value
// updates, and reports how they ended.
func (a *Agent) Evaluate(episodes int) metrics.EvalMetric {
	if episodes <= 0 {
		panic("Must evaluate for at least one episode")
	}

	start := time.Now()
	metric := metrics.EvalMetric{Episodes: episodes}
	for i := 0; i < episodes; i++ {
		for {
			states, actions := a.game.OpenMoves()
			status, err := a.game.Play(actions[a.optimalIndex(states)])
			if err != nil {
				panic(err) // moves from OpenMoves are always legal
			}
			if !status.Terminal() {
				continue
			}
			switch status {
			case game.WinX:
				metric.WinsX++
			case game.WinO:
				metric.WinsO++
			default:
				metric.Draws++
			}
			a.game.Reset()
			break
		}
	}
	metric.Duration = time.Since(start)

	log.Info().
		Float64("x", metric.WinFractionX()).
		Float64("draw", metric.DrawFraction()).
		Float64("o", metric.WinFractionO()).
		Msg("Evaluation complete")
	return metric
}
