// Package experiments sweeps agent hyperparameters and records how each
// setting trains and plays, as CSV files for offline analysis.
package experiments

import (
	"connectfour/agent"
	"connectfour/experiments/metrics"
	"connectfour/game"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Sweeps run on a small board so greedy evaluation reflects learned values
// rather than tie-break noise.
const (
	Rows          = 4
	Cols          = 4
	TrainEpisodes = 20000 // Per agent
	EvalEpisodes  = 1000
)

var epsilonConfigs = []metrics.AgentConfig{
	{ID: 1, LearningRate: 0.5, Discount: 1, Epsilon: 0.1, Episodes: TrainEpisodes, Seed: 1},
	{ID: 2, LearningRate: 0.5, Discount: 1, Epsilon: 0.25, Episodes: TrainEpisodes, Seed: 2},
	{ID: 3, LearningRate: 0.5, Discount: 1, Epsilon: 0.5, Episodes: TrainEpisodes, Seed: 3},
	{ID: 4, LearningRate: 0.5, Discount: 1, Epsilon: 0.75, Episodes: TrainEpisodes, Seed: 4},
	{ID: 5, LearningRate: 0.5, Discount: 1, Epsilon: 0.9, Episodes: TrainEpisodes, Seed: 5},
}

var learningRateConfigs = []metrics.AgentConfig{
	{ID: 1, LearningRate: 0.1, Discount: 1, Epsilon: 0.5, Episodes: TrainEpisodes, Seed: 1},
	{ID: 2, LearningRate: 0.25, Discount: 1, Epsilon: 0.5, Episodes: TrainEpisodes, Seed: 2},
	{ID: 3, LearningRate: 0.5, Discount: 1, Epsilon: 0.5, Episodes: TrainEpisodes, Seed: 3},
	{ID: 4, LearningRate: 0.75, Discount: 1, Epsilon: 0.5, Episodes: TrainEpisodes, Seed: 4},
	{ID: 5, LearningRate: 1, Discount: 1, Epsilon: 0.5, Episodes: TrainEpisodes, Seed: 5},
}

// RunEpsilonExperiment measures how the exploration rate affects the learned
// policy, everything else held at defaults.
func RunEpsilonExperiment() {
	runExperiment("epsilon", epsilonConfigs)
}

// RunLearningRateExperiment measures how the learning rate affects the
// learned policy, everything else held at defaults.
func RunLearningRateExperiment() {
	runExperiment("learning_rate", learningRateConfigs)
}

func runExperiment(name string, configs []metrics.AgentConfig) {
	trainRecords := []metrics.TrainRecord{}
	evalRecords := []metrics.EvalRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for i, config := range configs {
		log.Info().Msgf("starting agent %d of %d with config %+v...", i+1, len(configs), config)

		trainMetric, evalMetric := runAgent(config)
		trainRecords = append(trainRecords, metrics.TrainRecord{
			Agent:       config.ID,
			TrainMetric: trainMetric,
		})
		evalRecords = append(evalRecords, metrics.EvalRecord{
			Agent:      config.ID,
			EvalMetric: evalMetric,
		})

		log.Info().Msgf("completed agent %d of %d", i+1, len(configs))
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store experiment metadata
	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store agent configs: %v", err))
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	err = writer.WriteTrainRecords(trainRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to store train records: %v", err))
	}
	log.Info().Msg("stored train records")

	err = writer.WriteEvalRecords(evalRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to store eval records: %v", err))
	}
	log.Info().Msg("stored eval records")
}

// runAgent trains a fresh agent under config and evaluates the result. Each
// agent gets its own game and value table so configs never contaminate each
// other.
func runAgent(config metrics.AgentConfig) (metrics.TrainMetric, metrics.EvalMetric) {
	g := game.NewGame(Rows, Cols)
	a := agent.New(g, createOptions(config)...)

	trainMetric := a.Train(config.Episodes)
	evalMetric := a.Evaluate(EvalEpisodes)

	return trainMetric, evalMetric
}

func createOptions(config metrics.AgentConfig) []agent.Option {
	options := []agent.Option{}

	if config.LearningRate > 0 {
		options = append(options, agent.WithLearningRate(config.LearningRate))
	}
	if config.Discount > 0 {
		options = append(options, agent.WithDiscount(config.Discount))
	}
	if config.Epsilon > 0 {
		options = append(options, agent.WithEpsilon(config.Epsilon))
	}
	if config.Seed > 0 {
		options = append(options, agent.WithSeed(config.Seed))
	}

	options = append(options, agent.WithMetrics())
	return options
}
