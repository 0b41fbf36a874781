package main

import (
	"connectfour/agent"
	"connectfour/config"
	"connectfour/engine"
	"connectfour/experiments"
	"connectfour/game"
	"connectfour/store"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// main wires the configured game, agent and store together and runs one of
// the four modes: train, evaluate, play or sweep.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	mode := flag.String("mode", "play", "one of train, evaluate, play, sweep")
	configPath := flag.String("config", "config.yml", "path to the config file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	initLogger(cfg.LogLevel)

	ctx := context.Background()
	switch *mode {
	case "train":
		train(ctx, cfg)
	case "evaluate":
		evaluate(ctx, cfg)
	case "play":
		play(ctx, cfg)
	case "sweep":
		sweep()
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

// train continues from any saved value table, runs self-play episodes and
// saves the result.
func train(ctx context.Context, cfg *config.Config) {
	g, a := newAgent(cfg, agent.WithMetrics())
	st := newStore(ctx, cfg)
	defer closeStore(st)

	if err := a.LoadValues(ctx, st); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Fatal().Err(err).Msg("failed to load value table")
		}
		log.Info().Msg("no saved value table, training from scratch")
	}

	metric := a.Train(cfg.Learner.Episodes)
	log.Info().
		Int("episodes", metric.Episodes).
		Int("moves", metric.Moves).
		Int("states", metric.States).
		Dur("duration", metric.Duration).
		Msgf("trained on a %dx%d board", g.Rows(), g.Cols())

	if err := a.SaveValues(ctx, st); err != nil {
		log.Fatal().Err(err).Msg("failed to save value table")
	}
	log.Info().Msg("saved value table")
}

// evaluate plays greedy self-play games with a saved value table and logs
// the win and draw fractions.
func evaluate(ctx context.Context, cfg *config.Config) {
	_, a := newAgent(cfg)
	st := newStore(ctx, cfg)
	defer closeStore(st)

	if err := a.LoadValues(ctx, st); err != nil {
		log.Fatal().Err(err).Msg("failed to load value table")
	}

	a.Evaluate(cfg.Learner.EvalEpisodes)
}

// play runs an interactive match, the agent opening as X against a human on
// stdin.
func play(ctx context.Context, cfg *config.Config) {
	g, a := newAgent(cfg)
	st := newStore(ctx, cfg)
	defer closeStore(st)

	if err := a.LoadValues(ctx, st); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Fatal().Err(err).Msg("failed to load value table")
		}
		log.Info().Msg("no saved value table, playing untrained")
	}

	fmt.Print(game.Instructions(g))
	match := engine.NewMatch(g, engine.NewAgentMover(a), engine.NewHumanMover(os.Stdin, os.Stdout), os.Stdout)
	if _, err := match.Run(); err != nil {
		log.Fatal().Err(err).Msg("match failed")
	}
}

func sweep() {
	experiments.RunEpsilonExperiment()
	experiments.RunLearningRateExperiment()
}

// newAgent builds the configured game and an agent bound to it.
func newAgent(cfg *config.Config, options ...agent.Option) (*game.Game, *agent.Agent) {
	g := game.NewGame(cfg.Game.Rows, cfg.Game.Cols)
	options = append([]agent.Option{
		agent.WithLearningRate(cfg.Learner.LearningRate),
		agent.WithDiscount(cfg.Learner.Discount),
		agent.WithEpsilon(cfg.Learner.Epsilon),
	}, options...)
	if cfg.Learner.Seed > 0 {
		options = append(options, agent.WithSeed(cfg.Learner.Seed))
	}
	return g, agent.New(g, options...)
}

// newStore builds the configured value table backend.
func newStore(ctx context.Context, cfg *config.Config) store.Store {
	switch cfg.Store.Backend {
	case "file":
		return store.NewFileStore(cfg.Store.Path)
	case "sqlite":
		s, err := store.NewSQLiteStore(cfg.Store.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open sqlite store")
		}
		if err = s.Init(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to init sqlite store")
		}
		return s
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.Store.Redis.Addr()})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		return store.NewRedisStore(client, "qtable")
	default:
		log.Fatal().Msgf("unknown store backend %q", cfg.Store.Backend)
		return nil
	}
}

func closeStore(st store.Store) {
	if closer, ok := st.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close store")
		}
	}
}

// initLogger applies the configured level to the global logger and formats
// output for the terminal.
func initLogger(logLevel string) {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
