package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env-default:"info"`
	Game     Game    `yaml:"game"`
	Learner  Learner `yaml:"learner"`
	Store    Store   `yaml:"store"`
}

type Game struct {
	Rows int `yaml:"rows" env-default:"6"`
	Cols int `yaml:"cols" env-default:"7"`
}

type Learner struct {
	LearningRate float64 `yaml:"learning-rate" env-default:"0.5"`
	Discount     float64 `yaml:"discount" env-default:"1.0"`
	Epsilon      float64 `yaml:"epsilon" env-default:"0.5"`
	Episodes     int     `yaml:"episodes" env-default:"10000"`
	EvalEpisodes int     `yaml:"eval-episodes" env-default:"10000"`
	Seed         uint64  `yaml:"seed" env-default:"0"`
}

type Store struct {
	Backend    string `yaml:"backend" env-default:"file"`
	Path       string `yaml:"path" env-default:"data/qtable.json"`
	SQLitePath string `yaml:"sqlite-path" env-default:"data/qtable.db"`
	Redis      Redis  `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (r *Redis) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}
