package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
)

// AgentConfig is one agent parameterization under experiment.
type AgentConfig struct {
	ID           int
	LearningRate float64
	Discount     float64
	Epsilon      float64
	Episodes     int
	Seed         uint64
}

type TrainRecord struct {
	Agent int // AgentConfig.ID
	TrainMetric
}

type EvalRecord struct {
	Agent int // AgentConfig.ID
	EvalMetric
}

type Writer struct {
	baseDir string
}

func NewWriter(name string) (*Writer, error) {
	// Create a subfolder named by a fresh run ID
	run := uuid.NewString()
	baseDir := filepath.Join("experiments", name, run)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir returns the run directory records are written into.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	// Create a file
	path := filepath.Join(w.baseDir, "agent_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create agent configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"id", "learning_rate", "discount", "epsilon", "episodes", "seed"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write agent configs header: %w", err)
	}

	// Write each row
	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			formatFloat(config.LearningRate),
			formatFloat(config.Discount),
			formatFloat(config.Epsilon),
			strconv.Itoa(config.Episodes),
			strconv.FormatUint(config.Seed, 10),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write agent config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteTrainRecords(records []TrainRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "train_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create train records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"agent", "episodes", "moves", "states", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write train records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Agent),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.Moves),
			strconv.Itoa(record.States),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write train record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteEvalRecords(records []EvalRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "eval_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create eval records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"agent", "episodes", "wins_x", "wins_o", "draws", "win_fraction_x", "win_fraction_o", "draw_fraction", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write eval records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Agent),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.WinsX),
			strconv.Itoa(record.WinsO),
			strconv.Itoa(record.Draws),
			formatFloat(record.WinFractionX()),
			formatFloat(record.WinFractionO()),
			formatFloat(record.DrawFraction()),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write eval record row: %w", err)
		}
	}

	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
