package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestWriter(t *testing.T) *Writer {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, os.Chdir(t.TempDir()))

	w, err := NewWriter("sweep")
	require.NoError(t, err)
	return w
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriterCreatesRunDir(t *testing.T) {
	w := newTestWriter(t)

	info, err := os.Stat(w.Dir())
	require.NoError(t, err)
	require.True(t, info.IsDir())
	require.Equal(t, filepath.Join("experiments", "sweep"), filepath.Dir(w.Dir()))
}

func TestWriteAgentConfigs(t *testing.T) {
	w := newTestWriter(t)

	err := w.WriteAgentConfigs([]AgentConfig{
		{ID: 0, LearningRate: 0.5, Discount: 1, Epsilon: 0.25, Episodes: 1000, Seed: 7},
	})
	require.NoError(t, err)

	rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, [][]string{
		{"id", "learning_rate", "discount", "epsilon", "episodes", "seed"},
		{"0", "0.5", "1", "0.25", "1000", "7"},
	}, rows)
}

func TestWriteTrainRecords(t *testing.T) {
	w := newTestWriter(t)

	err := w.WriteTrainRecords([]TrainRecord{
		{Agent: 1, TrainMetric: TrainMetric{Episodes: 10, Moves: 90, States: 120, Duration: time.Second}},
	})
	require.NoError(t, err)

	rows := readCSV(t, filepath.Join(w.Dir(), "train_records.csv"))
	require.Equal(t, [][]string{
		{"agent", "episodes", "moves", "states", "duration"},
		{"1", "10", "90", "120", "1s"},
	}, rows)
}

func TestWriteEvalRecords(t *testing.T) {
	w := newTestWriter(t)

	err := w.WriteEvalRecords([]EvalRecord{
		{Agent: 2, EvalMetric: EvalMetric{Episodes: 4, WinsX: 2, WinsO: 1, Draws: 1, Duration: time.Millisecond}},
	})
	require.NoError(t, err)

	rows := readCSV(t, filepath.Join(w.Dir(), "eval_records.csv"))
	require.Equal(t, [][]string{
		{"agent", "episodes", "wins_x", "wins_o", "draws", "win_fraction_x", "win_fraction_o", "draw_fraction", "duration"},
		{"2", "4", "2", "1", "1", "0.5", "0.25", "0.25", "1ms"},
	}, rows)
}
