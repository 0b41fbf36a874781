package metrics

import (
	"time"
)

// TrainMetric summarizes one self-play training run.
type TrainMetric struct {
	Episodes int
	Moves    int
	States   int // value table size after training
	Duration time.Duration
}

// EvalMetric summarizes one greedy evaluation run.
type EvalMetric struct {
	Episodes int
	WinsX    int
	WinsO    int
	Draws    int
	Duration time.Duration
}

func (m EvalMetric) WinFractionX() float64 {
	return fraction(m.WinsX, m.Episodes)
}

func (m EvalMetric) WinFractionO() float64 {
	return fraction(m.WinsO, m.Episodes)
}

func (m EvalMetric) DrawFraction() float64 {
	return fraction(m.Draws, m.Episodes)
}

func fraction(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total)
}

type Collector interface {
	Start()
	AddEpisode()
	AddMove()
	SetStates(count int)
	Complete() TrainMetric
}

type collector struct {
	startTime time.Time
	episodes  int
	moves     int
	states    int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.episodes = 0
	m.moves = 0
	m.states = 0
}

func (m *collector) AddEpisode() {
	m.episodes++
}

func (m *collector) AddMove() {
	m.moves++
}

func (m *collector) SetStates(count int) {
	m.states = count
}

func (m *collector) Complete() TrainMetric {
	return TrainMetric{
		Episodes: m.episodes,
		Moves:    m.moves,
		States:   m.states,
		Duration: time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                {}
func (m *dummyCollector) AddEpisode()           {}
func (m *dummyCollector) AddMove()              {}
func (m *dummyCollector) SetStates(count int)   {}
func (m *dummyCollector) Complete() TrainMetric { return TrainMetric{} }
