package metrics

import "time"

type SearchMetric struct {
	Simulations int
	Exploration float64
	Duration    time.Duration
	Playouts    int // rollouts run to a terminal state
	Expansions  int // leaf nodes expanded
	TreeReused  bool
}

type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// AgentConfig identifies one agent configuration under experiment.
type AgentConfig struct {
	ID          int
	Simulations int
	Exploration float64
	Seed        uint64
}

type Collector interface {
	Start(simulations int, exploration float64)
	SetTreeReuse(value bool)
	AddPlayout()
	AddExpansion()
	AddSimulation()
	Complete() SearchMetric
}

type collector struct {
	simulations int
	exploration float64
	startTime   time.Time
	completed   int
	playouts    int
	expansions  int
	treeReused  bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(simulations int, exploration float64) {
	m.startTime = time.Now()
	m.simulations = simulations
	m.exploration = exploration
	m.completed = 0
	m.playouts = 0
	m.expansions = 0
}

func (m *collector) SetTreeReuse(value bool) {
	m.treeReused = value
}

func (m *collector) AddPlayout() {
	m.playouts++
}

func (m *collector) AddExpansion() {
	m.expansions++
}

func (m *collector) AddSimulation() {
	m.completed++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Simulations: m.completed,
		Exploration: m.exploration,
		Duration:    time.Since(m.startTime),
		Playouts:    m.playouts,
		Expansions:  m.expansions,
		TreeReused:  m.treeReused,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(simulations int, exploration float64) {}
func (m *dummyCollector) SetTreeReuse(value bool)                    {}
func (m *dummyCollector) AddPlayout()                                {}
func (m *dummyCollector) AddExpansion()                              {}
func (m *dummyCollector) AddSimulation()                             {}
func (m *dummyCollector) Complete() SearchMetric                     { return SearchMetric{} }
