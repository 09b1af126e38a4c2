package metrics

import (
	"sync/atomic"
	"time"

	"mnk/game"
)

// SearchMetric describes one minimax invocation: how many nodes the search
// visited, how many sibling sets the alpha-beta cutoff pruned, and how long
// the search ran.
type SearchMetric struct {
	Pruning  bool
	Duration time.Duration
	Nodes    int
	Cutoffs  int
}

type MoveMetric struct {
	Step    int
	Marking game.Marking
	SearchMetric
}

type GameMetric struct {
	StartingMarking game.Marking
	Winner          string // Winning player name, empty for a draw
	StartTime       time.Time
	EndTime         time.Time
	Duration        time.Duration
	TotalMoves      int
}

type Collector interface {
	Start(pruning bool)
	AddNode()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	pruning   bool
	startTime time.Time
	nodes     atomic.Int64
	cutoffs   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(pruning bool) {
	c.startTime = time.Now()
	c.pruning = pruning
	c.nodes.Store(0)
	c.cutoffs.Store(0)
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddCutoff() {
	c.cutoffs.Add(1)
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Pruning:  c.pruning,
		Duration: time.Since(c.startTime),
		Nodes:    int(c.nodes.Load()),
		Cutoffs:  int(c.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(pruning bool)     {}
func (c *dummyCollector) AddNode()               {}
func (c *dummyCollector) AddCutoff()             {}
func (c *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
