package shell

import (
	"tscpgo/internal/clock"
	"tscpgo/internal/engine"
)

// BenchResult reports the outcome of the built-in node-rate benchmark.
type BenchResult struct {
	TrialMS       [3]int64
	BestMS        int64
	Nodes         int
	NodesPerSecond float64
}

// benchReferenceNPS is the nodes-per-second TSCP's author measured on
// his own machine; Score in the printed report is relative to it,
// ported from original_source/main.c's bench() "Score: 1.000 = my
// Athlon XP 2000+" comment.
const benchReferenceNPS = 243169.0

// Score returns the benchmark's speed relative to benchReferenceNPS.
func (r BenchResult) Score() float64 {
	return r.NodesPerSecond / benchReferenceNPS
}

// RunBench loads the fixed Fischer-Sherwin benchmark position, searches
// it to depth 5 three times, and reports the fastest trial's node rate.
// Ported from original_source/main.c's bench().
func (s *Session) RunBench() BenchResult {
	pos := engine.LoadBench()
	s.Search.Pos = pos
	s.Search.MaxDepth = 5
	s.Search.MaxTime = 1 << 25

	var result BenchResult
	for trial := 0; trial < 3; trial++ {
		start := clock.NowMS()
		s.Search.Think(nil)
		result.TrialMS[trial] = clock.NowMS() - start
	}

	result.BestMS = result.TrialMS[0]
	if result.TrialMS[1] < result.BestMS {
		result.BestMS = result.TrialMS[1]
	}
	if result.TrialMS[2] < result.BestMS {
		result.BestMS = result.TrialMS[2]
	}
	result.Nodes = s.Search.Nodes()
	if result.BestMS > 0 {
		result.NodesPerSecond = float64(result.Nodes) / float64(result.BestMS) * 1000.0
	}

	s.resetGame()
	return result
}
