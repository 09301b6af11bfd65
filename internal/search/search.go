// Package search implements iterative-deepening negamax alpha-beta search
// with quiescence over an engine.Position, following spec.md §4.4-4.5.
//
// The reference implementation aborts a running search by longjmp'ing
// back to think() when its deadline passes. Go has no non-local goto, so
// this package uses the alternative spec.md §9 explicitly allows: an
// "aborted" boolean threaded through every recursive return, checked
// before any further work is done at a node. Because every successful
// MakeMove in a still-executing call is always paired with a TakeBack
// before that call returns — abort or not — the position is guaranteed
// to be back at Ply 0 by the time Think returns, with no special unwind
// code required.
package search

import (
	"tscpgo/internal/engine"
)

// EvalFunc is the static evaluator contract from spec.md §6: a
// deterministic pure function from position to a centipawn score from
// the perspective of the side to move.
type EvalFunc func(*engine.Position) int

// BookFunc is the opening book contract from spec.md §6: a pure lookup
// from position to a recommended move, or ok=false for "no recommendation".
type BookFunc func(*engine.Position) (engine.Move, bool)

// ClockFunc is the now_ms contract from spec.md §6: a monotonic
// millisecond clock reading.
type ClockFunc func() int64

// IterationReport is emitted once per completed iterative-deepening
// iteration, carrying enough information for either posting mode in
// spec.md §6 (console or xboard).
type IterationReport struct {
	Depth     int
	Score     int
	Nodes     int
	ElapsedMS int64
	PV        []engine.Move
}

// Engine owns the per-search state that lives alongside an
// engine.Position but isn't part of the position itself: the triangular
// PV table, PV-following state, node counter, and time fences. Multiple
// Engines may share nothing; each Engine drives exactly one Position.
type Engine struct {
	Pos *engine.Position

	Eval  EvalFunc
	Book  BookFunc
	Clock ClockFunc

	// MaxTime is the per-move time budget in milliseconds; MaxDepth is
	// the per-move ply budget. Both are set by the st/sd shell commands.
	MaxTime  int64
	MaxDepth int

	pv       [engine.MaxPly][engine.MaxPly]engine.Move
	pvLength [engine.MaxPly]int
	followPV bool

	nodes     int
	startTime int64
	stopTime  int64
	aborted   bool
}

// NewEngine builds an Engine over pos with the given evaluator, book and
// clock collaborators (spec.md §6).
func NewEngine(pos *engine.Position, eval EvalFunc, book BookFunc, clock ClockFunc) *Engine {
	return &Engine{
		Pos:      pos,
		Eval:     eval,
		Book:     book,
		Clock:    clock,
		MaxTime:  maxLevelTime,
		MaxDepth: 4,
	}
}

// maxLevelTime is the "no time limit" sentinel used when sd sets a pure
// depth limit, ported from original_source/defs.h's MaxLevelTime (1<<25
// milliseconds, roughly 9.3 hours).
const maxLevelTime = 1 << 25

// MaxLevelDepth is the depth limit used when st sets a pure time limit,
// ported from original_source/defs.h's MaxLevelDepth.
const MaxLevelDepth = 32

// Nodes returns the number of nodes visited during the most recent Think
// call (useful for statistics output between calls).
func (e *Engine) Nodes() int { return e.nodes }

// Think is the search entry point, ported from original_source/search.c's
// think(). It consults the opening book first; failing that it runs
// iterative deepening from depth 1 to MaxDepth, reporting each completed
// iteration through report (which may be nil). It returns the zero Move
// if no iteration completed (e.g. the position has no legal moves, or
// the very first iteration was aborted before finishing).
func (e *Engine) Think(report func(IterationReport)) engine.Move {
	if e.Book != nil {
		if mv, ok := e.Book(e.Pos); ok {
			return mv
		}
	}

	e.aborted = false
	e.startTime = e.Clock()
	e.stopTime = e.startTime + e.MaxTime
	e.Pos.Ply = 0
	e.nodes = 0
	e.pv = [engine.MaxPly][engine.MaxPly]engine.Move{}
	e.pvLength = [engine.MaxPly]int{}
	e.Pos.History = [64][64]int{}

	var best engine.Move
	for depth := 1; depth <= e.MaxDepth; depth++ {
		e.followPV = true
		score := e.search(engine.ScoreCheckmated, engine.ScoreMateIn0, depth)
		if e.aborted {
			break
		}

		length := e.pvLength[0]
		line := append([]engine.Move(nil), e.pv[0][:length]...)
		if length > 0 {
			best = line[0]
		}
		if report != nil {
			report(IterationReport{
				Depth:     depth,
				Score:     score,
				Nodes:     e.nodes,
				ElapsedMS: e.Clock() - e.startTime,
				PV:        line,
			})
		}

		if score > engine.ScoreSlowMate || score < engine.ScoreSlowLose {
			break
		}
	}

	for e.Pos.Ply > 0 {
		e.Pos.TakeBack()
	}
	return best
}

// search is negamax alpha-beta over Pos, ported from
// original_source/search.c's search().
func (e *Engine) search(alpha, beta, depth int) int {
	if e.aborted {
		return 0
	}
	if depth == 0 {
		return e.quiesce(alpha, beta)
	}

	e.nodes++
	if e.nodes&1023 == 0 {
		e.checkup()
		if e.aborted {
			return 0
		}
	}

	pos := e.Pos
	e.pvLength[pos.Ply] = pos.Ply

	if pos.Ply > 0 && pos.Reps() > 0 {
		return engine.ScoreEven
	}
	if pos.Ply >= engine.MaxPly-1 || pos.Hply >= engine.HistStackSize-1 {
		return e.Eval(pos)
	}

	checked := pos.InCheck(pos.Side)
	if checked {
		depth++
	}
	pos.Gen()
	if e.followPV {
		e.followPV = pos.SortPV(e.pv[0][pos.Ply])
	}

	start, end := pos.FirstMove[pos.Ply], pos.FirstMove[pos.Ply+1]
	atLeastOneMove := false
	for i := start; i < end; i++ {
		pos.SelectSort(i)
		mv := pos.Gen[i].Move
		if !pos.MakeMove(mv) {
			continue
		}
		atLeastOneMove = true
		score := -e.search(-beta, -alpha, depth-1)
		pos.TakeBack()
		if e.aborted {
			break
		}
		if score > alpha {
			pos.History[mv.From][mv.To] += depth
			if score >= beta {
				return beta
			}
			alpha = score
			e.updatePV(pos.Ply, mv)
		}
	}

	if !atLeastOneMove {
		if checked {
			return engine.ScoreCheckmated + pos.Ply
		}
		return engine.ScoreEven
	}
	if pos.Fifty >= 100 {
		return engine.ScoreEven
	}
	return alpha
}

// quiesce is the capture-only negamax extension at the search horizon,
// ported from original_source/search.c's quiesce(). It never detects
// mate: a position with no captures simply stands pat on the static
// evaluation.
func (e *Engine) quiesce(alpha, beta int) int {
	if e.aborted {
		return 0
	}

	e.nodes++
	if e.nodes&1023 == 0 {
		e.checkup()
		if e.aborted {
			return 0
		}
	}

	pos := e.Pos
	e.pvLength[pos.Ply] = pos.Ply

	if pos.Ply >= engine.MaxPly-1 || pos.Hply >= engine.HistStackSize-1 {
		return e.Eval(pos)
	}

	standPat := e.Eval(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	pos.GenCaps()
	if e.followPV {
		e.followPV = pos.SortPV(e.pv[0][pos.Ply])
	}

	start, end := pos.FirstMove[pos.Ply], pos.FirstMove[pos.Ply+1]
	for i := start; i < end; i++ {
		pos.SelectSort(i)
		mv := pos.Gen[i].Move
		if !pos.MakeMove(mv) {
			continue
		}
		score := -e.quiesce(-beta, -alpha)
		pos.TakeBack()
		if e.aborted {
			break
		}
		if score > alpha {
			if score >= beta {
				return beta
			}
			alpha = score
			e.updatePV(pos.Ply, mv)
		}
	}
	return alpha
}

// updatePV records mv as the best move at ply and splices the child's
// continuation onto it, ported from the PV-update block shared by
// search() and quiesce() in original_source/search.c.
func (e *Engine) updatePV(ply int, mv engine.Move) {
	e.pv[ply][ply] = mv
	for j := ply + 1; j < e.pvLength[ply+1]; j++ {
		e.pv[ply][j] = e.pv[ply+1][j]
	}
	e.pvLength[ply] = e.pvLength[ply+1]
}

// checkup polls the deadline, ported from original_source/search.c's
// checkup(). Called every 1024 nodes.
func (e *Engine) checkup() {
	if e.Clock() >= e.stopTime {
		e.aborted = true
	}
}
