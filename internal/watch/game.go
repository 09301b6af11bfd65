// Package watch drives a read-only spectator view of the engine playing
// itself, grounded on the teacher's internal/bvb package (a GameSession
// running a goroutine-free move loop behind a mutex) and its
// internal/ui bubbletea tick-driven playback. Nothing here accepts
// input that changes the position — spec.md's external interfaces are
// the shell and xboard protocol; this package exists purely to narrate
// a self-play game to a terminal.
package watch

import (
	"tscpgo/internal/display"
	"tscpgo/internal/engine"
	"tscpgo/internal/search"
)

// Outcome describes how a finished game ended.
type Outcome int

const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
	FiftyMoveRule
	Repetition
	MoveLimit
)

// moveLimit caps a self-play game length, ported from the teacher's
// bvb.maxMoveCount forced-draw guard.
const moveLimit = 500

// Game plays one engine-vs-itself match one ply at a time.
type Game struct {
	Pos     *engine.Position
	White   *search.Engine
	Black   *search.Engine
	History []engine.Move
	Outcome Outcome
}

// NewGame starts a fresh game from the initial position, with white and
// black driven by possibly different search configurations (so a
// "watch" session can pit two time controls, or two evaluators, against
// each other).
func NewGame(white, black *search.Engine) *Game {
	pos := engine.NewGame()
	white.Pos = pos
	black.Pos = pos
	return &Game{Pos: pos, White: white, Black: black}
}

// Step plays one ply and reports whether the game is still ongoing.
func (g *Game) Step() bool {
	if g.Outcome != Ongoing {
		return false
	}

	mate, stalemate := terminalState(g.Pos)
	switch {
	case mate:
		g.Outcome = Checkmate
		return false
	case stalemate:
		g.Outcome = Stalemate
		return false
	case g.Pos.Fifty >= 100:
		g.Outcome = FiftyMoveRule
		return false
	case g.Pos.Reps() > 0:
		g.Outcome = Repetition
		return false
	case len(g.History) >= moveLimit:
		g.Outcome = MoveLimit
		return false
	}

	var engineToMove *search.Engine
	if g.Pos.Side == engine.Light {
		engineToMove = g.White
	} else {
		engineToMove = g.Black
	}

	mv := engineToMove.Think(nil)
	if mv.IsNil() || !g.Pos.MakeMove(mv) {
		g.Outcome = Stalemate
		return false
	}
	g.History = append(g.History, mv)
	return true
}

// terminalState reports whether pos has no legal moves, and if so
// whether the side to move is in check (checkmate) or not (stalemate).
// Ported from the shared "no legal moves" branch of
// original_source/search.c's search().
func terminalState(pos *engine.Position) (mate, stalemate bool) {
	pos.Gen()
	start, end := pos.FirstMove[pos.Ply], pos.FirstMove[pos.Ply+1]
	for i := start; i < end; i++ {
		mv := pos.Gen[i].Move
		if pos.MakeMove(mv) {
			pos.TakeBack()
			return false, false
		}
	}
	if pos.InCheck(pos.Side) {
		return true, false
	}
	return false, true
}

// ResultText renders the game's outcome in the same termination strings
// original_source/main.c's print_result() prints.
func (g *Game) ResultText() string {
	return display.ResultString(g.Pos.Side, g.Outcome == Checkmate, g.Outcome == Stalemate, g.Outcome == FiftyMoveRule, g.Outcome == Repetition)
}
