package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tscpgo/internal/engine"
	"tscpgo/internal/eval"
	"tscpgo/internal/search"
)

func noBook(*engine.Position) (engine.Move, bool) { return engine.Move{}, false }

// fixedClock advances by one millisecond per call, so MaxTime-based
// deadlines are reachable deterministically without wall-clock sleeps.
func fixedClock() search.ClockFunc {
	var ms int64
	return func() int64 {
		ms++
		return ms
	}
}

// backRankMate sets up 7k/5Rpp/8/8/8/8/8/6K1 w - - 0 1, a textbook
// back-rank mate in one (Rf7-f8#).
func backRankMate() *engine.Position {
	p := &engine.Position{}
	for sq := engine.Square(0); sq < 64; sq++ {
		p.Color[sq] = engine.NoColor
		p.Piece[sq] = engine.NoPiece
	}
	place := func(file, rank int, c engine.Color, pt engine.PieceType) {
		sq := engine.MapToSquare(file, rank)
		p.Color[sq] = c
		p.Piece[sq] = pt
	}
	place(7, 0, engine.Dark, engine.King)
	place(6, 1, engine.Dark, engine.Pawn)
	place(7, 1, engine.Dark, engine.Pawn)
	place(5, 1, engine.Light, engine.Rook)
	place(6, 7, engine.Light, engine.King)

	p.Side = engine.Light
	p.XSide = engine.Dark
	p.Castle = 0
	p.EP = engine.NilSquare
	p.Fifty = 0
	p.Ply = 0
	p.Hply = 0
	p.FirstMove[0] = 0
	p.Hash = p.SetHash()
	return p
}

// TestThinkFindsMateInOne checks that a shallow search finds the mating
// rook move in a forced back-rank mate.
func TestThinkFindsMateInOne(t *testing.T) {
	pos := backRankMate()
	e := search.NewEngine(pos, eval.Evaluate, noBook, fixedClock())
	e.MaxDepth = 3
	e.MaxTime = 1 << 25

	mv := e.Think(nil)
	require.False(t, mv.IsNil())
	assert.Equal(t, "f7f8", mv.String())
}

// TestThinkNeverReturnsMidSearchPosition checks that after Think
// returns, the position is back at ply 0 regardless of how the
// iterative-deepening loop terminated — the structural guarantee the
// non-local-abort design depends on.
func TestThinkNeverReturnsMidSearchPosition(t *testing.T) {
	pos := engine.NewGame()
	e := search.NewEngine(pos, eval.Evaluate, noBook, fixedClock())
	e.MaxDepth = 2
	e.MaxTime = 1 << 25

	e.Think(nil)
	assert.Equal(t, 0, pos.Ply)
	assert.Equal(t, 0, pos.Hply)
}

// TestThinkAbortMidSearchStillUnwindsCleanly drives a deep enough search
// that the 1024-node checkup fires mid-iteration, then checks the
// position is still left exactly at ply 0 — the invariant the
// non-local-abort design depends on instead of a recovery mechanism.
func TestThinkAbortMidSearchStillUnwindsCleanly(t *testing.T) {
	pos := engine.NewGame()
	e := search.NewEngine(pos, eval.Evaluate, noBook, fixedClock())
	e.MaxDepth = 6
	e.MaxTime = 5 // expires a few checkups in, given fixedClock's 1ms-per-call tick

	e.Think(nil)
	assert.Equal(t, 0, pos.Ply)
	assert.Equal(t, 0, pos.Hply)
}
