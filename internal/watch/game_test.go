package watch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tscpgo/internal/engine"
	"tscpgo/internal/eval"
	"tscpgo/internal/search"
)

func noBook(*engine.Position) (engine.Move, bool) { return engine.Move{}, false }

func fixedClock() search.ClockFunc {
	var ms int64
	return func() int64 {
		ms++
		return ms
	}
}

func newTestEngine() *search.Engine {
	e := search.NewEngine(engine.NewGame(), eval.Evaluate, noBook, fixedClock())
	e.MaxDepth = 2
	e.MaxTime = 1 << 25
	return e
}

func TestGameStepPlaysOnePly(t *testing.T) {
	g := NewGame(newTestEngine(), newTestEngine())
	ok := g.Step()

	require.True(t, ok)
	assert.Len(t, g.History, 1)
	assert.Equal(t, Ongoing, g.Outcome)
}

func TestGameStepStopsAfterOutcomeSet(t *testing.T) {
	g := NewGame(newTestEngine(), newTestEngine())
	g.Outcome = Checkmate

	ok := g.Step()
	assert.False(t, ok)
	assert.Empty(t, g.History)
}

func TestGameResultTextMatchesOutcome(t *testing.T) {
	g := NewGame(newTestEngine(), newTestEngine())
	g.Outcome = Stalemate
	assert.Contains(t, g.ResultText(), "Stalemate")
}
