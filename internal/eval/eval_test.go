package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tscpgo/internal/engine"
	"tscpgo/internal/eval"
)

// TestEvaluateStartingPositionIsBalanced checks that the symmetric
// starting array scores to 0 regardless of which side is on move —
// every material and positional term cancels between mirrored sides.
func TestEvaluateStartingPositionIsBalanced(t *testing.T) {
	pos := engine.NewGame()
	assert.Equal(t, 0, eval.Evaluate(pos))

	pos.Side, pos.XSide = pos.XSide, pos.Side
	assert.Equal(t, 0, eval.Evaluate(pos))
}

// TestEvaluateFavorsMaterialAdvantage checks that removing a black
// knight (while White remains to move) swings the score positive by
// roughly a knight's value.
func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	pos := engine.NewGame()
	before := eval.Evaluate(pos)

	var knightSq engine.Square
	for sq := engine.Square(0); sq < 64; sq++ {
		if pos.Color[sq] == engine.Dark && pos.Piece[sq] == engine.Knight {
			knightSq = sq
			break
		}
	}
	pos.Color[knightSq] = engine.NoColor
	pos.Piece[knightSq] = engine.NoPiece

	after := eval.Evaluate(pos)
	assert.Greater(t, after, before)
	assert.InDelta(t, 300, after-before, 60)
}
