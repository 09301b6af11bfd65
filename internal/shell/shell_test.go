package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tscpgo/internal/config"
	"tscpgo/internal/engine"
)

func newTestSession() *Session {
	cfg := config.DefaultConfig()
	cfg.MaxDepth = 2
	var out bytes.Buffer
	s := NewSession(cfg, &out)
	s.Pos.Gen()
	return s
}

func TestParseMoveFindsPawnPush(t *testing.T) {
	pos := engine.NewGame()
	pos.Gen()

	mv, ok := ParseMove(pos, "e2e4")
	require.True(t, ok)
	assert.Equal(t, "e2e4", mv.String())
}

func TestParseMoveRejectsIllegalSquares(t *testing.T) {
	pos := engine.NewGame()
	pos.Gen()

	_, ok := ParseMove(pos, "e2e5")
	assert.False(t, ok)
}

func TestParseMoveDefaultsPromotionToQueen(t *testing.T) {
	pos := &engine.Position{}
	for sq := engine.Square(0); sq < 64; sq++ {
		pos.Color[sq] = engine.NoColor
		pos.Piece[sq] = engine.NoPiece
	}
	from := engine.MapToSquare(0, 1)
	to := engine.MapToSquare(0, 0)
	pos.Color[from] = engine.Light
	pos.Piece[from] = engine.Pawn
	pos.Color[engine.MapToSquare(4, 7)] = engine.Light
	pos.Piece[engine.MapToSquare(4, 7)] = engine.King
	pos.Color[engine.MapToSquare(4, 0)] = engine.Dark
	pos.Piece[engine.MapToSquare(4, 0)] = engine.King
	pos.Side = engine.Light
	pos.XSide = engine.Dark
	pos.EP = engine.NilSquare
	pos.FirstMove[0] = 0
	pos.Hash = pos.SetHash()
	pos.Gen()

	mv, ok := ParseMove(pos, from.String()+to.String())
	require.True(t, ok)
	assert.Equal(t, engine.Queen, mv.Promote)
}

func TestPerftMatchesStartingPositionCounts(t *testing.T) {
	pos := engine.NewGame()
	pos.Gen()

	assert.Equal(t, uint64(20), Perft(pos, 1))
	assert.Equal(t, uint64(400), Perft(pos, 2))
}

func TestRunInteractiveHelp(t *testing.T) {
	s := newTestSession()
	var out bytes.Buffer
	s.Out = &out

	err := s.RunInteractive(strings.NewReader("help\nbye\n"))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "coordinate notation")
}

func TestRunInteractivePlaysLegalMove(t *testing.T) {
	s := newTestSession()
	var out bytes.Buffer
	s.Out = &out

	err := s.RunInteractive(strings.NewReader("e2e4\nbye\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Pos.Hply)
}

func TestRunInteractiveRejectsIllegalMove(t *testing.T) {
	s := newTestSession()
	var out bytes.Buffer
	s.Out = &out

	err := s.RunInteractive(strings.NewReader("e2e5\nbye\n"))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Illegal move")
	assert.Equal(t, 0, s.Pos.Hply)
}

func TestRunBenchReportsPositiveNodeCount(t *testing.T) {
	s := newTestSession()
	s.Search.MaxDepth = 3
	result := s.RunBench()

	assert.Greater(t, result.Nodes, 0)
	assert.GreaterOrEqual(t, result.BestMS, int64(0))
}
