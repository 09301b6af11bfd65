package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tscpgo/internal/engine"
)

// perft counts move paths from pos's current position to depth, mirroring
// internal/shell.Perft without importing it (shell depends on engine, not
// the other way around).
func perft(pos *engine.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	if pos.Ply > 0 {
		pos.Gen()
	}
	start, end := pos.FirstMove[pos.Ply], pos.FirstMove[pos.Ply+1]

	var sum uint64
	for i := start; i < end; i++ {
		mv := pos.Gen[i].Move
		if pos.MakeMove(mv) {
			sum += perft(pos, depth-1)
			pos.TakeBack()
		}
	}
	return sum
}

// TestPerftStartingPosition checks move-path counts from the standard
// starting array against the well-known perft sequence (OEIS A048987 /
// the chess-programming-wiki "Perft Results" table), per spec.md §8.
func TestPerftStartingPosition(t *testing.T) {
	want := []uint64{1, 20, 400, 8902, 197281}

	pos := engine.NewGame()
	pos.Gen()
	for depth, n := range want {
		got := perft(pos, depth)
		assert.Equalf(t, n, got, "perft(%d)", depth)
	}
}

// TestPerftKiwipete exercises castling, en passant and promotions, all
// present in the well-known "Kiwipete" position.
func TestPerftKiwipete(t *testing.T) {
	pos := &engine.Position{}
	setupKiwipete(pos)
	pos.Gen()

	assert.Equal(t, uint64(48), perft(pos, 1))
	assert.Equal(t, uint64(2039), perft(pos, 2))
}

// setupKiwipete places r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1
// directly onto pos's arrays, since this package has no FEN parser (spec.md's
// Non-goals exclude richer position input at the shell surface; tests may
// still construct arbitrary positions directly).
func setupKiwipete(p *engine.Position) {
	for sq := engine.Square(0); sq < 64; sq++ {
		p.Color[sq] = engine.NoColor
		p.Piece[sq] = engine.NoPiece
	}

	place := func(sq engine.Square, c engine.Color, pt engine.PieceType) {
		p.Color[sq] = c
		p.Piece[sq] = pt
	}

	// rank 8
	place(engine.MapToSquare(0, 0), engine.Dark, engine.Rook)
	place(engine.MapToSquare(4, 0), engine.Dark, engine.King)
	place(engine.MapToSquare(7, 0), engine.Dark, engine.Rook)
	// rank 7
	place(engine.MapToSquare(0, 1), engine.Dark, engine.Pawn)
	place(engine.MapToSquare(2, 1), engine.Dark, engine.Pawn)
	place(engine.MapToSquare(3, 1), engine.Dark, engine.Pawn)
	place(engine.MapToSquare(4, 1), engine.Dark, engine.Queen)
	place(engine.MapToSquare(5, 1), engine.Dark, engine.Pawn)
	place(engine.MapToSquare(6, 1), engine.Dark, engine.Bishop)
	// rank 6
	place(engine.MapToSquare(0, 2), engine.Dark, engine.Bishop)
	place(engine.MapToSquare(1, 2), engine.Dark, engine.Knight)
	place(engine.MapToSquare(4, 2), engine.Dark, engine.Pawn)
	place(engine.MapToSquare(5, 2), engine.Dark, engine.Knight)
	place(engine.MapToSquare(6, 2), engine.Dark, engine.Pawn)
	// rank 5
	place(engine.MapToSquare(3, 3), engine.Light, engine.Pawn)
	place(engine.MapToSquare(4, 3), engine.Dark, engine.Knight)
	// rank 4
	place(engine.MapToSquare(1, 4), engine.Dark, engine.Pawn)
	place(engine.MapToSquare(4, 4), engine.Light, engine.Pawn)
	// rank 3
	place(engine.MapToSquare(2, 5), engine.Light, engine.Knight)
	place(engine.MapToSquare(5, 5), engine.Light, engine.Queen)
	place(engine.MapToSquare(7, 5), engine.Dark, engine.Pawn)
	// rank 2
	place(engine.MapToSquare(0, 6), engine.Light, engine.Pawn)
	place(engine.MapToSquare(1, 6), engine.Light, engine.Pawn)
	place(engine.MapToSquare(2, 6), engine.Light, engine.Pawn)
	place(engine.MapToSquare(3, 6), engine.Light, engine.Bishop)
	place(engine.MapToSquare(4, 6), engine.Light, engine.Bishop)
	place(engine.MapToSquare(5, 6), engine.Light, engine.Pawn)
	place(engine.MapToSquare(6, 6), engine.Light, engine.Pawn)
	place(engine.MapToSquare(7, 6), engine.Light, engine.Pawn)
	// rank 1
	place(engine.MapToSquare(0, 7), engine.Light, engine.Rook)
	place(engine.MapToSquare(4, 7), engine.Light, engine.King)
	place(engine.MapToSquare(7, 7), engine.Light, engine.Rook)

	p.Side = engine.Light
	p.XSide = engine.Dark
	p.Castle = engine.CastleAll
	p.EP = engine.NilSquare
	p.Fifty = 0
	p.Ply = 0
	p.Hply = 0
	p.FirstMove[0] = 0
	p.Hash = p.SetHash()
}
