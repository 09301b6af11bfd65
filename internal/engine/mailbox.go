package engine

// The mailbox is the classic 12x10 padded board trick: a 120-entry array
// maps padded indices to real square indices (or -1 when off-board), and a
// 64-entry array maps real square indices to their padded index. Walking a
// piece's move directions through the padded array turns "did we fall off
// the board" into a single slice lookup instead of file/rank bounds checks.
var mailbox = [120]int8{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, 0, 1, 2, 3, 4, 5, 6, 7, -1,
	-1, 8, 9, 10, 11, 12, 13, 14, 15, -1,
	-1, 16, 17, 18, 19, 20, 21, 22, 23, -1,
	-1, 24, 25, 26, 27, 28, 29, 30, 31, -1,
	-1, 32, 33, 34, 35, 36, 37, 38, 39, -1,
	-1, 40, 41, 42, 43, 44, 45, 46, 47, -1,
	-1, 48, 49, 50, 51, 52, 53, 54, 55, -1,
	-1, 56, 57, 58, 59, 60, 61, 62, 63, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
}

var mailbox64 [64]int8

func init() {
	for padded, real := range mailbox {
		if real >= 0 {
			mailbox64[real] = int8(padded)
		}
	}
}

// offsets[piece] is the number of directions piece can move in one step.
// Pawns are handled separately with geometric deltas, so their entry is
// unused (zero).
var offsets = [pieceCount]int{
	0, // Pawn
	8, // Knight
	4, // Bishop
	4, // Rook
	8, // Queen
	8, // King
}

// offset[piece][0..offsets[piece]) holds the padded-index deltas for each
// direction a piece can step in.
var offset = [pieceCount][8]int{
	{}, // Pawn (unused)
	{-21, -19, -12, -8, 8, 12, 19, 21}, // Knight
	{-11, -9, 9, 11, 0, 0, 0, 0},       // Bishop
	{-10, -1, 1, 10, 0, 0, 0, 0},       // Rook
	{-11, -10, -9, -1, 1, 9, 10, 11},   // Queen
	{-11, -10, -9, -1, 1, 9, 10, 11},   // King
}

// slide[piece] is true for pieces that slide repeatedly in a direction
// until blocked, rather than stepping once.
var slide = [pieceCount]bool{
	false, // Pawn
	false, // Knight
	true,  // Bishop
	true,  // Rook
	true,  // Queen
	false, // King
}

// Geometric one-step deltas in real square indices (this package's
// numbering: N decreases the index by 8, S increases it by 8).
const (
	deltaN = -8
	deltaS = 8
	deltaE = 1
	deltaW = -1

	deltaNE = deltaN + deltaE
	deltaNW = deltaN + deltaW
	deltaSE = deltaS + deltaE
	deltaSW = deltaS + deltaW

	delta2N = 2 * deltaN
	delta2S = 2 * deltaS
)

// step walks one direction-offset away from sq through the padded mailbox,
// returning the destination square and false if it falls off the board.
func step(sq Square, d int) (Square, bool) {
	padded := int(mailbox64[sq]) + d
	dest := mailbox[padded]
	if dest < 0 {
		return 0, false
	}
	return Square(dest), true
}

// castleMask clears the castling-rights bits associated with a king or
// rook home square whenever a move touches it, ported from
// original_source/board.c's castle_mask table (built there from a switch
// over the eight relevant squares; here as a direct lookup).
var castleMask = buildCastleMask()

func buildCastleMask() [64]uint8 {
	var m [64]uint8
	for i := range m {
		m[i] = CastleAll
	}
	m[SqA1] = CastleAll &^ CastleWQ
	m[SqE1] = CastleAll &^ (CastleWK | CastleWQ)
	m[SqH1] = CastleAll &^ CastleWK
	m[SqA8] = CastleAll &^ CastleBQ
	m[SqE8] = CastleAll &^ (CastleBK | CastleBQ)
	m[SqH8] = CastleAll &^ CastleBK
	return m
}
