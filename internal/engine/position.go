package engine

// Position is the complete, process-owned state of a game in progress: the
// board arrays, side to move, castling/en-passant/fifty-move state, the
// Zobrist hash, the move-generation ring buffer and the undo history
// stack. A single value owns everything the move
// generator, make/unmake and search touch, per the "one Engine value"
// design note in spec.md §9 — here split as Position (board, move/undo
// stacks, history heuristic) and search.Engine (PV table, node count,
// clocks).
type Position struct {
	Color [64]Color
	Piece [64]PieceType

	Side  Color
	XSide Color

	Castle uint8
	EP     Square
	Fifty  int
	Hash   uint64

	Ply  int // depth from the root of the current search
	Hply int // total half-moves played since the game started

	// Gen is the shared move-generation ring buffer. FirstMove[ply] is the
	// index of the first entry generated at depth ply; generation appends
	// through FirstMove[ply+1].
	Gen       [GenStackSize]GenEntry
	FirstMove [MaxPly + 1]int

	// History is the from/to indexed history heuristic table, boosting
	// quiet moves that have previously caused a beta cutoff.
	History [64][64]int

	// Hist is the undo stack, one entry per half-move played since the
	// game started (indexed by Hply at the time the move was made).
	Hist [HistStackSize]HistEntry
}

// initialColor/initialPiece describe the standard starting array, in this
// package's square numbering (index 0 = a8).
var initialColor = [64]Color{
	Dark, Dark, Dark, Dark, Dark, Dark, Dark, Dark,
	Dark, Dark, Dark, Dark, Dark, Dark, Dark, Dark,
	NoColor, NoColor, NoColor, NoColor, NoColor, NoColor, NoColor, NoColor,
	NoColor, NoColor, NoColor, NoColor, NoColor, NoColor, NoColor, NoColor,
	NoColor, NoColor, NoColor, NoColor, NoColor, NoColor, NoColor, NoColor,
	NoColor, NoColor, NoColor, NoColor, NoColor, NoColor, NoColor, NoColor,
	Light, Light, Light, Light, Light, Light, Light, Light,
	Light, Light, Light, Light, Light, Light, Light, Light,
}

var initialPiece = [64]PieceType{
	Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook,
	Pawn, Pawn, Pawn, Pawn, Pawn, Pawn, Pawn, Pawn,
	NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece,
	NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece,
	NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece,
	NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece,
	Pawn, Pawn, Pawn, Pawn, Pawn, Pawn, Pawn, Pawn,
	Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook,
}

// NewGame returns a Position set to the standard starting position, ported from
// original_source/board.c's init_board.
func NewGame() *Position {
	p := &Position{}
	p.reset(initialColor, initialPiece, Light, CastleAll)
	return p
}

// benchColor/benchPiece are move 17 of Fischer-Sherwin, New Jersey State
// Open Championship, 1957-09-02 — TSCP's fixed benchmark position, ported
// verbatim (in this package's square numbering) from original_source/main.c.
var benchColor = [64]Color{
	NoColor, Dark, Dark, NoColor, NoColor, Dark, Dark, NoColor,
	Dark, NoColor, NoColor, NoColor, NoColor, Dark, Dark, Dark,
	NoColor, Dark, NoColor, Dark, Dark, NoColor, Dark, NoColor,
	NoColor, NoColor, NoColor, Dark, NoColor, NoColor, Light, NoColor,
	NoColor, NoColor, Dark, Light, NoColor, NoColor, NoColor, NoColor,
	NoColor, NoColor, Light, NoColor, NoColor, NoColor, Light, NoColor,
	Light, Light, Light, NoColor, NoColor, Light, Light, Light,
	Light, NoColor, Light, NoColor, Light, NoColor, Light, NoColor,
}

var benchPiece = [64]PieceType{
	NoPiece, Rook, Bishop, NoPiece, NoPiece, Rook, King, NoPiece,
	Pawn, NoPiece, NoPiece, NoPiece, NoPiece, Pawn, Pawn, Pawn,
	NoPiece, Pawn, NoPiece, Queen, Pawn, NoPiece, Knight, NoPiece,
	NoPiece, NoPiece, NoPiece, Knight, NoPiece, NoPiece, Knight, NoPiece,
	NoPiece, NoPiece, Pawn, Pawn, NoPiece, NoPiece, NoPiece, NoPiece,
	NoPiece, NoPiece, Pawn, NoPiece, NoPiece, NoPiece, Pawn, NoPiece,
	Pawn, Pawn, Queen, NoPiece, NoPiece, Pawn, Bishop, Pawn,
	Rook, NoPiece, Bishop, NoPiece, Rook, NoPiece, King, NoPiece,
}

// LoadBench returns a Position set to the fixed benchmark position used by the `bench`
// shell command, with no castling rights and White to move — matching
// original_source/main.c's bench().
func LoadBench() *Position {
	p := &Position{}
	p.reset(benchColor, benchPiece, Light, 0)
	return p
}

func (p *Position) reset(color [64]Color, piece [64]PieceType, side Color, castle uint8) {
	p.Color = color
	p.Piece = piece
	p.Side = side
	p.XSide = side.Opponent()
	p.Castle = castle
	p.EP = NilSquare
	p.Fifty = 0
	p.Ply = 0
	p.Hply = 0
	p.History = [64][64]int{}
	p.Hash = p.SetHash()
	p.FirstMove[0] = 0
}

// PieceAt returns the piece occupying sq, or (NoColor, NoPiece) if empty.
func (p *Position) PieceAt(sq Square) (Color, PieceType) {
	return p.Color[sq], p.Piece[sq]
}

// clearSquare empties sq, preserving the invariant Color==NoColor iff
// Piece==NoPiece (spec.md §8 invariant 1).
func (p *Position) clearSquare(sq Square) {
	p.Color[sq] = NoColor
	p.Piece[sq] = NoPiece
}
