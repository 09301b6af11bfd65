package engine

// castleRook describes the rook's from/to squares for a given castling
// destination square, ported from spec.md §6's castling geometry table.
type castleRook struct {
	pathClear []Square
	pathSafe  []Square
	rookFrom  Square
	rookTo    Square
}

var castleRooks = map[Square]castleRook{
	SqG1: {pathClear: []Square{SqF1, SqG1}, pathSafe: []Square{SqF1, SqG1}, rookFrom: SqH1, rookTo: SqF1},
	SqC1: {pathClear: []Square{SqB1, SqC1, SqD1}, pathSafe: []Square{SqC1, SqD1}, rookFrom: SqA1, rookTo: SqD1},
	SqG8: {pathClear: []Square{SqF8, SqG8}, pathSafe: []Square{SqF8, SqG8}, rookFrom: SqH8, rookTo: SqF8},
	SqC8: {pathClear: []Square{SqB8, SqC8, SqD8}, pathSafe: []Square{SqC8, SqD8}, rookFrom: SqA8, rookTo: SqD8},
}

// MakeMove applies m and reports whether it was legal. On failure the
// board is left exactly as it was before the call (any partial mutation
// is reverted via TakeBack before returning). Ported from
// original_source/board.c's makemove().
func (p *Position) MakeMove(m Move) bool {
	var castle castleRook
	if m.Bits&FlagCastle != 0 {
		if p.InCheck(p.Side) {
			return false
		}
		var ok bool
		castle, ok = castleRooks[m.To]
		if !ok {
			return false
		}
		for _, sq := range castle.pathClear {
			if p.Color[sq] != NoColor {
				return false
			}
		}
		for _, sq := range castle.pathSafe {
			if p.Attacked(sq, p.XSide) {
				return false
			}
		}
		p.Color[castle.rookTo] = p.Side
		p.Piece[castle.rookTo] = Rook
		p.clearSquare(castle.rookFrom)
	}

	p.Hist[p.Hply] = HistEntry{
		Move:    m,
		Capture: p.Piece[m.To],
		Castle:  p.Castle,
		EP:      p.EP,
		Fifty:   p.Fifty,
		Hash:    p.Hash,
	}
	p.Ply++
	p.Hply++

	p.Castle &= castleMask[m.From] & castleMask[m.To]
	if m.Bits&FlagDoubleAdvance != 0 {
		if p.Side == Light {
			p.EP = m.To + Square(deltaS)
		} else {
			p.EP = m.To + Square(deltaN)
		}
	} else {
		p.EP = NilSquare
	}
	if m.Bits&(FlagPawnMove|FlagCapture) != 0 {
		p.Fifty = 0
	} else {
		p.Fifty++
	}

	p.Color[m.To] = p.Side
	if m.Bits&FlagPromote != 0 {
		p.Piece[m.To] = m.Promote
	} else {
		p.Piece[m.To] = p.Piece[m.From]
	}
	p.clearSquare(m.From)

	if m.Bits&FlagEnPassant != 0 {
		if p.Side == Light {
			p.clearSquare(m.To + Square(deltaS))
		} else {
			p.clearSquare(m.To + Square(deltaN))
		}
	}

	p.Side, p.XSide = p.XSide, p.Side
	if p.InCheck(p.XSide) {
		p.TakeBack()
		return false
	}
	p.Hash = p.SetHash()
	return true
}

// TakeBack reverses the most recently applied move, restoring every byte
// of observable state (board arrays, side, castling/ep/fifty/hash,
// ply/hply) exactly as it was before the matching MakeMove call. Ported
// from original_source/board.c's takeback().
func (p *Position) TakeBack() {
	p.Side, p.XSide = p.XSide, p.Side
	p.Ply--
	p.Hply--

	h := p.Hist[p.Hply]
	m := h.Move
	p.Castle = h.Castle
	p.EP = h.EP
	p.Fifty = h.Fifty
	p.Hash = h.Hash

	if m.Bits&FlagPromote != 0 {
		p.Piece[m.From] = Pawn
	} else {
		p.Piece[m.From] = p.Piece[m.To]
	}
	p.Color[m.From] = p.Side

	if h.Capture == NoPiece {
		p.clearSquare(m.To)
	} else {
		p.Color[m.To] = p.XSide
		p.Piece[m.To] = h.Capture
	}

	if m.Bits&FlagCastle != 0 {
		castle := castleRooks[m.To]
		p.Color[castle.rookFrom] = p.Side
		p.Piece[castle.rookFrom] = Rook
		p.clearSquare(castle.rookTo)
	}

	if m.Bits&FlagEnPassant != 0 {
		if p.Side == Light {
			p.Color[m.To+Square(deltaS)] = p.XSide
			p.Piece[m.To+Square(deltaS)] = Pawn
		} else {
			p.Color[m.To+Square(deltaN)] = p.XSide
			p.Piece[m.To+Square(deltaN)] = Pawn
		}
	}
}
