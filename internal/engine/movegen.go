package engine

// Gen generates pseudo-legal moves for Side to move into the current
// ply's segment of the shared move stack, ported from
// original_source/board.c's gen(). Castling and en-passant legality is
// only fully verified by MakeMove; Gen emits the candidate moves
// unconditionally (castling) or geometrically (en passant).
func (p *Position) Gen() {
	p.FirstMove[p.Ply+1] = p.FirstMove[p.Ply]

	for from := Square(0); from < 64; from++ {
		if p.Color[from] != p.Side {
			continue
		}
		if p.Piece[from] == Pawn {
			p.genPawnMoves(from, true)
			continue
		}
		p.genPieceMoves(from, true)
	}

	if p.Side == Light {
		if p.Castle&CastleWK != 0 {
			p.genPush(SqE1, SqG1, FlagCastle)
		}
		if p.Castle&CastleWQ != 0 {
			p.genPush(SqE1, SqC1, FlagCastle)
		}
	} else {
		if p.Castle&CastleBK != 0 {
			p.genPush(SqE8, SqG8, FlagCastle)
		}
		if p.Castle&CastleBQ != 0 {
			p.genPush(SqE8, SqC8, FlagCastle)
		}
	}

	p.genEnPassant()
}

// GenCaps is Gen restricted to captures and promotions, ported from
// original_source/board.c's gen_caps(). It is used by quiescence search.
func (p *Position) GenCaps() {
	p.FirstMove[p.Ply+1] = p.FirstMove[p.Ply]

	for from := Square(0); from < 64; from++ {
		if p.Color[from] != p.Side {
			continue
		}
		if p.Piece[from] == Pawn {
			p.genPawnMoves(from, false)
			continue
		}
		p.genPieceMoves(from, false)
	}

	p.genEnPassant()
}

// genPawnMoves emits from's pawn moves. When quiet is false, only
// promotion-producing single pushes and captures are emitted (GenCaps).
func (p *Position) genPawnMoves(from Square, quiet bool) {
	file := from.File()
	if p.Side == Light {
		if file != 0 && p.Color[from+Square(deltaNW)] == Dark {
			p.genPush(from, from+Square(deltaNW), FlagPawnMove|FlagCapture)
		}
		if file != 7 && p.Color[from+Square(deltaNE)] == Dark {
			p.genPush(from, from+Square(deltaNE), FlagPawnMove|FlagCapture)
		}
		if quiet {
			if p.Color[from+Square(deltaN)] == NoColor {
				p.genPush(from, from+Square(deltaN), FlagPawnMove)
				if from.Rank() == 6 && p.Color[from+Square(delta2N)] == NoColor {
					p.genPush(from, from+Square(delta2N), FlagPawnMove|FlagDoubleAdvance)
				}
			}
		} else if from.Rank() == 1 && p.Color[from+Square(deltaN)] == NoColor {
			p.genPush(from, from+Square(deltaN), FlagPawnMove)
		}
	} else {
		if file != 0 && p.Color[from+Square(deltaSW)] == Light {
			p.genPush(from, from+Square(deltaSW), FlagPawnMove|FlagCapture)
		}
		if file != 7 && p.Color[from+Square(deltaSE)] == Light {
			p.genPush(from, from+Square(deltaSE), FlagPawnMove|FlagCapture)
		}
		if quiet {
			if p.Color[from+Square(deltaS)] == NoColor {
				p.genPush(from, from+Square(deltaS), FlagPawnMove)
				if from.Rank() == 1 && p.Color[from+Square(delta2S)] == NoColor {
					p.genPush(from, from+Square(delta2S), FlagPawnMove|FlagDoubleAdvance)
				}
			}
		} else if from.Rank() == 6 && p.Color[from+Square(deltaS)] == NoColor {
			p.genPush(from, from+Square(deltaS), FlagPawnMove)
		}
	}
}

// genPieceMoves emits from's non-pawn moves by walking the mailbox
// direction table. When quiet is false, only captures are emitted.
func (p *Position) genPieceMoves(from Square, quiet bool) {
	pt := p.Piece[from]
	for d := 0; d < offsets[pt]; d++ {
		to := from
		for {
			next, ok := step(to, offset[pt][d])
			if !ok {
				break
			}
			to = next
			if p.Color[to] != NoColor {
				if p.Color[to] == p.XSide {
					p.genPush(from, to, FlagCapture)
				}
				break
			}
			if quiet {
				p.genPush(from, to, 0)
			}
			if !slide[pt] {
				break
			}
		}
	}
}

// genEnPassant emits the one or two pawn captures that reach p.EP, if an
// en-passant target is set.
func (p *Position) genEnPassant() {
	if p.EP == NilSquare {
		return
	}
	file := p.EP.File()
	flags := FlagPawnMove | FlagEnPassant | FlagCapture
	if p.Side == Light {
		if file != 0 && p.Color[p.EP+Square(deltaSW)] == Light && p.Piece[p.EP+Square(deltaSW)] == Pawn {
			p.genPush(p.EP+Square(deltaSW), p.EP, flags)
		}
		if file != 7 && p.Color[p.EP+Square(deltaSE)] == Light && p.Piece[p.EP+Square(deltaSE)] == Pawn {
			p.genPush(p.EP+Square(deltaSE), p.EP, flags)
		}
	} else {
		if file != 0 && p.Color[p.EP+Square(deltaNW)] == Dark && p.Piece[p.EP+Square(deltaNW)] == Pawn {
			p.genPush(p.EP+Square(deltaNW), p.EP, flags)
		}
		if file != 7 && p.Color[p.EP+Square(deltaNE)] == Dark && p.Piece[p.EP+Square(deltaNE)] == Pawn {
			p.genPush(p.EP+Square(deltaNE), p.EP, flags)
		}
	}
}

// genPush appends a move to the current ply's segment of the move stack,
// scoring it for move ordering. A pawn move landing on the far rank is
// redirected to genPromote instead of being pushed directly, ported from
// original_source/board.c's gen_push/gen_promote.
func (p *Position) genPush(from, to Square, bits uint8) {
	if bits&FlagPawnMove != 0 {
		farRank := 0
		if p.Side == Dark {
			farRank = 7
		}
		if to.Rank() == farRank {
			p.genPromote(from, to, bits)
			return
		}
	}
	idx := p.FirstMove[p.Ply+1]
	p.Gen[idx].Move = Move{From: from, To: to, Promote: NoPiece, Bits: bits}
	if p.Color[to] != NoColor {
		p.Gen[idx].Score = 1_000_000 + 10*int(p.Piece[to]) - int(p.Piece[from])
	} else {
		p.Gen[idx].Score = p.History[from][to]
	}
	p.FirstMove[p.Ply+1]++
}

// genPromote pushes the four promotion variants of a pawn move reaching
// the far rank, ported from original_source/board.c's gen_promote.
func (p *Position) genPromote(from, to Square, bits uint8) {
	for pt := Knight; pt <= Queen; pt++ {
		idx := p.FirstMove[p.Ply+1]
		p.Gen[idx].Move = Move{From: from, To: to, Promote: pt, Bits: bits | FlagPromote}
		p.Gen[idx].Score = 1_000_000 + 10*int(pt)
		p.FirstMove[p.Ply+1]++
	}
}
