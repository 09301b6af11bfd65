package engine

// Attacked reports whether sq is attacked by any piece of side s, ported
// from original_source/board.c's attack(). It scans every square of side
// s and, for sliding/stepping pieces, reuses the same mailbox direction
// walk as move generation, stopping as soon as the walk reaches sq or is
// blocked by another piece.
func (p *Position) Attacked(sq Square, s Color) bool {
	for from := Square(0); from < 64; from++ {
		if p.Color[from] != s {
			continue
		}
		if p.Piece[from] == Pawn {
			if pawnAttacks(from, s, sq) {
				return true
			}
			continue
		}
		pt := p.Piece[from]
		for d := 0; d < offsets[pt]; d++ {
			to := from
			for {
				var ok bool
				to, ok = step(to, offset[pt][d])
				if !ok {
					break
				}
				if to == sq {
					return true
				}
				if p.Color[to] != NoColor {
					break
				}
				if !slide[pt] {
					break
				}
			}
		}
	}
	return false
}

// pawnAttacks reports whether a pawn of color s on from attacks sq.
func pawnAttacks(from Square, s Color, sq Square) bool {
	file := from.File()
	if s == Light {
		if file != 0 && from+Square(deltaNW) == sq {
			return true
		}
		if file != 7 && from+Square(deltaNE) == sq {
			return true
		}
	} else {
		if file != 0 && from+Square(deltaSW) == sq {
			return true
		}
		if file != 7 && from+Square(deltaSE) == sq {
			return true
		}
	}
	return false
}

// InCheck reports whether side s's king is currently attacked, ported
// from original_source/board.c's in_check().
func (p *Position) InCheck(s Color) bool {
	for sq := Square(0); sq < 64; sq++ {
		if p.Piece[sq] == King && p.Color[sq] == s {
			return p.Attacked(sq, s.Opponent())
		}
	}
	return false // unreachable on any legal position: every side has a king
}
