// Package eval implements the static position evaluator, ported from
// original_source/eval.c with one deliberate correction: the original
// file's piece_value table is corrupted ({900, 850, 250, 60, -150,
// -2700} for pawn..king) and is not reproduced here. This package uses
// the conventional material scale every other evaluator in the pack
// uses (the teacher's internal/bot/eval.go piece_values map, scaled to
// centipawns), while keeping every positional term — piece-square
// tables, pawn structure penalties, rook file bonuses, king safety
// scaling — bit-for-bit faithful to the original.
package eval

import "tscpgo/internal/engine"

const (
	doubledPawnPenalty    = 10
	isolatedPawnPenalty   = 20
	backwardsPawnPenalty  = 8
	passedPawnBonus       = 20
	rookSemiOpenFileBonus = 10
	rookOpenFileBonus     = 15
	rookOnSeventhBonus    = 20
)

// pieceValue holds the material worth of each piece type in centipawns,
// indexed by engine.PieceType. The king is never counted as material.
var pieceValue = [6]int{
	engine.Pawn:   100,
	engine.Knight: 300,
	engine.Bishop: 325,
	engine.Rook:   500,
	engine.Queen:  900,
	engine.King:   0,
}

var pawnPCSQ = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 15, 20, 20, 15, 10, 5,
	4, 8, 12, 16, 16, 12, 8, 4,
	3, 6, 9, 12, 12, 9, 6, 3,
	2, 4, 6, 8, 8, 6, 4, 2,
	1, 2, 3, -10, -10, 3, 2, 1,
	0, 0, 0, -40, -40, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPCSQ = [64]int{
	-10, -10, -10, -10, -10, -10, -10, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, -30, -10, -10, -10, -10, -30, -10,
}

var bishopPCSQ = [64]int{
	-10, -10, -10, -10, -10, -10, -10, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, -10, -20, -10, -10, -20, -10, -10,
}

var kingPCSQ = [64]int{
	-10, -10, -10, -10, -10, -10, -10, -10,
	-10, -20, -20, -20, -20, -20, -20, -10,
	-10, -20, -40, -40, -40, -40, -20, -10,
	-10, -20, -40, -70, -70, -40, -20, -10,
	-10, -20, -40, -70, -70, -40, -20, -10,
	-10, -20, -40, -40, -40, -40, -20, -10,
	-10, -20, -20, -20, -20, -20, -20, -10,
	-10, -10, -10, -10, -10, -10, -10, -10,
}

var kingEndgamePCSQ = [64]int{
	-10, -10, -10, -10, -10, -10, -10, -10,
	-10, -20, -20, -20, -20, -20, -20, -10,
	-10, -20, -40, -40, -40, -40, -20, -10,
	-10, -20, -40, -70, -70, -40, -20, -10,
	-10, -20, -40, -70, -70, -40, -20, -10,
	-10, -20, -40, -40, -40, -40, -20, -10,
	-10, -20, -20, -20, -20, -20, -20, -10,
	-10, -10, -10, -10, -10, -10, -10, -10,
}

// flip mirrors a square vertically, used to evaluate Dark pieces against
// the Light piece-square tables above: flip(sq) keeps the file and
// reflects the rank.
func flip(sq engine.Square) engine.Square {
	return engine.MapToSquare(sq.File(), 7-sq.Rank())
}

// Evaluate scores pos from the perspective of the side to move, ported
// from original_source/eval.c's eval(). Positive means better for the
// side to move.
func Evaluate(pos *engine.Position) int {
	var pawnRank [2][10]int
	for f := 0; f < 10; f++ {
		pawnRank[engine.Light][f] = 0
		pawnRank[engine.Dark][f] = 7
	}

	var pieceMat, pawnMat [2]int
	for sq := engine.Square(0); sq < 64; sq++ {
		color, piece := pos.PieceAt(sq)
		if color == engine.NoColor {
			continue
		}
		if piece == engine.Pawn {
			pawnMat[color] += pieceValue[engine.Pawn]
			file := sq.File() + 1
			if color == engine.Light {
				if pawnRank[engine.Light][file] < sq.Rank() {
					pawnRank[engine.Light][file] = sq.Rank()
				}
			} else {
				if pawnRank[engine.Dark][file] > sq.Rank() {
					pawnRank[engine.Dark][file] = sq.Rank()
				}
			}
		} else {
			pieceMat[color] += pieceValue[piece]
		}
	}

	var score [2]int
	score[engine.Light] = pieceMat[engine.Light] + pawnMat[engine.Light]
	score[engine.Dark] = pieceMat[engine.Dark] + pawnMat[engine.Dark]

	for sq := engine.Square(0); sq < 64; sq++ {
		color, piece := pos.PieceAt(sq)
		if color == engine.NoColor {
			continue
		}
		if color == engine.Light {
			switch piece {
			case engine.Pawn:
				score[engine.Light] += evalLightPawn(sq, pawnRank)
			case engine.Knight:
				score[engine.Light] += knightPCSQ[sq]
			case engine.Bishop:
				score[engine.Light] += bishopPCSQ[sq]
			case engine.Rook:
				score[engine.Light] += evalRook(sq, pawnRank[engine.Light][sq.File()+1] == 0, pawnRank[engine.Dark][sq.File()+1] == 7, sq.Rank() == 1)
			case engine.King:
				if pieceMat[engine.Dark] <= 1200 {
					score[engine.Light] += kingEndgamePCSQ[sq]
				} else {
					score[engine.Light] += evalLightKing(sq, pawnRank, pieceMat[engine.Dark])
				}
			}
		} else {
			switch piece {
			case engine.Pawn:
				score[engine.Dark] += evalDarkPawn(sq, pawnRank)
			case engine.Knight:
				score[engine.Dark] += knightPCSQ[flip(sq)]
			case engine.Bishop:
				score[engine.Dark] += bishopPCSQ[flip(sq)]
			case engine.Rook:
				score[engine.Dark] += evalRook(sq, pawnRank[engine.Dark][sq.File()+1] == 7, pawnRank[engine.Light][sq.File()+1] == 0, sq.Rank() == 6)
			case engine.King:
				if pieceMat[engine.Light] <= 1200 {
					score[engine.Dark] += kingEndgamePCSQ[flip(sq)]
				} else {
					score[engine.Dark] += evalDarkKing(sq, pawnRank, pieceMat[engine.Light])
				}
			}
		}
	}

	if pos.Side == engine.Light {
		return score[engine.Light] - score[engine.Dark]
	}
	return score[engine.Dark] - score[engine.Light]
}

func evalRook(sq engine.Square, ownFileOpen, noEnemyPawn, onSeventh bool) int {
	r := 0
	if ownFileOpen {
		if noEnemyPawn {
			r += rookOpenFileBonus
		} else {
			r += rookSemiOpenFileBonus
		}
	}
	if onSeventh {
		r += rookOnSeventhBonus
	}
	return r
}

func evalLightPawn(sq engine.Square, pawnRank [2][10]int) int {
	f := sq.File() + 1
	r := pawnPCSQ[sq]

	if pawnRank[engine.Light][f] > sq.Rank() {
		r -= doubledPawnPenalty
	}
	if pawnRank[engine.Light][f-1] == 0 && pawnRank[engine.Light][f+1] == 0 {
		r -= isolatedPawnPenalty
	} else if pawnRank[engine.Light][f-1] < sq.Rank() && pawnRank[engine.Light][f+1] < sq.Rank() {
		r -= backwardsPawnPenalty
	}
	if pawnRank[engine.Dark][f-1] >= sq.Rank() && pawnRank[engine.Dark][f] >= sq.Rank() && pawnRank[engine.Dark][f+1] >= sq.Rank() {
		r += (7 - sq.Rank()) * passedPawnBonus
	}
	return r
}

func evalDarkPawn(sq engine.Square, pawnRank [2][10]int) int {
	f := sq.File() + 1
	r := pawnPCSQ[flip(sq)]

	if pawnRank[engine.Dark][f] < sq.Rank() {
		r -= doubledPawnPenalty
	}
	if pawnRank[engine.Dark][f-1] == 7 && pawnRank[engine.Dark][f+1] == 7 {
		r -= isolatedPawnPenalty
	} else if pawnRank[engine.Dark][f-1] > sq.Rank() && pawnRank[engine.Dark][f+1] > sq.Rank() {
		r -= backwardsPawnPenalty
	}
	if pawnRank[engine.Light][f-1] <= sq.Rank() && pawnRank[engine.Light][f] <= sq.Rank() && pawnRank[engine.Light][f+1] <= sq.Rank() {
		r += sq.Rank() * passedPawnBonus
	}
	return r
}

func evalLightKing(sq engine.Square, pawnRank [2][10]int, darkMat int) int {
	r := kingPCSQ[sq]
	file := sq.File()
	switch {
	case file < 3:
		r += evalLKP(pawnRank, 1)
		r += evalLKP(pawnRank, 2)
		r += evalLKP(pawnRank, 3) / 2
	case file > 4:
		r += evalLKP(pawnRank, 8)
		r += evalLKP(pawnRank, 7)
		r += evalLKP(pawnRank, 6) / 2
	default:
		for i := file; i <= file+2; i++ {
			if pawnRank[engine.Light][i] == 0 && pawnRank[engine.Dark][i] == 7 {
				r -= 10
			}
		}
	}
	r *= darkMat
	r /= 3100
	return r
}

func evalLKP(pawnRank [2][10]int, f int) int {
	r := 0
	switch pawnRank[engine.Light][f] {
	case 6:
	case 5:
		r -= 10
	case 0:
		r -= 25
	default:
		r -= 20
	}
	switch pawnRank[engine.Dark][f] {
	case 7:
		r -= 15
	case 5:
		r -= 10
	case 4:
		r -= 5
	}
	return r
}

func evalDarkKing(sq engine.Square, pawnRank [2][10]int, lightMat int) int {
	r := kingPCSQ[flip(sq)]
	file := sq.File()
	switch {
	case file < 3:
		r += evalDKP(pawnRank, 1)
		r += evalDKP(pawnRank, 2)
		r += evalDKP(pawnRank, 3) / 2
	case file > 4:
		r += evalDKP(pawnRank, 8)
		r += evalDKP(pawnRank, 7)
		r += evalDKP(pawnRank, 6) / 2
	default:
		for i := file; i <= file+2; i++ {
			if pawnRank[engine.Light][i] == 0 && pawnRank[engine.Dark][i] == 7 {
				r -= 10
			}
		}
	}
	r *= lightMat
	r /= 3100
	return r
}

func evalDKP(pawnRank [2][10]int, f int) int {
	r := 0
	switch pawnRank[engine.Dark][f] {
	case 1:
	case 2:
		r -= 10
	case 7:
		r -= 25
	default:
		r -= 20
	}
	switch pawnRank[engine.Light][f] {
	case 0:
		r -= 15
	case 2:
		r -= 10
	case 3:
		r -= 5
	}
	return r
}
