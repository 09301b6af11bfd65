package shell

import "tscpgo/internal/engine"

// Perft counts the number of move paths from pos's current position to
// the given depth, ported from original_source/main.c's perft_aux().
// It mutates and restores pos via MakeMove/TakeBack but leaves Ply
// exactly as it found it.
func Perft(pos *engine.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	if pos.Ply > 0 {
		pos.Gen()
	}
	start, end := pos.FirstMove[pos.Ply], pos.FirstMove[pos.Ply+1]

	if depth == 1 {
		var count uint64
		for i := start; i < end; i++ {
			if pos.MakeMove(pos.Gen[i].Move) {
				count++
				pos.TakeBack()
			}
		}
		return count
	}

	var sum uint64
	for i := start; i < end; i++ {
		mv := pos.Gen[i].Move
		if pos.MakeMove(mv) {
			sum += Perft(pos, depth-1)
			pos.TakeBack()
		}
	}
	return sum
}
