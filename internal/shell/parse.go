package shell

import (
	"tscpgo/internal/engine"
)

// ParseMove resolves coordinate notation (e.g. "e2e4", "e7e8q") against
// pos's currently generated ply-0 moves, returning the matching
// pseudo-legal move. It does not call MakeMove. Ported from
// original_source/main.c's parse_move(). For a promotion it scans the
// entries from the first matching from/to move onward for the variant
// with the requested piece (Queen when no letter is given).
func ParseMove(pos *engine.Position, s string) (engine.Move, bool) {
	from, to, promote, hasPromote, err := engine.ParseCoordinates(s)
	if err != nil {
		return engine.Move{}, false
	}

	start, end := pos.FirstMove[0], pos.FirstMove[1]
	for i := start; i < end; i++ {
		mv := pos.Gen[i].Move
		if mv.From != from || mv.To != to {
			continue
		}
		if mv.Bits&engine.FlagPromote != 0 {
			want := promote
			if !hasPromote {
				want = engine.Queen
			}
			for j := i; j < end; j++ {
				cand := pos.Gen[j].Move
				if cand.From == from && cand.To == to && cand.Promote == want {
					return cand, true
				}
			}
			return engine.Move{}, false
		}
		return mv, true
	}
	return engine.Move{}, false
}
