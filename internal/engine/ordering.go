package engine

// SelectSort finds the highest-scoring move in the current ply's segment
// at or after index from and swaps it into from, so the search loop
// always plays its best remaining candidate next. Ported from
// original_source/search.c's sort().
func (p *Position) SelectSort(from int) {
	best := -1
	bestIdx := from
	end := p.FirstMove[p.Ply+1]
	for i := from; i < end; i++ {
		if p.Gen[i].Score > best {
			best = p.Gen[i].Score
			bestIdx = i
		}
	}
	p.Gen[from], p.Gen[bestIdx] = p.Gen[bestIdx], p.Gen[from]
}

// SortPV scans the current ply's generated segment for a move matching
// pvMove and, if found, boosts its score so the selection sort plays it
// first. Reports whether the PV move was found (the caller should stop
// calling SortPV in this subtree once it returns false). Ported from
// original_source/search.c's sort_pv().
func (p *Position) SortPV(pvMove Move) bool {
	start, end := p.FirstMove[p.Ply], p.FirstMove[p.Ply+1]
	for i := start; i < end; i++ {
		if p.Gen[i].Move.Equal(pvMove) {
			p.Gen[i].Score += 10_000_000
			return true
		}
	}
	return false
}

// Moves returns the current ply's generated move range as a slice view
// (not a copy) for callers that want to iterate without re-deriving the
// FirstMove indices.
func (p *Position) Moves() []GenEntry {
	return p.Gen[p.FirstMove[p.Ply]:p.FirstMove[p.Ply+1]]
}
