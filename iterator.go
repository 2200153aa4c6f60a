package sord

import "github.com/tidwall/btree"

// Iterator is a caller-driven cursor over the quads matching a pattern,
// produced by Model.Find or Model.Begin (spec §4.F). Its zero value is
// not usable; obtain one from a Model.
type Iterator struct {
	model      *Model
	index      *orderedIndex
	order      Order
	pattern    Quad
	mode       iterMode
	prefixLen  int
	skipGraphs bool
	iter       btree.IterG[[4]*Node]
	end        bool
}

func (m *Model) newIteratorFromPlan(p plan, pattern Quad) *Iterator {
	ix, ok := m.indices[p.order]
	if !ok {
		panic("sord: planner chose an unconfigured order")
	}
	it := &Iterator{
		model:      m,
		index:      ix,
		order:      p.order,
		pattern:    pattern,
		mode:       p.mode,
		prefixLen:  p.prefixLen,
		skipGraphs: isGraphless(p.order),
	}

	pivot := buildKey(p.order, pattern)
	iter, found := ix.seek(pivot)
	it.iter = iter
	if !found {
		it.end = true
		return it
	}

	switch p.mode {
	case modeALL, modeSINGLE, modeRANGE:
		if !it.prefixMatches() {
			it.end = true
		}
	case modeFilterRange:
		it.advanceUntilMatchOrDiverge()
	case modeFilterAll:
		it.advanceUntilMatchOrEnd()
	}
	return it
}

// prefixMatches reports whether the cursor's current key agrees with
// the pattern on the first prefixLen storage-key slots.
func (it *Iterator) prefixMatches() bool {
	if it.prefixLen == 0 {
		return true
	}
	cur := it.iter.Item()
	pivot := buildKey(it.order, it.pattern)
	for i := 0; i < it.prefixLen; i++ {
		if pivot[i] != Wildcard && compareNodes(cur[i], pivot[i]) != 0 {
			return false
		}
	}
	return true
}

func (it *Iterator) currentMatchesPattern() bool {
	return unpermute(it.order, it.iter.Item()).Matches(it.pattern)
}

func (it *Iterator) advanceUntilMatchOrDiverge() {
	for {
		if !it.prefixMatches() {
			it.end = true
			return
		}
		if it.currentMatchesPattern() {
			return
		}
		if !it.iter.Next() {
			it.end = true
			return
		}
	}
}

func (it *Iterator) advanceUntilMatchOrEnd() {
	for {
		if it.currentMatchesPattern() {
			return
		}
		if !it.iter.Next() {
			it.end = true
			return
		}
	}
}

// End reports whether the iterator has been exhausted.
func (it *Iterator) End() bool { return it.end }

// Get returns the quad at the cursor's current position. Calling Get
// after End reports true is undefined.
func (it *Iterator) Get() Quad {
	return unpermute(it.order, it.iter.Item())
}

// Next advances the cursor by one logical element (spec §4.F
// "Advance"). For graph-less orders, it collapses a run of entries that
// share the same (S,P,O) but differ only in graph into a single logical
// step, surfacing the graph of the first-visited element of that run
// (see DESIGN.md's Open Question decision).
func (it *Iterator) Next() {
	if it.end {
		return
	}
	prevKey := it.iter.Item()
	if !it.iter.Next() {
		it.end = true
		return
	}
	if it.skipGraphs {
		for comparePrefix(it.iter.Item(), prevKey, 3) == 0 {
			if !it.iter.Next() {
				it.end = true
				return
			}
		}
	}

	switch it.mode {
	case modeALL:
		// Already positioned; index exhaustion is the only end condition.
	case modeSINGLE:
		it.end = true
	case modeRANGE:
		if !it.prefixMatches() {
			it.end = true
		}
	case modeFilterRange:
		it.advanceUntilMatchOrDiverge()
	case modeFilterAll:
		it.advanceUntilMatchOrEnd()
	}
}
