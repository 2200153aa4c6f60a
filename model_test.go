package sord

import "testing"

func TestModelAddAndHas(t *testing.T) {
	w := NewWorld()
	m := NewModel(w)

	s := w.NewIRI([]byte("http://ex.org/s"))
	p := w.NewIRI([]byte("http://ex.org/p"))
	o := w.NewIRI([]byte("http://ex.org/o"))
	q := Quad{S: s, P: p, O: o, G: Wildcard}

	if m.Has(q) {
		t.Fatalf("Has() before Add() => true")
	}
	if !m.Add(q) {
		t.Fatalf("Add() of a fresh quad => false")
	}
	if !m.Has(q) {
		t.Errorf("Has() after Add() => false")
	}
	if m.Add(q) {
		t.Errorf("Add() of an already-stored quad => true; want false")
	}
	if m.NumQuads() != 1 {
		t.Errorf("NumQuads() => %d; want 1", m.NumQuads())
	}
}

func TestModelAddRejectsWildcardInCorePosition(t *testing.T) {
	w := NewWorld()
	m := NewModel(w)
	p := w.NewIRI([]byte("http://ex.org/p"))
	o := w.NewIRI([]byte("http://ex.org/o"))

	if m.Add(Quad{S: Wildcard, P: p, O: o, G: Wildcard}) {
		t.Errorf("Add() with Wildcard subject => true; want false")
	}
	if err := m.Insert(Quad{S: Wildcard, P: p, O: o, G: Wildcard}); err != ErrWildcardPosition {
		t.Errorf("Insert() with Wildcard subject => %v; want %v", err, ErrWildcardPosition)
	}
}

func TestModelRemove(t *testing.T) {
	w := NewWorld()
	m := NewModel(w)

	s := w.NewIRI([]byte("http://ex.org/s"))
	p := w.NewIRI([]byte("http://ex.org/p"))
	o := w.NewIRI([]byte("http://ex.org/o"))
	q := Quad{S: s, P: p, O: o, G: Wildcard}

	m.Add(q)
	m.Remove(q)
	if m.Has(q) {
		t.Errorf("Has() after Remove() => true")
	}
	if m.NumQuads() != 0 {
		t.Errorf("NumQuads() after Remove() => %d; want 0", m.NumQuads())
	}

	// Removing an absent quad is a silent no-op.
	m.Remove(q)
}

func TestModelCrossWorldPanics(t *testing.T) {
	w1 := NewWorld()
	w2 := NewWorld()
	m := NewModel(w1)

	foreign := w2.NewIRI([]byte("http://ex.org/s"))
	p := w1.NewIRI([]byte("http://ex.org/p"))
	o := w1.NewIRI([]byte("http://ex.org/o"))

	defer func() {
		if recover() == nil {
			t.Errorf("Add() with a cross-World Node did not panic")
		}
	}()
	m.Add(Quad{S: foreign, P: p, O: o, G: Wildcard})
}

func TestModelFindDefaultsNilGraphToWildcard(t *testing.T) {
	w := NewWorld()
	m := NewModel(w)
	s := w.NewIRI([]byte("http://ex.org/s"))
	p := w.NewIRI([]byte("http://ex.org/p"))
	o := w.NewIRI([]byte("http://ex.org/o"))
	m.Add(Quad{S: s, P: p, O: o, G: Wildcard})

	it := m.Find(Quad{S: s, P: Wildcard, O: Wildcard})
	if it.End() {
		t.Fatalf("Find() with an unset G found nothing; want the default-graph quad")
	}
	if got := it.Get(); got.S != s || got.O != o {
		t.Errorf("Find() => %v; want subj=%v obj=%v", got, s, o)
	}
}

func TestModelBeginEmpty(t *testing.T) {
	w := NewWorld()
	m := NewModel(w)
	it := m.Begin()
	if !it.End() {
		t.Errorf("Begin() on an empty Model should be immediately exhausted")
	}
}

func TestModelBeginCollapsesGraphs(t *testing.T) {
	w := NewWorld()
	m := NewModel(w, WithGraphIndex(true))

	s := w.NewIRI([]byte("http://ex.org/s"))
	p := w.NewIRI([]byte("http://ex.org/p"))
	o := w.NewIRI([]byte("http://ex.org/o"))
	g1 := w.NewIRI([]byte("http://ex.org/g1"))
	g2 := w.NewIRI([]byte("http://ex.org/g2"))

	m.Add(Quad{S: s, P: p, O: o, G: g1})
	m.Add(Quad{S: s, P: p, O: o, G: g2})
	if m.NumQuads() != 2 {
		t.Fatalf("NumQuads() => %d; want 2", m.NumQuads())
	}

	n := 0
	it := m.Begin()
	for !it.End() {
		n++
		it.Next()
	}
	if n != 1 {
		t.Errorf("Begin() surfaced %d logical elements for one (S,P,O) under two graphs; want 1 (graph-collapsed)", n)
	}
}

func TestModelAllQuadsDoesNotCollapse(t *testing.T) {
	w := NewWorld()
	m := NewModel(w, WithGraphIndex(true))

	s := w.NewIRI([]byte("http://ex.org/s"))
	p := w.NewIRI([]byte("http://ex.org/p"))
	o := w.NewIRI([]byte("http://ex.org/o"))
	g1 := w.NewIRI([]byte("http://ex.org/g1"))
	g2 := w.NewIRI([]byte("http://ex.org/g2"))

	m.Add(Quad{S: s, P: p, O: o, G: g1})
	m.Add(Quad{S: s, P: p, O: o, G: g2})

	it, ok := m.AllQuads()
	if !ok {
		t.Fatalf("AllQuads() => ok=false with a graph index configured")
	}
	n := 0
	for !it.End() {
		n++
		it.Next()
	}
	if n != 2 {
		t.Errorf("AllQuads() surfaced %d elements; want 2 (non-collapsed)", n)
	}
}

func TestModelAllQuadsWithoutGraphIndex(t *testing.T) {
	w := NewWorld()
	m := NewModel(w)
	s := w.NewIRI([]byte("http://ex.org/s"))
	p := w.NewIRI([]byte("http://ex.org/p"))
	o := w.NewIRI([]byte("http://ex.org/o"))
	m.Add(Quad{S: s, P: p, O: o, G: Wildcard})

	if _, ok := m.AllQuads(); ok {
		t.Errorf("AllQuads() => ok=true without a graph-prefixed index configured")
	}
}

func TestModelDescribe(t *testing.T) {
	w := NewWorld()
	m := NewModel(w, WithIndexes(IndexOSP))

	s := w.NewIRI([]byte("http://ex.org/s"))
	p := w.NewIRI([]byte("http://ex.org/p"))
	o := w.NewIRI([]byte("http://ex.org/o"))
	other := w.NewIRI([]byte("http://ex.org/other"))

	m.Add(Quad{S: s, P: p, O: o, G: Wildcard})
	m.Add(Quad{S: other, P: p, O: s, G: Wildcard})

	asSubj := m.Describe(s, false)
	if len(asSubj) != 1 {
		t.Fatalf("Describe(s, false) => %d quads; want 1", len(asSubj))
	}

	both := m.Describe(s, true)
	if len(both) != 2 {
		t.Errorf("Describe(s, true) => %d quads; want 2", len(both))
	}
}
