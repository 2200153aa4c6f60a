package rdf

import (
	"errors"
	"fmt"
	"io"

	sord "github.com/insilications/sord-clr"
)

// internTerm interns an rdf.Term into a sord.Node. Literal carries its
// own datatype/language; blank nodes and IRIs intern by their lexical
// text directly.
func internTerm(w *sord.World, t Term) *sord.Node {
	switch v := t.(type) {
	case URI:
		return w.NewIRI([]byte(v))
	case Blank:
		return w.NewBlank([]byte(v))
	case Literal:
		var dt *sord.Node
		if v.DataType() != "" {
			dt = w.NewIRI([]byte(v.DataType()))
		}
		n := w.NewLiteral(dt, []byte(v.String()), v.Lang())
		if dt != nil {
			// NewLiteral took its own internal reference on dt; release
			// the handle this function took via NewIRI above.
			w.Release(dt)
		}
		return n
	default:
		return nil
	}
}

// LoadTurtle reads Turtle/N-Triples from r, interning every term into
// world and adding the resulting triples to m in the default graph. It
// returns the number of triples added (duplicates and blank-node-only
// restrictions aside, this equals the number of statements read) and
// the first decode error other than io.EOF (SPEC_FULL.md "Loader").
func LoadTurtle(r io.Reader, world *sord.World, m *sord.Model) (n int, err error) {
	dec := NewDecoder(r)
	for {
		tr, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, fmt.Errorf("sord/rdf: decoding turtle: %w", err)
		}
		s := internTerm(world, tr.Subj)
		p := world.NewIRI([]byte(tr.Pred))
		o := internTerm(world, tr.Obj)
		if m.Add(sord.Quad{S: s, P: p, O: o, G: sord.Wildcard}) {
			n++
		}
		world.Release(s)
		world.Release(p)
		world.Release(o)
	}
}

// LoadNQuads reads N-Quads from r, interning every term into world and
// adding the resulting quads to m (statements with no graph term land
// in the default graph) (SPEC_FULL.md §12, "Loader").
func LoadNQuads(r io.Reader, world *sord.World, m *sord.Model) (n int, err error) {
	dec := NewQuadDecoder(r)
	for {
		q, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, fmt.Errorf("sord/rdf: decoding n-quads: %w", err)
		}
		s := internTerm(world, q.Subj)
		p := world.NewIRI([]byte(q.Pred))
		o := internTerm(world, q.Obj)
		g := sord.Wildcard
		if q.Graph != nil {
			g = internTerm(world, q.Graph)
		}
		if m.Add(sord.Quad{S: s, P: p, O: o, G: g}) {
			n++
		}
		world.Release(s)
		world.Release(p)
		world.Release(o)
		if g != sord.Wildcard {
			world.Release(g)
		}
	}
}
