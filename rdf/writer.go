package rdf

import (
	"fmt"
	"io"

	sord "github.com/insilications/sord-clr"
)

// nodeText renders a Node the way it appears in Turtle/N-Quads output.
// When pm is non-nil and shrink is true, IRIs are shortened to prefixed
// names or base-relative form where possible.
func nodeText(n *sord.Node, pm *PrefixMap, shrink bool) string {
	switch n.Kind() {
	case sord.KindIRI:
		if shrink && pm != nil {
			return pm.Shrink(URI(n.String()))
		}
		return fmt.Sprintf("<%s>", n.String())
	case sord.KindBlank:
		return "_:" + n.String()
	case sord.KindLiteral:
		dt := n.Datatype()
		switch {
		case dt != nil && dt.String() == sord.RDFLangString:
			return fmt.Sprintf("%q@%s", n.String(), n.Language())
		case dt != nil && dt.String() == sord.XSDString:
			return fmt.Sprintf("%q", n.String())
		case dt != nil:
			return fmt.Sprintf("%q^^<%s>", n.String(), dt.String())
		default:
			return fmt.Sprintf("%q", n.String())
		}
	default:
		return ""
	}
}

// WriteTurtle serializes every quad in m as Turtle, shrinking IRIs with
// pm (may be nil). Turtle has no native graph syntax, so this walks
// Model.Begin's graph-collapsing iteration: each distinct (S,P,O) is
// written once regardless of how many graphs it was stored under
// (SPEC_FULL.md §12, replacing the teacher's DB.Dump).
func WriteTurtle(w io.Writer, m *sord.Model, pm *PrefixMap) error {
	if pm != nil && pm.Base != "" {
		if _, err := fmt.Fprintf(w, "@base <%s> .\n", pm.Base); err != nil {
			return fmt.Errorf("sord/rdf: writing turtle base: %w", err)
		}
	}
	it := m.Begin()
	for !it.End() {
		q := it.Get()
		_, err := fmt.Fprintf(w, "%s %s %s .\n",
			nodeText(q.S, pm, true), nodeText(q.P, pm, true), nodeText(q.O, pm, true))
		if err != nil {
			return fmt.Errorf("sord/rdf: writing turtle statement: %w", err)
		}
		it.Next()
	}
	return nil
}

// WriteNQuads serializes every quad in m as N-Quads, one line per
// stored quad, including a graph term whenever one is present (the
// wildcard default-graph sentinel is omitted, per the N-Quads grammar).
// Unlike WriteTurtle, this never collapses by graph, so it requires a
// graph-prefixed index; ok is false if the Model was not built with
// WithGraphIndex(true) (SPEC_FULL.md §12).
func WriteNQuads(w io.Writer, m *sord.Model) (ok bool, err error) {
	it, ok := m.AllQuads()
	if !ok {
		return false, nil
	}
	for !it.End() {
		q := it.Get()
		if q.G == sord.Wildcard {
			_, err = fmt.Fprintf(w, "%s %s %s .\n", nodeText(q.S, nil, false), nodeText(q.P, nil, false), nodeText(q.O, nil, false))
		} else {
			_, err = fmt.Fprintf(w, "%s %s %s %s .\n", nodeText(q.S, nil, false), nodeText(q.P, nil, false), nodeText(q.O, nil, false), nodeText(q.G, nil, false))
		}
		if err != nil {
			return true, fmt.Errorf("sord/rdf: writing n-quads statement: %w", err)
		}
		it.Next()
	}
	return true, nil
}
