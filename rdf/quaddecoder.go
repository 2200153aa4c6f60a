package rdf

import (
	"fmt"
	"io"
)

// Quad represents one N-Quads statement: a Triple plus an optional
// graph term. Graph is nil for statements in the default graph
// (SPEC_FULL.md §12 "N-Quads reading").
type Quad struct {
	Subj  Term
	Pred  URI
	Obj   Term
	Graph Term // nil means the default graph
}

// QuadDecoder is a streaming decoder for N-Quads: the same grammar as
// the Turtle Decoder's triples, plus an optional graph term (URI or
// blank node) before the terminating dot.
type QuadDecoder struct {
	d *Decoder
}

// NewQuadDecoder returns a new QuadDecoder over the given stream.
func NewQuadDecoder(r io.Reader) *QuadDecoder {
	return &QuadDecoder{d: NewDecoder(r)}
}

// Decode returns the next Quad in the input stream, or an error. The
// error io.EOF signifies the end of the stream.
//
// N-Quads never chains subjects/predicates across statements the way
// Turtle's ";"/"," do, so each call parses one full, independent
// statement: subject, predicate, object, an optional graph term, then
// a dot.
func (qd *QuadDecoder) Decode() (Quad, error) {
	var q Quad

	subj, err := qd.d.parseSubjectTerm()
	if err != nil {
		return q, err
	}
	pred, err := qd.d.parseURI()
	if err != nil {
		return q, err
	}

	tok := qd.d.scanner.Scan()
	var obj Term
	var tail token
	haveTail := false
	switch tok.Type {
	case tokenURI:
		obj = NewURI(tok.Text)
	case tokenBNode:
		obj = NewBlank(tok.Text)
	case tokenLiteral:
		o, t, err := qd.parseLiteralObject(tok)
		if err != nil {
			return q, err
		}
		obj, tail, haveTail = o, t, true
	case tokenEOF:
		return q, io.EOF
	default:
		return q, fmt.Errorf("%d:%d expected object term, got %q (%s)",
			qd.d.scanner.Row, qd.d.scanner.Col, tok.Text, tok.Type)
	}

	q.Subj, q.Pred, q.Obj = subj, pred, obj

	next := tail
	if !haveTail {
		next = qd.d.scanner.Scan()
	}
	switch next.Type {
	case tokenDot:
		return q, nil
	case tokenURI:
		q.Graph = NewURI(next.Text)
	case tokenBNode:
		q.Graph = NewBlank(next.Text)
	default:
		return q, fmt.Errorf("%d:%d expected graph term or dot, got %q (%s)",
			qd.d.scanner.Row, qd.d.scanner.Col, next.Text, next.Type)
	}

	dot := qd.d.scanner.Scan()
	if dot.Type != tokenDot {
		return q, fmt.Errorf("%d:%d expected dot after graph term, got %q (%s)",
			qd.d.scanner.Row, qd.d.scanner.Col, dot.Text, dot.Type)
	}
	return q, nil
}

// parseLiteralObject parses the optional "^^<datatype>" or "@lang"
// suffix following a scanned literal token, returning the resulting
// Literal along with the next token after it (the dot or graph term),
// since the hand-written scanner has no pushback.
func (qd *QuadDecoder) parseLiteralObject(tok token) (Term, token, error) {
	next := qd.d.scanner.Scan()
	switch next.Type {
	case tokenTypeMarker:
		dt := qd.d.scanner.Scan()
		if dt.Type != tokenURI {
			return nil, token{}, fmt.Errorf("%d:%d expected datatype URI, got %q (%s)",
				qd.d.scanner.Row, qd.d.scanner.Col, dt.Text, dt.Type)
		}
		tail := qd.d.scanner.Scan()
		return NewTypedLiteral(tok.Text, NewURI(dt.Text)), tail, nil
	case tokenLangTag:
		tail := qd.d.scanner.Scan()
		return NewLangLiteral(tok.Text, next.Text), tail, nil
	case tokenDot, tokenURI, tokenBNode:
		return NewLiteral(tok.Text), next, nil
	default:
		return nil, token{}, fmt.Errorf("%d:%d expected datatype, language tag, graph term or dot after literal, got %q (%s)",
			qd.d.scanner.Row, qd.d.scanner.Col, next.Text, next.Type)
	}
}
