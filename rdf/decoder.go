package rdf

import (
	"errors"
	"fmt"
	"io"
)

// Decoder is a streaming decoder for RDF turtle/n-triples.
type Decoder struct {
	scanner *scanner

	// state
	base     string         // base URI
	ns       map[string]URI // prefixes
	tr       Triple         // parsed triple to be returned
	keepSubj bool           // keep subject in next call to Decode()
	keepPred bool           // keep predicate in next call to Decode()

	// Skolemize maps a blank node identifier to an URI. Decode does not
	// call it: blank nodes are returned as Blank terms.
	Skolemize func(s string) URI

	// Base is a base URI for the stream. Decode does not read or update
	// it, and base directives in the stream are not recognised.
	Base URI
}

// NewDecoder returns a new Decoder over the given stream.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{scanner: newScanner(r)}
}

// Decode returns the next Triple in the input stream, or an error. The error
// io.EOF signifies the end of the stream.
func (d *Decoder) Decode() (Triple, error) {

	if !d.keepSubj {
		if err := d.parseSubject(); err != nil {
			return d.tr, err
		}
	}

	if !d.keepPred {
		if err := d.parsePredicate(); err != nil {
			return d.tr, err
		}
	}

	if err := d.parseObject(); err != nil {
		return d.tr, err
	}

	return d.tr, nil
}

func (d *Decoder) parseSubject() (err error) {
	d.tr.Subj, err = d.parseSubjectTerm()
	return err
}

func (d *Decoder) parsePredicate() (err error) {
	d.tr.Pred, err = d.parseURI()
	return err
}

func (d *Decoder) parseURI() (uri URI, err error) {
	tok := d.scanner.Scan()
	for tok.Type == tokenEOL {
		tok = d.scanner.Scan()
	}
	switch tok.Type {
	case tokenURI:
		uri = NewURI(tok.Text)
	case tokenEOF:
		err = io.EOF
	}
	return uri, err
}

// parseSubjectTerm parses a subject position, which may be a URI or a
// blank node (spec addition: blank-node subjects).
func (d *Decoder) parseSubjectTerm() (Term, error) {
	tok := d.scanner.Scan()
	// Line breaks and comment lines between statements are skipped.
	for tok.Type == tokenEOL {
		tok = d.scanner.Scan()
	}
	switch tok.Type {
	case tokenURI:
		return NewURI(tok.Text), nil
	case tokenBNode:
		return NewBlank(tok.Text), nil
	case tokenEOF:
		return nil, io.EOF
	}
	return nil, fmt.Errorf("%d:%d expected URI or blank node, got %q (%s)",
		d.scanner.Row, d.scanner.Col, tok.Text, tok.Type)
}

func (d *Decoder) parseObject() error {
	tok := d.scanner.Scan()
	switch tok.Type {
	case tokenURI:
		d.tr.Obj = NewURI(tok.Text)
		break
	case tokenBNode:
		d.tr.Obj = NewBlank(tok.Text)
		break
	case tokenLiteral:
		next := d.scanner.Scan()
		switch next.Type {
		case tokenDot:
			d.tr.Obj = NewLiteral(tok.Text)
			d.keepSubj = false
			d.keepPred = false
			return nil
		case tokenTypeMarker:
			next = d.scanner.Scan()
			switch next.Type {
			case tokenURI:
				// The terminator is read after the switch.
				d.tr.Obj = NewTypedLiteral(tok.Text, NewURI(next.Text))
			case tokenEOF:
				return io.EOF
			}
		case tokenLangTag:
			d.tr.Obj = NewLangLiteral(tok.Text, next.Text)
			end := d.scanner.Scan()
			switch end.Type {
			case tokenDot:
				d.keepSubj = false
				d.keepPred = false
				return nil
			case tokenSemicolon:
				d.keepSubj = true
				d.keepPred = false
				return nil
			case tokenComma:
				d.keepSubj = true
				d.keepPred = true
				return nil
			default:
				return fmt.Errorf("%d:%d expected dot, semicolon or comma after language tag, got %q (%s)",
					d.scanner.Row, d.scanner.Col, end.Text, end.Type)
			}
		case tokenSemicolon:
			d.keepSubj = true
			d.keepPred = false
			d.tr.Obj = NewLiteral(tok.Text)
			return nil
		case tokenComma:
			d.keepSubj = true
			d.keepPred = true
			d.tr.Obj = NewLiteral(tok.Text)
			return nil
		default:
			return fmt.Errorf("%d:%d expected datatype, dot, semicolon or comma, got %q (%s)",
				d.scanner.Row, d.scanner.Col, tok.Text, tok.Type)
		}
	case tokenEOF:
		return io.EOF
	}

	tok = d.scanner.Scan()
	switch tok.Type {
	case tokenDot:
		// we got a full valid triple
		d.keepSubj = false
		d.keepPred = false
		return nil
	case tokenSemicolon:
		d.keepSubj = true
		d.keepPred = false
		return nil
	case tokenComma:
		d.keepSubj = true
		d.keepPred = true
		return nil
	default:
		return fmt.Errorf("expected dot, semicolon or comma, got %v", tok.Type)
	}
}

// DecodeAll parses the entire stream and returns the triples as a Graph.
func (d *Decoder) DecodeAll() (*Graph, error) {
	g := NewGraph()
	for {
		tr, err := d.Decode()
		if errors.Is(err, io.EOF) {
			return g, nil
		}
		if err != nil {
			return g, err
		}
		g.Insert(tr)
	}
}
