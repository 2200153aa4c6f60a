package sord

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// Kind identifies which of the three RDF term shapes a Node holds, or
// marks the wildcard sentinel (spec §3, §4.B).
type Kind uint8

const (
	KindWildcard Kind = iota
	KindIRI
	KindBlank
	KindLiteral
)

func (k Kind) String() string {
	switch k {
	case KindWildcard:
		return "wildcard"
	case KindIRI:
		return "iri"
	case KindBlank:
		return "blank"
	case KindLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// Datatype IRIs used internally (the default datatypes new_literal falls
// back to, plus the xsd vocabulary World.NewLiteralValue maps Go values
// onto). Kept as plain strings, the way rdf/term.go keeps its URI
// vocabulary vars, and resolved to canonical Nodes lazily on first use.
const (
	RDFLangString    = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"
	XSDString        = "http://www.w3.org/2001/XMLSchema#string"
	XSDBoolean       = "http://www.w3.org/2001/XMLSchema#boolean"
	XSDByte          = "http://www.w3.org/2001/XMLSchema#byte"
	XSDInt           = "http://www.w3.org/2001/XMLSchema#int"
	XSDShort         = "http://www.w3.org/2001/XMLSchema#short"
	XSDLong          = "http://www.w3.org/2001/XMLSchema#long"
	XSDInteger       = "http://www.w3.org/2001/XMLSchema#integer"
	XSDUnsignedShort = "http://www.w3.org/2001/XMLSchema#unsignedShort"
	XSDUnsignedInt   = "http://www.w3.org/2001/XMLSchema#unsignedInt"
	XSDUnsignedLong  = "http://www.w3.org/2001/XMLSchema#unsignedLong"
	XSDUnsignedByte  = "http://www.w3.org/2001/XMLSchema#unsignedByte"
	XSDFloat         = "http://www.w3.org/2001/XMLSchema#float"
	XSDDouble        = "http://www.w3.org/2001/XMLSchema#double"
	XSDDateTimeStamp = "http://www.w3.org/2001/XMLSchema#dateTimeStamp"
	RDFType          = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
)

// Node is an interned RDF term handle, reference-counted by the World
// that created it (spec §3). Two Nodes owned by the same World are
// pointer-identical iff they are semantically equal.
type Node struct {
	owner     *World
	kind      Kind
	lexical   []byte
	datatype  *Node   // non-nil only for KindLiteral
	language  *string // interned pointer; nil if no language tag
	flags     uint32
	refs      int
	refsAsObj int
}

// Wildcard is the sentinel "no node" value used in patterns (spec §3,
// §9). It belongs to no World, is never stored in a Model, and sorts
// strictly below every real Node under compareNodes' total order.
var Wildcard = &Node{kind: KindWildcard}

// Kind reports which RDF term shape n is.
func (n *Node) Kind() Kind { return n.kind }

// Bytes returns the Node's lexical form (the IRI or blank-node
// identifier, or a Literal's lexical value).
func (n *Node) Bytes() []byte { return n.lexical }

// String returns the Node's lexical form as a string.
func (n *Node) String() string { return string(n.lexical) }

// Datatype returns a Literal's datatype Node, or nil for IRI/Blank.
func (n *Node) Datatype() *Node { return n.datatype }

// Language returns a Literal's language tag, or "" if absent.
func (n *Node) Language() string {
	if n.language == nil {
		return ""
	}
	return *n.language
}

// Flags returns the opaque escape-hint bitset carried from the reader
// (spec §9 "Flags bitset on Node"). The core never interprets it.
func (n *Node) Flags() uint32 { return n.flags }

// SetFlags sets the opaque flags bitset. Reader adapters use this to
// carry serialization hints (e.g. which quote style or escapes were
// used) through to a writer adapter.
func (n *Node) SetFlags(f uint32) { n.flags = f }

// RefCount returns the Node's current strong reference count.
func (n *Node) RefCount() int { return n.refs }

// RefCountAsObject returns the number of stored quads in which this
// Node currently appears in the object position.
func (n *Node) RefCountAsObject() int { return n.refsAsObj }

// InlineableBlank reports whether n is a blank node that appears
// exactly once, as an object, and nowhere else structurally significant
// (spec §3: refs_as_obj "used to answer the predicate 'is this blank
// node inlineable'"). It checks that the Node's only reference is that
// one object position: an outstanding handle from NewBlank or Copy is
// counted as a further reference, so the result is false while one is
// held.
func (n *Node) InlineableBlank() bool {
	return n.kind == KindBlank && n.refs == 1 && n.refsAsObj == 1
}

// literalKey is the search/storage key for the literals interning
// table: lexical bytes plus datatype and language identity (spec
// §4.A "Hashing").
type literalKey struct {
	lexical  string
	datatype *Node
	language *string
}

// World is the sole creator and destroyer of Nodes (spec §3, §4.A). It
// owns three interning tables: IRI names, blank-node identifiers, and
// literals (itself keyed through a fourth, separate language-tag
// table). A World is not safe for concurrent use (spec §5).
type World struct {
	iris     map[string]*Node
	blanks   map[string]*Node
	langs    map[string]*string
	literals map[literalKey]*Node
}

// NewWorld returns a new, empty interner.
func NewWorld() *World {
	return &World{
		iris:     make(map[string]*Node),
		blanks:   make(map[string]*Node),
		langs:    make(map[string]*string),
		literals: make(map[literalKey]*Node),
	}
}

// NewIRI interns b as an IRI node, incrementing its reference count
// (spec §4.A new_iri).
func (w *World) NewIRI(b []byte) *Node {
	return w.intern(w.iris, b, KindIRI)
}

// NewBlank interns b as a blank-node identifier, incrementing its
// reference count (spec §4.A new_blank).
func (w *World) NewBlank(b []byte) *Node {
	return w.intern(w.blanks, b, KindBlank)
}

func (w *World) intern(table map[string]*Node, b []byte, kind Kind) *Node {
	key := string(b)
	if n, ok := table[key]; ok {
		n.refs++
		return n
	}
	n := &Node{owner: w, kind: kind, lexical: append([]byte(nil), b...), refs: 1}
	table[key] = n
	return n
}

// resolveIRI looks up or creates an IRI node without touching its
// reference count; used internally to resolve default literal
// datatypes so that a literal-table hit never takes a spurious extra
// reference on the datatype (spec §4.A: the datatype ref is only taken
// "on miss").
func (w *World) resolveIRI(s string) *Node {
	if n, ok := w.iris[s]; ok {
		return n
	}
	n := &Node{owner: w, kind: KindIRI, lexical: []byte(s)}
	w.iris[s] = n
	return n
}

func (w *World) internLang(lang string) *string {
	if lang == "" {
		return nil
	}
	if p, ok := w.langs[lang]; ok {
		return p
	}
	s := lang
	w.langs[lang] = &s
	return &s
}

// NewLiteral interns a literal by (lexical bytes, datatype identity,
// language identity) (spec §4.A new_literal). A nil datatype defaults
// to rdf:langString when language is non-empty, or xsd:string
// otherwise. On a literal-table miss, a new internal reference is
// taken on the datatype Node (spec invariant 2: "internal references
// from literal Nodes whose datatype is this Node").
func (w *World) NewLiteral(datatype *Node, b []byte, language string) *Node {
	langPtr := w.internLang(language)
	dt := datatype
	if dt == nil {
		if langPtr != nil {
			dt = w.resolveIRI(RDFLangString)
		} else {
			dt = w.resolveIRI(XSDString)
		}
	}
	key := literalKey{lexical: string(b), datatype: dt, language: langPtr}
	if n, ok := w.literals[key]; ok {
		n.refs++
		return n
	}
	dt.refs++
	n := &Node{
		owner:    w,
		kind:     KindLiteral,
		lexical:  append([]byte(nil), b...),
		datatype: dt,
		language: langPtr,
		refs:     1,
	}
	w.literals[key] = n
	return n
}

// NewLiteralValue is a convenience wrapper that infers a datatype from
// the Go type of v, following the same Go-type-to-xsd-datatype table as
// the teacher's rdf.NewLiteral(interface{}).
func (w *World) NewLiteralValue(v interface{}) *Node {
	switch t := v.(type) {
	case bool:
		return w.NewLiteral(w.resolveIRI(XSDBoolean), []byte(strconv.FormatBool(t)), "")
	case string:
		return w.NewLiteral(w.resolveIRI(XSDString), []byte(t), "")
	case int:
		if strconv.IntSize == 32 {
			return w.NewLiteral(w.resolveIRI(XSDInt), []byte(strconv.FormatInt(int64(t), 10)), "")
		}
		return w.NewLiteral(w.resolveIRI(XSDLong), []byte(strconv.FormatInt(int64(t), 10)), "")
	case int8:
		return w.NewLiteral(w.resolveIRI(XSDByte), []byte(strconv.FormatInt(int64(t), 10)), "")
	case int16:
		return w.NewLiteral(w.resolveIRI(XSDShort), []byte(strconv.FormatInt(int64(t), 10)), "")
	case int32:
		return w.NewLiteral(w.resolveIRI(XSDInt), []byte(strconv.FormatInt(int64(t), 10)), "")
	case int64:
		return w.NewLiteral(w.resolveIRI(XSDLong), []byte(strconv.FormatInt(t, 10)), "")
	case uint:
		if strconv.IntSize == 32 {
			return w.NewLiteral(w.resolveIRI(XSDUnsignedInt), []byte(strconv.FormatUint(uint64(t), 10)), "")
		}
		return w.NewLiteral(w.resolveIRI(XSDUnsignedLong), []byte(strconv.FormatUint(uint64(t), 10)), "")
	case uint8:
		return w.NewLiteral(w.resolveIRI(XSDUnsignedByte), []byte(strconv.FormatUint(uint64(t), 10)), "")
	case uint16:
		return w.NewLiteral(w.resolveIRI(XSDUnsignedShort), []byte(strconv.FormatUint(uint64(t), 10)), "")
	case uint32:
		return w.NewLiteral(w.resolveIRI(XSDUnsignedInt), []byte(strconv.FormatUint(uint64(t), 10)), "")
	case uint64:
		return w.NewLiteral(w.resolveIRI(XSDUnsignedLong), []byte(strconv.FormatUint(t, 10)), "")
	case float32:
		return w.NewLiteral(w.resolveIRI(XSDFloat), []byte(strconv.FormatFloat(float64(t), 'E', -1, 32)), "")
	case float64:
		return w.NewLiteral(w.resolveIRI(XSDDouble), []byte(strconv.FormatFloat(t, 'E', -1, 64)), "")
	case time.Time:
		return w.NewLiteral(w.resolveIRI(XSDDateTimeStamp), []byte(t.UTC().Format(time.RFC3339Nano)), "")
	default:
		return w.NewLiteral(w.resolveIRI(XSDString), []byte(fmt.Sprintf("%#v", t)), "")
	}
}

// Copy returns n with its reference count incremented (spec §4.A copy).
// Copying the Wildcard sentinel is a no-op: it is never reference
// counted.
func (w *World) Copy(n *Node) *Node {
	if n == Wildcard {
		return n
	}
	n.refs++
	return n
}

// Release decrements n's reference count, destroying it (removing it
// from its owning table and releasing its datatype reference, if any)
// once the count reaches zero. Releasing the Wildcard sentinel is a
// no-op. Releasing a Node whose reference count is already zero is a
// contract violation (spec §4.A, §7) and panics.
func (w *World) Release(n *Node) {
	if n == Wildcard {
		return
	}
	if n.refs <= 0 {
		panic(ErrDoubleRelease)
	}
	n.refs--
	if n.refs > 0 {
		return
	}
	w.destroy(n)
}

func (w *World) destroy(n *Node) {
	switch n.kind {
	case KindIRI:
		delete(w.iris, string(n.lexical))
	case KindBlank:
		delete(w.blanks, string(n.lexical))
	case KindLiteral:
		key := literalKey{lexical: string(n.lexical), datatype: n.datatype, language: n.language}
		delete(w.literals, key)
		if n.datatype != nil {
			w.Release(n.datatype)
		}
	}
}

// NumNodes returns the number of distinct Nodes currently interned
// across all three tables, for diagnostics and tests (spec §8
// "World's node count returns to its pre-insertion value").
func (w *World) NumNodes() int {
	return len(w.iris) + len(w.blanks) + len(w.literals)
}

// compareNodes implements the total order over Nodes required by every
// index comparator (spec §4.B): the wildcard sentinel sorts below any
// real Node; otherwise Nodes are ordered by kind, then lexical bytes,
// then (for literals) recursively by datatype and finally by language
// tag (absent sorting before present).
func compareNodes(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == Wildcard {
		return -1
	}
	if b == Wildcard {
		return 1
	}
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	switch a.kind {
	case KindLiteral:
		if c := bytes.Compare(a.lexical, b.lexical); c != 0 {
			return c
		}
		if c := compareNodes(a.datatype, b.datatype); c != 0 {
			return c
		}
		return compareLang(a.language, b.language)
	default: // KindIRI, KindBlank
		return bytes.Compare(a.lexical, b.lexical)
	}
}

func compareLang(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}
