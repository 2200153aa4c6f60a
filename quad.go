package sord

// Quad is a stored quad, or a query pattern when some positions hold
// Wildcard (spec §3, §4.B).
type Quad struct {
	S, P, O, G *Node
}

// Matches reports whether q matches pattern position-wise: a Wildcard
// in pattern matches anything, a real Node in pattern requires pointer
// equality (spec §4.B "Equality under wildcards").
func (q Quad) Matches(pattern Quad) bool {
	return matchNode(q.S, pattern.S) &&
		matchNode(q.P, pattern.P) &&
		matchNode(q.O, pattern.O) &&
		matchNode(q.G, pattern.G)
}

func matchNode(n, pat *Node) bool {
	return pat == Wildcard || n == pat
}

// Order identifies one of the twelve lexicographic orders a Model can
// index by (spec §3, §4.C): the six permutations of (S,P,O), each
// optionally prefixed by G.
type Order uint8

const (
	OrderSPO Order = iota
	OrderSOP
	OrderPSO
	OrderPOS
	OrderOSP
	OrderOPS
	OrderGSPO
	OrderGSOP
	OrderGPSO
	OrderGPOS
	OrderGOSP
	OrderGOPS
)

func (o Order) String() string {
	names := [...]string{
		"SPO", "SOP", "PSO", "POS", "OSP", "OPS",
		"GSPO", "GSOP", "GPSO", "GPOS", "GOSP", "GOPS",
	}
	if int(o) < len(names) {
		return names[o]
	}
	return "?"
}

// isGraphless reports whether o is one of the six orders that ignore
// G for iteration purposes (graph-collapsing applies to these).
func isGraphless(o Order) bool { return o < OrderGSPO }

// IndexSet is a bitmask over the six graph-less orders, used to select
// which indices a Model maintains (spec §3, SPEC_FULL.md §10.3).
type IndexSet uint8

const (
	IndexSPO IndexSet = 1 << iota
	IndexSOP
	IndexPSO
	IndexPOS
	IndexOSP
	IndexOPS
)

var allGraphlessOrders = [6]Order{OrderSPO, OrderSOP, OrderPSO, OrderPOS, OrderOSP, OrderOPS}
var graphlessBit = [6]IndexSet{IndexSPO, IndexSOP, IndexPSO, IndexPOS, IndexOSP, IndexOPS}

// graphVariant returns the G-prefixed counterpart of a graph-less
// order. The two enum blocks are laid out in parallel, so this is a
// constant offset.
func graphVariant(o Order) Order { return o + OrderGSPO }

// permOf[order] gives, for each of the four storage-key slots, which
// canonical position (0=S, 1=P, 2=O, 3=G) is stored there. Graph-less
// orders store G last, purely so that quads differing only by graph
// remain distinct entries in the ordered set (see DESIGN.md, "Graph-less
// order storage uniqueness vs. query-time comparison"); graph-prefixed
// orders store G first, as the most significant position.
var permOf = [12][4]int{
	OrderSPO:  {0, 1, 2, 3},
	OrderSOP:  {0, 2, 1, 3},
	OrderPSO:  {1, 0, 2, 3},
	OrderPOS:  {1, 2, 0, 3},
	OrderOSP:  {2, 0, 1, 3},
	OrderOPS:  {2, 1, 0, 3},
	OrderGSPO: {3, 0, 1, 2},
	OrderGSOP: {3, 0, 2, 1},
	OrderGPSO: {3, 1, 0, 2},
	OrderGPOS: {3, 1, 2, 0},
	OrderGOSP: {3, 2, 0, 1},
	OrderGOPS: {3, 2, 1, 0},
}

// buildKey permutes q's four positions into order o's storage-key
// layout.
func buildKey(o Order, q Quad) [4]*Node {
	canon := [4]*Node{q.S, q.P, q.O, q.G}
	perm := permOf[o]
	return [4]*Node{canon[perm[0]], canon[perm[1]], canon[perm[2]], canon[perm[3]]}
}

// unpermute inverts buildKey: given a storage key under order o, it
// recovers the canonical (S,P,O,G) quad.
func unpermute(o Order, key [4]*Node) Quad {
	perm := permOf[o]
	var canon [4]*Node
	for i, p := range perm {
		canon[p] = key[i]
	}
	return Quad{S: canon[0], P: canon[1], O: canon[2], G: canon[3]}
}

// compareKeys is the total order over storage keys within a single
// order's ordered index: lexicographic comparison of all four slots in
// that order's permutation (spec §4.C).
func compareKeys(a, b [4]*Node) int {
	for i := 0; i < 4; i++ {
		if c := compareNodes(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// comparePrefix compares only the first n slots of two storage keys,
// the comparison graph-collapse adjacency and range-prefix matching use
// (spec §4.C "the comparator for a graph-less order examines only the
// first three positions").
func comparePrefix(a, b [4]*Node, n int) int {
	for i := 0; i < n; i++ {
		if c := compareNodes(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}
