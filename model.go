package sord

import "go.uber.org/zap"

// Model coordinates a set of ordered indices over the same set of
// quads, all backed by a single World (spec §3, §4.D).
type Model struct {
	world   *World
	indices map[Order]*orderedIndex
	graphed bool
	n       int
	log     logger
}

// Option configures a Model at construction time (functional options
// pattern, SPEC_FULL.md §10.3).
type Option func(*modelConfig)

type modelConfig struct {
	indexSet IndexSet
	graph    bool
	log      logger
}

// WithIndexes selects which of the six graph-less orders a Model
// maintains beyond the always-present default SPO order.
func WithIndexes(set IndexSet) Option {
	return func(c *modelConfig) { c.indexSet = set }
}

// WithGraphIndex additionally maintains the G-prefixed counterpart of
// every configured graph-less order (spec §3 "optional graph-prefixed
// indices").
func WithGraphIndex(enabled bool) Option {
	return func(c *modelConfig) { c.graph = enabled }
}

// WithLogger attaches a structured logger for diagnostics the core
// itself never needs but peripheral call sites may want surfaced
// through the same Model (SPEC_FULL.md §10.1).
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *modelConfig) { c.log = l }
}

// NewModel builds a Model over world, always including the default SPO
// index (spec §3: "the default order SPO is always created").
func NewModel(world *World, opts ...Option) *Model {
	cfg := modelConfig{indexSet: 0, log: nopLogger{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.indexSet |= IndexSPO

	m := &Model{world: world, indices: make(map[Order]*orderedIndex), graphed: cfg.graph, log: cfg.log}
	for i, bit := range graphlessBit {
		if cfg.indexSet&bit == 0 {
			continue
		}
		order := allGraphlessOrders[i]
		m.indices[order] = newOrderedIndex(order)
		if cfg.graph {
			g := graphVariant(order)
			m.indices[g] = newOrderedIndex(g)
		}
	}
	return m
}

// World returns the World this Model was built against.
func (m *Model) World() *World { return m.world }

// NumQuads returns the number of distinct quads currently stored.
func (m *Model) NumQuads() int { return m.n }

// assertOwned checks the cheap half of §7's World/Model contract: every
// Node reachable from a call into m must have been interned by m's own
// World. nil (an unset G, meaning "default graph") and Wildcard are
// both exempt, since neither is owned by any World.
func (m *Model) assertOwned(n *Node) {
	if n == nil || n == Wildcard {
		return
	}
	if n.owner != m.world {
		panic(ErrNodeCrossWorld)
	}
}

// Add stores q if it is not already present, taking a reference on
// each of its Nodes and recording O's object-position bookkeeping. It
// returns false, without modifying anything, if S, P, or O is Wildcard,
// or if an identical quad is already stored (spec §4.D Add — "fail-soft;
// report and return false").
func (m *Model) Add(q Quad) bool {
	m.assertOwned(q.S)
	m.assertOwned(q.P)
	m.assertOwned(q.O)
	m.assertOwned(q.G)

	if q.S == Wildcard || q.P == Wildcard || q.O == Wildcard {
		m.log.Warnw("sord: rejected quad with wildcard in subject, predicate, or object position")
		return false
	}
	if q.G == nil {
		q.G = Wildcard
	}

	if m.indices[OrderSPO].contains(buildKey(OrderSPO, q)) {
		return false
	}

	for order, ix := range m.indices {
		ix.insert(buildKey(order, q))
	}

	m.world.Copy(q.S)
	m.world.Copy(q.P)
	m.world.Copy(q.O)
	m.world.Copy(q.G)
	q.O.refsAsObj++
	m.n++
	return true
}

// Insert is Add with an explicit error return for callers that want to
// distinguish an invalid-argument rejection from "already present"
// without re-deriving the check themselves.
func (m *Model) Insert(q Quad) error {
	if q.S == Wildcard || q.P == Wildcard || q.O == Wildcard {
		return ErrWildcardPosition
	}
	m.Add(q)
	return nil
}

// Remove deletes q from every configured index and releases the
// reference each of its Nodes held, possibly destroying Nodes that drop
// to zero references. Removing a quad that is not present is a silent
// no-op (spec §4.D Remove, §7).
func (m *Model) Remove(q Quad) {
	m.assertOwned(q.S)
	m.assertOwned(q.P)
	m.assertOwned(q.O)
	m.assertOwned(q.G)

	if q.G == nil {
		q.G = Wildcard
	}
	if !m.indices[OrderSPO].contains(buildKey(OrderSPO, q)) {
		return
	}

	for order, ix := range m.indices {
		ix.remove(buildKey(order, q))
	}

	m.n--
	q.O.refsAsObj--
	m.world.Release(q.S)
	m.world.Release(q.P)
	m.world.Release(q.O)
	m.world.Release(q.G)
}

// Begin returns an iterator over every stored quad, in the default SPO
// order, collapsing multiple graphs of the same (S,P,O) into one
// logical element (spec §4.D Begin).
func (m *Model) Begin() *Iterator {
	if m.n == 0 {
		return &Iterator{end: true}
	}
	return m.newIteratorFromPlan(plan{order: OrderSPO, mode: modeALL, prefixLen: 0}, Quad{Wildcard, Wildcard, Wildcard, Wildcard})
}

// AllQuads returns an iterator over every stored quad without
// graph-collapsing: a (S,P,O) stored under several graphs surfaces once
// per graph, unlike Begin. It requires a graph-prefixed index; ok is
// false if the Model was not built with WithGraphIndex(true), since no
// configured order could satisfy this without collapsing.
func (m *Model) AllQuads() (it *Iterator, ok bool) {
	if _, has := m.indices[OrderGSPO]; !has {
		return nil, false
	}
	if m.n == 0 {
		return &Iterator{end: true}, true
	}
	return m.newIteratorFromPlan(plan{order: OrderGSPO, mode: modeALL, prefixLen: 0}, Quad{Wildcard, Wildcard, Wildcard, Wildcard}), true
}

// Find returns an iterator over every quad matching pattern, chosen and
// driven by the Planner (spec §4.D Find, §4.E).
func (m *Model) Find(pattern Quad) *Iterator {
	m.assertOwned(pattern.S)
	m.assertOwned(pattern.P)
	m.assertOwned(pattern.O)
	m.assertOwned(pattern.G)

	if pattern.G == nil {
		pattern.G = Wildcard
	}
	if m.n == 0 {
		return &Iterator{end: true}
	}
	p := m.plan(pattern)
	return m.newIteratorFromPlan(p, pattern)
}

// Has reports whether q is currently stored, exactly as stored (no
// wildcard matching) — an exact lookup in the default SPO index,
// mirroring the teacher's DB.Has.
func (m *Model) Has(q Quad) bool {
	if q.G == nil {
		q.G = Wildcard
	}
	if _, ok := m.indices[OrderSPO]; !ok {
		return false
	}
	return m.indices[OrderSPO].contains(buildKey(OrderSPO, q))
}

// Describe returns every quad with node in the subject position, and
// additionally in the object position if asObject is true — a
// convenience built entirely from Find, mirroring the teacher's
// DB.Describe (SPEC_FULL.md §12).
func (m *Model) Describe(node *Node, asObject bool) []Quad {
	var out []Quad
	it := m.Find(Quad{S: node, P: Wildcard, O: Wildcard, G: Wildcard})
	for !it.End() {
		out = append(out, it.Get())
		it.Next()
	}
	if asObject {
		it = m.Find(Quad{S: Wildcard, P: Wildcard, O: node, G: Wildcard})
		for !it.End() {
			out = append(out, it.Get())
			it.Next()
		}
	}
	return out
}
