// SPDX-License-Identifier: MIT

// Package expr: constant interning (hash-consing), permanently rooted
// singletons and allocation accounting. This file is the single place where
// nodes come into existence; every constructor below increments the
// allocation counter, every intern hit avoids it.

package expr

import (
	"math"
	"sync"
	"sync/atomic"
)

// Singleton nodes for the constants the rewrite rules test against most.
// They live for the whole process, are shared by every expression, and are
// deliberately created OUTSIDE the allocation counter so tests can meter
// graph growth without start-up noise.
var (
	zeroNode     = &node{op: OpConst, isInt: true}
	oneNode      = &node{op: OpConst, isInt: true, ival: 1, fval: 1}
	twoNode      = &node{op: OpConst, isInt: true, ival: 2, fval: 2}
	minusOneNode = &node{op: OpConst, isInt: true, ival: -1, fval: -1}
	nanNode      = &node{op: OpConst, fval: math.NaN()}
	infNode      = &node{op: OpConst, fval: math.Inf(1)}
	minusInfNode = &node{op: OpConst, fval: math.Inf(-1)}
)

// constCache interns constant nodes process-wide so structurally identical
// literals share one node. The cache holds plain back-references: a cached
// node is reclaimed with the cache itself, never individually.
type constCache struct {
	mu    sync.Mutex
	ints  map[int64]*node
	reals map[float64]*node
}

var cache = &constCache{
	ints:  make(map[int64]*node),
	reals: make(map[float64]*node),
}

var (
	nodeAllocs atomic.Uint64 // cumulative node allocations, see NodeAllocs
	symSeq     atomic.Uint64 // symbol identity sequence
)

// NodeAllocs returns the cumulative number of expression nodes allocated by
// the process so far. Interned cache hits and the permanent singletons do
// not count.
//
// Behavior highlights:
//   - Monotonic; never reset. Meter a region by differencing two reads.
//   - The counter observes allocation, not liveness: nodes released by the
//     garbage collector stay counted.
//
// AI-Hints:
//   - Use deltas around an operation to assert simplification reused nodes
//     instead of growing the graph.
func NodeAllocs() uint64 { return nodeAllocs.Load() }

// ResetConstCache replaces the intern tables with fresh empty ones.
//
// Behavior highlights:
//   - Existing expressions keep their nodes; only future literal lookups
//     are affected. Literals built before and after a reset may therefore
//     stop being identity-equal (structural equality still holds).
//   - The permanent singletons (0, 1, 2, -1, NaN, ±Inf) are not cached
//     state and keep their identity across resets.
//
// Notes:
//   - Intended for tests that need a pristine cache per instance rather
//     than one true global.
func ResetConstCache() {
	cache.mu.Lock()
	cache.ints = make(map[int64]*node)
	cache.reals = make(map[float64]*node)
	cache.mu.Unlock()
}

// internInt returns the shared node for an exact integer literal, allocating
// and caching it on first use.
func internInt(v int64) *node {
	switch v {
	case 0:
		return zeroNode
	case 1:
		return oneNode
	case 2:
		return twoNode
	case -1:
		return minusOneNode
	}

	cache.mu.Lock()
	defer cache.mu.Unlock()

	if n, ok := cache.ints[v]; ok {
		return n
	}

	n := newConstInt(v)
	cache.ints[v] = n

	return n
}

// internReal returns the shared node for a real literal. Non-finite values
// resolve to the NaN/±Inf singletons; integer-valued doubles dispatch to the
// integer table so 2.0 and 2 share one node.
func internReal(v float64) *node {
	if math.IsNaN(v) {
		return nanNode
	}
	if math.IsInf(v, 1) {
		return infNode
	}
	if math.IsInf(v, -1) {
		return minusInfNode
	}
	if isIntegral(v) {
		return internInt(int64(v))
	}

	cache.mu.Lock()
	defer cache.mu.Unlock()

	if n, ok := cache.reals[v]; ok {
		return n
	}

	n := newConstReal(v)
	cache.reals[v] = n

	return n
}

// isIntegral reports whether v converts to int64 exactly. The upper bound is
// exclusive: 2^63-1 is not representable in float64 and rounds up to 2^63.
func isIntegral(v float64) bool {
	return v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64
}

// ---------- node constructors (the only allocation sites) ----------

func newConstInt(v int64) *node {
	nodeAllocs.Add(1)

	return &node{op: OpConst, isInt: true, ival: v, fval: float64(v)}
}

func newConstReal(v float64) *node {
	nodeAllocs.Add(1)

	return &node{op: OpConst, fval: v}
}

func newSymbol(name string) *node {
	nodeAllocs.Add(1)

	return &node{op: OpSym, name: name, id: symSeq.Add(1)}
}

func newUnary(op Op, c *node) *node {
	nodeAllocs.Add(1)

	return &node{op: op, child: [2]*node{c, nil}}
}

func newBinary(op Op, l, r *node) *node {
	nodeAllocs.Add(1)

	return &node{op: op, child: [2]*node{l, r}}
}
