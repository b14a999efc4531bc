// Package acsub implements a multi-pattern streaming text-substitution
// engine: a set of (pattern, replacement) rules is compiled once into
// an Aho-Corasick automaton, then reused across many Scan/Replace
// invocations. Replacement templates may be evaluated dynamically, via
// a callback, so the same compiled automaton can produce different
// output bytes per invocation (see ReplaceWithCallback).
//
// The matching algorithm and arena follow LrsK/gomultifast's
// Automaton/Node lifecycle (Add, Finalize, Search, reset), adapted to
// an index-based, 256-wide child table addressed directly by byte
// value instead of a sorted rune-keyed edge list.
package acsub

// defaultCapacity is used by NewDefault and by New(0): a capacity of 0
// means "pick a sensible default" rather than an empty, unusable arena.
const defaultCapacity = 1024

// Automaton is a compiled (or compiling) Aho-Corasick trie together with
// its replacement bindings. The zero value is not usable; construct one
// with New or NewDefault.
//
// Automaton is safe for concurrent read-only use (Scan, ReplaceAlloc,
// ReplaceWithCallback, ReplaceInPlace, Stats) once Compile has
// succeeded. Register, RegisterEx, Compile and Reset must not run
// concurrently with each other or with the read-only operations.
type Automaton struct {
	nodes    []node
	capacity int

	compiled     bool
	patternCount int
}

// New creates an automaton with a fixed node-arena capacity. Capacity
// bounds the number of trie nodes (not patterns); it never grows after
// creation — Register returns ErrCapacity once exhausted. capacity == 0
// selects defaultCapacity.
func New(capacity int) *Automaton {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	a := &Automaton{
		nodes:    make([]node, 1, capacity),
		capacity: capacity,
	}
	a.nodes[0] = newNode(0)
	return a
}

// NewDefault creates an automaton with the default capacity.
func NewDefault() *Automaton {
	return New(0)
}

// addNode appends a fresh node to the arena and returns its index, or
// ErrCapacity if the arena is full.
func (a *Automaton) addNode() (int32, error) {
	if len(a.nodes) >= a.capacity {
		return noChild, ErrCapacity
	}
	idx := int32(len(a.nodes))
	a.nodes = append(a.nodes, newNode(int(idx)))
	return idx, nil
}

// Register adds a pattern with a static replacement (nil means
// "delete the match"). It is equivalent to
// RegisterEx(pattern, replacement, nil).
func (a *Automaton) Register(pattern, replacement []byte) error {
	return a.RegisterEx(pattern, replacement, nil)
}

// RegisterEx adds a pattern with a static replacement, a dynamic
// user-data handle, or both. Registering the same pattern again
// overwrites the terminal node's binding (last-writer-wins).
//
// Registering invalidates any prior compilation: Compile must be
// called again before Scan or Replace* will accept the automaton.
func (a *Automaton) RegisterEx(pattern, replacement []byte, userData any) error {
	if len(pattern) == 0 {
		return ErrEmptyPattern
	}

	cur := int32(0) // root
	for _, b := range pattern {
		next := a.nodes[cur].children[b]
		if next == noChild {
			var err error
			next, err = a.addNode()
			if err != nil {
				return err
			}
			a.nodes[cur].children[b] = next
		}
		cur = next
	}

	n := &a.nodes[cur]
	if !n.terminal {
		a.patternCount++
	}
	n.terminal = true
	n.patternLen = len(pattern)
	n.pattern = pattern
	n.replacement = replacement
	n.userData = userData

	a.compiled = false
	return nil
}
