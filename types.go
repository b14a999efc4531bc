package acsub

// Match is one occurrence reported by Scan: the byte range
// [Start, End] (inclusive) in the scanned text, and the index of the
// terminal trie node that ended there.
type Match struct {
	Start int
	End   int // inclusive
	node  int32

	patternLen int // cached from the node, used by the planner without a second lookup
}

// Len returns End - Start + 1, the length of the matched pattern.
func (m Match) Len() int { return m.patternLen }

// ReplacementFunc produces the dynamic replacement bytes for a match.
// It receives the matched pattern bytes, the opaque user-data handle
// stored on the terminal node (nil if none was registered), and the
// invocation context passed to ReplaceWithCallback. A nil or
// zero-length return deletes the match.
type ReplacementFunc func(pattern []byte, userData any, ctx any) []byte
