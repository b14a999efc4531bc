package acsub

// Scan runs a single linear pass over text and invokes fn once per
// occurrence of a registered pattern, in the order the output chain
// produces them at each position (deepest terminal first, then its
// chained ancestors). fn returning false stops the scan early; Scan
// then returns the count accumulated so far, including the stopping
// match.
//
// Scan requires a compiled automaton and performs no allocation of its
// own; the only state is the current node index and the callback's
// closure.
func (a *Automaton) Scan(text []byte, fn func(Match) bool) (int, error) {
	if !a.compiled {
		return 0, ErrNotCompiled
	}

	const root = int32(0)
	state := root
	count := 0

	for i := 0; i < len(text); i++ {
		b := text[i]

		for state != root && a.nodes[state].children[b] == noChild {
			state = a.nodes[state].failure
		}
		if child := a.nodes[state].children[b]; child != noChild {
			state = child
		}

		if a.nodes[state].terminal {
			count++
			if !fn(a.matchAt(state, i)) {
				return count, nil
			}
		}

		out := a.nodes[state].output
		for out != noOutput {
			count++
			if !fn(a.matchAt(out, i)) {
				return count, nil
			}
			out = a.nodes[out].output
		}
	}

	return count, nil
}

// matchAt builds the Match record for a terminal node reached at text
// index i (the position of the last matched byte).
func (a *Automaton) matchAt(nodeIdx int32, i int) Match {
	n := &a.nodes[nodeIdx]
	return Match{
		Start:      i + 1 - n.patternLen,
		End:        i,
		node:       nodeIdx,
		patternLen: n.patternLen,
	}
}

// collectMatches runs Scan to completion and returns every reported
// match, growing the backing slice geometrically from an initial
// capacity of 16.
func (a *Automaton) collectMatches(text []byte) ([]Match, error) {
	matches := make([]Match, 0, 16)
	_, err := a.Scan(text, func(m Match) bool {
		matches = append(matches, m)
		return true
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}
