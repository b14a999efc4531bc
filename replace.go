package acsub

// ReplaceAlloc scans text, resolves every kept match's static
// replacement and returns a freshly allocated result. If no pattern
// occurs, the result is a byte-for-byte copy of text.
func (a *Automaton) ReplaceAlloc(text []byte) ([]byte, error) {
	if !a.compiled {
		return nil, ErrNotCompiled
	}

	matches, err := a.collectMatches(text)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		out := make([]byte, len(text))
		copy(out, text)
		return out, nil
	}

	kept := leftmostWins(planForward(matches))

	total := len(text)
	for _, m := range kept {
		total += len(a.nodes[m.node].replacement) - m.patternLen
	}

	out := make([]byte, 0, total)
	pos := 0
	for _, m := range kept {
		out = append(out, text[pos:m.Start]...)
		out = append(out, a.nodes[m.node].replacement...)
		pos = m.End + 1
	}
	out = append(out, text[pos:]...)
	return out, nil
}

// ReplaceWithCallback is like ReplaceAlloc but resolves each kept
// match's replacement dynamically via cb, which sees the matched
// pattern bytes, the node's opaque user-data, and ctx. cb is invoked
// exactly once for each *kept* match, not for matches later discarded
// by leftmost-wins. A nil cb return (or a nil cb) is treated as a
// zero-length replacement, deleting the match.
func (a *Automaton) ReplaceWithCallback(text []byte, cb ReplacementFunc, ctx any) ([]byte, error) {
	if !a.compiled {
		return nil, ErrNotCompiled
	}

	matches, err := a.collectMatches(text)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		out := make([]byte, len(text))
		copy(out, text)
		return out, nil
	}

	kept := leftmostWins(planForward(matches))

	type resolved struct {
		m    Match
		repl []byte
	}
	results := make([]resolved, len(kept))
	total := len(text)
	for i, m := range kept {
		n := &a.nodes[m.node]
		var repl []byte
		if cb != nil {
			repl = cb(n.pattern, n.userData, ctx)
		}
		results[i] = resolved{m, repl}
		total += len(repl) - m.patternLen
	}

	out := make([]byte, 0, total)
	pos := 0
	for _, r := range results {
		out = append(out, text[pos:r.m.Start]...)
		out = append(out, r.repl...)
		pos = r.m.End + 1
	}
	out = append(out, text[pos:]...)
	return out, nil
}

// ReplaceInPlace rewrites buf[0:length] using only static replacements,
// without exceeding capacity, and returns the new length and the
// number of substitutions actually applied. No callback variant is
// offered: dynamic replacement lengths would make a single-buffer
// in-place schedule unsafe under a capacity bound.
//
// Matches are first resolved with the same leftmost-wins selection
// ReplaceAlloc uses, then applied right-to-left so each splice only
// ever shifts bytes at or after its own start, producing the same
// result ReplaceAlloc would when capacity suffices. A match whose end
// falls outside the buffer after an earlier splice, or whose
// application would exceed capacity, is skipped rather than applied.
func (a *Automaton) ReplaceInPlace(buf []byte, length, capacity int) (newLen int, count int, err error) {
	if !a.compiled {
		return 0, 0, ErrNotCompiled
	}

	matches, err := a.collectMatches(buf[:length])
	if err != nil {
		return 0, 0, err
	}
	if len(matches) == 0 {
		return length, 0, nil
	}

	kept := planReverse(leftmostWins(planForward(matches)))

	currentLen := length
	applied := 0
	for _, m := range kept {
		if m.End >= currentLen {
			continue
		}
		repl := a.nodes[m.node].replacement
		next := currentLen - m.patternLen + len(repl)
		if next > capacity {
			continue
		}
		copy(buf[m.Start+len(repl):next], buf[m.End+1:currentLen])
		copy(buf[m.Start:m.Start+len(repl)], repl)
		currentLen = next
		applied++
	}

	return currentLen, applied, nil
}
