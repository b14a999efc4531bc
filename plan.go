package acsub

import "sort"

// planForward sorts matches ascending by Start for the allocating
// replacement modes. Ties (matches sharing a Start) are broken by
// longest pattern first: a stable, registration-order-independent rule
// for when two registered patterns share a starting offset.
func planForward(matches []Match) []Match {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Start != matches[j].Start {
			return matches[i].Start < matches[j].Start
		}
		return matches[i].patternLen > matches[j].patternLen
	})
	return matches
}

// planReverse sorts matches descending by Start, for ReplaceInPlace's
// right-to-left splice order.
func planReverse(matches []Match) []Match {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Start != matches[j].Start {
			return matches[i].Start > matches[j].Start
		}
		return matches[i].patternLen > matches[j].patternLen
	})
	return matches
}

// leftmostWins applies overlap resolution to a Start-ascending match
// slice: among overlapping candidates, the one
// with the smallest Start is kept and later-starting overlaps are
// discarded. matches must already be sorted ascending by Start (as
// planForward leaves them).
func leftmostWins(matches []Match) []Match {
	kept := make([]Match, 0, len(matches))
	textPos := 0
	for _, m := range matches {
		if m.Start < textPos {
			continue
		}
		kept = append(kept, m)
		textPos = m.End + 1
	}
	return kept
}
