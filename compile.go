package acsub

// Compile builds the failure and output links over the registered
// patterns via a breadth-first walk of the trie. It is
// idempotent-guarded: calling Compile twice without an intervening
// Reset returns ErrAlreadyCompiled, leaving the automaton unchanged.
func (a *Automaton) Compile() error {
	if a.compiled {
		return ErrAlreadyCompiled
	}

	const root = int32(0)
	a.nodes[root].failure = root

	queue := make([]int32, 0, len(a.nodes))
	queue = append(queue, root)

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for b := 0; b < 256; b++ {
			v := a.nodes[u].children[b]
			if v == noChild {
				continue
			}

			if u == root {
				a.nodes[v].failure = root
			} else {
				f := a.nodes[u].failure
				for {
					if child := a.nodes[f].children[b]; child != noChild {
						a.nodes[v].failure = child
						break
					}
					if f == root {
						a.nodes[v].failure = root
						break
					}
					f = a.nodes[f].failure
				}
			}

			fail := a.nodes[v].failure
			if a.nodes[fail].terminal {
				a.nodes[v].output = fail
			} else {
				a.nodes[v].output = a.nodes[fail].output
			}

			queue = append(queue, v)
		}
	}

	a.compiled = true
	return nil
}
