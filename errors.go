package acsub

import "errors"

// Sentinel errors returned by the engine. Callers that need additional
// context wrap these at their own boundary (rulefile adds the rule index
// with github.com/pkg/errors; cmd/acsubctl names the failing step with
// fmt.Errorf and %w); the engine itself never
// wraps, since wrapping allocates and matching/replacement must stay
// allocation-free on their hot path.
var (
	// ErrEmptyPattern is returned by Register/RegisterEx for a zero-length pattern.
	ErrEmptyPattern = errors.New("acsub: empty pattern")

	// ErrCapacity is returned when a registration would exceed the automaton's
	// fixed node-arena capacity. The arena never grows; see New.
	ErrCapacity = errors.New("acsub: automaton at capacity")

	// ErrAlreadyCompiled is returned by a second Compile call without an
	// intervening Reset.
	ErrAlreadyCompiled = errors.New("acsub: already compiled")

	// ErrNotCompiled is returned by Scan/Replace* when called before Compile.
	ErrNotCompiled = errors.New("acsub: automaton not compiled")
)
