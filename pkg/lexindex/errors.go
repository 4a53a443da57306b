package lexindex

import "errors"

// Sentinel errors returned by key validation and generation. Callers match
// them with errors.Is; the wrapped messages carry the offending keys.
var (
	// ErrEmptyIndex reports an empty string where an ordering key was
	// required.
	ErrEmptyIndex = errors.New("empty index")

	// ErrInvalidCharacter reports a byte outside the indexer's alphabet.
	ErrInvalidCharacter = errors.New("character outside alphabet")

	// ErrTerminalMinimum reports a key ending with the alphabet's minimum
	// symbol. Such keys add no ordering information over their prefix and
	// exhaust the room below it, so they are rejected everywhere a key is
	// consumed and never produced by the generators.
	ErrTerminalMinimum = errors.New("index ends with the minimum symbol")

	// ErrNotOrdered reports a Between call whose bounds are equal or
	// inverted.
	ErrNotOrdered = errors.New("indices not in strictly ascending order")

	// ErrNoRoom reports a Between call whose bounds admit no key strictly
	// inside them. This only happens when the upper bound extends the lower
	// with minimum symbols, for example ("B", "BA").
	ErrNoRoom = errors.New("no index exists between the given bounds")

	// ErrBadAlphabet reports an alphabet that cannot form an Indexer: too
	// few symbols, repeated or unordered bytes, or bytes outside printable
	// ASCII.
	ErrBadAlphabet = errors.New("unusable alphabet")
)
