package lexindex

import (
	"fmt"
)

// StandardAlphabet is the default symbol set: the uppercase latin letters in
// byte order. 'A' is the minimum symbol, 'Z' the maximum, and First returns
// "B".
const StandardAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Indexer generates ordering keys over one fixed alphabet. The zero value is
// not usable; construct with New or MustNew. An Indexer is immutable and safe
// for concurrent use.
type Indexer struct {
	symbols string     // alphabet bytes in strictly ascending order
	digits  [256]int16 // byte -> digit value, -1 for bytes outside the alphabet
	base    int        // len(symbols)
	min     byte       // symbols[0], the padding symbol for lower bounds
	max     byte       // symbols[base-1], the padding symbol for upper bounds
	initial byte       // symbols[1], the first key of a fresh collection
}

// New builds an Indexer over the given alphabet. The alphabet must hold at
// least three distinct printable ASCII bytes in strictly ascending order, so
// that byte-wise string comparison and digit-value comparison agree.
func New(alphabet string) (*Indexer, error) {
	if len(alphabet) < 3 {
		return nil, fmt.Errorf("%w: need at least 3 symbols, got %d", ErrBadAlphabet, len(alphabet))
	}
	ix := &Indexer{
		symbols: alphabet,
		base:    len(alphabet),
		min:     alphabet[0],
		max:     alphabet[len(alphabet)-1],
		initial: alphabet[1],
	}
	for i := range ix.digits {
		ix.digits[i] = -1
	}
	var prev byte
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if c < '!' || c > '~' {
			return nil, fmt.Errorf("%w: symbol 0x%02x at position %d is not printable ASCII", ErrBadAlphabet, c, i)
		}
		if i > 0 && c <= prev {
			return nil, fmt.Errorf("%w: symbol %q at position %d is not strictly above %q", ErrBadAlphabet, c, i, prev)
		}
		ix.digits[c] = int16(i)
		prev = c
	}
	return ix, nil
}

// MustNew is New for alphabets known good at compile time. It panics on a bad
// alphabet, mirroring regexp.MustCompile.
func MustNew(alphabet string) *Indexer {
	ix, err := New(alphabet)
	if err != nil {
		panic(err)
	}
	return ix
}

// Alphabet returns the indexer's symbol set in ascending order.
func (ix *Indexer) Alphabet() string {
	return ix.symbols
}

// Base returns the number of symbols in the alphabet.
func (ix *Indexer) Base() int {
	return ix.base
}

// First returns the seed key for an empty collection: the second symbol of
// the alphabet. Starting one symbol above the floor leaves room for Before
// without immediately extending key length.
func (ix *Indexer) First() string {
	return string(ix.initial)
}

// Validate reports whether index is a well-formed ordering key: non-empty,
// every byte inside the alphabet, and not ending with the minimum symbol.
// A nil return means every generator in this package accepts the key.
func (ix *Indexer) Validate(index string) error {
	if err := ix.checkSymbols(index); err != nil {
		return err
	}
	if index[len(index)-1] == ix.min {
		return fmt.Errorf("index %q: %w", index, ErrTerminalMinimum)
	}
	return nil
}

// checkSymbols enforces the alphabet membership rules shared by every
// operation, without the terminal-minimum rule. Between tolerates a
// terminal minimum on its bounds so that keys from foreign generators can
// still be subdivided.
func (ix *Indexer) checkSymbols(index string) error {
	if index == "" {
		return ErrEmptyIndex
	}
	for i := 0; i < len(index); i++ {
		if ix.digits[index[i]] < 0 {
			return fmt.Errorf("index %q: %w: byte %q at position %d", index, ErrInvalidCharacter, index[i], i)
		}
	}
	return nil
}

// digitLow reads the digit at position i, treating positions past the end of
// the key as the minimum digit. This is the padding rule for lower bounds: a
// key denotes the smallest fraction with its digits.
func (ix *Indexer) digitLow(index string, i int) int {
	if i >= len(index) {
		return 0
	}
	return int(ix.digits[index[i]])
}

// digitHigh reads the digit at position i, treating positions past the end of
// the key as the maximum digit. This is the padding rule for upper bounds.
func (ix *Indexer) digitHigh(index string, i int) int {
	if i >= len(index) {
		return ix.base - 1
	}
	return int(ix.digits[index[i]])
}
