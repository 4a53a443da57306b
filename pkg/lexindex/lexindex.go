package lexindex

import (
	"fmt"
	"strings"
)

// standard is the shared A-Z indexer behind the package-level functions.
var standard = MustNew(StandardAlphabet)

// First returns the seed key for an empty collection under the standard
// alphabet: "B".
func First() string { return standard.First() }

// Between returns a key sorting strictly between before and after under the
// standard alphabet. See Indexer.Between.
func Between(before, after string) (string, error) { return standard.Between(before, after) }

// Before returns a key sorting strictly below index under the standard
// alphabet. See Indexer.Before.
func Before(index string) (string, error) { return standard.Before(index) }

// After returns a key sorting strictly above index under the standard
// alphabet. See Indexer.After.
func After(index string) (string, error) { return standard.After(index) }

// Validate reports whether index is a well-formed key under the standard
// alphabet. See Indexer.Validate.
func Validate(index string) error { return standard.Validate(index) }

// Compare orders two keys the way every generator in this package does:
// plain byte-wise string comparison. It returns -1 when a sorts below b,
// 0 when equal, and +1 when a sorts above b.
func Compare(a, b string) int { return strings.Compare(a, b) }

// Between mints a key k with before < k < after. The bounds must be
// non-empty, inside the alphabet, and strictly ascending; equal or inverted
// bounds fail with ErrNotOrdered rather than guessing at intent. Bounds
// ending with the minimum symbol are tolerated so keys minted elsewhere can
// still be subdivided, but when after extends before with nothing but
// minimum symbols the gap is empty and Between fails with ErrNoRoom.
//
// The result is as short as the gap allows: digits are copied while the
// padded bounds agree, the first position with room between them is settled
// with the midpoint digit, and only an already-minimal gap grows the key.
func (ix *Indexer) Between(before, after string) (string, error) {
	if err := ix.checkSymbols(before); err != nil {
		return "", err
	}
	if err := ix.checkSymbols(after); err != nil {
		return "", err
	}
	if before >= after {
		return "", fmt.Errorf("%q is not strictly below %q: %w", before, after, ErrNotOrdered)
	}

	n := len(before)
	if len(after) > n {
		n = len(after)
	}
	var key strings.Builder
	key.Grow(n + 1)
	for i := 0; i < n; i++ {
		lo := ix.digitLow(before, i)
		hi := ix.digitHigh(after, i)
		if lo == hi {
			key.WriteByte(ix.symbols[lo])
			continue
		}
		if mid := (lo + hi) / 2; mid > lo {
			key.WriteByte(ix.symbols[mid])
			return key.String(), nil
		}
		// Adjacent digits leave no midpoint at this position. Keep the
		// lower digit; anything under it still sorts below after, so the
		// key only has to outgrow the rest of before.
		key.WriteByte(ix.symbols[lo])
		ix.extendAbove(&key, before, i+1)
		return key.String(), nil
	}
	// Every padded position agreed, so after is before plus trailing
	// minimum symbols and the gap holds no key at all.
	return "", fmt.Errorf("%q and %q: %w", before, after, ErrNoRoom)
}

// extendAbove appends digits sorting strictly above the tail of index from
// position i on, staying near the middle of the space that remains. Digits
// with headroom settle in one symbol; digits at or next to the maximum ride
// it one position deeper.
func (ix *Indexer) extendAbove(key *strings.Builder, index string, i int) {
	for ; ; i++ {
		d := ix.digitLow(index, i)
		if mid := (d + ix.base - 1) / 2; mid > d {
			key.WriteByte(ix.symbols[mid])
			return
		}
		key.WriteByte(ix.max)
		if d < ix.base-1 {
			return
		}
	}
}

// Before returns a key sorting strictly below index. The key is found by
// decrementing the rightmost digit above the initial symbol and keeping the
// rest; a key carrying only floor and initial symbols instead trades its
// last digit for a minimum-maximum extension, so Before("B") is "AZ" and
// Before("BB") is "BAZ". Both shapes stay close under the input, leaving the
// space below them free for later inserts.
//
// The input must satisfy Validate. Valid keys always have room below them,
// so Before only fails on malformed input.
func (ix *Indexer) Before(index string) (string, error) {
	if err := ix.Validate(index); err != nil {
		return "", err
	}
	for i := len(index) - 1; i >= 0; i-- {
		if d := int(ix.digits[index[i]]); d > 1 {
			return index[:i] + string(ix.symbols[d-1]) + index[i+1:], nil
		}
	}
	return index[:len(index)-1] + string(ix.min) + string(ix.max), nil
}

// After returns a key sorting strictly above index: the last digit is
// incremented, and a key already ending at the maximum symbol grows by one
// initial symbol instead, so After("Z") is "ZB". The input must satisfy
// Validate; valid keys always have room above them.
func (ix *Indexer) After(index string) (string, error) {
	if err := ix.Validate(index); err != nil {
		return "", err
	}
	last := index[len(index)-1]
	if last == ix.max {
		return index + string(ix.initial), nil
	}
	d := int(ix.digits[last])
	return index[:len(index)-1] + string(ix.symbols[d+1]), nil
}
