// Package lexindex generates lexicographic ordering keys for user-arranged
// collections.
//
// An ordering key (an "index") is a short string over a fixed alphabet whose
// plain byte-wise comparison encodes list position. Moving an item between two
// neighbours never rewrites the neighbours: Between mints a fresh key that
// sorts strictly inside the gap, so a reorder is always a single-row update.
//
// # Model
//
// Keys are read as base-N fractions, one symbol per digit. With the standard
// A-Z alphabet, "B" is the fraction 1/26, "BM" is 1/26 + 12/676, and so on.
// Between two fractions there is always another fraction, so the key space
// never runs out; keys only grow one digit at a time, and only when the gap
// they subdivide is already minimal.
//
// One representational rule keeps that promise: a key never ends with the
// minimum symbol ('A' in the standard alphabet). A trailing minimum adds no
// ordering information ("B" and "BA" bound the same gaps from above) but
// would sort between "B" and everything previously minted after "B",
// silently eating the room below its neighbour. Validate enforces the rule
// and the generators never produce such keys.
//
// # Usage
//
// Seed a fresh collection and insert around existing rows:
//
//	head := lexindex.First()                // "B"
//	tail, err := lexindex.After(head)       // "C"
//	mid, err := lexindex.Between(head, tail) // "BM"
//
// All three generators return errors rather than clamp: out-of-alphabet
// bytes, empty input, inverted bounds, and a Before at the floor of the key
// space are reported via the sentinel errors in this package and can be
// tested with errors.Is.
//
// Collections that need a different symbol set (case-sensitive base62,
// digits-only, hex) construct their own Indexer:
//
//	ix, err := lexindex.New("0123456789")
//	key, err := ix.Between("3", "4") // "34"
//
// # Thread Safety
//
// An Indexer is immutable after construction and safe for concurrent use.
// The package-level functions share one standard Indexer and are likewise
// safe from multiple goroutines.
package lexindex
