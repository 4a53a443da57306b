package sequence

import (
	"fmt"
	"testing"

	"github.com/ordinalab/lexindex/pkg/lexindex"
)

// appendChain mints n keys the way an append-heavy list would: first key,
// then successor after successor.
func appendChain(b *testing.B, n int) []Key {
	b.Helper()
	values := make([]string, n)
	values[0] = lexindex.First()
	for i := 1; i < n; i++ {
		next, err := lexindex.After(values[i-1])
		if err != nil {
			b.Fatalf("minting key %d: %v", i, err)
		}
		values[i] = next
	}
	return FromValues(values)
}

func BenchmarkCheck(b *testing.B) {
	ix := lexindex.MustNew(lexindex.StandardAlphabet)

	for _, scale := range []int{100, 10000} {
		keys := appendChain(b, scale)

		b.Run(fmt.Sprintf("scale_%d", scale), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				rep := Check(ix, keys, 0)
				if !rep.OK() {
					b.Fatalf("expected a clean report, got %d findings", len(rep.Findings))
				}
			}
		})
	}
}
