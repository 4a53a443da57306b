package lexindex

import (
	"strings"
	"testing"
)

// narrowingPair returns bounds that moved within steps halvings of each
// other, forcing Between deep into shared-prefix territory.
func narrowingPair(b *testing.B, steps int) (string, string) {
	b.Helper()
	lo, hi := "B", "C"
	for i := 0; i < steps; i++ {
		mid, err := Between(lo, hi)
		if err != nil {
			b.Fatalf("narrowing step %d: %v", i, err)
		}
		if i%2 == 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo, hi
}

func BenchmarkBetween(b *testing.B) {
	deepLo, deepHi := narrowingPair(b, 50)

	cases := []struct {
		name          string
		before, after string
	}{
		{"wide_gap", "B", "Z"},
		{"unit_gap", "B", "C"},
		{"deep_gap", deepLo, deepHi},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Between(tc.before, tc.after); err != nil {
					b.Fatalf("between failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkBetween_Parallel(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := Between("B", "C"); err != nil {
				b.Fatalf("between failed: %v", err)
			}
		}
	})
}

func BenchmarkAfter_Chain(b *testing.B) {
	b.ReportAllocs()
	// Restart periodically so key length stays in the realistic range
	// instead of growing with b.N
	key := First()
	for i := 0; i < b.N; i++ {
		if i%1000 == 0 {
			key = First()
		}
		next, err := After(key)
		if err != nil {
			b.Fatalf("after failed: %v", err)
		}
		key = next
	}
}

func BenchmarkBefore_Chain(b *testing.B) {
	b.ReportAllocs()
	key := "M"
	for i := 0; i < b.N; i++ {
		if i%1000 == 0 {
			key = "M"
		}
		prev, err := Before(key)
		if err != nil {
			b.Fatalf("before failed: %v", err)
		}
		key = prev
	}
}

func BenchmarkValidate(b *testing.B) {
	cases := []struct {
		name string
		key  string
	}{
		{"short", "BM"},
		{"long", strings.Repeat("M", 64)},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if err := Validate(tc.key); err != nil {
					b.Fatalf("validate failed: %v", err)
				}
			}
		})
	}
}
