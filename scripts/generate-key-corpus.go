//go:build ignore

// Package main generates synthetic key files for exercising check at
// scale.
// Usage: go run scripts/generate-key-corpus.go -files 8 -keys 5000 -output testdata/corpus
//
// Each file holds one strictly ascending key sequence grown by random
// inserts, so key lengths spread out the way a long-lived list's do.
// With -dirty some files get a single injected problem (swapped pair,
// duplicate, or bad symbol) for testing the failure paths.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/ordinalab/lexindex/pkg/lexindex"
)

var (
	numFiles = flag.Int("files", 8, "Number of key files to generate")
	numKeys  = flag.Int("keys", 5000, "Keys per file")
	output   = flag.String("output", "testdata/corpus", "Output directory")
	seed     = flag.Int64("seed", 42, "Random seed for reproducibility")
	dirty    = flag.Int("dirty", 0, "Number of files to corrupt with one problem each")
)

func main() {
	flag.Parse()

	if *dirty > *numFiles {
		fmt.Fprintln(os.Stderr, "-dirty cannot exceed -files")
		os.Exit(1)
	}

	if err := os.MkdirAll(*output, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create output dir: %v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))

	for i := 0; i < *numFiles; i++ {
		keys, err := growSequence(rng, *numKeys)
		if err != nil {
			fmt.Fprintf(os.Stderr, "grow sequence: %v\n", err)
			os.Exit(1)
		}

		note := "clean"
		if i < *dirty {
			note = corrupt(rng, keys)
		}

		path := filepath.Join(*output, fmt.Sprintf("corpus-%03d.keys", i))
		if err := writeKeyFile(path, keys, note); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("%s: %d keys (%s)\n", path, len(keys), note)
	}
}

// growSequence builds an ascending sequence by random edits: mostly
// inserts between random neighbors, with occasional appends and
// prepends. This spreads key lengths out instead of marching the tail
// digit like a pure append chain would.
func growSequence(rng *rand.Rand, n int) ([]string, error) {
	keys := []string{lexindex.First()}

	for len(keys) < n {
		var (
			key string
			err error
			at  int
		)

		switch roll := rng.Intn(10); {
		case roll == 0:
			key, err = lexindex.Before(keys[0])
			at = 0
		case roll <= 2:
			key, err = lexindex.After(keys[len(keys)-1])
			at = len(keys)
		default:
			i := rng.Intn(len(keys))
			if i == len(keys)-1 {
				key, err = lexindex.After(keys[i])
				at = len(keys)
			} else {
				key, err = lexindex.Between(keys[i], keys[i+1])
				at = i + 1
			}
		}
		if err != nil {
			return nil, err
		}

		keys = append(keys, "")
		copy(keys[at+1:], keys[at:])
		keys[at] = key
	}

	return keys, nil
}

// corrupt injects one problem into keys and names it. Line numbers
// count the header comment the file starts with.
func corrupt(rng *rand.Rand, keys []string) string {
	i := 1 + rng.Intn(len(keys)-1)
	switch rng.Intn(3) {
	case 0:
		keys[i-1], keys[i] = keys[i], keys[i-1]
		return fmt.Sprintf("swapped lines %d-%d", i+1, i+2)
	case 1:
		keys[i] = keys[i-1]
		return fmt.Sprintf("duplicate at line %d", i+2)
	default:
		keys[i] = strings.ToLower(keys[i])
		return fmt.Sprintf("bad symbol at line %d", i+2)
	}
}

func writeKeyFile(path string, keys []string, note string) error {
	var buf strings.Builder
	fmt.Fprintf(&buf, "# generated key corpus (%s), one key per line\n", note)
	for _, k := range keys {
		buf.WriteString(k)
		buf.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(buf.String()), 0o644)
}
