// Package sequence checks ordering-key sequences for validity and strict
// ascending order. It backs the check command: keys come in as inline
// arguments or as key files, and problems come back as structured
// findings that carry their source position.
package sequence

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ordinalab/lexindex/pkg/lexindex"
)

// Kind classifies a finding.
type Kind string

const (
	// KindInvalidKey means the key failed validation.
	KindInvalidKey Kind = "invalid_key"
	// KindDuplicate means the key equals the preceding valid key.
	KindDuplicate Kind = "duplicate"
	// KindOutOfOrder means the key sorts below the preceding valid key.
	KindOutOfOrder Kind = "out_of_order"
)

// Key is one entry of a key sequence, with its source line when the
// sequence came from a file.
type Key struct {
	Value string
	Line  int // 1-based; 0 when the sequence was not read from a file
}

// Finding reports one problem in a key sequence.
type Finding struct {
	Pos    int    `json:"pos"`            // 0-based position in the sequence
	Line   int    `json:"line,omitempty"` // 1-based source line, when file-backed
	Key    string `json:"key"`
	Kind   Kind   `json:"kind"`
	Detail string `json:"detail"`
}

// Report summarizes one sequence check.
type Report struct {
	Source    string    `json:"source,omitempty"`
	Total     int       `json:"total"`
	Findings  []Finding `json:"findings,omitempty"`
	Truncated bool      `json:"truncated,omitempty"` // finding cap reached, scan stopped early
}

// OK reports whether the check passed.
func (r *Report) OK() bool {
	return len(r.Findings) == 0
}

// Check validates each key and verifies the sequence is strictly
// ascending. Ordering is compared between successive valid keys, so a
// single misplaced key yields one finding instead of cascading into its
// neighbors. maxFindings caps the findings collected; <= 0 collects all.
func Check(ix *lexindex.Indexer, keys []Key, maxFindings int) *Report {
	rep := &Report{Total: len(keys)}

	add := func(f Finding) bool {
		rep.Findings = append(rep.Findings, f)
		if maxFindings > 0 && len(rep.Findings) >= maxFindings {
			rep.Truncated = true
			return false
		}
		return true
	}

	prev := -1 // index of the preceding valid key
	for i, k := range keys {
		if err := ix.Validate(k.Value); err != nil {
			if !add(Finding{Pos: i, Line: k.Line, Key: k.Value, Kind: KindInvalidKey, Detail: err.Error()}) {
				return rep
			}
			continue
		}

		if prev >= 0 {
			switch c := lexindex.Compare(keys[prev].Value, k.Value); {
			case c == 0:
				if !add(Finding{Pos: i, Line: k.Line, Key: k.Value, Kind: KindDuplicate,
					Detail: "already seen at " + ref(keys[prev], prev)}) {
					return rep
				}
			case c > 0:
				if !add(Finding{Pos: i, Line: k.Line, Key: k.Value, Kind: KindOutOfOrder,
					Detail: fmt.Sprintf("sorts below %q at %s", keys[prev].Value, ref(keys[prev], prev))}) {
					return rep
				}
			}
		}
		prev = i
	}

	return rep
}

// ref names a key's location the way the caller saw it.
func ref(k Key, pos int) string {
	if k.Line > 0 {
		return fmt.Sprintf("line %d", k.Line)
	}
	return fmt.Sprintf("position %d", pos)
}

// CheckFiles checks several key files concurrently. Reports come back in
// input order with Source set to the file path. workers <= 0 means one
// per CPU. A file that cannot be read fails the whole call.
func CheckFiles(ctx context.Context, ix *lexindex.Indexer, paths []string, workers, maxFindings int) ([]*Report, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	reports := make([]*Report, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, workers)

	for i, path := range paths {
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-gctx.Done():
				return gctx.Err()
			}

			keys, err := ParseFile(path)
			if err != nil {
				return err
			}

			rep := Check(ix, keys, maxFindings)
			rep.Source = path
			reports[i] = rep
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
