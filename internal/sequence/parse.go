package sequence

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads a key sequence from r: one key per line with surrounding
// whitespace trimmed. Blank lines and lines starting with '#' are
// skipped. Source line numbers are preserved for findings.
//
// Valid alphabets never contain whitespace, so trimming cannot corrupt
// a key. Custom alphabets may contain '#', in which case keys starting
// with it cannot be written in a key file.
func Parse(r io.Reader) ([]Key, error) {
	var keys []Key

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		keys = append(keys, Key{Value: text, Line: line})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read keys: %w", err)
	}
	return keys, nil
}

// ParseFile reads a key sequence from path.
func ParseFile(path string) ([]Key, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open key file: %w", err)
	}
	defer func() { _ = f.Close() }()

	keys, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return keys, nil
}

// FromValues wraps raw key strings as a sequence with no source lines.
func FromValues(values []string) []Key {
	keys := make([]Key, len(values))
	for i, v := range values {
		keys[i] = Key{Value: v}
	}
	return keys
}
