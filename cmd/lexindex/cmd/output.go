package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ordinalab/lexindex/internal/exitcode"
)

// keyResult is the JSON shape for commands that mint a single key.
type keyResult struct {
	Key string `json:"key"`
}

// keysResult is the JSON shape for commands that mint a key sequence.
type keysResult struct {
	Keys []string `json:"keys"`
}

// writeKey prints a single key in the requested format. Text output is the
// bare key, one line, so results pipe cleanly into scripts.
func writeKey(cmd *cobra.Command, format, key string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(keyResult{Key: key})
	case "text":
		_, err := fmt.Fprintln(cmd.OutOrStdout(), key)
		return err
	default:
		return invalidFormat(format)
	}
}

// writeKeys prints a key sequence, one key per line in text format.
func writeKeys(cmd *cobra.Command, format string, keys []string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(keysResult{Keys: keys})
	case "text":
		for _, k := range keys {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), k); err != nil {
				return err
			}
		}
		return nil
	default:
		return invalidFormat(format)
	}
}

func invalidFormat(format string) error {
	return exitcode.Wrap(fmt.Errorf("invalid format: %s (use: text, json)", format), exitcode.Usage)
}
