package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ordinalab/lexindex/internal/exitcode"
)

func newAfterCmd() *cobra.Command {
	var (
		count  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "after <key>",
		Short: "Mint a key that sorts after an existing key",
		Long: `Mint a key that sorts strictly after an existing key.

This is the key for an item appended at the end of a list: the old
last item keeps its key. There is always room; the operation never
runs out of keys.

With --count, each step starts from the previous result, producing an
ascending chain with the nearest key first.

Examples:
  lexindex after M
  lexindex after M --count 3
  lexindex after M --count 3 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAfter(cmd, args[0], count, format)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of keys to mint")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json")

	return cmd
}

func runAfter(cmd *cobra.Command, key string, count int, format string) error {
	if count < 1 {
		return exitcode.Wrap(fmt.Errorf("count must be at least 1, got %d", count), exitcode.Usage)
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	ix, err := cfg.Indexer()
	if err != nil {
		return err
	}

	keys := make([]string, 0, count)
	cur := key
	for i := 0; i < count; i++ {
		cur, err = ix.After(cur)
		if err != nil {
			return err
		}
		keys = append(keys, cur)
	}

	return writeKeys(cmd, format, keys)
}
