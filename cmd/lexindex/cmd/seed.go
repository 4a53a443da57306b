package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ordinalab/lexindex/internal/exitcode"
)

func newSeedCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "seed <count>",
		Short: "Mint ready-to-use keys for a new collection",
		Long: `Mint a strictly ascending run of keys for seeding an empty collection.

Starts from the first key and steps upward. Every pair of neighbors
leaves room for later inserts, and there is room before the first key
too.

Examples:
  lexindex seed 5
  lexindex seed 100 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return exitcode.Wrap(fmt.Errorf("count must be a positive integer, got %q", args[0]), exitcode.Usage)
			}
			return runSeed(cmd, n, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json")

	return cmd
}

func runSeed(cmd *cobra.Command, n int, format string) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	ix, err := cfg.Indexer()
	if err != nil {
		return err
	}

	keys := make([]string, 0, n)
	cur := ix.First()
	keys = append(keys, cur)
	for i := 1; i < n; i++ {
		cur, err = ix.After(cur)
		if err != nil {
			return err
		}
		keys = append(keys, cur)
	}

	return writeKeys(cmd, format, keys)
}
