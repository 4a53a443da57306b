package cmd

import (
	"github.com/spf13/cobra"
)

func newBetweenCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "between <before> <after>",
		Short: "Mint a key that sorts between two existing keys",
		Long: `Mint a key that sorts strictly between two existing keys.

The bounds must be valid keys with before < after. The result is the
key for an item moved or inserted between the two: the neighbors keep
their keys, only the one item gets a new one.

When the gap holds no key (the bounds are adjacent and cannot be
split), the command fails with exit code 3. That ordering needs its
keys reassigned; 'lexindex seed' produces a fresh, evenly spaced set.

Examples:
  lexindex between B C
  lexindex between B C --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBetween(cmd, args[0], args[1], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json")

	return cmd
}

func runBetween(cmd *cobra.Command, before, after, format string) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	ix, err := cfg.Indexer()
	if err != nil {
		return err
	}

	key, err := ix.Between(before, after)
	if err != nil {
		return err
	}

	return writeKey(cmd, format, key)
}
