package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ordinalab/lexindex/pkg/version"
)

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	var asJSON bool
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the lexindex version along with commit, build date, and toolchain details.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeVersion(cmd.OutOrStdout(), short, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print build info as indented JSON")
	cmd.Flags().BoolVar(&short, "short", false, "Print only the bare version number")
	cmd.MarkFlagsMutuallyExclusive("json", "short")

	return cmd
}

func writeVersion(w io.Writer, short, asJSON bool) error {
	switch {
	case short:
		_, err := fmt.Fprintln(w, version.Short())
		return err
	case asJSON:
		out, err := json.MarshalIndent(version.GetInfo(), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	default:
		_, err := fmt.Fprintln(w, version.String())
		return err
	}
}
