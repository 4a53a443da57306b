package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ordinalab/lexindex/internal/exitcode"
	"github.com/ordinalab/lexindex/internal/logging"
	"github.com/ordinalab/lexindex/internal/ui"
)

func newPlayCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Interactive ordering-key playground",
		Long: `Explore ordering keys in an interactive list.

Insert, move, and delete items; every edit shows the engine call it
made and the key it minted. Watch how only the touched item ever
changes keys, and how keys grow when a gap gets crowded.

Keys: i insert above, o insert below, J/K move, d delete, q quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, count)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "Items to seed on startup (0 = from config)")

	return cmd
}

func runPlay(cmd *cobra.Command, count int) error {
	// File logging keeps TUI sessions diagnosable; the terminal belongs to
	// the playground
	logCfg := logging.DefaultConfig()
	logCfg.WriteToStderr = false
	if _, cleanup, err := logging.Setup(logCfg); err == nil {
		defer cleanup()
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	ix, err := cfg.Indexer()
	if err != nil {
		return err
	}

	if !ui.IsTTY(cmd.OutOrStdout()) || ui.DetectCI() {
		return exitcode.Wrap(fmt.Errorf("play needs an interactive terminal (not a pipe or CI runner)"), exitcode.Usage)
	}

	if count <= 0 {
		count = cfg.Play.InitialCount
	}
	dim := noColor || cfg.Output.NoColor || ui.DetectNoColor()

	m := ui.NewPlayModel(ix, count, dim)
	return ui.RunPlay(m, cmd.OutOrStdout())
}
