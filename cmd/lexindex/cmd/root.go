// Package cmd provides the CLI commands for lexindex.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ordinalab/lexindex/internal/config"
	"github.com/ordinalab/lexindex/internal/exitcode"
	"github.com/ordinalab/lexindex/internal/logging"
	"github.com/ordinalab/lexindex/internal/profiling"
	"github.com/ordinalab/lexindex/pkg/version"
)

// Profiling flags
var (
	profileCPU   string
	profileMem   string
	profileTrace string
	profiler     = profiling.NewProfiler()
)

// Output and logging flags
var (
	debugMode bool
	noColor   bool
	quiet     bool
)

// teardowns collects the stop functions the pre-run hook arms. The
// post-run hook drains them newest first; so does the pre-run hook
// itself when a later step fails, since cobra skips the post-run after
// a failed pre-run.
var teardowns []func()

func pushTeardown(f func()) { teardowns = append(teardowns, f) }

func drainTeardowns() {
	for i := len(teardowns) - 1; i >= 0; i-- {
		teardowns[i]()
	}
	teardowns = nil
}

// NewRootCmd creates the root command for the lexindex CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexindex",
		Short: "Ordering keys for lists that move",
		Long: `Lexindex mints ordering keys: short strings whose alphabetical order
is the list order. Reordering an item means minting one key between
its new neighbors; no other item is touched.

Running 'lexindex' with no arguments starts the MCP server on stdio,
ready for an MCP client to attach. Everything else lives in
subcommands.`,
		Version: version.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If help was explicitly requested, show it
			if len(args) > 0 {
				return cmd.Help()
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, "")
		},
	}

	// Set version template
	cmd.SetVersionTemplate("lexindex version {{.Version}}\n")

	// Output flags
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Suppress status output, print results only")

	// Profiling flags
	cmd.PersistentFlags().StringVar(&profileCPU, "profile-cpu", "", "Write CPU profile to file")
	cmd.PersistentFlags().StringVar(&profileMem, "profile-mem", "", "Write memory profile to file")
	cmd.PersistentFlags().StringVar(&profileTrace, "profile-trace", "", "Write execution trace to file")

	// Debug logging flag
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.lexindex/logs/")

	// Setup profiling and logging hooks
	cmd.PersistentPreRunE = startProfilingAndLogging
	cmd.PersistentPostRunE = stopProfilingAndLogging

	// Key operations
	cmd.AddCommand(newBetweenCmd())
	cmd.AddCommand(newBeforeCmd())
	cmd.AddCommand(newAfterCmd())
	cmd.AddCommand(newSeedCmd())

	// Sequence checking
	cmd.AddCommand(newCheckCmd())

	// MCP server
	cmd.AddCommand(newServeCmd())

	// Interactive playground
	cmd.AddCommand(newPlayCmd())

	// Configuration
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newConfigCmd())

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// startProfilingAndLogging arms debug logging and CPU/trace profiling
// for whichever flags are set.
func startProfilingAndLogging(_ *cobra.Command, _ []string) error {
	if debugMode {
		logger, cleanup, err := logging.Setup(logging.DebugConfig())
		if err != nil {
			return fmt.Errorf("failed to setup debug logging: %w", err)
		}
		slog.SetDefault(logger)
		slog.Info("Debug logging enabled",
			slog.String("log_file", logging.DefaultLogPath()),
			slog.String("version", version.Version))
		pushTeardown(func() {
			slog.Info("Debug logging stopped")
			cleanup()
		})
	}

	if profileCPU != "" {
		stop, err := profiler.StartCPU(profileCPU)
		if err != nil {
			drainTeardowns()
			return fmt.Errorf("failed to start CPU profile: %w", err)
		}
		pushTeardown(stop)
	}

	if profileTrace != "" {
		stop, err := profiler.StartTrace(profileTrace)
		if err != nil {
			drainTeardowns()
			return fmt.Errorf("failed to start trace: %w", err)
		}
		pushTeardown(stop)
	}

	return nil
}

// stopProfilingAndLogging runs the armed teardowns and writes the memory
// profile if requested.
func stopProfilingAndLogging(_ *cobra.Command, _ []string) error {
	drainTeardowns()

	if profileMem != "" {
		if err := profiler.WriteHeap(profileMem); err != nil {
			return fmt.Errorf("failed to write memory profile: %w", err)
		}
	}

	return nil
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// loadProjectConfig loads the layered configuration for the project the
// command runs in. Configuration problems map to the config exit code.
func loadProjectConfig() (*config.Config, error) {
	root, err := config.FindProjectRoot(".")
	if err != nil {
		root, _ = os.Getwd()
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, exitcode.Wrap(err, exitcode.Config)
	}
	return cfg, nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
