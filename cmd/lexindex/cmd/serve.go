package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ordinalab/lexindex/internal/exitcode"
	"github.com/ordinalab/lexindex/internal/logging"
	"github.com/ordinalab/lexindex/internal/mcp"
	"github.com/ordinalab/lexindex/internal/telemetry"
	"github.com/ordinalab/lexindex/pkg/version"
)

func newServeCmd() *cobra.Command {
	var transport string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server",
		Long: `Run the MCP server, exposing key operations as tools.

The server speaks JSON-RPC over stdio and is meant to be started by
an MCP client, not interactively. Stdout carries protocol frames
exclusively; logs go to ~/.lexindex/logs/.

Tools: between, before, after, first, validate, stats.
Resources: lexindex://alphabet, lexindex://op_metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, transport)
		},
	}

	cmd.Flags().StringVar(&transport, "transport", "stdio", "Transport protocol (stdio)")

	return cmd
}

// runServe starts the MCP server. An empty transport falls back to the
// configured one. Also the smart default when the CLI runs with no args.
func runServe(ctx context.Context, transport string) error {
	// MCP clients read JSON-RPC from our stdout. Route every log line to
	// file before anything can write, or the client disconnects.
	if cleanup, err := logging.SetupMCPMode(); err == nil {
		defer cleanup()
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		slog.Error("configuration rejected", slog.String("error", err.Error()))
		return err
	}

	if transport == "" {
		transport = cfg.Server.Transport
	}

	if transport == "stdio" {
		if err := verifyStdinForMCP(); err != nil {
			return err
		}
	}

	ix, err := cfg.Indexer()
	if err != nil {
		return exitcode.Wrap(err, exitcode.Config)
	}

	srv, err := mcp.NewServer(ix, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = srv.Close() }()

	srv.SetMetrics(telemetry.NewOpMetricsWithConfig(telemetry.OpMetricsConfig{
		RecentKeysCapacity: cfg.Server.MetricsWindow,
	}))

	slog.Info("MCP server starting",
		slog.String("transport", transport),
		slog.String("alphabet", cfg.Alphabet.Symbols),
		slog.String("version", version.Version))

	return srv.Serve(ctx, transport)
}

// verifyStdinForMCP rejects interactive invocations early. The MCP server
// reads JSON-RPC from stdin; a terminal there means no client is attached
// and the process would just sit waiting for protocol frames.
func verifyStdinForMCP() error {
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return exitcode.Wrap(
			fmt.Errorf("stdin is a terminal: the MCP server expects a client on a pipe (for interactive use, try 'lexindex play')"),
			exitcode.Usage)
	}
	return nil
}
