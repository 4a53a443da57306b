package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ordinalab/lexindex/internal/config"
	"github.com/ordinalab/lexindex/internal/exitcode"
	"github.com/ordinalab/lexindex/internal/logging"
	"github.com/ordinalab/lexindex/internal/sequence"
	"github.com/ordinalab/lexindex/internal/ui"
)

// checkOptions holds CLI flags for check.
type checkOptions struct {
	files     []string
	format    string // "text", "json"
	workers   int
	maxErrors int
}

func newCheckCmd() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check [key...]",
		Short: "Validate keys and verify their order",
		Long: `Validate keys and verify strict ascending order.

Keys come from the command line, from files (--file, one key per
line, '#' starts a comment), or both. Inline keys form one sequence;
each file is another, and files are checked concurrently. Findings
name the offending key with its line or position.

Exit codes: 0 all keys pass, 1 problems found, 2 bad invocation.

Examples:
  lexindex check B BM C
  lexindex check --file order.keys
  lexindex check --file a.keys --file b.keys --format json
  lexindex check --file big.keys --max-errors 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), cmd, args, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.files, "file", nil, "Key file to check (repeatable)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Concurrent file checks (0 = one per CPU)")
	cmd.Flags().IntVar(&opts.maxErrors, "max-errors", 0, "Stop a scan after this many findings (0 = report all)")

	return cmd
}

func runCheck(ctx context.Context, cmd *cobra.Command, args []string, opts checkOptions) error {
	// File logging keeps CLI runs diagnosable without polluting output
	logCfg := logging.DefaultConfig()
	logCfg.WriteToStderr = false
	if _, cleanup, err := logging.Setup(logCfg); err == nil {
		defer cleanup()
	}

	if len(args) == 0 && len(opts.files) == 0 {
		return exitcode.Wrap(fmt.Errorf("nothing to check: pass keys as arguments or files with --file"), exitcode.Usage)
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	ix, err := cfg.Indexer()
	if err != nil {
		return err
	}

	// Flags override config, zero falls through to the configured value
	workers := opts.workers
	if workers == 0 {
		workers = cfg.Check.Workers
	}
	maxErrors := opts.maxErrors
	if maxErrors == 0 {
		maxErrors = cfg.Check.MaxErrors
	}

	slog.Info("check_started",
		slog.Int("inline_keys", len(args)),
		slog.Int("files", len(opts.files)))

	var reports []*sequence.Report
	if len(args) > 0 {
		rep := sequence.Check(ix, sequence.FromValues(args), maxErrors)
		rep.Source = "arguments"
		reports = append(reports, rep)
	}
	if len(opts.files) > 0 {
		fileReports, err := sequence.CheckFiles(ctx, ix, opts.files, workers, maxErrors)
		if err != nil {
			return err
		}
		reports = append(reports, fileReports...)
	}

	switch opts.format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return err
		}
	case "text":
		writeCheckText(cmd, cfg, reports)
	default:
		return invalidFormat(opts.format)
	}

	var problems int
	for _, rep := range reports {
		problems += len(rep.Findings)
	}
	slog.Info("check_complete",
		slog.Int("sequences", len(reports)),
		slog.Int("problems", problems))

	if problems > 0 {
		return exitcode.Wrap(fmt.Errorf("check failed: %d problem(s) found", problems), exitcode.Failure)
	}
	return nil
}

// writeCheckText prints one summary line per sequence plus a line per finding.
func writeCheckText(cmd *cobra.Command, cfg *config.Config, reports []*sequence.Report) {
	out := ui.New(cmd.OutOrStdout(), quiet || cfg.Output.Quiet)

	for _, rep := range reports {
		if rep.OK() {
			out.Successf("%s: %d keys, strictly ascending", rep.Source, rep.Total)
			continue
		}

		out.Errorf("%s: %d problem(s) in %d keys", rep.Source, len(rep.Findings), rep.Total)
		for _, f := range rep.Findings {
			out.Statusf("", "  %s %q: %s", findingRef(f), f.Key, f.Detail)
		}
		if rep.Truncated {
			out.Status("", "  further findings suppressed (raise --max-errors to see all)")
		}
	}
}

// findingRef names where a finding sits, matching how the input arrived.
func findingRef(f sequence.Finding) string {
	if f.Line > 0 {
		return fmt.Sprintf("line %d", f.Line)
	}
	return fmt.Sprintf("position %d", f.Pos)
}
