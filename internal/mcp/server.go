package mcp

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ordinalab/lexindex/internal/config"
	"github.com/ordinalab/lexindex/internal/telemetry"
	"github.com/ordinalab/lexindex/pkg/lexindex"
	"github.com/ordinalab/lexindex/pkg/version"
)

// Server is the MCP server for lexindex.
// It gives AI clients (Claude Code, Cursor) ordering-key operations so
// they can maintain sorted lists without shipping the algorithm.
type Server struct {
	mcp    *mcp.Server
	ix     *lexindex.Indexer
	config *config.Config
	logger *slog.Logger

	// Operation telemetry (optional, set via SetMetrics)
	metrics *telemetry.OpMetrics

	mu sync.RWMutex
}

// ToolInfo contains information about a registered tool.
type ToolInfo struct {
	Name        string
	Description string
}

// BetweenInput defines the input schema for the between tool.
type BetweenInput struct {
	Before string `json:"before" jsonschema:"key forming the exclusive lower bound"`
	After  string `json:"after" jsonschema:"key forming the exclusive upper bound, must sort strictly above before"`
}

// KeyOutput defines the output schema for the key-minting tools.
type KeyOutput struct {
	Key string `json:"key" jsonschema:"the minted ordering key"`
}

// NewServer creates a new MCP server around an ordering-key engine.
func NewServer(ix *lexindex.Indexer, cfg *config.Config) (*Server, error) {
	if ix == nil {
		return nil, errors.New("indexer is required")
	}
	if cfg == nil {
		cfg = config.NewConfig()
	}

	s := &Server{
		ix:     ix,
		config: cfg,
		logger: slog.Default(),
	}

	// Create MCP server with implementation info
	s.mcp = mcp.NewServer(
		&mcp.Implementation{
			Name:    "lexindex",
			Version: version.Version,
		},
		nil, // ServerOptions - capabilities are inferred from registered tools/resources
	)

	// Register tools and the alphabet resource
	s.registerTools()
	s.registerAlphabetResource()

	return s, nil
}

// SetMetrics sets the operation metrics collector for telemetry.
// When set, an op_metrics resource is registered and the stats tool
// starts reporting operation counts.
func (s *Server) SetMetrics(m *telemetry.OpMetrics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics = m

	// Register op_metrics resource if metrics is provided
	if m != nil {
		s.registerOpMetricsResource()
	}
}

// MCPServer returns the underlying MCP server instance.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcp
}

// Info returns the server name and version.
func (s *Server) Info() (name, ver string) {
	return "lexindex", version.Version
}

// Capabilities returns whether tools and resources are enabled.
func (s *Server) Capabilities() (hasTools, hasResources bool) {
	return true, true
}

// ListTools returns all registered tools.
func (s *Server) ListTools() []ToolInfo {
	return []ToolInfo{
		{
			Name:        "between",
			Description: "Mint a key that sorts between two existing keys. Use this to insert an item between neighbors without renumbering anything. Fails with a dedicated no-room code when the gap is exhausted.",
		},
		{
			Name:        "before",
			Description: "Mint a key that sorts before an existing key. Use this to prepend an item at the head of a list.",
		},
		{
			Name:        "after",
			Description: "Mint a key that sorts after an existing key. Use this to append an item at the tail of a list. Never fails on a valid key.",
		},
		{
			Name:        "first",
			Description: "Return the canonical key for the first item of an empty list. Deterministic, always succeeds.",
		},
		{
			Name:        "validate",
			Description: "Check whether a string is a well-formed ordering key for the configured alphabet. Returns valid=false with a reason instead of an error.",
		},
		{
			Name:        "stats",
			Description: "Report the configured alphabet and operation telemetry: op counts, error rate, key length and latency distributions, repeated-key collisions. Optionally reset the counters.",
		},
	}
}

// CallTool invokes a tool by name with the given arguments.
// This mirrors the SDK handlers for callers that hold a *Server
// directly (tests, diagnostics) rather than an MCP session.
func (s *Server) CallTool(ctx context.Context, name string, args map[string]any) (any, error) {
	switch name {
	case "between":
		_, out, err := s.mcpBetweenHandler(ctx, nil, BetweenInput{
			Before: stringArg(args, "before"),
			After:  stringArg(args, "after"),
		})
		if err != nil {
			return nil, err
		}
		return out, nil
	case "before":
		_, out, err := s.mcpBeforeHandler(ctx, nil, BeforeInput{Key: stringArg(args, "key")})
		if err != nil {
			return nil, err
		}
		return out, nil
	case "after":
		_, out, err := s.mcpAfterHandler(ctx, nil, AfterInput{Key: stringArg(args, "key")})
		if err != nil {
			return nil, err
		}
		return out, nil
	case "first":
		_, out, err := s.mcpFirstHandler(ctx, nil, FirstInput{})
		if err != nil {
			return nil, err
		}
		return out, nil
	case "validate":
		_, out, err := s.mcpValidateHandler(ctx, nil, ValidateInput{Key: stringArg(args, "key")})
		if err != nil {
			return nil, err
		}
		return out, nil
	case "stats":
		reset, _ := args["reset"].(bool)
		_, out, err := s.mcpStatsHandler(ctx, nil, StatsInput{Reset: reset})
		if err != nil {
			return nil, err
		}
		return out, nil
	default:
		return nil, NewMethodNotFoundError(name)
	}
}

// stringArg extracts a string argument, tolerating absence.
func stringArg(args map[string]any, name string) string {
	v, _ := args[name].(string)
	return v
}

// registerTools registers all tools with the MCP server.
func (s *Server) registerTools() {
	s.logger.Debug("Registering MCP tools")

	for _, info := range s.ListTools() {
		tool := &mcp.Tool{Name: info.Name, Description: info.Description}
		switch info.Name {
		case "between":
			mcp.AddTool(s.mcp, tool, s.mcpBetweenHandler)
		case "before":
			mcp.AddTool(s.mcp, tool, s.mcpBeforeHandler)
		case "after":
			mcp.AddTool(s.mcp, tool, s.mcpAfterHandler)
		case "first":
			mcp.AddTool(s.mcp, tool, s.mcpFirstHandler)
		case "validate":
			mcp.AddTool(s.mcp, tool, s.mcpValidateHandler)
		case "stats":
			mcp.AddTool(s.mcp, tool, s.mcpStatsHandler)
		}
		s.logger.Debug("Registered tool", slog.String("name", info.Name))
	}

	s.logger.Info("MCP tools registered", slog.Int("count", len(s.ListTools())))
}

// record feeds one operation into the telemetry collector, if any.
func (s *Server) record(op telemetry.Op, key string, err error, d time.Duration) {
	s.mu.RLock()
	m := s.metrics
	s.mu.RUnlock()

	if m != nil {
		m.Record(telemetry.OpEvent{Op: op, Key: key, Err: err, Duration: d})
	}
}

// mcpBetweenHandler is the MCP SDK handler for the between tool.
func (s *Server) mcpBetweenHandler(ctx context.Context, _ *mcp.CallToolRequest, input BetweenInput) (
	*mcp.CallToolResult,
	KeyOutput,
	error,
) {
	start := time.Now()
	requestID := generateRequestID()

	key, err := s.ix.Between(input.Before, input.After)
	duration := time.Since(start)
	s.record(telemetry.OpBetween, key, err, duration)

	if err != nil {
		s.logger.Info("between failed",
			slog.String("request_id", requestID),
			slog.String("before", input.Before),
			slog.String("after", input.After),
			slog.String("error", err.Error()))
		return nil, KeyOutput{}, MapError(err)
	}

	s.logger.Info("between completed",
		slog.String("request_id", requestID),
		slog.String("before", input.Before),
		slog.String("after", input.After),
		slog.String("key", key),
		slog.Duration("duration", duration))

	return nil, KeyOutput{Key: key}, nil
}

// mcpBeforeHandler is the MCP SDK handler for the before tool.
func (s *Server) mcpBeforeHandler(ctx context.Context, _ *mcp.CallToolRequest, input BeforeInput) (
	*mcp.CallToolResult,
	KeyOutput,
	error,
) {
	start := time.Now()
	requestID := generateRequestID()

	key, err := s.ix.Before(input.Key)
	duration := time.Since(start)
	s.record(telemetry.OpBefore, key, err, duration)

	if err != nil {
		s.logger.Info("before failed",
			slog.String("request_id", requestID),
			slog.String("bound", input.Key),
			slog.String("error", err.Error()))
		return nil, KeyOutput{}, MapError(err)
	}

	s.logger.Info("before completed",
		slog.String("request_id", requestID),
		slog.String("bound", input.Key),
		slog.String("key", key),
		slog.Duration("duration", duration))

	return nil, KeyOutput{Key: key}, nil
}

// mcpAfterHandler is the MCP SDK handler for the after tool.
func (s *Server) mcpAfterHandler(ctx context.Context, _ *mcp.CallToolRequest, input AfterInput) (
	*mcp.CallToolResult,
	KeyOutput,
	error,
) {
	start := time.Now()
	requestID := generateRequestID()

	key, err := s.ix.After(input.Key)
	duration := time.Since(start)
	s.record(telemetry.OpAfter, key, err, duration)

	if err != nil {
		s.logger.Info("after failed",
			slog.String("request_id", requestID),
			slog.String("bound", input.Key),
			slog.String("error", err.Error()))
		return nil, KeyOutput{}, MapError(err)
	}

	s.logger.Info("after completed",
		slog.String("request_id", requestID),
		slog.String("bound", input.Key),
		slog.String("key", key),
		slog.Duration("duration", duration))

	return nil, KeyOutput{Key: key}, nil
}

// mcpFirstHandler is the MCP SDK handler for the first tool.
func (s *Server) mcpFirstHandler(ctx context.Context, _ *mcp.CallToolRequest, _ FirstInput) (
	*mcp.CallToolResult,
	KeyOutput,
	error,
) {
	start := time.Now()

	key := s.ix.First()
	s.record(telemetry.OpFirst, key, nil, time.Since(start))

	return nil, KeyOutput{Key: key}, nil
}

// mcpValidateHandler is the MCP SDK handler for the validate tool.
// An invalid key is a successful validation with valid=false, not a
// protocol error.
func (s *Server) mcpValidateHandler(ctx context.Context, _ *mcp.CallToolRequest, input ValidateInput) (
	*mcp.CallToolResult,
	ValidateOutput,
	error,
) {
	start := time.Now()

	err := s.ix.Validate(input.Key)
	s.record(telemetry.OpValidate, input.Key, err, time.Since(start))

	output := ValidateOutput{Key: input.Key, Valid: err == nil}
	if err != nil {
		output.Reason = err.Error()
	}

	s.logger.Debug("validate completed",
		slog.String("key", input.Key),
		slog.Bool("valid", output.Valid))

	return nil, output, nil
}

// mcpStatsHandler is the MCP SDK handler for the stats tool.
func (s *Server) mcpStatsHandler(ctx context.Context, _ *mcp.CallToolRequest, input StatsInput) (
	*mcp.CallToolResult,
	*StatsOutput,
	error,
) {
	output := &StatsOutput{
		Alphabet: AlphabetInfo{
			Symbols:  s.ix.Alphabet(),
			Base:     s.ix.Base(),
			FirstKey: s.ix.First(),
		},
	}

	s.mu.RLock()
	m := s.metrics
	s.mu.RUnlock()

	if m != nil {
		output.Ops = toOpStats(m.Snapshot())
		if input.Reset {
			m.Reset()
			s.logger.Info("op metrics reset")
		}
	}

	return nil, output, nil
}

// toOpStats converts a telemetry snapshot to the stats tool output.
func toOpStats(snap *telemetry.OpMetricsSnapshot) *OpStats {
	stats := &OpStats{
		TotalOps:            snap.TotalOps,
		TotalErrors:         snap.TotalErrors,
		ErrorPct:            snap.ErrorPercentage(),
		OpCounts:            make(map[string]int64, len(snap.OpCounts)),
		LengthDistribution:  make(map[string]int64, len(snap.LengthDistribution)),
		LatencyDistribution: make(map[string]int64, len(snap.LatencyDistribution)),
		RepeatedKeys:        make([]KeyCountOutput, 0, len(snap.RepeatedKeys)),
		RepeatRate:          snap.RepeatRate,
		DistinctKeys:        snap.DistinctKeyCount,
		MaxKeyLength:        snap.MaxKeyLength,
		Since:               snap.Since.Format(time.RFC3339),
	}

	for op, count := range snap.OpCounts {
		stats.OpCounts[string(op)] = count
	}
	for bucket, count := range snap.LengthDistribution {
		stats.LengthDistribution[string(bucket)] = count
	}
	for bucket, count := range snap.LatencyDistribution {
		stats.LatencyDistribution[string(bucket)] = count
	}
	for _, kc := range snap.RepeatedKeys {
		stats.RepeatedKeys = append(stats.RepeatedKeys, KeyCountOutput{Key: kc.Key, Count: kc.Count})
	}

	return stats
}

// Serve starts the server with the specified transport. An empty transport
// falls back to the configured one.
func (s *Server) Serve(ctx context.Context, transport string) error {
	if transport == "" {
		transport = s.config.Server.Transport
	}

	s.logger.Info("Starting MCP server",
		slog.String("transport", transport),
		slog.String("alphabet", s.ix.Alphabet()))

	switch transport {
	case "stdio":
		s.logger.Debug("Using stdio transport for JSON-RPC")
		err := s.mcp.Run(ctx, &mcp.StdioTransport{})
		if err != nil && err != context.Canceled {
			s.logger.Error("MCP server stopped with error",
				slog.String("error", err.Error()))
		} else {
			s.logger.Info("MCP server stopped gracefully")
		}
		return err
	default:
		return fmt.Errorf("unknown transport: %s (supported: stdio)", transport)
	}
}

// Close releases server resources.
func (s *Server) Close() error {
	// The MCP server doesn't have a Close method - it stops when context is canceled
	return nil
}

// generateRequestID creates a short unique request ID for log correlation.
func generateRequestID() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
