package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AlphabetOutput is the JSON structure for the alphabet resource.
type AlphabetOutput struct {
	Symbols    string `json:"symbols"`
	Base       int    `json:"base"`
	FirstKey   string `json:"first_key"`
	MinSymbol  string `json:"min_symbol"`
	MaxSymbol  string `json:"max_symbol"`
	Constraint string `json:"constraint"`
}

// registerAlphabetResource registers the alphabet resource so clients
// can discover the key universe before minting.
func (s *Server) registerAlphabetResource() {
	s.mcp.AddResource(
		&mcp.Resource{
			Name:        "alphabet",
			URI:         "lexindex://alphabet",
			Description: "The ordered symbol set keys are built from",
			MIMEType:    "application/json",
		},
		s.makeAlphabetHandler(),
	)
}

// makeAlphabetHandler creates a handler for the alphabet resource.
func (s *Server) makeAlphabetHandler() mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		symbols := s.ix.Alphabet()
		output := AlphabetOutput{
			Symbols:    symbols,
			Base:       s.ix.Base(),
			FirstKey:   s.ix.First(),
			MinSymbol:  symbols[:1],
			MaxSymbol:  symbols[len(symbols)-1:],
			Constraint: "keys never end with the minimum symbol",
		}

		content, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return nil, MapError(err)
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      "lexindex://alphabet",
					MIMEType: "application/json",
					Text:     string(content),
				},
			},
		}, nil
	}
}

// OpMetricsOutput is the JSON structure for the op_metrics resource.
type OpMetricsOutput struct {
	Summary             OpMetricsSummary `json:"summary"`
	OpCounts            map[string]int64 `json:"op_counts"`
	ErrorCounts         map[string]int64 `json:"error_counts"`
	RepeatedKeys        []KeyCountOutput `json:"repeated_keys"`
	RecentKeys          []string         `json:"recent_keys"`
	LengthDistribution  map[string]int64 `json:"length_distribution"`
	LatencyDistribution map[string]int64 `json:"latency_distribution"`
}

// OpMetricsSummary provides overview statistics.
type OpMetricsSummary struct {
	TotalOps     int64   `json:"total_ops"`
	TimePeriod   string  `json:"time_period"`
	ErrorPct     float64 `json:"error_pct"`
	RepeatRate   float64 `json:"repeat_rate"`
	DistinctKeys int64   `json:"distinct_keys"`
	MaxKeyLength int     `json:"max_key_length"`
}

// registerOpMetricsResource registers the op_metrics resource.
func (s *Server) registerOpMetricsResource() {
	s.mcp.AddResource(
		&mcp.Resource{
			Name:        "op_metrics",
			URI:         "lexindex://op_metrics",
			Description: "Operation telemetry for spotting collision hotspots and key growth",
			MIMEType:    "application/json",
		},
		s.makeOpMetricsHandler(),
	)
}

// makeOpMetricsHandler creates a handler for the op_metrics resource.
func (s *Server) makeOpMetricsHandler() mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		s.mu.RLock()
		metrics := s.metrics
		s.mu.RUnlock()

		if metrics == nil {
			return nil, NewInvalidParamsError("op metrics not available")
		}

		snapshot := metrics.Snapshot()

		// Convert to output format
		output := OpMetricsOutput{
			Summary: OpMetricsSummary{
				TotalOps:     snapshot.TotalOps,
				TimePeriod:   "session",
				ErrorPct:     snapshot.ErrorPercentage(),
				RepeatRate:   snapshot.RepeatRate,
				DistinctKeys: snapshot.DistinctKeyCount,
				MaxKeyLength: snapshot.MaxKeyLength,
			},
			OpCounts:            make(map[string]int64),
			ErrorCounts:         make(map[string]int64),
			RepeatedKeys:        make([]KeyCountOutput, 0, len(snapshot.RepeatedKeys)),
			RecentKeys:          snapshot.RecentKeys,
			LengthDistribution:  make(map[string]int64),
			LatencyDistribution: make(map[string]int64),
		}

		for op, count := range snapshot.OpCounts {
			output.OpCounts[string(op)] = count
		}
		for op, count := range snapshot.ErrorCounts {
			output.ErrorCounts[string(op)] = count
		}
		for _, kc := range snapshot.RepeatedKeys {
			output.RepeatedKeys = append(output.RepeatedKeys, KeyCountOutput{Key: kc.Key, Count: kc.Count})
		}
		for bucket, count := range snapshot.LengthDistribution {
			output.LengthDistribution[string(bucket)] = count
		}
		for bucket, count := range snapshot.LatencyDistribution {
			output.LatencyDistribution[string(bucket)] = count
		}

		// Marshal to JSON
		content, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return nil, MapError(err)
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      "lexindex://op_metrics",
					MIMEType: "application/json",
					Text:     string(content),
				},
			},
		}, nil
	}
}
