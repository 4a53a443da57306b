package mcp

// BeforeInput defines the input schema for the before tool.
type BeforeInput struct {
	Key string `json:"key" jsonschema:"existing key the minted key must sort before"`
}

// AfterInput defines the input schema for the after tool.
type AfterInput struct {
	Key string `json:"key" jsonschema:"existing key the minted key must sort after"`
}

// FirstInput defines the input schema for the first tool (no parameters).
type FirstInput struct{}

// ValidateInput defines the input schema for the validate tool.
type ValidateInput struct {
	Key string `json:"key" jsonschema:"candidate ordering key to check"`
}

// ValidateOutput defines the output schema for the validate tool.
type ValidateOutput struct {
	Key    string `json:"key"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"` // why the key was rejected
}

// StatsInput defines the input schema for the stats tool.
type StatsInput struct {
	Reset bool `json:"reset,omitempty" jsonschema:"clear collected telemetry after reporting"`
}

// StatsOutput defines the output schema for the stats tool.
type StatsOutput struct {
	Alphabet AlphabetInfo `json:"alphabet"`
	Ops      *OpStats     `json:"ops,omitempty"` // present when telemetry is enabled
}

// AlphabetInfo describes the key universe the server mints from.
type AlphabetInfo struct {
	Symbols  string `json:"symbols"`
	Base     int    `json:"base"`
	FirstKey string `json:"first_key"`
}

// OpStats contains operation telemetry collected since startup or the
// last reset.
type OpStats struct {
	TotalOps            int64            `json:"total_ops"`
	TotalErrors         int64            `json:"total_errors"`
	ErrorPct            float64          `json:"error_pct"`
	OpCounts            map[string]int64 `json:"op_counts"`
	LengthDistribution  map[string]int64 `json:"length_distribution"`
	LatencyDistribution map[string]int64 `json:"latency_distribution"`
	RepeatedKeys        []KeyCountOutput `json:"repeated_keys,omitempty"`
	RepeatRate          float64          `json:"repeat_rate"`
	DistinctKeys        int64            `json:"distinct_keys"`
	MaxKeyLength        int              `json:"max_key_length"`
	Since               string           `json:"since"`
}

// KeyCountOutput represents a key and how often it was produced or seen.
type KeyCountOutput struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}
