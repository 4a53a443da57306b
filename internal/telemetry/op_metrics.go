// Package telemetry collects in-process metrics for key engine operations.
// All data is held in memory and is process-local - nothing is reported
// externally and nothing is persisted.
package telemetry

import (
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// =============================================================================
// Operations
// =============================================================================

// Op identifies a key engine operation.
type Op string

const (
	OpBetween  Op = "between"
	OpBefore   Op = "before"
	OpAfter    Op = "after"
	OpFirst    Op = "first"
	OpValidate Op = "validate"
)

// =============================================================================
// Length Buckets
// =============================================================================

// LengthBucket represents a key-length histogram bucket.
//
// Keys grow as callers repeatedly subdivide the same gap, so the length
// distribution is the main signal for how healthy an ordering is.
type LengthBucket string

const (
	BucketL2  LengthBucket = "l2"  // <=2 chars
	BucketL4  LengthBucket = "l4"  // 3-4 chars
	BucketL8  LengthBucket = "l8"  // 5-8 chars
	BucketL16 LengthBucket = "l16" // 9-16 chars
	BucketL32 LengthBucket = "l32" // >=17 chars
)

// LengthToBucket converts a key length to its histogram bucket.
func LengthToBucket(n int) LengthBucket {
	switch {
	case n <= 2:
		return BucketL2
	case n <= 4:
		return BucketL4
	case n <= 8:
		return BucketL8
	case n <= 16:
		return BucketL16
	default:
		return BucketL32
	}
}

// =============================================================================
// Latency Buckets
// =============================================================================

// LatencyBucket represents a latency histogram bucket. Operations are pure
// string manipulation, so buckets are microsecond-scale; anything beyond the
// last bucket points at scheduling pressure rather than the engine itself.
type LatencyBucket string

const (
	BucketU10   LatencyBucket = "u10"   // <10us
	BucketU50   LatencyBucket = "u50"   // 10-50us
	BucketU100  LatencyBucket = "u100"  // 50-100us
	BucketU500  LatencyBucket = "u500"  // 100-500us
	BucketU1000 LatencyBucket = "u1000" // >=500us
)

// LatencyToBucket converts a duration to its histogram bucket.
func LatencyToBucket(d time.Duration) LatencyBucket {
	us := d.Microseconds()
	switch {
	case us < 10:
		return BucketU10
	case us < 50:
		return BucketU50
	case us < 100:
		return BucketU100
	case us < 500:
		return BucketU500
	default:
		return BucketU1000
	}
}

// =============================================================================
// Op Event
// =============================================================================

// OpEvent represents a single key engine operation for metrics recording.
type OpEvent struct {
	Op       Op
	Key      string // key the operation produced; empty on failure or for validate
	Err      error
	Duration time.Duration
}

// Failed returns true if the operation returned an error.
func (e OpEvent) Failed() bool {
	return e.Err != nil
}

// =============================================================================
// Circular Buffer
// =============================================================================

// CircularBuffer is a fixed-capacity FIFO buffer.
type CircularBuffer[T any] struct {
	items    []T
	head     int // Next write position
	size     int // Current number of items
	capacity int
	mu       sync.RWMutex
}

// NewCircularBuffer creates a new circular buffer with the given capacity.
func NewCircularBuffer[T any](capacity int) *CircularBuffer[T] {
	if capacity <= 0 {
		capacity = 100
	}
	return &CircularBuffer[T]{
		items:    make([]T, capacity),
		capacity: capacity,
	}
}

// Add adds an item to the buffer. If full, the oldest item is evicted.
func (b *CircularBuffer[T]) Add(item T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.items[b.head] = item
	b.head = (b.head + 1) % b.capacity

	if b.size < b.capacity {
		b.size++
	}
}

// Items returns all items in the buffer in FIFO order (oldest first).
func (b *CircularBuffer[T]) Items() []T {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.size == 0 {
		return []T{}
	}

	result := make([]T, b.size)
	if b.size < b.capacity {
		// Buffer not full - items start at 0
		copy(result, b.items[:b.size])
	} else {
		// Buffer full - oldest item is at head
		copy(result, b.items[b.head:])
		copy(result[b.capacity-b.head:], b.items[:b.head])
	}
	return result
}

// Size returns the current number of items in the buffer.
func (b *CircularBuffer[T]) Size() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.size
}

// Clear removes all items from the buffer.
func (b *CircularBuffer[T]) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.head = 0
	b.size = 0
}

// =============================================================================
// Key Count
// =============================================================================

// KeyCount represents a produced key and how often it was produced.
type KeyCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// =============================================================================
// Op Metrics Snapshot
// =============================================================================

// OpMetricsSnapshot is an immutable snapshot of operation metrics.
type OpMetricsSnapshot struct {
	OpCounts            map[Op]int64            `json:"op_counts"`
	ErrorCounts         map[Op]int64            `json:"error_counts"`
	LengthDistribution  map[LengthBucket]int64  `json:"length_distribution"`
	LatencyDistribution map[LatencyBucket]int64 `json:"latency_distribution"`
	RepeatedKeys        []KeyCount              `json:"repeated_keys"`
	RecentKeys          []string                `json:"recent_keys"`
	TotalOps            int64                   `json:"total_ops"`
	TotalErrors         int64                   `json:"total_errors"`
	RepeatCount         int64                   `json:"repeat_count"`
	RepeatRate          float64                 `json:"repeat_rate"`
	DistinctKeyCount    int64                   `json:"distinct_key_count"`
	MaxKeyLength        int                     `json:"max_key_length"`
	Since               time.Time               `json:"since"`
}

// ErrorPercentage returns the percentage of operations that failed.
func (s *OpMetricsSnapshot) ErrorPercentage() float64 {
	if s.TotalOps == 0 {
		return 0
	}
	return float64(s.TotalErrors) / float64(s.TotalOps) * 100
}

// RepeatSummary returns a human-readable summary of repeated keys. A key
// produced more than once means two callers were handed the same position,
// which collides the moment both rows land in the same ordering.
func (s *OpMetricsSnapshot) RepeatSummary() string {
	if s.TotalOps == 0 {
		return "no operations recorded"
	}
	return fmt.Sprintf("repeats=%d (%.1f%%), distinct=%d, max_len=%d",
		s.RepeatCount, s.RepeatRate*100, s.DistinctKeyCount, s.MaxKeyLength)
}

// =============================================================================
// Op Metrics Configuration
// =============================================================================

// OpMetricsConfig configures the operation metrics collector.
type OpMetricsConfig struct {
	RecentKeysCapacity int // Recently produced keys to retain (default: 512)
	KeyCountsCapacity  int // Distinct keys tracked for repeat detection (default: 1024)
}

// DefaultOpMetricsConfig returns sensible defaults.
func DefaultOpMetricsConfig() OpMetricsConfig {
	return OpMetricsConfig{
		RecentKeysCapacity: 512,
		KeyCountsCapacity:  1024,
	}
}

// =============================================================================
// Op Metrics
// =============================================================================

// OpMetrics collects key engine operation telemetry.
// Thread-safe for concurrent access.
type OpMetrics struct {
	mu sync.RWMutex

	opCounts    map[Op]int64
	errCounts   map[Op]int64
	keyCounts   *lru.Cache[string, int64]
	recentKeys  *CircularBuffer[string]
	lengths     map[LengthBucket]int64
	latencies   map[LatencyBucket]int64
	totalOps    int64
	totalErrors int64
	repeatCount int64
	maxKeyLen   int
	startTime   time.Time

	config OpMetricsConfig
}

// NewOpMetrics creates a new metrics collector with default configuration.
func NewOpMetrics() *OpMetrics {
	return NewOpMetricsWithConfig(DefaultOpMetricsConfig())
}

// NewOpMetricsWithConfig creates a new metrics collector with custom configuration.
func NewOpMetricsWithConfig(cfg OpMetricsConfig) *OpMetrics {
	if cfg.RecentKeysCapacity <= 0 {
		cfg.RecentKeysCapacity = 512
	}
	if cfg.KeyCountsCapacity <= 0 {
		cfg.KeyCountsCapacity = 1024
	}

	keyCounts, _ := lru.New[string, int64](cfg.KeyCountsCapacity)

	return &OpMetrics{
		opCounts:   make(map[Op]int64),
		errCounts:  make(map[Op]int64),
		keyCounts:  keyCounts,
		recentKeys: NewCircularBuffer[string](cfg.RecentKeysCapacity),
		lengths:    make(map[LengthBucket]int64),
		latencies:  make(map[LatencyBucket]int64),
		startTime:  time.Now(),
		config:     cfg,
	}
}

// Record captures metrics from a key engine operation.
// This method is thread-safe and non-blocking.
func (m *OpMetrics) Record(event OpEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.opCounts[event.Op]++
	m.totalOps++

	bucket := LatencyToBucket(event.Duration)
	m.latencies[bucket]++

	if event.Failed() {
		m.errCounts[event.Op]++
		m.totalErrors++
		return
	}

	// Only operations that produce a key contribute to the length and
	// repetition tracking. Validate succeeds without producing anything.
	if event.Key == "" {
		return
	}

	m.lengths[LengthToBucket(len(event.Key))]++
	if n := len(event.Key); n > m.maxKeyLen {
		m.maxKeyLen = n
	}

	if count, ok := m.keyCounts.Get(event.Key); ok {
		m.repeatCount++
		m.keyCounts.Add(event.Key, count+1)
	} else {
		m.keyCounts.Add(event.Key, 1)
	}
	m.recentKeys.Add(event.Key)
}

// Snapshot returns current metrics for reporting.
func (m *OpMetrics) Snapshot() *OpMetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	opCounts := make(map[Op]int64)
	for k, v := range m.opCounts {
		opCounts[k] = v
	}

	errCounts := make(map[Op]int64)
	for k, v := range m.errCounts {
		errCounts[k] = v
	}

	// Keys produced more than once, sorted by count descending. The list is
	// bounded by the LRU capacity and in practice far smaller, so a simple
	// selection pass is fine.
	var repeated []KeyCount
	for _, key := range m.keyCounts.Keys() {
		if count, ok := m.keyCounts.Peek(key); ok && count > 1 {
			repeated = append(repeated, KeyCount{Key: key, Count: count})
		}
	}
	for i := 0; i < len(repeated); i++ {
		for j := i + 1; j < len(repeated); j++ {
			if repeated[j].Count > repeated[i].Count {
				repeated[i], repeated[j] = repeated[j], repeated[i]
			}
		}
	}

	lengths := make(map[LengthBucket]int64)
	for k, v := range m.lengths {
		lengths[k] = v
	}

	latencies := make(map[LatencyBucket]int64)
	for k, v := range m.latencies {
		latencies[k] = v
	}

	var repeatRate float64
	if m.totalOps > 0 {
		repeatRate = float64(m.repeatCount) / float64(m.totalOps)
	}

	return &OpMetricsSnapshot{
		OpCounts:            opCounts,
		ErrorCounts:         errCounts,
		LengthDistribution:  lengths,
		LatencyDistribution: latencies,
		RepeatedKeys:        repeated,
		RecentKeys:          m.recentKeys.Items(),
		TotalOps:            m.totalOps,
		TotalErrors:         m.totalErrors,
		RepeatCount:         m.repeatCount,
		RepeatRate:          repeatRate,
		DistinctKeyCount:    int64(m.keyCounts.Len()),
		MaxKeyLength:        m.maxKeyLen,
		Since:               m.startTime,
	}
}

// Reset discards all recorded metrics and restarts the collection window.
func (m *OpMetrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.opCounts = make(map[Op]int64)
	m.errCounts = make(map[Op]int64)
	m.keyCounts.Purge()
	m.recentKeys.Clear()
	m.lengths = make(map[LengthBucket]int64)
	m.latencies = make(map[LatencyBucket]int64)
	m.totalOps = 0
	m.totalErrors = 0
	m.repeatCount = 0
	m.maxKeyLen = 0
	m.startTime = time.Now()
}
