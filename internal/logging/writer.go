package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// RotatingWriter is an io.Writer that appends to a log file and rolls it
// over once it would grow past the size limit. Rolled files keep numbered
// suffixes: server.log.1 is the most recent, server.log.<maxFiles> the
// oldest still kept.
type RotatingWriter struct {
	path  string
	limit int64
	keep  int

	mu            sync.Mutex
	f             *os.File
	size          int64
	syncEachWrite bool
}

// NewRotatingWriter opens (or creates) the log file at path, creating the
// parent directory when needed. maxSizeMB bounds the file size in
// megabytes and maxFiles bounds the numbered history. Each write is synced
// to disk by default so lexindex-logs -f sees entries as they land.
func NewRotatingWriter(path string, maxSizeMB, maxFiles int) (*RotatingWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	w := &RotatingWriter{
		path:          path,
		limit:         int64(maxSizeMB) * 1024 * 1024,
		keep:          maxFiles,
		syncEachWrite: true,
	}
	if err := w.open(); err != nil {
		return nil, err
	}
	return w, nil
}

// SetImmediateSync toggles the per-write sync. When off, entries reach
// disk on the OS's schedule or on an explicit Sync.
func (w *RotatingWriter) SetImmediateSync(enabled bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.syncEachWrite = enabled
}

// Write appends p, rolling the file over first when the entry would push
// it past the size limit. A failed rollover keeps writing to whatever file
// is open rather than dropping the entry, and nothing is printed to
// stderr, which must stay clean in serve mode.
func (w *RotatingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.f == nil {
		if err := w.open(); err != nil {
			return 0, err
		}
	}
	if w.size+int64(len(p)) > w.limit {
		if err := w.rollover(); err != nil && w.f == nil {
			if err := w.open(); err != nil {
				return 0, err
			}
		}
	}

	n, err := w.f.Write(p)
	w.size += int64(n)
	if err == nil && w.syncEachWrite {
		_ = w.f.Sync()
	}
	return n, err
}

// Sync flushes buffered entries to disk.
func (w *RotatingWriter) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.f == nil {
		return nil
	}
	return w.f.Sync()
}

// Close closes the underlying file. Further writes reopen it.
func (w *RotatingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.f == nil {
		return nil
	}
	err := w.f.Close()
	w.f = nil
	return err
}

func (w *RotatingWriter) open() error {
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}
	w.f = f
	w.size = info.Size()
	return nil
}

// rollover shifts the numbered history up one slot and reopens a fresh
// current file. The oldest file past keep is removed. Caller holds w.mu.
func (w *RotatingWriter) rollover() error {
	if w.f != nil {
		err := w.f.Close()
		w.f = nil
		if err != nil {
			return fmt.Errorf("failed to close log file: %w", err)
		}
	}

	if w.keep < 1 {
		_ = os.Remove(w.path)
	} else {
		_ = os.Remove(w.numbered(w.keep))
		for i := w.keep - 1; i >= 1; i-- {
			if _, err := os.Stat(w.numbered(i)); err == nil {
				_ = os.Rename(w.numbered(i), w.numbered(i+1))
			}
		}
		if _, err := os.Stat(w.path); err == nil {
			if err := os.Rename(w.path, w.numbered(1)); err != nil {
				return fmt.Errorf("failed to rotate log file: %w", err)
			}
		}
	}

	return w.open()
}

func (w *RotatingWriter) numbered(i int) string {
	return fmt.Sprintf("%s.%d", w.path, i)
}
