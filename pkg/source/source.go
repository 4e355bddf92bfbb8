// Package source provides lazy, single-pass line sources over files,
// directories, and arbitrary byte streams.
package source

import (
	"context"
	"fmt"

	"logsift/pkg/logline"
)

// Source provides an iterator over parsed log records.
// Implementations are single-pass and not restartable; they must be safe
// for sequential access (not concurrent). Next returns io.EOF when the
// source is exhausted.
type Source interface {
	// Next returns the next record. Returns io.EOF when no more lines
	// are available.
	Next(ctx context.Context) (*logline.Record, error)

	// Close releases any resources held by the source.
	Close() error
}

// FileError reports a per-file failure (missing file, permission denied,
// corrupt archive) with enough context to surface to a user.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// maxLineSize caps individual line length at 1MB.
const maxLineSize = 1024 * 1024
