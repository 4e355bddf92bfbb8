package source

import (
	"bufio"
	"context"
	"io"

	"logsift/pkg/logline"
)

// StdinName is the source label used for standard input.
const StdinName = "<stdin>"

// ReaderSource reads records from an arbitrary byte stream, typically
// standard input. It does not own the reader and Close never closes it.
type ReaderSource struct {
	scanner *bufio.Scanner
	name    string
	parser  *logline.Parser
	done    bool
}

// NewReaderSource creates a Source over r, labeling records with name.
func NewReaderSource(r io.Reader, name string, parser *logline.Parser) *ReaderSource {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &ReaderSource{
		scanner: sc,
		name:    name,
		parser:  parser,
	}
}

// Next returns the next record, or io.EOF at end of stream.
func (s *ReaderSource) Next(ctx context.Context) (*logline.Record, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if s.done {
		return nil, io.EOF
	}

	if s.scanner.Scan() {
		rec := s.parser.Parse(s.scanner.Text(), s.name)
		return &rec, nil
	}

	s.done = true
	if err := s.scanner.Err(); err != nil {
		return nil, &FileError{Path: s.name, Err: err}
	}
	return nil, io.EOF
}

// Close is a no-op; the underlying reader is owned by the caller.
func (s *ReaderSource) Close() error {
	return nil
}
