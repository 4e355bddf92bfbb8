package source

import (
	"bufio"
	"compress/gzip"
	"context"
	"io"
	"os"
	"strings"

	"logsift/pkg/logline"
)

// FileSource reads records from an ordered list of files, one open handle
// at a time. Files named *.gz are decompressed transparently.
type FileSource struct {
	paths  []string
	parser *logline.Parser

	skipErrors bool
	report     func(error)

	file    *os.File
	reader  io.Closer // gzip wrapper when decompressing, nil otherwise
	scanner *bufio.Scanner
	source  string
	index   int
}

// FileOption configures a FileSource.
type FileOption func(*FileSource)

// SkipErrors makes per-file failures non-fatal: the failing file is
// reported through the given function and its siblings still process.
// Without this option the first failure is returned from Next.
func SkipErrors(report func(error)) FileOption {
	return func(s *FileSource) {
		s.skipErrors = true
		s.report = report
	}
}

// NewFileSource creates a Source over the given files, in order.
func NewFileSource(paths []string, parser *logline.Parser, opts ...FileOption) *FileSource {
	s := &FileSource{
		paths:  paths,
		parser: parser,
		index:  -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Next returns the next record across all files. Returns io.EOF when every
// file has been exhausted.
func (s *FileSource) Next(ctx context.Context) (*logline.Record, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if s.scanner == nil {
			if err := s.openNext(); err != nil {
				return nil, err
			}
		}

		if s.scanner.Scan() {
			rec := s.parser.Parse(s.scanner.Text(), s.source)
			return &rec, nil
		}

		if err := s.scanner.Err(); err != nil {
			ferr := &FileError{Path: s.source, Err: err}
			s.closeCurrent()
			if !s.skipErrors {
				return nil, ferr
			}
			s.report(ferr)
			continue
		}

		// Current file exhausted; release its handle before moving on.
		if err := s.closeCurrent(); err != nil {
			return nil, err
		}
	}
}

// Close releases the currently open handle, if any.
func (s *FileSource) Close() error {
	return s.closeCurrent()
}

// openNext advances to the next file, skipping unreadable ones when
// configured to. Returns io.EOF once the list is exhausted.
func (s *FileSource) openNext() error {
	for {
		s.index++
		if s.index >= len(s.paths) {
			return io.EOF
		}

		path := s.paths[s.index]
		if err := s.open(path); err != nil {
			if !s.skipErrors {
				return err
			}
			s.report(err)
			continue
		}
		return nil
	}
}

func (s *FileSource) open(path string) error {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return &FileError{Path: path, Err: err}
	}

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return &FileError{Path: path, Err: err}
		}
		s.reader = gz
		r = gz
	}

	s.file = f
	s.scanner = bufio.NewScanner(r)
	s.scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	s.source = path
	return nil
}

func (s *FileSource) closeCurrent() error {
	var err error
	if s.reader != nil {
		err = s.reader.Close()
		s.reader = nil
	}
	if s.file != nil {
		if cerr := s.file.Close(); err == nil {
			err = cerr
		}
		s.file = nil
	}
	s.scanner = nil
	return err
}
