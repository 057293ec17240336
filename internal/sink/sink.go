// internal/sink/sink.go
package sink

import (
	"bufio"
	"fmt"
	"io"
	"os"

	gzip "github.com/klauspost/pgzip"

	"mfqe/internal/seqio"
)

const (
	writeBufSize  = 128 * 1024
	gzipBlockSize = 1 << 20
	gzipBlocks    = 4
)

// Options configures how an output file is opened and encoded.
type Options struct {
	Format seqio.Format
	Gzip   bool   // compress output (the default for the CLI)
	Append bool   // append instead of truncating
	Prefix string // literal text prepended to every output header
}

// File is an output sink backed by a file on disk.
type File struct {
	path   string
	prefix string
	enc    Encoder

	f  *os.File
	bw *bufio.Writer
	gz *gzip.Writer
	w  io.Writer

	buf    []byte
	n      int
	closed bool
}

// Open creates (or, with Append, opens for appending) the file at path.
// Append never truncates: the file is created if missing and every write
// goes to its end.
func Open(path string, o Options) (*File, error) {
	enc, ok := Encoders[o.Format]
	if !ok {
		return nil, &OpenError{Path: path, Err: fmt.Errorf("no encoder registered for %s", o.Format)}
	}
	var (
		f   *os.File
		err error
	)
	if o.Append {
		f, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	} else {
		f, err = os.Create(path)
	}
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	s := &File{path: path, prefix: o.Prefix, enc: enc, f: f}
	s.bw = bufio.NewWriterSize(f, writeBufSize)
	s.w = s.bw
	if o.Gzip {
		s.gz = gzip.NewWriter(s.bw)
		if err := s.gz.SetConcurrency(gzipBlockSize, gzipBlocks); err != nil {
			_ = f.Close()
			return nil, &OpenError{Path: path, Err: err}
		}
		s.w = s.gz
	}
	return s, nil
}

// OpenAll opens one sink per path. On failure, sinks already opened are
// closed and the first error is returned.
func OpenAll(paths []string, o Options) ([]*File, error) {
	out := make([]*File, 0, len(paths))
	for _, p := range paths {
		s, err := Open(p, o)
		if err != nil {
			for _, prev := range out {
				_ = prev.Close()
			}
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Path is the file this sink writes to.
func (s *File) Path() string { return s.path }

// Count is the number of records written.
func (s *File) Count() int { return s.n }

// Write encodes r and writes it to the sink.
func (s *File) Write(r seqio.Record) error {
	if s.closed {
		return &WriteError{Path: s.path, Err: os.ErrClosed}
	}
	s.buf = s.enc(s.buf[:0], s.prefix, r)
	if _, err := s.w.Write(s.buf); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	s.n++
	return nil
}

// Close finishes the gzip stream, flushes buffered bytes and closes the file.
// Calling Close more than once is a no-op.
func (s *File) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var first error
	if s.gz != nil {
		if err := s.gz.Close(); err != nil {
			first = err
		}
	}
	if err := s.bw.Flush(); err != nil && first == nil {
		first = err
	}
	if err := s.f.Close(); err != nil && first == nil {
		first = err
	}
	if first != nil {
		return &WriteError{Path: s.path, Err: first}
	}
	return nil
}
