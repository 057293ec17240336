// internal/seqio/open.go
package seqio

import (
	"bufio"
	"io"
	"os"
	"strings"

	gzip "github.com/klauspost/pgzip"
)

const readBufSize = 256 * 1024

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// IsStdin reports whether path names standard input.
func IsStdin(path string) bool { return path == "" || path == "-" }

// openReader opens path ("" or "-" for stdin).
func openReader(path string) (io.ReadCloser, error) {
	if IsStdin(path) {
		return decompress(os.Stdin, io.NopCloser(os.Stdin), false)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, err := decompress(fh, fh, strings.HasSuffix(path, ".gz"))
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return rc, nil
}

// decompress peeks at the stream and layers a gzip reader on top when it
// starts with the gzip magic number (1F 8B) or when forceGzip is set.
// Peeking instead of seeking keeps pipes and stdin working.
func decompress(r io.Reader, c io.Closer, forceGzip bool) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(r, readBufSize)
	sig, _ := br.Peek(2)
	// A zero-byte file stays plain even with a .gz name.
	if (forceGzip && len(sig) > 0) || (len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) {
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, c}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{c}}, nil
}
