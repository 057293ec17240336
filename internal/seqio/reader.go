// internal/seqio/reader.go
package seqio

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"unicode/utf8"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

var (
	errHeaderNotUTF8  = errors.New("header is not valid UTF-8")
	errMissingQual    = errors.New("record has no quality line (FASTA input in FASTQ mode?)")
	errUnexpectedQual = errors.New("record has a quality line (FASTQ input in FASTA mode?)")
	errEmptyID        = errors.New("record has an empty identifier")
	errHeaderFraming  = errors.New("header spans several lines (truncated or empty record?)")
)

// Reader decodes one record at a time from a byte stream. It is forward-only:
// the underlying stream is consumed exactly once and the first error is
// sticky.
type Reader struct {
	format Format
	fx     *fastx.Reader
	rc     io.Closer
	n      int
	err    error
}

// Open opens path ("" or "-" for stdin) for reading records of format f.
// Gzip-compressed input is detected and decompressed.
func Open(path string, f Format) (*Reader, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, &OpenError{Path: DisplayPath(path), Err: err}
	}
	r, err := newReader(rc, rc, f)
	if err != nil {
		_ = rc.Close()
		return nil, err
	}
	return r, nil
}

// NewReader reads records of format f from r. Gzip input is detected by its
// magic number. Closing the Reader does not close r.
func NewReader(r io.Reader, f Format) (*Reader, error) {
	rc, err := decompress(r, io.NopCloser(r), false)
	if err != nil {
		return nil, &OpenError{Path: "stream", Err: err}
	}
	return newReader(rc, rc, f)
}

func newReader(r io.Reader, c io.Closer, f Format) (*Reader, error) {
	// fastx refuses a stream without content, but an empty input is just
	// one with no records.
	br := bufio.NewReader(r)
	if _, err := br.Peek(1); err != nil {
		if errors.Is(err, io.EOF) {
			return &Reader{format: f, rc: c}, nil
		}
		return nil, &DecodeError{Format: f, Record: 1, Err: err}
	}
	// seq.Unlimit skips alphabet validation: records are routed, not interpreted.
	fx, err := fastx.NewReaderFromIO(seq.Unlimit, br, "")
	if err != nil {
		return nil, &DecodeError{Format: f, Record: 1, Err: err}
	}
	return &Reader{format: f, fx: fx, rc: c}, nil
}

// Format is the record flavour this reader accepts.
func (r *Reader) Format() Format { return r.format }

// Count is the number of records decoded so far.
func (r *Reader) Count() int { return r.n }

// Next returns the next record, or io.EOF after the last one.
func (r *Reader) Next() (Record, error) {
	if r.err != nil {
		return Record{}, r.err
	}
	if r.fx == nil {
		r.err = io.EOF
		return Record{}, io.EOF
	}
	fr, err := r.fx.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			r.err = io.EOF
			return Record{}, io.EOF
		}
		return Record{}, r.fail(r.n+1, err)
	}
	r.n++

	hdr := bytes.TrimRight(fr.Name, "\r")
	if !utf8.Valid(hdr) {
		return Record{}, r.fail(r.n, errHeaderNotUTF8)
	}
	if bytes.IndexByte(hdr, '\n') >= 0 {
		return Record{}, r.fail(r.n, errHeaderFraming)
	}
	rec := Record{ID: HeaderID(hdr), Header: hdr, Seq: fr.Seq.Seq}
	if rec.ID == "" {
		return Record{}, r.fail(r.n, errEmptyID)
	}
	switch r.format {
	case FASTQ:
		if len(fr.Seq.Qual) != len(fr.Seq.Seq) {
			return Record{}, r.fail(r.n, errMissingQual)
		}
		rec.Qual = fr.Seq.Qual
	case FASTA:
		if len(fr.Seq.Qual) > 0 {
			return Record{}, r.fail(r.n, errUnexpectedQual)
		}
	}
	return rec, nil
}

func (r *Reader) fail(record int, err error) error {
	r.err = &DecodeError{Format: r.format, Record: record, Err: err}
	return r.err
}

// Close releases the underlying input.
func (r *Reader) Close() error {
	if r.rc == nil {
		return nil
	}
	err := r.rc.Close()
	r.rc = nil
	return err
}

// DisplayPath renders a path for messages, naming stdin explicitly.
func DisplayPath(path string) string {
	if IsStdin(path) {
		return "<stdin>"
	}
	return path
}
