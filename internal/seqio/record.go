// internal/seqio/record.go
package seqio

import (
	"bytes"
	"fmt"
	"strings"
)

// Format selects the record flavour for a run.
type Format int

const (
	FASTQ Format = iota
	FASTA
)

func (f Format) String() string {
	switch f {
	case FASTQ:
		return "FASTQ"
	case FASTA:
		return "FASTA"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat accepts "fastq" or "fasta" (any case).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fastq", "fq":
		return FASTQ, nil
	case "fasta", "fa":
		return FASTA, nil
	}
	return 0, fmt.Errorf("unknown sequence format %q (want fastq or fasta)", s)
}

// Record is one decoded sequence record.
//
// Header is the full header line without its '@' or '>' marker; the comment
// after the first whitespace is kept verbatim for re-encoding. Qual is nil for
// FASTA. The byte slices belong to the Reader and are only valid until the
// next call to Next.
type Record struct {
	ID     string
	Header []byte
	Seq    []byte
	Qual   []byte
}

// Identifier is the key records are routed by.
func (r Record) Identifier() string { return r.ID }

// HeaderID returns the header bytes up to the first space or tab.
func HeaderID(hdr []byte) string {
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
