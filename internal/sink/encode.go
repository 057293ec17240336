// internal/sink/encode.go
package sink

import "mfqe/internal/seqio"

// Encoder appends the native encoding of r to dst, with prefix inserted in
// front of the header.
type Encoder func(dst []byte, prefix string, r seqio.Record) []byte

// Encoders is the format → encoder registry. Register in init() blocks.
var Encoders = map[seqio.Format]Encoder{}

// Register installs enc for format f (last wins).
func Register(f seqio.Format, enc Encoder) { Encoders[f] = enc }

func init() {
	Register(seqio.FASTQ, EncodeFASTQ)
	Register(seqio.FASTA, EncodeFASTA)
}

// EncodeFASTQ writes the 4-line form: @header, sequence, '+', quality.
func EncodeFASTQ(dst []byte, prefix string, r seqio.Record) []byte {
	dst = append(dst, '@')
	dst = append(dst, prefix...)
	dst = append(dst, r.Header...)
	dst = append(dst, '\n')
	dst = append(dst, r.Seq...)
	dst = append(dst, "\n+\n"...)
	dst = append(dst, r.Qual...)
	return append(dst, '\n')
}

// EncodeFASTA writes >header followed by the sequence on a single line.
func EncodeFASTA(dst []byte, prefix string, r seqio.Record) []byte {
	dst = append(dst, '>')
	dst = append(dst, prefix...)
	dst = append(dst, r.Header...)
	dst = append(dst, '\n')
	dst = append(dst, r.Seq...)
	return append(dst, '\n')
}
