package cli

import (
	"fmt"
	"io"
)

// PrintExamples prints a small quickstart followed by a one-line tip to
// discover full help.
func PrintExamples(out io.Writer, name string) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s quickstart\n\n", name)
	_, _ = fmt.Fprintf(out, `  # two read sets from a gzipped FASTQ
  %[1]s -l sample1.txt sample2.txt \
      --output-fastq-files sample1.fq.gz sample2.fq.gz \
      --input-fastq reads.fq.gz

  # FASTA from STDIN, uncompressed output
  zcat contigs.fa.gz | %[1]s -l keep.txt --output-fasta-files keep.fa --output-uncompressed

  # add a second batch to existing outputs
  %[1]s -l more.txt --output-fastq-files sample1.fq.gz --append --input-fastq batch2.fq.gz

  # everything from a manifest
  %[1]s --manifest run.yaml
`, name)
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
