// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"mfqe/internal/cmdutil"
	"mfqe/internal/version"
)

// InstallUsage installs the help screen on fs.
func InstallUsage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – extract multiple sets of FASTQ/FASTA sequences by name\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s --sequence-name-lists LIST1 .. --output-fastq-files OUT1 .. [--input-fastq FILE]\n", name)
		fmt.Fprintf(out, "  %s --sequence-name-lists LIST1 .. --output-fasta-files OUT1 .. [--input-fasta FILE]\n", name)
		fmt.Fprintf(out, "  %s --manifest run.yaml\n\n", name)
		fmt.Fprintln(out, "Name lists are uncompressed text files, one sequence name (without comment) per line.")
		fmt.Fprintln(out, "List i is written to output i. Every listed name must be found exactly once per list.")

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "      --input-fastq file          FASTQ input, plain or gzip (default: STDIN)")
		fmt.Fprintln(out, "      --input-fasta file          FASTA input, plain or gzip (default: STDIN)")
		fmt.Fprintln(out, "  -l, --sequence-name-lists file..  Name list file(s); aliases --fastq-read-name-lists,")
		fmt.Fprintln(out, "                                  --fasta-read-name-lists")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintln(out, "      --output-fastq-files file..  FASTQ output file(s), one per name list")
		fmt.Fprintln(out, "      --output-fasta-files file..  FASTA output file(s), one per name list")
		fmt.Fprintf(out, "      --output-uncompressed       Write plain text instead of gzip [%s]\n", def("output-uncompressed"))
		fmt.Fprintf(out, "      --append                    Append to existing outputs instead of truncating [%s]\n", def("append"))
		fmt.Fprintln(out, "      --sequence-prefix string    Text prepended to every output sequence name")
		fmt.Fprintln(out, "      --manifest file             YAML run description (format, input, destinations)")

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                     Only log warnings and errors [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples                  Show usage examples and exit")
		fmt.Fprintln(out, "  -v, --version                   Print version and exit")
		fmt.Fprintln(out, "  -h, --help                      Show this help and exit")
		fmt.Fprintf(out, "\nEnvironment:\n  %s=debug|info|warn|error|off   Log verbosity [info]\n", cmdutil.LogEnv)
	}
}
