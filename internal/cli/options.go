// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"mfqe/internal/cliutil"
	"mfqe/internal/seqio"
)

// ErrPrintedAndExitOK is returned by ParseArgs when the caller requested examples.
// Apps should catch this and exit 0 after printing examples.
var ErrPrintedAndExitOK = errors.New("examples requested")

// Options holds all CLI flags.
type Options struct {
	// Input
	InputFASTQ string
	InputFASTA string
	NameLists  []string

	// Output
	OutputFASTQ    []string
	OutputFASTA    []string
	Uncompressed   bool
	Append         bool
	SequencePrefix string

	// Run description file
	Manifest string

	// Misc
	Quiet    bool
	Version  bool
	Examples bool

	set map[string]bool
}

// multiValued names the flags that take one or more space-separated values.
var multiValued = map[string]bool{
	"sequence-name-lists":   true,
	"l":                     true,
	"fastq-read-name-lists": true,
	"fasta-read-name-lists": true,
	"output-fastq-files":    true,
	"output-fasta-files":    true,
}

// sliceValue appends each value to a *[]string (for repeatable flags).
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return strings.Join(*s.dst, " ")
}

func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// Register wires all flags onto fs. Aliases share the destination variable.
func Register(fs *flag.FlagSet, o *Options) {
	// Input
	fs.StringVar(&o.InputFASTQ, "input-fastq", "", "input FASTQ file, plain or gzip (default: stdin)")
	fs.StringVar(&o.InputFASTA, "input-fasta", "", "input FASTA file, plain or gzip (default: stdin)")
	lists := &sliceValue{dst: &o.NameLists}
	fs.Var(lists, "sequence-name-lists", "sequence name list file(s), one name per line")
	fs.Var(lists, "l", "alias of --sequence-name-lists")
	fs.Var(lists, "fastq-read-name-lists", "alias of --sequence-name-lists")
	fs.Var(lists, "fasta-read-name-lists", "alias of --sequence-name-lists")

	// Output
	fs.Var(&sliceValue{dst: &o.OutputFASTQ}, "output-fastq-files", "output FASTQ file(s), one per name list")
	fs.Var(&sliceValue{dst: &o.OutputFASTA}, "output-fasta-files", "output FASTA file(s), one per name list")
	fs.BoolVar(&o.Uncompressed, "output-uncompressed", false, "write plain text instead of gzip [false]")
	fs.BoolVar(&o.Append, "append", false, "append to existing output files instead of truncating [false]")
	fs.StringVar(&o.SequencePrefix, "sequence-prefix", "", "text prepended to every output sequence name")

	fs.StringVar(&o.Manifest, "manifest", "", "YAML file describing the run")

	// Misc
	fs.BoolVar(&o.Quiet, "quiet", false, "only log warnings and errors [false]")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.Version, "version", false, "print version and exit")
	fs.BoolVar(&o.Version, "v", false, "alias of --version")
	fs.BoolVar(&o.Examples, "examples", false, "print usage examples and exit")
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	Register(fs, &opt)
	fs.BoolVar(&help, "h", false, "show this help message")
	fs.BoolVar(&help, "help", false, "show this help message")

	if err := fs.Parse(cliutil.ExpandMultiValued(argv, multiValued)); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if opt.Examples {
		return opt, ErrPrintedAndExitOK
	}
	if fs.NArg() > 0 {
		return opt, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	opt.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opt.set[f.Name] = true })
	return opt, Validate(&opt)
}

// Validate applies the command-line rules that do not need the manifest.
func Validate(o *Options) error {
	switch {
	case len(o.OutputFASTQ) > 0 && len(o.OutputFASTA) > 0:
		return errors.New("--output-fastq-files conflicts with --output-fasta-files")
	case o.InputFASTQ != "" && o.InputFASTA != "":
		return errors.New("--input-fastq conflicts with --input-fasta")
	case o.InputFASTA != "" && len(o.OutputFASTQ) > 0:
		return errors.New("--input-fasta cannot be combined with --output-fastq-files")
	case o.InputFASTQ != "" && len(o.OutputFASTA) > 0:
		return errors.New("--input-fastq cannot be combined with --output-fasta-files")
	}

	if o.Manifest != "" {
		if len(o.NameLists) > 0 || len(o.OutputFASTQ) > 0 || len(o.OutputFASTA) > 0 {
			return errors.New("--manifest conflicts with --sequence-name-lists and --output-*-files")
		}
		return nil
	}
	if len(o.OutputFASTQ) == 0 && len(o.OutputFASTA) == 0 {
		return errors.New("provide --output-fastq-files or --output-fasta-files")
	}
	if len(o.NameLists) == 0 {
		return errors.New("at least one --sequence-name-lists file is required")
	}
	return nil
}

// IsSet reports whether the named flag was given on the command line.
func (o Options) IsSet(name string) bool { return o.set[name] }

// Format returns the record flavour chosen by the flags, if any.
func (o Options) Format() (seqio.Format, bool) {
	switch {
	case len(o.OutputFASTQ) > 0 || o.InputFASTQ != "":
		return seqio.FASTQ, true
	case len(o.OutputFASTA) > 0 || o.InputFASTA != "":
		return seqio.FASTA, true
	}
	return 0, false
}

// Input is the input path given by either --input-* flag ("" for stdin).
func (o Options) Input() string {
	if o.InputFASTQ != "" {
		return o.InputFASTQ
	}
	return o.InputFASTA
}

// Outputs returns the output paths for whichever flavour was given.
func (o Options) Outputs() []string {
	if len(o.OutputFASTQ) > 0 {
		return o.OutputFASTQ
	}
	return o.OutputFASTA
}
