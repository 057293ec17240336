// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"mfqe/internal/appcore"
	"mfqe/internal/cli"
	"mfqe/internal/cmdutil"
	"mfqe/internal/demux"
	"mfqe/internal/manifest"
	"mfqe/internal/nameindex"
	"mfqe/internal/version"
)

const name = "mfqe"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)
	cli.InstallUsage(fs, name)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flush(outw, stderr, 0)
		case errors.Is(err, cli.ErrPrintedAndExitOK):
			cli.PrintExamples(outw, name)
			return flush(outw, stderr, 0)
		}
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		_, _ = fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", name)
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flush(outw, stderr, 0)
	}

	log := newLogger(stderr, opts.Quiet)

	core, err := resolve(opts)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	if _, err := appcore.Run(parent, core, log); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return exitCode(err)
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// flush writes buffered stdout; a closed pipe downstream is not an error.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); cmdutil.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}

func newLogger(stderr io.Writer, quiet bool) *cmdutil.Logger {
	level := cmdutil.LevelInfo
	if v, ok := os.LookupEnv(cmdutil.LogEnv); ok {
		lv, err := cmdutil.ParseLevel(v)
		if err != nil {
			cmdutil.Warnf(stderr, false, "ignoring %s: %v", cmdutil.LogEnv, err)
		} else {
			level = lv
		}
	}
	if quiet && level < cmdutil.LevelWarn {
		level = cmdutil.LevelWarn
	}
	f, isFile := stderr.(*os.File)
	return cmdutil.NewLogger(stderr, level, isFile && f == os.Stderr)
}

// resolve merges the manifest, when given, with the command-line options.
// Scalar flags given on the command line win over manifest values.
func resolve(opts cli.Options) (appcore.Options, error) {
	core := appcore.Options{
		Input:          opts.Input(),
		NameLists:      opts.NameLists,
		Outputs:        opts.Outputs(),
		Uncompressed:   opts.Uncompressed,
		Append:         opts.Append,
		SequencePrefix: opts.SequencePrefix,
	}
	cliFormat, cliHasFormat := opts.Format()
	if cliHasFormat {
		core.Format = cliFormat
	}
	if opts.Manifest == "" {
		return core, nil
	}

	m, err := manifest.Load(opts.Manifest)
	if err != nil {
		return core, &appcore.ConfigError{Msg: err.Error()}
	}
	if mf, ok := m.SeqFormat(); ok {
		if cliHasFormat && mf != cliFormat {
			return core, &appcore.ConfigError{Msg: fmt.Sprintf(
				"manifest %s asks for %s but the command line asks for %s", opts.Manifest, mf, cliFormat)}
		}
		core.Format = mf
	} else if !cliHasFormat {
		return core, &appcore.ConfigError{Msg: fmt.Sprintf(
			"manifest %s sets no format and neither --input-* nor --output-* names one", opts.Manifest)}
	}
	core.NameLists = m.Lists()
	core.Outputs = m.Outputs()
	if core.Input == "" {
		core.Input = m.Input
	}
	if m.Uncompressed != nil && !opts.IsSet("output-uncompressed") {
		core.Uncompressed = *m.Uncompressed
	}
	if m.Append != nil && !opts.IsSet("append") {
		core.Append = *m.Append
	}
	if m.SequencePrefix != nil && !opts.IsSet("sequence-prefix") {
		core.SequencePrefix = *m.SequencePrefix
	}
	return core, nil
}

// exitCode maps a run error to the process exit status.
func exitCode(err error) int {
	var (
		cfg      *appcore.ConfigError
		unread   *nameindex.UnreadableError
		dup      *nameindex.DuplicateError
		mismatch *demux.CountMismatchError
	)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return 130
	case errors.As(err, &mismatch):
		return 4
	case errors.As(err, &cfg), errors.As(err, &unread), errors.As(err, &dup):
		return 2
	}
	return 3
}
