// internal/appcore/core.go
package appcore

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"mfqe/internal/cmdutil"
	"mfqe/internal/demux"
	"mfqe/internal/nameindex"
	"mfqe/internal/seqio"
	"mfqe/internal/sink"
)

// Options describe one extraction run.
type Options struct {
	Format    seqio.Format
	Input     string   // "" or "-" for stdin
	NameLists []string // list i pairs with output i
	Outputs   []string

	Uncompressed   bool
	Append         bool
	SequencePrefix string
}

// Summary reports a completed pass.
type Summary struct {
	Total     int
	Extracted int
	Expected  []int
	Observed  []int
}

// Validate checks the options before any I/O.
func (o Options) Validate() error {
	if len(o.NameLists) == 0 {
		return configErrorf("at least one sequence name list is required")
	}
	if len(o.Outputs) != len(o.NameLists) {
		return configErrorf("the number of sequence name lists was %d, output files there was %d. These must be equal",
			len(o.NameLists), len(o.Outputs))
	}
	var in os.FileInfo
	if !seqio.IsStdin(o.Input) {
		in, _ = os.Stat(o.Input)
	}
	seen := make(map[string]int, len(o.Outputs))
	for i, p := range o.Outputs {
		if p == "" {
			return configErrorf("output file %d has an empty path", i+1)
		}
		key := canonicalPath(p)
		if j, dup := seen[key]; dup {
			return configErrorf("output file %s is given twice (positions %d and %d)", p, j+1, i+1)
		}
		seen[key] = i
		if !seqio.IsStdin(o.Input) && key == canonicalPath(o.Input) {
			return configErrorf("output file %s is also the input", p)
		}
		if in != nil {
			if st, err := os.Stat(p); err == nil && os.SameFile(in, st) {
				return configErrorf("output file %s is also the input", p)
			}
		}
	}
	return nil
}

// canonicalPath makes "out.fq" and "./out.fq" compare equal.
func canonicalPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

// Run builds the name index, routes every input record to the matching
// outputs and reconciles the counts. Outputs are flushed and closed before
// the counts are checked; on error, partial output is left in place.
func Run(ctx context.Context, o Options, log *cmdutil.Logger) (Summary, error) {
	var sum Summary
	if err := o.Validate(); err != nil {
		return sum, err
	}

	idx, err := nameindex.Build(o.NameLists, func(path string, n int) {
		log.Infof("Read in %d sequence names from %s", n, path)
	})
	if err != nil {
		return sum, err
	}
	sum.Expected = idx.Expected()
	log.Debugf("Indexed %d distinct names across %d lists", idx.Names(), idx.Len())

	src, err := seqio.Open(o.Input, o.Format)
	if err != nil {
		return sum, err
	}
	defer func() { _ = src.Close() }()

	log.Infof("Opening output %s files ..", o.Format)
	files, err := sink.OpenAll(o.Outputs, sink.Options{
		Format: o.Format,
		Gzip:   !o.Uncompressed,
		Append: o.Append,
		Prefix: o.SequencePrefix,
	})
	if err != nil {
		return sum, err
	}
	sinks := make([]demux.Sink[seqio.Record], len(files))
	for i, f := range files {
		sinks[i] = f
		log.Debugf("Output %d: %s", i, f.Path())
	}

	log.Infof("Iterating input %s from %s", o.Format, seqio.DisplayPath(o.Input))
	st, rerr := demux.Route[seqio.Record](ctx, src, idx, sinks)
	sum.Total, sum.Observed, sum.Extracted = st.Total, st.Observed, st.Extracted()

	var cerr error
	for _, f := range files {
		if err := f.Close(); err != nil && cerr == nil {
			cerr = err
		}
	}
	if err := errors.Join(rerr, cerr); err != nil {
		return sum, err
	}

	log.Infof("Extracted %d sequences from %d total", sum.Extracted, sum.Total)
	return sum, demux.Reconcile(sum.Expected, sum.Observed)
}
