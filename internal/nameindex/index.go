// internal/nameindex/index.go
package nameindex

import (
	"bufio"
	"os"
)

const maxLine = 64 * 1024 * 1024 // names are short; this only bounds pathological input

// Index maps a sequence name to the ascending destination indices whose list
// contains it, together with each list's expected count.
type Index struct {
	dest     map[string][]int
	expected []int
	paths    []string
}

// ReportFunc receives the number of names read from each list as it is loaded.
type ReportFunc func(path string, names int)

// Build reads the name lists in order; list i becomes destination i.
// A name may appear in several lists (fan-out) but not twice in one list.
// Empty lines are skipped and not counted. report may be nil.
func Build(paths []string, report ReportFunc) (*Index, error) {
	idx := &Index{
		dest:     make(map[string][]int),
		expected: make([]int, 0, len(paths)),
		paths:    append([]string(nil), paths...),
	}
	for i, path := range paths {
		n, err := idx.load(i, path)
		if err != nil {
			return nil, err
		}
		idx.expected = append(idx.expected, n)
		if report != nil {
			report(path, n)
		}
	}
	return idx, nil
}

// load adds list i to the index and returns its count of non-blank lines.
func (idx *Index) load(i int, path string) (int, error) {
	fh, err := os.Open(path)
	if err != nil {
		return 0, &UnreadableError{Path: path, Err: err}
	}
	defer func() { _ = fh.Close() }()

	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	n, ln := 0, 0
	for sc.Scan() {
		ln++
		line := sc.Bytes()
		if k := len(line); k > 0 && line[k-1] == '\r' {
			line = line[:k-1]
		}
		if len(line) == 0 {
			continue
		}
		name := string(line)
		ds := idx.dest[name]
		// Destinations are added in increasing order, so a repeat within
		// list i can only be the last element.
		if k := len(ds); k > 0 && ds[k-1] == i {
			return 0, &DuplicateError{Name: name, Path: path, Line: ln}
		}
		idx.dest[name] = append(ds, i)
		n++
	}
	if err := sc.Err(); err != nil {
		return 0, &UnreadableError{Path: path, Err: err}
	}
	return n, nil
}

// Lookup returns the destinations for name in ascending order, or nil.
// The returned slice is shared and must not be modified.
func (idx *Index) Lookup(name string) []int { return idx.dest[name] }

// Len is the number of destinations (name lists).
func (idx *Index) Len() int { return len(idx.expected) }

// Names is the number of distinct names across all lists.
func (idx *Index) Names() int { return len(idx.dest) }

// Expected returns a copy of the per-destination expected counts.
func (idx *Index) Expected() []int { return append([]int(nil), idx.expected...) }

// Paths returns a copy of the list paths in destination order.
func (idx *Index) Paths() []string { return append([]string(nil), idx.paths...) }
