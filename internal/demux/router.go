// internal/demux/router.go
package demux

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Keyed is a record that can be routed by name.
type Keyed interface {
	Identifier() string
}

// Source yields records until it returns io.EOF.
type Source[R any] interface {
	Next() (R, error)
}

// Sink accepts records for one destination.
type Sink[R any] interface {
	Write(R) error
}

// Index resolves a name to its destinations in ascending order.
type Index interface {
	Lookup(name string) []int
	Len() int
}

// Stats are the counters of one routing pass.
type Stats struct {
	Total    int   // records read from the source
	Observed []int // records written, per destination
}

// Extracted is the number of (record, destination) writes.
func (s Stats) Extracted() int {
	n := 0
	for _, c := range s.Observed {
		n += c
	}
	return n
}

// Route drains src, writing each record whose identifier is in idx to every
// matching sink. Records reach each sink in input order; a record matching
// several destinations is written to them in ascending destination order.
// The first read or write error aborts the pass. The returned Stats reflect
// the work done up to that point.
func Route[R Keyed](ctx context.Context, src Source[R], idx Index, sinks []Sink[R]) (Stats, error) {
	st := Stats{Observed: make([]int, len(sinks))}
	if len(sinks) != idx.Len() {
		return st, fmt.Errorf("route: %d sinks for %d name lists", len(sinks), idx.Len())
	}
	for {
		select {
		case <-ctx.Done():
			return st, ctx.Err()
		default:
		}
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			return st, nil
		}
		if err != nil {
			return st, err
		}
		for _, d := range idx.Lookup(rec.Identifier()) {
			if err := sinks[d].Write(rec); err != nil {
				return st, fmt.Errorf("destination %d: %w", d, err)
			}
			st.Observed[d]++
		}
		st.Total++
	}
}
