// internal/demux/reconcile.go
package demux

import (
	"fmt"
	"strings"
)

// CountMismatchError reports destinations whose observed count differs from
// the number of names in their list.
type CountMismatchError struct {
	Expected []int
	Observed []int
}

// Mismatched returns the destination indices whose counts differ.
func (e *CountMismatchError) Mismatched() []int {
	var out []int
	for i := range e.Expected {
		if i >= len(e.Observed) || e.Expected[i] != e.Observed[i] {
			out = append(out, i)
		}
	}
	return out
}

func (e *CountMismatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "mismatching numbers of sequence names were observed. Expected:\n%v\nbut found\n%v", e.Expected, e.Observed)
	if m := e.Mismatched(); len(m) > 0 {
		parts := make([]string, 0, len(m))
		for _, i := range m {
			obs := 0
			if i < len(e.Observed) {
				obs = e.Observed[i]
			}
			parts = append(parts, fmt.Sprintf("#%d expected %d observed %d", i, e.Expected[i], obs))
		}
		fmt.Fprintf(&b, "\n(destinations %s)", strings.Join(parts, ", "))
	}
	return b.String()
}

// Reconcile compares expected and observed counts element-wise.
func Reconcile(expected, observed []int) error {
	if len(expected) == len(observed) {
		same := true
		for i := range expected {
			if expected[i] != observed[i] {
				same = false
				break
			}
		}
		if same {
			return nil
		}
	}
	return &CountMismatchError{
		Expected: append([]int(nil), expected...),
		Observed: append([]int(nil), observed...),
	}
}
