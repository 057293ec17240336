package nameindex

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeList(t *testing.T, dir, name, data string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func TestBuildSingleList(t *testing.T) {
	dir := t.TempDir()
	l1 := writeList(t, dir, "l1", "read1\nread2\n")

	idx, err := Build([]string{l1}, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if idx.Len() != 1 || idx.Names() != 2 {
		t.Fatalf("len=%d names=%d", idx.Len(), idx.Names())
	}
	if got := idx.Lookup("read2"); !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("lookup read2 = %v", got)
	}
	if got := idx.Lookup("read3"); got != nil {
		t.Fatalf("lookup of absent name = %v", got)
	}
	if got := idx.Expected(); !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("expected = %v", got)
	}
}

func TestBuildBlankLinesIgnored(t *testing.T) {
	dir := t.TempDir()
	l1 := writeList(t, dir, "l1", "\nread1\n\n\r\nread2\r\n\n")

	idx, err := Build([]string{l1}, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := idx.Expected(); !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("blank lines counted: expected = %v", got)
	}
	if idx.Lookup("read2") == nil {
		t.Fatalf("CRLF not stripped from read2")
	}
	if idx.Lookup("") != nil {
		t.Fatalf("empty name indexed")
	}
}

func TestBuildFanOutAscending(t *testing.T) {
	dir := t.TempDir()
	l0 := writeList(t, dir, "l0", "a\nshared\n")
	l1 := writeList(t, dir, "l1", "b\n")
	l2 := writeList(t, dir, "l2", "shared\n")

	idx, err := Build([]string{l0, l1, l2}, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := idx.Lookup("shared"); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Fatalf("fan-out = %v, want [0 2]", got)
	}
	if got := idx.Expected(); !reflect.DeepEqual(got, []int{2, 1, 1}) {
		t.Fatalf("expected = %v", got)
	}
}

func TestBuildSameFileTwiceIsFanOut(t *testing.T) {
	dir := t.TempDir()
	l := writeList(t, dir, "l", "x\n")

	idx, err := Build([]string{l, l}, nil)
	if err != nil {
		t.Fatalf("same list as two destinations should be allowed: %v", err)
	}
	if got := idx.Lookup("x"); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Fatalf("lookup = %v", got)
	}
}

func TestBuildDuplicateWithinList(t *testing.T) {
	dir := t.TempDir()
	l := writeList(t, dir, "dups", "readY\nother\nreadY\n")

	_, err := Build([]string{l}, nil)
	var de *DuplicateError
	if !errors.As(err, &de) {
		t.Fatalf("want *DuplicateError, got %v", err)
	}
	if de.Name != "readY" || de.Path != l || de.Line != 3 {
		t.Fatalf("unexpected duplicate detail: %+v", de)
	}
}

func TestBuildUnreadable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	_, err := Build([]string{missing}, nil)
	var ue *UnreadableError
	if !errors.As(err, &ue) || ue.Path != missing {
		t.Fatalf("want *UnreadableError for %s, got %v", missing, err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("cause not preserved: %v", err)
	}
}

func TestBuildReportsCounts(t *testing.T) {
	dir := t.TempDir()
	l0 := writeList(t, dir, "l0", "a\nb\nc\n")
	l1 := writeList(t, dir, "l1", "d\n")

	got := map[string]int{}
	if _, err := Build([]string{l0, l1}, func(p string, n int) { got[p] = n }); err != nil {
		t.Fatalf("build: %v", err)
	}
	if got[l0] != 3 || got[l1] != 1 {
		t.Fatalf("report = %v", got)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	dir := t.TempDir()
	l := writeList(t, dir, "l", "a\n")
	idx, err := Build([]string{l}, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	idx.Expected()[0] = 99
	idx.Paths()[0] = "changed"
	if idx.Expected()[0] != 1 || idx.Paths()[0] != l {
		t.Fatalf("index mutated through accessor")
	}
}
