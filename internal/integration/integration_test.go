// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mfqe/internal/app"
)

const fastqIn = "@random_sequence_length_5_1 1\nTAGGG\n+\nAAAAA\n" +
	"@random_sequence_length_5_2 2\nCCTTA\n+\nBBBBB\n" +
	"@random_sequence_length_5_3 3\nGATCA\n+\nCCCCC\n"

const fastaIn = ">random_sequence_length_5_1\nGGTGT\n" +
	">random_sequence_length_5_2 desc\nAAC\nGTT\n"

func write(t *testing.T, fn, data string) string {
	t.Helper()
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func writeGz(t *testing.T, fn, data string) string {
	t.Helper()
	var b bytes.Buffer
	zw := gzip.NewWriter(&b)
	if _, err := zw.Write([]byte(data)); err != nil {
		t.Fatalf("gzip: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return write(t, fn, b.String())
}

func gunzip(t *testing.T, fn string) string {
	t.Helper()
	f, err := os.Open(fn)
	if err != nil {
		t.Fatalf("open %s: %v", fn, err)
	}
	defer f.Close()
	zr, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("gzip reader %s: %v", fn, err)
	}
	b, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("read %s: %v", fn, err)
	}
	return string(b)
}

func readFile(t *testing.T, fn string) string {
	t.Helper()
	b, err := os.ReadFile(fn)
	if err != nil {
		t.Fatalf("read %s: %v", fn, err)
	}
	return string(b)
}

func run(t *testing.T, argv ...string) (int, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.Run(argv, &out, &errBuf)
	return code, errBuf.String()
}

// withStdin runs fn with os.Stdin replaced by a pipe carrying data.
func withStdin(t *testing.T, data string, fn func()) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	go func() {
		_, _ = w.Write([]byte(data))
		_ = w.Close()
	}()
	old := os.Stdin
	os.Stdin = r
	defer func() {
		os.Stdin = old
		_ = r.Close()
	}()
	fn()
}

func TestGzipFASTQSingleList(t *testing.T) {
	dir := t.TempDir()
	in := writeGz(t, filepath.Join(dir, "in.fq.gz"), fastqIn)
	list := write(t, filepath.Join(dir, "list1"), "random_sequence_length_5_1\n")
	out := filepath.Join(dir, "out.fq.gz")

	code, stderr := run(t, "--input-fastq", in, "--sequence-name-lists", list, "--output-fastq-files", out)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if got, want := gunzip(t, out), "@random_sequence_length_5_1 1\nTAGGG\n+\nAAAAA\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if !strings.Contains(stderr, "Read in 1 sequence names from "+list) {
		t.Fatalf("missing list log: %s", stderr)
	}
	if !strings.Contains(stderr, "Extracted 1 sequences from 3 total") {
		t.Fatalf("missing summary log: %s", stderr)
	}
}

func TestFASTQFromStdinFanOut(t *testing.T) {
	dir := t.TempDir()
	l1 := write(t, filepath.Join(dir, "l1"), "random_sequence_length_5_1\nrandom_sequence_length_5_3\n")
	l2 := write(t, filepath.Join(dir, "l2"), "\nrandom_sequence_length_5_3\n\n")
	o1, o2 := filepath.Join(dir, "o1.fq"), filepath.Join(dir, "o2.fq")

	var code int
	var stderr string
	withStdin(t, fastqIn, func() {
		code, stderr = run(t, "-l", l1, l2, "--output-fastq-files", o1, o2, "--output-uncompressed")
	})
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	want1 := "@random_sequence_length_5_1 1\nTAGGG\n+\nAAAAA\n@random_sequence_length_5_3 3\nGATCA\n+\nCCCCC\n"
	if got := readFile(t, o1); got != want1 {
		t.Fatalf("o1=%q want %q", got, want1)
	}
	if got, want := readFile(t, o2), "@random_sequence_length_5_3 3\nGATCA\n+\nCCCCC\n"; got != want {
		t.Fatalf("o2=%q want %q", got, want)
	}
}

func TestFASTAFileAndStdin(t *testing.T) {
	dir := t.TempDir()
	in := write(t, filepath.Join(dir, "in.fa"), fastaIn)
	list := write(t, filepath.Join(dir, "l"), "random_sequence_length_5_2\n")
	want := ">random_sequence_length_5_2 desc\nAACGTT\n"

	out := filepath.Join(dir, "file.fa")
	if code, stderr := run(t, "--input-fasta", in, "--fasta-read-name-lists", list,
		"--output-fasta-files", out, "--output-uncompressed"); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if got := readFile(t, out); got != want {
		t.Fatalf("file input: got %q want %q", got, want)
	}

	out = filepath.Join(dir, "stdin.fa.gz")
	var code int
	var stderr string
	withStdin(t, fastaIn, func() {
		code, stderr = run(t, "-l", list, "--output-fasta-files", out)
	})
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if got := gunzip(t, out); got != want {
		t.Fatalf("stdin input: got %q want %q", got, want)
	}
}

func TestMissingNameIsCountMismatch(t *testing.T) {
	dir := t.TempDir()
	in := write(t, filepath.Join(dir, "in.fq"), fastqIn)
	list := write(t, filepath.Join(dir, "l"), "random_sequence_length_5_1\nreadX\n")
	out := filepath.Join(dir, "o.fq")

	code, stderr := run(t, "--input-fastq", in, "-l", list, "--output-fastq-files", out, "--output-uncompressed")
	if code != 4 {
		t.Fatalf("exit %d want 4: %s", code, stderr)
	}
	if !strings.Contains(stderr, "expected 2 observed 1") {
		t.Fatalf("mismatch not reported: %s", stderr)
	}
	if got := readFile(t, out); !strings.HasPrefix(got, "@random_sequence_length_5_1 ") {
		t.Fatalf("partial output not kept: %q", got)
	}
}

func TestEmptyInput(t *testing.T) {
	dir := t.TempDir()
	missing := write(t, filepath.Join(dir, "l"), "readX\n")
	none := write(t, filepath.Join(dir, "none"), "\n")
	out := filepath.Join(dir, "o.fq")

	var code int
	var stderr string
	withStdin(t, "", func() {
		code, stderr = run(t, "-l", missing, "--output-fastq-files", out, "--output-uncompressed")
	})
	if code != 4 {
		t.Fatalf("empty stdin: exit %d want 4: %s", code, stderr)
	}
	if !strings.Contains(stderr, "expected 1 observed 0") {
		t.Fatalf("mismatch not reported: %s", stderr)
	}

	empty := write(t, filepath.Join(dir, "empty.fq"), "")
	if code, stderr := run(t, "--input-fastq", empty, "-l", none, "--output-fastq-files", out); code != 0 {
		t.Fatalf("empty file, empty list: exit %d: %s", code, stderr)
	}
}

func TestDuplicateNameFailsBeforeOutput(t *testing.T) {
	dir := t.TempDir()
	in := write(t, filepath.Join(dir, "in.fq"), fastqIn)
	list := write(t, filepath.Join(dir, "l"), "readY\nreadY\n")
	out := filepath.Join(dir, "o.fq")

	code, stderr := run(t, "--input-fastq", in, "-l", list, "--output-fastq-files", out)
	if code != 2 {
		t.Fatalf("exit %d want 2: %s", code, stderr)
	}
	if !strings.Contains(stderr, "readY") {
		t.Fatalf("duplicate name not reported: %s", stderr)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("output should not have been created, stat err=%v", err)
	}
}

func TestListOutputCountMismatch(t *testing.T) {
	dir := t.TempDir()
	l := write(t, filepath.Join(dir, "l"), "a\n")
	code, stderr := run(t, "-l", l, l, "--output-fastq-files", filepath.Join(dir, "o.fq"))
	if code != 2 {
		t.Fatalf("exit %d want 2: %s", code, stderr)
	}
	if !strings.Contains(stderr, "These must be equal") {
		t.Fatalf("unexpected message: %s", stderr)
	}
}

func TestUnreadableListAndInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "o.fq")
	if code, _ := run(t, "-l", filepath.Join(dir, "nope"), "--output-fastq-files", out); code != 2 {
		t.Fatalf("missing list: exit %d want 2", code)
	}
	l := write(t, filepath.Join(dir, "l"), "a\n")
	if code, _ := run(t, "-l", l, "--output-fastq-files", out, "--input-fastq", filepath.Join(dir, "nope.fq")); code != 3 {
		t.Fatalf("missing input: exit %d want 3", code)
	}
}

func TestAppendAccumulates(t *testing.T) {
	dir := t.TempDir()
	in := write(t, filepath.Join(dir, "in.fq"), fastqIn)
	l1 := write(t, filepath.Join(dir, "l1"), "random_sequence_length_5_1\n")
	l2 := write(t, filepath.Join(dir, "l2"), "random_sequence_length_5_2\n")
	out := filepath.Join(dir, "o.fq.gz")

	if code, stderr := run(t, "--input-fastq", in, "-l", l1, "--output-fastq-files", out); code != 0 {
		t.Fatalf("first run exit %d: %s", code, stderr)
	}
	if code, stderr := run(t, "--input-fastq", in, "-l", l2, "--output-fastq-files", out, "--append"); code != 0 {
		t.Fatalf("second run exit %d: %s", code, stderr)
	}
	want := "@random_sequence_length_5_1 1\nTAGGG\n+\nAAAAA\n@random_sequence_length_5_2 2\nCCTTA\n+\nBBBBB\n"
	if got := gunzip(t, out); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestManifestRun(t *testing.T) {
	dir := t.TempDir()
	in := write(t, filepath.Join(dir, "in.fa"), fastaIn)
	l := write(t, filepath.Join(dir, "l"), "random_sequence_length_5_1\n")
	out := filepath.Join(dir, "o.fa")
	m := write(t, filepath.Join(dir, "run.yaml"), "format: fasta\n"+
		"input: "+in+"\n"+
		"uncompressed: true\n"+
		"sequence_prefix: S1_\n"+
		"destinations:\n"+
		"  - names: "+l+"\n"+
		"    output: "+out+"\n")

	if code, stderr := run(t, "--manifest", m); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if got, want := readFile(t, out), ">S1_random_sequence_length_5_1\nGGTGT\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}

	// A conflicting flavour on the command line is a usage error.
	if code, _ := run(t, "--manifest", m, "--input-fastq", in); code != 2 {
		t.Fatalf("flavour conflict: exit %d want 2", code)
	}
}

func TestHelpVersionAndUsageErrors(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := app.Run(nil, &out, &errBuf); code != 0 || !strings.Contains(out.String(), "--sequence-name-lists") {
		t.Fatalf("no-arg help: exit %d out=%q", code, out.String())
	}
	out.Reset()
	if code := app.Run([]string{"--version"}, &out, &errBuf); code != 0 || !strings.HasPrefix(out.String(), "mfqe version ") {
		t.Fatalf("version: exit %d out=%q", code, out.String())
	}
	out.Reset()
	if code := app.Run([]string{"--examples"}, &out, &errBuf); code != 0 || !strings.Contains(out.String(), "quickstart") {
		t.Fatalf("examples: exit %d out=%q", code, out.String())
	}
	if code := app.Run([]string{"--no-such-flag"}, &out, &errBuf); code != 2 {
		t.Fatalf("unknown flag: exit %d want 2", code)
	}
}

func TestQuietSilencesInfo(t *testing.T) {
	dir := t.TempDir()
	in := write(t, filepath.Join(dir, "in.fq"), fastqIn)
	l := write(t, filepath.Join(dir, "l"), "random_sequence_length_5_1\n")
	code, stderr := run(t, "-q", "--input-fastq", in, "-l", l, "--output-fastq-files", filepath.Join(dir, "o.fq"))
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if stderr != "" {
		t.Fatalf("expected no diagnostics, got %q", stderr)
	}
}
