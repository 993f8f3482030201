// Package filetest implements golden-file testing: the output of a test is
// compared to the content of a file stored alongside the test input, and that
// file can be regenerated with an update flag.
package filetest

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/kylelemons/godebug/diff"
)

var testUpdateAllTests = flag.Bool("test.update-all-tests", false, "If set, sets all test.update-*-tests.")

// SourceFiles returns the regular files in dir with the specified extension,
// or all regular files if ext is empty.
func SourceFiles(t *testing.T, dir, ext string) []os.DirEntry {
	t.Helper()

	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}

	dents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	res := dents[:0]
	for _, dent := range dents {
		if !dent.Type().IsRegular() {
			continue
		}
		if ext != "" && filepath.Ext(dent.Name()) != ext {
			continue
		}
		res = append(res, dent)
	}
	return res
}

// Golden compares test outputs to golden files stored in Dir. A golden file
// is named after the source file with an added extension that depends on the
// kind of output.
type Golden struct {
	Dir string
	// Update is the flag that, when set, replaces the golden files with the
	// actual output instead of comparing.
	Update *bool
}

// Output compares the standard output of the test of src to its ".want"
// golden file.
func (g Golden) Output(t *testing.T, src os.DirEntry, output string) {
	t.Helper()
	g.Diff(t, src, "output", ".want", output)
}

// Errors compares the error output of the test of src to its ".err" golden
// file. A missing golden file is the same as an empty one.
func (g Golden) Errors(t *testing.T, src os.DirEntry, output string) {
	t.Helper()
	g.Diff(t, src, "errors", ".err", output)
}

// Diff compares output to the golden file of src with extension ext. The
// label is used in the test logs to identify the kind of output.
func (g Golden) Diff(t *testing.T, src os.DirEntry, label, ext, output string) {
	t.Helper()

	goldFile := filepath.Join(g.Dir, src.Name()+ext)
	if (g.Update != nil && *g.Update) || *testUpdateAllTests {
		if output == "" {
			// do not litter the directory with empty golden files
			if err := os.Remove(goldFile); err != nil && !os.IsNotExist(err) {
				t.Fatal(err)
			}
			return
		}
		if err := os.WriteFile(goldFile, []byte(output), 0600); err != nil {
			t.Fatal(err)
		}
		return
	}

	wantb, err := os.ReadFile(goldFile)
	if err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}
	want := string(wantb)
	if testing.Verbose() {
		t.Logf("got %s:\n%s\n", label, output)
	}
	if patch := diff.Diff(want, output); patch != "" {
		if testing.Verbose() {
			t.Logf("want %s:\n%s\n", label, want)
		}
		t.Errorf("diff %s:\n%s\n", label, patch)
	}
}
