package diff_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/lintscope/lintscope/internal/diff"
)

func TestChangedLines_SingleHunk(t *testing.T) {
	text := `diff --git a/foo.py b/foo.py
--- a/foo.py
+++ b/foo.py
@@ -1,3 +10,2 @@
 context
-removed
+added
`

	changed, err := diff.ChangedLines(text)
	if err != nil {
		t.Fatalf("ChangedLines() error = %v", err)
	}

	set, ok := changed["foo.py"]
	if !ok {
		t.Fatalf("expected foo.py in result, got %v", changed)
	}
	if got := set.Lines(); !reflect.DeepEqual(got, []int{10, 11}) {
		t.Errorf("expected lines [10 11], got %v", got)
	}
}

func TestChangedLines_MissingCountDefaultsToOne(t *testing.T) {
	text := `--- a/foo.py
+++ b/foo.py
@@ -1 +5 @@
+only line
`

	changed, err := diff.ChangedLines(text)
	if err != nil {
		t.Fatalf("ChangedLines() error = %v", err)
	}

	if got := changed["foo.py"].Lines(); !reflect.DeepEqual(got, []int{5}) {
		t.Errorf("expected lines [5], got %v", got)
	}
}

func TestChangedLines_RemovalsDoNotConsumeNewRows(t *testing.T) {
	// The first hunk covers 3 new-file rows but its body holds 4 lines, one
	// of them a removal. If removals were miscounted the second file's +++
	// line would be swallowed as hunk body.
	text := `--- a/foo.py
+++ b/foo.py
@@ -1,3 +1,3 @@
 one
-gone
+two
 three
--- a/bar.py
+++ b/bar.py
@@ -1 +7,2 @@
+x
+y
`

	changed, err := diff.ChangedLines(text)
	if err != nil {
		t.Fatalf("ChangedLines() error = %v", err)
	}

	if got := changed["foo.py"].Lines(); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("foo.py: expected lines [1 2 3], got %v", got)
	}
	if got := changed["bar.py"].Lines(); !reflect.DeepEqual(got, []int{7, 8}) {
		t.Errorf("bar.py: expected lines [7 8], got %v", got)
	}
}

func TestChangedLines_MultipleHunksAccumulate(t *testing.T) {
	text := `+++ b/foo.py
@@ -1,2 +1,2 @@
 a
+b
@@ -10,2 +20,2 @@
 c
+d
`

	changed, err := diff.ChangedLines(text)
	if err != nil {
		t.Fatalf("ChangedLines() error = %v", err)
	}

	if got := changed["foo.py"].Lines(); !reflect.DeepEqual(got, []int{1, 2, 20, 21}) {
		t.Errorf("expected lines [1 2 20 21], got %v", got)
	}
}

func TestChangedLines_ModeSuffixAfterTab(t *testing.T) {
	text := "+++ b/foo.py\t100644\n@@ -1 +1 @@\n+x\n"

	changed, err := diff.ChangedLines(text)
	if err != nil {
		t.Fatalf("ChangedLines() error = %v", err)
	}

	if _, ok := changed["foo.py"]; !ok {
		t.Fatalf("expected tab-suffixed path to normalize to foo.py, got %v", changed)
	}
}

func TestChangedLines_PathWithoutGitPrefix(t *testing.T) {
	text := "+++ foo.py\n@@ -1 +1 @@\n+x\n"

	changed, err := diff.ChangedLines(text)
	if err != nil {
		t.Fatalf("ChangedLines() error = %v", err)
	}

	if _, ok := changed["foo.py"]; !ok {
		t.Fatalf("expected foo.py, got %v", changed)
	}
}

func TestChangedLines_OrphanHunk(t *testing.T) {
	_, err := diff.ChangedLines("@@ -1 +1 @@\n+x\n")
	if !errors.Is(err, diff.ErrOrphanHunk) {
		t.Fatalf("expected ErrOrphanHunk, got %v", err)
	}
}

func TestChangedLines_EmptyInput(t *testing.T) {
	changed, err := diff.ChangedLines("")
	if err != nil {
		t.Fatalf("ChangedLines() error = %v", err)
	}
	if len(changed) != 0 {
		t.Fatalf("expected empty result, got %v", changed)
	}
}

func TestChangedLines_CRLFInput(t *testing.T) {
	text := strings.ReplaceAll("+++ b/foo.py\n@@ -1 +3,2 @@\n+x\n+y\n", "\n", "\r\n")

	changed, err := diff.ChangedLines(text)
	if err != nil {
		t.Fatalf("ChangedLines() error = %v", err)
	}

	if got := changed["foo.py"].Lines(); !reflect.DeepEqual(got, []int{3, 4}) {
		t.Errorf("expected lines [3 4], got %v", got)
	}
}

func TestLineSet(t *testing.T) {
	set := make(diff.LineSet)
	set.Add(3)
	set.Add(1)
	set.Add(3)

	if !set.Contains(1) || !set.Contains(3) {
		t.Fatal("expected 1 and 3 to be present")
	}
	if set.Contains(2) {
		t.Fatal("expected 2 to be absent")
	}
	if got := set.Lines(); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("expected sorted lines [1 3], got %v", got)
	}
}
