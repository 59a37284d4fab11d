package pathutil_test

import (
	"path/filepath"
	"testing"

	"github.com/lintscope/lintscope/internal/pathutil"
)

func TestNormalizePath_BareFilenameIsAPattern(t *testing.T) {
	if got := pathutil.NormalizePath("setup.py", "/repo"); got != "setup.py" {
		t.Fatalf("expected pattern left alone, got %q", got)
	}
}

func TestNormalizePath_RelativePathIsAbsolutized(t *testing.T) {
	got := pathutil.NormalizePath("sub/pkg", "/repo")
	if !filepath.IsAbs(got) {
		t.Fatalf("expected absolute path, got %q", got)
	}
	if got != filepath.Join("/repo", "sub", "pkg") {
		t.Fatalf("expected /repo/sub/pkg, got %q", got)
	}
}

func TestNormalizePath_DotResolvesToParent(t *testing.T) {
	got := pathutil.NormalizePath(".", "/repo")
	if got != "/repo" {
		t.Fatalf("expected /repo, got %q", got)
	}
}

func TestNormalizePath_TrailingSeparatorStripped(t *testing.T) {
	if got := pathutil.NormalizePath("sub/", "/repo"); got != filepath.Join("/repo", "sub") {
		t.Fatalf("expected trailing separator stripped, got %q", got)
	}
}

func TestNormalizePaths(t *testing.T) {
	got := pathutil.NormalizePaths([]string{"setup.py", "."}, "/repo")
	if len(got) != 2 || got[0] != "setup.py" || got[1] != "/repo" {
		t.Fatalf("unexpected result %v", got)
	}
}

func TestMatchAny_EmptyPatternsMatchEverything(t *testing.T) {
	if !pathutil.MatchAny("anything.py", nil) {
		t.Fatal("expected empty pattern list to match")
	}
}

func TestMatchAny_Glob(t *testing.T) {
	if !pathutil.MatchAny("foo.py", []string{"*.txt", "*.py"}) {
		t.Fatal("expected *.py to match foo.py")
	}
	if pathutil.MatchAny("foo.go", []string{"*.py"}) {
		t.Fatal("expected *.py not to match foo.go")
	}
}

func TestMatchAny_MalformedPatternNeverMatches(t *testing.T) {
	if pathutil.MatchAny("foo.py", []string{"[unclosed"}) {
		t.Fatal("expected malformed pattern not to match")
	}
}

func TestMatchesFilename_EmptyPatternsMatchNothing(t *testing.T) {
	if pathutil.MatchesFilename("foo.py", nil) {
		t.Fatal("expected empty pattern list not to match")
	}
}

func TestMatchesFilename_Basename(t *testing.T) {
	if !pathutil.MatchesFilename("some/dir/foo.py", []string{"foo.py"}) {
		t.Fatal("expected basename match")
	}
	if !pathutil.MatchesFilename("some/dir/test_x.py", []string{"test_*.py"}) {
		t.Fatal("expected basename glob match")
	}
}

func TestMatchesFilename_AbsolutePath(t *testing.T) {
	abs, err := filepath.Abs("sub/foo.py")
	if err != nil {
		t.Fatalf("Abs() error = %v", err)
	}
	if !pathutil.MatchesFilename("sub/foo.py", []string{abs}) {
		t.Fatal("expected absolute path match")
	}
}
