package diff

import (
	"errors"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// LineSet is a set of 1-based line numbers.
type LineSet map[int]struct{}

// Add inserts a line number into the set.
func (s LineSet) Add(n int) {
	s[n] = struct{}{}
}

// Contains reports whether the set holds the given line number.
func (s LineSet) Contains(n int) bool {
	_, ok := s[n]
	return ok
}

// Lines returns the members in ascending order.
func (s LineSet) Lines() []int {
	lines := make([]int, 0, len(s))
	for n := range s {
		lines = append(lines, n)
	}
	sort.Ints(lines)
	return lines
}

// hunkHeader matches "@@ -old-start[,old-count] +new-start[,new-count] @@...".
// Only the new-file side is captured; a missing count defaults to 1.
var hunkHeader = regexp.MustCompile(`^@@ -\d+(?:,\d+)? \+(\d+)(?:,(\d+))? @@`)

// ErrOrphanHunk reports a hunk header with no preceding `+++` path line.
// Well-formed diffs always name the file before its hunks, so this signals
// corrupt input rather than a user mistake.
var ErrOrphanHunk = errors.New("diff: hunk header before any +++ path line")

// ChangedLines scans unified diff text and returns, per file, the set of
// new-file line numbers covered by any of its hunks. Later hunks for the same
// path add to the existing set. Empty input yields an empty map.
func ChangedLines(diffText string) (map[string]LineSet, error) {
	parsed := make(map[string]LineSet)

	var currentPath string
	havePath := false
	rowsRemaining := 0

	for _, line := range splitLines(diffText) {
		if rowsRemaining > 0 {
			// Inside a hunk body. Added and context lines count against the
			// hunk's new-file row budget; removals do not exist in the new
			// file and are not counted.
			if line == "" || line[0] != '-' {
				rowsRemaining--
			}
			continue
		}

		// Diffs we support look roughly like:
		//    diff a/file.go b/file.go
		//    --- a/file.go
		//    +++ b/file.go
		// Some tools append the file mode after a tab, e.g.
		//    +++ b/file.go\t100644
		// in which case only the part before the tab is the path.
		if strings.HasPrefix(line, "+++") {
			path := ""
			if len(line) > 4 {
				path = line[4:]
			}
			if i := strings.IndexByte(path, '\t'); i >= 0 {
				path = path[:i]
			}
			// git prefixes the new-file path with "b/".
			path = strings.TrimPrefix(path, "b/")
			currentPath = path
			havePath = true
			continue
		}

		m := hunkHeader.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if !havePath {
			return nil, ErrOrphanHunk
		}
		start, _ := strconv.Atoi(m[1])
		count := 1
		if m[2] != "" {
			count, _ = strconv.Atoi(m[2])
		}
		set := parsed[currentPath]
		if set == nil {
			set = make(LineSet)
			parsed[currentPath] = set
		}
		for n := start; n < start+count; n++ {
			set.Add(n)
		}
		rowsRemaining = count
	}

	return parsed, nil
}

// splitLines splits on newlines, tolerating CRLF input.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if last := len(lines) - 1; lines[last] == "" {
		lines = lines[:last]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
