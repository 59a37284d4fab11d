package mapping

import (
	"fmt"
	"strings"
)

// Entry pairs one filename pattern with the codes declared for it. Entries
// from the same mapping group share the same backing codes slice; callers
// must treat Codes as read-only.
type Entry struct {
	Pattern string
	Codes   []string
}

// ParseError reports a malformed mapping configuration. It carries the full
// original input so operators can see exactly what was rejected.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf(
		"expected a mapping from file patterns to code lists (`pattern[,pattern...]: CODE[,CODE...]`)\n\n"+
			"configured value:\n\n%s",
		indent(strings.TrimSpace(e.Input), "    "),
	)
}

// parserState is the mutable state threaded through the token fold.
type parserState struct {
	seenSep   bool
	seenColon bool
	filenames []string
	codes     []string
}

// Parse turns a mapping configuration string into its ordered entries.
// Malformed input yields a *ParseError; an empty or blank input yields no
// entries.
func Parse(value string) ([]Entry, error) {
	var ret []Entry
	if strings.TrimSpace(value) == "" {
		return ret, nil
	}

	tokens, err := Tokenize(value)
	if err != nil {
		return nil, err
	}

	st := parserState{seenSep: true}
	flush := func() {
		if len(st.codes) > 0 {
			for _, filename := range st.filenames {
				ret = append(ret, Entry{Pattern: filename, Codes: st.codes})
			}
		}
		st = parserState{seenSep: true}
	}

	for _, token := range tokens {
		switch {
		// Legal in any state: a separator sets the separator bit.
		case token.Kind == KindComma || token.Kind == KindWhitespace:
			st.seenSep = true

		// Collecting filenames.
		case !st.seenColon:
			switch {
			case token.Kind == KindColon:
				st.seenColon = true
				st.seenSep = true
			case st.seenSep && token.Kind == KindFile:
				st.filenames = append(st.filenames, token.Text)
				st.seenSep = false
			default:
				return nil, &ParseError{Input: value}
			}

		// Collecting codes.
		default:
			switch {
			case token.Kind == KindEOF:
				flush()
			case st.seenSep && token.Kind == KindCode:
				st.codes = append(st.codes, token.Text)
				st.seenSep = false
			case st.seenSep && token.Kind == KindFile && len(st.codes) > 0:
				// A filename after codes starts the next mapping group.
				flush()
				st.filenames = append(st.filenames, token.Text)
				st.seenSep = false
			default:
				return nil, &ParseError{Input: value}
			}
		}
	}

	return ret, nil
}

// ParseList parses a mapping supplied as multiple values (for example one
// config-file list item per group) by joining them with newlines.
func ParseList(values []string) ([]Entry, error) {
	return Parse(strings.Join(values, "\n"))
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
