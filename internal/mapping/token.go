package mapping

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind identifies the lexical class of a token.
type Kind int

const (
	// KindCode is an ignore code such as E501.
	KindCode Kind = iota
	// KindFile is a filename pattern (any run excluding whitespace, colon, comma).
	KindFile
	// KindColon separates a filename list from its code list.
	KindColon
	// KindComma separates list items.
	KindComma
	// KindWhitespace separates list items.
	KindWhitespace
	// KindEOF is the synthetic terminal token appended once per input.
	KindEOF
)

// Token is a single lexical unit of the mapping grammar.
type Token struct {
	Kind Kind
	Text string
}

// ErrInternal marks tokenizer failures that indicate a programming defect
// rather than bad user input. The pattern table below is exhaustive over any
// input character, so hitting this error means the table was broken.
var ErrInternal = errors.New("mapping: internal tokenizer error")

// tokenPatterns is a fixed-priority dispatch table tried in order at the
// cursor; the first match wins. KindCode precedes KindFile so that inputs
// like "E501" are classified as codes, subject to the boundary check in
// Tokenize (RE2 has no lookahead, so the boundary is checked explicitly).
var tokenPatterns = []struct {
	re   *regexp.Regexp
	kind Kind
}{
	{regexp.MustCompile(`^[A-Z]+[0-9]*`), KindCode},
	{regexp.MustCompile(`^[^\s:,]+`), KindFile},
	{regexp.MustCompile(`^\s*:\s*`), KindColon},
	{regexp.MustCompile(`^\s*,\s*`), KindComma},
	{regexp.MustCompile(`^\s+`), KindWhitespace},
}

// Tokenize splits a mapping configuration string into tokens covering the
// entire input with no gaps, terminated by exactly one KindEOF token.
func Tokenize(value string) ([]Token, error) {
	var tokens []Token
	i := 0
scan:
	for i < len(value) {
		rest := value[i:]
		for _, p := range tokenPatterns {
			loc := p.re.FindStringIndex(rest)
			if loc == nil {
				continue
			}
			end := i + loc[1]
			if p.kind == KindCode && !codeBoundary(value, end) {
				// Not followed by end/whitespace/comma: let KindFile claim it.
				continue
			}
			tokens = append(tokens, Token{Kind: p.kind, Text: strings.TrimSpace(rest[:loc[1]])})
			i = end
			continue scan
		}
		return nil, fmt.Errorf("%w: no pattern matches %q at offset %d", ErrInternal, value, i)
	}
	tokens = append(tokens, Token{Kind: KindEOF})
	return tokens, nil
}

// codeBoundary reports whether position end in value is a legal boundary for
// a code token: end of input, whitespace, or a comma.
func codeBoundary(value string, end int) bool {
	if end >= len(value) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(value[end:])
	return r == ',' || unicode.IsSpace(r)
}
