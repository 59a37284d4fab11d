package textutil_test

import (
	"reflect"
	"testing"

	"github.com/lintscope/lintscope/internal/textutil"
)

func TestParseCommaSeparatedList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: nil},
		{name: "only separators", input: " , ,\n", expected: nil},
		{name: "commas", input: "E501,E502", expected: []string{"E501", "E502"}},
		{name: "spaces", input: "E501 E502", expected: []string{"E501", "E502"}},
		{name: "mixed with newlines", input: "E501, E502\nE503", expected: []string{"E501", "E502", "E503"}},
		{name: "surrounding whitespace", input: "  E501 ,E502  ", expected: []string{"E501", "E502"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textutil.ParseCommaSeparatedList(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNormalizePackageName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"lintscope", "lintscope"},
		{"Lint_Docstrings", "lint-docstrings"},
		{"lint.polyfill", "lint-polyfill"},
		{"lint__-_.example", "lint-example"},
	}

	for _, tt := range tests {
		if got := textutil.NormalizePackageName(tt.input); got != tt.expected {
			t.Errorf("NormalizePackageName(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
