// Package textutil holds small text normalization helpers shared across the
// config and usecase layers.
package textutil

import (
	"regexp"
	"strings"
)

var (
	commaSeparated = regexp.MustCompile(`[,\s]`)
	packageName    = regexp.MustCompile(`[-_.]+`)
)

// ParseCommaSeparatedList splits a value on commas and whitespace, trims each
// item, and drops empties.
func ParseCommaSeparatedList(value string) []string {
	var items []string
	for _, item := range commaSeparated.Split(value, -1) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// NormalizePackageName collapses runs of dashes, underscores, and dots to a
// single dash and lowercases the result, so plugin names compare equal across
// the spellings package registries accept.
func NormalizePackageName(name string) string {
	return strings.ToLower(packageName.ReplaceAllString(name, "-"))
}
