// Package diff extracts changed line ranges from unified diff text.
//
// The parser only cares about `+++` path lines and `@@` hunk headers as
// produced by common diff tools (git included); everything else, including
// the hunk bodies themselves, is skipped. The result maps each file to the
// set of new-file line numbers its hunks cover, which is what a
// changed-lines-only reporting filter needs.
package diff
