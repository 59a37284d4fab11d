// Package mapping parses files-to-codes mapping configuration.
//
// A mapping is a sequence of groups of the form
//
//	filename[,filename...] : CODE[,CODE...]
//
// where lists may be separated by commas or whitespace freely, filenames are
// any run of characters excluding whitespace, colon, and comma, and codes are
// uppercase-letter identifiers optionally followed by digits (e.g. E501).
// Each filename in a group is paired with the full code list declared after
// the colon, in declaration order.
package mapping
