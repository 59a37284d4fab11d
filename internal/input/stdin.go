// Package input buffers process stdin so multiple consumers can read it.
package input

import (
	"io"
	"os"
	"sync"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	stdinOnce  sync.Once
	stdinValue string
	stdinErr   error
)

// ReadStdin returns the full contents of stdin decoded to UTF-8. The stream
// is consumed once and the result is memoized for the process lifetime, so
// every caller sees the same value.
func ReadStdin() (string, error) {
	stdinOnce.Do(func() {
		stdinValue, stdinErr = Decode(os.Stdin)
	})
	return stdinValue, stdinErr
}

// Decode reads everything from r and decodes it to UTF-8. A leading BOM
// selects UTF-8, UTF-16LE, or UTF-16BE decoding and is stripped; input
// without a BOM is treated as UTF-8.
func Decode(r io.Reader) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// IsUsingStdin reports whether the conventional "-" placeholder appears in
// the path arguments.
func IsUsingStdin(paths []string) bool {
	for _, p := range paths {
		if p == "-" {
			return true
		}
	}
	return false
}
