// Package conformance loads the JSON5 fixtures under testdata/ that drive
// this module's cross-cutting conformance tests: fixed byte-array fixtures
// for a single runtime operation, rather than full parser test suites with
// schemas and encode/decode expectations.
package conformance

import (
	"fmt"
	"os"

	"github.com/aeolun/json5"
)

// StringFixture is one bytes-to-string conformance case: Bytes, given as a
// plain array of integers (JSON5 has no native byte-string literal),
// should transcode to Expected under Encoding.
type StringFixture struct {
	Name     string `json:"name"`
	Bytes    []int  `json:"bytes"`
	Encoding string `json:"encoding"`
	Expected string `json:"expected"`
}

// ToBytes converts the fixture's integer array into a byte slice.
func (f StringFixture) ToBytes() []byte {
	out := make([]byte, len(f.Bytes))
	for i, v := range f.Bytes {
		out[i] = byte(v)
	}
	return out
}

// LoadStringFixtures reads a JSON5 file containing a top-level array of
// StringFixture objects.
func LoadStringFixtures(path string) ([]StringFixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixtures %s: %w", path, err)
	}
	var fixtures []StringFixture
	if err := json5.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("parsing fixtures %s: %w", path, err)
	}
	return fixtures, nil
}
