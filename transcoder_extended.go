//go:build extended

package runtime

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"

	// Registered so htmlindex.Get can resolve their canonical names; these
	// packages attach their tables to the encoding registry as a side
	// effect of being imported.
	_ "golang.org/x/text/encoding/charmap"
	_ "golang.org/x/text/encoding/japanese"
	_ "golang.org/x/text/encoding/korean"
	_ "golang.org/x/text/encoding/simplifiedchinese"
	_ "golang.org/x/text/encoding/traditionalchinese"
)

// extendedTranscoder accepts any canonically named character set known to
// golang.org/x/text/encoding/htmlindex, in addition to the ASCII/UTF-8
// passthrough the minimal build guarantees.
type extendedTranscoder struct{}

func (extendedTranscoder) Decode(encoding string, data []byte) (string, error) {
	switch encoding {
	case "ASCII":
		return string(data), nil
	case "UTF-8":
		if !utf8.Valid(data) {
			return "", newErr(ErrEncoding, "invalid UTF-8 sequence")
		}
		return string(data), nil
	}

	enc, err := htmlindex.Get(encoding)
	if err != nil {
		return "", wrapErr(ErrEncoding, err, "unknown encoding %q", encoding)
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", wrapErr(ErrEncoding, err, "decoding %q", encoding)
	}
	return string(out), nil
}

// transcoderBuildTag identifies which Transcoder build is active; tests use
// it to skip assertions that only hold for one build.
const transcoderBuildTag = "extended"

func init() {
	activeTranscoder = extendedTranscoder{}
}
