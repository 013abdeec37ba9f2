//go:build !extended

package runtime

import "unicode/utf8"

// minimalTranscoder is the default-build Transcoder: only ASCII and UTF-8
// are known, and both are passthrough. UTF-8 is checked for
// well-formedness since the consumer has no other opportunity to reject
// malformed text; ASCII is not checked byte-by-byte for the high bit, to
// stay a cheap passthrough exactly like the minimal-mode contract
// describes.
type minimalTranscoder struct{}

func (minimalTranscoder) Decode(encoding string, data []byte) (string, error) {
	switch encoding {
	case "ASCII":
		return string(data), nil
	case "UTF-8":
		if !utf8.Valid(data) {
			return "", newErr(ErrEncoding, "invalid UTF-8 sequence")
		}
		return string(data), nil
	default:
		return "", newErr(ErrEncoding, "unknown encoding %q (built without -tags extended)", encoding)
	}
}

// transcoderBuildTag identifies which Transcoder build is active; tests use
// it to skip assertions that only hold for one build.
const transcoderBuildTag = "minimal"

func init() {
	activeTranscoder = minimalTranscoder{}
}
