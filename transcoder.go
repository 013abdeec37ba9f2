package runtime

// Transcoder converts a raw byte array into text under a named character
// set. Exactly which names are accepted depends on the build: the default
// build accepts only "ASCII" and "UTF-8"; building with -tags extended
// swaps in a transcoder backed by golang.org/x/text that accepts any
// canonically named character set.
type Transcoder interface {
	Decode(encoding string, data []byte) (string, error)
}

// activeTranscoder is selected at compile time by transcoder_minimal.go or
// transcoder_extended.go. There is no runtime switch between the two: the
// accepted encoding set is fixed for the life of the binary.
var activeTranscoder Transcoder

// BytesToStr transcodes data using the named character set. Unknown
// encoding names, and input the transcoder rejects, both fail with
// EncodingError.
func (c *BitCursor) BytesToStr(data []byte, encoding string) (string, error) {
	if err := c.guard(); err != nil {
		return "", err
	}
	s, err := activeTranscoder.Decode(encoding, data)
	if err != nil {
		if asErr, ok := err.(*Error); ok {
			return "", c.fail(asErr)
		}
		return "", c.fail(wrapErr(ErrEncoding, err, "decoding %q", encoding))
	}
	return s, nil
}
