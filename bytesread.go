package runtime

// ReadBytes reads n raw bytes. Requires the cursor to be byte-aligned.
func (c *BitCursor) ReadBytes(n uint64) ([]byte, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	if err := c.requireAligned(); err != nil {
		return nil, err
	}
	b, err := c.src.ReadBytes(n)
	if err != nil {
		return nil, c.fail(err)
	}
	return b, nil
}

// ReadBytesFull reads from the current position to the end of the source.
// Requires the cursor to be byte-aligned.
func (c *BitCursor) ReadBytesFull() ([]byte, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	if err := c.requireAligned(); err != nil {
		return nil, err
	}
	b, err := c.src.ReadBytesFull()
	if err != nil {
		return nil, c.fail(err)
	}
	return b, nil
}

// ReadBytesTerm scans forward byte-by-byte for the first occurrence of
// term. If include is true, the terminator is appended to the returned
// slice. If consume is true, the cursor advances past the terminator;
// otherwise it stops exactly at it. If the source is exhausted before term
// is found: eosError true fails with UnexpectedEOF, eosError false
// returns everything read so far. Requires the cursor to be byte-aligned.
func (c *BitCursor) ReadBytesTerm(term byte, include, consume, eosError bool) ([]byte, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	if err := c.requireAligned(); err != nil {
		return nil, err
	}

	var out []byte
	for {
		if c.src.EOF() {
			if eosError {
				return nil, c.fail(newErr(ErrUnexpectedEOF, "terminator 0x%02x not found before end of stream", term))
			}
			return out, nil
		}
		b, err := c.src.ReadBytes(1)
		if err != nil {
			return nil, c.fail(err)
		}
		if b[0] == term {
			if include {
				out = append(out, b[0])
			}
			if !consume {
				if err := c.src.Seek(c.src.Position() - 1); err != nil {
					return nil, c.fail(err)
				}
			}
			return out, nil
		}
		out = append(out, b[0])
	}
}
