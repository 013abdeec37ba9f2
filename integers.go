package runtime

// readWidth reads exactly n bytes, byte-aligned. It is the shared
// plumbing behind every fixed-width integer and float decoder.
func (c *BitCursor) readWidth(n uint64) ([]byte, error) {
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

func le16(b []byte) uint16 { return uint16(b[0]) | uint16(b[1])<<8 }
func be16(b []byte) uint16 { return uint16(b[0])<<8 | uint16(b[1]) }

func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
func be32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func le64(b []byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}
func be64(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(b[i])
	}
	return v
}

// ReadU1 reads an unsigned 8-bit integer.
func (c *BitCursor) ReadU1() (uint8, error) {
	b, err := c.readWidth(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadS1 reads a signed 8-bit integer (two's complement).
func (c *BitCursor) ReadS1() (int8, error) {
	u, err := c.ReadU1()
	if err != nil {
		return 0, err
	}
	return int8(u), nil
}

// ReadU2LE reads an unsigned 16-bit little-endian integer.
func (c *BitCursor) ReadU2LE() (uint16, error) {
	b, err := c.readWidth(2)
	if err != nil {
		return 0, err
	}
	return le16(b), nil
}

// ReadU2BE reads an unsigned 16-bit big-endian integer.
func (c *BitCursor) ReadU2BE() (uint16, error) {
	b, err := c.readWidth(2)
	if err != nil {
		return 0, err
	}
	return be16(b), nil
}

// ReadS2LE reads a signed 16-bit little-endian integer.
func (c *BitCursor) ReadS2LE() (int16, error) {
	u, err := c.ReadU2LE()
	if err != nil {
		return 0, err
	}
	return int16(u), nil
}

// ReadS2BE reads a signed 16-bit big-endian integer.
func (c *BitCursor) ReadS2BE() (int16, error) {
	u, err := c.ReadU2BE()
	if err != nil {
		return 0, err
	}
	return int16(u), nil
}

// ReadU4LE reads an unsigned 32-bit little-endian integer.
func (c *BitCursor) ReadU4LE() (uint32, error) {
	b, err := c.readWidth(4)
	if err != nil {
		return 0, err
	}
	return le32(b), nil
}

// ReadU4BE reads an unsigned 32-bit big-endian integer.
func (c *BitCursor) ReadU4BE() (uint32, error) {
	b, err := c.readWidth(4)
	if err != nil {
		return 0, err
	}
	return be32(b), nil
}

// ReadS4LE reads a signed 32-bit little-endian integer.
func (c *BitCursor) ReadS4LE() (int32, error) {
	u, err := c.ReadU4LE()
	if err != nil {
		return 0, err
	}
	return int32(u), nil
}

// ReadS4BE reads a signed 32-bit big-endian integer.
func (c *BitCursor) ReadS4BE() (int32, error) {
	u, err := c.ReadU4BE()
	if err != nil {
		return 0, err
	}
	return int32(u), nil
}

// ReadU8LE reads an unsigned 64-bit little-endian integer.
func (c *BitCursor) ReadU8LE() (uint64, error) {
	b, err := c.readWidth(8)
	if err != nil {
		return 0, err
	}
	return le64(b), nil
}

// ReadU8BE reads an unsigned 64-bit big-endian integer.
func (c *BitCursor) ReadU8BE() (uint64, error) {
	b, err := c.readWidth(8)
	if err != nil {
		return 0, err
	}
	return be64(b), nil
}

// ReadS8LE reads a signed 64-bit little-endian integer.
func (c *BitCursor) ReadS8LE() (int64, error) {
	u, err := c.ReadU8LE()
	if err != nil {
		return 0, err
	}
	return int64(u), nil
}

// ReadS8BE reads a signed 64-bit big-endian integer.
func (c *BitCursor) ReadS8BE() (int64, error) {
	u, err := c.ReadU8BE()
	if err != nil {
		return 0, err
	}
	return int64(u), nil
}
