package runtime

// ReadBitsIntBE reads n bits, 1 <= n <= 64, MSB-first within each source
// byte (big-endian bit order), and returns them right-justified in the
// low n bits of the result.
//
// While fewer than n bits are buffered, one more byte is pulled from the
// source and appended to the right of the accumulator: bits = (bits<<8)|b.
// The result is then the top n bits of the accumulator; the remaining low
// bits are kept for the next call. As with the reference kaitai-struct
// runtimes this algorithm is derived from, a request for n close to 64
// made while several residual bits are already buffered can lose the
// oldest residual bits to 64-bit overflow; this mirrors known upstream
// behavior rather than adding an undocumented guard.
func (c *BitCursor) ReadBitsIntBE(n uint) (uint64, error) {
	if err := c.guard(); err != nil {
		return 0, err
	}
	if n < 1 || n > 64 {
		return 0, c.fail(newErr(ErrInvalidArgument, "read_bits_int_be: n=%d out of range [1,64]", n))
	}
	c.resetIfOrderChanged(bigEndianBits)

	for c.bitsLeft < n {
		b, err := c.src.ReadBytes(1)
		if err != nil {
			return 0, c.fail(err)
		}
		c.bits = (c.bits << 8) | uint64(b[0])
		c.bitsLeft += 8
	}

	shift := c.bitsLeft - n
	result := c.bits >> shift
	if shift < 64 {
		c.bits &= (uint64(1) << shift) - 1
	} else {
		c.bits = 0
	}
	c.bitsLeft = shift
	if n < 64 {
		result &= (uint64(1) << n) - 1
	}
	return result, nil
}

// ReadBitsIntLE reads n bits, 1 <= n <= 64, LSB-first within each source
// byte (little-endian bit order), and returns them right-justified in the
// low n bits of the result. See ReadBitsIntBE for the accumulation
// strategy and its overflow caveat at n close to 64 with pending residual.
func (c *BitCursor) ReadBitsIntLE(n uint) (uint64, error) {
	if err := c.guard(); err != nil {
		return 0, err
	}
	if n < 1 || n > 64 {
		return 0, c.fail(newErr(ErrInvalidArgument, "read_bits_int_le: n=%d out of range [1,64]", n))
	}
	c.resetIfOrderChanged(littleEndianBits)

	for c.bitsLeft < n {
		b, err := c.src.ReadBytes(1)
		if err != nil {
			return 0, c.fail(err)
		}
		c.bits |= uint64(b[0]) << c.bitsLeft
		c.bitsLeft += 8
	}

	var mask uint64
	if n < 64 {
		mask = (uint64(1) << n) - 1
	} else {
		mask = ^uint64(0)
	}
	result := c.bits & mask
	c.bits >>= n
	c.bitsLeft -= n
	return result, nil
}
