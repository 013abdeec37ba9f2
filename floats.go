package runtime

import "math"

// ReadF4LE reads an IEEE-754 binary32 float, little-endian byte order.
func (c *BitCursor) ReadF4LE() (float32, error) {
	b, err := c.readWidth(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(le32(b)), nil
}

// ReadF4BE reads an IEEE-754 binary32 float, big-endian byte order.
func (c *BitCursor) ReadF4BE() (float32, error) {
	b, err := c.readWidth(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(be32(b)), nil
}

// ReadF8LE reads an IEEE-754 binary64 float, little-endian byte order.
func (c *BitCursor) ReadF8LE() (float64, error) {
	b, err := c.readWidth(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(le64(b)), nil
}

// ReadF8BE reads an IEEE-754 binary64 float, big-endian byte order.
func (c *BitCursor) ReadF8BE() (float64, error) {
	b, err := c.readWidth(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(be64(b)), nil
}
