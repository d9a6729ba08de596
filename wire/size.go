package wire

import "math"

// SizeCalculator is a WriteBuffer that stores nothing and only counts the bytes
// written to it. Serializing into it gives the encoded size of a message.
type SizeCalculator struct {
	N int
}

// Len returns the number of bytes counted so far
func (c *SizeCalculator) Len() int { return c.N }

// Available is unbounded
func (c *SizeCalculator) Available() int { return math.MaxInt - c.N }

// WriteByte counts one byte
func (c *SizeCalculator) WriteByte(byte) error {
	c.N++
	return nil
}

// WriteBytes counts len(p) bytes
func (c *SizeCalculator) WriteBytes(p []byte) error {
	c.N += len(p)
	return nil
}

// Reset sets the count back to zero
func (c *SizeCalculator) Reset() { c.N = 0 }
