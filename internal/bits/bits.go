// Package bits holds the small bit-twiddling helpers the LC-3 decoder
// leans on: sign extension of the 5/6/9/11-bit immediate and offset
// fields into full 16-bit words.
package bits

// SignExtend widens the low bitCount bits of x to a full uint16, replicating
// the sign bit (bit bitCount-1). Arithmetic is modular: the result always
// wraps within 16 bits.
func SignExtend(x uint16, bitCount int) uint16 {
	if (x>>(bitCount-1))&1 == 1 {
		x |= ^uint16(0) << bitCount
	}
	return x
}
