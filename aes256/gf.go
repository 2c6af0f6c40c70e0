package aes256

// gfDouble multiplies a GF(2^8) element by x, reducing by the AES
// polynomial x^8 + x^4 + x^3 + x + 1 (0x11B) when the high bit carries out.
func gfDouble(a byte) byte {
	if a&0x80 != 0 {
		return a<<1 ^ 0x1b
	}
	return a << 1
}

// gfMul multiplies two GF(2^8) elements by peasant multiplication:
// accumulate a for every set bit of b, doubling a at each step.
func gfMul(a, b byte) byte {
	var r byte
	for b != 0 {
		if b&1 != 0 {
			r ^= a
		}
		a = gfDouble(a)
		b >>= 1
	}
	return r
}
