package aes256

import "testing"

func TestGFDouble(t *testing.T) {
	// xtime example from FIPS-197 §4.2.1.
	cases := []struct{ in, want byte }{
		{0x57, 0xae},
		{0xae, 0x47},
		{0x47, 0x8e},
		{0x8e, 0x07},
		{0x80, 0x1b},
		{0x00, 0x00},
	}
	for _, c := range cases {
		if got := gfDouble(c.in); got != c.want {
			t.Fatalf("gfDouble(%#02x) = %#02x, want %#02x", c.in, got, c.want)
		}
	}
}

func TestGFMulKnown(t *testing.T) {
	// {57}x{83} = {c1} and {57}x{13} = {fe}, FIPS-197 §4.2.
	if got := gfMul(0x57, 0x83); got != 0xc1 {
		t.Fatalf("gfMul(57,83) = %#02x, want c1", got)
	}
	if got := gfMul(0x57, 0x13); got != 0xfe {
		t.Fatalf("gfMul(57,13) = %#02x, want fe", got)
	}
}

func TestGFMulProperties(t *testing.T) {
	for a := 0; a < 256; a++ {
		if got := gfMul(byte(a), 1); got != byte(a) {
			t.Fatalf("gfMul(%#02x, 1) = %#02x, want identity", a, got)
		}
		if got := gfMul(byte(a), 0); got != 0 {
			t.Fatalf("gfMul(%#02x, 0) = %#02x, want 0", a, got)
		}
		if got := gfMul(byte(a), 2); got != gfDouble(byte(a)) {
			t.Fatalf("gfMul(%#02x, 2) disagrees with gfDouble", a)
		}
	}
	// Commutativity over the full input space is cheap enough to check.
	for a := 0; a < 256; a++ {
		for b := a + 1; b < 256; b++ {
			if gfMul(byte(a), byte(b)) != gfMul(byte(b), byte(a)) {
				t.Fatalf("gfMul not commutative at (%#02x, %#02x)", a, b)
			}
		}
	}
}

func TestSboxInverse(t *testing.T) {
	for i := 0; i < 256; i++ {
		if invSbox[sbox[i]] != byte(i) {
			t.Fatalf("invSbox does not invert sbox at %#02x", i)
		}
	}
}
