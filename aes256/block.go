package aes256

// The 16-byte state is a 4x4 byte matrix stored column-major: byte index
// column*4+row, matching the FIPS-197 layout. All four round operations
// below mutate the state in place.

func subBytes(s *[BlockSize]byte) {
	for i, v := range s {
		s[i] = sbox[v]
	}
}

func invSubBytes(s *[BlockSize]byte) {
	for i, v := range s {
		s[i] = invSbox[v]
	}
}

// shiftRows rotates row r of the state left by r positions.
func shiftRows(s *[BlockSize]byte) {
	var t [BlockSize]byte
	t[0], t[4], t[8], t[12] = s[0], s[4], s[8], s[12]
	t[1], t[5], t[9], t[13] = s[5], s[9], s[13], s[1]
	t[2], t[6], t[10], t[14] = s[10], s[14], s[2], s[6]
	t[3], t[7], t[11], t[15] = s[15], s[3], s[7], s[11]
	*s = t
}

// invShiftRows rotates row r of the state right by r positions.
func invShiftRows(s *[BlockSize]byte) {
	var t [BlockSize]byte
	t[0], t[4], t[8], t[12] = s[0], s[4], s[8], s[12]
	t[1], t[5], t[9], t[13] = s[13], s[1], s[5], s[9]
	t[2], t[6], t[10], t[14] = s[10], s[14], s[2], s[6]
	t[3], t[7], t[11], t[15] = s[7], s[11], s[15], s[3]
	*s = t
}

// mixColumns multiplies each state column by the MDS matrix with
// coefficients {2,3,1,1} over GF(2^8).
func mixColumns(s *[BlockSize]byte) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[c*4], s[c*4+1], s[c*4+2], s[c*4+3]
		s[c*4] = gfMul(a0, 2) ^ gfMul(a1, 3) ^ a2 ^ a3
		s[c*4+1] = a0 ^ gfMul(a1, 2) ^ gfMul(a2, 3) ^ a3
		s[c*4+2] = a0 ^ a1 ^ gfMul(a2, 2) ^ gfMul(a3, 3)
		s[c*4+3] = gfMul(a0, 3) ^ a1 ^ a2 ^ gfMul(a3, 2)
	}
}

// invMixColumns applies the inverse matrix with coefficients {14,11,13,9}.
func invMixColumns(s *[BlockSize]byte) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[c*4], s[c*4+1], s[c*4+2], s[c*4+3]
		s[c*4] = gfMul(a0, 14) ^ gfMul(a1, 11) ^ gfMul(a2, 13) ^ gfMul(a3, 9)
		s[c*4+1] = gfMul(a0, 9) ^ gfMul(a1, 14) ^ gfMul(a2, 11) ^ gfMul(a3, 13)
		s[c*4+2] = gfMul(a0, 13) ^ gfMul(a1, 9) ^ gfMul(a2, 14) ^ gfMul(a3, 11)
		s[c*4+3] = gfMul(a0, 11) ^ gfMul(a1, 13) ^ gfMul(a2, 9) ^ gfMul(a3, 14)
	}
}

func addRoundKey(s, rk *[BlockSize]byte) {
	for i := range s {
		s[i] ^= rk[i]
	}
}

// EncryptBlock encrypts a single 16-byte block. dst and src may point to
// the same array. The schedule is only read, so a single KeySchedule can
// serve any number of concurrent calls.
func (ks *KeySchedule) EncryptBlock(dst, src *[BlockSize]byte) {
	s := *src
	addRoundKey(&s, ks.roundKey(0))
	for r := 1; r < rounds; r++ {
		subBytes(&s)
		shiftRows(&s)
		mixColumns(&s)
		addRoundKey(&s, ks.roundKey(r))
	}
	// Final round skips MixColumns.
	subBytes(&s)
	shiftRows(&s)
	addRoundKey(&s, ks.roundKey(rounds))
	*dst = s
}

// DecryptBlock inverts EncryptBlock: inverse operations, round keys in
// reverse order.
func (ks *KeySchedule) DecryptBlock(dst, src *[BlockSize]byte) {
	s := *src
	addRoundKey(&s, ks.roundKey(rounds))
	for r := rounds - 1; r >= 1; r-- {
		invShiftRows(&s)
		invSubBytes(&s)
		addRoundKey(&s, ks.roundKey(r))
		invMixColumns(&s)
	}
	invShiftRows(&s)
	invSubBytes(&s)
	addRoundKey(&s, ks.roundKey(0))
	*dst = s
}
