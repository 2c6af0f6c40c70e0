package aes256

import "errors"

const (
	// KeySize is the only supported key length. This engine is AES-256 only.
	KeySize = 32

	// BlockSize is the AES block size in bytes.
	BlockSize = 16

	// rounds is the AES-256 round count; the schedule holds rounds+1 keys.
	rounds        = 14
	scheduleBytes = (rounds + 1) * BlockSize
)

var (
	ErrKeySize    = errors.New("aes256: key must be exactly 32 bytes")
	ErrIVSize     = errors.New("aes256: iv must be exactly 16 bytes")
	ErrBlockAlign = errors.New("aes256: buffer length must be a multiple of 16")
)

// KeySchedule holds the 240 bytes of expanded round-key material for one
// key. It is immutable after ExpandKey and safe to share across goroutines.
type KeySchedule struct {
	w [scheduleBytes]byte
}

// ExpandKey derives the 15 round keys from a 32-byte key. The expansion is
// a pure function of the key; round key 0 is the first half of the raw key.
func ExpandKey(key []byte) (*KeySchedule, error) {
	if len(key) != KeySize {
		return nil, ErrKeySize
	}

	ks := new(KeySchedule)
	copy(ks.w[:KeySize], key)

	rc := 1
	for i := KeySize; i < scheduleBytes; i += 4 {
		var t [4]byte
		copy(t[:], ks.w[i-4:i])

		switch {
		case i%32 == 0:
			// RotWord, SubWord, then fold in the round constant.
			t[0], t[1], t[2], t[3] = sbox[t[1]], sbox[t[2]], sbox[t[3]], sbox[t[0]]
			t[0] ^= rcon[rc]
			rc++
		case i%32 == 16:
			// The 256-bit schedule applies an extra SubWord halfway
			// through each 8-word group, with no rotation or constant.
			t[0], t[1], t[2], t[3] = sbox[t[0]], sbox[t[1]], sbox[t[2]], sbox[t[3]]
		}

		for j := 0; j < 4; j++ {
			ks.w[i+j] = ks.w[i-KeySize+j] ^ t[j]
		}
	}
	return ks, nil
}

// Material returns a copy of the expanded 240-byte schedule, round key 0
// first. Intended for inspection and tests; the engine reads round keys
// directly from the internal array.
func (ks *KeySchedule) Material() []byte {
	out := make([]byte, scheduleBytes)
	copy(out, ks.w[:])
	return out
}

// roundKey returns the 16-byte key for round r without copying.
func (ks *KeySchedule) roundKey(r int) *[BlockSize]byte {
	return (*[BlockSize]byte)(ks.w[r*BlockSize : (r+1)*BlockSize])
}
