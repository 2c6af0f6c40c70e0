package aes256

// CBCState drives cipher block chaining over caller-owned buffers and
// carries the 16-byte chaining value between calls. A long transfer can be
// processed in cache-sized chunks through successive Encrypt (or Decrypt)
// calls; the chaining value threads across chunk boundaries and is never
// reset to the IV after the first block.
//
// A state is bound to one direction of one logical message. It must not be
// shared between goroutines; share the KeySchedule instead and give each
// goroutine its own state.
type CBCState struct {
	ks *KeySchedule
	cv [BlockSize]byte
}

// NewCBCState starts a CBC pass with the given schedule and 16-byte IV.
func NewCBCState(ks *KeySchedule, iv []byte) (*CBCState, error) {
	if len(iv) != BlockSize {
		return nil, ErrIVSize
	}
	st := &CBCState{ks: ks}
	copy(st.cv[:], iv)
	return st, nil
}

// Encrypt transforms buf in place, plaintext to ciphertext. The length
// must be a multiple of BlockSize; zero is allowed and leaves buf alone.
// The precondition is checked before any block is written, so a rejected
// buffer is returned untouched.
func (st *CBCState) Encrypt(buf []byte) error {
	if len(buf)%BlockSize != 0 {
		return ErrBlockAlign
	}
	for off := 0; off < len(buf); off += BlockSize {
		b := (*[BlockSize]byte)(buf[off : off+BlockSize])
		for i := range b {
			b[i] ^= st.cv[i]
		}
		st.ks.EncryptBlock(b, b)
		st.cv = *b
	}
	return nil
}

// Decrypt transforms buf in place, ciphertext to plaintext. Each input
// block is captured before it is overwritten, because it becomes the
// chaining value for the block after it.
func (st *CBCState) Decrypt(buf []byte) error {
	if len(buf)%BlockSize != 0 {
		return ErrBlockAlign
	}
	for off := 0; off < len(buf); off += BlockSize {
		b := (*[BlockSize]byte)(buf[off : off+BlockSize])
		saved := *b
		st.ks.DecryptBlock(b, b)
		for i := range b {
			b[i] ^= st.cv[i]
		}
		st.cv = saved
	}
	return nil
}

// CBCEncrypt encrypts buf in place in a single pass: IV in, whole buffer
// chained, chaining value discarded at the end.
func CBCEncrypt(ks *KeySchedule, iv, buf []byte) error {
	st, err := NewCBCState(ks, iv)
	if err != nil {
		return err
	}
	return st.Encrypt(buf)
}

// CBCDecrypt is the single-pass counterpart of CBCEncrypt.
func CBCDecrypt(ks *KeySchedule, iv, buf []byte) error {
	st, err := NewCBCState(ks, iv)
	if err != nil {
		return err
	}
	return st.Decrypt(buf)
}
