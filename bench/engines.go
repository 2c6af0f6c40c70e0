package bench

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/purecipher/purecipher/aes256"
)

var (
	ErrChunkAlign = errors.New("bench: chunk size must be a positive multiple of 16")
)

// pureEngine is the engine this repository exists to measure: the
// from-scratch AES-256-CBC implementation, driven in chunks with the
// chaining value carried across chunk boundaries.
type pureEngine struct {
	ks    *aes256.KeySchedule
	iv    []byte
	chunk int
}

// NewPure builds a pure-Go AES-256-CBC engine. chunk bounds how much of
// the buffer one CBC call touches; it must be a positive multiple of the
// block size.
func NewPure(key, iv []byte, chunk int) (Engine, error) {
	if chunk <= 0 || chunk%aes256.BlockSize != 0 {
		return nil, ErrChunkAlign
	}
	ks, err := aes256.ExpandKey(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != aes256.BlockSize {
		return nil, aes256.ErrIVSize
	}
	return &pureEngine{ks: ks, iv: append([]byte(nil), iv...), chunk: chunk}, nil
}

func (e *pureEngine) Name() string { return "pure-go-aes256-cbc" }

func (e *pureEngine) Transform(buf []byte) error {
	st, err := aes256.NewCBCState(e.ks, e.iv)
	if err != nil {
		return err
	}
	for off := 0; off < len(buf); off += e.chunk {
		end := off + e.chunk
		if end > len(buf) {
			end = len(buf)
		}
		if err := st.Encrypt(buf[off:end]); err != nil {
			return err
		}
	}
	return nil
}

// stdlibEngine is the library-backed comparison path: crypto/aes with the
// standard CBC mode, typically AES-NI assembly under the hood.
type stdlibEngine struct {
	block cipher.Block
	iv    []byte
}

// NewStdlib builds the crypto/aes CBC comparison engine.
func NewStdlib(key, iv []byte) (Engine, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != block.BlockSize() {
		return nil, aes256.ErrIVSize
	}
	return &stdlibEngine{block: block, iv: append([]byte(nil), iv...)}, nil
}

func (e *stdlibEngine) Name() string { return "stdlib-aes256-cbc" }

func (e *stdlibEngine) Transform(buf []byte) error {
	cipher.NewCBCEncrypter(e.block, e.iv).CryptBlocks(buf, buf)
	return nil
}

// chachaEngine provides a software AEAD reference point. Seal cannot write
// in place (it appends a tag), so it writes into a reused scratch buffer.
type chachaEngine struct {
	aead    cipher.AEAD
	nonce   []byte
	scratch []byte
}

// NewChaCha builds a ChaCha20-Poly1305 engine from a 32-byte key.
func NewChaCha(key []byte) (Engine, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	return &chachaEngine{aead: aead, nonce: make([]byte, chacha20poly1305.NonceSize)}, nil
}

func (e *chachaEngine) Name() string { return "chacha20poly1305" }

func (e *chachaEngine) Transform(buf []byte) error {
	need := len(buf) + e.aead.Overhead()
	if cap(e.scratch) < need {
		e.scratch = make([]byte, 0, need)
	}
	e.scratch = e.aead.Seal(e.scratch[:0], e.nonce, buf, nil)
	return nil
}
