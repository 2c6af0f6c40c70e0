package stream

import (
	"errors"

	"github.com/purecipher/purecipher/aes256"
)

var ErrPadding = errors.New("stream: invalid block padding")

// pad appends PKCS#7 padding so the engine sees whole blocks. The engine
// itself is padding-free; alignment is a framing concern. A full extra
// block is added when the payload is already aligned, so padding is always
// removable.
func pad(b []byte) []byte {
	n := aes256.BlockSize - len(b)%aes256.BlockSize
	for i := 0; i < n; i++ {
		b = append(b, byte(n))
	}
	return b
}

// unpad strips PKCS#7 padding, verifying every pad byte.
func unpad(b []byte) ([]byte, error) {
	if len(b) == 0 || len(b)%aes256.BlockSize != 0 {
		return nil, ErrPadding
	}
	n := int(b[len(b)-1])
	if n == 0 || n > aes256.BlockSize || n > len(b) {
		return nil, ErrPadding
	}
	for _, v := range b[len(b)-n:] {
		if int(v) != n {
			return nil, ErrPadding
		}
	}
	return b[:len(b)-n], nil
}
