//go:build linux

package bench

import (
	"github.com/purecipher/purecipher/aes256"
	"github.com/purecipher/purecipher/afalg"
)

// kernelEngine routes the same CBC workload through AF_ALG.
type kernelEngine struct {
	cbc *afalg.CBC
	iv  []byte
}

// NewKernel builds the kernel-offload engine. It fails where the kernel
// lacks AF_ALG skcipher support (or on non-Linux builds).
func NewKernel(key, iv []byte) (Engine, error) {
	if len(iv) != aes256.BlockSize {
		return nil, aes256.ErrIVSize
	}
	cbc, err := afalg.NewCBC(key)
	if err != nil {
		return nil, err
	}
	return &kernelEngine{cbc: cbc, iv: append([]byte(nil), iv...)}, nil
}

func (e *kernelEngine) Name() string { return "kernel-afalg-cbc" }

func (e *kernelEngine) Transform(buf []byte) error {
	return e.cbc.Encrypt(e.iv, buf)
}

func (e *kernelEngine) Close() error { return e.cbc.Close() }
