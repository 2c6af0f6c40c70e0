//go:build !linux

package bench

import "errors"

// ErrNoKernelPath reports that the AF_ALG engine needs a Linux kernel.
var ErrNoKernelPath = errors.New("bench: kernel AF_ALG engine requires linux")

// NewKernel is a stub on non-Linux platforms.
func NewKernel(key, iv []byte) (Engine, error) {
	return nil, ErrNoKernelPath
}
