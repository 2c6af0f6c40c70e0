// Package afalg drives AES-256-CBC through the Linux kernel's AF_ALG
// socket interface (algif_skcipher).
//
// It exists as a comparison point for the pure-Go engine in aes256: the
// kernel path reveals what hardware-accelerated or kernel-optimized AES
// costs once syscall and copy overhead are included. The package is
// Linux-only and compiles to nothing elsewhere.
package afalg
