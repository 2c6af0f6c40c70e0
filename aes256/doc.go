// Package aes256 implements AES-256 in CBC mode from first principles.
//
// Design goals:
//   - No dependency on crypto/aes, cgo, or hardware AES instructions
//   - Table-driven S-box substitution, bit-loop GF(2^8) field arithmetic
//   - Chaining value carried across the entire buffer, resumable across
//     chunks via CBCState
//   - Caller-owned buffers; the engine allocates nothing per block
//
// The implementation favors portability and correctness over constant-time
// guarantees. Do not use it where side-channel resistance is required; it
// exists to measure what a pure software cipher costs on commodity hardware.
package aes256
