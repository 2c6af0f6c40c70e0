// Package bench measures bulk encryption throughput across cipher engines.
//
// An Engine is one full encryption pass over a caller-owned buffer. The
// Runner fills buffers with a fixed pattern, runs warmup passes, then
// times repeated passes until a byte budget is consumed, optionally across
// parallel workers, each with its own engine instance and buffer. Results
// report MiB/s and can be dumped as CSV for plotting.
//
// Four engines are provided: the pure-Go AES-256-CBC engine under test,
// the standard library's crypto/aes CBC, the Linux kernel's AF_ALG path,
// and ChaCha20-Poly1305 as a software AEAD reference.
package bench
