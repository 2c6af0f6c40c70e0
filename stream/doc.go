// Package stream frames and encrypts a sequence of payloads (typically
// video frames) with the aes256 engine, one fresh IV per frame.
//
// Wire format per frame, all integers big endian:
//
//	8 bytes: sequence number
//	8 bytes: capture timestamp, unix microseconds
//	1 byte:  flags (bit 0: payload was LZ4-compressed before encryption)
//	16 bytes: IV
//	4 bytes: ciphertext length
//	N bytes: ciphertext (PKCS#7-padded payload, CBC-encrypted)
//
// Frames carry no authentication tag; integrity is the transport's
// concern, matching the CBC framing this package models. For lossy fanout
// links the FEC type shards an encoded frame with Reed-Solomon parity so
// receivers can rebuild it after shard loss.
package stream
