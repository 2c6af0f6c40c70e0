//go:build linux

package afalg

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/purecipher/purecipher/aes256"
)

var (
	ErrKeySize    = errors.New("afalg: key must be exactly 32 bytes")
	ErrIVSize     = errors.New("afalg: iv must be exactly 16 bytes")
	ErrBlockAlign = errors.New("afalg: buffer length must be a multiple of 16")
	ErrClosed     = errors.New("afalg: cipher is closed")
)

// maxOp bounds the payload of a single skcipher operation. The kernel
// rejects oversized sendmsg calls, so long buffers are split and the
// chaining value is carried between operations by hand.
const maxOp = 32 * 1024

// CBC is a kernel-backed AES-256-CBC transform. It holds two file
// descriptors: the bound algorithm socket and the accepted operation
// socket. Not safe for concurrent use; one operation runs at a time.
type CBC struct {
	alg int
	op  int
}

// NewCBC binds an AF_ALG skcipher socket to cbc(aes) and programs the key.
func NewCBC(key []byte) (*CBC, error) {
	if len(key) != aes256.KeySize {
		return nil, ErrKeySize
	}

	alg, err := unix.Socket(unix.AF_ALG, unix.SOCK_SEQPACKET, 0)
	if err != nil {
		return nil, fmt.Errorf("afalg: socket: %w", err)
	}
	addr := &unix.SockaddrALG{Type: "skcipher", Name: "cbc(aes)"}
	if err := unix.Bind(alg, addr); err != nil {
		unix.Close(alg)
		return nil, fmt.Errorf("afalg: bind cbc(aes): %w", err)
	}
	if err := unix.SetsockoptString(alg, unix.SOL_ALG, unix.ALG_SET_KEY, string(key)); err != nil {
		unix.Close(alg)
		return nil, fmt.Errorf("afalg: set key: %w", err)
	}
	op, _, err := unix.Accept(alg)
	if err != nil {
		unix.Close(alg)
		return nil, fmt.Errorf("afalg: accept: %w", err)
	}
	return &CBC{alg: alg, op: op}, nil
}

// Encrypt transforms buf in place through the kernel, plaintext to
// ciphertext, chaining across the whole buffer.
func (c *CBC) Encrypt(iv, buf []byte) error {
	return c.run(unix.ALG_OP_ENCRYPT, iv, buf)
}

// Decrypt is the kernel-backed inverse of Encrypt.
func (c *CBC) Decrypt(iv, buf []byte) error {
	return c.run(unix.ALG_OP_DECRYPT, iv, buf)
}

func (c *CBC) run(op uint32, iv, buf []byte) error {
	if c.op < 0 {
		return ErrClosed
	}
	if len(iv) != aes256.BlockSize {
		return ErrIVSize
	}
	if len(buf)%aes256.BlockSize != 0 {
		return ErrBlockAlign
	}

	cv := make([]byte, aes256.BlockSize)
	copy(cv, iv)

	for off := 0; off < len(buf); off += maxOp {
		end := off + maxOp
		if end > len(buf) {
			end = len(buf)
		}
		chunk := buf[off:end]

		// For decryption the next chaining value is the last block of
		// the *input* ciphertext, which the in-place read will destroy.
		var nextCV []byte
		if op == unix.ALG_OP_DECRYPT {
			nextCV = append([]byte(nil), chunk[len(chunk)-aes256.BlockSize:]...)
		}

		if err := c.crypt(op, cv, chunk); err != nil {
			return err
		}

		if op == unix.ALG_OP_ENCRYPT {
			nextCV = chunk[len(chunk)-aes256.BlockSize:]
		}
		copy(cv, nextCV)
	}
	return nil
}

// crypt performs one kernel operation: sendmsg with the op and IV control
// messages, then read the transformed bytes back over the same data.
func (c *CBC) crypt(op uint32, iv, chunk []byte) error {
	if err := unix.Sendmsg(c.op, chunk, algControl(op, iv), nil, 0); err != nil {
		return fmt.Errorf("afalg: sendmsg: %w", err)
	}
	for done := 0; done < len(chunk); {
		n, err := unix.Read(c.op, chunk[done:])
		if err != nil {
			return fmt.Errorf("afalg: read: %w", err)
		}
		if n == 0 {
			return errors.New("afalg: short read from kernel")
		}
		done += n
	}
	return nil
}

// algControl builds the ALG_SET_OP and ALG_SET_IV control messages. The
// IV payload is struct af_alg_iv: a 32-bit length followed by the bytes.
func algControl(op uint32, iv []byte) []byte {
	opSpace := unix.CmsgSpace(4)
	ivSpace := unix.CmsgSpace(4 + len(iv))
	b := make([]byte, opSpace+ivSpace)

	h := (*unix.Cmsghdr)(unsafe.Pointer(&b[0]))
	h.Level = unix.SOL_ALG
	h.Type = unix.ALG_SET_OP
	h.SetLen(unix.CmsgLen(4))
	binary.NativeEndian.PutUint32(b[unix.CmsgLen(0):], op)

	h = (*unix.Cmsghdr)(unsafe.Pointer(&b[opSpace]))
	h.Level = unix.SOL_ALG
	h.Type = unix.ALG_SET_IV
	h.SetLen(unix.CmsgLen(4 + len(iv)))
	data := b[opSpace+unix.CmsgLen(0):]
	binary.NativeEndian.PutUint32(data, uint32(len(iv)))
	copy(data[4:], iv)

	return b
}

// Close releases both kernel sockets. Safe to call more than once.
func (c *CBC) Close() error {
	if c.op < 0 {
		return nil
	}
	err1 := unix.Close(c.op)
	err2 := unix.Close(c.alg)
	c.op, c.alg = -1, -1
	if err1 != nil {
		return err1
	}
	return err2
}
