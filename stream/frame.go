package stream

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/purecipher/purecipher/aes256"
)

const (
	// MaxCiphertext limits one frame's encrypted payload. Large enough
	// for a raw 1080p frame, small enough to bound a hostile length
	// field.
	MaxCiphertext = 8 << 20

	headerSize = 8 + 8 + 1 + aes256.BlockSize + 4

	flagCompressed = 1 << 0
)

var (
	ErrFrameTooLarge = errors.New("stream: frame payload too large")
	ErrBadFlags      = errors.New("stream: unknown frame flags")
)

// Frame is one decrypted unit as seen by the application.
type Frame struct {
	Seq       uint64
	Timestamp time.Time
	Payload   []byte
}

// header is the fixed-size prefix of an encoded frame.
type header struct {
	seq     uint64
	tsMicro int64
	flags   byte
	iv      [aes256.BlockSize]byte
	ctLen   uint32
}

func (h *header) marshal(dst []byte) {
	binary.BigEndian.PutUint64(dst[0:8], h.seq)
	binary.BigEndian.PutUint64(dst[8:16], uint64(h.tsMicro))
	dst[16] = h.flags
	copy(dst[17:17+aes256.BlockSize], h.iv[:])
	binary.BigEndian.PutUint32(dst[17+aes256.BlockSize:], h.ctLen)
}

func readHeader(r io.Reader) (header, error) {
	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return header{}, err
	}
	var h header
	h.seq = binary.BigEndian.Uint64(buf[0:8])
	h.tsMicro = int64(binary.BigEndian.Uint64(buf[8:16]))
	h.flags = buf[16]
	copy(h.iv[:], buf[17:17+aes256.BlockSize])
	h.ctLen = binary.BigEndian.Uint32(buf[17+aes256.BlockSize:])

	if h.flags&^byte(flagCompressed) != 0 {
		return header{}, ErrBadFlags
	}
	if h.ctLen > MaxCiphertext {
		return header{}, fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, h.ctLen)
	}
	if h.ctLen%aes256.BlockSize != 0 {
		return header{}, aes256.ErrBlockAlign
	}
	return h, nil
}
