package stream

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/purecipher/purecipher/aes256"
)

var ErrOutOfOrder = errors.New("stream: frame sequence gap")

// Receiver reads and decrypts frames from an ordered stream, enforcing
// that sequence numbers arrive without gaps.
type Receiver struct {
	r    io.Reader
	ks   *aes256.KeySchedule
	next uint64
}

// NewReceiver wraps r with a frame decryptor keyed by a 32-byte key.
func NewReceiver(r io.Reader, key []byte) (*Receiver, error) {
	ks, err := aes256.ExpandKey(key)
	if err != nil {
		return nil, err
	}
	return &Receiver{r: r, ks: ks}, nil
}

// Recv reads the next frame, decrypts it, and returns the plaintext
// payload. io.EOF is returned unwrapped at a clean end of stream.
func (rc *Receiver) Recv() (Frame, error) {
	h, err := readHeader(rc.r)
	if err != nil {
		return Frame{}, err
	}
	if h.seq != rc.next {
		return Frame{}, fmt.Errorf("%w: got %d, want %d", ErrOutOfOrder, h.seq, rc.next)
	}

	buf := make([]byte, h.ctLen)
	if _, err := io.ReadFull(rc.r, buf); err != nil {
		return Frame{}, err
	}
	if err := aes256.CBCDecrypt(rc.ks, h.iv[:], buf); err != nil {
		return Frame{}, err
	}

	body, err := unpad(buf)
	if err != nil {
		return Frame{}, err
	}
	if h.flags&flagCompressed != 0 {
		if body, err = decompress(body); err != nil {
			return Frame{}, err
		}
	}

	rc.next = h.seq + 1
	return Frame{
		Seq:       h.seq,
		Timestamp: time.UnixMicro(h.tsMicro),
		Payload:   body,
	}, nil
}
