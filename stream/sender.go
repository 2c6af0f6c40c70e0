package stream

import (
	"crypto/rand"
	"io"
	"time"

	"github.com/purecipher/purecipher/aes256"
)

// Sender encrypts and writes frames in sequence order. Not safe for
// concurrent use; it owns the write side of one stream.
type Sender struct {
	w        io.Writer
	ks       *aes256.KeySchedule
	seq      uint64
	compress bool
	now      func() time.Time
}

// NewSender wraps w with a frame encryptor keyed by a 32-byte key. When
// compress is set, payloads that shrink under LZ4 are compressed before
// encryption.
func NewSender(w io.Writer, key []byte, compress bool) (*Sender, error) {
	ks, err := aes256.ExpandKey(key)
	if err != nil {
		return nil, err
	}
	return &Sender{w: w, ks: ks, compress: compress, now: time.Now}, nil
}

// Send encrypts payload under a fresh random IV and writes one frame.
// The payload slice is not retained and not modified.
func (s *Sender) Send(payload []byte) error {
	if len(payload) > MaxCiphertext-aes256.BlockSize {
		return ErrFrameTooLarge
	}

	h := header{seq: s.seq, tsMicro: s.now().UnixMicro()}

	body := payload
	if s.compress {
		if c, ok := compress(payload); ok {
			body = c
			h.flags |= flagCompressed
		}
	}

	// pad appends, so give it a copy with room to grow.
	buf := make([]byte, len(body), len(body)+aes256.BlockSize)
	copy(buf, body)
	buf = pad(buf)

	if _, err := rand.Read(h.iv[:]); err != nil {
		return err
	}
	if err := aes256.CBCEncrypt(s.ks, h.iv[:], buf); err != nil {
		return err
	}
	h.ctLen = uint32(len(buf))

	out := make([]byte, headerSize+len(buf))
	h.marshal(out)
	copy(out[headerSize:], buf)
	if _, err := s.w.Write(out); err != nil {
		return err
	}
	s.seq++
	return nil
}

// Seq returns the sequence number of the next frame to be sent.
func (s *Sender) Seq() uint64 { return s.seq }
