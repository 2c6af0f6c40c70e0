package stream

import (
	"errors"

	"github.com/klauspost/reedsolomon"
)

var (
	ErrFECConfig   = errors.New("stream: invalid data/parity shard counts")
	ErrTooManyLost = errors.New("stream: too many shards lost to recover the frame")
)

// FEC shards an encoded frame with Reed-Solomon parity so a receiver on a
// lossy fanout link can rebuild the frame after losing up to parity
// shards. Shards travel over whatever datagram transport the caller uses;
// lost ones are represented as nil on the receive side.
type FEC struct {
	enc    reedsolomon.Encoder
	data   int
	parity int
}

// NewFEC creates a codec with data+parity shards per frame.
func NewFEC(data, parity int) (*FEC, error) {
	if data <= 0 || parity <= 0 {
		return nil, ErrFECConfig
	}
	enc, err := reedsolomon.New(data, parity)
	if err != nil {
		return nil, err
	}
	return &FEC{enc: enc, data: data, parity: parity}, nil
}

// Protect splits frame into data shards and appends parity shards.
func (f *FEC) Protect(frame []byte) ([][]byte, error) {
	shards, err := f.enc.Split(frame)
	if err != nil {
		return nil, err
	}
	if err := f.enc.Encode(shards); err != nil {
		return nil, err
	}
	return shards, nil
}

// Recover rebuilds the original frame of length size from shards, where
// lost shards are nil. At most the parity count may be missing.
func (f *FEC) Recover(shards [][]byte, size int) ([]byte, error) {
	if err := f.enc.ReconstructData(shards); err != nil {
		if err == reedsolomon.ErrTooFewShards {
			return nil, ErrTooManyLost
		}
		return nil, err
	}
	out := make([]byte, 0, size)
	for i := 0; i < f.data && len(out) < size; i++ {
		take := size - len(out)
		if take > len(shards[i]) {
			take = len(shards[i])
		}
		out = append(out, shards[i][:take]...)
	}
	return out, nil
}

// Shards returns the total shard count per frame.
func (f *FEC) Shards() int { return f.data + f.parity }
