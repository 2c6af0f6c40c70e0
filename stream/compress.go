package stream

import (
	"bytes"
	"errors"
	"io"
	"sync"

	"github.com/pierrec/lz4/v4"
)

var (
	ErrDecompressionFailed = errors.New("stream: lz4 decompression failed")
)

// LZ4 reader/writer state is pooled; a sender compressing 30 frames a
// second must not allocate a fresh compressor per frame.
var lz4Writers = sync.Pool{
	New: func() interface{} { return lz4.NewWriter(nil) },
}

var lz4Readers = sync.Pool{
	New: func() interface{} { return lz4.NewReader(nil) },
}

// compress LZ4-compresses data. It returns (nil, false) when compression
// does not shrink the payload, in which case the frame ships uncompressed.
func compress(data []byte) ([]byte, bool) {
	w := lz4Writers.Get().(*lz4.Writer)
	defer lz4Writers.Put(w)

	var buf bytes.Buffer
	w.Reset(&buf)
	_ = w.Apply(lz4.CompressionLevelOption(lz4.Fast))

	if _, err := w.Write(data); err != nil {
		return nil, false
	}
	if err := w.Close(); err != nil {
		return nil, false
	}
	if buf.Len() >= len(data) {
		return nil, false
	}
	return buf.Bytes(), true
}

// decompress reverses compress.
func decompress(data []byte) ([]byte, error) {
	r := lz4Readers.Get().(*lz4.Reader)
	defer lz4Readers.Put(r)

	r.Reset(bytes.NewReader(data))
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, ErrDecompressionFailed
	}
	return buf.Bytes(), nil
}
