package bench

import (
	"bytes"
	"testing"
)

// The pure and stdlib engines run the same cipher, so one pass over
// identical buffers must produce identical ciphertext.
func TestPureMatchesStdlib(t *testing.T) {
	key, iv := testKeyIV()

	pure, err := NewPure(key, iv, 2*1024)
	if err != nil {
		t.Fatalf("NewPure: %v", err)
	}
	stdlib, err := NewStdlib(key, iv)
	if err != nil {
		t.Fatalf("NewStdlib: %v", err)
	}

	a := make([]byte, 16*1024)
	b := make([]byte, 16*1024)
	for i := range a {
		a[i] = fillByte
		b[i] = fillByte
	}

	if err := pure.Transform(a); err != nil {
		t.Fatalf("pure Transform: %v", err)
	}
	if err := stdlib.Transform(b); err != nil {
		t.Fatalf("stdlib Transform: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("pure and stdlib engines disagree")
	}
}

func TestNewPureRejectsBadChunk(t *testing.T) {
	key, iv := testKeyIV()
	for _, chunk := range []int{0, -16, 15, 17} {
		if _, err := NewPure(key, iv, chunk); err != ErrChunkAlign {
			t.Fatalf("chunk %d: got %v, want ErrChunkAlign", chunk, err)
		}
	}
}

func TestChaChaEngine(t *testing.T) {
	key, _ := testKeyIV()
	e, err := NewChaCha(key)
	if err != nil {
		t.Fatalf("NewChaCha: %v", err)
	}
	buf := make([]byte, 4*1024)
	if err := e.Transform(buf); err != nil {
		t.Fatalf("Transform: %v", err)
	}
	// Repeat passes must reuse the scratch buffer without error.
	if err := e.Transform(buf); err != nil {
		t.Fatalf("second Transform: %v", err)
	}
}

func BenchmarkPureEngine(b *testing.B) {
	key, iv := testKeyIV()
	e, _ := NewPure(key, iv, 1<<20)
	buf := make([]byte, 1<<20)
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Transform(buf)
	}
}

func BenchmarkStdlibEngine(b *testing.B) {
	key, iv := testKeyIV()
	e, _ := NewStdlib(key, iv)
	buf := make([]byte, 1<<20)
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Transform(buf)
	}
}
