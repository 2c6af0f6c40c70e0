package bench

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/purecipher/purecipher/aes256"
)

func testKeyIV() (key, iv []byte) {
	key = make([]byte, aes256.KeySize)
	iv = make([]byte, aes256.BlockSize)
	for i := range key {
		key[i] = byte(i)
	}
	for i := range iv {
		iv[i] = byte(0xf0 - i)
	}
	return key, iv
}

func TestRunPureEngine(t *testing.T) {
	key, iv := testKeyIV()
	cfg := Config{TotalBytes: 256 * 1024, BufSize: 32 * 1024}

	res, err := Run(context.Background(), cfg, func() (Engine, error) {
		return NewPure(key, iv, 4*1024)
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Engine != "pure-go-aes256-cbc" {
		t.Fatalf("unexpected engine name %q", res.Engine)
	}
	if res.Bytes < cfg.TotalBytes {
		t.Fatalf("processed %d bytes, want at least %d", res.Bytes, cfg.TotalBytes)
	}
	if res.Throughput() <= 0 {
		t.Fatalf("throughput must be positive")
	}
}

func TestRunParallelWorkers(t *testing.T) {
	key, iv := testKeyIV()
	cfg := Config{TotalBytes: 512 * 1024, BufSize: 16 * 1024, Workers: 4}

	res, err := Run(context.Background(), cfg, func() (Engine, error) {
		return NewPure(key, iv, 16*1024)
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Workers != 4 {
		t.Fatalf("result reports %d workers, want 4", res.Workers)
	}
	if res.Bytes < cfg.TotalBytes {
		t.Fatalf("processed %d bytes, want at least %d", res.Bytes, cfg.TotalBytes)
	}
}

func TestRunCanceledContext(t *testing.T) {
	key, iv := testKeyIV()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Config{TotalBytes: 1 << 30}, func() (Engine, error) {
		return NewPure(key, iv, 1<<20)
	})
	if err != context.Canceled {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

func TestRunRejectsZeroBudget(t *testing.T) {
	key, iv := testKeyIV()
	_, err := Run(context.Background(), Config{}, func() (Engine, error) {
		return NewPure(key, iv, 1<<20)
	})
	if err != ErrNoBudget {
		t.Fatalf("got %v, want ErrNoBudget", err)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	results := []Result{
		{Engine: "pure-go-aes256-cbc", Bytes: 1 << 20, Elapsed: 1e9, Workers: 1},
		{Engine: "stdlib-aes256-cbc", Bytes: 1 << 21, Elapsed: 1e9, Workers: 2},
	}
	if err := WriteCSV(&buf, results); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d CSV lines, want header + 2 rows", len(lines))
	}
	if lines[0] != "engine,workers,bytes,seconds,mib_per_s" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "pure-go-aes256-cbc,1,1048576,1.000000,1.00") {
		t.Fatalf("unexpected row %q", lines[1])
	}
}
