package bench

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"
)

var (
	ErrNoBudget = errors.New("bench: total byte budget must be positive")
)

// fillByte is the pattern every benchmark buffer is initialized with, so
// runs are reproducible and never depend on uninitialized memory.
const fillByte = 0xa5

// Config shapes one benchmark run.
type Config struct {
	// TotalBytes is the byte budget shared across all workers.
	TotalBytes int64

	// BufSize is each worker's buffer length. Defaults to 1 MiB, which
	// keeps a pass inside the last-level cache on most hardware.
	BufSize int

	// Warmup is the number of untimed passes per worker before the clock
	// starts. Defaults to 1.
	Warmup int

	// Workers is the number of parallel workers, each with its own
	// engine instance and buffer. Defaults to 1.
	Workers int
}

func (c Config) withDefaults() Config {
	if c.BufSize <= 0 {
		c.BufSize = 1 << 20
	}
	if c.Warmup < 0 {
		c.Warmup = 0
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	return c
}

// Result is one engine's measurement.
type Result struct {
	Engine  string
	Bytes   int64
	Elapsed time.Duration
	Workers int
}

// Throughput returns MiB processed per second of wall time.
func (r Result) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Bytes) / (1 << 20) / r.Elapsed.Seconds()
}

// Run measures one engine. The factory is invoked once per worker; engines
// that also implement io.Closer are closed when the run ends. The byte
// budget is split evenly across workers and rounded up to whole buffers,
// so Result.Bytes may slightly exceed cfg.TotalBytes.
func Run(ctx context.Context, cfg Config, factory Factory) (Result, error) {
	cfg = cfg.withDefaults()
	if cfg.TotalBytes <= 0 {
		return Result{}, ErrNoBudget
	}

	engines := make([]Engine, cfg.Workers)
	buffers := make([][]byte, cfg.Workers)
	for i := range engines {
		e, err := factory()
		if err != nil {
			closeEngines(engines[:i])
			return Result{}, err
		}
		engines[i] = e
		buffers[i] = make([]byte, cfg.BufSize)
		for j := range buffers[i] {
			buffers[i][j] = fillByte
		}
	}
	defer closeEngines(engines)

	// Untimed warmup: page in buffers, let the engine settle.
	for w := 0; w < cfg.Warmup; w++ {
		for i, e := range engines {
			if err := e.Transform(buffers[i]); err != nil {
				return Result{}, err
			}
		}
	}

	share := cfg.TotalBytes / int64(cfg.Workers)
	if share <= 0 {
		share = 1
	}

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total int64
		first error
	)

	start := time.Now()
	for i := range engines {
		wg.Add(1)
		go func(e Engine, buf []byte) {
			defer wg.Done()
			var done int64
			for done < share {
				if ctx.Err() != nil {
					break
				}
				if err := e.Transform(buf); err != nil {
					mu.Lock()
					if first == nil {
						first = err
					}
					mu.Unlock()
					return
				}
				done += int64(len(buf))
			}
			mu.Lock()
			total += done
			mu.Unlock()
		}(engines[i], buffers[i])
	}
	wg.Wait()
	elapsed := time.Since(start)

	if first != nil {
		return Result{}, first
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return Result{
		Engine:  engines[0].Name(),
		Bytes:   total,
		Elapsed: elapsed,
		Workers: cfg.Workers,
	}, nil
}

func closeEngines(engines []Engine) {
	for _, e := range engines {
		if c, ok := e.(io.Closer); ok {
			_ = c.Close()
		}
	}
}
