package bench

// Engine is a cipher path under measurement.
//
// Transform performs one full encryption pass over buf in place (or over
// an internal scratch region of equal length for engines whose API cannot
// write in place). Engines are not required to be safe for concurrent
// Transform calls; the runner gives every worker its own instance.
type Engine interface {
	Name() string
	Transform(buf []byte) error
}

// Factory produces one engine instance per worker.
type Factory func() (Engine, error)
