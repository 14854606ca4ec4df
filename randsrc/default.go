package randsrc

import "sync"

var defaultSource struct {
	once sync.Once
	src  *Source
}

// Default returns the process-wide Source, creating it on first use from
// the environment (see [LoadConfig]).
func Default() *Source {
	defaultSource.once.Do(func() {
		var opts []Option
		if cfg, err := LoadConfig(); err == nil {
			opts = cfg.Options()
		}
		src, err := New(opts...)
		if err != nil {
			// crypto/rand failed; fall back to a fixed seed rather than leave
			// the process without a generator.
			src, _ = New(WithSeed(0))
		}
		defaultSource.src = src
	})
	return defaultSource.src
}

// Seed reseeds the process-wide Source so that subsequent draws are
// reproducible.
func Seed(seed uint64) {
	Default().Reseed(seed)
}
