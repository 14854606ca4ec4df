package randsrc

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
)

// Source is a goroutine-safe, seedable pseudo-random generator.
// The zero value is not usable; construct one with [New].
type Source struct {
	mu     sync.Mutex
	stream *chacha20.Cipher
	buf    [8]byte
}

type options struct {
	key []byte
}

// Option configures [New].
type Option func(*options)

// WithSeed derives the key from seed, making the stream reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.key = seedKey(seed)
	}
}

// WithKey uses key (exactly 32 bytes) as the ChaCha20 key.
// The slice is copied.
func WithKey(key []byte) Option {
	return func(o *options) {
		o.key = append([]byte(nil), key...)
	}
}

// New creates a Source. Without options the key is read from crypto/rand.
func New(opts ...Option) (*Source, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.key == nil {
		o.key = make([]byte, chacha20.KeySize)
		if _, err := rand.Read(o.key); err != nil {
			return nil, fmt.Errorf("randsrc: reading entropy: %w", err)
		}
	}
	if len(o.key) != chacha20.KeySize {
		return nil, ErrInvalidKey
	}
	stream, err := newStream(o.key)
	if err != nil {
		return nil, err
	}
	return &Source{stream: stream}, nil
}

// Reseed restarts s from the stream selected by seed.
func (s *Source) Reseed(seed uint64) {
	stream, err := newStream(seedKey(seed))
	if err != nil {
		// Key and nonce sizes are fixed; this cannot happen.
		panic(err)
	}
	s.mu.Lock()
	s.stream = stream
	s.mu.Unlock()
}

// Uint64 returns a uniformly distributed 64-bit value.
func (s *Source) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next()
}

// Intn returns a uniformly distributed value in [0, n).
// It panics if n <= 0, like math/rand.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("randsrc: invalid argument to Intn")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return int(s.uint64n(uint64(n)))
}

// Float64 returns a uniformly distributed value in [0.0, 1.0).
func (s *Source) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// Shuffle pseudo-randomises the order of n elements with the Fisher-Yates
// algorithm. swap must exchange the elements at i and j. It must not call
// back into s.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		panic("randsrc: invalid argument to Shuffle")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := n - 1; i > 0; i-- {
		j := int(s.uint64n(uint64(i + 1)))
		swap(i, j)
	}
}

// Perm returns a pseudo-random permutation of [0, n).
func (s *Source) Perm(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	s.Shuffle(n, func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// next reads eight keystream bytes. The caller must hold s.mu.
func (s *Source) next() uint64 {
	clear(s.buf[:])
	s.stream.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}

// uint64n returns a value in [0, n) without modulo bias. The caller must
// hold s.mu.
func (s *Source) uint64n(n uint64) uint64 {
	if n&(n-1) == 0 {
		return s.next() & (n - 1)
	}
	limit := (math.MaxUint64 / n) * n
	for {
		if v := s.next(); v < limit {
			return v % n
		}
	}
}

func seedKey(seed uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], seed)
	key := blake2b.Sum256(b[:])
	return key[:]
}

func newStream(key []byte) (*chacha20.Cipher, error) {
	nonce := make([]byte, chacha20.NonceSize)
	stream, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("randsrc: %w", err)
	}
	return stream, nil
}
