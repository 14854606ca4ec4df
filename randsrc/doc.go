// Package randsrc provides the process-wide random source used by the
// randomised helpers in this module (seq.Shuffle, collections.Collection.Shuffle).
//
// # Generator
//
// A [Source] is a ChaCha20 keystream (golang.org/x/crypto/chacha20) keyed by
// 32 bytes. Keys are either supplied directly with [WithKey] or derived from
// a 64-bit seed with BLAKE2b-256 via [WithSeed]; equal seeds always produce
// equal streams, on every platform.
//
// Every Source serialises access with a mutex, so a single Source may be
// shared by any number of goroutines.
//
// # The default source
//
// [Default] returns a lazily created, process-wide Source. Its seed is read
// once from the SANITY_SEED environment variable (see [LoadConfig]); when the
// variable is unset or malformed a seed from crypto/rand is used instead.
// Tests that need reproducible shuffles call [Seed]:
//
//	randsrc.Seed(42)
//	a := seq.Shuffle(xs)
//	randsrc.Seed(42)
//	b := seq.Shuffle(xs) // a and b are equal
package randsrc
