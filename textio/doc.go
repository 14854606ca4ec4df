// Package textio holds the thin I/O boundary of the module: regular
// expression splitting and whole-file read/write.
//
//	words, _ := textio.Split("a, b,c", `,\s*`) // → ["a" "b" "c"]
//	text, err := textio.Slurp("notes.txt")
//	err = textio.Spit("notes.txt", strings.ToUpper(text))
//
// Filesystem failures wrap both [ErrIO] and the underlying *fs.PathError,
// so either can be tested with errors.Is:
//
//	_, err := textio.Slurp("missing.txt")
//	errors.Is(err, textio.ErrIO)        // → true
//	errors.Is(err, fs.ErrNotExist)      // → true
//
// Writes are not atomic; a failed [Spit] may leave a partially written file.
package textio
