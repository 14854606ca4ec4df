package seq

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies f to every element and returns the results in order.
// The result type U is inferred from f.
//
//	seq.Map([]int{1, 2, 3}, strconv.Itoa) // → ["1" "2" "3"]
func Map[T, U any](s []T, f func(T) U) []U {
	out := make([]U, len(s))
	for i, item := range s {
		out[i] = f(item)
	}
	return out
}

// MapIndexed is like [Map] but f also receives the element's index.
func MapIndexed[T, U any](s []T, f func(int, T) U) []U {
	out := make([]U, len(s))
	for i, item := range s {
		out[i] = f(i, item)
	}
	return out
}

// Mapcat applies f to every element and concatenates the resulting slices.
func Mapcat[T, U any](s []T, f func(T) []U) []U {
	out := make([]U, 0, len(s))
	for _, item := range s {
		out = append(out, f(item)...)
	}
	return out
}

// Keep applies f to every element and keeps the results for which f
// reports true, in order.
//
//	seq.Keep(words, func(w string) (int, bool) { n, err := strconv.Atoi(w); return n, err == nil })
func Keep[T, U any](s []T, f func(T) (U, bool)) []U {
	out := make([]U, 0, len(s))
	for _, item := range s {
		if v, ok := f(item); ok {
			out = append(out, v)
		}
	}
	return out
}

// Filter returns the elements for which pred reports true, preserving their
// relative order.
func Filter[T any](s []T, pred func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, item := range s {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Remove returns the elements for which pred reports false. It is the
// complement of [Filter].
func Remove[T any](s []T, pred func(T) bool) []T {
	return Filter(s, func(item T) bool { return !pred(item) })
}

// Reduce folds s from the left: f(...f(f(init, s[0]), s[1])..., s[n-1]).
// An empty s returns init unchanged.
func Reduce[T, A any](init A, s []T, f func(A, T) A) A {
	acc := init
	for _, item := range s {
		acc = f(acc, item)
	}
	return acc
}

// ReduceFirst folds s from the left seeded with its first element, so
// f is first applied to s[0] and s[1]. A single-element s returns that
// element without calling f.
// Returns [ErrEmptyCollection] when s is empty.
func ReduceFirst[T any](s []T, f func(T, T) T) (T, error) {
	head, err := First(s)
	if err != nil {
		return head, err
	}
	return Reduce(head, s[1:], f), nil
}

// Reductions returns every intermediate accumulator of [Reduce], starting
// with init, so the result has len(s)+1 elements.
func Reductions[T, A any](init A, s []T, f func(A, T) A) []A {
	out := make([]A, 0, len(s)+1)
	acc := init
	out = append(out, acc)
	for _, item := range s {
		acc = f(acc, item)
		out = append(out, acc)
	}
	return out
}
