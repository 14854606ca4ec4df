package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-sanity/fn"
	"github.com/hasbyte1/go-sanity/num"
	"github.com/hasbyte1/go-sanity/randsrc"
	"github.com/hasbyte1/go-sanity/seq"
)

// samples returns deterministic pseudo-random integer sequences of
// assorted lengths, including the empty one.
func samples(t *testing.T) [][]int {
	t.Helper()
	src, err := randsrc.New(randsrc.WithSeed(2014))
	require.NoError(t, err)
	out := [][]int{{}}
	for n := 1; n <= 40; n += 3 {
		s, err := seq.Repeatedly(n, func() int { return src.Intn(21) - 10 })
		require.NoError(t, err)
		out = append(out, s)
	}
	return out
}

func TestPropertyMapIdentity(t *testing.T) {
	for _, s := range samples(t) {
		assert.Equal(t, s, seq.Map(s, fn.Identity[int]))
	}
}

func TestPropertyFilterRemove(t *testing.T) {
	p := num.IsEven[int]
	for _, s := range samples(t) {
		kept := seq.Filter(s, p)
		assert.Equal(t, kept, seq.Remove(s, fn.Negate(p)))
		assert.True(t, seq.Every(kept, p))
		assert.Equal(t, len(s), len(kept)+len(seq.Remove(s, p)))
	}
}

func TestPropertyReduceLeftWins(t *testing.T) {
	left := func(a, _ int) int { return a }
	for _, s := range samples(t) {
		if len(s) == 0 {
			continue
		}
		got, err := seq.ReduceFirst(s, left)
		require.NoError(t, err)
		head, err := seq.First(s)
		require.NoError(t, err)
		assert.Equal(t, head, got)
	}
}

func TestPropertyTakeDropConcat(t *testing.T) {
	for _, s := range samples(t) {
		for n := 0; n <= len(s); n++ {
			front, err := seq.Take(s, n)
			require.NoError(t, err)
			back, err := seq.Drop(s, n)
			require.NoError(t, err)
			assert.Equal(t, s, seq.Concat(front, back), "n=%d", n)
		}
	}
}

func TestPropertyShuffleIsPermutation(t *testing.T) {
	randsrc.Seed(7)
	for _, s := range samples(t) {
		shuffled := seq.Shuffle(s)
		assert.Len(t, shuffled, len(s))
		assert.Equal(t, seq.Sort(s), seq.Sort(shuffled))
	}
}

func TestPropertyShuffleReproducible(t *testing.T) {
	s := seq.Range(30)
	randsrc.Seed(99)
	a := seq.Shuffle(s)
	randsrc.Seed(99)
	b := seq.Shuffle(s)
	assert.Equal(t, a, b)
}

func TestPropertyInputsUntouched(t *testing.T) {
	for _, s := range samples(t) {
		snapshot := append([]int(nil), s...)
		seq.Sort(s)
		seq.Shuffle(s)
		seq.Reverse(s)
		seq.Cons(s, 1)
		seq.Conj(s, 1)
		seq.Interpose(s, 0)
		_, _ = seq.Take(s, 2)
		_, _ = seq.Drop(s, 2)
		assert.Equal(t, snapshot, s)
	}
}

func TestScenarios(t *testing.T) {
	r, err := seq.RangeStep(1, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5, 7, 9}, r)

	took, err := seq.Take([]int{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, took)

	assert.Equal(t, 10, seq.Reduce(0, []int{1, 2, 3, 4}, num.Add[int]))

	_, err = seq.First([]int{})
	assert.ErrorIs(t, err, seq.ErrEmptyCollection)
}
