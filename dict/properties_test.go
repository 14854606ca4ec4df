package dict_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-sanity/dict"
	"github.com/hasbyte1/go-sanity/seq"
)

func TestPropertyZipmapRoundTrip(t *testing.T) {
	for n := 0; n < 20; n++ {
		ks := seq.Map(seq.Range(n), strconv.Itoa)
		m, err := dict.Zipmap(ks, seq.Range(n))
		require.NoError(t, err)

		keys, vals := dict.Unzip(m)
		back, err := dict.Zipmap(keys, vals)
		require.NoError(t, err)
		assert.Equal(t, m, back)

		sorted := dict.SortedKeys(m)
		ordered := seq.Map(sorted, func(k string) int { return m[k] })
		back, err = dict.Zipmap(sorted, ordered)
		require.NoError(t, err)
		assert.Equal(t, m, back)
	}
}

func TestScenarioMerge(t *testing.T) {
	got := dict.Merge(map[string]int{"a": 1, "b": 2}, map[string]int{"b": 3, "c": 4})
	assert.Equal(t, map[string]int{"a": 1, "b": 3, "c": 4}, got)
}

func TestScenarioZipmapMismatch(t *testing.T) {
	_, err := dict.Zipmap([]int{1, 2}, []int{1, 2, 3})
	assert.ErrorIs(t, err, dict.ErrLengthMismatch)
}
