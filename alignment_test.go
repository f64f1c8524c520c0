package chunkopt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignment(t *testing.T) {
	t.Run("gaps on both ends", func(t *testing.T) {
		al, err := NewAlignment([]Range{NewRange(1, 2, 0, 1), NewRange(3, 3, 1, 1)}, 3, 2)
		require.NoError(t, err)

		assert.Equal(t, []Chunk{
			{Range: NewRange(0, 1, 0, 0)},
			{Range: NewRange(1, 2, 0, 1), Equal: true},
			{Range: NewRange(2, 3, 1, 2)},
		}, al.Chunks())
		assert.Equal(t, []Range{NewRange(0, 1, 0, 0), NewRange(2, 3, 1, 2)}, al.Changed())
		assert.Equal(t, []Range{NewRange(1, 2, 0, 1)}, al.Unchanged())
		assert.Equal(t, 1, al.MatchedCount())
		assert.False(t, al.Identical())
	})

	t.Run("touching matched ranges", func(t *testing.T) {
		al, err := NewAlignment([]Range{NewRange(0, 1, 0, 1), NewRange(1, 2, 2, 3)}, 2, 3)
		require.NoError(t, err)

		assert.Equal(t, []Chunk{
			{Range: NewRange(0, 1, 0, 1), Equal: true},
			{Range: NewRange(1, 1, 1, 2)},
			{Range: NewRange(1, 2, 2, 3), Equal: true},
		}, al.Chunks())
	})

	t.Run("identical", func(t *testing.T) {
		al, err := NewAlignment([]Range{NewRange(0, 4, 0, 4)}, 4, 4)
		require.NoError(t, err)
		assert.True(t, al.Identical())
		assert.Empty(t, al.Changed())
	})

	t.Run("empty sequences", func(t *testing.T) {
		al, err := NewAlignment(nil, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, al.Chunks())
		assert.True(t, al.Identical())
	})

	t.Run("nothing matched", func(t *testing.T) {
		al, err := NewAlignment(nil, 2, 1)
		require.NoError(t, err)
		assert.Equal(t, []Chunk{{Range: NewRange(0, 2, 0, 1)}}, al.Chunks())
	})

	t.Run("out of bounds", func(t *testing.T) {
		_, err := NewAlignment([]Range{NewRange(0, 3, 0, 3)}, 3, 2)
		assert.True(t, errors.Is(err, ErrMalformedAlignment))
	})
}
