package chunkopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	r := NewRange(1, 4, 2, 5)

	assert.Equal(t, 3, r.LenA())
	assert.Equal(t, 3, r.LenB())
	assert.False(t, r.IsEmpty())
	assert.True(t, NewRange(2, 2, 7, 7).IsEmpty())
	assert.Equal(t, "[1, 4) - [2, 5)", r.String())

	r1, r2 := shift(NewRange(0, 3, 0, 3), NewRange(3, 6, 5, 8), -2)
	assert.Equal(t, NewRange(0, 1, 0, 1), r1)
	assert.Equal(t, NewRange(1, 6, 3, 8), r2)
}

func TestSide(t *testing.T) {
	r := NewRange(1, 4, 2, 5)

	assert.Equal(t, SideA, SideFromA(true))
	assert.Equal(t, SideB, SideFromA(false))

	assert.Equal(t, 1, SideA.Start(r))
	assert.Equal(t, 4, SideA.End(r))
	assert.Equal(t, 2, SideB.Start(r))
	assert.Equal(t, 5, SideB.End(r))

	assert.Equal(t, "left", Select(SideA, "left", "right"))
	assert.Equal(t, "right", Select(SideB, "left", "right"))
	assert.Equal(t, "B", SideB.String())
}
