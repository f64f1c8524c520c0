package chunkopt

// ShiftPolicy decides where the shared boundary of two touching matched
// ranges should sit.
//
// touch is the side on which range1 ends exactly where range2 starts.
// equalForward is how many elements after range1 match pairwise (always less
// than range2's length) and equalBackward how many elements before range2
// match pairwise (always less than range1's length).
//
// The result is the number of elements to move the boundary by: 0 keeps it,
// a positive value moves it forward (range1 grows, range2 shrinks) and a
// negative value moves it backward. It must lie within
// [-equalBackward, equalForward].
//
// The optimizer sweeps until nothing changes, so a policy must return 0 for
// a boundary it has already moved into place.
type ShiftPolicy interface {
	Shift(touch Side, equalForward, equalBackward int, range1, range2 Range) int
}

// ShiftFunc adapts an ordinary function to a ShiftPolicy.
type ShiftFunc func(touch Side, equalForward, equalBackward int, range1, range2 Range) int

// Shift calls f.
func (f ShiftFunc) Shift(touch Side, equalForward, equalBackward int, range1, range2 Range) int {
	return f(touch, equalForward, equalBackward, range1, range2)
}

// NoShift never moves a boundary. The optimizer then only merges chunks.
var NoShift ShiftPolicy = ShiftFunc(func(Side, int, int, Range, Range) int { return 0 })
