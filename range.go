package chunkopt

import "fmt"

// Range is a pair of half-open spans, [StartA, EndA) in sequence A and
// [StartB, EndB) in sequence B. A matched range has equal lengths on both
// sides and denotes an unchanged run aligned 1:1.
type Range struct {
	StartA, EndA int
	StartB, EndB int
}

// NewRange returns the range [startA, endA) - [startB, endB).
func NewRange(startA, endA, startB, endB int) Range {
	return Range{StartA: startA, EndA: endA, StartB: startB, EndB: endB}
}

// LenA is the number of elements covered in sequence A.
func (r Range) LenA() int { return r.EndA - r.StartA }

// LenB is the number of elements covered in sequence B.
func (r Range) LenB() int { return r.EndB - r.StartB }

// IsEmpty reports whether the range covers nothing on either side.
func (r Range) IsEmpty() bool { return r.StartA == r.EndA && r.StartB == r.EndB }

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d) - [%d, %d)", r.StartA, r.EndA, r.StartB, r.EndB)
}

// shift moves the boundary between r1 and r2 by n elements on both sides.
func shift(r1, r2 Range, n int) (Range, Range) {
	return NewRange(r1.StartA, r1.EndA+n, r1.StartB, r1.EndB+n),
		NewRange(r2.StartA+n, r2.EndA, r2.StartB+n, r2.EndB)
}

// Side selects one of the two compared sequences.
type Side int

const (
	SideA Side = iota
	SideB
)

// SideFromA returns SideA when isA is true, SideB otherwise.
func SideFromA(isA bool) Side {
	if isA {
		return SideA
	}
	return SideB
}

// Start returns the start index of r on this side.
func (s Side) Start(r Range) int { return Select(s, r.StartA, r.StartB) }

// End returns the end index of r on this side.
func (s Side) End(r Range) int { return Select(s, r.EndA, r.EndB) }

func (s Side) String() string {
	if s == SideA {
		return "A"
	}
	return "B"
}

// Select returns a for SideA and b for SideB.
func Select[T any](s Side, a, b T) T {
	if s == SideA {
		return a
	}
	return b
}
