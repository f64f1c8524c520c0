package chunkopt

// ExpandForward returns how many leading elements of a[startA:endA] and
// b[startB:endB] are pairwise equal. Scanning stops at the first mismatch or
// at the end of the shorter window.
func ExpandForward[T comparable](a, b []T, startA, startB, endA, endB int) int {
	return ExpandForwardFunc(a, b, startA, startB, endA, endB, equal[T])
}

// ExpandBackward is ExpandForward scanned from the ends of the windows
// toward their starts.
func ExpandBackward[T comparable](a, b []T, startA, startB, endA, endB int) int {
	return ExpandBackwardFunc(a, b, startA, startB, endA, endB, equal[T])
}

// ExpandForwardFunc is like ExpandForward but compares elements with eq.
func ExpandForwardFunc[T any](a, b []T, startA, startB, endA, endB int, eq func(x, y T) bool) int {
	n := 0
	for startA+n < endA && startB+n < endB {
		if !eq(a[startA+n], b[startB+n]) {
			break
		}
		n++
	}
	return n
}

// ExpandBackwardFunc is like ExpandBackward but compares elements with eq.
func ExpandBackwardFunc[T any](a, b []T, startA, startB, endA, endB int, eq func(x, y T) bool) int {
	n := 0
	for endA-n > startA && endB-n > startB {
		if !eq(a[endA-n-1], b[endB-n-1]) {
			break
		}
		n++
	}
	return n
}

func equal[T comparable](x, y T) bool { return x == y }
