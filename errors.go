package chunkopt

import (
	"errors"
	"fmt"
)

var (
	// ErrAborted is returned when the context is cancelled mid-pass.
	ErrAborted = errors.New("optimization aborted")

	// ErrMalformedAlignment is returned for input ranges that are not a
	// valid, ordered alignment, or that a policy cannot resolve.
	ErrMalformedAlignment = errors.New("malformed alignment")

	// ErrTooManyElements is returned by Match when the sequences hold more
	// distinct elements than can be encoded for the diff engine.
	ErrTooManyElements = errors.New("too many distinct elements")
)

// ContractError reports two touching ranges whose boundary the policy tried
// to move outside of the equal run around it.
type ContractError struct {
	Range1, Range2 Range
	EqualForward   int
	EqualBackward  int
	Shift          int
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: shift %d out of bounds [-%d, %d] between %s and %s",
		ErrMalformedAlignment, e.Shift, e.EqualBackward, e.EqualForward, e.Range1, e.Range2)
}

func (e *ContractError) Unwrap() error {
	return ErrMalformedAlignment
}

// validate checks that ranges are matched, ordered and non-overlapping. When
// lenA or lenB is non-negative, ranges must also fit inside it.
func validate(ranges []Range, lenA, lenB int) error {
	var prev Range
	for i, r := range ranges {
		switch {
		case r.StartA < 0 || r.StartB < 0 || r.EndA < r.StartA || r.EndB < r.StartB:
			return fmt.Errorf("%w: range %d %s is inverted", ErrMalformedAlignment, i, r)
		case r.LenA() != r.LenB():
			return fmt.Errorf("%w: range %d %s has unequal sides", ErrMalformedAlignment, i, r)
		case lenA >= 0 && r.EndA > lenA, lenB >= 0 && r.EndB > lenB:
			return fmt.Errorf("%w: range %d %s exceeds lengths %d, %d", ErrMalformedAlignment, i, r, lenA, lenB)
		case i > 0 && (r.StartA < prev.EndA || r.StartB < prev.EndB):
			return fmt.Errorf("%w: range %d %s overlaps or precedes %s", ErrMalformedAlignment, i, r, prev)
		}
		prev = r
	}
	return nil
}
