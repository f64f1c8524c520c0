package chunkopt

import (
	"context"
	"fmt"
	"slices"
)

// Optimizer moves the boundaries of a diff's matched ranges to places a
// reader finds natural, without changing how many elements are matched.
//
// Many equally short alignments usually exist for two sequences. The diff
// engine picks one of them; the optimizer merges matched ranges that can be
// joined and slides the remaining boundaries as directed by its ShiftPolicy.
type Optimizer[T any] struct {
	a, b   []T
	equal  func(x, y T) bool
	policy ShiftPolicy
}

// NewOptimizer returns an optimizer over a and b that compares elements with ==.
func NewOptimizer[T comparable](a, b []T, policy ShiftPolicy) *Optimizer[T] {
	return NewOptimizerFunc(a, b, equal[T], policy)
}

// NewOptimizerFunc returns an optimizer over a and b that compares elements
// with eq. A nil policy is treated as NoShift.
func NewOptimizerFunc[T any](a, b []T, eq func(x, y T) bool, policy ShiftPolicy) *Optimizer[T] {
	if policy == nil {
		policy = NoShift
	}
	return &Optimizer[T]{a: a, b: b, equal: eq, policy: policy}
}

// Optimize returns the adjusted matched ranges. The input must be ordered,
// non-overlapping and within the bounds of both sequences; it is not modified.
//
// Passes are repeated until one changes nothing, so optimizing the result
// again returns it unchanged. A shift can shrink a range enough to make it
// mergeable with the one before it, which only the next pass sees.
//
// ctx is checked once per range. If it is done, Optimize returns no ranges
// and an error matching both ErrAborted and ctx.Err().
func (o *Optimizer[T]) Optimize(ctx context.Context, ranges []Range) ([]Range, error) {
	if err := validate(ranges, len(o.a), len(o.b)); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, aborted(err)
	}

	for {
		out, err := o.pass(ctx, ranges)
		if err != nil {
			return nil, err
		}
		if slices.Equal(out, ranges) {
			return out, nil
		}
		ranges = out
	}
}

// pass makes one sweep over ranges, merging and shifting each boundary once.
func (o *Optimizer[T]) pass(ctx context.Context, ranges []Range) ([]Range, error) {
	out := make([]Range, 0, len(ranges))

	for _, range2 := range ranges {
		if err := ctx.Err(); err != nil {
			return nil, aborted(err)
		}

		if len(out) == 0 {
			out = append(out, range2)
			continue
		}
		range1 := out[len(out)-1]
		if range1.EndA != range2.StartA && range1.EndB != range2.StartB {
			// Not touching. For a minimal alignment nothing can be merged here.
			out = append(out, range2)
			continue
		}

		count1 := range1.LenA()
		count2 := range2.LenA()

		equalForward := ExpandForwardFunc(o.a, o.b,
			range1.EndA, range1.EndB, range1.EndA+count2, range1.EndB+count2, o.equal)
		equalBackward := ExpandBackwardFunc(o.a, o.b,
			range2.StartA-count1, range2.StartB-count1, range2.StartA, range2.StartB, o.equal)

		// [A]B[B] -> [AB]B
		if equalForward == count2 {
			out[len(out)-1] = NewRange(range1.StartA, range1.EndA+count2, range1.StartB, range1.EndB+count2)
			continue
		}

		// [A]A[B] -> A[AB]
		if equalBackward == count1 {
			out[len(out)-1] = NewRange(range2.StartA-count1, range2.EndA, range2.StartB-count1, range2.EndB)
			continue
		}

		touch := SideFromA(range1.EndA == range2.StartA)
		n := o.policy.Shift(touch, equalForward, equalBackward, range1, range2)
		if n == 0 {
			out = append(out, range2)
			continue
		}
		if n > equalForward || -n > equalBackward {
			return nil, &ContractError{
				Range1:        range1,
				Range2:        range2,
				EqualForward:  equalForward,
				EqualBackward: equalBackward,
				Shift:         n,
			}
		}

		range1, range2 = shift(range1, range2, n)
		out[len(out)-1] = range1
		out = append(out, range2)
	}

	return out, nil
}

func aborted(err error) error {
	return fmt.Errorf("%w: %w", ErrAborted, err)
}
