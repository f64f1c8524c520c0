package chunkopt

import (
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Matched ranges are computed with go-diff's Myers implementation. Elements
// are interned by key into private runes so that any sequence, not only
// text, can be diffed: equal keys map to the same rune.

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// Match returns the matched ranges of a diff of a and b. Elements are equal
// when key returns the same string for them. timeout bounds the time spent
// in the diff engine (0 for no limit); when reached, the result is still a
// valid but possibly longer alignment.
func Match[T any](a, b []T, key func(T) string, timeout time.Duration) ([]Range, error) {
	interned := make(map[string]rune)

	runesA, err := internAll(a, key, interned)
	if err != nil {
		return nil, err
	}
	runesB, err := internAll(b, key, interned)
	if err != nil {
		return nil, err
	}

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = timeout
	diffs := dmp.DiffMainRunes(runesA, runesB, false)

	return diffsToRanges(diffs), nil
}

func internAll[T any](seq []T, key func(T) string, interned map[string]rune) ([]rune, error) {
	out := make([]rune, len(seq))
	for i, v := range seq {
		k := key(v)
		r, ok := interned[k]
		if !ok {
			r = runeFor(len(interned))
			if r > unicode.MaxRune {
				return nil, fmt.Errorf("%w: more than %d", ErrTooManyElements, len(interned))
			}
			interned[k] = r
		}
		out[i] = r
	}
	return out, nil
}

// runeFor maps the n-th distinct element to a valid rune, skipping NUL and
// the surrogate block so the diff engine's string round trips are lossless.
func runeFor(n int) rune {
	r := rune(n + 1)
	if r >= surrogateMin {
		r += surrogateMax - surrogateMin + 1
	}
	return r
}

func diffsToRanges(diffs []diffmatchpatch.Diff) []Range {
	var ranges []Range
	posA, posB := 0, 0

	for _, d := range diffs {
		n := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			if n > 0 {
				ranges = append(ranges, NewRange(posA, posA+n, posB, posB+n))
			}
			posA += n
			posB += n
		case diffmatchpatch.DiffDelete:
			posA += n
		case diffmatchpatch.DiffInsert:
			posB += n
		}
	}

	return ranges
}
