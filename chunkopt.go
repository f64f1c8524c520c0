// Package chunkopt refines the boundaries of a diff so that changes read
// naturally, without changing which or how many elements are matched.
//
// A shortest-edit-script diff is correct but often picks an arbitrary one of
// several equally short alignments: "1.0.123 1.0.155" vs
// "1.0.123 1.0.134 1.0.155" may come out as an insertion of "134 1.0.1"
// instead of "1.0.134 ". An Optimizer takes the matched ranges of such a
// diff, merges the ones that can be joined and slides each remaining
// boundary under the direction of a ShiftPolicy. Two policies are provided:
// one for words, which prefers whitespace, and one for lines, which prefers
// empty or nearly empty lines.
//
// CompareLines and CompareWords run the whole pipeline (tokenize, diff,
// optimize) on two texts.
package chunkopt

import (
	"context"
	"fmt"
)

// LineDiff is the optimized line-level alignment of two texts.
type LineDiff struct {
	*Alignment
	A, B []Line
}

// WordDiff is the optimized word-level alignment of two texts. Tokens
// reference byte offsets in TextA and TextB.
type WordDiff struct {
	*Alignment
	TextA, TextB string
	A, B         []Token
}

// CompareLines diffs textA and textB line by line.
func CompareLines(ctx context.Context, textA, textB string, o ...FuncOption) (*LineDiff, error) {
	cfg := newConfig(o)

	linesA := SplitLines(textA)
	linesB := SplitLines(textB)

	ranges, err := Match(linesA, linesB, lineKey, cfg.timeout)
	if err != nil {
		return nil, fmt.Errorf("matching lines: %w", err)
	}

	if !cfg.raw {
		opt := NewOptimizerFunc(linesA, linesB, LineEqual, NewLinePolicy(linesA, linesB, cfg.threshold))
		if ranges, err = opt.Optimize(ctx, ranges); err != nil {
			return nil, err
		}
	}

	al, err := NewAlignment(ranges, len(linesA), len(linesB))
	if err != nil {
		return nil, err
	}

	return &LineDiff{Alignment: al, A: linesA, B: linesB}, nil
}

// CompareWords diffs textA and textB word by word.
func CompareWords(ctx context.Context, textA, textB string, o ...FuncOption) (*WordDiff, error) {
	cfg := newConfig(o)

	tokensA := Tokenize(textA)
	tokensB := Tokenize(textB)

	ranges, err := Match(tokensA, tokensB, tokenKey, cfg.timeout)
	if err != nil {
		return nil, fmt.Errorf("matching words: %w", err)
	}

	if !cfg.raw {
		opt := NewOptimizerFunc(tokensA, tokensB, TokenEqual, NewWordPolicy(tokensA, tokensB, textA, textB))
		if ranges, err = opt.Optimize(ctx, ranges); err != nil {
			return nil, err
		}
	}

	al, err := NewAlignment(ranges, len(tokensA), len(tokensB))
	if err != nil {
		return nil, err
	}

	return &WordDiff{Alignment: al, TextA: textA, TextB: textB, A: tokensA, B: tokensB}, nil
}
