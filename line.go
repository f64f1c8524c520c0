package chunkopt

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

// DefaultUnimportantLineCharCount is the threshold used by CompareLines when
// no other is given. Lines with at most this many non-space characters
// (a lone "}" or "end", say) are boundary candidates once no empty line is
// reachable.
const DefaultUnimportantLineCharCount = 3

// Line is a line-level diff element. Text excludes the line terminator.
type Line struct {
	Text          string
	NonSpaceChars int
}

// NewLine returns a Line for text, counting its non-whitespace grapheme
// clusters.
func NewLine(text string) Line {
	n := 0
	iter := graphemes.FromString(text)
	for iter.Next() {
		if !isSpace(iter.Value()) {
			n++
		}
	}
	return Line{Text: text, NonSpaceChars: n}
}

// SplitLines splits text on "\n". An empty text has no lines, and a final
// line terminator does not start another line.
func SplitLines(text string) []Line {
	if text == "" {
		return nil
	}
	parts := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	lines := make([]Line, len(parts))
	for i, s := range parts {
		lines[i] = NewLine(s)
	}
	return lines
}

// LineEqual reports whether two lines have the same text.
func LineEqual(x, y Line) bool {
	return x.Text == y.Text
}

func lineKey(l Line) string {
	return l.Text
}

type linePolicy struct {
	linesA, linesB []Line
	threshold      int
}

// NewLinePolicy returns a policy that moves boundaries next to unimportant
// lines. Empty lines are looked for first; if none is reachable and
// threshold is not 0, lines with at most threshold non-space characters are
// looked for next.
//
//	good: "ABooYZ [ABuuYZ ]ABzzYZ" - "ABooYZ []ABzzYZ"
//	bad:  "ABooYZ AB[uuYZ AB]zzYZ" - "ABooYZ AB[]zzYZ"
func NewLinePolicy(linesA, linesB []Line, threshold int) ShiftPolicy {
	return &linePolicy{linesA: linesA, linesB: linesB, threshold: threshold}
}

func (p *linePolicy) Shift(touch Side, equalForward, equalBackward int, _, range2 Range) int {
	lines := Select(touch, p.linesA, p.linesB)
	start := touch.Start(range2)

	forward := findUnimportant(lines, start, equalForward, true, 0)
	backward := findUnimportant(lines, start-1, equalBackward, false, 0)

	if forward == -1 && backward == -1 && p.threshold != 0 {
		forward = findUnimportant(lines, start, equalForward, true, p.threshold)
		backward = findUnimportant(lines, start-1, equalBackward, false, p.threshold)
	}

	switch {
	case forward == 0 || backward == 0:
		return 0
	case forward != -1:
		return forward
	case backward != -1:
		return -backward
	}
	return 0
}

// findUnimportant returns the distance from offset of the first of count
// lines, walking forward or backward, that has at most threshold non-space
// characters, or -1.
func findUnimportant(lines []Line, offset, count int, forward bool, threshold int) int {
	for i := 0; i < count; i++ {
		idx := offset - i
		if forward {
			idx = offset + i
		}
		if lines[idx].NonSpaceChars <= threshold {
			return i
		}
	}
	return -1
}
