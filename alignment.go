package chunkopt

// Chunk is one piece of an Alignment. Equal chunks are matched ranges;
// changed chunks may have different lengths on each side, and one side may
// be empty (a pure insertion or deletion).
type Chunk struct {
	Range
	Equal bool
}

// Alignment is a complete two-sided alignment of sequences of lengths LenA
// and LenB, described by its ordered matched ranges.
type Alignment struct {
	LenA, LenB int
	unchanged  []Range
}

// NewAlignment builds an alignment from ordered matched ranges. Empty ranges
// are dropped.
func NewAlignment(unchanged []Range, lenA, lenB int) (*Alignment, error) {
	if err := validate(unchanged, lenA, lenB); err != nil {
		return nil, err
	}

	al := &Alignment{LenA: lenA, LenB: lenB}
	for _, r := range unchanged {
		if !r.IsEmpty() {
			al.unchanged = append(al.unchanged, r)
		}
	}
	return al, nil
}

// Unchanged returns the matched ranges.
func (al *Alignment) Unchanged() []Range {
	return append([]Range(nil), al.unchanged...)
}

// Changed returns the gaps between matched ranges, including any leading and
// trailing gap.
func (al *Alignment) Changed() []Range {
	var changed []Range
	for _, c := range al.Chunks() {
		if !c.Equal {
			changed = append(changed, c.Range)
		}
	}
	return changed
}

// Chunks returns equal and changed chunks in order. Together they cover
// [0, LenA) and [0, LenB) exactly once.
func (al *Alignment) Chunks() []Chunk {
	var chunks []Chunk
	posA, posB := 0, 0

	for _, r := range al.unchanged {
		if r.StartA > posA || r.StartB > posB {
			chunks = append(chunks, Chunk{Range: NewRange(posA, r.StartA, posB, r.StartB)})
		}
		chunks = append(chunks, Chunk{Range: r, Equal: true})
		posA, posB = r.EndA, r.EndB
	}
	if posA < al.LenA || posB < al.LenB {
		chunks = append(chunks, Chunk{Range: NewRange(posA, al.LenA, posB, al.LenB)})
	}

	return chunks
}

// MatchedCount returns the number of elements matched on each side.
func (al *Alignment) MatchedCount() int {
	n := 0
	for _, r := range al.unchanged {
		n += r.LenA()
	}
	return n
}

// Identical reports whether the two sequences are equal.
func (al *Alignment) Identical() bool {
	return al.LenA == al.LenB && al.MatchedCount() == al.LenA
}
