package dom

// Range is a span between two boundary points, each expressed as a node
// and a grapheme offset within it. A collapsed range is a pure caret
// position.
type Range struct {
	Start       Node
	StartOffset int
	End         Node
	EndOffset   int
}

// NewCollapsedRange returns a zero-length range at (node, offset).
func NewCollapsedRange(node Node, offset int) *Range {
	return &Range{Start: node, StartOffset: offset, End: node, EndOffset: offset}
}

// Collapsed reports whether the range has zero length.
func (r *Range) Collapsed() bool {
	return r.Start == r.End && r.StartOffset == r.EndOffset
}

// Collapse shrinks the range to one of its boundary points.
func (r *Range) Collapse(toStart bool) {
	if toStart {
		r.End = r.Start
		r.EndOffset = r.StartOffset
	} else {
		r.Start = r.End
		r.StartOffset = r.EndOffset
	}
}

// Clone returns an independent copy of the range.
func (r *Range) Clone() *Range {
	c := *r
	return &c
}

// SelectContents returns a range spanning the entire content of container:
// from offset 0 of its deepest first leaf to the full length of its
// deepest last leaf.
func SelectContents(container Node) *Range {
	if container == nil {
		return nil
	}
	first := FirstLeaf(container)
	last := LastLeaf(container)
	return &Range{
		Start:     first,
		End:       last,
		EndOffset: NodeLength(last),
	}
}
