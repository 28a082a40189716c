package dom

// TextContainer is an opaque handle to a focusable region. Containers that
// implement neither SimpleInput nor RichRegion are treated as non-editable:
// they can receive focus but hold no caret.
type TextContainer interface {
	Focus()
}

// SimpleInput is a plain single-line or multi-line input. Offsets are
// grapheme indices into the input's text.
type SimpleInput interface {
	TextContainer

	Text() string
	// SelectionBounds returns the current selection as (start, end)
	// offsets. start == end means a collapsed caret.
	SelectionBounds() (start, end int)
	SetSelectionRange(start, end int)
}

// RichRegion is an editable region backed by a tree of inline nodes.
type RichRegion interface {
	TextContainer

	// Root returns the region's content root. Caret positions live on the
	// leaves of this tree.
	Root() Node
	Selection() SelectionService
	Bounds() Rect
	// ScrollIntoView scrolls the region into the viewport, aligning its
	// top edge when alignTop is true and its bottom edge otherwise.
	ScrollIntoView(alignTop bool)
	// BringToFront temporarily elevates the region in the host's stacking
	// order so point resolution cannot land on overlays rendered above it.
	// The returned func restores the previous order and must be called on
	// every exit path.
	BringToFront() (restore func())
}

// SelectionService is the host capability for reading, resolving and
// applying selections within a single RichRegion. Implementations hold the
// live selection state; queries must not mutate it.
type SelectionService interface {
	// CollapsedRange returns the current selection if it exists and is
	// collapsed, nil otherwise.
	CollapsedRange() *Range
	// RangeBounds resolves the layout rectangle of a collapsed range's
	// caret. ok is false when no rectangle is resolvable, e.g. in an
	// empty region.
	RangeBounds(r *Range) (rect Rect, ok bool)
	// ResolvePoint maps a layout point to a collapsed range inside the
	// region. Returns nil when the point does not hit resolvable content.
	ResolvePoint(x, y float64) *Range
	// Apply replaces the region's selection with r.
	Apply(r *Range)
}
