// Package caret decides whether the caret sits at the edge of an editable
// container and repositions it when focus moves between adjacent blocks.
// Edge queries never mutate selection state; placement operations leave
// exactly one collapsed selection inside the target container. Nothing in
// this package returns an error: every unresolvable state degrades to a
// coarser placement instead.
package caret

import (
	"github.com/rivo/uniseg"

	"github.com/porkengine/gutenberg/internal/dom"
	"github.com/porkengine/gutenberg/internal/log"
)

// EdgeResult is the outcome of a vertical edge query. Rect is the caret's
// rectangle when one was resolvable, returned even for non-edges so the
// caller can reuse it for cross-block repositioning.
type EdgeResult struct {
	IsEdge bool
	Rect   *dom.Rect
}

// IsHorizontalEdge reports whether the caret sits at the first (reverse) or
// last (forward) horizontal position of the container. Non-editable
// containers are trivially always at the edge.
func IsHorizontalEdge(container dom.TextContainer, reverse bool) bool {
	if container == nil {
		return false
	}

	switch c := container.(type) {
	case dom.SimpleInput:
		start, end := c.SelectionBounds()
		if start != end {
			return false
		}
		if reverse {
			return start == 0
		}
		return start == uniseg.GraphemeClusterCount(c.Text())

	case dom.RichRegion:
		rng := c.Selection().CollapsedRange()
		if rng == nil {
			return false
		}
		return onEdgeChain(c.Root(), rng.Start, reverse)

	default:
		return true
	}
}

// onEdgeChain reports whether every step from node up to root follows the
// first-child (reverse) or last-child (forward) link, i.e. node is on the
// extreme leaf-descendant chain of root.
func onEdgeChain(root, node dom.Node, reverse bool) bool {
	for node != nil && node != root {
		parent := node.Parent()
		if parent == nil {
			return false
		}
		if reverse {
			if parent.FirstChild() != node {
				return false
			}
		} else if parent.LastChild() != node {
			return false
		}
		node = parent
	}
	return node == root
}

// VerticalEdge reports whether the caret sits at the top (reverse) or
// bottom (forward) of the container, with a tolerance buffer of half the
// caret rectangle's height to absorb line-height jitter. Simple inputs
// delegate to the horizontal edge logic.
func VerticalEdge(container dom.TextContainer, reverse bool) EdgeResult {
	region, ok := container.(dom.RichRegion)
	if !ok {
		return EdgeResult{IsEdge: IsHorizontalEdge(container, reverse)}
	}

	sel := region.Selection()
	rng := sel.CollapsedRange()
	if rng == nil {
		return EdgeResult{}
	}

	rect, ok := sel.RangeBounds(rng)
	if !ok {
		// Empty containers yield no range rectangle; fall back to the
		// start node's own bounds.
		b, isBounded := rng.Start.(dom.Bounded)
		if !isBounded {
			return EdgeResult{}
		}
		rect, ok = b.Bounds()
		if !ok {
			return EdgeResult{}
		}
	}

	buffer := rect.H / 2
	bounds := region.Bounds()

	var isEdge bool
	if reverse {
		isEdge = rect.Top()-bounds.Top() < buffer
	} else {
		isEdge = bounds.Bottom()-rect.Bottom() < buffer
	}
	return EdgeResult{IsEdge: isEdge, Rect: &rect}
}

// PlaceCaretAtHorizontalEdge collapses the selection to the first (reverse)
// or last (forward) caret position of the container and focuses it.
func PlaceCaretAtHorizontalEdge(container dom.TextContainer, reverse bool) {
	if container == nil {
		return
	}

	switch c := container.(type) {
	case dom.SimpleInput:
		offset := 0
		if !reverse {
			offset = uniseg.GraphemeClusterCount(c.Text())
		}
		c.SetSelectionRange(offset, offset)
		c.Focus()

	case dom.RichRegion:
		rng := dom.SelectContents(c.Root())
		if rng == nil {
			c.Focus()
			return
		}
		rng.Collapse(reverse)
		c.Selection().Apply(rng)
		c.Focus()

	default:
		c.Focus()
	}
}

// PlaceCaretAtVerticalEdge places the caret at the top (forward) or bottom
// (reverse) of the container, horizontally aligned with rect, which the
// caller captured from the region being left. When point resolution fails
// and mayUseScroll is set, the container is scrolled into view and the
// placement retried once with scrolling disabled; after that it degrades
// to a horizontal placement at the entered edge. Note the flag flip on
// degradation: vertical reverse enters at the bottom, which is the END of
// the content, while horizontal reverse means the start.
func PlaceCaretAtVerticalEdge(container dom.TextContainer, reverse bool, rect *dom.Rect, mayUseScroll bool) {
	if container == nil {
		return
	}

	region, ok := container.(dom.RichRegion)
	if !ok || rect == nil {
		PlaceCaretAtHorizontalEdge(container, !reverse)
		return
	}

	buffer := rect.H / 2
	bounds := region.Bounds()
	x := rect.CenterX()

	// Aim just inside the edge being entered: below the top when moving
	// forward, above the bottom when moving in reverse.
	var y float64
	if reverse {
		y = bounds.Bottom() - buffer
	} else {
		y = bounds.Top() + buffer
	}

	sel := region.Selection()
	rng := resolveElevated(region, sel, x, y)

	if rng == nil {
		if mayUseScroll {
			log.Debug(log.CatCaret, "point unresolved, scrolling and retrying", "x", x, "y", y)
			region.ScrollIntoView(!reverse)
			PlaceCaretAtVerticalEdge(container, reverse, rect, false)
			return
		}
		PlaceCaretAtHorizontalEdge(container, !reverse)
		return
	}

	// Applied twice: focusing an already-focused region can reset the
	// caret to a prior position in some hosts.
	sel.Apply(rng)
	sel.Apply(rng)
	region.Focus()
}

// resolveElevated resolves a point to a range with the region temporarily
// brought to the front of the stacking order, so the resolution cannot hit
// a toolbar or overlay rendered above it.
func resolveElevated(region dom.RichRegion, sel dom.SelectionService, x, y float64) *dom.Range {
	restore := region.BringToFront()
	defer restore()
	return sel.ResolvePoint(x, y)
}
