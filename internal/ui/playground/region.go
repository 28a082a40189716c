package playground

import (
	"github.com/porkengine/gutenberg/internal/dom"
	"github.com/porkengine/gutenberg/internal/log"
)

// paragraphRegion is the playground's dom.RichRegion: a paragraph of text
// lines laid out one cell row per line in the model's monospace grid. Each
// line is a leaf node under a single root, so the caret package's
// first/last-child chain walk sees a real tree.
type paragraphRegion struct {
	lines []string // content lines; offsets within a line are grapheme indices

	// Layout, assigned by the model's layout pass.
	originX, originY float64
	width            int

	root   *rootNode
	leaves []*lineNode

	// Collapsed selection. hasCaret is false until the region first
	// receives the caret.
	hasCaret  bool
	caretLine int
	caretCol  int

	focused  bool
	elevated int
}

func newParagraphRegion(text string, width int) *paragraphRegion {
	r := &paragraphRegion{lines: []string{text}, width: width}
	r.rebuild()
	return r
}

var (
	_ dom.RichRegion       = (*paragraphRegion)(nil)
	_ dom.SelectionService = (*paragraphRegion)(nil)
)

// rootNode is the region's content root.
type rootNode struct {
	region *paragraphRegion
}

func (n *rootNode) Parent() dom.Node { return nil }

func (n *rootNode) FirstChild() dom.Node {
	if len(n.region.leaves) == 0 {
		return nil
	}
	return n.region.leaves[0]
}

func (n *rootNode) LastChild() dom.Node {
	if len(n.region.leaves) == 0 {
		return nil
	}
	return n.region.leaves[len(n.region.leaves)-1]
}

// lineNode is one text line leaf.
type lineNode struct {
	region *paragraphRegion
	index  int
}

func (n *lineNode) Parent() dom.Node     { return n.region.root }
func (n *lineNode) FirstChild() dom.Node { return nil }
func (n *lineNode) LastChild() dom.Node  { return nil }

func (n *lineNode) text() string { return n.region.lines[n.index] }

// Length implements dom.TextNode.
func (n *lineNode) Length() int { return graphemeCount(n.text()) }

// Bounds implements dom.Bounded: the whole line's rectangle.
func (n *lineNode) Bounds() (dom.Rect, bool) {
	r := n.region
	return dom.Rect{
		X: r.originX,
		Y: r.originY + float64(n.index),
		W: float64(r.width),
		H: 1,
	}, true
}

// rebuild recreates the node tree after a content mutation and clamps the
// caret back into range.
func (r *paragraphRegion) rebuild() {
	if len(r.lines) == 0 {
		r.lines = []string{""}
	}
	r.root = &rootNode{region: r}
	r.leaves = make([]*lineNode, len(r.lines))
	for i := range r.lines {
		r.leaves[i] = &lineNode{region: r, index: i}
	}
	if r.caretLine >= len(r.lines) {
		r.caretLine = len(r.lines) - 1
	}
	if n := graphemeCount(r.lines[r.caretLine]); r.caretCol > n {
		r.caretCol = n
	}
}

// TextContainer

func (r *paragraphRegion) Focus() { r.focused = true }

// RichRegion

func (r *paragraphRegion) Root() dom.Node                  { return r.root }
func (r *paragraphRegion) Selection() dom.SelectionService { return r }

func (r *paragraphRegion) Bounds() dom.Rect {
	return dom.Rect{
		X: r.originX,
		Y: r.originY,
		W: float64(r.width),
		H: float64(len(r.lines)),
	}
}

// ScrollIntoView is a no-op: the playground lays every block out in one
// pass, so regions are always "in view". Kept observable for logging.
func (r *paragraphRegion) ScrollIntoView(alignTop bool) {
	log.Debug(log.CatUI, "scroll into view", "alignTop", alignTop)
}

func (r *paragraphRegion) BringToFront() (restore func()) {
	r.elevated++
	return func() { r.elevated-- }
}

// SelectionService

func (r *paragraphRegion) CollapsedRange() *dom.Range {
	if !r.hasCaret {
		return nil
	}
	return dom.NewCollapsedRange(r.leaves[r.caretLine], r.caretCol)
}

func (r *paragraphRegion) RangeBounds(rng *dom.Range) (dom.Rect, bool) {
	if rng == nil || !rng.Collapsed() {
		return dom.Rect{}, false
	}
	leaf, ok := rng.Start.(*lineNode)
	if !ok || leaf.region != r {
		return dom.Rect{}, false
	}
	return dom.Rect{
		X: r.originX + float64(cellWidthBefore(leaf.text(), rng.StartOffset)),
		Y: r.originY + float64(leaf.index),
		W: 1,
		H: 1,
	}, true
}

func (r *paragraphRegion) ResolvePoint(x, y float64) *dom.Range {
	if !r.Bounds().Contains(x, y) {
		return nil
	}
	line := int(y - r.originY)
	if line < 0 || line >= len(r.leaves) {
		return nil
	}
	col := graphemeAtCell(r.lines[line], int(x-r.originX))
	return dom.NewCollapsedRange(r.leaves[line], col)
}

func (r *paragraphRegion) Apply(rng *dom.Range) {
	if rng == nil {
		return
	}
	leaf, ok := rng.Start.(*lineNode)
	if !ok || leaf.region != r {
		return
	}
	r.hasCaret = true
	r.caretLine = leaf.index
	r.caretCol = rng.StartOffset
	if n := graphemeCount(r.lines[r.caretLine]); r.caretCol > n {
		r.caretCol = n
	}
}

// Editing operations used by the model's key handling.

func (r *paragraphRegion) insert(s string) {
	line := r.lines[r.caretLine]
	before, after := splitGraphemes(line, r.caretCol)
	r.lines[r.caretLine] = before + s + after
	r.caretCol += graphemeCount(s)
	r.hasCaret = true
	r.rebuild()
}

func (r *paragraphRegion) backspace() {
	if r.caretCol > 0 {
		line := r.lines[r.caretLine]
		before, after := splitGraphemes(line, r.caretCol)
		trimmed, _ := splitGraphemes(before, r.caretCol-1)
		r.lines[r.caretLine] = trimmed + after
		r.caretCol--
	} else if r.caretLine > 0 {
		prev := r.lines[r.caretLine-1]
		r.caretCol = graphemeCount(prev)
		r.lines[r.caretLine-1] = prev + r.lines[r.caretLine]
		r.lines = append(r.lines[:r.caretLine], r.lines[r.caretLine+1:]...)
		r.caretLine--
	}
	r.rebuild()
}

func (r *paragraphRegion) newline() {
	line := r.lines[r.caretLine]
	before, after := splitGraphemes(line, r.caretCol)
	r.lines[r.caretLine] = before
	rest := append([]string{after}, r.lines[r.caretLine+1:]...)
	r.lines = append(r.lines[:r.caretLine+1], rest...)
	r.caretLine++
	r.caretCol = 0
	r.rebuild()
}

// moveCaret shifts the caret horizontally (dx) or vertically (dy) within
// the region, clamping at content boundaries.
func (r *paragraphRegion) moveCaret(dx, dy int) {
	r.hasCaret = true
	if dy != 0 {
		r.caretLine += dy
		if r.caretLine < 0 {
			r.caretLine = 0
		}
		if r.caretLine >= len(r.lines) {
			r.caretLine = len(r.lines) - 1
		}
	}
	if dx != 0 {
		r.caretCol += dx
		if r.caretCol < 0 {
			r.caretCol = 0
		}
	}
	if n := graphemeCount(r.lines[r.caretLine]); r.caretCol > n {
		r.caretCol = n
	}
}
