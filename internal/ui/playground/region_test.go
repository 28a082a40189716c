package playground

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porkengine/gutenberg/internal/dom"
)

func testRegion(t *testing.T, lines ...string) *paragraphRegion {
	t.Helper()
	require.NotEmpty(t, lines)
	r := newParagraphRegion(lines[0], 20)
	r.lines = append([]string{}, lines...)
	r.rebuild()
	return r
}

func TestRegionTreeShape(t *testing.T) {
	r := testRegion(t, "alpha", "beta")

	root := r.Root()
	assert.Nil(t, root.Parent())
	assert.Same(t, r.leaves[0], dom.FirstLeaf(root))
	assert.Same(t, r.leaves[1], dom.LastLeaf(root))
	assert.Equal(t, 5, r.leaves[0].Length())
}

func TestRegionCollapsedRange(t *testing.T) {
	r := testRegion(t, "alpha")

	assert.Nil(t, r.CollapsedRange(), "no caret yet")

	r.Apply(dom.NewCollapsedRange(r.leaves[0], 3))
	rng := r.CollapsedRange()
	require.NotNil(t, rng)
	assert.True(t, rng.Collapsed())
	assert.Equal(t, 3, rng.StartOffset)
}

func TestRegionRangeBounds(t *testing.T) {
	r := testRegion(t, "你好x")
	r.originX = 2
	r.originY = 5

	rect, ok := r.RangeBounds(dom.NewCollapsedRange(r.leaves[0], 2))
	require.True(t, ok)
	// Two wide characters before the caret put it four cells in.
	assert.Equal(t, dom.Rect{X: 6, Y: 5, W: 1, H: 1}, rect)

	_, ok = r.RangeBounds(nil)
	assert.False(t, ok)
}

func TestRegionResolvePoint(t *testing.T) {
	r := testRegion(t, "alpha", "beta")
	r.originY = 3

	rng := r.ResolvePoint(2, 4)
	require.NotNil(t, rng)
	assert.Same(t, r.leaves[1], rng.Start)
	assert.Equal(t, 2, rng.StartOffset)

	assert.Nil(t, r.ResolvePoint(2, 100), "outside the region's bounds")
}

func TestRegionApplyClampsOffset(t *testing.T) {
	r := testRegion(t, "hi")

	r.Apply(dom.NewCollapsedRange(r.leaves[0], 99))
	assert.Equal(t, 2, r.caretCol)
	assert.True(t, r.hasCaret)
}

func TestRegionApplyIgnoresForeignLeaf(t *testing.T) {
	r := testRegion(t, "mine")
	other := testRegion(t, "theirs")

	r.Apply(dom.NewCollapsedRange(other.leaves[0], 1))
	assert.False(t, r.hasCaret)
}

func TestRegionInsert(t *testing.T) {
	r := testRegion(t, "held")
	r.caretCol = 2

	r.insert("llo wor")
	assert.Equal(t, []string{"hello world"}, r.lines)
	assert.Equal(t, 9, r.caretCol)
}

func TestRegionBackspaceJoinsLines(t *testing.T) {
	r := testRegion(t, "hello", "world")
	r.caretLine = 1
	r.caretCol = 0

	r.backspace()
	assert.Equal(t, []string{"helloworld"}, r.lines)
	assert.Equal(t, 0, r.caretLine)
	assert.Equal(t, 5, r.caretCol)
}

func TestRegionNewlineSplitsLine(t *testing.T) {
	r := testRegion(t, "hello world")
	r.caretCol = 5

	r.newline()
	assert.Equal(t, []string{"hello", " world"}, r.lines)
	assert.Equal(t, 1, r.caretLine)
	assert.Equal(t, 0, r.caretCol)
}

func TestRegionMoveCaretClampsColumn(t *testing.T) {
	r := testRegion(t, "long line here", "hi")
	r.caretCol = 10

	r.moveCaret(0, 1)
	assert.Equal(t, 1, r.caretLine)
	assert.Equal(t, 2, r.caretCol, "column clamps to the shorter line")
}

func TestRegionBringToFrontRestores(t *testing.T) {
	r := testRegion(t, "x")

	restore := r.BringToFront()
	assert.Equal(t, 1, r.elevated)
	restore()
	assert.Equal(t, 0, r.elevated)
}
