// Package dom defines the abstract document model the editor core operates
// on: a tree of inline nodes, boundary-point ranges between them, and the
// container/selection capabilities a host must provide. It deliberately
// models only what caret navigation needs; rendering is the host's problem.
package dom

// Node is a single node in a container's inline content tree. Hosts must
// return stable, comparable values (typically pointers) so that identity
// checks like parent.FirstChild() == child hold.
type Node interface {
	Parent() Node
	FirstChild() Node
	LastChild() Node
}

// TextNode is a leaf node carrying text. Offsets into a TextNode count
// grapheme clusters, not bytes.
type TextNode interface {
	Node
	Length() int
}

// Bounded is implemented by nodes that know their own layout rectangle.
// Used as a fallback when a range rectangle cannot be resolved, e.g. for
// empty containers.
type Bounded interface {
	Bounds() (Rect, bool)
}

// FirstLeaf descends through first-child links to the deepest first
// descendant of n. Returns n itself when it has no children.
func FirstLeaf(n Node) Node {
	for n != nil {
		child := n.FirstChild()
		if child == nil {
			return n
		}
		n = child
	}
	return nil
}

// LastLeaf descends through last-child links to the deepest last
// descendant of n. Returns n itself when it has no children.
func LastLeaf(n Node) Node {
	for n != nil {
		child := n.LastChild()
		if child == nil {
			return n
		}
		n = child
	}
	return nil
}

// NodeLength returns the caret offset space of a node: the grapheme count
// for text leaves, zero for everything else.
func NodeLength(n Node) int {
	if t, ok := n.(TextNode); ok {
		return t.Length()
	}
	return 0
}
