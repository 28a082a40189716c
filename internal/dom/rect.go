package dom

// Rect is an axis-aligned bounding rectangle in the host's layout
// coordinate space. Hosts decide the unit; the caret logic only compares
// coordinates and never assumes pixels.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Top returns the y coordinate of the upper edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y coordinate of the lower edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// CenterX returns the horizontal midpoint.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// Contains reports whether the point (x, y) falls inside the rectangle.
// Points on the top/left edges are inside, points on the bottom/right
// edges are not, so adjacent rects do not both claim their shared edge.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }
