package bucketlist

import (
	"fmt"
	"math"
)

// Vec is a point in world space. Y grows downward
type Vec struct {
	X, Y float64
}

func (v Vec) String() string {
	return fmt.Sprintf("(%g,%g)", v.X, v.Y)
}

// Rect is an axis-aligned rectangle spanning Min (top left) to Max (bottom right)
// Zero width or height is valid geometry
type Rect struct {
	Min, Max Vec
}

// NewRect builds a rectangle from its top left corner and size
// Negative sizes are folded so Min <= Max always holds
func NewRect(x, y, w, h float64) Rect {
	return RectFromCorners(Vec{x, y}, Vec{x + w, y + h})
}

// RectFromCorners builds the rectangle spanned by two opposite corners
func RectFromCorners(a, b Vec) Rect {
	return Rect{
		Min: Vec{min(a.X, b.X), min(a.Y, b.Y)},
		Max: Vec{max(a.X, b.X), max(a.Y, b.Y)},
	}
}

func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Intersects reports strict overlap: rectangles that only share an edge do not intersect
func (r Rect) Intersects(o Rect) bool {
	return o.Min.X < r.Max.X && r.Min.X < o.Max.X &&
		o.Min.Y < r.Max.Y && r.Min.Y < o.Max.Y
}

// Corner returns the world coordinate of the requested corner
// Interior has no position of its own and yields Min
func (r Rect) Corner(c Corner) Vec {
	switch c {
	case TopRight:
		return Vec{r.Max.X, r.Min.Y}
	case BottomRight:
		return r.Max
	case BottomLeft:
		return Vec{r.Min.X, r.Max.Y}
	default:
		return r.Min
	}
}

func (r Rect) hasNaN() bool {
	return math.IsNaN(r.Min.X) || math.IsNaN(r.Min.Y) || math.IsNaN(r.Max.X) || math.IsNaN(r.Max.Y)
}

func (r Rect) String() string {
	return fmt.Sprintf("%v-%v", r.Min, r.Max)
}
