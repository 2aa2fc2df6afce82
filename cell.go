package bucketlist

import (
	"fmt"
	"math"
)

// DefaultBucketSize is the width and height of one cell in world units
const DefaultBucketSize = 256.0

// Cell identifies one square of world space
type Cell struct {
	X, Y int
}

// maxCellCoord bounds cell coordinates so the float to int conversion is always defined
const maxCellCoord = math.MaxInt32

// CellFor maps a world coordinate to its cell using floor division,
// so (-10, -10) lands in (-1, -1) rather than (0, 0)
// Coordinates beyond the cell range, infinities included, clamp to its edge; NaN maps to 0
func CellFor(v Vec, size float64) Cell {
	return Cell{
		X: cellCoord(v.X / size),
		Y: cellCoord(v.Y / size),
	}
}

func cellCoord(q float64) int {
	switch {
	case math.IsNaN(q):
		return 0
	case q >= maxCellCoord:
		return maxCellCoord
	case q <= -maxCellCoord:
		return -maxCellCoord
	}
	return int(math.Floor(q))
}

// cellSpan is the inclusive range of cells covered by a rectangle
type cellSpan struct {
	min, max Cell
}

func spanFor(r Rect, size float64) cellSpan {
	a, b := CellFor(r.Min, size), CellFor(r.Max, size)
	return cellSpan{
		min: Cell{min(a.X, b.X), min(a.Y, b.Y)},
		max: Cell{max(a.X, b.X), max(a.Y, b.Y)},
	}
}

func (s cellSpan) dims() (w, h int64) {
	return int64(s.max.X) - int64(s.min.X) + 1, int64(s.max.Y) - int64(s.min.Y) + 1
}

// within reports whether the span covers at most limit cells, without overflowing
func (s cellSpan) within(limit int) bool {
	if limit < 1 {
		return false
	}
	w, h := s.dims()
	return w <= int64(limit) && h <= int64(limit)/w
}

// area is the number of covered cells, for logging
func (s cellSpan) area() float64 {
	w, h := s.dims()
	return float64(w) * float64(h)
}

// cells walks the span row by row
func (s cellSpan) cells(yield func(Cell) bool) {
	for y := s.min.Y; y <= s.max.Y; y++ {
		for x := s.min.X; x <= s.max.X; x++ {
			if !yield(Cell{x, y}) {
				return
			}
		}
	}
}

func (c Cell) String() string {
	return fmt.Sprintf("[%d,%d]", c.X, c.Y)
}
