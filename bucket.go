package bucketlist

import "iter"

var _ Bucket = &bucket{}

// bucket holds the points that fell into one cell
// Order is not meaningful; Remove swaps the last point into the gap
type bucket struct {
	id     uint32
	cell   Cell
	points []Point
}

func newBucket(id uint32, cell Cell) *bucket {
	return &bucket{id: id, cell: cell}
}

func (b *bucket) ID() uint32 {
	return b.id
}

func (b *bucket) Cell() Cell {
	return b.cell
}

func (b *bucket) Add(p Point) {
	b.points = append(b.points, p)
}

// Remove deletes the point of p's record at p's corner, reporting whether it was present
// Positions are not compared; a record has at most one point per corner in a bucket
func (b *bucket) Remove(p Point) bool {
	for i := range b.points {
		if b.points[i].Record != p.Record || b.points[i].Corner != p.Corner {
			continue
		}
		last := len(b.points) - 1
		if i < last {
			b.points[i] = b.points[last]
		}
		b.points[last] = Point{}
		b.points = b.points[:last]
		return true
	}
	return false
}

func (b *bucket) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, p := range b.points {
			if !yield(p) {
				return
			}
		}
	}
}

func (b *bucket) Len() int {
	return len(b.points)
}
