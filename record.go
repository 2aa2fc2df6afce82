package bucketlist

import "github.com/TheBitDrifter/mask"

// DefaultLayer is the collision layer bit given to collidables that are not Layered
const DefaultLayer uint32 = 0

// RecordID is the stable handle of an indexed record
// It survives the record moving inside the arena and is only reused after Remove
type RecordID int

// Corner names which corner of its rectangle a point was taken from
type Corner uint8

const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
	// Interior marks points indexed into non-corner cells in SpanMode
	Interior
)

var corners = [4]Corner{TopLeft, TopRight, BottomRight, BottomLeft}

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomRight:
		return "bottom-right"
	case BottomLeft:
		return "bottom-left"
	case Interior:
		return "interior"
	}
	return "unknown"
}

// Point is one indexed position of a record
// It refers back to its record by handle, never by copy
type Point struct {
	Corner Corner
	Pos    Vec
	Record RecordID
}

// record is the snapshot taken at Insert time
// aabb is only used to locate the points again on Remove; queries re-read owner.AABB()
type record struct {
	owner  Collidable
	hard   bool
	layer  mask.Mask
	aabb   Rect
	points []placedPoint
}

// placedPoint remembers which bucket holds a point so Remove does not re-derive cells
type placedPoint struct {
	Point
	bucket *bucket
}

func layerOf(c Collidable) mask.Mask {
	if l, ok := c.(Layered); ok {
		return l.CollisionLayer()
	}
	var m mask.Mask
	m.Mark(DefaultLayer)
	return m
}
