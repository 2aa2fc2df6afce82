package bucketlist

import (
	"iter"

	"github.com/TheBitDrifter/mask"
)

// Collidable is the contract between the index and the entities it tracks.
// AABB is re-read on every query, IsHardCollidable is cached at Insert time.
// Implementations must be comparable, typically pointers
type Collidable interface {
	AABB() Rect
	IsHardCollidable() bool
	Bump()
}

// Layered collidables place themselves on collision layers
// Collidables without it are cached on DefaultLayer
type Layered interface {
	CollisionLayer() mask.Mask
}

// Bumpable collidables are told who bumped them when a query names a collider
type Bumpable interface {
	BumpedBy(collider Collidable)
}

// Index is a broad-phase spatial index over collidables
// Build one with Factory.NewIndex or an IndexBuilder
type Index interface {
	Insert(Collidable) error
	Remove(Collidable) bool
	Update(Collidable) error
	Query(rect Rect, suppressCallback bool) bool
	QueryWith(rect Rect, opts QueryOptions) bool
	Intersecting(rect Rect) []Collidable
	GetOrCreateBucket(Cell) Bucket
	Bucket(Cell) (Bucket, bool)
	CellFor(Vec) Cell
	Contains(Collidable) bool
	Len() int
	BucketCount() int
	Mode() InsertMode
	BucketSize() float64
}

// Bucket is the unordered set of points indexed into one cell
type Bucket interface {
	ID() uint32
	Cell() Cell
	Add(Point)
	Remove(Point) bool
	Points() iter.Seq[Point]
	Len() int
}

// QueryOptions tune a single QueryWith call
type QueryOptions struct {
	// SuppressCallback skips the dispatch phase; the result is unchanged
	SuppressCallback bool

	// Collider is excluded from the candidates and handed to Bumpable hits
	Collider Collidable

	// Layers restricts candidates to records sharing at least one bit
	// An empty mask matches every layer
	Layers mask.Mask
}
