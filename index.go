package bucketlist

import (
	"reflect"

	"github.com/colega/zeropool"
	"go.uber.org/zap"
)

var _ Index = &index{}

// index is the bucket list: a sparse map of cells to buckets plus the arena of
// live records. It is not safe for concurrent use
type index struct {
	settings Settings
	log      *zap.Logger

	buckets      map[Cell]*bucket
	nextBucketID uint32

	records *recordStore
	owners  map[Collidable][]RecordID

	hitPool    zeropool.Pool[[]hit]
	idPool     zeropool.Pool[[]RecordID]
	bucketPool zeropool.Pool[[]*bucket]
}

func newIndex(s Settings, logger *zap.Logger) (*index, error) {
	records, err := newRecordStore()
	if err != nil {
		return nil, err
	}
	return &index{
		settings:     s,
		log:          logger,
		buckets:      make(map[Cell]*bucket),
		nextBucketID: 1,
		records:      records,
		owners:       make(map[Collidable][]RecordID),
		hitPool:      zeropool.New(func() []hit { return make([]hit, 0, 16) }),
		idPool:       zeropool.New(func() []RecordID { return make([]RecordID, 0, 64) }),
		bucketPool:   zeropool.New(func() []*bucket { return make([]*bucket, 0, 4) }),
	}, nil
}

// Insert snapshots c and indexes its points. Inserting the same collidable
// twice without a Remove yields two independent records
func (idx *index) Insert(c Collidable) error {
	if err := checkCollidable(c); err != nil {
		return err
	}
	aabb := c.AABB()
	if aabb.hasNaN() {
		return NaNAABBError{AABB: aabb}
	}
	if n := len(idx.owners[c]); n > 0 {
		idx.log.Warn("collidable inserted again without remove",
			zap.Int("records", n+1),
			zap.Stringer("aabb", aabb),
		)
	}

	id, err := idx.records.create(record{
		owner: c,
		hard:  c.IsHardCollidable(),
		layer: layerOf(c),
		aabb:  aabb,
	})
	if err != nil {
		return err
	}
	points := idx.place(id, aabb)

	// place may create buckets but never touches the arena, so the row is still valid
	rec, _ := idx.records.get(id)
	rec.points = points
	idx.owners[c] = append(idx.owners[c], id)
	return nil
}

// Remove drops the most recently inserted record of c
// It reports false, and changes nothing, when c is not indexed
func (idx *index) Remove(c Collidable) bool {
	if checkCollidable(c) != nil {
		return false
	}
	ids := idx.owners[c]
	if len(ids) == 0 {
		idx.log.Debug("remove of collidable that is not indexed")
		return false
	}
	id := ids[len(ids)-1]

	rec, ok := idx.records.get(id)
	if !ok {
		idx.log.Error("indexed collidable has no live record", zap.Int("record", int(id)))
		idx.forget(c, ids)
		return false
	}
	points := rec.points
	if err := idx.records.destroy(id); err != nil {
		idx.log.Error("failed to release record", zap.Int("record", int(id)), zap.Error(err))
		return false
	}
	idx.forget(c, ids)
	for _, pp := range points {
		pp.bucket.Remove(pp.Point)
	}
	return true
}

// forget pops the most recent handle of c
func (idx *index) forget(c Collidable, ids []RecordID) {
	if len(ids) == 1 {
		delete(idx.owners, c)
		return
	}
	idx.owners[c] = ids[:len(ids)-1]
}

// Update re-indexes c from its current geometry
func (idx *index) Update(c Collidable) error {
	idx.Remove(c)
	return idx.Insert(c)
}

func (idx *index) GetOrCreateBucket(cell Cell) Bucket {
	return idx.bucketFor(cell)
}

func (idx *index) Bucket(cell Cell) (Bucket, bool) {
	b, ok := idx.buckets[cell]
	if !ok {
		return nil, false
	}
	return b, true
}

func (idx *index) CellFor(v Vec) Cell {
	return CellFor(v, idx.settings.BucketSize)
}

func (idx *index) Contains(c Collidable) bool {
	if checkCollidable(c) != nil {
		return false
	}
	return len(idx.owners[c]) > 0
}

func (idx *index) Len() int {
	return idx.records.len()
}

func (idx *index) BucketCount() int {
	return len(idx.buckets)
}

func (idx *index) Mode() InsertMode {
	return idx.settings.InsertMode
}

func (idx *index) BucketSize() float64 {
	return idx.settings.BucketSize
}

func (idx *index) bucketFor(cell Cell) *bucket {
	if b, ok := idx.buckets[cell]; ok {
		return b
	}
	b := newBucket(idx.nextBucketID, cell)
	idx.buckets[cell] = b
	idx.nextBucketID++
	idx.log.Debug("bucket created",
		zap.Uint32("id", b.id),
		zap.Int("x", cell.X),
		zap.Int("y", cell.Y),
	)
	return b
}

// place adds the points of record id to their buckets
func (idx *index) place(id RecordID, aabb Rect) []placedPoint {
	if idx.settings.InsertMode == SpanMode {
		span := spanFor(aabb, idx.settings.BucketSize)
		if span.within(idx.settings.MaxSpanCells) {
			return idx.placeSpan(id, aabb, span)
		}
		idx.log.Warn("rectangle covers too many cells, indexing corners only",
			zap.Stringer("aabb", aabb),
			zap.Float64("cells", span.area()),
			zap.Int("max", idx.settings.MaxSpanCells),
		)
	}
	return idx.placeCorners(id, aabb)
}

func (idx *index) placeCorners(id RecordID, aabb Rect) []placedPoint {
	points := make([]placedPoint, 0, len(corners))
	for _, corner := range corners {
		p := Point{Corner: corner, Pos: aabb.Corner(corner), Record: id}
		b := idx.bucketFor(idx.CellFor(p.Pos))
		b.Add(p)
		points = append(points, placedPoint{Point: p, bucket: b})
	}
	return points
}

// placeSpan puts one point in every covered cell. Corner cells keep their corner
// tag and position; other cells get an Interior point at the cell origin
func (idx *index) placeSpan(id RecordID, aabb Rect, span cellSpan) []placedPoint {
	size := idx.settings.BucketSize
	points := make([]placedPoint, 0, int(span.area()))
	for cell := range span.cells {
		p := Point{
			Corner: Interior,
			Pos:    Vec{float64(cell.X) * size, float64(cell.Y) * size},
			Record: id,
		}
		for _, corner := range corners {
			if pos := aabb.Corner(corner); idx.CellFor(pos) == cell {
				p.Corner, p.Pos = corner, pos
				break
			}
		}
		b := idx.bucketFor(cell)
		b.Add(p)
		points = append(points, placedPoint{Point: p, bucket: b})
	}
	return points
}

// checkCollidable rejects values that cannot be used as identity keys
func checkCollidable(c Collidable) error {
	if c == nil {
		return NilCollidableError{}
	}
	if t := reflect.TypeOf(c); !t.Comparable() {
		return UncomparableCollidableError{Type: t.String()}
	}
	return nil
}
