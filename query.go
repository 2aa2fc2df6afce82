package bucketlist

import (
	"iter"
	"slices"

	"github.com/TheBitDrifter/mask"
	iter_util "github.com/TheBitDrifter/util/iter"
	"go.uber.org/zap"
)

// hit is a candidate whose live AABB overlaps the query
type hit struct {
	owner Collidable
	hard  bool
}

// Query reports whether any hard collidable overlaps rect. Every overlapping
// candidate, hard or soft, is bumped once unless suppressCallback is set
func (idx *index) Query(rect Rect, suppressCallback bool) bool {
	return idx.QueryWith(rect, QueryOptions{SuppressCallback: suppressCallback})
}

// QueryWith collects every hit before bumping anyone, so callbacks are free
// to insert, remove or update collidables, including themselves
func (idx *index) QueryWith(rect Rect, opts QueryOptions) bool {
	hits, blocked := idx.collect(rect, opts, idx.hitPool.Get()[:0])
	if !opts.SuppressCallback {
		dispatch(hits, opts.Collider)
	}
	clear(hits)
	idx.hitPool.Put(hits[:0])
	return blocked
}

// Intersecting returns every collidable whose live AABB overlaps rect without bumping any
func (idx *index) Intersecting(rect Rect) []Collidable {
	hits, _ := idx.collect(rect, QueryOptions{SuppressCallback: true}, idx.hitPool.Get()[:0])
	owners := iter_util.Collect(ownersOf(hits))
	clear(hits)
	idx.hitPool.Put(hits[:0])
	return owners
}

// collect is the read-only phase. Buckets are deduplicated, then records are
// deduplicated by handle so a record with several points in range is tested once
func (idx *index) collect(rect Rect, opts QueryOptions, hits []hit) ([]hit, bool) {
	buckets := idx.queryBuckets(rect, idx.bucketPool.Get()[:0])
	ids := idx.idPool.Get()[:0]
	for _, b := range buckets {
		for p := range b.Points() {
			ids = append(ids, p.Record)
		}
	}
	clear(buckets)
	idx.bucketPool.Put(buckets[:0])

	slices.Sort(ids)
	ids = slices.Compact(ids)

	filterLayers := opts.Layers != (mask.Mask{})
	blocked := false
	for _, id := range ids {
		rec, ok := idx.records.get(id)
		if !ok {
			continue
		}
		if opts.Collider != nil && rec.owner == opts.Collider {
			continue
		}
		if filterLayers && !rec.layer.ContainsAny(opts.Layers) {
			continue
		}
		h := hit{owner: rec.owner, hard: rec.hard}
		if !h.owner.AABB().Intersects(rect) {
			continue
		}
		hits = append(hits, h)
		if h.hard {
			blocked = true
		}
	}
	idx.idPool.Put(ids[:0])
	return hits, blocked
}

// queryBuckets resolves the distinct buckets a query reads. CornerMode creates
// the four corner buckets if missing; SpanMode only reads buckets that exist
func (idx *index) queryBuckets(rect Rect, dst []*bucket) []*bucket {
	if idx.settings.InsertMode == SpanMode {
		span := spanFor(rect, idx.settings.BucketSize)
		if span.within(idx.settings.MaxSpanCells) {
			for cell := range span.cells {
				if b, ok := idx.buckets[cell]; ok {
					dst = append(dst, b)
				}
			}
			return dst
		}
		idx.log.Warn("query covers too many cells, reading corners only",
			zap.Stringer("rect", rect),
			zap.Float64("cells", span.area()),
			zap.Int("max", idx.settings.MaxSpanCells),
		)
	}
	for _, corner := range corners {
		b := idx.bucketFor(idx.CellFor(rect.Corner(corner)))
		if !slices.Contains(dst, b) {
			dst = append(dst, b)
		}
	}
	return dst
}

func dispatch(hits []hit, collider Collidable) {
	for _, h := range hits {
		if collider != nil {
			if b, ok := h.owner.(Bumpable); ok {
				b.BumpedBy(collider)
				continue
			}
		}
		h.owner.Bump()
	}
}

func ownersOf(hits []hit) iter.Seq[Collidable] {
	return func(yield func(Collidable) bool) {
		for _, h := range hits {
			if !yield(h.owner) {
				return
			}
		}
	}
}
