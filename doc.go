/*
Package bucketlist provides a broad-phase spatial index for axis-aligned bounding boxes.

World space is cut into square cells (256 units by default). Each indexed box drops
points into the buckets of the cells it touches, and a query reads back the buckets
under its own rectangle, deduplicates the candidates and re-tests each one against
its owner's live bounding box. Overlapping owners are bumped, and the query reports
whether any of them is a hard collider.

Core Concepts:

  - Collidable: The entity-side contract: a live AABB, a hard/soft flag and a Bump callback.
  - Cell: One square of world space, found with floor division so negative coordinates work.
  - Bucket: The unordered points that fell into one cell, created on first use.
  - Record: The snapshot taken at Insert, addressed by a stable RecordID.
  - InsertMode: CornerMode indexes the four corners only; SpanMode indexes every covered cell.

Basic Usage:

	index, _ := bucketlist.Factory.NewIndex()

	wall := &Wall{Box: bucketlist.NewRect(0, 0, 10, 10)}
	index.Insert(wall)

	// Movement check: bumps the wall and reports it blocks
	blocked := index.Query(bucketlist.NewRect(5, 5, 10, 10), false)

	// Passive overlap check without callbacks
	overlapping := index.Query(bucketlist.NewRect(5, 5, 10, 10), true)

	// Geometry changed
	wall.Box = bucketlist.NewRect(500, 500, 10, 10)
	index.Update(wall)

	index.Remove(wall)

Records are snapshots. Moving a collidable without calling Update leaves its points
in the old cells: it is still found from there and tested against its new box.

In CornerMode a box larger than a cell can be missed by a query that sits wholly
inside it, because neither rectangle's corners share a cell with the other's. Use
SpanMode when that matters.

The index is not safe for concurrent use. Callbacks run after all candidates are
collected, so a Bump may freely mutate the index.
*/
package bucketlist
