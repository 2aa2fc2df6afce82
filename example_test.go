package bucketlist_test

import (
	"fmt"

	"github.com/TheBitDrifter/bucketlist"
)

// Wall blocks movement
type Wall struct {
	Box   bucketlist.Rect
	Hits  int
	Solid bool
}

func (w *Wall) AABB() bucketlist.Rect  { return w.Box }
func (w *Wall) IsHardCollidable() bool { return w.Solid }
func (w *Wall) Bump()                  { w.Hits++ }

// Example_basic shows the lifecycle of one wall in the index
func Example_basic() {
	index, err := bucketlist.Factory.NewIndex()
	if err != nil {
		panic(err)
	}

	wall := &Wall{Box: bucketlist.RectFromCorners(bucketlist.Vec{X: 0, Y: 0}, bucketlist.Vec{X: 10, Y: 10}), Solid: true}
	index.Insert(wall)

	moving := bucketlist.RectFromCorners(bucketlist.Vec{X: 5, Y: 5}, bucketlist.Vec{X: 15, Y: 15})
	fmt.Printf("Blocked: %v, hits: %d\n", index.Query(moving, false), wall.Hits)

	elsewhere := bucketlist.RectFromCorners(bucketlist.Vec{X: 20, Y: 20}, bucketlist.Vec{X: 30, Y: 30})
	fmt.Printf("Blocked elsewhere: %v, hits: %d\n", index.Query(elsewhere, false), wall.Hits)

	index.Remove(wall)
	fmt.Printf("Blocked after remove: %v\n", index.Query(moving, false))

	// Output:
	// Blocked: true, hits: 1
	// Blocked elsewhere: false, hits: 1
	// Blocked after remove: false
}

// Example_spanMode shows a query inside a large box that only SpanMode finds
func Example_spanMode() {
	floor := bucketlist.RectFromCorners(bucketlist.Vec{X: 0, Y: 0}, bucketlist.Vec{X: 2000, Y: 2000})
	inside := bucketlist.RectFromCorners(bucketlist.Vec{X: 600, Y: 600}, bucketlist.Vec{X: 700, Y: 700})

	for _, mode := range []bucketlist.InsertMode{bucketlist.CornerMode, bucketlist.SpanMode} {
		index, err := bucketlist.Factory.NewIndexBuilder().WithInsertMode(mode).Build()
		if err != nil {
			panic(err)
		}
		index.Insert(&Wall{Box: floor, Solid: true})
		fmt.Printf("%s: %v\n", mode, index.Query(inside, true))
	}

	// Output:
	// corners: false
	// span: true
}

// Example_settings loads index settings from YAML
func Example_settings() {
	settings, err := bucketlist.ParseSettings([]byte("bucket_size: 64\ninsert_mode: span\n"))
	if err != nil {
		panic(err)
	}
	index, err := bucketlist.Factory.NewIndexFromSettings(settings)
	if err != nil {
		panic(err)
	}
	fmt.Println(index.BucketSize(), index.Mode(), index.CellFor(bucketlist.Vec{X: -1, Y: 130}))

	// Output:
	// 64 span [-1,2]
}
