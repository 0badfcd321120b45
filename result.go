// Copyright 2023 The spatialtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package spatialtree

import (
	"sort"

	"github.com/gogama/spatialtree/geom"
)

// Result is a single query result.
type Result struct {
	// Handle is the handle assigned to the item when it was inserted.
	Handle Handle
	// Item is the item exactly as it was passed to Insert.
	Item interface{}
	// Shape is the item's classified shape as last seen by the tree.
	Shape geom.Shape

	hilbert uint32
	seq     uint64
}

// Results is a slice of Result structures which implements
// sort.Interface. The sort.Sort function will sort Results in ascending
// Hilbert curve order of their shapes' bounding box centers, breaking
// ties by insertion order.
type Results []Result

// Len returns the length of the slice. It implements the corresponding
// method of sort.Interface.
func (rs Results) Len() int {
	return len(rs)
}

// Less establishes an absolute ordering by Hilbert index, then by
// insertion order. It implements the corresponding method of
// sort.Interface.
func (rs Results) Less(i, j int) bool {
	if rs[i].hilbert != rs[j].hilbert {
		return rs[i].hilbert < rs[j].hilbert
	}
	return rs[i].seq < rs[j].seq
}

// Swap swaps two elements of the slice. It implements the corresponding
// method of sort.Interface.
func (rs Results) Swap(i, j int) {
	rs[i], rs[j] = rs[j], rs[i]
}

// Items returns the items of the results, in order.
func (rs Results) Items() []interface{} {
	items := make([]interface{}, len(rs))
	for i := range rs {
		items[i] = rs[i].Item
	}
	return items
}

// results converts a set of handles into sorted Results.
func (t *Tree) results(hs map[Handle]struct{}) Results {
	extent := t.root.bounds.Box()
	rs := make(Results, 0, len(hs))
	for h := range hs {
		e := t.entries[h]
		b := e.shape.Bounds()
		rs = append(rs, Result{
			Handle:  h,
			Item:    e.item,
			Shape:   e.shape,
			hilbert: geom.HilbertIndex(&b, &extent),
			seq:     e.seq,
		})
	}
	sort.Sort(rs)
	return rs
}
