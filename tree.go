// Copyright 2023 The spatialtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package spatialtree

import (
	"reflect"

	"github.com/gogama/spatialtree/geom"
	"github.com/sirupsen/logrus"
)

// Tree is an adaptive spatial partitioning tree over a fixed Region.
//
// Items may be any comparable Go value whose shape geom.Classify can
// infer: geom.Shape, *geom.Descriptor, geom.Shaper implementations,
// orb geometries, and so on. Membership is keyed on the item value
// itself, so two pointers are different items even if they point to
// equal shapes, while two equal non-pointer values are the same item.
//
// An item whose type is comparable but which holds a non-comparable
// value in an interface field, such as a struct with an interface{}
// field set to a slice, cannot be hashed either. Such items are
// rejected with false rather than panicking.
//
// Each item is classified once, when it enters the tree, and the
// resulting geom.Shape is cached. If the caller changes the shape of a
// pointer item in place, it must call Update to bring the tree back in
// sync, otherwise queries will silently use the stale shape.
//
// The zero Tree is not usable. Use New to construct a Tree.
type Tree struct {
	root  *node
	depth uint
	s     *settings
	// entries maps each live handle to its item.
	entries map[Handle]*entry
	// handles maps each live item to its handle.
	handles map[interface{}]Handle
	// seq is the insertion sequence number of the next new item.
	seq uint64
}

type entry struct {
	item  interface{}
	shape geom.Shape
	seq   uint64
}

// New creates an empty Tree spanning region r. By default the bucket
// size is DefaultBucket and the depth budget is DefaultDepth; use
// options to change them.
//
// Panics if any field of r is not a finite number, or if r has negative
// width or height.
func New(r Region, opts ...Option) *Tree {
	r.validate()

	t := &Tree{
		depth: DefaultDepth,
		s: &settings{
			bucket: DefaultBucket,
			log:    logrus.StandardLogger(),
		},
		entries: make(map[Handle]*entry),
		handles: make(map[interface{}]Handle),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.root = newNode("root", r, t.depth, t.s)

	return t
}

// Insert adds an item to the tree. Returns false, leaving the tree
// unchanged, if the item's shape cannot be classified, if the item is
// not comparable, or if its shape does not intersect the tree's region.
//
// Inserting an item which is already in the tree does not add it a
// second time, but still returns true.
func (t *Tree) Insert(item interface{}) bool {
	if !isComparable(item) {
		t.reject("insert", item, "item is not comparable")
		return false
	}

	if h, ok := t.handles[item]; ok {
		return t.root.insert(h, t.entries[h].shape)
	}

	sh := geom.Classify(item)
	if !sh.Valid() {
		t.reject("insert", item, "shape is "+sh.Kind.String())
		return false
	}

	h := newHandle()
	if !t.root.insert(h, sh) {
		t.reject("insert", item, "shape is outside the tree region")
		return false
	}

	t.entries[h] = &entry{item: item, shape: sh, seq: t.seq}
	t.handles[item] = h
	t.seq++

	return true
}

// Remove deletes an item from the tree. Returns false if the item is
// not in the tree.
func (t *Tree) Remove(item interface{}) bool {
	h, ok := t.lookup(item)
	if !ok {
		return false
	}

	t.root.remove(h)
	t.forget(h)

	return true
}

// Update re-classifies an item whose shape the caller changed in place,
// and moves it within the tree accordingly:
//   - if the item is in the tree and still intersects the tree region,
//     it is moved into the nodes its new shape intersects;
//   - if the item is not in the tree but now intersects the region, it
//     is inserted;
//   - if the item is in the tree but no longer intersects the region,
//     or can no longer be classified, it is removed.
//
// Returns true if the item was inserted into or removed from any node.
func (t *Tree) Update(item interface{}) bool {
	h, has := t.lookup(item)
	if !has {
		return t.Insert(item)
	}

	sh := geom.Classify(item)
	if !geom.Intersects(t.root.region, sh) {
		return t.Remove(item)
	}

	t.entries[h].shape = sh
	return t.root.update(h, sh)
}

// Replace substitutes newItem for item:
//   - if newItem intersects the tree region and item is in the tree,
//     item is removed and newItem inserted;
//   - if newItem intersects the tree region and item is not in the
//     tree, newItem is inserted;
//   - if newItem does not intersect the tree region, or cannot be
//     classified, item is removed and newItem is not inserted.
//
// Replacing an item with itself re-classifies it and relocates it from
// scratch. Returns true if anything was inserted or removed.
func (t *Tree) Replace(item, newItem interface{}) bool {
	_, has := t.lookup(item)

	if isComparable(newItem) && geom.Intersects(t.root.region, geom.Classify(newItem)) {
		if has {
			t.Remove(item)
		}
		return t.Insert(newItem)
	}

	if has {
		return t.Remove(item)
	}

	return false
}

// Clear removes every item from the tree and discards all subdivisions.
// The tree's region, bucket size and depth budget are unchanged.
func (t *Tree) Clear() {
	t.root.clear()
	t.entries = make(map[Handle]*entry)
	t.handles = make(map[interface{}]Handle)
}

// Search returns every item whose shape intersects the query shape,
// using the open-boundary semantics of geom.Intersects. The query may
// be any value accepted by geom.Classify, including a Region. An
// unclassifiable query matches nothing.
//
// The results are ordered along a Hilbert curve laid over the tree
// region, so items near each other in space are near each other in the
// results.
func (t *Tree) Search(query interface{}) Results {
	q := geom.Classify(query)
	if !q.Valid() {
		return Results{}
	}

	hs := make(map[Handle]struct{})
	t.root.search(q, hs)
	// Items may extend beyond the region, and the nodes only answer for
	// overlap within it.
	if !geom.Contains(t.root.region, q) {
		for h, sh := range t.root.items {
			if geom.Intersects(sh, q) {
				hs[h] = struct{}{}
			}
		}
	}
	return t.results(hs)
}

// Enclosing returns every item whose shape contains the query shape,
// using the semantics of geom.Contains. The query may be any value
// accepted by geom.Classify, including a Region. An unclassifiable
// query matches nothing. Results are ordered as for Search.
func (t *Tree) Enclosing(query interface{}) Results {
	q := geom.Classify(query)
	if !q.Valid() {
		return Results{}
	}

	hs := make(map[Handle]struct{})
	t.root.enclosing(q, hs)
	return t.results(hs)
}

// Handle returns the handle assigned to an item in the tree.
func (t *Tree) Handle(item interface{}) (Handle, bool) {
	return t.lookup(item)
}

// Item returns the item to which a handle was assigned, if the item is
// still in the tree.
func (t *Tree) Item(h Handle) (interface{}, bool) {
	e, ok := t.entries[h]
	if !ok {
		return nil, false
	}
	return e.item, true
}

// Len returns the number of items in the tree.
func (t *Tree) Len() int {
	return len(t.entries)
}

// Region returns the region spanned by the tree.
func (t *Tree) Region() Region {
	return t.root.bounds
}

// Bucket returns the maximum number of items a node holds before it
// subdivides.
func (t *Tree) Bucket() uint {
	return t.s.bucket
}

// Depth returns the depth budget of the tree.
func (t *Tree) Depth() uint {
	return t.depth
}

// Bounds returns the bounding box of every item in the tree, which may
// extend beyond the tree's region. The bounds of an empty tree is
// geom.EmptyBox.
func (t *Tree) Bounds() geom.Box {
	b := geom.EmptyBox
	for _, e := range t.entries {
		eb := e.shape.Bounds()
		b.Expand(&eb)
	}
	return b
}

// Stats summarizes the current shape of a Tree.
type Stats struct {
	// Items is the number of distinct items in the tree.
	Items int
	// Nodes is the total number of nodes, including the root.
	Nodes int
	// Leaves is the number of leaf nodes.
	Leaves int
	// Height is the number of levels below the root, i.e. zero if
	// the root is a leaf.
	Height int
	// Refs is the sum of the item counts of every leaf. It exceeds
	// Items when items are replicated across split lines.
	Refs int
}

// Stats walks the tree and returns a summary of its current shape.
func (t *Tree) Stats() Stats {
	st := Stats{Items: len(t.entries)}
	t.root.walk(0, func(n *node, level int) {
		st.Nodes++
		if level > st.Height {
			st.Height = level
		}
		if n.isLeaf() {
			st.Leaves++
			st.Refs += len(n.items)
		}
	})
	return st
}

func (t *Tree) lookup(item interface{}) (Handle, bool) {
	if !isComparable(item) {
		return Nil, false
	}
	h, ok := t.handles[item]
	return h, ok
}

func (t *Tree) forget(h Handle) {
	if e, ok := t.entries[h]; ok {
		delete(t.handles, e.item)
		delete(t.entries, h)
	}
}

func (t *Tree) reject(op string, item interface{}, reason string) {
	t.s.log.WithFields(logrus.Fields{
		"op":     op,
		"item":   item,
		"reason": reason,
	}).Trace("spatialtree: rejected item")
}

// isComparable reports whether v may be used as a map key without
// panicking.
func isComparable(v interface{}) (ok bool) {
	if v == nil || !reflect.TypeOf(v).Comparable() {
		return false
	}
	// Interface fields are only checked when hashed.
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	_ = map[interface{}]struct{}{v: {}}
	return true
}
