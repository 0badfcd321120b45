// Copyright 2023 The spatialtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package spatialtree

import (
	"github.com/gogama/spatialtree/geom"
	"github.com/sirupsen/logrus"
)

// A node is one region of a Tree. A node is a leaf while children is
// nil, and internal otherwise.
//
// Every node, leaf or internal, holds the complete set of items which
// intersect its region and were routed to it. An internal node's
// children each hold the subset of those items intersecting the child,
// so an item lying across a split line is held by several children. A
// point lying exactly on a split line intersects no child at all and is
// held as a stray by the internal node.
type node struct {
	// label names the node's position within its parent: "root" for
	// the root, otherwise one of "w", "e", "s", "n", "nw", "ne", "sw"
	// or "se".
	label string
	// bounds is the unclassified region, kept for splitting.
	bounds Region
	// region is the classified shape of bounds, used in predicates.
	region geom.Shape
	// depth is the remaining subdivision budget. A node with depth
	// zero is a permanent leaf.
	depth uint
	// s holds the settings shared by all nodes of the tree.
	s *settings
	// items maps the handle of every item held by the node to the
	// item's classified shape.
	items map[Handle]geom.Shape
	// children is nil for a leaf. For an internal node it holds two or
	// four children, exclusively owned by this node.
	children []*node
	// strays holds the items of an internal node which no child holds.
	// It is nil for a leaf.
	strays map[Handle]geom.Shape
}

func newNode(label string, r Region, depth uint, s *settings) *node {
	return &node{
		label:  label,
		bounds: r,
		region: r.Shape(),
		depth:  depth,
		s:      s,
		items:  make(map[Handle]geom.Shape),
	}
}

func (n *node) isLeaf() bool {
	return n.children == nil
}

// insert adds the item with handle h and shape sh to the node, and
// recursively to every intersecting child if the node is, or becomes,
// internal. Returns false without changing anything if sh does not
// intersect the node's region.
func (n *node) insert(h Handle, sh geom.Shape) bool {
	if !geom.Intersects(n.region, sh) {
		return false
	}

	n.items[h] = sh
	if n.depth == 0 || uint(len(n.items)) <= n.s.bucket {
		return true
	}

	if n.isLeaf() {
		n.expand()
	} else {
		n.place(h, sh)
	}

	return true
}

// place inserts an item held by an internal node into every child it
// intersects, recording it as a stray if there are none.
func (n *node) place(h Handle, sh geom.Shape) {
	var placed bool
	for _, c := range n.children {
		if c.insert(h, sh) {
			placed = true
		}
	}
	n.markStray(h, sh, placed)
}

func (n *node) markStray(h Handle, sh geom.Shape, placed bool) {
	if placed {
		delete(n.strays, h)
	} else {
		n.strays[h] = sh
	}
}

// remove deletes the item with handle h from the node and its
// descendants, collapsing the node to a leaf if its item count drops
// back within the bucket size. Returns false if the node does not hold
// the item.
func (n *node) remove(h Handle) bool {
	if _, ok := n.items[h]; !ok {
		return false
	}

	delete(n.items, h)
	delete(n.strays, h)
	if uint(len(n.items)) <= n.s.bucket {
		n.collapse()
	} else {
		for _, c := range n.children {
			c.remove(h)
		}
	}

	return true
}

// update reconciles the node with the new shape sh of the item with
// handle h. If the node holds the item and sh still intersects the
// region, the cached shape is refreshed here and the update propagates
// to the children, leaving this node's membership untouched. If the node
// does not hold the item but sh now intersects the region, the item is
// inserted. If the node holds the item but sh no longer intersects the
// region, the item is removed. Returns true if the item was inserted or
// removed anywhere in the subtree.
func (n *node) update(h Handle, sh geom.Shape) bool {
	_, has := n.items[h]
	if !geom.Intersects(n.region, sh) {
		if has {
			return n.remove(h)
		}
		return false
	}

	if !has {
		return n.insert(h, sh)
	}

	n.items[h] = sh
	if n.isLeaf() {
		return false
	}

	var changed, placed bool
	for _, c := range n.children {
		if c.update(h, sh) {
			changed = true
		}
		if _, ok := c.items[h]; ok {
			placed = true
		}
	}
	n.markStray(h, sh, placed)
	return changed
}

// clear removes all items and children. The node's region and depth
// budget are untouched.
func (n *node) clear() {
	n.items = make(map[Handle]geom.Shape)
	n.children = nil
	n.strays = nil
}

// expand subdivides a leaf node according to its aspect ratio and
// distributes every item it holds into each child the item intersects.
// Does nothing if the node is already internal.
func (n *node) expand() {
	if n.children != nil {
		return
	}

	regions, labels := n.bounds.split()
	n.children = make([]*node, len(regions))
	for i := range regions {
		n.children[i] = newNode(labels[i], regions[i], n.depth-1, n.s)
	}

	n.strays = make(map[Handle]geom.Shape)
	for h, sh := range n.items {
		n.place(h, sh)
	}

	n.s.log.WithFields(logrus.Fields{
		"node":   n.label,
		"depth":  n.depth,
		"split":  len(n.children),
		"items":  len(n.items),
		"strays": len(n.strays),
	}).Debugf("spatialtree: expanded node %s", n.bounds)
}

// collapse discards the children of an internal node. Does nothing if
// the node is a leaf.
func (n *node) collapse() {
	if n.children == nil {
		return
	}

	n.children = nil
	n.strays = nil

	n.s.log.WithFields(logrus.Fields{
		"node":  n.label,
		"depth": n.depth,
		"items": len(n.items),
	}).Debugf("spatialtree: collapsed node %s", n.bounds)
}

// search adds to out the handle of every item in the subtree whose
// shape intersects q inside the node's region.
func (n *node) search(q geom.Shape, out map[Handle]struct{}) {
	if !geom.Intersects(n.region, q) {
		return
	}

	// Everything held by a node whose region lies wholly inside q
	// intersects q.
	if geom.Contains(q, n.region) {
		for h := range n.items {
			out[h] = struct{}{}
		}
		return
	}

	items := n.items
	if !n.isLeaf() {
		var hit bool
		for _, c := range n.children {
			if geom.Intersects(c.region, q) {
				c.search(q, out)
				hit = true
			}
		}
		// A point query on a split line touches no child, but items
		// around it may still contain it.
		if hit {
			items = n.strays
		}
	}

	for h, sh := range items {
		if geom.Intersects(sh, q) {
			out[h] = struct{}{}
		}
	}
}

// enclosing adds to out the handle of every item in the subtree whose
// shape contains q.
//
// An item containing q intersects every node whose region contains q,
// so the search narrows to the deepest such node and tests that node's
// complete item set. If no child contains q, for example because q
// straddles a split line or lies partly outside the node, the node's own
// items are tested.
func (n *node) enclosing(q geom.Shape, out map[Handle]struct{}) {
	for _, c := range n.children {
		if geom.Contains(c.region, q) {
			c.enclosing(q, out)
			return
		}
	}

	for h, sh := range n.items {
		if geom.Contains(sh, q) {
			out[h] = struct{}{}
		}
	}
}

// walk calls f for n and every descendant of n, in depth-first
// pre-order. level is zero for n.
func (n *node) walk(level int, f func(n *node, level int)) {
	f(n, level)
	for _, c := range n.children {
		c.walk(level+1, f)
	}
}
