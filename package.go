// Copyright 2023 The spatialtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package spatialtree provides an adaptive, in-memory spatial
// partitioning tree over points, circles and axis-aligned rectangles.
//
// Unlike a classic quadtree, which always quarters, each node of a Tree
// picks its split from its own aspect ratio: wide nodes split into west
// and east halves, tall nodes into south and north halves, and roughly
// square nodes into four quadrants. Nodes subdivide lazily when they
// hold more items than the bucket size allows, and collapse again when
// removals bring them back within it. Items spanning a split line are
// replicated into every child they overlap.
//
// A Tree answers two kinds of query: Search returns the items which
// overlap a query shape, and Enclosing returns the items which contain
// it. Shape semantics come from package geom.
//
// A Tree is not safe for concurrent use. Callers sharing a Tree between
// goroutines must serialize access to it.
package spatialtree
