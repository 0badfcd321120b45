// Copyright 2023 The spatialtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package geom provides the small, exact geometry kernel used by the
// spatial tree: a tagged Shape union over points, circles and
// axis-aligned rectangles, a structural classifier which infers the
// variant of loosely-typed shape descriptors, and the pairwise
// Intersects and Contains predicates.
//
// All predicates are exact. No epsilon tolerance is applied anywhere,
// so callers working with computed coordinates should expect edge and
// boundary cases to be decided by plain floating-point comparison.
package geom
