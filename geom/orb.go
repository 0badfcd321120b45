// Copyright 2023 The spatialtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geom

import "github.com/paulmach/orb"

// FromOrb classifies an orb geometry. An orb.Point becomes a Point. Any
// other geometry is described by its bounding box, which becomes a
// Rectangle if it has positive width and height and a Point at the
// minimum corner otherwise. A nil or empty geometry is Invalid.
func FromOrb(g orb.Geometry) (s Shape) {
	defer func() {
		if r := recover(); r != nil {
			s = Shape{}
		}
	}()
	switch v := g.(type) {
	case nil:
		return Shape{}
	case orb.Point:
		return Pt(v.X(), v.Y())
	}
	bound := g.Bound()
	b := Box{XMin: bound.Min.X(), YMin: bound.Min.Y(), XMax: bound.Max.X(), YMax: bound.Max.Y()}
	return b.Shape()
}
