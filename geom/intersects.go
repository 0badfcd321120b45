// Copyright 2023 The spatialtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geom

// Intersects reports whether shapes a and b overlap. The test is exact
// and uses open boundaries throughout, so shapes which merely touch,
// such as two rectangles sharing an edge or a point lying on a circle,
// do not intersect. The one exception is two points, which intersect
// when their coordinates are exactly equal.
//
// Intersects is symmetric. It returns false if either shape is not a
// Point, Circle or Rectangle.
func Intersects(a, b Shape) bool {
	switch a.Kind {
	case Point:
		switch b.Kind {
		case Point:
			return pointPointIntersect(a, b)
		case Circle:
			return pointCircleIntersect(a, b)
		case Rectangle:
			return pointRectIntersect(a, b)
		}
	case Circle:
		switch b.Kind {
		case Point:
			return pointCircleIntersect(b, a)
		case Circle:
			return circleCircleIntersect(a, b)
		case Rectangle:
			return circleRectIntersect(a, b)
		}
	case Rectangle:
		switch b.Kind {
		case Point:
			return pointRectIntersect(b, a)
		case Circle:
			return circleRectIntersect(b, a)
		case Rectangle:
			return rectRectIntersect(a, b)
		}
	}
	return false
}

func pointPointIntersect(p, q Shape) bool {
	return p.X == q.X && p.Y == q.Y
}

func rectRectIntersect(a, b Shape) bool {
	if a.X+a.W <= b.X || b.X+b.W <= a.X {
		return false
	}
	if a.Y+a.H <= b.Y || b.Y+b.H <= a.Y {
		return false
	}
	return true
}

func circleCircleIntersect(a, b Shape) bool {
	return Distance(a.X, a.Y, b.X, b.Y) < a.R+b.R
}

func pointCircleIntersect(pt, cl Shape) bool {
	return Distance(pt.X, pt.Y, cl.X, cl.Y) < cl.R
}

func pointRectIntersect(pt, rt Shape) bool {
	if pt.X <= rt.X || rt.X+rt.W <= pt.X {
		return false
	}
	if pt.Y <= rt.Y || rt.Y+rt.H <= pt.Y {
		return false
	}
	return true
}

// circleRectIntersect first rejects circles lying wholly outside the
// rectangle expanded by the radius. What remains can only miss the
// rectangle when the center lies beyond a corner, in which case the
// distance to that corner decides.
func circleRectIntersect(cl, rt Shape) bool {
	right, top := rt.X+rt.W, rt.Y+rt.H
	if cl.X+cl.R <= rt.X || cl.X-cl.R >= right || cl.Y+cl.R <= rt.Y || cl.Y-cl.R >= top {
		return false
	}

	var cx float64
	switch {
	case cl.X <= rt.X:
		cx = rt.X
	case cl.X >= right:
		cx = right
	default:
		return true
	}

	switch {
	case cl.Y <= rt.Y:
		return Distance(cl.X, cl.Y, cx, rt.Y) < cl.R
	case cl.Y >= top:
		return Distance(cl.X, cl.Y, cx, top) < cl.R
	default:
		return true
	}
}
