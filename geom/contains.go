// Copyright 2023 The spatialtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geom

// Contains reports whether shape a encloses shape b.
//
// Boundaries are inclusive when the enclosed shape has area, so a
// rectangle contains itself and a circle contains a rectangle whose
// corners lie exactly on its circumference. An enclosed Point must lie
// strictly inside a Circle or Rectangle, and is contained by another
// Point only when the two are exactly equal. A Point never contains a
// Circle or Rectangle.
//
// Contains returns false if either shape is not a Point, Circle or
// Rectangle.
func Contains(a, b Shape) bool {
	switch a.Kind {
	case Point:
		if b.Kind == Point {
			return pointPointIntersect(a, b)
		}
	case Circle:
		switch b.Kind {
		case Point:
			return pointCircleIntersect(b, a)
		case Circle:
			return circleCircleContain(a, b)
		case Rectangle:
			return circleRectContain(a, b)
		}
	case Rectangle:
		switch b.Kind {
		case Point:
			return pointRectIntersect(b, a)
		case Circle:
			return rectCircleContain(a, b)
		case Rectangle:
			return rectRectContain(a, b)
		}
	}
	return false
}

func rectRectContain(outer, inner Shape) bool {
	return outer.X <= inner.X &&
		outer.Y <= inner.Y &&
		outer.X+outer.W >= inner.X+inner.W &&
		outer.Y+outer.H >= inner.Y+inner.H
}

func circleCircleContain(outer, inner Shape) bool {
	return Distance(outer.X, outer.Y, inner.X, inner.Y)+inner.R <= outer.R
}

func circleRectContain(cl, rt Shape) bool {
	corners := [4][2]float64{
		{rt.X, rt.Y},
		{rt.X, rt.Y + rt.H},
		{rt.X + rt.W, rt.Y + rt.H},
		{rt.X + rt.W, rt.Y},
	}
	for _, c := range corners {
		if Distance(c[0], c[1], cl.X, cl.Y) > cl.R {
			return false
		}
	}
	return true
}

func rectCircleContain(rt, cl Shape) bool {
	if rt.X > cl.X-cl.R || rt.X+rt.W < cl.X+cl.R {
		return false
	}
	if rt.Y > cl.Y-cl.R || rt.Y+rt.H < cl.Y+cl.R {
		return false
	}
	return true
}
