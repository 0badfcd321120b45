// Copyright 2023 The spatialtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package spatialtree

import (
	"math"

	"github.com/gogama/spatialtree/geom"
)

// Region is the axis-aligned rectangle spanned by a tree node. (X, Y)
// is the minimum corner and W and H are the width and height, which
// may be zero but not negative.
type Region struct {
	X float64
	Y float64
	W float64
	H float64
}

// Shape classifies the region like any other shape descriptor. A region
// with positive width and height is a geom.Rectangle, while a region
// with zero width or height degrades to a geom.Point at its minimum
// corner. Shape implements geom.Shaper, so a Region can be passed
// directly to Search and Enclosing.
func (r Region) Shape() geom.Shape {
	return geom.Classify(&geom.Descriptor{X: geom.Num(r.X), Y: geom.Num(r.Y), W: geom.Num(r.W), H: geom.Num(r.H)})
}

// Box returns the region as a bounding box.
func (r Region) Box() geom.Box {
	return geom.Box{XMin: r.X, YMin: r.Y, XMax: r.X + r.W, YMax: r.Y + r.H}
}

// validate panics unless every field of r is finite and the width and
// height are non-negative.
func (r Region) validate() {
	for _, f := range [...]struct {
		name  string
		value float64
	}{{"x", r.X}, {"y", r.Y}, {"w", r.W}, {"h", r.H}} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			fmtPanic("invalid region: %s is not a finite number", f.name)
		}
	}
	if r.W < 0 || r.H < 0 {
		textPanic("invalid region: width and height must not be negative")
	}
}

// split divides r into the child regions prescribed by its aspect
// ratio. Each child is paired with its position label.
func (r Region) split() ([]Region, []string) {
	midW, midH := r.W/2, r.H/2
	midX, midY := r.X+midW, r.Y+midH
	ratio := r.W / r.H
	switch {
	case ratio >= 1.5:
		return []Region{
			{r.X, r.Y, midW, r.H},
			{midX, r.Y, midW, r.H},
		}, []string{"w", "e"}
	case ratio <= 0.75:
		return []Region{
			{r.X, r.Y, r.W, midH},
			{r.X, midY, r.W, midH},
		}, []string{"s", "n"}
	default:
		return []Region{
			{r.X, midY, midW, midH},
			{midX, midY, midW, midH},
			{r.X, r.Y, midW, midH},
			{midX, r.Y, midW, midH},
		}, []string{"nw", "ne", "sw", "se"}
	}
}
