// Copyright 2023 The spatialtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geom

import (
	"encoding/json"

	"github.com/paulmach/orb"
)

// A Shaper is any value which can describe itself as a Shape. The
// returned Shape is re-classified structurally by Classify, so a Shaper
// returning, for example, a Rectangle with zero width is treated as a
// Point.
type Shaper interface {
	Shape() Shape
}

// Descriptor is a loosely-typed shape description in which every field
// is optional. The variant a Descriptor represents is inferred from
// which fields are present, see Classify.
//
// Descriptor pointers make good items for a spatial tree: the tree
// keys membership on pointer identity, and a caller can move the shape
// by mutating the fields and then notifying the tree.
type Descriptor struct {
	X *float64 `yaml:"x,omitempty"`
	Y *float64 `yaml:"y,omitempty"`
	W *float64 `yaml:"w,omitempty"`
	H *float64 `yaml:"h,omitempty"`
	R *float64 `yaml:"r,omitempty"`
}

// Num returns a pointer to a copy of f. It is a convenience for
// building Descriptor literals.
func Num(f float64) *float64 {
	return &f
}

// Shape classifies the descriptor. It implements Shaper.
func (d *Descriptor) Shape() Shape {
	if d == nil {
		return Shape{}
	}
	return classifyFields(d.X, d.Y, d.W, d.H, d.R)
}

// Classify infers the Shape variant of a loosely-typed shape
// descriptor from the fields it exposes. The rules, evaluated in order,
// are:
//
//  1. Without numeric x and y, the result is an Extent if numeric w
//     and h are both positive, and Invalid otherwise.
//  2. If numeric w and h are both positive, the result is a Rectangle.
//  3. Otherwise if numeric r is positive, the result is a Circle.
//  4. Otherwise the result is a Point.
//
// Note that by rule 4 a rectangle with zero width or height, or a
// circle with zero radius, silently degrades to a Point.
//
// The supported descriptor types are Shape, Descriptor, the pointer
// forms of both, map[string]interface{} (as produced by JSON and YAML
// decoders, keyed by "x", "y", "w", "h" and "r"), Shaper, and the orb
// types orb.Point, orb.Bound and orb.Geometry. Any other value,
// including nil, classifies as Invalid. Classify never panics.
func Classify(v interface{}) Shape {
	switch d := v.(type) {
	case Shape:
		return reclassify(d)
	case *Shape:
		if d == nil {
			return Shape{}
		}
		return reclassify(*d)
	case Descriptor:
		return d.Shape()
	case *Descriptor:
		return d.Shape()
	case map[string]interface{}:
		return classifyMap(d)
	case orb.Point:
		return Pt(d.X(), d.Y())
	case orb.Bound:
		return FromOrb(d)
	case Shaper:
		return reclassify(safeShape(d))
	case orb.Geometry:
		return FromOrb(d)
	default:
		return Shape{}
	}
}

// reclassify runs a Shape through the structural classification rules,
// presenting exactly the fields its Kind makes meaningful.
func reclassify(s Shape) Shape {
	switch s.Kind {
	case Point:
		return classifyFields(Num(s.X), Num(s.Y), nil, nil, nil)
	case Circle:
		return classifyFields(Num(s.X), Num(s.Y), nil, nil, Num(s.R))
	case Rectangle:
		return classifyFields(Num(s.X), Num(s.Y), Num(s.W), Num(s.H), nil)
	case Extent:
		return classifyFields(nil, nil, Num(s.W), Num(s.H), nil)
	default:
		return Shape{}
	}
}

func classifyFields(x, y, w, h, r *float64) Shape {
	hasExtent := w != nil && h != nil && *w > 0 && *h > 0
	if x == nil || y == nil {
		if hasExtent {
			return Shape{Kind: Extent, W: *w, H: *h}
		}
		return Shape{}
	}
	if hasExtent {
		return Shape{Kind: Rectangle, X: *x, Y: *y, W: *w, H: *h}
	}
	if r != nil && *r > 0 {
		return Shape{Kind: Circle, X: *x, Y: *y, R: *r}
	}
	return Shape{Kind: Point, X: *x, Y: *y}
}

func classifyMap(m map[string]interface{}) Shape {
	return classifyFields(field(m, "x"), field(m, "y"), field(m, "w"), field(m, "h"), field(m, "r"))
}

func field(m map[string]interface{}, key string) *float64 {
	if v, ok := m[key]; ok {
		if f, ok := numeric(v); ok {
			return &f
		}
	}
	return nil
}

// numeric converts any Go numeric value to float64.
func numeric(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// safeShape calls s.Shape(), converting a panic into an Invalid Shape so
// that a misbehaving Shaper is rejected rather than crashing the caller.
func safeShape(s Shaper) (shape Shape) {
	defer func() {
		if r := recover(); r != nil {
			shape = Shape{}
		}
	}()
	return s.Shape()
}
