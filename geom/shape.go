// Copyright 2023 The spatialtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies which variant of the Shape union a Shape holds.
type Kind uint8

const (
	// Invalid is the Kind of a Shape which could not be classified.
	// The zero Shape is Invalid.
	Invalid Kind = iota
	// Point is the Kind of a Shape having only a position.
	Point
	// Circle is the Kind of a Shape having a position and a positive
	// radius.
	Circle
	// Rectangle is the Kind of an axis-aligned rectangle having a
	// position, which is its minimum corner, and a positive width and
	// height.
	Rectangle
	// Extent is the Kind of a position-less rectangle, i.e. a width
	// and height with no position. Extents are never intersected or
	// contained by anything.
	Extent
)

var kindNames = [...]string{"Invalid", "Point", "Circle", "Rectangle", "Extent"}

// String returns the name of the Kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Shape is a tagged union over the supported two-dimensional shape
// variants. Kind selects the variant, and only the fields relevant to
// that variant are meaningful:
//
//	Point:     X, Y
//	Circle:    X, Y, R
//	Rectangle: X, Y, W, H
//	Extent:    W, H
//
// Shape values are produced by Classify or by the Pt, Circ and Rect
// constructors.
type Shape struct {
	Kind Kind
	X    float64
	Y    float64
	W    float64
	H    float64
	R    float64
}

// Pt returns a Point shape.
func Pt(x, y float64) Shape {
	return Shape{Kind: Point, X: x, Y: y}
}

// Circ returns a Circle shape. Panics if r is not positive.
func Circ(x, y, r float64) Shape {
	if !(r > 0) {
		fmtPanic("circle radius must be positive, got %s", formatFloat(r))
	}
	return Shape{Kind: Circle, X: x, Y: y, R: r}
}

// Rect returns a Rectangle shape whose minimum corner is (x, y). Panics
// if w or h is not positive.
func Rect(x, y, w, h float64) Shape {
	if !(w > 0) || !(h > 0) {
		fmtPanic("rectangle extents must be positive, got w=%s h=%s", formatFloat(w), formatFloat(h))
	}
	return Shape{Kind: Rectangle, X: x, Y: y, W: w, H: h}
}

// Valid reports whether the shape is a positioned variant which the
// predicates accept, i.e. a Point, Circle or Rectangle.
func (s Shape) Valid() bool {
	return s.Kind == Point || s.Kind == Circle || s.Kind == Rectangle
}

// Bounds returns the axis-aligned bounding box of the shape. The bounds
// of an Invalid or Extent shape is EmptyBox.
func (s Shape) Bounds() Box {
	switch s.Kind {
	case Point:
		return Box{XMin: s.X, YMin: s.Y, XMax: s.X, YMax: s.Y}
	case Circle:
		return Box{XMin: s.X - s.R, YMin: s.Y - s.R, XMax: s.X + s.R, YMax: s.Y + s.R}
	case Rectangle:
		return Box{XMin: s.X, YMin: s.Y, XMax: s.X + s.W, YMax: s.Y + s.H}
	default:
		return EmptyBox
	}
}

// String returns a compact description of the shape, for example
// "Rect{-1,2,3,4}" for a rectangle.
func (s Shape) String() string {
	var b strings.Builder
	switch s.Kind {
	case Point:
		b.WriteString("Pt{")
		writeFloats(&b, s.X, s.Y)
	case Circle:
		b.WriteString("Circ{")
		writeFloats(&b, s.X, s.Y, s.R)
	case Rectangle:
		b.WriteString("Rect{")
		writeFloats(&b, s.X, s.Y, s.W, s.H)
	case Extent:
		b.WriteString("Extent{")
		writeFloats(&b, s.W, s.H)
	default:
		return "Invalid"
	}
	b.WriteByte('}')
	return b.String()
}

// Distance returns the Euclidean distance between (x0, y0) and
// (x1, y1).
func Distance(x0, y0, x1, y1 float64) float64 {
	dx, dy := x0-x1, y0-y1
	return math.Sqrt(dx*dx + dy*dy)
}
