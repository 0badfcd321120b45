// Copyright 2023 The spatialtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"strconv"
	"strings"
)

// Box is an axis-aligned bounding box given by its minimum and maximum
// corners. Unlike a Rectangle Shape, a Box may be degenerate (zero
// width or height) or empty.
type Box struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// EmptyBox is the identity element for Expand: expanding EmptyBox by
// any box yields that box. Do not use the zero Box to start an
// accumulation, since it already contains the origin.
var EmptyBox = Box{
	XMin: math.Inf(1),
	YMin: math.Inf(1),
	XMax: math.Inf(-1),
	YMax: math.Inf(-1),
}

// Width returns the width of the box.
func (b *Box) Width() float64 {
	return b.XMax - b.XMin
}

// Height returns the height of the box.
func (b *Box) Height() float64 {
	return b.YMax - b.YMin
}

func (b *Box) midX() float64 {
	return (b.XMin + b.XMax) / 2
}

func (b *Box) midY() float64 {
	return (b.YMin + b.YMax) / 2
}

// Expand grows the box, if necessary, so that it covers c.
func (b *Box) Expand(c *Box) {
	if c.XMin < b.XMin {
		b.XMin = c.XMin
	}
	if c.YMin < b.YMin {
		b.YMin = c.YMin
	}
	if c.XMax > b.XMax {
		b.XMax = c.XMax
	}
	if c.YMax > b.YMax {
		b.YMax = c.YMax
	}
}

// Shape returns the classified Shape covering the box: a Rectangle if
// the box has positive width and height, otherwise a Point at the
// minimum corner. The Shape of an empty box is Invalid.
func (b *Box) Shape() Shape {
	if b.XMin > b.XMax || b.YMin > b.YMax {
		return Shape{}
	}
	return classifyFields(Num(b.XMin), Num(b.YMin), Num(b.Width()), Num(b.Height()), nil)
}

// String returns the box formatted as [XMin,YMin,XMax,YMax].
func (b Box) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	writeFloats(&sb, b.XMin, b.YMin, b.XMax, b.YMax)
	sb.WriteByte(']')
	return sb.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 8, 64)
}

func writeFloats(b *strings.Builder, fs ...float64) {
	for i, f := range fs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(formatFloat(f))
	}
}
