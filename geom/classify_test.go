// Copyright 2023 The spatialtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geom

import (
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockShaper struct {
	mock.Mock
}

func (m *mockShaper) Shape() Shape {
	args := m.Called()
	return args.Get(0).(Shape)
}

type panickyShaper struct{}

func (panickyShaper) Shape() Shape {
	panic("oops")
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		input    interface{}
		expected Shape
	}{
		// Non-descriptors.
		{"Nil", nil, Shape{}},
		{"String", "x", Shape{}},
		{"Int", 3, Shape{}},
		{"NilShapePointer", (*Shape)(nil), Shape{}},
		{"NilDescriptorPointer", (*Descriptor)(nil), Shape{}},
		{"PanickyShaper", panickyShaper{}, Shape{}},

		// Maps, as decoded from JSON or YAML.
		{"Map.Empty", map[string]interface{}{}, Shape{}},
		{"Map.MissingY", map[string]interface{}{"x": 1}, Shape{}},
		{"Map.NonNumericX", map[string]interface{}{"x": "1", "y": 2}, Shape{}},
		{"Map.Point", map[string]interface{}{"x": 1, "y": 2.5}, Pt(1, 2.5)},
		{"Map.Circle", map[string]interface{}{"x": int64(1), "y": float32(2), "r": uint8(3)}, Circ(1, 2, 3)},
		{"Map.Rectangle", map[string]interface{}{"x": 0, "y": 0, "w": 10, "h": 5}, Rect(0, 0, 10, 5)},
		{"Map.RectangleWins", map[string]interface{}{"x": 0, "y": 0, "w": 10, "h": 5, "r": 2}, Rect(0, 0, 10, 5)},
		{"Map.JSONNumber", map[string]interface{}{"x": json.Number("1.5"), "y": json.Number("-2")}, Pt(1.5, -2)},
		{"Map.BadJSONNumber", map[string]interface{}{"x": json.Number("one"), "y": json.Number("-2")}, Shape{}},
		{"Map.Extent", map[string]interface{}{"w": 3, "h": 2}, Shape{Kind: Extent, W: 3, H: 2}},
		{"Map.ExtentZeroWidth", map[string]interface{}{"w": 0, "h": 2}, Shape{}},
		{"Map.ZeroWidthIsPoint", map[string]interface{}{"x": 4, "y": 5, "w": 0, "h": 2}, Pt(4, 5)},
		{"Map.ZeroHeightIsPoint", map[string]interface{}{"x": 4, "y": 5, "w": 2, "h": 0}, Pt(4, 5)},
		{"Map.NegativeRadiusIsPoint", map[string]interface{}{"x": 4, "y": 5, "r": -1}, Pt(4, 5)},
		{"Map.ZeroWidthWithRadiusIsCircle", map[string]interface{}{"x": 4, "y": 5, "w": 0, "h": 2, "r": 1}, Circ(4, 5, 1)},

		// Descriptors.
		{"Descriptor.Empty", Descriptor{}, Shape{}},
		{"Descriptor.Point", Descriptor{X: Num(1), Y: Num(2)}, Pt(1, 2)},
		{"Descriptor.Circle", &Descriptor{X: Num(1), Y: Num(2), R: Num(0.5)}, Circ(1, 2, 0.5)},
		{"Descriptor.Rectangle", &Descriptor{X: Num(1), Y: Num(2), W: Num(3), H: Num(4)}, Rect(1, 2, 3, 4)},
		{"Descriptor.Extent", &Descriptor{W: Num(3), H: Num(4)}, Shape{Kind: Extent, W: 3, H: 4}},

		// Shapes are re-classified from the fields their kind exposes.
		{"Shape.Invalid", Shape{X: 1, Y: 2}, Shape{}},
		{"Shape.Point", Pt(1, 2), Pt(1, 2)},
		{"Shape.PointIgnoresRadius", Shape{Kind: Point, X: 1, Y: 2, R: 5}, Pt(1, 2)},
		{"Shape.Circle", Circ(1, 2, 3), Circ(1, 2, 3)},
		{"Shape.DegenerateCircle", Shape{Kind: Circle, X: 1, Y: 2}, Pt(1, 2)},
		{"Shape.Rectangle", &Shape{Kind: Rectangle, X: 1, Y: 2, W: 3, H: 4}, Rect(1, 2, 3, 4)},
		{"Shape.DegenerateRectangle", Shape{Kind: Rectangle, X: 1, Y: 2, W: 3}, Pt(1, 2)},
		{"Shape.Extent", Shape{Kind: Extent, X: 1, Y: 2, W: 3, H: 4}, Shape{Kind: Extent, W: 3, H: 4}},
		{"Shape.UnknownKind", Shape{Kind: Kind(42), X: 1, Y: 2}, Shape{}},

		// Shapers.
		{"Box", &Box{0, 0, 2, 3}, Rect(0, 0, 2, 3)},

		// Orb geometries.
		{"Orb.Point", orb.Point{1, 2}, Pt(1, 2)},
		{"Orb.Bound", orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{2, 1}}, Rect(0, 0, 2, 1)},
		{"Orb.LineString", orb.LineString{{0, 0}, {4, 2}}, Rect(0, 0, 4, 2)},
		{"Orb.EmptyLineString", orb.LineString{}, Shape{}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := Classify(testCase.input)

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestClassify_Shaper(t *testing.T) {
	t.Run("Reclassified", func(t *testing.T) {
		m := &mockShaper{}
		m.On("Shape").Return(Shape{Kind: Rectangle, X: 1, Y: 1, W: 0, H: 3}).Once()

		actual := Classify(m)

		assert.Equal(t, Pt(1, 1), actual)
		m.AssertExpectations(t)
	})

	t.Run("CalledOnce", func(t *testing.T) {
		m := &mockShaper{}
		m.On("Shape").Return(Circ(0, 0, 1)).Once()

		actual := Classify(m)

		assert.Equal(t, Circ(0, 0, 1), actual)
		m.AssertNumberOfCalls(t, "Shape", 1)
	})
}

func TestDescriptor_Shape(t *testing.T) {
	d := &Descriptor{X: Num(0), Y: Num(0), W: Num(1), H: Num(1)}
	assert.Equal(t, Rect(0, 0, 1, 1), d.Shape())

	*d.W = 0
	assert.Equal(t, Pt(0, 0), d.Shape(), "Zero-width rectangle must degrade to a point.")

	d.R = Num(2)
	assert.Equal(t, Circ(0, 0, 2), d.Shape())

	d.X = nil
	assert.Equal(t, Shape{}, d.Shape())
}
