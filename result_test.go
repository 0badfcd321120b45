// Copyright 2023 The spatialtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package spatialtree

import (
	"sort"
	"testing"

	"github.com/gogama/spatialtree/geom"
	"github.com/stretchr/testify/assert"
)

func TestResults_Sort(t *testing.T) {
	rs := Results{
		{Item: "d", hilbert: 9, seq: 0},
		{Item: "b", hilbert: 2, seq: 7},
		{Item: "a", hilbert: 2, seq: 3},
		{Item: "c", hilbert: 5, seq: 1},
	}

	assert.Equal(t, 4, rs.Len())
	assert.True(t, rs.Less(2, 1))
	assert.False(t, rs.Less(0, 3))

	sort.Sort(rs)

	assert.Equal(t, []interface{}{"a", "b", "c", "d"}, rs.Items())
}

func TestResults_Items(t *testing.T) {
	assert.Equal(t, []interface{}{}, Results{}.Items())
	assert.Equal(t, []interface{}{}, Results(nil).Items())
}

func TestResult_String(t *testing.T) {
	r := Result{Shape: geom.Circ(1, 2, 3)}

	assert.Equal(t, "Result{Circ{1,2,3},Handle:00000000-0000-0000-0000-000000000000}", r.String())
}

func TestTree_String(t *testing.T) {
	tree := New(Region{-1, -2, 3, 4}, WithBucket(2), WithDepth(5))
	tree.Insert(geom.Pt(0, 0))

	assert.Equal(t, "Tree{Region:[-1,-2,3,4],Bucket:2,Depth:5,Items:1}", tree.String())
}
