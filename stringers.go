// Copyright 2023 The spatialtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package spatialtree

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns the region formatted as [X,Y,W,H].
func (r Region) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, f := range [...]float64{r.X, r.Y, r.W, r.H} {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(f, 'g', 8, 64))
	}
	b.WriteByte(']')
	return b.String()
}

// String returns a summary description of the tree.
func (t *Tree) String() string {
	return fmt.Sprintf("Tree{Region:%s,Bucket:%d,Depth:%d,Items:%d}", t.root.bounds, t.s.bucket, t.depth, len(t.entries))
}

// String returns a summary description of the result.
func (r Result) String() string {
	return fmt.Sprintf("Result{%s,Handle:%s}", r.Shape, r.Handle)
}
