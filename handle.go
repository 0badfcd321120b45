// Copyright 2023 The spatialtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package spatialtree

import "github.com/google/uuid"

// Handle is the opaque identifier a Tree assigns to an item when the
// item is first inserted. Nodes track membership by Handle, never by
// the item value itself. A Handle is never reused, so a handle returned
// for an item which is later removed and inserted again differs from
// the first one.
type Handle uuid.UUID

// Nil is the zero Handle, which is never assigned to an item.
var Nil Handle

func newHandle() Handle {
	return Handle(uuid.New())
}

// String returns the handle in the canonical UUID form.
func (h Handle) String() string {
	return uuid.UUID(h).String()
}
