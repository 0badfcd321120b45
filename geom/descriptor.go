// Copyright 2023 The spatialtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geom

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a descriptor leniently. A mapping node fills in
// whichever of x, y, w, h and r hold numeric values, ignoring all other
// keys and values. Any other kind of node yields an empty descriptor,
// which classifies as Invalid.
func (d *Descriptor) UnmarshalYAML(value *yaml.Node) error {
	*d = Descriptor{}
	if value.Kind != yaml.MappingNode {
		return nil
	}
	var m map[string]interface{}
	if err := value.Decode(&m); err != nil {
		// Malformed mappings decode to an empty descriptor.
		return nil
	}
	d.X = field(m, "x")
	d.Y = field(m, "y")
	d.W = field(m, "w")
	d.H = field(m, "h")
	d.R = field(m, "r")
	return nil
}

// DecodeDescriptors reads a YAML document holding a sequence of shape
// descriptors, for example:
//
//	[{x: 0, y: 0, w: 10, h: 5}, {x: 3, y: 4, r: 2}, {x: 1, y: 1}]
//
// Entries are decoded leniently (see Descriptor.UnmarshalYAML), so a
// malformed entry produces a descriptor which classifies as Invalid
// rather than an error. An error is returned only if the document is
// not valid YAML or is not a sequence. An empty document yields no
// descriptors and no error.
func DecodeDescriptors(r io.Reader) ([]Descriptor, error) {
	if r == nil {
		fmtPanic("nil reader")
	}

	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); errors.Is(err, io.EOF) {
		return nil, nil
	} else if err != nil {
		return nil, wrapErr("failed to decode descriptors", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, textErr("descriptors document must be a sequence")
	}

	ds := make([]Descriptor, len(root.Content))
	for i, n := range root.Content {
		if err := n.Decode(&ds[i]); err != nil {
			return nil, wrapErr("failed to decode descriptor %d", err, i)
		}
	}
	return ds, nil
}
