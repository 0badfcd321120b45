// Copyright 2023 The spatialtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package spatialtree

import "github.com/sirupsen/logrus"

// An Option configures a Tree at construction time.
type Option func(*Tree)

// WithBucket sets the maximum number of items a node holds before it
// subdivides. The default is DefaultBucket.
func WithBucket(bucket uint) Option {
	return func(t *Tree) {
		t.s.bucket = bucket
	}
}

// WithDepth sets the depth budget, i.e. the number of times the root
// may be recursively subdivided. A depth of zero makes the root a
// permanent leaf. The default is DefaultDepth.
func WithDepth(depth uint) Option {
	return func(t *Tree) {
		t.depth = depth
	}
}

// WithConfig applies the bucket size and depth budget from c.
func WithConfig(c Config) Option {
	return func(t *Tree) {
		t.s.bucket = c.Bucket
		t.depth = c.Depth
	}
}

// WithLogger sets the logger which receives structural events (node
// expansion and collapse at debug level, rejected items at trace level).
// The default is logrus.StandardLogger(). A nil logger is ignored.
func WithLogger(log logrus.FieldLogger) Option {
	return func(t *Tree) {
		if log != nil {
			t.s.log = log
		}
	}
}

// settings are shared, read-only, by every node of a Tree.
type settings struct {
	bucket uint
	log    logrus.FieldLogger
}
