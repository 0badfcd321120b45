// Copyright 2023 The spatialtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package spatialtree

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultBucket is the default maximum number of items a node holds
	// before it subdivides.
	DefaultBucket = 4
	// DefaultDepth is the default depth budget of a Tree.
	DefaultDepth = 6
)

// Config holds the tunable parameters of a Tree. It can be loaded from
// YAML, for example:
//
//	bucket: 8
//	depth: 10
type Config struct {
	// Bucket is the maximum number of items a node holds before it
	// subdivides.
	Bucket uint `yaml:"bucket"`
	// Depth is the number of times the root may be recursively
	// subdivided.
	Depth uint `yaml:"depth"`
}

// DefaultConfig returns the Config used when no options are given.
func DefaultConfig() Config {
	return Config{
		Bucket: DefaultBucket,
		Depth:  DefaultDepth,
	}
}

// LoadConfig reads a Config from a YAML document. Fields missing from
// the document keep their default values, and an empty document yields
// DefaultConfig. Unknown fields and negative values are errors.
func LoadConfig(r io.Reader) (Config, error) {
	if r == nil {
		textPanic("nil reader")
	}

	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); errors.Is(err, io.EOF) {
		return DefaultConfig(), nil
	} else if err != nil {
		return Config{}, wrapErr("failed to load config", err)
	}
	return c, nil
}
