// Copyright 2023 The spatialtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package spatialtree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	assert.Equal(t, Config{Bucket: 4, Depth: 6}, DefaultConfig())
}

func TestLoadConfig(t *testing.T) {
	t.Run("NilReader", func(t *testing.T) {
		assert.PanicsWithValue(t, "spatialtree: nil reader", func() {
			_, _ = LoadConfig(nil)
		})
	})

	testCases := []struct {
		name     string
		input    string
		expected Config
	}{
		{"Empty", "", DefaultConfig()},
		{"Both", "bucket: 8\ndepth: 10\n", Config{Bucket: 8, Depth: 10}},
		{"BucketOnly", "bucket: 8", Config{Bucket: 8, Depth: DefaultDepth}},
		{"DepthOnly", "depth: 0", Config{Bucket: DefaultBucket, Depth: 0}},
		{"Flow", "{bucket: 1, depth: 2}", Config{Bucket: 1, Depth: 2}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual, err := LoadConfig(strings.NewReader(testCase.input))

			assert.NoError(t, err)
			assert.Equal(t, testCase.expected, actual)
		})
	}

	errorCases := []struct {
		name  string
		input string
	}{
		{"UnknownField", "bucket: 8\nwidth: 3\n"},
		{"Negative", "bucket: -1"},
		{"NotNumber", "depth: deep"},
		{"Sequence", "- 1\n- 2\n"},
		{"Malformed", "bucket: [1"},
	}

	for _, errorCase := range errorCases {
		t.Run(errorCase.name, func(t *testing.T) {
			actual, err := LoadConfig(strings.NewReader(errorCase.input))

			require.Error(t, err)
			assert.True(t, strings.HasPrefix(err.Error(), "spatialtree: failed to load config: "), err.Error())
			assert.Equal(t, Config{}, actual)
		})
	}
}
