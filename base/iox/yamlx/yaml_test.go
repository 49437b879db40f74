// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Name   string `yaml:"name"`
	Frames int    `yaml:"frames"`
}

func TestReadWrite(t *testing.T) {
	in := &settings{Name: "demo", Frames: 4}
	b, err := WriteBytes(in)
	require.NoError(t, err)
	assert.Contains(t, string(b), "name: demo")

	out := &settings{}
	require.NoError(t, ReadBytes(out, b))
	assert.Equal(t, in, out)
}

func TestUnknownField(t *testing.T) {
	s := &settings{}
	err := ReadBytes(s, []byte("name: x\nframez: 3\n"))
	assert.Error(t, err)
}
