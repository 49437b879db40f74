// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type level int

func (l *level) UnmarshalText(b []byte) error {
	*l = level(len(b))
	return nil
}

type subConfig struct {
	Width  float32 `default:"800"`
	Height float32 `default:"600"`
}

type testConfig struct {
	Name    string        `default:"scene"`
	Frames  int           `default:"10"`
	Verbose bool          `default:"true"`
	Delay   time.Duration `default:"20ms"`
	Tags    []string      `default:"a, b"`
	Level   level         `default:"abc"`
	View    subConfig
	subConfig
	Untagged string
	hidden   int
}

func TestSetFromDefaultTags(t *testing.T) {
	cfg := &testConfig{Untagged: "keep"}
	require.NoError(t, SetFromDefaultTags(cfg))
	assert.Equal(t, "scene", cfg.Name)
	assert.Equal(t, 10, cfg.Frames)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 20*time.Millisecond, cfg.Delay)
	assert.Equal(t, []string{"a", "b"}, cfg.Tags)
	assert.Equal(t, level(3), cfg.Level)
	assert.Equal(t, float32(800), cfg.View.Width)
	assert.Equal(t, float32(600), cfg.subConfig.Height)
	assert.Equal(t, "keep", cfg.Untagged)

	assert.NoError(t, SetFromDefaultTags(nil))
	assert.Error(t, SetFromDefaultTags(&struct {
		N int `default:"x"`
	}{}))
}

func TestWalkFields(t *testing.T) {
	var paths []string
	err := WalkFields(&testConfig{}, func(path string, field reflect.StructField, value reflect.Value) error {
		paths = append(paths, path)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Name Frames Verbose Delay Tags Level View.Width View.Height Width Height Untagged", strings.Join(paths, " "))

	assert.Error(t, WalkFields(3, nil))
}
