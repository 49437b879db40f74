// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type viewConfig struct {
	Width  float32 `default:"800"`
	Height float32 `default:"600"`
}

type runConfig struct {
	Includes []string `flag:"-"`
	File     string   `posarg:"0" required:"+"`
	Frames   int      `default:"10" desc:"number of frames"`
	NoWait   bool
	Name     string `default:"demo"`
	View     viewConfig
}

func (rc *runConfig) IncludesPtr() *[]string { return &rc.Includes }

func TestFlagName(t *testing.T) {
	assert.Equal(t, "frames", FlagName("Frames"))
	assert.Equal(t, "no-wait", FlagName("NoWait"))
	assert.Equal(t, "view-width", FlagName("View.Width"))
}

func TestCommand(t *testing.T) {
	var got *runConfig
	cmd := Command(DefaultOptions(), "run", "run a scene", &runConfig{}, func(cfg *runConfig) error {
		got = cfg
		return nil
	})
	assert.Equal(t, "run <file>", cmd.Use)
	cmd.SetArgs([]string{"scene.toml", "--frames", "3", "--no-wait", "--view-width=1024"})
	require.NoError(t, cmd.Execute())
	require.NotNil(t, got)
	assert.Equal(t, "scene.toml", got.File)
	assert.Equal(t, 3, got.Frames)
	assert.True(t, got.NoWait)
	assert.Equal(t, "demo", got.Name)
	assert.Equal(t, float32(1024), got.View.Width)
	assert.Equal(t, float32(600), got.View.Height)

	cmd = Command(DefaultOptions(), "run", "", &runConfig{}, func(cfg *runConfig) error { return nil })
	cmd.SetArgs([]string{})
	assert.Error(t, cmd.Execute(), "the file argument is required")

	cmd = Command(DefaultOptions(), "run", "", &runConfig{}, func(cfg *runConfig) error { return nil })
	cmd.SetArgs([]string{"a", "--frames", "x"})
	assert.Error(t, cmd.Execute())
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.toml"), []byte("Name = \"base\"\nFrames = 5\n\n[View]\nHeight = 100.0\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.toml"), []byte("Includes = [\"base.toml\"]\nFrames = 7\n"), 0o644))

	var got *runConfig
	opts := &Options{IncludePaths: []string{dir}}
	cmd := Command(opts, "run", "", &runConfig{}, func(cfg *runConfig) error {
		got = cfg
		return nil
	})
	cmd.SetArgs([]string{"x.toml", "--config", "main.toml", "--name", "flag"})
	require.NoError(t, cmd.Execute())
	require.NotNil(t, got)
	assert.Equal(t, 7, got.Frames, "the includer overrides its include")
	assert.Equal(t, "flag", got.Name, "flags override the config file")
	assert.Equal(t, float32(100), got.View.Height)
	assert.Equal(t, []string{"base.toml"}, got.Includes)

	cmd = Command(opts, "run", "", &runConfig{}, func(cfg *runConfig) error { return nil })
	cmd.SetArgs([]string{"x.toml", "--config", "missing.toml"})
	assert.Error(t, cmd.Execute())
}
