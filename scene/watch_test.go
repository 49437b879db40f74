// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"context"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	fn := writeFile(t, dir, "s.toml", tomlScene)
	writeFile(t, dir, "other.toml", "")

	ctx, cancel := context.WithCancel(context.Background())
	var runs atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, fn, func() error {
			runs.Add(1)
			_, err := Open(fn)
			return err
		})
	}()

	require.Eventually(t, func() bool { return runs.Load() == 1 }, 5*time.Second, 10*time.Millisecond)
	require.NoError(t, os.WriteFile(fn, []byte(tomlScene+"\n"), 0o644))
	require.Eventually(t, func() bool { return runs.Load() >= 2 }, 5*time.Second, 10*time.Millisecond)

	n := runs.Load()
	require.NoError(t, os.WriteFile(dir+"/other.toml", []byte("x = 1\n"), 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, n, runs.Load(), "other files are ignored")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatchMissingDir(t *testing.T) {
	err := Watch(context.Background(), "/does/not/exist/s.toml", func() error { return nil })
	assert.Error(t, err)
}
