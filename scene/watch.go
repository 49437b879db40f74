// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch calls fun for the given file now and then again every time the
// file is written or replaced, until ctx is done. The directory of the
// file is watched, so that editors that replace the file are seen.
// Errors from fun are logged and do not stop watching.
func Watch(ctx context.Context, filename string, fun func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	if err := fun(); err != nil {
		slog.Error("scene watch", "file", filename, "err", err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			slog.Info("scene changed", "file", filename, "op", event.Op)
			if err := fun(); err != nil {
				slog.Error("scene watch", "file", filename, "err", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("scene watcher error", "err", err)
		}
	}
}
