// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"
)

// UserLeveler is a [slog.Leveler] that always reports the current [UserLevel],
// so that handlers follow later changes to it.
type UserLeveler struct{}

func (UserLeveler) Level() slog.Level {
	return UserLevel
}

// NewHandler returns a text [slog.Handler] writing to w, filtered by
// [UserLevel], with the level names colored.
func NewHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: UserLeveler{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey && len(groups) == 0 {
				if lv, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(LevelColor(lv, lv.String()))
				}
			}
			return a
		},
	})
}

// SetDefaultLogger sets the default logger to one that writes to
// [os.Stderr] through [NewHandler].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

func init() {
	if UseColor {
		InitColor()
	}
}
