// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"log/slog"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in log messages. It is on by default.
var UseColor = true

// colors for each level, chosen by InitColor for the terminal background.
var (
	debugColor = "#6c6c6c"
	infoColor  = "#0070c0"
	warnColor  = "#b08000"
	errorColor = "#d02020"
)

// InitColor sets up the terminal environment for color output.
// It is called automatically in an init function if UseColor is set
// to true. However, if you call a system command (ls, cp, etc), you
// need to call this function again.
func InitColor() {
	out := termenv.DefaultOutput()
	if out.Profile == termenv.Ascii {
		UseColor = false
		return
	}
	if !out.HasDarkBackground() {
		return
	}
	debugColor = "#a8a8a8"
	infoColor = "#5fafff"
	warnColor = "#ffd75f"
	errorColor = "#ff5f5f"
}

// ApplyColor applies the given hex color to the given string
// and returns the resulting string. If [UseColor] is set
// to false, it just returns the string it was passed.
func ApplyColor(hex string, str string) string {
	if !UseColor {
		return str
	}
	return termenv.String(str).Foreground(termenv.RGBColor(hex)).String()
}

// LevelColor applies the color associated with the given level to the
// given string and returns the resulting string.
func LevelColor(level slog.Level, str string) string {
	switch {
	case level >= slog.LevelError:
		return ErrorColor(str)
	case level >= slog.LevelWarn:
		return WarnColor(str)
	case level >= slog.LevelInfo:
		return InfoColor(str)
	}
	return DebugColor(str)
}

// DebugColor applies the color associated with the debug level.
func DebugColor(str string) string {
	return ApplyColor(debugColor, str)
}

// InfoColor applies the color associated with the info level.
func InfoColor(str string) string {
	return ApplyColor(infoColor, str)
}

// WarnColor applies the color associated with the warn level.
func WarnColor(str string) string {
	return ApplyColor(warnColor, str)
}

// ErrorColor applies the color associated with the error level.
func ErrorColor(str string) string {
	return ApplyColor(errorColor, str)
}

// SuccessColor applies a green color for successful outcomes.
func SuccessColor(str string) string {
	return ApplyColor("#20a020", str)
}

// CmdColor applies a bold color for command names.
func CmdColor(str string) string {
	if !UseColor {
		return str
	}
	return termenv.String(str).Bold().String()
}
