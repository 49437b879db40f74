// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/collide/base/iox/jsonx"
	"cogentcore.org/collide/base/iox/tomlx"
	"cogentcore.org/collide/base/iox/yamlx"
)

// Formats are the supported scene file encodings.
type Formats int32

// The supported scene file encodings
const (
	None Formats = iota
	TOML
	YAML
	JSON
)

var formatNames = [...]string{"None", "TOML", "YAML", "JSON"}

func (f Formats) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Formats(%d)", int32(f))
	}
	return formatNames[f]
}

// ExtToFormat returns a Format based on a filename extension,
// which can start with a . or not
func ExtToFormat(ext string) (Formats, error) {
	if len(ext) == 0 {
		return None, errors.New("ExtToFormat: ext is empty")
	}
	if ext[0] == '.' {
		ext = ext[1:]
	}
	ext = strings.ToLower(ext)
	switch ext {
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	}
	return None, fmt.Errorf("ExtToFormat: extension %q not recognized", ext)
}

// decode reads v from the given file, with the format inferred
// from the filename.
func decode(v any, filename string) error {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	switch f {
	case TOML:
		return tomlx.Open(v, filename)
	case YAML:
		return yamlx.Open(v, filename)
	default:
		return jsonx.Open(v, filename)
	}
}

// encode writes v to the given file, with the format inferred
// from the filename.
func encode(v any, filename string) error {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	switch f {
	case TOML:
		return tomlx.Save(v, filename)
	case YAML:
		return yamlx.Save(v, filename)
	default:
		return jsonx.Save(v, filename)
	}
}
