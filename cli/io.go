// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"log/slog"
	"reflect"

	"cogentcore.org/collide/base/fsx"
	"cogentcore.org/collide/base/iox/tomlx"
	"cogentcore.org/collide/base/reflectx"
)

// includer is implemented by config types that can include other
// config files, listed in an Includes field.
type includer interface {
	IncludesPtr() *[]string
}

// openWithIncludes reads the config struct from the given config file
// using the given options, looking on [Options.IncludePaths] for the file.
// It opens any Includes specified in the given config file in the natural
// include order so that includers overwrite included settings.
// Is equivalent to Open if there are no Includes. It returns an error if
// any of the include files cannot be found on [Options.IncludePaths].
func openWithIncludes(opts *Options, cfg any, file string) error {
	files := fsx.FindFilesOnPaths(opts.IncludePaths, file)
	if len(files) == 0 {
		return fmt.Errorf("OpenWithIncludes: no files found for %q", file)
	}
	err := tomlx.OpenFiles(cfg, files...)
	if err != nil {
		return err
	}
	incfg, ok := cfg.(includer)
	if !ok {
		return err
	}
	incs, err := includeStack(opts, incfg)
	ni := len(incs)
	if ni == 0 {
		return err
	}
	for i := ni - 1; i >= 0; i-- {
		inc := incs[i]
		err = tomlx.OpenFiles(cfg, fsx.FindFilesOnPaths(opts.IncludePaths, inc)...)
		if err != nil {
			slog.Error("cli: opening include file", "file", inc, "err", err)
		}
	}
	// reopen original
	err = tomlx.OpenFiles(cfg, files...)
	if err != nil {
		return err
	}
	*incfg.IncludesPtr() = incs
	return err
}

// includeStack returns the stack of include files in the order in which
// they should be opened, most deeply included last, with each file
// listed only once.
func includeStack(opts *Options, cfg includer) ([]string, error) {
	var stack []string
	seen := map[string]bool{}
	var visit func(incs []string) error
	visit = func(incs []string) error {
		for _, inc := range incs {
			if seen[inc] {
				continue
			}
			seen[inc] = true
			stack = append(stack, inc)
			files := fsx.FindFilesOnPaths(opts.IncludePaths, inc)
			if len(files) == 0 {
				return fmt.Errorf("cli: include file %q not found on paths %v", inc, opts.IncludePaths)
			}
			clone := reflect.New(reflectx.NonPointerType(reflect.TypeOf(cfg))).Interface().(includer)
			if err := tomlx.OpenFiles(clone, files...); err != nil {
				return err
			}
			if err := visit(*clone.IncludesPtr()); err != nil {
				return err
			}
		}
		return nil
	}
	err := visit(*cfg.IncludesPtr())
	return stack, err
}
