// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli generates command line commands from config structs.
// Each exported field of a config struct becomes a flag, named by the
// `flag:` tag or the kebab-case field path, documented by the `desc:`
// tag and initialized from the `default:` tag. Fields with a `posarg:`
// tag index are set from positional arguments instead, and a TOML
// config file given with -config is applied before the flags.
package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"cogentcore.org/collide/base/reflectx"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Options are the options passed to [Command].
type Options struct {

	// IncludePaths is the list of directories searched for
	// config files and their includes.
	IncludePaths []string

	// NoConfigFlag disables the -config flag.
	NoConfigFlag bool
}

// DefaultOptions returns default options that search the
// current directory for config files.
func DefaultOptions() *Options {
	return &Options{IncludePaths: []string{"."}}
}

// fieldValue is a [pflag.Value] bound to a config struct field.
type fieldValue struct {
	value reflect.Value
	raw   string
	set   bool
}

func (fv *fieldValue) String() string {
	if !fv.value.IsValid() {
		return ""
	}
	return fmt.Sprint(fv.value.Interface())
}

func (fv *fieldValue) Set(s string) error {
	fv.raw, fv.set = s, true
	return reflectx.SetString(fv.value, s)
}

func (fv *fieldValue) Type() string {
	if fv.value.Kind() == reflect.Bool {
		return "bool"
	}
	return fv.value.Type().String()
}

// binding records the flags and positional arguments of a config struct.
type binding struct {
	flags    []*fieldValue
	posargs  []reflect.Value
	argNames []string
	minArgs  int
}

// FlagName returns the flag name for the given dotted field path:
// CamelCase words are separated by dashes and lowercased.
func FlagName(path string) string {
	var b strings.Builder
	prev := rune(0)
	for _, r := range path {
		switch {
		case r == '.':
			b.WriteByte('-')
		case unicode.IsUpper(r):
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}

// bindFlags adds a flag to fs for each field of cfg.
func bindFlags(fs *pflag.FlagSet, cfg any) (*binding, error) {
	bd := &binding{}
	pos := map[int]reflect.Value{}
	names := map[int]string{}
	err := reflectx.WalkFields(cfg, func(path string, field reflect.StructField, value reflect.Value) error {
		if pa, ok := field.Tag.Lookup("posarg"); ok {
			idx, err := strconv.Atoi(pa)
			if err != nil {
				return fmt.Errorf("cli: field %s: invalid posarg index %q", path, pa)
			}
			pos[idx] = value
			names[idx] = FlagName(path)
			if field.Tag.Get("required") == "+" {
				bd.minArgs = max(bd.minArgs, idx+1)
			}
			return nil
		}
		name, ok := field.Tag.Lookup("flag")
		if name == "-" {
			return nil
		}
		if !ok {
			name = FlagName(path)
		}
		fv := &fieldValue{value: value}
		fs.Var(fv, name, field.Tag.Get("desc"))
		if value.Kind() == reflect.Bool {
			fs.Lookup(name).NoOptDefVal = "true"
		}
		bd.flags = append(bd.flags, fv)
		return nil
	})
	if err != nil {
		return nil, err
	}
	bd.posargs = make([]reflect.Value, len(pos))
	for i := range bd.posargs {
		v, ok := pos[i]
		if !ok {
			return nil, fmt.Errorf("cli: missing posarg index %d", i)
		}
		bd.posargs[i] = v
		bd.argNames = append(bd.argNames, names[i])
	}
	return bd, nil
}

// apply sets the positional arguments and reapplies the flags that
// were given on the command line, so that they take precedence over
// any config file.
func (bd *binding) apply(args []string) error {
	for _, fv := range bd.flags {
		if !fv.set {
			continue
		}
		if err := reflectx.SetString(fv.value, fv.raw); err != nil {
			return err
		}
	}
	for i, arg := range args {
		if i >= len(bd.posargs) {
			break
		}
		if err := reflectx.SetString(bd.posargs[i], arg); err != nil {
			return fmt.Errorf("cli: argument %d %q: %w", i, arg, err)
		}
	}
	return nil
}

// Command returns a new [cobra.Command] with the given name and doc
// that runs fun with cfg after it has been set from its `default:` tags,
// the optional config file, the flags and the positional arguments,
// in that order.
func Command[T any](opts *Options, name, doc string, cfg T, fun func(cfg T) error) *cobra.Command {
	if opts == nil {
		opts = DefaultOptions()
	}
	cmd := &cobra.Command{
		Use:           name,
		Short:         doc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	SetFromDefaults(cfg)
	bd, err := bindFlags(cmd.Flags(), cfg)
	if err != nil {
		cmd.RunE = func(*cobra.Command, []string) error { return err }
		return cmd
	}
	var cfgFile string
	if !opts.NoConfigFlag {
		cmd.Flags().StringVar(&cfgFile, "config", "", "TOML config file to apply before the flags")
	}
	if len(bd.posargs) > 0 {
		cmd.Args = cobra.RangeArgs(bd.minArgs, len(bd.posargs))
		cmd.Use += " <" + strings.Join(bd.argNames, "> <") + ">"
	} else {
		cmd.Args = cobra.NoArgs
	}
	cmd.RunE = func(c *cobra.Command, args []string) error {
		if cfgFile != "" {
			if err := openWithIncludes(opts, cfg, cfgFile); err != nil {
				return err
			}
		}
		if err := bd.apply(args); err != nil {
			return err
		}
		return fun(cfg)
	}
	return cmd
}
