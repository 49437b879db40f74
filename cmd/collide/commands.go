// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/collide/base/fsx"
	"cogentcore.org/collide/cli"
	"cogentcore.org/collide/collide/hull"
	"cogentcore.org/collide/logx"
	"cogentcore.org/collide/scene"
	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
)

// app holds the state shared by the commands of one invocation.
type app struct {
	out io.Writer
	ctx context.Context
}

type runConfig struct {
	File   string `posarg:"0" required:"+"`
	Frames int    `desc:"number of frames to simulate; 0 uses the frame count of the scene"`
	Watch  bool   `desc:"run the scene again every time the file changes"`
	NoWait bool   `desc:"start simulating before the mesh files are loaded"`
	JSON   bool   `desc:"write the report as JSON"`
}

type hullConfig struct {
	File      string      `posarg:"0" required:"+"`
	Plane     hull.Planes `default:"XY" desc:"projection plane: XY, XZ or YZ"`
	Recursive bool        `desc:"use the recursive quickhull"`
}

type batchConfig struct {
	File string `posarg:"0" required:"+"`
}

// newRoot returns the root command with all subcommands.
func newRoot(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "collide",
		Short:         "collide runs collision scenes and builds convex hulls",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	var vv, v, q bool
	root.PersistentFlags().BoolVar(&vv, "vv", false, "debug output")
	root.PersistentFlags().BoolVarP(&v, "verbose", "v", false, "info output")
	root.PersistentFlags().BoolVarP(&q, "quiet", "q", false, "only errors")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logx.UserLevel = logx.LevelFromFlags(vv, v, q)
		a.ctx = cmd.Context()
	}

	opts := cli.DefaultOptions()
	root.AddCommand(
		cli.Command(opts, "run", "simulate a scene file and print a report", &runConfig{}, a.run),
		cli.Command(opts, "hull", "print the convex hull of an OBJ file", &hullConfig{}, a.hull),
		cli.Command(opts, "batch", "run the commands in a file, one per line", &batchConfig{}, a.batch),
	)
	return root
}

func (a *app) context() context.Context {
	if a.ctx == nil {
		return context.Background()
	}
	return a.ctx
}

func (a *app) run(cfg *runConfig) error {
	file := fsx.ExpandHome(cfg.File)
	once := func() error {
		sc, err := scene.Open(file)
		if err != nil {
			return err
		}
		w, err := scene.NewWorld(a.context(), sc)
		if err != nil {
			return err
		}
		if !cfg.NoWait {
			if err := w.Wait(); err != nil {
				return err
			}
		}
		rep, err := w.Run(a.context(), cfg.Frames)
		if err != nil {
			return err
		}
		if cfg.JSON {
			return rep.WriteJSON(a.out)
		}
		return rep.WriteText(a.out)
	}
	if cfg.Watch {
		return scene.Watch(a.context(), file, once)
	}
	return once()
}

func (a *app) hull(cfg *hullConfig) error {
	verts, err := scene.OpenOBJ(fsx.ExpandHome(cfg.File))
	if err != nil {
		return err
	}
	strategy := hull.Iterative
	if cfg.Recursive {
		strategy = hull.Recursive
	}
	h := hull.FromVertices(verts, hull.WithPlane(cfg.Plane), hull.WithStrategy(strategy))
	fmt.Fprintf(a.out, "%d vertices, %d hull points in %v, area %g\n", len(verts)/3, h.Len(), h.Plane, h.Area())
	for _, p := range h.Points {
		fmt.Fprintf(a.out, "%g %g %g\n", p.X, p.Y, p.Z)
	}
	return nil
}

func (a *app) batch(cfg *batchConfig) error {
	f, err := os.Open(fsx.ExpandHome(cfg.File))
	if err != nil {
		return err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args, err := shellwords.Parse(line)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", cfg.File, ln, err)
		}
		if len(args) == 0 {
			continue
		}
		root := newRoot(a)
		// flags may come before the command name, so let cobra find it
		if cmd, _, err := root.Find(args); err == nil && cmd.Name() == "batch" {
			return fmt.Errorf("%s:%d: batch files cannot run batch", cfg.File, ln)
		}
		slog.Info("batch", "line", ln, "command", line)
		root.SetArgs(args)
		root.SetOut(a.out)
		if err := root.ExecuteContext(a.context()); err != nil {
			return fmt.Errorf("%s:%d: %w", cfg.File, ln, err)
		}
	}
	return sc.Err()
}
