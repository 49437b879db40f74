// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"cogentcore.org/collide/base/fsx"
	"golang.org/x/sync/errgroup"
)

// asyncMesh is a [collide.Mesh] whose vertices are loaded by a goroutine.
// The vertices are written before the loaded flag is published,
// and only read after it is observed.
type asyncMesh struct {
	verts  []float32
	loaded atomic.Bool
}

func (m *asyncMesh) IsLoaded() bool { return m.loaded.Load() }

func (m *asyncMesh) Vertices() []float32 { return m.verts }

func (m *asyncMesh) publish(verts []float32) {
	m.verts = verts
	m.loaded.Store(true)
}

// meshPath returns the OBJ file path of the source, relative to dir.
func meshPath(dir, file string) string {
	file = fsx.ExpandHome(file)
	if filepath.IsAbs(file) || dir == "" {
		return file
	}
	return filepath.Join(dir, file)
}

// loadMesh starts loading the mesh source in the group, or publishes
// inline vertices immediately.
func loadMesh(ctx context.Context, g *errgroup.Group, dir, name string, src *MeshSource) *asyncMesh {
	m := &asyncMesh{}
	if src.File == "" {
		m.publish(src.Vertices)
		return m
	}
	path := meshPath(dir, src.File)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		verts, err := OpenOBJ(path)
		if err != nil {
			slog.Error("loading mesh", "entity", name, "file", path, "err", err)
			return err
		}
		slog.Debug("loaded mesh", "entity", name, "file", path, "vertices", len(verts)/3)
		m.publish(verts)
		return nil
	})
	return m
}
