// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"cogentcore.org/collide/base/tolassert"
	"cogentcore.org/collide/collide"
	"cogentcore.org/collide/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slideScene() *Scene {
	crate := &Shape{Kind: collide.KindAABB, Min: Vec{-1, -1, -1}, Max: Vec{1, 1, 1}}
	return &Scene{
		Version: Version,
		Frames:  3,
		Camera:  Camera{Position: Vec{0, 0, 10}},
		Entities: []Entity{
			{Name: "a", Shape: crate},
			{Name: "b", Shape: crate, Placement: Placement{Position: Vec{3, 0, 0}}, Velocity: Vec{-1, 0, 0}},
			{Name: "ball", Shape: &Shape{Kind: collide.KindSphere, Center: Vec{0, 5, 0}, Radius: 0.5}},
			{Name: "pillar", Shape: &Shape{Kind: collide.KindCylinder, Radius: 1, Length: 2}, Placement: Placement{Position: Vec{0, 0, -5000}}},
		},
		Rays: []Ray{
			{Name: "down", Origin: Vec{0, 10, 0}, Direction: Vec{0, -1, 0}},
			{Name: "center", Screen: []float32{400, 300}},
			{Name: "away", Origin: Vec{0, 10, 0}, Direction: Vec{0, 1, 0}},
		},
	}
}

func TestWorldRun(t *testing.T) {
	w, err := NewWorld(context.Background(), slideScene())
	require.NoError(t, err)
	require.NoError(t, w.Wait())
	require.Len(t, w.Bodies, 4)

	rep, err := w.Run(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, rep.Frames, 3)
	assert.Equal(t, 3, w.Frame)

	f0, f1, f2 := rep.Frames[0], rep.Frames[1], rep.Frames[2]
	assert.Empty(t, f0.Contacts, "b starts at 3")
	assert.Empty(t, f1.Contacts, "touching boxes do not overlap")
	require.Len(t, f2.Contacts, 1)
	assert.Equal(t, "a", f2.Contacts[0].A)
	assert.Equal(t, "b", f2.Contacts[0].B)
	tolassert.Equal(t, -1, f2.Contacts[0].Result.Gap)
	assert.Equal(t, 1, rep.Contacts())

	for _, fr := range rep.Frames {
		assert.Equal(t, 3, fr.Unsupported, "the cylinder has no pair tests")
		assert.Equal(t, 4, fr.Drawn)
		assert.Empty(t, fr.Pending)
		assert.Contains(t, fr.Visible, "a")
		assert.NotContains(t, fr.Visible, "ball")
		assert.NotContains(t, fr.Visible, "pillar")

		require.Len(t, fr.Hits, 3)
		assert.Equal(t, "ball", fr.Hits[0].Body)
		tolassert.Equal(t, 4.5, fr.Hits[0].Distance)
		assert.Equal(t, "a", fr.Hits[1].Body)
		tolassert.Equal(t, 9, fr.Hits[1].Distance)
		assert.Equal(t, "", fr.Hits[2].Body)
		assert.False(t, fr.Hits[2].Hit)
	}

	b := w.Body("b")
	require.NotNil(t, b)
	assert.Equal(t, math32.Vec3(1, 0, 0), b.Transform.Position)
	assert.Equal(t, math32.Vec3(0, -1, -1), b.Collider().Bounds().Min)
	assert.Nil(t, w.Body("nobody"))
	assert.Equal(t, 0, w.Registry.Count(), "the registry is drained every frame")
}

func TestWorldRunCanceled(t *testing.T) {
	w, err := NewWorld(context.Background(), slideScene())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep, err := w.Run(ctx, 5)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rep.Frames)
}

func TestWorldErrors(t *testing.T) {
	_, err := NewWorld(context.Background(), nil)
	assert.ErrorIs(t, err, collide.ErrInvalidArgument)

	sc := slideScene()
	sc.Rays = []Ray{{Name: "zero"}}
	_, err = NewWorld(context.Background(), sc)
	assert.ErrorIs(t, err, collide.ErrDegenerateRay)

	sc = slideScene()
	sc.Entities[0].Prototype = "missing"
	_, err = NewWorld(context.Background(), sc)
	assert.Error(t, err)
}

func TestWorldMeshes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cube.obj", cubeOBJ)
	sc := &Scene{
		Version: Version,
		Dir:     dir,
		Entities: []Entity{
			{Name: "cube", Mesh: &MeshSource{File: "cube.obj"}, Placement: Placement{Position: Vec{5, 0, 0}, Scale: 2}},
			{Name: "inline", Mesh: &MeshSource{Vertices: []float32{0, 0, 0, 2, 0, 0, 0, 2, 0}, Kind: collide.KindSphere}},
			{Name: "lost", Mesh: &MeshSource{File: "lost.obj"}},
		},
	}
	require.NoError(t, sc.Validate())
	w, err := NewWorld(context.Background(), sc)
	require.NoError(t, err)
	assert.Error(t, w.Wait(), "lost.obj does not exist")

	fr, err := w.Step()
	require.NoError(t, err)
	assert.Equal(t, []string{"lost"}, fr.Pending)
	assert.Equal(t, 2, fr.Drawn)

	cube := w.Body("cube").Collider()
	require.NotNil(t, cube)
	assert.Equal(t, collide.KindAABB, cube.Kind())
	assert.Equal(t, math32.B3(3, -2, -2, 7, 2, 2), cube.Bounds())
	assert.Equal(t, collide.KindSphere, w.Body("inline").Collider().Kind())
	assert.Nil(t, w.Body("lost").Collider())
}

func TestReportText(t *testing.T) {
	w, err := NewWorld(context.Background(), slideScene())
	require.NoError(t, err)
	rep, err := w.Run(context.Background(), 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, "contact")
	assert.Contains(t, out, "a b: overlapping")
	assert.Contains(t, out, "ray away: miss")
	assert.Contains(t, out, "3 unsupported pairs")
	assert.True(t, strings.HasSuffix(out, "3 frames, 1 contacts\n"))

	buf.Reset()
	require.NoError(t, rep.WriteJSON(&buf))
	assert.Contains(t, buf.String(), `"contacts"`)
	assert.Contains(t, buf.String(), `"ray": "down"`)
}
