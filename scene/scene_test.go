// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/collide/collide"
	"cogentcore.org/collide/collide/hull"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlScene = `
version = "1.2.0"
frames = 3

[camera]
position = [0, 0, 10]

[prototypes.crate]
shape = { kind = "AABB", min = [-1, -1, -1], max = [1, 1, 1] }

[[entities]]
name = "a"
prototype = "crate"

[[entities]]
name = "b"
prototype = "crate"
velocity = [-1, 0, 0]

[entities.placement]
position = [3, 0, 0]

[[entities]]
name = "ball"

[entities.shape]
kind = "sphere"
center = [0, 5, 0]
radius = 0.5

[[rays]]
name = "down"
origin = [0, 10, 0]
direction = [0, -1, 0]
`

const yamlScene = `
version: 1.2.0
frames: 3
camera:
  position: [0, 0, 10]
prototypes:
  crate:
    shape: {kind: AABB, min: [-1, -1, -1], max: [1, 1, 1]}
entities:
  - name: a
    prototype: crate
  - name: b
    prototype: crate
    velocity: [-1, 0, 0]
    placement:
      position: [3, 0, 0]
  - name: ball
    shape:
      kind: sphere
      center: [0, 5, 0]
      radius: 0.5
rays:
  - name: down
    origin: [0, 10, 0]
    direction: [0, -1, 0]
`

const jsonScene = `{
	"version": "1.2.0",
	"frames": 3,
	"camera": {"position": [0, 0, 10]},
	"prototypes": {
		"crate": {"shape": {"kind": "AABB", "min": [-1, -1, -1], "max": [1, 1, 1]}}
	},
	"entities": [
		{"name": "a", "prototype": "crate"},
		{"name": "b", "prototype": "crate", "velocity": [-1, 0, 0], "placement": {"position": [3, 0, 0]}},
		{"name": "ball", "shape": {"kind": "sphere", "center": [0, 5, 0], "radius": 0.5}}
	],
	"rays": [{"name": "down", "origin": [0, 10, 0], "direction": [0, -1, 0]}]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func TestOpenFormats(t *testing.T) {
	dir := t.TempDir()
	var scenes []*Scene
	for name, content := range map[string]string{"s.toml": tomlScene, "s.yaml": yamlScene, "s.json": jsonScene} {
		sc, err := Open(writeFile(t, dir, name, content))
		require.NoError(t, err, name)
		assert.Equal(t, dir, sc.Dir)
		scenes = append(scenes, sc)
	}
	want := scenes[0]
	assert.Equal(t, 3, want.Frames)
	assert.Equal(t, Vec{0, 0, 10}, want.Camera.Position)
	require.Len(t, want.Entities, 3)
	assert.Equal(t, collide.KindSphere, want.Entities[2].Shape.Kind)
	assert.Equal(t, float32(0.5), want.Entities[2].Shape.Radius)
	assert.Equal(t, Vec{3, 0, 0}, want.Entities[1].Placement.Position)
	for _, sc := range scenes[1:] {
		assert.Equal(t, want, sc)
	}

	_, err := Open(writeFile(t, dir, "s.txt", tomlScene))
	assert.Error(t, err)
	_, err = Open(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
	_, err = Open(writeFile(t, dir, "bad.yaml", yamlScene+"unknown: 1\n"))
	assert.Error(t, err, "unknown fields are rejected")
}

func TestExtToFormat(t *testing.T) {
	for ext, f := range map[string]Formats{".toml": TOML, "yml": YAML, ".YAML": YAML, ".json": JSON} {
		got, err := ExtToFormat(ext)
		require.NoError(t, err)
		assert.Equal(t, f, got, ext)
	}
	_, err := ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat(".obj")
	assert.Error(t, err)
	assert.Equal(t, "YAML", YAML.String())
}

func TestCheckVersion(t *testing.T) {
	assert.NoError(t, CheckVersion("1.0.0"))
	assert.NoError(t, CheckVersion("1.9"))
	assert.Error(t, CheckVersion(""))
	assert.Error(t, CheckVersion("2.0.0"))
	assert.Error(t, CheckVersion("0.9.0"))
	assert.Error(t, CheckVersion("one"))
}

func crateScene() *Scene {
	return &Scene{
		Version: Version,
		Prototypes: map[string]Entity{
			"crate": {Shape: &Shape{Kind: collide.KindSphere, Radius: 1}, Velocity: Vec{1, 0, 0}},
		},
		Entities: []Entity{
			{Name: "a", Prototype: "crate", Placement: Placement{Position: Vec{3, 0, 0}}},
		},
	}
}

func TestResolve(t *testing.T) {
	sc := crateScene()
	e, err := sc.Resolve(0)
	require.NoError(t, err)
	assert.Equal(t, "a", e.Name)
	assert.Equal(t, Vec{3, 0, 0}, e.Placement.Position)
	assert.Equal(t, Vec{1, 0, 0}, e.Velocity)
	require.NotNil(t, e.Shape)
	assert.Equal(t, float32(1), e.Shape.Radius)

	e.Shape.Radius = 5
	assert.Equal(t, float32(1), sc.Prototypes["crate"].Shape.Radius, "prototypes are copied")

	sc.Entities[0].Prototype = "crat"
	_, err = sc.Resolve(0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "crate"?`)

	sc.Entities[0].Prototype = "zzzzzzzz"
	_, err = sc.Resolve(0)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestSuggest(t *testing.T) {
	cands := []string{"crate", "barrel", "ball"}
	assert.Equal(t, "barrel", Suggest("barel", cands))
	assert.Equal(t, "ball", Suggest("BALL", cands))
	assert.Equal(t, "", Suggest("qqqqqq", cands))
	assert.Equal(t, "", Suggest("crate", nil))
}

func TestValidate(t *testing.T) {
	box := &Shape{Kind: collide.KindAABB, Max: Vec{1, 1, 1}}
	sc := &Scene{
		Version: Version,
		Frames:  -1,
		Entities: []Entity{
			{Name: "a", Shape: box},
			{Name: "a", Shape: box},
			{Name: "", Shape: box},
			{Name: "none"},
			{Name: "both", Shape: box, Mesh: &MeshSource{Vertices: []float32{0, 0, 0}}},
			{Name: "empty", Mesh: &MeshSource{}},
			{Name: "cyl", Mesh: &MeshSource{Vertices: []float32{0, 0, 0}, Kind: collide.KindCylinder}},
		},
		Rays: []Ray{{Name: "r", Screen: []float32{1}}},
	}
	err := sc.Validate()
	require.Error(t, err)
	msg := err.Error()
	for _, s := range []string{"negative frame count", `duplicate name "a"`, "entity 2: missing name", `"none": needs a shape or a mesh`,
		`"both": has both`, `"empty": mesh needs exactly one`, `"cyl": mesh cannot derive a Cylinder`, "screen must be [x, y]"} {
		assert.Contains(t, msg, s)
	}

	sc = crateScene()
	assert.NoError(t, sc.Validate())
	sc.Version = "3.0.0"
	assert.Error(t, sc.Validate())
}

func TestShapeColliders(t *testing.T) {
	shapes := []Shape{
		{Kind: collide.KindAABB, Min: Vec{-1, -1, -1}, Max: Vec{1, 1, 1}},
		{Kind: collide.KindOBB, HalfSize: Vec{1, 2, 3}, Rotation: Vec{0, 0, 45}},
		{Kind: collide.KindSphere, Radius: 2},
		{Kind: collide.KindCylinder, Radius: 1, Length: 2},
		{Kind: collide.KindCone, Radius: 1, Length: 2},
		{Kind: collide.KindRectangle, Min: Vec{1, 2, 0}, Max: Vec{4, 6, 0}},
	}
	for _, s := range shapes {
		c, err := s.Collider()
		require.NoError(t, err)
		assert.Equal(t, s.Kind, c.Kind())
	}
	r, _ := shapes[5].Collider()
	assert.Equal(t, float32(12), r.Volume())

	_, err := (&Shape{Kind: collide.KindsN}).Collider()
	assert.ErrorIs(t, err, collide.ErrInvalidArgument)
}

func TestPlacementTransform(t *testing.T) {
	tr := Placement{Position: Vec{1, 2, 3}}.Transform()
	assert.Equal(t, float32(1), tr.Scale)
	tr = Placement{Scale: -2, Rotation: Vec{0, 90, 0}}.Transform()
	assert.Equal(t, float32(-2), tr.Scale)
	assert.True(t, tr.IsRotated())
}

func TestViewCamera(t *testing.T) {
	cam, vp := Camera{}.ViewCamera()
	assert.Equal(t, collide.Viewport{Width: 800, Height: 600}, vp)
	assert.Equal(t, Vec{0, 0, 10}.Vector3(), cam.Eye)
	assert.Equal(t, float32(30), cam.FOV)

	cam, vp = Camera{Position: Vec{5, 0, 0}, Up: Vec{0, 0, 1}, FOV: 60, Near: 1, Far: 50, Width: 100, Height: 100}.ViewCamera()
	assert.Equal(t, float32(1), cam.Aspect)
	assert.Equal(t, float32(60), cam.FOV)
	assert.Equal(t, float32(1), cam.Near)
	assert.Equal(t, float32(50), cam.Far)
	assert.Equal(t, float32(1), cam.Up.Z)
	assert.Equal(t, float32(100), vp.Width)
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	sc := crateScene()
	sc.Version = ""
	sc.Entities = append(sc.Entities, Entity{Name: "rock", Mesh: &MeshSource{File: "rock.obj", Kind: collide.KindOBB, Plane: hull.PlaneXZ, Strategy: hull.Recursive}})
	for _, name := range []string{"s.toml", "s.yaml", "s.json"} {
		fn := filepath.Join(dir, name)
		require.NoError(t, sc.Save(fn))
		assert.Equal(t, Version, sc.Version)
		got, err := Open(fn)
		require.NoError(t, err, name)
		rock := got.Entities[1].Mesh
		require.NotNil(t, rock, name)
		assert.Equal(t, collide.KindOBB, rock.Kind)
		assert.Equal(t, hull.PlaneXZ, rock.Plane)
		assert.Equal(t, hull.Recursive, rock.Strategy)
		assert.Equal(t, collide.KindSphere, got.Prototypes["crate"].Shape.Kind)
	}
	b, err := os.ReadFile(filepath.Join(dir, "s.yaml"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), "kind: OBB"))
}
