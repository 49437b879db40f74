// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene loads scene description files (TOML, YAML or JSON) of
// collider entities, cameras and rays, and simulates them frame by frame
// with the collide package, producing collision, ray and culling reports.
package scene

import (
	"fmt"
	"path/filepath"

	"cogentcore.org/collide/base/errors"
	"cogentcore.org/collide/collide"
	"cogentcore.org/collide/collide/hull"
	"cogentcore.org/collide/math32"
	"github.com/Masterminds/semver/v3"
	"github.com/jinzhu/copier"
)

// VersionConstraint is the semantic version constraint
// that scene file versions must satisfy.
const VersionConstraint = "^1"

// Version is the scene file version written by [Scene.Save].
const Version = "1.0.0"

// Vec is a 3D vector as written in scene files: [x, y, z].
type Vec [3]float32

// Vector3 returns the vector as a [math32.Vector3].
func (v Vec) Vector3() math32.Vector3 {
	return math32.Vec3(v[0], v[1], v[2])
}

// Scene is a scene description, as read from a scene file.
type Scene struct {

	// Version is the semantic version of the file format.
	Version string `toml:"version" yaml:"version" json:"version"`

	// Frames is the number of frames to simulate.
	Frames int `toml:"frames" yaml:"frames" json:"frames"`

	// Camera is used for frustum culling and screen rays.
	Camera Camera `toml:"camera" yaml:"camera" json:"camera"`

	// Prototypes are named entity templates that entities can refer to.
	Prototypes map[string]Entity `toml:"prototypes,omitempty" yaml:"prototypes,omitempty" json:"prototypes,omitempty"`

	// Entities are the simulated bodies.
	Entities []Entity `toml:"entities" yaml:"entities" json:"entities"`

	// Rays are cast against all entities every frame.
	Rays []Ray `toml:"rays,omitempty" yaml:"rays,omitempty" json:"rays,omitempty"`

	// Dir is the directory relative mesh files are resolved in.
	Dir string `toml:"-" yaml:"-" json:"-"`
}

// Camera is the scene camera.
type Camera struct {
	Position Vec     `toml:"position" yaml:"position" json:"position"`
	Target   Vec     `toml:"target" yaml:"target" json:"target"`
	Up       Vec     `toml:"up" yaml:"up" json:"up"`
	FOV      float32 `toml:"fov" yaml:"fov" json:"fov"`
	Near     float32 `toml:"near" yaml:"near" json:"near"`
	Far      float32 `toml:"far" yaml:"far" json:"far"`
	Width    float32 `toml:"width" yaml:"width" json:"width"`
	Height   float32 `toml:"height" yaml:"height" json:"height"`
}

// Entity is a simulated body with either an explicit shape or a mesh.
type Entity struct {

	// Name identifies the entity in reports.
	Name string `toml:"name" yaml:"name" json:"name"`

	// Prototype is the name of a prototype whose fields
	// are used where this entity leaves them empty.
	Prototype string `toml:"prototype,omitempty" yaml:"prototype,omitempty" json:"prototype,omitempty"`

	// Shape is the explicit authored shape.
	Shape *Shape `toml:"shape,omitempty" yaml:"shape,omitempty" json:"shape,omitempty"`

	// Mesh is the mesh the shape is derived from.
	Mesh *MeshSource `toml:"mesh,omitempty" yaml:"mesh,omitempty" json:"mesh,omitempty"`

	// Placement is the initial transform.
	Placement Placement `toml:"placement" yaml:"placement" json:"placement"`

	// Velocity is added to the position every frame.
	Velocity Vec `toml:"velocity" yaml:"velocity" json:"velocity"`

	// Spin is added to the rotation (in degrees) every frame.
	Spin Vec `toml:"spin" yaml:"spin" json:"spin"`
}

// Shape describes an authored collider. The fields used depend on Kind:
//   - AABB: Min, Max
//   - OBB: Center, HalfSize, Rotation
//   - Sphere: Center, Radius
//   - Cylinder: Center, Radius, Length
//   - Cone: Center (the base), Radius, Length
//   - Rectangle: the X and Y of Min and Max
type Shape struct {
	Kind     collide.Kinds `toml:"kind" yaml:"kind" json:"kind"`
	Min      Vec           `toml:"min" yaml:"min" json:"min"`
	Max      Vec           `toml:"max" yaml:"max" json:"max"`
	Center   Vec           `toml:"center" yaml:"center" json:"center"`
	HalfSize Vec           `toml:"half_size" yaml:"half_size" json:"half_size"`
	Rotation Vec           `toml:"rotation" yaml:"rotation" json:"rotation"`
	Radius   float32       `toml:"radius" yaml:"radius" json:"radius"`
	Length   float32       `toml:"length" yaml:"length" json:"length"`
}

// MeshSource is the vertex source of a mesh entity: an OBJ file
// (loaded asynchronously) or inline vertex positions.
type MeshSource struct {

	// File is the OBJ file, relative to the scene file.
	File string `toml:"file,omitempty" yaml:"file,omitempty" json:"file,omitempty"`

	// Vertices are flat x, y, z positions.
	Vertices []float32 `toml:"vertices,omitempty" yaml:"vertices,omitempty" json:"vertices,omitempty"`

	// Kind is the derived shape: AABB, Sphere or OBB.
	Kind collide.Kinds `toml:"kind" yaml:"kind" json:"kind"`

	// Plane is the hull projection plane.
	Plane hull.Planes `toml:"plane" yaml:"plane" json:"plane"`

	// Strategy is the hull execution strategy.
	Strategy hull.Strategies `toml:"strategy" yaml:"strategy" json:"strategy"`
}

// Placement is the transform of an entity.
type Placement struct {
	Position Vec `toml:"position" yaml:"position" json:"position"`

	// Rotation is in degrees.
	Rotation Vec `toml:"rotation" yaml:"rotation" json:"rotation"`

	// Scale is the uniform scale; zero means 1.
	Scale float32 `toml:"scale" yaml:"scale" json:"scale"`
}

// Ray is a named ray, given either by origin and direction
// or by a screen position [x, y] in pixels of the camera.
type Ray struct {
	Name      string    `toml:"name" yaml:"name" json:"name"`
	Origin    Vec       `toml:"origin" yaml:"origin" json:"origin"`
	Direction Vec       `toml:"direction" yaml:"direction" json:"direction"`
	Screen    []float32 `toml:"screen,omitempty" yaml:"screen,omitempty" json:"screen,omitempty"`
}

// Open reads the scene from the given file, with the format inferred
// from the extension, and validates it.
func Open(filename string) (*Scene, error) {
	sc := &Scene{}
	if err := decode(sc, filename); err != nil {
		return nil, fmt.Errorf("scene.Open %q: %w", filename, err)
	}
	sc.Dir = filepath.Dir(filename)
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scene.Open %q: %w", filename, err)
	}
	return sc, nil
}

// Save writes the scene to the given file, with the format inferred
// from the extension. An empty version is set to [Version].
func (sc *Scene) Save(filename string) error {
	if sc.Version == "" {
		sc.Version = Version
	}
	return encode(sc, filename)
}

// CheckVersion returns an error if the given version does not
// satisfy [VersionConstraint].
func CheckVersion(version string) error {
	if version == "" {
		return errors.New("missing version")
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("version %q: %w", version, err)
	}
	c := errors.Must1(semver.NewConstraint(VersionConstraint))
	if !c.Check(v) {
		return fmt.Errorf("version %s does not satisfy %s", v, VersionConstraint)
	}
	return nil
}

// Validate checks the version, entity names, prototype references
// and that every entity has exactly one of a shape and a mesh.
func (sc *Scene) Validate() error {
	if err := CheckVersion(sc.Version); err != nil {
		return err
	}
	var errs []error
	if sc.Frames < 0 {
		errs = append(errs, fmt.Errorf("negative frame count %d", sc.Frames))
	}
	names := map[string]bool{}
	for i := range sc.Entities {
		e, err := sc.Resolve(i)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if e.Name == "" {
			errs = append(errs, fmt.Errorf("entity %d: missing name", i))
		} else if names[e.Name] {
			errs = append(errs, fmt.Errorf("entity %d: duplicate name %q", i, e.Name))
		}
		names[e.Name] = true
		if err := e.validate(); err != nil {
			errs = append(errs, fmt.Errorf("entity %q: %w", e.Name, err))
		}
	}
	for i, r := range sc.Rays {
		if len(r.Screen) != 0 && len(r.Screen) != 2 {
			errs = append(errs, fmt.Errorf("ray %d %q: screen must be [x, y]", i, r.Name))
		}
	}
	return errors.Join(errs...)
}

// Resolve returns entity i with any prototype fields filled in.
// Fields set on the entity take precedence over the prototype.
func (sc *Scene) Resolve(i int) (Entity, error) {
	e := sc.Entities[i]
	if e.Prototype == "" {
		return e, nil
	}
	proto, ok := sc.Prototypes[e.Prototype]
	if !ok {
		err := fmt.Errorf("entity %d %q: unknown prototype %q", i, e.Name, e.Prototype)
		if s := Suggest(e.Prototype, prototypeNames(sc.Prototypes)); s != "" {
			err = fmt.Errorf("%w; did you mean %q?", err, s)
		}
		return e, err
	}
	var res Entity
	if err := copier.CopyWithOption(&res, &proto, copier.Option{DeepCopy: true}); err != nil {
		return e, err
	}
	if err := copier.CopyWithOption(&res, &e, copier.Option{DeepCopy: true, IgnoreEmpty: true}); err != nil {
		return e, err
	}
	return res, nil
}

func (e *Entity) validate() error {
	switch {
	case e.Shape == nil && e.Mesh == nil:
		return errors.New("needs a shape or a mesh")
	case e.Shape != nil && e.Mesh != nil:
		return errors.New("has both a shape and a mesh")
	case e.Mesh != nil:
		if (e.Mesh.File == "") == (len(e.Mesh.Vertices) == 0) {
			return errors.New("mesh needs exactly one of a file and vertices")
		}
		switch e.Mesh.Kind {
		case collide.KindAABB, collide.KindSphere, collide.KindOBB:
		default:
			return fmt.Errorf("mesh cannot derive a %v", e.Mesh.Kind)
		}
	}
	return nil
}

// Transform returns the placement as a [collide.Transform].
func (pl Placement) Transform() collide.Transform {
	s := pl.Scale
	if s == 0 {
		s = 1
	}
	return collide.NewTransform(pl.Position.Vector3(), pl.Rotation.Vector3(), s)
}

// Collider returns the authored collider described by the shape.
func (s *Shape) Collider() (collide.Collider, error) {
	switch s.Kind {
	case collide.KindAABB:
		return collide.NewAABB(s.Min.Vector3(), s.Max.Vector3()), nil
	case collide.KindOBB:
		rot := collide.NewTransform(math32.Vector3{}, s.Rotation.Vector3(), 1).Quat()
		return collide.NewOBB(s.Center.Vector3(), s.HalfSize.Vector3(), rot), nil
	case collide.KindSphere:
		return collide.NewSphere(s.Center.Vector3(), s.Radius), nil
	case collide.KindCylinder:
		return collide.NewCylinder(s.Center.Vector3(), s.Radius, s.Length), nil
	case collide.KindCone:
		return collide.NewCone(s.Center.Vector3(), s.Radius, s.Length), nil
	case collide.KindRectangle:
		return collide.NewRectangle(s.Min[0], s.Min[1], s.Max[0]-s.Min[0], s.Max[1]-s.Min[1]), nil
	}
	return nil, fmt.Errorf("%w: shape kind %v", collide.ErrInvalidArgument, s.Kind)
}

// ViewCamera returns the camera and viewport, with defaults for unset
// fields: an 800x600 viewport, a 30 degree field of view, clipping
// at 0.01 and 1000, and the camera at [0, 0, 10] looking at the target.
func (c Camera) ViewCamera() (*collide.PerspectiveCamera, collide.Viewport) {
	vp := collide.Viewport{Width: c.Width, Height: c.Height}
	if vp.Width <= 0 || vp.Height <= 0 {
		vp = collide.Viewport{Width: 800, Height: 600}
	}
	eye := c.Position.Vector3()
	if eye == c.Target.Vector3() {
		eye = c.Target.Vector3().Add(math32.Vec3(0, 0, 10))
	}
	cam := collide.NewPerspectiveCamera(eye, c.Target.Vector3(), vp)
	if c.Up != (Vec{}) {
		cam.Up = c.Up.Vector3()
	}
	if c.FOV > 0 {
		cam.FOV = c.FOV
	}
	if c.Near > 0 {
		cam.Near = c.Near
	}
	if c.Far > cam.Near {
		cam.Far = c.Far
	}
	return cam, vp
}
