// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import (
	"fmt"

	"cogentcore.org/collide/math32"
)

// Cylinder is a cylinder aligned with the Y axis.
// It has no pairwise or ray tests: those return [ErrUnsupported].
// Transform rotations are not applied to it.
type Cylinder struct {

	// Center is the center of the cylinder.
	Center math32.Vector3

	// Radius is the radius of the circular cross section.
	Radius float32

	// Length is the full height along Y.
	Length float32
}

// NewCylinder returns a new cylinder. Negative sizes are clamped to 0.
func NewCylinder(center math32.Vector3, radius, length float32) *Cylinder {
	return &Cylinder{Center: center, Radius: clampRadius(radius), Length: clampRadius(length)}
}

func (c *Cylinder) collider() {}

func (c *Cylinder) Kind() Kinds { return KindCylinder }

func (c *Cylinder) String() string {
	return fmt.Sprintf("Cylinder{center: %v, radius: %g, length: %g}", c.Center, c.Radius, c.Length)
}

// Clone returns a copy of this cylinder.
func (c *Cylinder) Clone() *Cylinder {
	nc := *c
	return &nc
}

// TransformInto sets dst to this cylinder scaled and moved by tr and returns it.
// The center is rotated with the transform, but the axis stays along Y.
// A nil dst is allocated; dst may be c.
func (c *Cylinder) TransformInto(dst *Cylinder, tr Transform) *Cylinder {
	if dst == nil {
		dst = &Cylinder{}
	}
	s := tr.AbsScale()
	dst.Center = tr.Apply(c.Center)
	dst.Radius = clampRadius(c.Radius * s)
	dst.Length = clampRadius(c.Length * s)
	return dst
}

func (c *Cylinder) Transformed(tr Transform) Collider {
	return c.TransformInto(nil, tr)
}

func (c *Cylinder) Intersects(other Collider) (Result, error) {
	return Intersect(c, other)
}

func (c *Cylinder) IntersectsRay(r Ray) (RayHit, error) {
	return RayHit{}, unsupportedRay(KindCylinder)
}

// Contains returns whether the point is inside the cylinder or on its surface.
func (c *Cylinder) Contains(p math32.Vector3) bool {
	d := p.Sub(c.Center)
	if math32.Abs(d.Y) > c.Length/2 {
		return false
	}
	return d.X*d.X+d.Z*d.Z <= c.Radius*c.Radius
}

func (c *Cylinder) ContainsCollider(other Collider) (bool, error) {
	if isNil(other) {
		return false, ErrInvalidArgument
	}
	return false, unsupportedPair(KindCylinder, other.Kind())
}

// InFrustum tests the bounding box of the cylinder, which is conservative.
func (c *Cylinder) InFrustum(f *math32.Frustum) bool {
	return f.IntersectsBox(c.Bounds())
}

func (c *Cylinder) Bounds() math32.Box3 {
	h := math32.Vec3(c.Radius, c.Length/2, c.Radius)
	return math32.Box3{Min: c.Center.Sub(h), Max: c.Center.Add(h)}
}

func (c *Cylinder) Volume() float32 {
	return math32.Pi * c.Radius * c.Radius * c.Length
}

func (c *Cylinder) SurfaceArea() float32 {
	return 2 * math32.Pi * c.Radius * (c.Radius + c.Length)
}

func (c *Cylinder) Inertia(mass float32) math32.Vector3 {
	r2, l2 := c.Radius*c.Radius, c.Length*c.Length
	side := mass * (3*r2 + l2) / 12
	return math32.Vec3(side, mass*r2/2, side)
}

func (c *Cylinder) RenderHint() RenderHint {
	return RenderHint{
		Model:    CylinderModel,
		Center:   c.Center,
		Rotation: math32.QuatIdentity(),
		Scale:    math32.Vec3(c.Radius, c.Length, c.Radius),
		Color:    "#0000ff",
	}
}
