// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import (
	"fmt"

	"cogentcore.org/collide/math32"
)

// DefaultConeTheta is the default cone half angle in degrees.
const DefaultConeTheta = 30

// Cone is a cone with its circular base centered at Base and
// its apex Length above it along +Y.
// It has no pairwise or ray tests: those return [ErrUnsupported].
// Transform rotations are not applied to it.
type Cone struct {

	// Base is the center of the circular base.
	Base math32.Vector3

	// Radius is the radius of the base.
	Radius float32

	// Length is the height from the base to the apex.
	Length float32

	// Theta is the half angle at the apex in degrees. It is carried
	// for the debug renderer; the geometry uses Radius and Length.
	Theta float32
}

// NewCone returns a new cone with [DefaultConeTheta].
// Negative sizes are clamped to 0.
func NewCone(base math32.Vector3, radius, length float32) *Cone {
	return &Cone{Base: base, Radius: clampRadius(radius), Length: clampRadius(length), Theta: DefaultConeTheta}
}

func (c *Cone) collider() {}

func (c *Cone) Kind() Kinds { return KindCone }

func (c *Cone) String() string {
	return fmt.Sprintf("Cone{base: %v, radius: %g, length: %g, theta: %g}", c.Base, c.Radius, c.Length, c.Theta)
}

// Clone returns a copy of this cone.
func (c *Cone) Clone() *Cone {
	nc := *c
	return &nc
}

// Apex returns the tip of the cone.
func (c *Cone) Apex() math32.Vector3 {
	return c.Base.Add(math32.Vec3(0, c.Length, 0))
}

// TransformInto sets dst to this cone scaled and moved by tr and returns it.
// The base is rotated with the transform, but the axis stays along +Y.
// A nil dst is allocated; dst may be c.
func (c *Cone) TransformInto(dst *Cone, tr Transform) *Cone {
	if dst == nil {
		dst = &Cone{}
	}
	s := tr.AbsScale()
	dst.Base = tr.Apply(c.Base)
	dst.Radius = clampRadius(c.Radius * s)
	dst.Length = clampRadius(c.Length * s)
	dst.Theta = c.Theta
	return dst
}

func (c *Cone) Transformed(tr Transform) Collider {
	return c.TransformInto(nil, tr)
}

func (c *Cone) Intersects(other Collider) (Result, error) {
	return Intersect(c, other)
}

func (c *Cone) IntersectsRay(r Ray) (RayHit, error) {
	return RayHit{}, unsupportedRay(KindCone)
}

// Contains returns whether the point is inside the cone or on its surface.
func (c *Cone) Contains(p math32.Vector3) bool {
	d := p.Sub(c.Base)
	if d.Y < 0 || d.Y > c.Length {
		return false
	}
	r := c.Radius
	if c.Length > 0 {
		r *= 1 - d.Y/c.Length
	}
	return d.X*d.X+d.Z*d.Z <= r*r
}

func (c *Cone) ContainsCollider(other Collider) (bool, error) {
	if isNil(other) {
		return false, ErrInvalidArgument
	}
	return false, unsupportedPair(KindCone, other.Kind())
}

// InFrustum tests the bounding box of the cone, which is conservative.
func (c *Cone) InFrustum(f *math32.Frustum) bool {
	return f.IntersectsBox(c.Bounds())
}

func (c *Cone) Bounds() math32.Box3 {
	return math32.Box3{
		Min: c.Base.Sub(math32.Vec3(c.Radius, 0, c.Radius)),
		Max: c.Base.Add(math32.Vec3(c.Radius, c.Length, c.Radius)),
	}
}

func (c *Cone) Volume() float32 {
	return math32.Pi * c.Radius * c.Radius * c.Length / 3
}

func (c *Cone) SurfaceArea() float32 {
	slant := math32.Sqrt(c.Radius*c.Radius + c.Length*c.Length)
	return math32.Pi * c.Radius * (c.Radius + slant)
}

// Inertia is about the center of mass, a quarter of the length above the base.
func (c *Cone) Inertia(mass float32) math32.Vector3 {
	r2, l2 := c.Radius*c.Radius, c.Length*c.Length
	side := mass * (3*r2/20 + 3*l2/80)
	return math32.Vec3(side, 3*mass*r2/10, side)
}

func (c *Cone) RenderHint() RenderHint {
	return RenderHint{
		Model:    ConeModel,
		Center:   c.Base.Add(math32.Vec3(0, c.Length/2, 0)),
		Rotation: math32.QuatIdentity(),
		Scale:    math32.Vec3(c.Radius, c.Length, c.Radius),
		Color:    "#00ffff",
	}
}
