// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import (
	"fmt"

	"cogentcore.org/collide/math32"
)

// Sphere is a sphere collider. A zero radius sphere is a point.
type Sphere struct {

	// Center is the center of the sphere.
	Center math32.Vector3

	// Radius is the radius, never negative.
	Radius float32
}

// NewSphere returns a new sphere. A negative or NaN radius is clamped to 0.
func NewSphere(center math32.Vector3, radius float32) *Sphere {
	return &Sphere{Center: center, Radius: clampRadius(radius)}
}

func clampRadius(r float32) float32 {
	if math32.IsNaN(r) || r < 0 {
		return 0
	}
	return r
}

func (s *Sphere) collider() {}

func (s *Sphere) Kind() Kinds { return KindSphere }

func (s *Sphere) String() string {
	return fmt.Sprintf("Sphere{center: %v, radius: %g}", s.Center, s.Radius)
}

// Clone returns a copy of this sphere.
func (s *Sphere) Clone() *Sphere {
	ns := *s
	return &ns
}

// TransformInto sets dst to this sphere transformed by tr and returns it.
// A nil dst is allocated; dst may be s.
func (s *Sphere) TransformInto(dst *Sphere, tr Transform) *Sphere {
	if dst == nil {
		dst = &Sphere{}
	}
	dst.Center = tr.Apply(s.Center)
	dst.Radius = clampRadius(s.Radius * tr.AbsScale())
	return dst
}

func (s *Sphere) Transformed(tr Transform) Collider {
	return s.TransformInto(nil, tr)
}

func (s *Sphere) Intersects(other Collider) (Result, error) {
	return Intersect(s, other)
}

// IntersectsRay solves the ray / sphere quadratic for the nearest
// non-negative root.
func (s *Sphere) IntersectsRay(r Ray) (RayHit, error) {
	oc := r.Origin.Sub(s.Center)
	b := oc.Dot(r.Dir)
	c := oc.LengthSquared() - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return RayHit{}, nil
	}
	sq := math32.Sqrt(disc)
	return hitFromSpan(r, -b-sq, -b+sq), nil
}

// Contains returns whether the point is inside the sphere or on its surface.
func (s *Sphere) Contains(p math32.Vector3) bool {
	return s.Center.DistanceToSquared(p) <= s.Radius*s.Radius
}

// ContainsCollider returns whether other is entirely inside the sphere.
// It is implemented for spheres and boxes.
func (s *Sphere) ContainsCollider(other Collider) (bool, error) {
	if isNil(other) {
		return false, ErrInvalidArgument
	}
	switch o := other.(type) {
	case *Sphere:
		return s.Center.DistanceTo(o.Center)+o.Radius <= s.Radius, nil
	case *AABB:
		for _, c := range o.Box().Corners() {
			if !s.Contains(c) {
				return false, nil
			}
		}
		return true, nil
	}
	return false, unsupportedPair(KindSphere, other.Kind())
}

func (s *Sphere) InFrustum(f *math32.Frustum) bool {
	return f.IntersectsSphere(s.Center, s.Radius)
}

func (s *Sphere) Bounds() math32.Box3 {
	r := math32.Vector3Scalar(s.Radius)
	return math32.Box3{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}

func (s *Sphere) Volume() float32 {
	return 4.0 / 3.0 * math32.Pi * s.Radius * s.Radius * s.Radius
}

func (s *Sphere) SurfaceArea() float32 {
	return 4 * math32.Pi * s.Radius * s.Radius
}

func (s *Sphere) Inertia(mass float32) math32.Vector3 {
	return math32.Vector3Scalar(0.4 * mass * s.Radius * s.Radius)
}

func (s *Sphere) RenderHint() RenderHint {
	return RenderHint{
		Model:    SphereModel,
		Center:   s.Center,
		Rotation: math32.QuatIdentity(),
		Scale:    math32.Vector3Scalar(s.Radius),
		Color:    "#0000ff",
	}
}
