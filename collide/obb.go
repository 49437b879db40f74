// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import (
	"fmt"

	"cogentcore.org/collide/math32"
)

// OBB is an oriented bounding box: a box of the given half size,
// rotated about its center.
type OBB struct {

	// Center is the center of the box.
	Center math32.Vector3

	// HalfSize is the half extent along each of the box axes.
	HalfSize math32.Vector3

	// Rotation is the orientation of the box axes.
	// The zero quaternion is treated as the identity.
	Rotation math32.Quat
}

// NewOBB returns a new oriented box. Negative half sizes are made positive.
func NewOBB(center, halfSize math32.Vector3, rot math32.Quat) *OBB {
	o := &OBB{Center: center, HalfSize: halfSize.Abs(), Rotation: rot}
	o.Rotation = o.rot()
	return o
}

// NewOBBFromAABB returns an unrotated oriented box with the extents of the given box.
func NewOBBFromAABB(a *AABB) *OBB {
	return NewOBB(a.Center(), a.Size().MulScalar(0.5), math32.QuatIdentity())
}

func (o *OBB) collider() {}

func (o *OBB) Kind() Kinds { return KindOBB }

func (o *OBB) String() string {
	return fmt.Sprintf("OBB{center: %v, half: %v, rotation: %v}", o.Center, o.HalfSize, o.Rotation)
}

// Clone returns a copy of this box.
func (o *OBB) Clone() *OBB {
	nb := *o
	return &nb
}

// rot returns the normalized rotation.
func (o *OBB) rot() math32.Quat {
	q := o.Rotation
	if q.IsNil() {
		return math32.QuatIdentity()
	}
	if math32.Abs(q.Length()-1) > 1e-6 {
		q.Normalize()
	}
	return q
}

// Axes returns the world directions of the box X, Y and Z axes.
func (o *OBB) Axes() [3]math32.Vector3 {
	return o.rot().Axes()
}

// ToLocal converts a world point into box coordinates, relative to the center.
func (o *OBB) ToLocal(p math32.Vector3) math32.Vector3 {
	return p.Sub(o.Center).MulQuat(o.rot().Conjugate())
}

// TransformInto sets dst to this box transformed by tr and returns it.
// The transform rotation is applied after the box's own rotation.
// A nil dst is allocated; dst may be o.
func (o *OBB) TransformInto(dst *OBB, tr Transform) *OBB {
	if dst == nil {
		dst = &OBB{}
	}
	rot := o.rot()
	if tr.IsRotated() {
		rot = tr.Quat().Mul(rot)
		rot.Normalize()
	}
	dst.Center = tr.Apply(o.Center)
	dst.HalfSize = o.HalfSize.Abs().MulScalar(tr.AbsScale())
	dst.Rotation = rot
	return dst
}

func (o *OBB) Transformed(tr Transform) Collider {
	return o.TransformInto(nil, tr)
}

func (o *OBB) Intersects(other Collider) (Result, error) {
	return Intersect(o, other)
}

// IntersectsRay runs the slab test in box coordinates.
func (o *OBB) IntersectsRay(r Ray) (RayHit, error) {
	inv := o.rot().Conjugate()
	origin := r.Origin.Sub(o.Center).MulQuat(inv)
	dir := r.Dir.MulQuat(inv)
	tNear, tFar, ok := slab(origin, dir, o.HalfSize.Negate(), o.HalfSize)
	if !ok {
		return RayHit{}, nil
	}
	return hitFromSpan(r, tNear, tFar), nil
}

// Contains returns whether the point is inside the box, inclusive of its faces.
func (o *OBB) Contains(p math32.Vector3) bool {
	l := o.ToLocal(p).Abs()
	return l.X <= o.HalfSize.X && l.Y <= o.HalfSize.Y && l.Z <= o.HalfSize.Z
}

// ContainsCollider returns whether other is entirely inside the box.
// It is implemented for axis-aligned boxes, using their corners.
func (o *OBB) ContainsCollider(other Collider) (bool, error) {
	if isNil(other) {
		return false, ErrInvalidArgument
	}
	a, ok := other.(*AABB)
	if !ok {
		return false, unsupportedPair(KindOBB, other.Kind())
	}
	for _, c := range a.Box().Corners() {
		if !o.Contains(c) {
			return false, nil
		}
	}
	return true, nil
}

// InFrustum tests the world bounding box of the oriented box,
// which is conservative.
func (o *OBB) InFrustum(f *math32.Frustum) bool {
	return f.IntersectsBox(o.Bounds())
}

func (o *OBB) Bounds() math32.Box3 {
	return boundsFromHalf(o.Center, o.HalfSize, o.Axes())
}

func (o *OBB) Volume() float32 {
	h := o.HalfSize
	return 8 * h.X * h.Y * h.Z
}

func (o *OBB) SurfaceArea() float32 {
	h := o.HalfSize
	return 8 * (h.X*h.Y + h.Y*h.Z + h.Z*h.X)
}

func (o *OBB) Inertia(mass float32) math32.Vector3 {
	return boxInertia(mass, o.HalfSize.MulScalar(2))
}

func (o *OBB) RenderHint() RenderHint {
	return RenderHint{
		Model:    BoxModel,
		Center:   o.Center,
		Rotation: o.rot(),
		Scale:    o.HalfSize,
		Color:    "#808000",
	}
}
