// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import (
	"fmt"

	"cogentcore.org/collide/math32"
)

// AABB is an axis-aligned bounding box, defined by its minimum and
// maximum extents.
type AABB struct {

	// Min is the minimum extent.
	Min math32.Vector3

	// Max is the maximum extent.
	Max math32.Vector3
}

// NewAABB returns a new box with the given extents, ordered so that
// Min is not greater than Max on any axis.
func NewAABB(min, max math32.Vector3) *AABB {
	return &AABB{Min: min.Min(max), Max: min.Max(max)}
}

// NewAABBFromBox returns a new box with the extents of the given [math32.Box3].
func NewAABBFromBox(b math32.Box3) *AABB {
	return NewAABB(b.Min, b.Max)
}

// NewAABBCentered returns a new box centered at the given point
// with the given full size.
func NewAABBCentered(center, size math32.Vector3) *AABB {
	half := size.Abs().MulScalar(0.5)
	return &AABB{Min: center.Sub(half), Max: center.Add(half)}
}

func (a *AABB) collider() {}

func (a *AABB) Kind() Kinds { return KindAABB }

func (a *AABB) String() string {
	return fmt.Sprintf("AABB{min: %v, max: %v}", a.Min, a.Max)
}

// Clone returns a copy of this box.
func (a *AABB) Clone() *AABB {
	nb := *a
	return &nb
}

// Box returns the extents as a [math32.Box3].
func (a *AABB) Box() math32.Box3 {
	return math32.Box3{Min: a.Min, Max: a.Max}
}

// TransformInto sets dst to this box scaled, rotated and translated by
// the transform, and returns it. A nil dst is allocated; dst may be a.
// A rotation is applied by rotating the 8 corners and enclosing them.
func (a *AABB) TransformInto(dst *AABB, tr Transform) *AABB {
	if dst == nil {
		dst = &AABB{}
	}
	s := tr.AbsScale()
	b := math32.Box3{Min: a.Min.MulScalar(s), Max: a.Max.MulScalar(s)}
	if tr.IsRotated() {
		b = b.MulQuat(tr.Quat())
	}
	b = b.Translate(tr.Position)
	dst.Min = b.Min
	dst.Max = b.Max
	return dst
}

func (a *AABB) Transformed(tr Transform) Collider {
	return a.TransformInto(nil, tr)
}

// Center returns the center of the box.
func (a *AABB) Center() math32.Vector3 {
	return a.Min.Add(a.Max).MulScalar(0.5)
}

// Size returns the full size of the box along each axis.
func (a *AABB) Size() math32.Vector3 {
	return a.Max.Sub(a.Min)
}

// Width returns the size along X.
func (a *AABB) Width() float32 { return a.Max.X - a.Min.X }

// Height returns the size along Y.
func (a *AABB) Height() float32 { return a.Max.Y - a.Min.Y }

// Depth returns the size along Z.
func (a *AABB) Depth() float32 { return a.Max.Z - a.Min.Z }

// Scale returns a new box with the extents multiplied per axis,
// which scales it away from the origin.
func (a *AABB) Scale(sx, sy, sz float32) *AABB {
	s := math32.Vec3(sx, sy, sz)
	return NewAABB(a.Min.Mul(s), a.Max.Mul(s))
}

// Expand returns a new box grown by the given amounts on both sides of each axis.
func (a *AABB) Expand(dx, dy, dz float32) *AABB {
	d := math32.Vec3(dx, dy, dz)
	return NewAABB(a.Min.Sub(d), a.Max.Add(d))
}

// Combine returns a new box enclosing both this box and other.
func (a *AABB) Combine(other *AABB) *AABB {
	return NewAABBFromBox(a.Box().Union(other.Box()))
}

// Stretch returns a new box grown in the direction of each amount:
// a negative amount moves Min down, a positive one moves Max up.
func (a *AABB) Stretch(dx, dy, dz float32) *AABB {
	nb := a.Clone()
	d := math32.Vec3(dx, dy, dz)
	for dim := math32.X; dim <= math32.Z; dim++ {
		v := d.Dim(dim)
		if v < 0 {
			nb.Min.SetDim(dim, nb.Min.Dim(dim)+v)
		} else {
			nb.Max.SetDim(dim, nb.Max.Dim(dim)+v)
		}
	}
	return nb
}

// ClipMovement returns the largest part of delta along each axis that
// moves this box without passing into other. An axis is only clipped
// when the two boxes overlap on the other two axes.
// It is a query: neither box is moved.
func (a *AABB) ClipMovement(other *AABB, delta math32.Vector3) math32.Vector3 {
	res := delta
	for dim := math32.X; dim <= math32.Z; dim++ {
		d := delta.Dim(dim)
		if math32.Abs(d) < Epsilon {
			res.SetDim(dim, 0)
			continue
		}
		if !a.overlapsExcept(other, dim) {
			continue
		}
		if d > 0 {
			gap := other.Min.Dim(dim) - a.Max.Dim(dim)
			if gap >= -Epsilon && gap < d {
				res.SetDim(dim, gap)
			}
		} else {
			gap := other.Max.Dim(dim) - a.Min.Dim(dim)
			if gap <= Epsilon && gap > d {
				res.SetDim(dim, gap)
			}
		}
	}
	return res
}

// overlapsExcept returns whether the boxes strictly overlap on the
// two axes other than dim.
func (a *AABB) overlapsExcept(other *AABB, dim math32.Dims) bool {
	for d := math32.X; d <= math32.Z; d++ {
		if d == dim {
			continue
		}
		if other.Max.Dim(d) <= a.Min.Dim(d) || other.Min.Dim(d) >= a.Max.Dim(d) {
			return false
		}
	}
	return true
}

func (a *AABB) Intersects(other Collider) (Result, error) {
	return Intersect(a, other)
}

func (a *AABB) IntersectsRay(r Ray) (RayHit, error) {
	tNear, tFar, ok := slab(r.Origin, r.Dir, a.Min, a.Max)
	if !ok {
		return RayHit{}, nil
	}
	return hitFromSpan(r, tNear, tFar), nil
}

// Contains returns whether the point is inside the box, inclusive of its faces.
func (a *AABB) Contains(p math32.Vector3) bool {
	return a.Box().ContainsPoint(p)
}

// ContainsCollider returns whether other is entirely inside the box.
// It is implemented for boxes and spheres.
func (a *AABB) ContainsCollider(other Collider) (bool, error) {
	if isNil(other) {
		return false, ErrInvalidArgument
	}
	switch o := other.(type) {
	case *AABB:
		return a.Box().ContainsBox(o.Box()), nil
	case *Sphere:
		return a.Box().ContainsBox(o.Bounds()), nil
	}
	return false, unsupportedPair(KindAABB, other.Kind())
}

func (a *AABB) InFrustum(f *math32.Frustum) bool {
	return f.IntersectsBox(a.Box())
}

func (a *AABB) Bounds() math32.Box3 {
	return a.Box()
}

func (a *AABB) Volume() float32 {
	return a.Box().Volume()
}

func (a *AABB) SurfaceArea() float32 {
	sz := a.Size()
	return 2 * (sz.X*sz.Y + sz.Y*sz.Z + sz.Z*sz.X)
}

func (a *AABB) Inertia(mass float32) math32.Vector3 {
	return boxInertia(mass, a.Size())
}

func (a *AABB) RenderHint() RenderHint {
	return RenderHint{
		Model:    BoxModel,
		Center:   a.Center(),
		Rotation: math32.QuatIdentity(),
		Scale:    a.Size().MulScalar(0.5),
		Color:    "#ff0000",
	}
}
