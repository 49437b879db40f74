// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package collide provides geometric collision and bounding volume
// queries over a closed set of collider shapes: axis-aligned and oriented
// boxes, spheres, cylinders, cones and 2D rectangles.
//
// Every shape has an authored form (in model coordinates) and a runtime
// form, recomputed wholesale each frame from the authored form and the
// current [Transform]. Pairwise queries are dispatched through an
// exhaustive table over [Kinds], and return a [Result] with a single
// signed gap convention for every pair.
package collide

import (
	"fmt"

	"cogentcore.org/collide/math32"
)

// Collider is the common interface for all collider shapes.
// The set of implementations is closed: [AABB], [OBB], [Sphere],
// [Cylinder], [Cone] and [Rectangle].
type Collider interface {
	fmt.Stringer

	// Kind returns the shape kind, which never changes.
	Kind() Kinds

	// Transformed returns a newly allocated collider of the same kind,
	// with the given transform applied to this (authored) shape:
	// scale first, then rotation, then translation.
	Transformed(tr Transform) Collider

	// Intersects tests this shape against the other one.
	// See [Intersect] for the error conditions.
	Intersects(other Collider) (Result, error)

	// IntersectsRay returns the nearest hit of the ray on this shape,
	// or [ErrUnsupported] for shapes without a ray test.
	IntersectsRay(r Ray) (RayHit, error)

	// Contains returns whether the point is inside this shape.
	Contains(p math32.Vector3) bool

	// ContainsCollider returns whether the other shape is entirely
	// inside this one.
	ContainsCollider(other Collider) (bool, error)

	// InFrustum returns whether any part of this shape may be inside
	// the frustum.
	InFrustum(f *math32.Frustum) bool

	// Bounds returns the world space bounding box of this shape.
	Bounds() math32.Box3

	// Volume returns the enclosed volume (area for 2D shapes).
	Volume() float32

	// SurfaceArea returns the surface area (perimeter for 2D shapes).
	SurfaceArea() float32

	// Inertia returns the diagonal of the inertia tensor of a solid body
	// of the given mass with this shape, about its center of mass and in
	// its own axes. It is a query only; nothing here applies it.
	Inertia(mass float32) math32.Vector3

	// RenderHint returns the debug drawing parameters of this shape.
	RenderHint() RenderHint

	collider()
}

// Update recomputes dst from the authored src shape and the transform,
// in place, and returns dst. If dst is nil a new collider is allocated.
// dst must be of the same kind as src, otherwise [ErrKindMismatch] is returned.
func Update(src Collider, tr Transform, dst Collider) (Collider, error) {
	if isNil(src) {
		return nil, fmt.Errorf("%w: nil source collider", ErrInvalidArgument)
	}
	if isNil(dst) {
		return src.Transformed(tr), nil
	}
	if src.Kind() != dst.Kind() {
		return dst, fmt.Errorf("%w: cannot update %v into %v", ErrKindMismatch, src.Kind(), dst.Kind())
	}
	switch s := src.(type) {
	case *AABB:
		return s.TransformInto(dst.(*AABB), tr), nil
	case *OBB:
		return s.TransformInto(dst.(*OBB), tr), nil
	case *Sphere:
		return s.TransformInto(dst.(*Sphere), tr), nil
	case *Cylinder:
		return s.TransformInto(dst.(*Cylinder), tr), nil
	case *Cone:
		return s.TransformInto(dst.(*Cone), tr), nil
	case *Rectangle:
		return s.TransformInto(dst.(*Rectangle), tr), nil
	}
	return dst, fmt.Errorf("%w: unknown collider %T", ErrInvalidArgument, src)
}

// Clone returns a deep copy of the given collider, or nil.
func Clone(c Collider) Collider {
	switch s := c.(type) {
	case *AABB:
		if s != nil {
			return s.Clone()
		}
	case *OBB:
		if s != nil {
			return s.Clone()
		}
	case *Sphere:
		if s != nil {
			return s.Clone()
		}
	case *Cylinder:
		if s != nil {
			return s.Clone()
		}
	case *Cone:
		if s != nil {
			return s.Clone()
		}
	case *Rectangle:
		if s != nil {
			return s.Clone()
		}
	}
	return nil
}

// isNil returns true for a nil interface and for a typed nil pointer.
func isNil(c Collider) bool {
	switch s := c.(type) {
	case nil:
		return true
	case *AABB:
		return s == nil
	case *OBB:
		return s == nil
	case *Sphere:
		return s == nil
	case *Cylinder:
		return s == nil
	case *Cone:
		return s == nil
	case *Rectangle:
		return s == nil
	}
	return false
}

// sameShape returns true if a and b are the same collider,
// or colliders of the same kind with identical parameters.
func sameShape(a, b Collider) bool {
	if a == b {
		return true
	}
	switch s := a.(type) {
	case *AABB:
		o, ok := b.(*AABB)
		return ok && *s == *o
	case *OBB:
		o, ok := b.(*OBB)
		return ok && *s == *o
	case *Sphere:
		o, ok := b.(*Sphere)
		return ok && *s == *o
	case *Cylinder:
		o, ok := b.(*Cylinder)
		return ok && *s == *o
	case *Cone:
		o, ok := b.(*Cone)
		return ok && *s == *o
	case *Rectangle:
		o, ok := b.(*Rectangle)
		return ok && *s == *o
	}
	return false
}
