// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import (
	"fmt"

	"cogentcore.org/collide/math32"
)

// pairFunc tests two colliders whose kinds index it in pairTable.
type pairFunc func(a, b Collider) (Result, error)

// pairTable has an entry for every ordered pair of kinds.
// Pairs without geometry are explicit unsupported entries.
var pairTable = [KindsN][KindsN]pairFunc{
	KindAABB: {
		KindAABB:      aabbAABB,
		KindOBB:       swapped(obbAABB),
		KindSphere:    swapped(sphereAABB),
		KindCylinder:  unsupported,
		KindCone:      unsupported,
		KindRectangle: unsupported,
	},
	KindOBB: {
		KindAABB:      obbAABB,
		KindOBB:       obbOBB,
		KindSphere:    swapped(sphereOBB),
		KindCylinder:  unsupported,
		KindCone:      unsupported,
		KindRectangle: unsupported,
	},
	KindSphere: {
		KindAABB:      sphereAABB,
		KindOBB:       sphereOBB,
		KindSphere:    sphereSphere,
		KindCylinder:  unsupported,
		KindCone:      unsupported,
		KindRectangle: unsupported,
	},
	KindCylinder: {
		KindAABB:      unsupported,
		KindOBB:       unsupported,
		KindSphere:    unsupported,
		KindCylinder:  unsupported,
		KindCone:      unsupported,
		KindRectangle: unsupported,
	},
	KindCone: {
		KindAABB:      unsupported,
		KindOBB:       unsupported,
		KindSphere:    unsupported,
		KindCylinder:  unsupported,
		KindCone:      unsupported,
		KindRectangle: unsupported,
	},
	KindRectangle: {
		KindAABB:      unsupported,
		KindOBB:       unsupported,
		KindSphere:    unsupported,
		KindCylinder:  unsupported,
		KindCone:      unsupported,
		KindRectangle: rectRect,
	},
}

// Intersect tests the two colliders against each other.
// A nil collider returns [ErrInvalidArgument]. The same collider, or
// two of the same kind with identical parameters, returns {true, 0}.
// Pairs without an implementation return [ErrUnsupported].
func Intersect(a, b Collider) (Result, error) {
	if isNil(a) || isNil(b) {
		return Result{}, fmt.Errorf("%w: nil collider", ErrInvalidArgument)
	}
	if sameShape(a, b) {
		return Result{Overlapping: true}, nil
	}
	ka, kb := a.Kind(), b.Kind()
	if ka < 0 || ka >= KindsN || kb < 0 || kb >= KindsN {
		return Result{}, unsupportedPair(ka, kb)
	}
	return pairTable[ka][kb](a, b)
}

// Supported returns whether a pairwise test exists for the two kinds.
func Supported(a, b Kinds) bool {
	if a == b {
		return a == KindAABB || a == KindOBB || a == KindSphere || a == KindRectangle
	}
	lo, hi := min(a, b), max(a, b)
	switch lo {
	case KindAABB, KindOBB:
		return hi == KindOBB || hi == KindSphere
	}
	return false
}

func swapped(fn pairFunc) pairFunc {
	return func(a, b Collider) (Result, error) {
		return fn(b, a)
	}
}

func unsupported(a, b Collider) (Result, error) {
	return Result{}, unsupportedPair(a.Kind(), b.Kind())
}

// aabbAABB uses the largest one-sided gap over the axes;
// touching boxes do not overlap.
func aabbAABB(a, b Collider) (Result, error) {
	ba, bb := a.(*AABB), b.(*AABB)
	d1 := ba.Min.Sub(bb.Max)
	d2 := bb.Min.Sub(ba.Max)
	gap := d1.Max(d2).MaxComponent()
	return Result{Overlapping: gap < 0, Gap: gap}, nil
}

// sphereSphere overlaps when the surfaces touch.
func sphereSphere(a, b Collider) (Result, error) {
	sa, sb := a.(*Sphere), b.(*Sphere)
	gap := sa.Center.DistanceTo(sb.Center) - (sa.Radius + sb.Radius)
	return Result{Overlapping: gap <= 0, Gap: gap}, nil
}

func sphereAABB(a, b Collider) (Result, error) {
	s, box := a.(*Sphere), b.(*AABB)
	half := box.Size().MulScalar(0.5)
	return boxSphere(half, s.Center.Sub(box.Center()), s.Radius), nil
}

func sphereOBB(a, b Collider) (Result, error) {
	s, o := a.(*Sphere), b.(*OBB)
	return boxSphere(o.HalfSize, o.ToLocal(s.Center), s.Radius), nil
}

func obbAABB(a, b Collider) (Result, error) {
	return satBoxes(a.(*OBB), NewOBBFromAABB(b.(*AABB))), nil
}

func obbOBB(a, b Collider) (Result, error) {
	return satBoxes(a.(*OBB), b.(*OBB)), nil
}

// rectRect uses the largest one-sided gap over X and Y;
// touching rectangles do not overlap.
func rectRect(a, b Collider) (Result, error) {
	ra, rb := a.(*Rectangle), b.(*Rectangle)
	amx, bmx := ra.Max(), rb.Max()
	gap := math32.Max(math32.Max(ra.Pos.X-bmx.X, rb.Pos.X-amx.X), math32.Max(ra.Pos.Y-bmx.Y, rb.Pos.Y-amx.Y))
	return Result{Overlapping: gap < 0, Gap: gap}, nil
}

// satBoxes runs the separating axis test over the 15 candidate axes of
// two oriented boxes: 3 face normals of each and their 9 cross products.
// The gap is the largest separation over the axes, which is a lower bound
// of the true distance when the boxes are apart, and the minimum
// penetration when they overlap. Touching boxes do not overlap.
func satBoxes(a, b *OBB) Result {
	axA := a.Axes()
	axB := b.Axes()
	d := b.Center.Sub(a.Center)
	gap := -math32.Infinity
	test := func(axis math32.Vector3) {
		l2 := axis.LengthSquared()
		if l2 < 1e-10 {
			return // parallel edges
		}
		axis = axis.MulScalar(1 / math32.Sqrt(l2))
		ra := projectRadius(a.HalfSize, axA, axis)
		rb := projectRadius(b.HalfSize, axB, axis)
		gap = math32.Max(gap, math32.Abs(d.Dot(axis))-(ra+rb))
	}
	for i := 0; i < 3; i++ {
		test(axA[i])
		test(axB[i])
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			test(axA[i].Cross(axB[j]))
		}
	}
	return Result{Overlapping: gap < 0, Gap: gap}
}

// projectRadius returns the half length of the projection of a box
// onto the unit axis.
func projectRadius(half math32.Vector3, axes [3]math32.Vector3, axis math32.Vector3) float32 {
	return half.X*math32.Abs(axes[0].Dot(axis)) +
		half.Y*math32.Abs(axes[1].Dot(axis)) +
		half.Z*math32.Abs(axes[2].Dot(axis))
}
