// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import "cogentcore.org/collide/math32"

// Epsilon is the tolerance below which a ray direction component
// is treated as parallel to an axis.
const Epsilon = 1.0e-7

// slab intersects the ray origin + t*dir with the box [min, max]
// and returns the entry and exit parameters.
func slab(origin, dir, min, max math32.Vector3) (tNear, tFar float32, ok bool) {
	tNear = -math32.Infinity
	tFar = math32.Infinity
	for d := math32.X; d <= math32.Z; d++ {
		o := origin.Dim(d)
		v := dir.Dim(d)
		lo := min.Dim(d)
		hi := max.Dim(d)
		if math32.Abs(v) < Epsilon {
			if o < lo || o > hi {
				return 0, 0, false
			}
			continue
		}
		t1 := (lo - o) / v
		t2 := (hi - o) / v
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tNear = math32.Max(tNear, t1)
		tFar = math32.Min(tFar, t2)
		if tNear > tFar {
			return 0, 0, false
		}
	}
	return tNear, tFar, true
}

// hitFromSpan returns the hit for a ray crossing a shape between the
// parameters tNear and tFar, where points are given in world space.
func hitFromSpan(r Ray, tNear, tFar float32) RayHit {
	if tFar < 0 {
		return RayHit{}
	}
	t := tNear
	if t < 0 {
		t = tFar
	}
	return RayHit{Hit: true, Distance: t, Point: r.PointAt(t)}
}

// boxSphere tests a sphere against a box of the given half size,
// with the sphere center given relative to the box center, in box axes.
func boxSphere(half, center math32.Vector3, radius float32) Result {
	closest := math32.Box3{Min: half.Negate(), Max: half}.ClampPoint(center)
	d2 := closest.DistanceToSquared(center)
	if d2 > 0 {
		return Result{Overlapping: d2 <= radius*radius, Gap: math32.Sqrt(d2) - radius}
	}
	// center inside the box: distance to the nearest face
	a := center.Abs()
	face := math32.Min(half.X-a.X, math32.Min(half.Y-a.Y, half.Z-a.Z))
	return Result{Overlapping: true, Gap: -(radius + face)}
}

// boundsFromHalf returns the bounding box of a box with the given center,
// half size and axes.
func boundsFromHalf(center, half math32.Vector3, axes [3]math32.Vector3) math32.Box3 {
	var ext math32.Vector3
	for i, ax := range axes {
		h := half.Dim(math32.Dims(i))
		ext.SetAdd(ax.Abs().MulScalar(h))
	}
	return math32.Box3{Min: center.Sub(ext), Max: center.Add(ext)}
}

// boxInertia returns the principal moments of a solid box with the given
// full size.
func boxInertia(mass float32, size math32.Vector3) math32.Vector3 {
	x, y, z := size.X*size.X, size.Y*size.Y, size.Z*size.Z
	return math32.Vec3(y+z, x+z, x+y).MulScalar(mass / 12)
}
