// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit collision functionality.

package math32

// Frustum planes, in the order stored in [Frustum.Planes].
const (
	FrustumRight = iota
	FrustumLeft
	FrustumBottom
	FrustumTop
	FrustumFar
	FrustumNear
)

// Frustum represents a frustum: the volume of space visible to a camera,
// bounded by six planes whose normals all point inward.
type Frustum struct {
	Planes [6]Plane
}

// NewFrustumFromMatrix creates and returns a Frustum based on the provided
// combined projection * view matrix.
func NewFrustumFromMatrix(m *Matrix4) *Frustum {
	f := &Frustum{}
	f.SetFromMatrix(m)
	return f
}

// NewFrustum returns a frustum made of the 6 specified planes.
func NewFrustum(p0, p1, p2, p3, p4, p5 *Plane) *Frustum {
	f := &Frustum{}
	f.Set(p0, p1, p2, p3, p4, p5)
	return f
}

// Set sets the frustum's planes.
func (f *Frustum) Set(p0, p1, p2, p3, p4, p5 *Plane) {
	if p0 != nil {
		f.Planes[0] = *p0
	}
	if p1 != nil {
		f.Planes[1] = *p1
	}
	if p2 != nil {
		f.Planes[2] = *p2
	}
	if p3 != nil {
		f.Planes[3] = *p3
	}
	if p4 != nil {
		f.Planes[4] = *p4
	}
	if p5 != nil {
		f.Planes[5] = *p5
	}
}

// SetFromMatrix sets the frustum's planes from the specified
// projection * view matrix, normalizing every plane.
func (f *Frustum) SetFromMatrix(m *Matrix4) {
	me0 := m[0]
	me1 := m[1]
	me2 := m[2]
	me3 := m[3]
	me4 := m[4]
	me5 := m[5]
	me6 := m[6]
	me7 := m[7]
	me8 := m[8]
	me9 := m[9]
	me10 := m[10]
	me11 := m[11]
	me12 := m[12]
	me13 := m[13]
	me14 := m[14]
	me15 := m[15]

	f.Planes[FrustumRight].SetDims(me3-me0, me7-me4, me11-me8, me15-me12)
	f.Planes[FrustumLeft].SetDims(me3+me0, me7+me4, me11+me8, me15+me12)
	f.Planes[FrustumBottom].SetDims(me3+me1, me7+me5, me11+me9, me15+me13)
	f.Planes[FrustumTop].SetDims(me3-me1, me7-me5, me11-me9, me15-me13)
	f.Planes[FrustumFar].SetDims(me3-me2, me7-me6, me11-me10, me15-me14)
	f.Planes[FrustumNear].SetDims(me3+me2, me7+me6, me11+me10, me15+me14)

	for i := 0; i < 6; i++ {
		f.Planes[i].Normalize()
	}
}

// ContainsPoint determines whether the frustum contains the specified point.
// A point lying on any plane is outside.
func (f *Frustum) ContainsPoint(point Vector3) bool {
	for i := 0; i < 6; i++ {
		if f.Planes[i].DistanceToPoint(point) <= 0 {
			return false
		}
	}
	return true
}

// IntersectsSphere determines whether the specified sphere is intersecting the frustum.
// A sphere that only touches a plane from outside does not intersect.
func (f *Frustum) IntersectsSphere(center Vector3, radius float32) bool {
	negRadius := -radius
	for i := 0; i < 6; i++ {
		if f.Planes[i].DistanceToPoint(center) <= negRadius {
			return false
		}
	}
	return true
}

// IntersectsBox determines whether the specified box is intersecting the frustum.
// The box is outside only when all of its corners are outside one plane.
func (f *Frustum) IntersectsBox(box Box3) bool {
	var p Vector3
	for i := 0; i < 6; i++ {
		plane := &f.Planes[i]
		// corner farthest along the plane normal
		if plane.Norm.X > 0 {
			p.X = box.Max.X
		} else {
			p.X = box.Min.X
		}
		if plane.Norm.Y > 0 {
			p.Y = box.Max.Y
		} else {
			p.Y = box.Min.Y
		}
		if plane.Norm.Z > 0 {
			p.Z = box.Max.Z
		} else {
			p.Z = box.Min.Z
		}
		if plane.DistanceToPoint(p) <= 0 {
			return false
		}
	}
	return true
}
