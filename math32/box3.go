// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit collision functionality.

package math32

// Box3 is an axis aligned 3D box given by its minimum and maximum corners.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// B3 returns a new [Box3] with the given corner coordinates.
func B3(x0, y0, z0, x1, y1, z1 float32) Box3 {
	return Box3{Vec3(x0, y0, z0), Vec3(x1, y1, z1)}
}

// B3Empty returns an empty [Box3] that any expansion replaces.
func B3Empty() Box3 {
	bx := Box3{}
	bx.SetEmpty()
	return bx
}

// SetEmpty makes the box empty: Min is +Infinity and Max is -Infinity.
func (b *Box3) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty returns whether Max is below Min on any axis.
func (b Box3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// ExpandByPoints grows the box to hold all of the points.
func (b *Box3) ExpandByPoints(points []Vector3) {
	for _, p := range points {
		b.ExpandByPoint(p)
	}
}

// ExpandByPoint grows the box to hold the point.
func (b *Box3) ExpandByPoint(point Vector3) {
	b.Min.SetMin(point)
	b.Max.SetMax(point)
}

// ExpandByBox grows the box to hold the other box.
func (b *Box3) ExpandByBox(box Box3) {
	b.ExpandByPoint(box.Min)
	b.ExpandByPoint(box.Max)
}

// Center returns the midpoint of the box.
func (b Box3) Center() Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size returns Max - Min.
func (b Box3) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint returns whether the point is inside the box or on its
// surface.
func (b Box3) ContainsPoint(point Vector3) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y &&
		point.Z >= b.Min.Z && point.Z <= b.Max.Z
}

// ContainsBox returns whether the other box is entirely inside this one.
func (b Box3) ContainsBox(box Box3) bool {
	return b.ContainsPoint(box.Min) && b.ContainsPoint(box.Max)
}

// IntersectsBox returns whether the boxes overlap or touch.
func (b Box3) IntersectsBox(other Box3) bool {
	return other.Max.X >= b.Min.X && other.Min.X <= b.Max.X &&
		other.Max.Y >= b.Min.Y && other.Min.Y <= b.Max.Y &&
		other.Max.Z >= b.Min.Z && other.Min.Z <= b.Max.Z
}

// ClampPoint returns the point of the box closest to the given point.
func (b Box3) ClampPoint(point Vector3) Vector3 {
	point.Clamp(b.Min, b.Max)
	return point
}

// Union returns the smallest box holding both boxes.
func (b Box3) Union(other Box3) Box3 {
	return Box3{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// MulQuat returns the box enclosing the corners of this box rotated by q.
func (b Box3) MulQuat(q Quat) Box3 {
	nb := B3Empty()
	for _, c := range b.Corners() {
		nb.ExpandByPoint(c.MulQuat(q))
	}
	return nb
}

// Corners returns the 8 corners of the box.
func (b Box3) Corners() [8]Vector3 {
	lo, hi := b.Min, b.Max
	return [8]Vector3{
		lo,
		Vec3(lo.X, lo.Y, hi.Z),
		Vec3(lo.X, hi.Y, lo.Z),
		Vec3(hi.X, lo.Y, lo.Z),
		hi,
		Vec3(hi.X, hi.Y, lo.Z),
		Vec3(hi.X, lo.Y, hi.Z),
		Vec3(lo.X, hi.Y, hi.Z),
	}
}

// Volume returns the volume of the box, or 0 if it is empty.
func (b Box3) Volume() float32 {
	if b.IsEmpty() {
		return 0
	}
	sz := b.Size()
	return sz.X * sz.Y * sz.Z
}

// Translate returns the box moved by offset.
func (b Box3) Translate(offset Vector3) Box3 {
	return Box3{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}
