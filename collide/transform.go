// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import "cogentcore.org/collide/math32"

// Transform is the per-frame placement of a collider, supplied by its owner.
// It is applied to the authored shape as scale, then rotation, then translation.
type Transform struct {

	// Position is the translation.
	Position math32.Vector3

	// Rotation is the Euler rotation in degrees, in XYZ order.
	Rotation math32.Vector3

	// Scale is the uniform scale factor. Extents and radii use its absolute value.
	Scale float32
}

// Identity returns the transform that leaves a shape unchanged.
func Identity() Transform {
	return Transform{Scale: 1}
}

// NewTransform returns a transform with the given parameters.
func NewTransform(pos, rot math32.Vector3, scale float32) Transform {
	return Transform{Position: pos, Rotation: rot, Scale: scale}
}

// Quat returns the rotation as a quaternion.
func (tr Transform) Quat() math32.Quat {
	if tr.Rotation.IsNil() {
		return math32.QuatIdentity()
	}
	return math32.NewQuatEuler(tr.Rotation.MulScalar(math32.DegToRadFactor))
}

// IsRotated returns whether the transform has a non-zero rotation.
func (tr Transform) IsRotated() bool {
	return !tr.Rotation.IsNil()
}

// AbsScale returns the absolute value of the scale.
func (tr Transform) AbsScale() float32 {
	return math32.Abs(tr.Scale)
}

// Apply transforms a model space point into world space.
func (tr Transform) Apply(p math32.Vector3) math32.Vector3 {
	p = p.MulScalar(tr.AbsScale())
	if tr.IsRotated() {
		p = p.MulQuat(tr.Quat())
	}
	return p.Add(tr.Position)
}

// Matrix returns the transform as a 4x4 matrix.
func (tr Transform) Matrix() *math32.Matrix4 {
	return math32.Matrix4FromTransform(tr.Position, tr.Quat(), math32.Vector3Scalar(tr.AbsScale()))
}
