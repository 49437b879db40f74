// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import (
	"testing"

	"cogentcore.org/collide/base/tolassert"
	"cogentcore.org/collide/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec(t *testing.T, want, got math32.Vector3, msgAndArgs ...any) {
	t.Helper()
	tolassert.Equal(t, want.X, got.X, msgAndArgs...)
	tolassert.Equal(t, want.Y, got.Y, msgAndArgs...)
	tolassert.Equal(t, want.Z, got.Z, msgAndArgs...)
}

// sampleShapes returns one authored shape of every kind.
func sampleShapes() []Collider {
	return []Collider{
		NewAABB(math32.Vec3(-1, -2, -3), math32.Vec3(1, 2, 3)),
		NewOBB(math32.Vec3(1, 2, 3), math32.Vec3(1, 0.5, 2), math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), math32.Pi/6)),
		NewSphere(math32.Vec3(0.5, 0.5, 0.5), 2),
		NewCylinder(math32.Vec3(0, 1, 0), 1, 4),
		NewCone(math32.Vec3(0, -1, 0), 2, 3),
		NewRectangle(1, 2, 3, 4),
	}
}

func TestRoundTrip(t *testing.T) {
	a := NewAABB(math32.Vec3(1, 2, 3), math32.Vec3(4, 5, 6))
	assert.Equal(t, math32.Vec3(1, 2, 3), a.Min)
	assert.Equal(t, math32.Vec3(4, 5, 6), a.Max)
	assert.Equal(t, math32.Vec3(3, 3, 3), a.Size())
	assert.Equal(t, float32(3), a.Width())

	b := NewAABB(math32.Vec3(4, 2, 6), math32.Vec3(1, 5, 3))
	assert.Equal(t, *a, *b, "extents are ordered")

	s := NewSphere(math32.Vec3(1, 2, 3), 4)
	assert.Equal(t, math32.Vec3(1, 2, 3), s.Center)
	assert.Equal(t, float32(4), s.Radius)

	cy := NewCylinder(math32.Vec3(1, 2, 3), 0.5, 2)
	assert.Equal(t, float32(0.5), cy.Radius)
	assert.Equal(t, float32(2), cy.Length)

	co := NewCone(math32.Vec3(1, 2, 3), 0.5, 2)
	assert.Equal(t, math32.Vec3(1, 2, 3), co.Base)
	assert.Equal(t, float32(DefaultConeTheta), co.Theta)
	assert.Equal(t, math32.Vec3(1, 4, 3), co.Apex())

	r := NewRectangle(1, 2, 3, 4)
	assert.Equal(t, math32.Vec2(1, 2), r.Pos)
	assert.Equal(t, math32.Vec2(4, 6), r.Max())
	assert.Equal(t, *r, *NewRectangle(4, 6, -3, -4))

	o := NewOBB(math32.Vec3(1, 2, 3), math32.Vec3(-1, 2, 3), math32.Quat{})
	assert.Equal(t, math32.Vec3(1, 2, 3), o.HalfSize)
	assert.Equal(t, math32.QuatIdentity(), o.Rotation)
}

func TestNegativeRadius(t *testing.T) {
	assert.Equal(t, float32(0), NewSphere(math32.Vector3{}, -1).Radius)
	assert.Equal(t, float32(0), NewSphere(math32.Vector3{}, math32.Sqrt(-1)).Radius)
	assert.Equal(t, float32(0), NewCylinder(math32.Vector3{}, -1, -1).Length)
}

func TestIdentityIsIdempotent(t *testing.T) {
	for _, c := range sampleShapes() {
		tc := c.Transformed(Identity())
		assert.Equal(t, c, tc, c.Kind().String())
		assert.NotSame(t, c, tc)
		tc2 := tc.Transformed(Identity())
		assert.Equal(t, tc, tc2)
	}
}

func TestUpdateInPlace(t *testing.T) {
	src := NewSphere(math32.Vec3(1, 0, 0), 1)
	dst := NewSphere(math32.Vector3{}, 0)
	tr := NewTransform(math32.Vec3(0, 5, 0), math32.Vector3{}, 2)
	got, err := Update(src, tr, dst)
	require.NoError(t, err)
	assert.Same(t, dst, got)
	assert.Equal(t, math32.Vec3(2, 5, 0), dst.Center)
	assert.Equal(t, float32(2), dst.Radius)

	got, err = Update(src, tr, nil)
	require.NoError(t, err)
	assert.Equal(t, dst, got)

	_, err = Update(src, tr, NewAABB(math32.Vector3{}, math32.Vector3{}))
	assert.ErrorIs(t, err, ErrKindMismatch)

	_, err = Update(nil, tr, dst)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	var nilSphere *Sphere
	_, err = Update(nilSphere, tr, dst)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTransformOrder(t *testing.T) {
	a := NewAABB(math32.Vec3(0, 0, 0), math32.Vec3(2, 1, 1))
	tr := NewTransform(math32.Vec3(10, 0, 0), math32.Vec3(0, 0, 90), 2)
	b := a.TransformInto(nil, tr)
	// scaled to 4x2x2, rotated so X becomes Y, then moved
	assertVec(t, math32.Vec3(8, 0, 0), b.Min)
	assertVec(t, math32.Vec3(10, 4, 2), b.Max)

	// negative scale uses its magnitude
	tr.Scale = -2
	assertVec(t, b.Max, a.TransformInto(nil, tr).Max)

	s := NewSphere(math32.Vec3(1, 0, 0), 1).TransformInto(nil, tr)
	assertVec(t, math32.Vec3(10, 2, 0), s.Center)
	assert.Equal(t, float32(2), s.Radius)

	o := NewOBB(math32.Vector3{}, math32.Vec3(2, 1, 1), math32.QuatIdentity())
	ob := o.Transformed(NewTransform(math32.Vector3{}, math32.Vec3(0, 0, 90), 1)).Bounds()
	assertVec(t, math32.Vec3(-1, -2, -1), ob.Min)
	assertVec(t, math32.Vec3(1, 2, 1), ob.Max)

	// cylinder, cone and rectangle keep their axes, but their positions
	// turn with the transform like every other shape
	cy := NewCylinder(math32.Vec3(1, 0, 0), 1, 2).TransformInto(nil, tr)
	assertVec(t, s.Center, cy.Center)
	assert.Equal(t, float32(4), cy.Length)
	co := NewCone(math32.Vec3(1, 0, 0), 1, 2).TransformInto(nil, tr)
	assertVec(t, s.Center, co.Base)
	r := NewRectangle(1, 1, 1, 1).TransformInto(nil, tr)
	tolassert.EqualTolSlice(t, []float32{8, 2}, []float32{r.Pos.X, r.Pos.Y}, 1.0e-5)
	assert.Equal(t, float32(2), r.Width)
}

func TestAABBOps(t *testing.T) {
	a := NewAABB(math32.Vec3(0, 0, 0), math32.Vec3(1, 1, 1))
	b := NewAABB(math32.Vec3(2, -1, 0), math32.Vec3(3, 0.5, 4))

	c := a.Combine(b)
	for _, box := range []*AABB{a, b} {
		for _, p := range box.Box().Corners() {
			assert.True(t, c.Contains(p), "corner %v", p)
		}
	}
	assert.Equal(t, math32.Vec3(0, -1, 0), c.Min)
	assert.Equal(t, math32.Vec3(3, 1, 4), c.Max)

	e := a.Expand(1, 0, 0.5)
	assert.Equal(t, math32.Vec3(-1, 0, -0.5), e.Min)
	assert.Equal(t, math32.Vec3(2, 1, 1.5), e.Max)

	s := a.Stretch(-1, 2, 0)
	assert.Equal(t, math32.Vec3(-1, 0, 0), s.Min)
	assert.Equal(t, math32.Vec3(1, 3, 1), s.Max)

	sc := a.Scale(2, -1, 1)
	assert.Equal(t, math32.Vec3(0, -1, 0), sc.Min)
	assert.Equal(t, math32.Vec3(2, 0, 1), sc.Max)

	assert.True(t, a.Contains(math32.Vec3(1, 1, 1)), "inclusive max")
	assert.True(t, a.Contains(math32.Vec3(0, 0, 0)), "inclusive min")
	assert.False(t, a.Contains(math32.Vec3(1.01, 0.5, 0.5)))

	assert.Equal(t, float32(1), a.Volume())
	assert.Equal(t, float32(6), a.SurfaceArea())
	assert.Equal(t, math32.Vec3(0.5, 0.5, 0.5), a.Center())
}

func TestClipMovement(t *testing.T) {
	a := NewAABB(math32.Vec3(0, 0, 0), math32.Vec3(1, 1, 1))
	wall := NewAABB(math32.Vec3(2, 0, 0), math32.Vec3(3, 1, 1))

	assert.Equal(t, math32.Vec3(1, 0, 0), a.ClipMovement(wall, math32.Vec3(5, 0, 0)))
	assert.Equal(t, math32.Vec3(0.5, 0, 0), a.ClipMovement(wall, math32.Vec3(0.5, 0, 0)))
	assert.Equal(t, math32.Vec3(-5, 0, 0), a.ClipMovement(wall, math32.Vec3(-5, 0, 0)))
	// not overlapping on X, so Y movement is free
	assert.Equal(t, math32.Vec3(0, 3, 0), a.ClipMovement(wall, math32.Vec3(0, 3, 0)))

	floor := NewAABB(math32.Vec3(-5, -2, -5), math32.Vec3(5, -1, 5))
	assert.Equal(t, math32.Vec3(0, -1, 0), a.ClipMovement(floor, math32.Vec3(0, -4, 0)))
	// the boxes are unchanged
	assert.Equal(t, math32.Vec3(0, 0, 0), a.Min)
}

func TestSphereOps(t *testing.T) {
	s := NewSphere(math32.Vec3(1, 0, 0), 2)
	assert.True(t, s.Contains(math32.Vec3(3, 0, 0)))
	assert.False(t, s.Contains(math32.Vec3(3.1, 0, 0)))
	tolassert.Equal(t, 32.0/3*math32.Pi, s.Volume())
	tolassert.Equal(t, 16*math32.Pi, s.SurfaceArea())
	b := s.Bounds()
	assert.Equal(t, math32.Vec3(-1, -2, -2), b.Min)
	assert.Equal(t, math32.Vec3(3, 2, 2), b.Max)
}

func TestOtherShapes(t *testing.T) {
	cy := NewCylinder(math32.Vector3{}, 1, 2)
	assert.True(t, cy.Contains(math32.Vec3(0.5, 1, 0.5)))
	assert.False(t, cy.Contains(math32.Vec3(0, 1.5, 0)))
	assert.False(t, cy.Contains(math32.Vec3(1, 0, 1)))
	tolassert.Equal(t, 2*math32.Pi, cy.Volume())
	tolassert.Equal(t, 6*math32.Pi, cy.SurfaceArea())

	co := NewCone(math32.Vector3{}, 2, 4)
	assert.True(t, co.Contains(math32.Vec3(1.9, 0, 0)))
	assert.True(t, co.Contains(math32.Vec3(0.9, 2, 0)))
	assert.False(t, co.Contains(math32.Vec3(1.1, 2, 0)))
	assert.False(t, co.Contains(math32.Vec3(0, -0.1, 0)))
	tolassert.Equal(t, 16*math32.Pi/3, co.Volume())
	assert.Equal(t, math32.Vec3(0, 2, 0), co.RenderHint().Center)

	r := NewRectangle(0, 0, 2, 1)
	assert.True(t, r.Contains(math32.Vec3(0, 0, 7)))
	assert.False(t, r.Contains(math32.Vec3(2, 0.5, 0)), "half open")
	assert.Equal(t, float32(2), r.Volume())
	assert.Equal(t, float32(6), r.SurfaceArea())
	in, err := r.ContainsCollider(NewRectangle(0.5, 0, 1, 1))
	require.NoError(t, err)
	assert.True(t, in)
	_, err = r.ContainsCollider(NewSphere(math32.Vector3{}, 1))
	assert.ErrorIs(t, err, ErrUnsupported)

	o := NewOBB(math32.Vector3{}, math32.Vec3(1, 2, 3), math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), math32.Pi/4))
	tolassert.Equal(t, 48, o.Volume())
	tolassert.Equal(t, 88, o.SurfaceArea())
	assert.True(t, o.Contains(math32.Vec3(0, 1.9, 0)))
	assert.False(t, o.Contains(math32.Vec3(0, 2.1, 0)))
	local := o.ToLocal(math32.Vec3(1, 0, -1))
	assertVec(t, math32.Vec3(math32.Sqrt(2), 0, 0), local)
}

func TestInertia(t *testing.T) {
	box := math32.Vec3(52, 40, 20)
	assertVec(t, box, NewAABB(math32.Vector3{}, math32.Vec3(2, 4, 6)).Inertia(12))
	rot := math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), 0.3)
	assertVec(t, box, NewOBB(math32.Vec3(5, 5, 5), math32.Vec3(1, 2, 3), rot).Inertia(12), "in its own axes")
	assertVec(t, math32.Vec3(8, 8, 8), NewSphere(math32.Vec3(1, 0, 0), 2).Inertia(5))
	assertVec(t, math32.Vec3(7, 6, 7), NewCylinder(math32.Vector3{}, 1, 2).Inertia(12))
	assertVec(t, math32.Vec3(60, 24, 60), NewCone(math32.Vector3{}, 2, 8).Inertia(20))
	assertVec(t, math32.Vec3(1, 4, 5), NewRectangle(0, 0, 2, 1).Inertia(12))

	for _, c := range sampleShapes() {
		assert.Equal(t, math32.Vector3{}, c.Inertia(0), c.Kind().String())
		assertVec(t, c.Inertia(1).MulScalar(3), c.Inertia(3), c.Kind().String())
	}
}

func TestContainsCollider(t *testing.T) {
	big := NewAABB(math32.Vec3(-2, -2, -2), math32.Vec3(2, 2, 2))
	in, err := big.ContainsCollider(NewSphere(math32.Vector3{}, 1))
	require.NoError(t, err)
	assert.True(t, in)
	in, err = big.ContainsCollider(NewSphere(math32.Vec3(1.5, 0, 0), 1))
	require.NoError(t, err)
	assert.False(t, in)
	in, err = big.ContainsCollider(NewAABB(math32.Vec3(-1, -1, -1), math32.Vec3(2, 2, 2)))
	require.NoError(t, err)
	assert.True(t, in)

	s := NewSphere(math32.Vector3{}, 2)
	in, err = s.ContainsCollider(NewSphere(math32.Vec3(1, 0, 0), 1))
	require.NoError(t, err)
	assert.True(t, in)
	in, err = s.ContainsCollider(NewAABB(math32.Vec3(-1, -1, -1), math32.Vec3(1, 1, 1)))
	require.NoError(t, err)
	assert.True(t, in)
	in, err = s.ContainsCollider(NewAABB(math32.Vec3(-2, -2, -2), math32.Vec3(1, 1, 1)))
	require.NoError(t, err)
	assert.False(t, in)

	_, err = s.ContainsCollider(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewCylinder(math32.Vector3{}, 1, 1).ContainsCollider(s)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestBoxMesh(t *testing.T) {
	bm := NewBoxMesh(
		NewAABB(math32.Vec3(0, 0, 0), math32.Vec3(1, 1, 1)),
		NewAABB(math32.Vec3(3, 0, 0), math32.Vec3(4, 1, 1)),
	)
	gap := NewAABB(math32.Vec3(1.5, 0, 0), math32.Vec3(2.5, 1, 1))
	res, err := bm.IntersectsAABB(gap)
	require.NoError(t, err)
	assert.False(t, res.Overlapping)
	tolassert.Equal(t, 0.5, res.Gap)
	assert.False(t, bm.Contains(math32.Vec3(2, 0.5, 0.5)))

	bm.Update(NewTransform(math32.Vec3(1, 0, 0), math32.Vector3{}, 1))
	res, err = bm.IntersectsAABB(gap)
	require.NoError(t, err)
	assert.True(t, res.Overlapping)
	assert.True(t, bm.Contains(math32.Vec3(1.5, 0.5, 0.5)))
	b := bm.Bounds()
	assert.Equal(t, math32.Vec3(1, 0, 0), b.Min)
	assert.Equal(t, math32.Vec3(5, 1, 1), b.Max)
	// authored boxes are not changed by updates
	assert.Equal(t, math32.Vec3(0, 0, 0), bm.Boxes[0].Min)

	other := NewBoxMesh(gap)
	res, err = bm.IntersectsMesh(other)
	require.NoError(t, err)
	assert.True(t, res.Overlapping)

	_, err = bm.IntersectsAABB(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	empty := NewBoxMesh()
	res, err = empty.IntersectsAABB(gap)
	require.NoError(t, err)
	assert.False(t, res.Overlapping)
	assert.True(t, math32.IsInf(res.Gap, 1))
	res, err = bm.IntersectsMesh(empty)
	require.NoError(t, err)
	assert.True(t, math32.IsInf(res.Gap, 1))
	assert.True(t, empty.Bounds().IsEmpty())
}

func TestKinds(t *testing.T) {
	assert.Len(t, KindsValues(), int(KindsN))
	for i, c := range sampleShapes() {
		assert.Equal(t, Kinds(i), c.Kind())
		assert.NotEmpty(t, c.String())
		assert.NotEmpty(t, c.RenderHint().Model)
		assert.Equal(t, c, Clone(c))
	}
	var k Kinds
	require.NoError(t, k.UnmarshalText([]byte("sphere")))
	assert.Equal(t, KindSphere, k)
	assert.Error(t, k.SetString("torus"))
	assert.Equal(t, "Kinds(42)", Kinds(42).String())
	assert.Nil(t, Clone(nil))
}
