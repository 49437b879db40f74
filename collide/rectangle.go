// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import (
	"fmt"

	"cogentcore.org/collide/math32"
)

// Rectangle is a 2D rectangle in the XY plane, with its minimum corner
// at Pos. It only intersects other rectangles; pairs with 3D shapes
// and rays return [ErrUnsupported].
type Rectangle struct {

	// Pos is the minimum corner.
	Pos math32.Vector2

	// Width is the size along X.
	Width float32

	// Height is the size along Y.
	Height float32
}

// NewRectangle returns a new rectangle. A negative width or height
// moves the corner so that the sizes are positive.
func NewRectangle(x, y, width, height float32) *Rectangle {
	if width < 0 {
		x += width
		width = -width
	}
	if height < 0 {
		y += height
		height = -height
	}
	return &Rectangle{Pos: math32.Vec2(x, y), Width: width, Height: height}
}

func (r *Rectangle) collider() {}

func (r *Rectangle) Kind() Kinds { return KindRectangle }

func (r *Rectangle) String() string {
	return fmt.Sprintf("Rectangle{pos: %v, size: %gx%g}", r.Pos, r.Width, r.Height)
}

// Clone returns a copy of this rectangle.
func (r *Rectangle) Clone() *Rectangle {
	nr := *r
	return &nr
}

// Max returns the maximum corner.
func (r *Rectangle) Max() math32.Vector2 {
	return r.Pos.Add(math32.Vec2(r.Width, r.Height))
}

// TransformInto sets dst to this rectangle scaled and moved in the XY plane
// by tr and returns it. The corner is transformed as the point (x, y, 0) and
// projected back onto XY; the rectangle itself stays axis aligned.
// A nil dst is allocated; dst may be r.
func (r *Rectangle) TransformInto(dst *Rectangle, tr Transform) *Rectangle {
	if dst == nil {
		dst = &Rectangle{}
	}
	s := tr.AbsScale()
	p := tr.Apply(math32.Vec3(r.Pos.X, r.Pos.Y, 0))
	dst.Pos = math32.Vec2(p.X, p.Y)
	dst.Width = r.Width * s
	dst.Height = r.Height * s
	return dst
}

func (r *Rectangle) Transformed(tr Transform) Collider {
	return r.TransformInto(nil, tr)
}

func (r *Rectangle) Intersects(other Collider) (Result, error) {
	return Intersect(r, other)
}

func (r *Rectangle) IntersectsRay(ray Ray) (RayHit, error) {
	return RayHit{}, unsupportedRay(KindRectangle)
}

// Contains returns whether the X and Y of the point are within the
// half-open rectangle [x, x+w) x [y, y+h). Z is ignored.
func (r *Rectangle) Contains(p math32.Vector3) bool {
	mx := r.Max()
	return p.X >= r.Pos.X && p.X < mx.X && p.Y >= r.Pos.Y && p.Y < mx.Y
}

// ContainsCollider returns whether other is entirely inside the rectangle.
// It is implemented for rectangles.
func (r *Rectangle) ContainsCollider(other Collider) (bool, error) {
	if isNil(other) {
		return false, ErrInvalidArgument
	}
	o, ok := other.(*Rectangle)
	if !ok {
		return false, unsupportedPair(KindRectangle, other.Kind())
	}
	rmx, omx := r.Max(), o.Max()
	return o.Pos.X >= r.Pos.X && o.Pos.Y >= r.Pos.Y && omx.X <= rmx.X && omx.Y <= rmx.Y, nil
}

// InFrustum tests the rectangle as a flat box at z = 0.
func (r *Rectangle) InFrustum(f *math32.Frustum) bool {
	return f.IntersectsBox(r.Bounds())
}

func (r *Rectangle) Bounds() math32.Box3 {
	mx := r.Max()
	return math32.B3(r.Pos.X, r.Pos.Y, 0, mx.X, mx.Y, 0)
}

// Volume returns the area of the rectangle.
func (r *Rectangle) Volume() float32 {
	return r.Width * r.Height
}

// SurfaceArea returns the perimeter of the rectangle.
func (r *Rectangle) SurfaceArea() float32 {
	return 2 * (r.Width + r.Height)
}

// Inertia treats the rectangle as a thin plate in the XY plane.
func (r *Rectangle) Inertia(mass float32) math32.Vector3 {
	w2, h2 := r.Width*r.Width, r.Height*r.Height
	return math32.Vec3(mass*h2/12, mass*w2/12, mass*(w2+h2)/12)
}

func (r *Rectangle) RenderHint() RenderHint {
	return RenderHint{
		Model:    RectModel,
		Center:   math32.Vec3(r.Pos.X+r.Width/2, r.Pos.Y+r.Height/2, 0),
		Rotation: math32.QuatIdentity(),
		Scale:    math32.Vec3(r.Width/2, r.Height/2, 0),
		Color:    "#00ff00",
	}
}
