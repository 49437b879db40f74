// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import (
	"fmt"

	"cogentcore.org/collide/math32"
)

// Ray is a half line from Origin along the unit direction Dir.
type Ray struct {

	// Origin is the start of the ray.
	Origin math32.Vector3

	// Dir is the unit length direction of the ray.
	Dir math32.Vector3
}

// NewRay returns a new ray with the direction normalized.
// A zero length or non-finite direction returns [ErrDegenerateRay].
func NewRay(origin, dir math32.Vector3) (Ray, error) {
	if !dir.IsFinite() || !origin.IsFinite() {
		return Ray{}, fmt.Errorf("%w: origin %v direction %v", ErrDegenerateRay, origin, dir)
	}
	l := dir.Length()
	if l < Epsilon {
		return Ray{}, fmt.Errorf("%w: zero direction", ErrDegenerateRay)
	}
	return Ray{Origin: origin, Dir: dir.MulScalar(1 / l)}, nil
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray{origin: %v, dir: %v}", r.Origin, r.Dir)
}

// PointAt returns the point at distance t along the ray.
func (r Ray) PointAt(t float32) math32.Vector3 {
	return r.Origin.Add(r.Dir.MulScalar(t))
}

// Camera provides the view and projection matrices of a camera.
type Camera interface {

	// ViewMatrix returns the world to camera transform.
	ViewMatrix() *math32.Matrix4

	// ProjectionMatrix returns the camera to clip space transform.
	ProjectionMatrix() *math32.Matrix4
}

// Viewport is the size of the screen area in pixels.
// Screen coordinates have their origin at the top left.
type Viewport struct {
	Width  float32
	Height float32
}

// ScreenRay returns the world space ray through the screen point x, y
// (in pixels) of the camera: it starts at the camera position.
func ScreenRay(cam Camera, vp Viewport, x, y float32) (Ray, error) {
	if cam == nil || vp.Width <= 0 || vp.Height <= 0 {
		return Ray{}, fmt.Errorf("%w: camera %v viewport %v", ErrInvalidArgument, cam, vp)
	}
	nx := 2*x/vp.Width - 1
	ny := 1 - 2*y/vp.Height

	invProj, err := cam.ProjectionMatrix().Inverse()
	if err != nil {
		return Ray{}, fmt.Errorf("%w: projection: %w", ErrInvalidArgument, err)
	}
	invView, err := cam.ViewMatrix().Inverse()
	if err != nil {
		return Ray{}, fmt.Errorf("%w: view: %w", ErrInvalidArgument, err)
	}

	eye := math32.Vec4(nx, ny, -1, 1).MulMatrix4(invProj)
	eye = math32.Vec4(eye.X, eye.Y, -1, 0) // direction into the screen
	dir := eye.MulMatrix4(invView).Vector3()
	origin := math32.Vec4(0, 0, 0, 1).MulMatrix4(invView).Vector3()
	return NewRay(origin, dir)
}

// ToScreen projects the world point through the camera into screen
// pixels, with Z holding the normalized depth. It returns false when
// the point is behind the camera.
func ToScreen(cam Camera, vp Viewport, p math32.Vector3) (math32.Vector3, bool) {
	clip := math32.Vector4FromVector3(p, 1).MulMatrix4(cam.ViewMatrix()).MulMatrix4(cam.ProjectionMatrix())
	if clip.W <= 0 {
		return math32.Vector3{}, false
	}
	ndc := clip.PerspDiv()
	return math32.Vec3((ndc.X+1)/2*vp.Width, (1-(ndc.Y+1)/2)*vp.Height, ndc.Z), true
}

// PerspectiveCamera is a simple [Camera] looking from Eye at Target.
type PerspectiveCamera struct {

	// Eye is the camera position.
	Eye math32.Vector3

	// Target is the point the camera looks at.
	Target math32.Vector3

	// Up is the up direction.
	Up math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the width / height ratio.
	Aspect float32

	// Near is the near clipping distance.
	Near float32

	// Far is the far clipping distance.
	Far float32
}

// NewPerspectiveCamera returns a camera with a 30 degree field of view
// and clipping distances of 0.01 and 1000, sized for the viewport.
func NewPerspectiveCamera(eye, target math32.Vector3, vp Viewport) *PerspectiveCamera {
	aspect := float32(1)
	if vp.Height > 0 {
		aspect = vp.Width / vp.Height
	}
	return &PerspectiveCamera{Eye: eye, Target: target, Up: math32.Vec3(0, 1, 0), FOV: 30, Aspect: aspect, Near: 0.01, Far: 1000}
}

func (pc *PerspectiveCamera) ViewMatrix() *math32.Matrix4 {
	return math32.NewLookAt(pc.Eye, pc.Target, pc.Up)
}

func (pc *PerspectiveCamera) ProjectionMatrix() *math32.Matrix4 {
	return math32.NewPerspective(pc.FOV, pc.Aspect, pc.Near, pc.Far)
}

// Frustum returns the view frustum of the camera.
func (pc *PerspectiveCamera) Frustum() *math32.Frustum {
	return math32.NewFrustumFromMatrix(pc.ProjectionMatrix().Mul(pc.ViewMatrix()))
}
