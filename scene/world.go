// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"cogentcore.org/collide/base/errors"
	"cogentcore.org/collide/collide"
	"cogentcore.org/collide/collide/hull"
	"cogentcore.org/collide/math32"
	"golang.org/x/sync/errgroup"
)

// Body is a simulated entity of a [World].
type Body struct {

	// Name is the entity name.
	Name string

	// Transform is the current transform, advanced every frame.
	Transform collide.Transform

	// Velocity is added to the position every frame.
	Velocity math32.Vector3

	// Spin is added to the rotation every frame, in degrees.
	Spin math32.Vector3

	// Authored is the explicit shape, nil for mesh bodies.
	Authored collide.Collider

	// Mesh derives the shape of mesh bodies.
	Mesh *collide.MeshCollider

	runtime collide.Collider
}

// Collider returns the runtime shape of the last frame,
// or nil if the body has no shape yet.
func (b *Body) Collider() collide.Collider {
	return b.runtime
}

// update advances the transform (except on the first frame) and
// recomputes the runtime shape, adding it to reg. It returns false
// while a mesh body is waiting for its mesh.
func (b *Body) update(first bool, reg *collide.Registry) (bool, error) {
	if !first {
		b.Transform.Position = b.Transform.Position.Add(b.Velocity)
		b.Transform.Rotation = b.Transform.Rotation.Add(b.Spin)
	}
	if b.Mesh != nil {
		rt, ok := b.Mesh.Update(b.Transform, reg)
		if ok {
			b.runtime = rt
		}
		return ok, nil
	}
	rt, err := collide.Update(b.Authored, b.Transform, b.runtime)
	if err != nil {
		return false, err
	}
	b.runtime = rt
	reg.Add(rt)
	return true, nil
}

// namedRay is a scene ray in world space.
type namedRay struct {
	name string
	ray  collide.Ray
}

// World simulates the entities of a [Scene] frame by frame.
// It is not safe for concurrent use; only mesh loading is asynchronous.
type World struct {

	// Scene is the scene description.
	Scene *Scene

	// Camera is the scene camera.
	Camera *collide.PerspectiveCamera

	// Viewport is the screen size of the camera.
	Viewport collide.Viewport

	// Bodies are the simulated entities, in scene order.
	Bodies []*Body

	// Registry collects the debug draw shapes of each frame.
	Registry *collide.Registry

	// Frame is the number of frames simulated so far.
	Frame int

	rays    []namedRay
	frustum *math32.Frustum
	loads   *errgroup.Group
}

// NewWorld returns a new world for the scene, starting the loading
// of any mesh files, which is canceled with ctx.
func NewWorld(ctx context.Context, sc *Scene) (*World, error) {
	if sc == nil {
		return nil, fmt.Errorf("scene.NewWorld: %w: nil scene", collide.ErrInvalidArgument)
	}
	w := &World{Scene: sc, Registry: collide.NewRegistry()}
	w.Camera, w.Viewport = sc.Camera.ViewCamera()
	w.frustum = w.Camera.Frustum()
	// a failed load does not cancel the others
	g := &errgroup.Group{}
	w.loads = g

	for i := range sc.Entities {
		e, err := sc.Resolve(i)
		if err != nil {
			return nil, err
		}
		b := &Body{
			Name:      e.Name,
			Transform: e.Placement.Transform(),
			Velocity:  e.Velocity.Vector3(),
			Spin:      e.Spin.Vector3(),
		}
		switch {
		case e.Shape != nil:
			b.Authored, err = e.Shape.Collider()
		case e.Mesh != nil:
			mesh := loadMesh(ctx, g, sc.Dir, e.Name, e.Mesh)
			b.Mesh, err = collide.NewMeshCollider(mesh, e.Mesh.Kind, hull.WithPlane(e.Mesh.Plane), hull.WithStrategy(e.Mesh.Strategy))
		default:
			err = errors.New("needs a shape or a mesh")
		}
		if err != nil {
			return nil, fmt.Errorf("entity %q: %w", e.Name, err)
		}
		w.Bodies = append(w.Bodies, b)
	}

	for _, r := range sc.Rays {
		var ray collide.Ray
		var err error
		if len(r.Screen) == 2 {
			ray, err = collide.ScreenRay(w.Camera, w.Viewport, r.Screen[0], r.Screen[1])
		} else {
			ray, err = collide.NewRay(r.Origin.Vector3(), r.Direction.Vector3())
		}
		if err != nil {
			return nil, fmt.Errorf("ray %q: %w", r.Name, err)
		}
		w.rays = append(w.rays, namedRay{name: r.Name, ray: ray})
	}
	return w, nil
}

// Wait waits for all mesh files to be loaded, returning the
// first loading error.
func (w *World) Wait() error {
	return w.loads.Wait()
}

// Body returns the body with the given name, or nil.
func (w *World) Body(name string) *Body {
	for _, b := range w.Bodies {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// Step simulates one frame: it updates every body, then tests every
// pair of bodies, casts the rays and culls against the camera frustum.
// Pairs without an intersection test are counted as unsupported.
func (w *World) Step() (*FrameReport, error) {
	fr := &FrameReport{Frame: w.Frame}
	var live []*Body
	for _, b := range w.Bodies {
		ok, err := b.update(w.Frame == 0, w.Registry)
		if err != nil {
			return nil, fmt.Errorf("frame %d: body %q: %w", w.Frame, b.Name, err)
		}
		if !ok {
			fr.Pending = append(fr.Pending, b.Name)
			continue
		}
		live = append(live, b)
	}

	for i, a := range live {
		for _, b := range live[i+1:] {
			res, err := collide.Intersect(a.runtime, b.runtime)
			if errors.Is(err, collide.ErrUnsupported) {
				fr.Unsupported++
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("frame %d: %q vs %q: %w", w.Frame, a.Name, b.Name, err)
			}
			if res.Overlapping {
				fr.Contacts = append(fr.Contacts, Contact{A: a.Name, B: b.Name, Result: res})
			}
		}
	}

	for _, r := range w.rays {
		hit := Hit{Ray: r.name}
		best := float32(math.MaxFloat32)
		for _, b := range live {
			rh, err := b.runtime.IntersectsRay(r.ray)
			if err != nil {
				continue
			}
			if rh.Hit && rh.Distance < best {
				best = rh.Distance
				hit.Body, hit.RayHit = b.Name, rh
			}
		}
		fr.Hits = append(fr.Hits, hit)
	}

	for _, b := range live {
		if b.runtime.InFrustum(w.frustum) {
			fr.Visible = append(fr.Visible, b.Name)
		}
	}
	fr.Drawn = w.Registry.EndFrame()
	w.Frame++
	return fr, nil
}

// Run simulates the given number of frames, or the scene's frame
// count if frames is not positive. It stops early when ctx is done.
func (w *World) Run(ctx context.Context, frames int) (*Report, error) {
	if frames <= 0 {
		frames = w.Scene.Frames
	}
	rep := &Report{}
	for range frames {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		fr, err := w.Step()
		if err != nil {
			return rep, err
		}
		rep.Frames = append(rep.Frames, fr)
	}
	slog.Debug("scene run", "frames", len(rep.Frames), "bodies", len(w.Bodies))
	return rep, nil
}
