// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import (
	"fmt"
	"log/slog"

	"cogentcore.org/collide/collide/hull"
	"cogentcore.org/collide/math32"
)

// Mesh is the vertex source of a [MeshCollider]. It is owned by the
// asset loading system, which may finish loading it at any time.
type Mesh interface {

	// IsLoaded returns whether the vertices are available.
	IsLoaded() bool

	// Vertices returns the vertex positions as a flat list of
	// x, y, z triples. It is only called once the mesh is loaded.
	Vertices() []float32
}

// MeshCollider derives a collider from the convex hull of a mesh.
// It polls the mesh every frame in [MeshCollider.Update], and on the
// first frame the mesh is loaded it builds the hull and the authored
// shape, exactly once.
type MeshCollider struct {

	// Mesh is the vertex source.
	Mesh Mesh

	// Shape is the kind of the derived shape: AABB, Sphere or OBB.
	Shape Kinds

	// Hull is the convex hull of the mesh, nil until it is loaded.
	Hull *hull.Hull

	authored Collider
	runtime  Collider
	opts     []hull.Option
	builds   int
}

// NewMeshCollider returns a new collider of the given kind for the mesh.
// Only the [KindAABB], [KindSphere] and [KindOBB] kinds can be derived
// from a hull; other kinds return [ErrUnsupported].
func NewMeshCollider(mesh Mesh, kind Kinds, opts ...hull.Option) (*MeshCollider, error) {
	if mesh == nil {
		return nil, fmt.Errorf("%w: nil mesh", ErrInvalidArgument)
	}
	switch kind {
	case KindAABB, KindSphere, KindOBB:
	default:
		return nil, fmt.Errorf("%w: mesh collider of kind %v", ErrUnsupported, kind)
	}
	return &MeshCollider{Mesh: mesh, Shape: kind, opts: opts}, nil
}

// IsReady returns whether the authored shape has been built.
func (mc *MeshCollider) IsReady() bool {
	return mc.authored != nil
}

// Authored returns the shape in model coordinates, or nil before
// the mesh is loaded.
func (mc *MeshCollider) Authored() Collider {
	return mc.authored
}

// Runtime returns the shape transformed by the last [MeshCollider.Update],
// or nil before the mesh is loaded.
func (mc *MeshCollider) Runtime() Collider {
	return mc.runtime
}

// Update is called once per frame. It builds the authored shape if the
// mesh has just been loaded, recomputes the runtime shape from the
// transform, and adds it to reg if reg is not nil. It returns the
// runtime shape and false while the mesh is not yet loaded.
func (mc *MeshCollider) Update(tr Transform, reg *Registry) (Collider, bool) {
	if mc.authored == nil {
		if !mc.Mesh.IsLoaded() {
			return nil, false
		}
		mc.build()
	}
	rt, err := Update(mc.authored, tr, mc.runtime)
	if err != nil {
		slog.Error("mesh collider update", "err", err)
		return mc.runtime, false
	}
	mc.runtime = rt
	if reg != nil {
		reg.Add(rt)
	}
	return rt, true
}

// build computes the hull of the mesh and the authored shape enclosing it.
// The hull gives the silhouette in its plane, and the vertex range along
// the plane normal gives the depth.
func (mc *MeshCollider) build() {
	mc.builds++
	pts := hull.Points(mc.Mesh.Vertices())
	b := hull.NewBuilder(mc.opts...)
	mc.Hull = b.Build(pts)
	if mc.Hull.IsEmpty() {
		slog.Warn("mesh collider: mesh has no vertices", "shape", mc.Shape)
		mc.authored = shapeFromHull(mc.Shape, mc.Hull, 0, 0)
		return
	}
	dim := b.Plane.Normal()
	lo, hi := math32.Infinity, -math32.Infinity
	for _, p := range pts {
		if !p.IsFinite() {
			continue
		}
		lo = math32.Min(lo, p.Dim(dim))
		hi = math32.Max(hi, p.Dim(dim))
	}
	mc.authored = shapeFromHull(mc.Shape, mc.Hull, lo, hi)
}

// shapeFromHull returns the shape of the given kind enclosing the hull
// points, extended to [lo, hi] along the hull plane normal.
// An empty hull gives a zero size shape at the origin.
func shapeFromHull(kind Kinds, h *hull.Hull, lo, hi float32) Collider {
	b := math32.Box3{}
	if !h.IsEmpty() {
		dim := h.Plane.Normal()
		b = h.Bounds()
		b.Min.SetDim(dim, lo)
		b.Max.SetDim(dim, hi)
	}
	switch kind {
	case KindSphere:
		c := b.Center()
		dim := h.Plane.Normal()
		var r2 float32
		for _, p := range h.Points {
			p.SetDim(dim, c.Dim(dim))
			r2 = math32.Max(r2, c.DistanceToSquared(p))
		}
		depth := (hi - lo) / 2
		return NewSphere(c, math32.Sqrt(r2+depth*depth))
	case KindOBB:
		return NewOBBFromAABB(NewAABBFromBox(b))
	}
	return NewAABBFromBox(b)
}
