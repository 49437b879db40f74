// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import (
	"fmt"

	"cogentcore.org/collide/math32"
)

// BoxMesh is a set of axis-aligned boxes moved together, approximating
// a concave shape. Boxes holds the authored boxes; Update recomputes
// the runtime boxes that the queries use.
type BoxMesh struct {

	// Boxes are the authored boxes.
	Boxes []*AABB

	runtime []*AABB
}

// NewBoxMesh returns a new mesh of the given boxes, with the runtime
// boxes at the identity transform.
func NewBoxMesh(boxes ...*AABB) *BoxMesh {
	bm := &BoxMesh{Boxes: boxes}
	bm.Update(Identity())
	return bm
}

// Update recomputes the runtime boxes from the authored ones.
func (bm *BoxMesh) Update(tr Transform) {
	if len(bm.runtime) != len(bm.Boxes) {
		bm.runtime = make([]*AABB, len(bm.Boxes))
	}
	for i, b := range bm.Boxes {
		bm.runtime[i] = b.TransformInto(bm.runtime[i], tr)
	}
}

// Runtime returns the transformed boxes.
func (bm *BoxMesh) Runtime() []*AABB {
	return bm.runtime
}

// Bounds returns the box enclosing all runtime boxes.
func (bm *BoxMesh) Bounds() math32.Box3 {
	b := math32.B3Empty()
	for _, r := range bm.runtime {
		b.ExpandByBox(r.Box())
	}
	return b
}

// IntersectsAABB tests every runtime box against b: the result overlaps
// if any box does, with the smallest gap of all of them. A mesh with no
// boxes never overlaps and reports a Gap of +Inf.
func (bm *BoxMesh) IntersectsAABB(b *AABB) (Result, error) {
	if b == nil {
		return Result{}, fmt.Errorf("%w: nil box", ErrInvalidArgument)
	}
	res := Result{Gap: math32.Infinity}
	for _, r := range bm.runtime {
		ri, err := Intersect(r, b)
		if err != nil {
			return Result{}, err
		}
		res.Overlapping = res.Overlapping || ri.Overlapping
		res.Gap = math32.Min(res.Gap, ri.Gap)
	}
	return res, nil
}

// IntersectsMesh tests every runtime box of other against this mesh,
// aggregating like [BoxMesh.IntersectsAABB]; if either mesh is empty
// the Gap is +Inf.
func (bm *BoxMesh) IntersectsMesh(other *BoxMesh) (Result, error) {
	if other == nil {
		return Result{}, fmt.Errorf("%w: nil box mesh", ErrInvalidArgument)
	}
	res := Result{Gap: math32.Infinity}
	for _, b := range other.runtime {
		ri, err := bm.IntersectsAABB(b)
		if err != nil {
			return Result{}, err
		}
		res.Overlapping = res.Overlapping || ri.Overlapping
		res.Gap = math32.Min(res.Gap, ri.Gap)
	}
	return res, nil
}

// Contains returns whether any runtime box contains the point.
func (bm *BoxMesh) Contains(p math32.Vector3) bool {
	for _, r := range bm.runtime {
		if r.Contains(p) {
			return true
		}
	}
	return false
}
