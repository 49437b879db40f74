// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hull

import "cogentcore.org/collide/math32"

// region is a pending sub-problem: the points strictly on the outer
// side of the directed line from first to second.
type region struct {
	points []math32.Vector3
	first  math32.Vector3
	second math32.Vector3
}

// quickHull returns the hull points on the outer side of the line
// from first to second, ending with second.
func (b *Builder) quickHull(pts []math32.Vector3, first, second math32.Vector3) []math32.Vector3 {
	if b.Strategy == Recursive {
		return b.recursive(pts, first, second)
	}
	return b.iterative(pts, first, second)
}

func (b *Builder) recursive(pts []math32.Vector3, first, second math32.Vector3) []math32.Vector3 {
	outside, far, ok := b.split(pts, first, second)
	if !ok {
		return []math32.Vector3{second}
	}
	res := b.recursive(outside, first, far)
	return append(res, b.recursive(outside, far, second)...)
}

func (b *Builder) iterative(pts []math32.Vector3, first, second math32.Vector3) []math32.Vector3 {
	var res []math32.Vector3
	stack := []region{{pts, first, second}}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		outside, far, ok := b.split(r.points, r.first, r.second)
		if !ok {
			res = append(res, r.second)
			continue
		}
		// the first half is pushed last so it is emitted first
		stack = append(stack, region{outside, far, r.second}, region{outside, r.first, far})
	}
	return res
}

// split returns the points strictly on the outer side of the line from
// first to second, and the one farthest from the line. ok is false if
// there are no such points. The first of equally far points wins.
func (b *Builder) split(pts []math32.Vector3, first, second math32.Vector3) (outside []math32.Vector3, far math32.Vector3, ok bool) {
	fu, fv := b.Plane.project(first)
	su, sv := b.Plane.project(second)
	lu, lv := su-fu, sv-fv
	var maxDist float64
	for _, p := range pts {
		pu, pv := b.Plane.project(p)
		d := (pv-fv)*lu - (pu-fu)*lv
		if d <= 0 {
			continue
		}
		outside = append(outside, p)
		if d > maxDist {
			maxDist = d
			far = p
			ok = true
		}
	}
	return
}
