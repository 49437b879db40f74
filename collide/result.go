// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import (
	"fmt"

	"cogentcore.org/collide/math32"
)

// Result is the result of a pairwise intersection test.
// Every shape pair reports Gap with the same convention:
// negative is a penetration depth of |Gap|, positive is
// the separation between the two shapes.
type Result struct {

	// Overlapping is whether the two shapes intersect.
	Overlapping bool

	// Gap is the signed linear gap between the two shapes.
	Gap float32
}

func (r Result) String() string {
	if r.Overlapping {
		return fmt.Sprintf("overlapping (penetration %g)", r.Penetration())
	}
	return fmt.Sprintf("separated (gap %g)", r.Separation())
}

// Penetration returns the penetration depth, 0 when separated.
func (r Result) Penetration() float32 {
	return math32.Max(-r.Gap, 0)
}

// Separation returns the separation distance, 0 when penetrating.
func (r Result) Separation() float32 {
	return math32.Max(r.Gap, 0)
}

// RayHit is the result of a ray intersection test.
type RayHit struct {

	// Hit is whether the ray hits the shape.
	Hit bool

	// Distance is the nearest non-negative ray parameter at which the
	// ray crosses the surface of the shape: the entry point, or the
	// exit point if the origin is inside the shape.
	Distance float32

	// Point is the world position of the hit.
	Point math32.Vector3
}

func (h RayHit) String() string {
	if !h.Hit {
		return "miss"
	}
	return fmt.Sprintf("hit at %g %v", h.Distance, h.Point)
}
