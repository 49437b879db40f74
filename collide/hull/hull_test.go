// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hull

import (
	"math/rand/v2"
	"slices"
	"testing"

	"cogentcore.org/collide/base/tolassert"
	"cogentcore.org/collide/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var square = []math32.Vector3{
	math32.Vec3(0, 0, 0),
	math32.Vec3(4, 0, 0),
	math32.Vec3(4, 4, 0),
	math32.Vec3(0, 4, 0),
	math32.Vec3(2, 2, 0),
}

func TestSquareWithInteriorPoint(t *testing.T) {
	for _, s := range []Strategies{Iterative, Recursive} {
		h := Build(square, WithStrategy(s))
		want := []math32.Vector3{
			math32.Vec3(0, 4, 0),
			math32.Vec3(4, 4, 0),
			math32.Vec3(4, 0, 0),
			math32.Vec3(0, 0, 0),
		}
		assert.Equal(t, want, h.Points, s.String())
		assert.NotContains(t, h.Points, math32.Vec3(2, 2, 0))
		tolassert.Equal(t, 16, h.Area())
	}
}

func TestDegenerate(t *testing.T) {
	for _, s := range []Strategies{Iterative, Recursive} {
		h := Build(nil, WithStrategy(s))
		assert.True(t, h.IsEmpty())
		assert.Equal(t, 0, h.Len())

		p := math32.Vec3(1, 2, 3)
		h = Build([]math32.Vector3{p}, WithStrategy(s))
		assert.Equal(t, []math32.Vector3{p}, h.Points)

		h = Build([]math32.Vector3{p, p, p}, WithStrategy(s))
		assert.Equal(t, []math32.Vector3{p}, h.Points)

		q := math32.Vec3(-1, 0, 0)
		h = Build([]math32.Vector3{p, q}, WithStrategy(s))
		assert.ElementsMatch(t, []math32.Vector3{p, q}, h.Points)

		line := []math32.Vector3{
			math32.Vec3(0, 0, 0),
			math32.Vec3(1, 1, 0),
			math32.Vec3(3, 3, 0),
			math32.Vec3(2, 2, 0),
		}
		h = Build(line, WithStrategy(s))
		assert.Equal(t, []math32.Vector3{math32.Vec3(3, 3, 0), math32.Vec3(0, 0, 0)}, h.Points)
		assert.Equal(t, float32(0), h.Area())
	}
}

func TestVerticalLine(t *testing.T) {
	// all points share X, so the Y tie break picks the extremes
	line := []math32.Vector3{
		math32.Vec3(1, 5, 0),
		math32.Vec3(1, -2, 0),
		math32.Vec3(1, 0, 0),
	}
	h := Build(line)
	assert.Equal(t, []math32.Vector3{math32.Vec3(1, 5, 0), math32.Vec3(1, -2, 0)}, h.Points)
}

func TestNonFinite(t *testing.T) {
	pts := append(slices.Clone(square), math32.Vec3(math32.Infinity, 0, 0), math32.Vec3(0, math32.Inf(-1), 0))
	h := Build(pts)
	assert.Len(t, h.Points, 4)
	for _, p := range h.Points {
		assert.True(t, p.IsFinite())
	}
}

func TestStrategiesMatch(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		n := 1 + rng.IntN(300)
		pts := make([]math32.Vector3, n)
		for i := range pts {
			pts[i] = math32.Vec3(rng.Float32()*100-50, rng.Float32()*100-50, rng.Float32()*10)
		}
		for pl := PlaneXY; pl < PlanesN; pl++ {
			it := Build(pts, WithPlane(pl))
			rc := Build(pts, WithPlane(pl), WithStrategy(Recursive))
			require.Equal(t, rc.Points, it.Points)
			for _, p := range it.Points {
				assert.Contains(t, pts, p)
			}
			assertConvex(t, it, pts)
		}
	}
}

// assertConvex checks that no input point of the hull lies strictly
// outside any of its edges, in the same orientation the hull is built in.
func assertConvex(t *testing.T, h *Hull, pts []math32.Vector3) {
	t.Helper()
	n := len(h.Points)
	if n < 3 {
		return
	}
	for i, a := range h.Points {
		b := h.Points[(i+1)%n]
		au, av := h.Plane.project(a)
		bu, bv := h.Plane.project(b)
		for _, p := range pts {
			pu, pv := h.Plane.project(p)
			d := (pv-av)*(bu-au) - (pu-au)*(bv-av)
			assert.LessOrEqual(t, d, 1e-3, "point %v outside edge %v %v", p, a, b)
		}
	}
}

func TestPlanes(t *testing.T) {
	pts := []math32.Vector3{
		math32.Vec3(0, 7, 0),
		math32.Vec3(4, 1, 0),
		math32.Vec3(4, 2, 4),
		math32.Vec3(0, 3, 4),
		math32.Vec3(2, 9, 2),
	}
	h := Build(pts, WithPlane(PlaneXZ))
	assert.Equal(t, PlaneXZ, h.Plane)
	assert.Len(t, h.Points, 4)
	assert.NotContains(t, h.Points, math32.Vec3(2, 9, 2))
	tolassert.Equal(t, 16, h.Area())

	var p Planes
	require.NoError(t, p.SetString("yz"))
	assert.Equal(t, PlaneYZ, p)
	assert.Error(t, p.SetString("xw"))

	var s Strategies
	require.NoError(t, s.UnmarshalText([]byte("recursive")))
	assert.Equal(t, Recursive, s)
}

func TestFromVertices(t *testing.T) {
	flat := []float32{0, 0, 0, 4, 0, 0, 4, 4, 0, 0, 4, 0, 2, 2, 0, 9}
	pts := Points(flat)
	assert.Len(t, pts, 5)
	h := FromVertices(flat)
	assert.Equal(t, 4, h.Len())
	assert.Len(t, h.Vertices(), 12)
	b := h.Bounds()
	assert.Equal(t, math32.Vec3(0, 0, 0), b.Min)
	assert.Equal(t, math32.Vec3(4, 4, 0), b.Max)
	assert.Equal(t, math32.Vec3(2, 2, 0), h.Centroid())
	assert.Contains(t, h.String(), "Hull XY")
}

func TestLargeClusteredInput(t *testing.T) {
	// many points on a circle exercise deep subdivision
	n := 20000
	pts := make([]math32.Vector3, n)
	for i := range pts {
		a := 2 * math32.Pi * float32(i) / float32(n)
		pts[i] = math32.Vec3(1000*math32.Cos(a), 1000*math32.Sin(a), 0)
	}
	h := Build(pts)
	assert.Greater(t, h.Len(), 100)
	assert.LessOrEqual(t, h.Len(), n)
}
