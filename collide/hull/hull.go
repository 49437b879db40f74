// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hull builds convex hulls of point clouds with the quickhull
// algorithm. Hulls are computed in a fixed projection plane (the XY plane
// by default): the result is the silhouette of the point cloud seen along
// the remaining axis, and every hull point is one of the input points.
package hull

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/collide/math32"
)

// Planes are the projection planes a hull can be computed in.
type Planes int32

const (
	// PlaneXY projects points onto the XY plane, ignoring Z.
	PlaneXY Planes = iota

	// PlaneXZ projects points onto the XZ plane, ignoring Y.
	PlaneXZ

	// PlaneYZ projects points onto the YZ plane, ignoring X.
	PlaneYZ

	// PlanesN is the number of planes.
	PlanesN
)

var planeNames = [PlanesN]string{"XY", "XZ", "YZ"}

// String returns the string representation of this Planes value.
func (p Planes) String() string {
	if p < 0 || p >= PlanesN {
		return fmt.Sprintf("Planes(%d)", int32(p))
	}
	return planeNames[p]
}

// SetString sets the Planes value from its string representation,
// ignoring case, and returns an error if the string is invalid.
func (p *Planes) SetString(s string) error {
	for i, nm := range planeNames {
		if strings.EqualFold(nm, s) {
			*p = Planes(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Planes", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (p Planes) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (p *Planes) UnmarshalText(text []byte) error {
	return p.SetString(string(text))
}

// project returns the 2D coordinates of the point in the plane.
func (p Planes) project(v math32.Vector3) (float64, float64) {
	switch p {
	case PlaneXZ:
		return float64(v.X), float64(v.Z)
	case PlaneYZ:
		return float64(v.Y), float64(v.Z)
	}
	return float64(v.X), float64(v.Y)
}

// Normal returns the axis that is dropped by the projection.
func (p Planes) Normal() math32.Dims {
	switch p {
	case PlaneXZ:
		return math32.Y
	case PlaneYZ:
		return math32.X
	}
	return math32.Z
}

// Strategies are the execution strategies of the quickhull algorithm.
// Both produce the same points in the same order.
type Strategies int32

const (
	// Iterative uses an explicit work stack. It is safe for large and
	// clustered inputs.
	Iterative Strategies = iota

	// Recursive recurses on each sub-region.
	Recursive

	// StrategiesN is the number of strategies.
	StrategiesN
)

var strategyNames = [StrategiesN]string{"Iterative", "Recursive"}

// String returns the string representation of this Strategies value.
func (s Strategies) String() string {
	if s < 0 || s >= StrategiesN {
		return fmt.Sprintf("Strategies(%d)", int32(s))
	}
	return strategyNames[s]
}

// SetString sets the Strategies value from its string representation,
// ignoring case, and returns an error if the string is invalid.
func (s *Strategies) SetString(str string) error {
	for i, nm := range strategyNames {
		if strings.EqualFold(nm, str) {
			*s = Strategies(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Strategies", str)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (s Strategies) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (s *Strategies) UnmarshalText(text []byte) error {
	return s.SetString(string(text))
}

// Builder holds the parameters of hull construction.
// The zero value builds iteratively in the XY plane.
type Builder struct {

	// Plane is the projection plane.
	Plane Planes

	// Strategy is the execution strategy.
	Strategy Strategies
}

// Option configures a [Builder].
type Option func(b *Builder)

// WithPlane sets the projection plane.
func WithPlane(p Planes) Option {
	return func(b *Builder) { b.Plane = p }
}

// WithStrategy sets the execution strategy.
func WithStrategy(s Strategies) Option {
	return func(b *Builder) { b.Strategy = s }
}

// NewBuilder returns a new builder with the given options applied.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Hull is an ordered list of convex hull points.
type Hull struct {

	// Points are the hull points, in boundary order.
	Points []math32.Vector3

	// Plane is the plane the hull was computed in.
	Plane Planes
}

// Build returns the convex hull of the given points. The points are
// only read during the call; the hull owns its own point list.
func Build(points []math32.Vector3, opts ...Option) *Hull {
	return NewBuilder(opts...).Build(points)
}

// FromVertices returns the convex hull of a flat list of x, y, z
// triples, as supplied by a mesh. A trailing partial triple is ignored.
func FromVertices(flat []float32, opts ...Option) *Hull {
	return Build(Points(flat), opts...)
}

// Points returns the points in a flat list of x, y, z triples.
// A trailing partial triple is ignored.
func Points(flat []float32) []math32.Vector3 {
	n := len(flat) / 3
	pts := make([]math32.Vector3, n)
	for i := range pts {
		pts[i] = math32.Vec3(flat[3*i], flat[3*i+1], flat[3*i+2])
	}
	return pts
}

// Build returns the convex hull of the given points. Degenerate inputs
// never fail: no points give an empty hull, identical points give a
// single point, and collinear points give the two extremes.
// Points with NaN or infinite components are dropped with a warning.
func (b *Builder) Build(points []math32.Vector3) *Hull {
	h := &Hull{Plane: b.Plane}
	pts := finite(points)
	if len(pts) == 0 {
		return h
	}
	lo, hi := b.extremes(pts)
	if lo == hi {
		h.Points = []math32.Vector3{lo}
		return h
	}
	h.Points = append(h.Points, b.quickHull(pts, lo, hi)...)
	h.Points = append(h.Points, b.quickHull(pts, hi, lo)...)
	return h
}

// finite returns the points with only finite components.
func finite(points []math32.Vector3) []math32.Vector3 {
	dropped := 0
	for _, p := range points {
		if !p.IsFinite() {
			dropped++
		}
	}
	if dropped == 0 {
		return points
	}
	slog.Warn("hull: dropping non-finite points", "dropped", dropped, "total", len(points))
	pts := make([]math32.Vector3, 0, len(points)-dropped)
	for _, p := range points {
		if p.IsFinite() {
			pts = append(pts, p)
		}
	}
	return pts
}

// extremes returns the points with the minimum and maximum first plane
// coordinate, with ties broken by the second coordinate, so they are
// distinct whenever the input has two distinct projected points.
func (b *Builder) extremes(pts []math32.Vector3) (lo, hi math32.Vector3) {
	lo, hi = pts[0], pts[0]
	lu, lv := b.Plane.project(lo)
	hu, hv := lu, lv
	for _, p := range pts[1:] {
		u, v := b.Plane.project(p)
		if u < lu || (u == lu && v < lv) {
			lo, lu, lv = p, u, v
		}
		if u > hu || (u == hu && v > hv) {
			hi, hu, hv = p, u, v
		}
	}
	return
}

// Len returns the number of hull points.
func (h *Hull) Len() int {
	return len(h.Points)
}

// IsEmpty returns true if the hull has no points.
func (h *Hull) IsEmpty() bool {
	return len(h.Points) == 0
}

// Bounds returns the bounding box of the hull points.
func (h *Hull) Bounds() math32.Box3 {
	b := math32.B3Empty()
	b.ExpandByPoints(h.Points)
	return b
}

// Centroid returns the average of the hull points.
func (h *Hull) Centroid() math32.Vector3 {
	var c math32.Vector3
	for _, p := range h.Points {
		c.SetAdd(p)
	}
	return c.DivScalar(float32(len(h.Points)))
}

// Area returns the area enclosed by the hull in its plane.
func (h *Hull) Area() float32 {
	n := len(h.Points)
	if n < 3 {
		return 0
	}
	var sum float64
	for i, p := range h.Points {
		u1, v1 := h.Plane.project(p)
		u2, v2 := h.Plane.project(h.Points[(i+1)%n])
		sum += u1*v2 - u2*v1
	}
	return math32.Abs(float32(sum / 2))
}

// Vertices returns the hull points as a flat list of x, y, z triples.
func (h *Hull) Vertices() []float32 {
	flat := make([]float32, 0, 3*len(h.Points))
	for _, p := range h.Points {
		flat = append(flat, p.X, p.Y, p.Z)
	}
	return flat
}

func (h *Hull) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hull %v [", h.Plane)
	for i, p := range h.Points {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString("]")
	return sb.String()
}
