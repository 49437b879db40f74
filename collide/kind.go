// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import (
	"fmt"
	"strings"
)

// Kinds are the kinds of collider shapes.
type Kinds int32

const (
	// KindAABB is an axis-aligned bounding box.
	KindAABB Kinds = iota

	// KindOBB is an oriented (rotated) bounding box.
	KindOBB

	// KindSphere is a sphere.
	KindSphere

	// KindCylinder is a Y-aligned cylinder.
	KindCylinder

	// KindCone is a Y-aligned cone.
	KindCone

	// KindRectangle is a 2D rectangle in the XY plane.
	KindRectangle

	// KindsN is the number of kinds.
	KindsN
)

var kindNames = [KindsN]string{"AABB", "OBB", "Sphere", "Cylinder", "Cone", "Rectangle"}

// KindsValues returns all possible values for the type Kinds.
func KindsValues() []Kinds {
	vals := make([]Kinds, KindsN)
	for i := range vals {
		vals[i] = Kinds(i)
	}
	return vals
}

// String returns the string representation of this Kinds value.
func (k Kinds) String() string {
	if k < 0 || k >= KindsN {
		return fmt.Sprintf("Kinds(%d)", int32(k))
	}
	return kindNames[k]
}

// SetString sets the Kinds value from its string representation,
// ignoring case, and returns an error if the string is invalid.
func (k *Kinds) SetString(s string) error {
	for i, nm := range kindNames {
		if strings.EqualFold(nm, s) {
			*k = Kinds(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Kinds", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (k Kinds) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (k *Kinds) UnmarshalText(text []byte) error {
	return k.SetString(string(text))
}
