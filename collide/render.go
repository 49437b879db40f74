// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import "cogentcore.org/collide/math32"

// Debug draw model names.
const (
	BoxModel      = "box"
	SphereModel   = "sphere"
	CylinderModel = "cylinder"
	ConeModel     = "cone"
	RectModel     = "rectangle"
)

// RenderHint holds the parameters a debug renderer needs to draw a collider:
// a unit model placed at Center, rotated by Rotation and scaled by Scale.
type RenderHint struct {

	// Model is the name of the unit model to draw.
	Model string

	// Center is the world position of the model.
	Center math32.Vector3

	// Rotation is the orientation of the model.
	Rotation math32.Quat

	// Scale is the per-axis scale of the unit model.
	Scale math32.Vector3

	// Color is the wireframe color as a hex string.
	Color string
}
