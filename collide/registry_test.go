// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import (
	"testing"

	"cogentcore.org/collide/math32"
	"github.com/stretchr/testify/assert"
)

func TestRegistryFrames(t *testing.T) {
	reg := NewRegistry()
	box := NewAABB(math32.Vec3(0, 0, 0), math32.Vec3(1, 1, 1))
	ball := NewSphere(math32.Vector3{}, 1)
	obb := NewOBB(math32.Vector3{}, math32.Vec3(1, 1, 1), math32.QuatIdentity())

	reg.Add(ball)
	reg.Add(box)
	reg.Add(nil)
	reg.Add(obb)
	assert.Equal(t, 3, reg.Count())
	assert.Equal(t, []string{SphereModel, BoxModel}, reg.Models())
	assert.Equal(t, []Collider{box, obb}, reg.Group(BoxModel))
	assert.Equal(t, []Collider{ball, box, obb}, reg.Shapes())

	var seen []string
	reg.Each(func(model string, c Collider) {
		seen = append(seen, model+":"+c.Kind().String())
	})
	assert.Equal(t, []string{"sphere:Sphere", "box:AABB", "box:OBB"}, seen)

	assert.Equal(t, 3, reg.EndFrame())
	assert.Equal(t, 0, reg.Count())
	assert.Equal(t, 3, reg.LastCount())
	assert.Empty(t, reg.Shapes())
	assert.Empty(t, reg.Models())

	reg.SetEnabled(false)
	reg.Add(box)
	assert.Equal(t, 0, reg.Count())
	reg.SetEnabled(true).Add(box)
	assert.Equal(t, 1, reg.Count())
	assert.Equal(t, 1, reg.EndFrame())
	assert.Equal(t, 1, reg.LastCount())
}

func TestRegistrySlicesOutliveFrame(t *testing.T) {
	reg := NewRegistry()
	box := NewAABB(math32.Vector3{}, math32.Vec3(1, 1, 1))
	reg.Add(box)
	models := reg.Models()
	group := reg.Group(BoxModel)
	reg.EndFrame()

	reg.Add(NewSphere(math32.Vector3{}, 1))
	assert.Equal(t, []string{BoxModel}, models)
	assert.Equal(t, []Collider{box}, group)
	assert.Equal(t, []string{SphereModel}, reg.Models())

	models[0] = "changed"
	assert.Equal(t, []string{SphereModel}, reg.Models())
}

func TestRegistriesAreIndependent(t *testing.T) {
	var a, b Registry
	a.Add(NewSphere(math32.Vector3{}, 1))
	assert.Equal(t, 1, a.Count())
	assert.Equal(t, 0, b.Count())
}
