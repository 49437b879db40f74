// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import "slices"

// Registry collects the colliders to draw for debugging in the current
// frame, grouped by their render model in insertion order. The renderer
// reads it and then calls [Registry.EndFrame], which clears it.
// It is not safe for concurrent use.
type Registry struct {

	// Disabled turns off collection: Add does nothing.
	Disabled bool

	models    []string
	groups    map[string][]Collider
	count     int
	lastCount int
}

// NewRegistry returns a new, enabled, empty registry.
func NewRegistry() *Registry {
	return &Registry{groups: map[string][]Collider{}}
}

// SetEnabled turns collection on or off.
func (r *Registry) SetEnabled(on bool) *Registry {
	r.Disabled = !on
	return r
}

// Add registers the collider for drawing in this frame.
// Nil colliders are ignored.
func (r *Registry) Add(c Collider) {
	if r.Disabled || isNil(c) {
		return
	}
	if r.groups == nil {
		r.groups = map[string][]Collider{}
	}
	model := c.RenderHint().Model
	g, has := r.groups[model]
	if !has {
		r.models = append(r.models, model)
	}
	r.groups[model] = append(g, c)
	r.count++
}

// Count returns the number of colliders registered in this frame.
func (r *Registry) Count() int {
	return r.count
}

// LastCount returns the number of colliders drawn in the previous frame.
func (r *Registry) LastCount() int {
	return r.lastCount
}

// Models returns a copy of the render models in the order they were
// first added.
func (r *Registry) Models() []string {
	return slices.Clone(r.models)
}

// Group returns a copy of the colliders registered for the given model.
func (r *Registry) Group(model string) []Collider {
	return slices.Clone(r.groups[model])
}

// Shapes returns all registered colliders, grouped by model.
func (r *Registry) Shapes() []Collider {
	all := make([]Collider, 0, r.count)
	for _, m := range r.models {
		all = append(all, r.groups[m]...)
	}
	return all
}

// Each calls fn for every registered collider, grouped by model.
func (r *Registry) Each(fn func(model string, c Collider)) {
	for _, m := range r.models {
		for _, c := range r.groups[m] {
			fn(m, c)
		}
	}
}

// EndFrame records the count of this frame, clears the registry
// and returns the count.
func (r *Registry) EndFrame() int {
	n := r.count
	r.lastCount = n
	r.Clear()
	return n
}

// Clear removes all registered colliders.
func (r *Registry) Clear() {
	r.models = r.models[:0]
	clear(r.groups)
	r.count = 0
}
