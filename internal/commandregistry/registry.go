// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commandregistry

import (
	"slices"
)

// Entry is a named command spec as declared in the configuration.
type Entry struct {
	Name string
	Spec CommandSpec
}

// Registry maps command names to their specs and remembers declaration order.
type Registry struct {
	names []string
	specs map[string]CommandSpec
}

// New creates a Registry from entries.
// A repeated name keeps its first position and takes the last value, like a JSON object.
func New(entries ...Entry) *Registry {
	r := &Registry{
		names: make([]string, 0, len(entries)),
		specs: make(map[string]CommandSpec, len(entries)),
	}

	for _, e := range entries {
		if _, ok := r.specs[e.Name]; !ok {
			r.names = append(r.names, e.Name)
		}

		r.specs[e.Name] = e.Spec
	}

	return r
}

// Lookup returns the spec for name and whether the name is configured.
func (r *Registry) Lookup(name string) (CommandSpec, bool) {
	if r == nil {
		return CommandSpec{}, false
	}

	spec, ok := r.specs[name]

	return spec, ok
}

// Resolve returns the shell commands configured for name.
// An unknown name resolves to an empty slice; use Lookup to tell that apart
// from a name configured with an empty list.
func (r *Registry) Resolve(name string) []string {
	spec, ok := r.Lookup(name)
	if !ok {
		return []string{}
	}

	return spec.Commands()
}

// Names returns the configured command names in declaration order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}

	return slices.Clone(r.names)
}

// Len returns the number of configured command names.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.names)
}
