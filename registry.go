// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csvrow

import (
	"fmt"
	"maps"
	"reflect"
	"sync"
)

// Registry maps types to their default [RowParser].
// Derivation consults it while a parser is being built, never while rows
// are parsed. A Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[reflect.Type]entry
}

// entry keeps a parser in both forms: typed for [Lookup] and erased for
// reflective derivation.
type entry struct {
	typed  any
	erased RowParser[reflect.Value]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[reflect.Type]entry)}
}

// DefaultRegistry returns a new registry holding the default column
// parsers: string, int, int64, uint, float64, bool, time.Time (as [Date])
// and time.Duration.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	Register(r, String())
	Register(r, Int())
	Register(r, Int64())
	Register(r, Uint())
	Register(r, Float64())
	Register(r, Bool())
	Register(r, Date())
	Register(r, Duration())
	return r
}

// Register sets p as the default parser for A, replacing any previous one.
func Register[A any](r *Registry, p RowParser[A]) {
	t := reflect.TypeFor[A]()
	e := entry{
		typed: p,
		erased: Transform(p, func(a A) reflect.Value {
			// Through a pointer so interface-typed A keeps its static type.
			return reflect.ValueOf(&a).Elem()
		}),
	}
	r.mu.Lock()
	if r.entries == nil {
		r.entries = make(map[reflect.Type]entry)
	}
	r.entries[t] = e
	r.mu.Unlock()
}

// Lookup returns the default parser for A, or an error wrapping
// [ErrNoParser].
func Lookup[A any](r *Registry) (RowParser[A], error) {
	t := reflect.TypeFor[A]()
	r.mu.RLock()
	e, found := r.entries[t]
	r.mu.RUnlock()
	if !found {
		return nil, fmt.Errorf("%w for %s", ErrNoParser, t)
	}
	return e.typed.(RowParser[A]), nil
}

// Has reports whether t has a default parser.
func (r *Registry) Has(t reflect.Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, found := r.entries[t]
	return found
}

// Clone returns an independent copy of r.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := maps.Clone(r.entries)
	if entries == nil {
		entries = make(map[reflect.Type]entry)
	}
	return &Registry{entries: entries}
}

// erased returns the type-erased default parser for t.
func (r *Registry) erased(t reflect.Type) (RowParser[reflect.Value], error) {
	r.mu.RLock()
	e, found := r.entries[t]
	r.mu.RUnlock()
	if !found {
		return nil, fmt.Errorf("%w for %s", ErrNoParser, t)
	}
	return e.erased, nil
}
