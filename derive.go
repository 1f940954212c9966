// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csvrow

import (
	"errors"
	"fmt"
	"reflect"
)

// Derivation builds a composite RowParser from a constructor and the
// default parsers of a [Registry]. Every field type is resolved while the
// parser is built: an unresolved type is reported by the Derive call, never
// by a later parse.

// DeriveOption configures a derived parser.
type DeriveOption func(*deriveOptions)

type deriveOptions struct {
	strict bool
}

// WithStrict makes the derived parser require that no columns remain
// after the last field. Without it extra columns are ignored.
func WithStrict() DeriveOption {
	return func(o *deriveOptions) { o.strict = true }
}

func finish[A any](p RowParser[A], opts []DeriveOption) RowParser[A] {
	var o deriveOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.strict {
		return Strict(p)
	}
	return p
}

// Typed derivation. Argument types are known to the compiler; only the
// registry lookup happens at run time, once, inside the call.

// Derive1 derives a parser for f's single argument and applies f.
func Derive1[A, T any](r *Registry, f func(A) T, opts ...DeriveOption) (RowParser[T], error) {
	pa, err := Lookup[A](r)
	if err != nil {
		return nil, err
	}
	return finish(Transform(pa, f), opts), nil
}

// Derive2 derives a parser that reads f's arguments in order and applies f.
func Derive2[A, B, T any](r *Registry, f func(A, B) T, opts ...DeriveOption) (RowParser[T], error) {
	pa, errA := Lookup[A](r)
	pb, errB := Lookup[B](r)
	if err := errors.Join(errA, errB); err != nil {
		return nil, err
	}
	return finish(Map2(pa, pb, f), opts), nil
}

// Derive3 derives a parser that reads f's arguments in order and applies f.
func Derive3[A, B, C, T any](r *Registry, f func(A, B, C) T, opts ...DeriveOption) (RowParser[T], error) {
	pa, errA := Lookup[A](r)
	pb, errB := Lookup[B](r)
	pc, errC := Lookup[C](r)
	if err := errors.Join(errA, errB, errC); err != nil {
		return nil, err
	}
	return finish(Map3(pa, pb, pc, f), opts), nil
}

// Derive4 derives a parser that reads f's arguments in order and applies f.
func Derive4[A, B, C, D, T any](r *Registry, f func(A, B, C, D) T, opts ...DeriveOption) (RowParser[T], error) {
	pa, errA := Lookup[A](r)
	pb, errB := Lookup[B](r)
	pc, errC := Lookup[C](r)
	pd, errD := Lookup[D](r)
	if err := errors.Join(errA, errB, errC, errD); err != nil {
		return nil, err
	}
	partial := Map3(pa, pb, pc, func(a A, b B, c C) func(D) T {
		return func(d D) T { return f(a, b, c, d) }
	})
	return finish(Combine(partial, pd), opts), nil
}

// Reflective derivation.

// applier consumes a constructor's arguments and yields a function that
// applies a constructor value to them, down to the final result.
type applier = RowParser[func(reflect.Value) reflect.Value]

// Derive derives a parser for T from ctor, which is either a function
// returning T or a curried chain of functions ending in T:
//
//	func(int, string) Person
//	func(int) func(string) func(time.Time) Person
//
// A level may take any number of arguments. Levels are derived by
// induction: the last level is its arguments' parsers transformed by the
// function; any other level is its arguments' parsers combined with the
// parser derived for the continuation it returns.
func Derive[T any](r *Registry, ctor any, opts ...DeriveOption) (RowParser[T], error) {
	fn := reflect.ValueOf(ctor)
	if fn.Kind() != reflect.Func || fn.IsNil() {
		return nil, fmt.Errorf("%w: %T is not a function", ErrBadConstructor, ctor)
	}
	apply, err := r.deriveFunc(fn.Type(), reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}
	p := Transform(apply, func(k func(reflect.Value) reflect.Value) T {
		var out T
		reflect.ValueOf(&out).Elem().Set(k(fn))
		return out
	})
	return finish(p, opts), nil
}

func (r *Registry) deriveFunc(fnType, target reflect.Type) (applier, error) {
	if fnType.Kind() != reflect.Func || fnType.NumOut() != 1 || fnType.IsVariadic() {
		return nil, fmt.Errorf("%w: %s must return exactly one value", ErrBadConstructor, fnType)
	}
	ins := make(Schema, fnType.NumIn())
	for i := range ins {
		ins[i] = fnType.In(i)
	}
	args, err := r.sequence(ins)
	if err != nil {
		return nil, err
	}

	out := fnType.Out(0)
	switch {
	case out == target, out.Kind() != reflect.Func && out.AssignableTo(target):
		return Transform(args, func(vs []reflect.Value) func(reflect.Value) reflect.Value {
			return func(fn reflect.Value) reflect.Value { return fn.Call(vs)[0] }
		}), nil
	case out.Kind() == reflect.Func:
		rest, err := r.deriveFunc(out, target)
		if err != nil {
			return nil, err
		}
		step := Transform(args, func(vs []reflect.Value) func(func(reflect.Value) reflect.Value) func(reflect.Value) reflect.Value {
			return func(k func(reflect.Value) reflect.Value) func(reflect.Value) reflect.Value {
				return func(fn reflect.Value) reflect.Value { return k(fn.Call(vs)[0]) }
			}
		})
		return Combine(step, rest), nil
	default:
		return nil, fmt.Errorf("%w: %s yields %s, want %s", ErrBadConstructor, fnType, out, target)
	}
}

// sequence runs the default parser of each type in order.
// Every type is resolved before the returned parser exists; all
// unresolved types are reported together.
func (r *Registry) sequence(types []reflect.Type) (RowParser[[]reflect.Value], error) {
	parsers := make([]RowParser[reflect.Value], len(types))
	var errs []error
	for i, t := range types {
		p, err := r.erased(t)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		parsers[i] = p
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cons(parsers), nil
}

// cons folds parsers from the right: the head parser is combined with the
// parser of the tail.
func cons(parsers []RowParser[reflect.Value]) RowParser[[]reflect.Value] {
	if len(parsers) == 0 {
		return Pure[[]reflect.Value](nil)
	}
	head := Transform(parsers[0], func(v reflect.Value) func([]reflect.Value) []reflect.Value {
		return func(rest []reflect.Value) []reflect.Value {
			return append([]reflect.Value{v}, rest...)
		}
	})
	return Combine(head, cons(parsers[1:]))
}

// Schema is a declared list of field types, read left to right.
type Schema []reflect.Type

// SchemaOf returns the schema whose field types are those of samples.
//
//	SchemaOf(0, "", time.Time{}) // int, string, time.Time
func SchemaOf(samples ...any) Schema {
	s := make(Schema, len(samples))
	for i, v := range samples {
		s[i] = reflect.TypeOf(v)
	}
	return s
}

// StructSchema returns the schema of T's exported fields in declaration
// order. Fields tagged `csv:"-"` are left out.
func StructSchema[T any]() (Schema, error) {
	_, s, err := structFields(reflect.TypeFor[T]())
	return s, err
}

// Build derives a parser yielding one value per schema field.
func (s Schema) Build(r *Registry, opts ...DeriveOption) (RowParser[[]any], error) {
	p, err := r.sequence(s)
	if err != nil {
		return nil, err
	}
	return finish(Transform(p, func(vs []reflect.Value) []any {
		out := make([]any, len(vs))
		for i, v := range vs {
			out[i] = v.Interface()
		}
		return out
	}), opts), nil
}

// DeriveStruct derives a parser that fills T's schema fields in order.
func DeriveStruct[T any](r *Registry, opts ...DeriveOption) (RowParser[T], error) {
	index, schema, err := structFields(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}
	p, err := r.sequence(schema)
	if err != nil {
		return nil, err
	}
	return finish(Transform(p, func(vs []reflect.Value) T {
		var out T
		rv := reflect.ValueOf(&out).Elem()
		for i, v := range vs {
			rv.Field(index[i]).Set(v)
		}
		return out
	}), opts), nil
}

func structFields(t reflect.Type) ([]int, Schema, error) {
	if t.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("%w: %s is not a struct", ErrBadConstructor, t)
	}
	var (
		index  []int
		schema Schema
	)
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("csv") == "-" {
			continue
		}
		index = append(index, i)
		schema = append(schema, f.Type)
	}
	return index, schema, nil
}
