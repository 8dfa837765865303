// Package identity delegates equality and hashing to a source value, so that
// wrappers compare and hash exactly like the value they wrap.
package identity

import (
	"hash/maphash"
	"reflect"

	"github.com/davecgh/go-spew/spew"
)

var seed = maphash.MakeSeed()

// dumper prints values deterministically: no pointer addresses, no
// capacities, sorted map keys.
var dumper = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
	SpewKeys:                true,
}

// Equal reports whether source equals other, in order of preference:
//  1. source's own Equal(x) bool method, when other fits x;
//  2. == when source holds a comparable value;
//  3. reflect.DeepEqual.
func Equal(source, other any) bool {
	sv := reflect.ValueOf(source)
	if !sv.IsValid() {
		return other == nil
	}

	if eq, ok := equalMethod(sv, other); ok {
		return eq
	}

	if sv.Comparable() {
		return source == other
	}

	return reflect.DeepEqual(source, other)
}

// Hash returns the hash of source, in order of preference:
//  1. source's own Hash() uint64 method;
//  2. maphash.Comparable for comparable values;
//  3. a maphash digest of a deterministic dump of the value.
//
// Values that are Equal through == or reflect.DeepEqual hash identically.
func Hash(source any) uint64 {
	sv := reflect.ValueOf(source)
	if !sv.IsValid() {
		return maphash.Comparable(seed, source)
	}

	if m := sv.MethodByName("Hash"); m.IsValid() {
		mt := m.Type()
		if mt.NumIn() == 0 && mt.NumOut() == 1 && mt.Out(0).Kind() == reflect.Uint64 {
			return m.Call(nil)[0].Uint()
		}
	}

	if sv.Comparable() {
		return maphash.Comparable(seed, source)
	}

	var h maphash.Hash
	h.SetSeed(seed)
	dumper.Fdump(&h, source)

	return h.Sum64()
}

func equalMethod(sv reflect.Value, other any) (eq, ok bool) {
	m := sv.MethodByName("Equal")
	if !m.IsValid() {
		return false, false
	}

	mt := m.Type()
	if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Bool {
		return false, false
	}

	ov := reflect.ValueOf(other)
	switch {
	case !ov.IsValid():
		if !canBeNil(mt.In(0)) {
			return false, true
		}

		ov = reflect.Zero(mt.In(0))
	case !ov.Type().AssignableTo(mt.In(0)):
		return false, true
	}

	return m.Call([]reflect.Value{ov})[0].Bool(), true
}

func canBeNil(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return true
	default:
		return false
	}
}
