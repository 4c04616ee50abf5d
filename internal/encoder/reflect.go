package encoder

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

var encodableType = reflect.TypeFor[Encodable]()

// Value writes v. A v that implements Encodable encodes itself; everything
// else is walked by kind:
//
//	bool, ints, uints, floats   primitive writes
//	string                      String
//	[]byte                      Bytes
//	slice                       Seq, then elements
//	array                       Tuple, then elements
//	map                         Map, then entries in ascending key order
//	struct                      exported fields in order, no tag or length
//	pointer, interface          None when nil, otherwise Some of the target
//
// Values reached by the walk use their Encodable implementation once any
// pointer or interface around them has written its presence bit. Struct
// fields tagged `bits:"-"` are skipped.
func (e *Encoder) Value(v any) {
	if v == nil {
		e.None()
		return
	}
	if enc, ok := v.(Encodable); ok && !isNil(reflect.ValueOf(v)) {
		enc.EncodeBits(e)
		return
	}
	e.reflectValue(reflect.ValueOf(v))
}

func (e *Encoder) reflectValue(rv reflect.Value) {
	if !e.ok() {
		return
	}
	if k := rv.Kind(); k == reflect.Pointer || k == reflect.Interface {
		e.optional(rv)
		return
	}
	if enc, ok := asEncodable(rv); ok {
		enc.EncodeBits(e)
		return
	}

	switch rv.Kind() {
	case reflect.Bool:
		e.Bool(rv.Bool())
	case reflect.Int8:
		e.Int8(int8(rv.Int()))
	case reflect.Int16:
		e.Int16(int16(rv.Int()))
	case reflect.Int32:
		e.Int32(int32(rv.Int()))
	case reflect.Int64:
		e.Int64(rv.Int())
	case reflect.Int:
		e.write(uint64(rv.Int()), LengthWidth)
	case reflect.Uint8:
		e.Uint8(uint8(rv.Uint()))
	case reflect.Uint16:
		e.Uint16(uint16(rv.Uint()))
	case reflect.Uint32:
		e.Uint32(uint32(rv.Uint()))
	case reflect.Uint64:
		e.Uint64(rv.Uint())
	case reflect.Uint:
		e.write(rv.Uint(), LengthWidth)
	case reflect.Float32:
		e.Float32(float32(rv.Float()))
	case reflect.Float64:
		e.Float64(rv.Float())
	case reflect.String:
		e.String(rv.String())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			e.Bytes(rv.Bytes())
			return
		}
		e.Seq(rv.Len())
		for i := 0; i < rv.Len(); i++ {
			e.reflectValue(rv.Index(i))
		}
	case reflect.Array:
		e.Tuple(rv.Len())
		for i := 0; i < rv.Len(); i++ {
			e.reflectValue(rv.Index(i))
		}
	case reflect.Map:
		e.reflectMap(rv)
	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() || f.Tag.Get("bits") == "-" {
				continue
			}
			e.reflectValue(rv.Field(i))
		}
	default:
		e.SetError(fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type()))
	}
}

// optional writes a pointer or interface as None or Some of its target.
func (e *Encoder) optional(rv reflect.Value) {
	if rv.IsNil() {
		e.None()
		return
	}
	if e.legacyOptionals {
		return
	}
	e.Bool(true)
	e.reflectValue(rv.Elem())
}

func isNil(rv reflect.Value) bool {
	k := rv.Kind()
	return (k == reflect.Pointer || k == reflect.Interface) && rv.IsNil()
}

func asEncodable(rv reflect.Value) (Encodable, bool) {
	if !rv.IsValid() {
		return nil, false
	}
	if rv.Type().Implements(encodableType) && rv.CanInterface() {
		return rv.Interface().(Encodable), true
	}
	if rv.CanAddr() && reflect.PointerTo(rv.Type()).Implements(encodableType) && rv.Addr().CanInterface() {
		return rv.Addr().Interface().(Encodable), true
	}
	return nil, false
}

func (e *Encoder) reflectMap(rv reflect.Value) {
	keys := rv.MapKeys()
	var compare func(a, b reflect.Value) int
	switch rv.Type().Key().Kind() {
	case reflect.String:
		compare = func(a, b reflect.Value) int { return cmp.Compare(a.String(), b.String()) }
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		compare = func(a, b reflect.Value) int { return cmp.Compare(a.Int(), b.Int()) }
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		compare = func(a, b reflect.Value) int { return cmp.Compare(a.Uint(), b.Uint()) }
	case reflect.Float32, reflect.Float64:
		compare = func(a, b reflect.Value) int { return cmp.Compare(a.Float(), b.Float()) }
	case reflect.Bool:
		compare = func(a, b reflect.Value) int {
			switch {
			case a.Bool() == b.Bool():
				return 0
			case b.Bool():
				return -1
			}
			return 1
		}
	default:
		e.SetError(fmt.Errorf("%w: map key %s", ErrUnsupportedType, rv.Type().Key()))
		return
	}
	slices.SortFunc(keys, compare)

	e.Map(len(keys))
	for _, k := range keys {
		e.reflectValue(k)
		e.reflectValue(rv.MapIndex(k))
	}
}
