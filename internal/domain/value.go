package domain

import "fmt"

// Kind discriminates a Value. The set mirrors what crosses the native
// invocation boundary: booleans, fixed-width integers, UTF-16 text, native
// pointers and opaque object references. Anything else is rejected rather
// than reinterpreted.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUintptr
	KindString
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindBool:
		return "bool"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindUintptr:
		return "uintptr"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Value is the tagged union passed to and returned from managed member
// invocations. A Value produced for one call is released after that call;
// object references are owned by whoever materialized them.
type Value struct {
	kind Kind
	b    bool
	i    int64
	u    uint64
	s    string
	obj  uintptr
}

func Empty() Value { return Value{kind: KindEmpty} }

func FromBool(v bool) Value     { return Value{kind: KindBool, b: v} }
func FromInt8(v int8) Value     { return Value{kind: KindInt8, i: int64(v)} }
func FromInt16(v int16) Value   { return Value{kind: KindInt16, i: int64(v)} }
func FromInt32(v int32) Value   { return Value{kind: KindInt32, i: int64(v)} }
func FromInt64(v int64) Value   { return Value{kind: KindInt64, i: v} }
func FromUint8(v uint8) Value   { return Value{kind: KindUint8, u: uint64(v)} }
func FromUint16(v uint16) Value { return Value{kind: KindUint16, u: uint64(v)} }
func FromUint32(v uint32) Value { return Value{kind: KindUint32, u: uint64(v)} }
func FromUint64(v uint64) Value { return Value{kind: KindUint64, u: v} }
func FromString(v string) Value { return Value{kind: KindString, s: v} }

// FromUintptr wraps a native pointer-sized result, e.g. a function pointer
// obtained through RuntimeMethodHandle.GetFunctionPointer.
func FromUintptr(v uintptr) Value { return Value{kind: KindUintptr, u: uint64(v)} }

// FromObject wraps an opaque managed object reference (a COM interface
// pointer on the native side). The Value does not own the reference.
func FromObject(ref uintptr) Value { return Value{kind: KindObject, obj: ref} }

// FromNative converts a supported Go value. Unsupported types fail with
// ErrVariantUnsupported instead of truncating.
func FromNative(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Empty(), nil
	case bool:
		return FromBool(t), nil
	case int8:
		return FromInt8(t), nil
	case int16:
		return FromInt16(t), nil
	case int32:
		return FromInt32(t), nil
	case int64:
		return FromInt64(t), nil
	case int:
		return FromInt64(int64(t)), nil
	case uint8:
		return FromUint8(t), nil
	case uint16:
		return FromUint16(t), nil
	case uint32:
		return FromUint32(t), nil
	case uint64:
		return FromUint64(t), nil
	case uintptr:
		return FromUintptr(t), nil
	case string:
		return FromString(t), nil
	case Value:
		return t, nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrVariantUnsupported, v)
	}
}

func (v Value) Kind() Kind    { return v.kind }
func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

func (v Value) Bool() (bool, error) {
	if v.kind != KindBool {
		return false, v.kindErr(KindBool)
	}
	return v.b, nil
}

func (v Value) Int64() (int64, error) {
	switch v.kind {
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return v.i, nil
	}
	return 0, v.kindErr(KindInt64)
}

func (v Value) Uint64() (uint64, error) {
	switch v.kind {
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return v.u, nil
	}
	return 0, v.kindErr(KindUint64)
}

func (v Value) Uintptr() (uintptr, error) {
	switch v.kind {
	case KindUintptr:
		return uintptr(v.u), nil
	case KindInt64:
		return uintptr(v.i), nil
	case KindUint64:
		return uintptr(v.u), nil
	}
	return 0, v.kindErr(KindUintptr)
}

func (v Value) String() (string, error) {
	if v.kind != KindString {
		return "", v.kindErr(KindString)
	}
	return v.s, nil
}

func (v Value) Object() (uintptr, error) {
	if v.kind != KindObject {
		return 0, v.kindErr(KindObject)
	}
	return v.obj, nil
}

// Native returns the Go representation of the value, inverting FromNative
// for every supported kind.
func (v Value) Native() (any, error) {
	switch v.kind {
	case KindEmpty:
		return nil, nil
	case KindBool:
		return v.b, nil
	case KindInt8:
		return int8(v.i), nil
	case KindInt16:
		return int16(v.i), nil
	case KindInt32:
		return int32(v.i), nil
	case KindInt64:
		return v.i, nil
	case KindUint8:
		return uint8(v.u), nil
	case KindUint16:
		return uint16(v.u), nil
	case KindUint32:
		return uint32(v.u), nil
	case KindUint64:
		return v.u, nil
	case KindUintptr:
		return uintptr(v.u), nil
	case KindString:
		return v.s, nil
	case KindObject:
		return v.obj, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrVariantUnsupported, v.kind)
}

func (v Value) kindErr(want Kind) error {
	return fmt.Errorf("%w: have %s, want %s", ErrVariantUnsupported, v.kind, want)
}

// Strings builds the argument list handed to a managed entry point.
func Strings(args []string) []Value {
	out := make([]Value, len(args))
	for i, a := range args {
		out[i] = FromString(a)
	}
	return out
}
