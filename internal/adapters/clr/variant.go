//go:build windows

package clr

import (
	"fmt"
	"unsafe"

	"clrhost-cli/internal/domain"
)

// VARTYPE tags used by the invocation marshaling.
const (
	vtEmpty    = 0
	vtNull     = 1
	vtI2       = 2
	vtI4       = 3
	vtBSTR     = 8
	vtDispatch = 9
	vtBool     = 11
	vtVariant  = 12
	vtUnknown  = 13
	vtI1       = 16
	vtUI1      = 17
	vtUI2      = 18
	vtUI4      = 19
	vtI8       = 20
	vtUI8      = 21
	vtInt      = 22
	vtUInt     = 23
	vtArray    = 0x2000
)

const variantTrue = 0xFFFF

// variant matches the 24-byte x64 VARIANT layout. The second half of the
// union (BRECORD) is never populated here and stays as padding.
type variant struct {
	vt       uint16
	reserved [3]uint16
	val      uint64
	_        [8]byte
}

func emptyVariant() variant { return variant{vt: vtEmpty} }

// encodeVariant lowers a Value into a VARIANT. String values allocate a
// BSTR that freeVariant reclaims; object references are borrowed, not
// AddRef'd.
func encodeVariant(v domain.Value) (variant, error) {
	switch v.Kind() {
	case domain.KindEmpty:
		return emptyVariant(), nil
	case domain.KindBool:
		b, _ := v.Bool()
		out := variant{vt: vtBool}
		if b {
			out.val = variantTrue
		}
		return out, nil
	case domain.KindInt8:
		i, _ := v.Int64()
		return variant{vt: vtI1, val: uint64(uint8(int8(i)))}, nil
	case domain.KindInt16:
		i, _ := v.Int64()
		return variant{vt: vtI2, val: uint64(uint16(int16(i)))}, nil
	case domain.KindInt32:
		i, _ := v.Int64()
		return variant{vt: vtI4, val: uint64(uint32(int32(i)))}, nil
	case domain.KindInt64:
		i, _ := v.Int64()
		return variant{vt: vtI8, val: uint64(i)}, nil
	case domain.KindUint8:
		u, _ := v.Uint64()
		return variant{vt: vtUI1, val: u}, nil
	case domain.KindUint16:
		u, _ := v.Uint64()
		return variant{vt: vtUI2, val: u}, nil
	case domain.KindUint32:
		u, _ := v.Uint64()
		return variant{vt: vtUI4, val: u}, nil
	case domain.KindUint64:
		u, _ := v.Uint64()
		return variant{vt: vtUI8, val: u}, nil
	case domain.KindUintptr:
		p, _ := v.Uintptr()
		return variant{vt: vtInt, val: uint64(p)}, nil
	case domain.KindString:
		s, _ := v.String()
		return variant{vt: vtBSTR, val: uint64(sysAllocString(s))}, nil
	case domain.KindObject:
		obj, _ := v.Object()
		return variant{vt: vtUnknown, val: uint64(obj)}, nil
	}
	return variant{}, fmt.Errorf("%w: kind %s", domain.ErrVariantUnsupported, v.Kind())
}

// freeVariant reclaims what encodeVariant allocated. Only BSTRs are owned
// by the encoded form.
func freeVariant(v *variant) {
	if v.vt == vtBSTR {
		sysFreeString(uintptr(v.val))
	}
	*v = emptyVariant()
}

// decodeVariant lifts an invocation result into a Value and consumes the
// native side. BSTRs are copied and freed here; interface pointers keep
// their callee-supplied reference, which the Releaser drops later.
func decodeVariant(v *variant) (domain.Value, error) {
	switch v.vt {
	case vtEmpty, vtNull:
		return domain.Empty(), nil
	case vtBool:
		return domain.FromBool(uint16(v.val) != 0), nil
	case vtI1:
		return domain.FromInt8(int8(v.val)), nil
	case vtI2:
		return domain.FromInt16(int16(v.val)), nil
	case vtI4:
		return domain.FromInt32(int32(v.val)), nil
	case vtI8:
		return domain.FromInt64(int64(v.val)), nil
	case vtUI1:
		return domain.FromUint8(uint8(v.val)), nil
	case vtUI2:
		return domain.FromUint16(uint16(v.val)), nil
	case vtUI4:
		return domain.FromUint32(uint32(v.val)), nil
	case vtUI8:
		return domain.FromUint64(v.val), nil
	case vtInt, vtUInt:
		return domain.FromUintptr(uintptr(v.val)), nil
	case vtBSTR:
		s := bstrToString(uintptr(v.val))
		variantClear(v)
		return domain.FromString(s), nil
	case vtUnknown, vtDispatch:
		obj := uintptr(v.val)
		*v = emptyVariant()
		return domain.FromObject(obj), nil
	}
	vt := v.vt
	variantClear(v)
	return domain.Empty(), fmt.Errorf("%w: VARTYPE %d", domain.ErrVariantUnsupported, vt)
}

func variantClear(v *variant) {
	procVariantClear.Call(uintptr(unsafe.Pointer(v)))
}
