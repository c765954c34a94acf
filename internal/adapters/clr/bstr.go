//go:build windows

package clr

import (
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"
)

// sysAllocString allocates a BSTR copy of s. The caller owns the result
// and frees it with sysFreeString unless ownership moves into a VARIANT or
// SAFEARRAY cell.
func sysAllocString(s string) uintptr {
	p, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return 0
	}
	bstr, _, _ := procSysAllocString.Call(uintptr(unsafe.Pointer(p)))
	return bstr
}

func sysFreeString(bstr uintptr) {
	if bstr != 0 {
		procSysFreeString.Call(bstr)
	}
}

// bstrToString copies a BSTR into a Go string. Embedded NULs survive, the
// length prefix is authoritative.
func bstrToString(bstr uintptr) string {
	if bstr == 0 {
		return ""
	}
	n, _, _ := procSysStringLen.Call(bstr)
	if n == 0 {
		return ""
	}
	u16 := unsafe.Slice((*uint16)(unsafe.Pointer(bstr)), n)
	return string(utf16.Decode(u16))
}
