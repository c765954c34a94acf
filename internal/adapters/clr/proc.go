//go:build windows

package clr

import (
	"sync"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modMSCorEE = windows.NewLazySystemDLL("mscoree.dll")
	modSHLWAPI = windows.NewLazySystemDLL("shlwapi.dll")
	modOleAut  = windows.NewLazySystemDLL("oleaut32.dll")

	procCLRCreateInstance = modMSCorEE.NewProc("CLRCreateInstance")
	procSHCreateMemStream = modSHLWAPI.NewProc("SHCreateMemStream")

	procSysAllocString = modOleAut.NewProc("SysAllocString")
	procSysFreeString  = modOleAut.NewProc("SysFreeString")
	procSysStringLen   = modOleAut.NewProc("SysStringLen")
	procVariantClear   = modOleAut.NewProc("VariantClear")

	procSafeArrayCreateVector = modOleAut.NewProc("SafeArrayCreateVector")
	procSafeArrayPutElement   = modOleAut.NewProc("SafeArrayPutElement")
	procSafeArrayGetElement   = modOleAut.NewProc("SafeArrayGetElement")
	procSafeArrayGetLBound    = modOleAut.NewProc("SafeArrayGetLBound")
	procSafeArrayGetUBound    = modOleAut.NewProc("SafeArrayGetUBound")
	procSafeArrayDestroy      = modOleAut.NewProc("SafeArrayDestroy")
)

// clrCreateInstanceAddr resolves the mscoree entry once for the whole
// process.
var clrCreateInstanceAddr = sync.OnceValues(func() (uintptr, error) {
	if err := procCLRCreateInstance.Find(); err != nil {
		return 0, err
	}
	return procCLRCreateInstance.Addr(), nil
})

// clrCreateInstance builds one of the top level hosting objects, the meta
// host in practice.
func clrCreateInstance(clsid, iid *windows.GUID) (uintptr, error) {
	addr, err := clrCreateInstanceAddr()
	if err != nil {
		return 0, err
	}
	var out uintptr
	hr, _, _ := syscall.SyscallN(addr,
		uintptr(unsafe.Pointer(clsid)),
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(&out)))
	if err := checkHR("CLRCreateInstance", hr); err != nil {
		return 0, err
	}
	return out, nil
}

// shCreateMemStream wraps a buffer in a COM IStream. The stream copies the
// bytes, so the buffer may be released afterwards. Returns the raw stream
// pointer, 0 on allocation failure.
func shCreateMemStream(buf []byte) uintptr {
	if len(buf) == 0 {
		return 0
	}
	stream, _, _ := procSHCreateMemStream.Call(
		uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return stream
}
