//go:build windows

package clr

import (
	"syscall"
	"unicode/utf16"
	"unsafe"

	"clrhost-cli/internal/domain"
)

type identityManagerVtbl struct {
	iUnknownVtbl
	GetCLRAssemblyReferenceList        uintptr
	GetBindingIdentityFromFile         uintptr
	GetBindingIdentityFromStream       uintptr
	GetReferencedAssembliesFromFile    uintptr
	GetReferencedAssembliesFromStream  uintptr
	GetProbingAssembliesFromReference  uintptr
	IsStronglyNamed                    uintptr
}

// identityManager computes canonical binding identities through the
// runtime's ICLRAssemblyIdentityManager, reached via the GetCLRIdentityManager
// export rather than QueryInterface.
type identityManager struct {
	ptr uintptr
}

func newIdentityManager(info *runtimeInfo) (*identityManager, error) {
	fn, err := info.procAddress("GetCLRIdentityManager")
	if err != nil {
		return nil, err
	}
	var ptr uintptr
	hr, _, _ := syscall.SyscallN(fn,
		uintptr(unsafe.Pointer(&iidICLRAssemblyIdentityManager)),
		uintptr(unsafe.Pointer(&ptr)))
	if err := checkHR("GetCLRIdentityManager", hr); err != nil {
		return nil, err
	}
	return &identityManager{ptr: ptr}, nil
}

// IdentityFromImage reads the post-policy binding identity of an in-memory
// assembly. The identity buffer grows on ERROR_INSUFFICIENT_BUFFER until
// the runtime is satisfied.
func (m *identityManager) IdentityFromImage(image []byte) (string, error) {
	stream := shCreateMemStream(image)
	if stream == 0 {
		return "", domain.ErrIdentityExtraction
	}
	defer release(stream)

	vt := (*identityManagerVtbl)(unsafe.Pointer(vtbl(m.ptr)))
	size := uint32(2048)
	for {
		buf := make([]uint16, size)
		hr, _, _ := syscall.SyscallN(vt.GetBindingIdentityFromStream, m.ptr,
			stream, 0,
			uintptr(unsafe.Pointer(&buf[0])),
			uintptr(unsafe.Pointer(&size)))
		if int32(hr) == hrInsufficient && size > uint32(len(buf)) {
			continue
		}
		if err := checkHR("GetBindingIdentityFromStream", hr); err != nil {
			return "", err
		}
		if size > 0 {
			size--
		}
		return string(utf16.Decode(buf[:size])), nil
	}
}
