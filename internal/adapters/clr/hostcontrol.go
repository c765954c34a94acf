//go:build windows

package clr

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/windows"

	"clrhost-cli/internal/domain"
)

// The bind interceptor is a triad of COM objects implemented in Go:
// IHostControl hands the runtime an IHostAssemblyManager, the manager
// hands out an IHostAssemblyStore, and the store answers resolution
// callbacks from the in-memory image. All decision logic lives in
// domain.AssemblyStore; these objects only translate the ABI.
//
// The callbacks are created once per process (windows.NewCallback slots
// are never reclaimed) and dispatch on the object behind `this`.

// assemblyBindInfo mirrors the runtime's AssemblyBindInfo argument.
type assemblyBindInfo struct {
	AppDomainID        uint32
	_                  uint32
	ReferencedIdentity *uint16
	PostPolicyIdentity *uint16
	PolicyLevel        uint32
	_                  uint32
}

type hostControl struct {
	vt      uintptr
	refs    int32
	manager *assemblyManager
}

type assemblyManager struct {
	vt    uintptr
	refs  int32
	store *assemblyStore
}

type assemblyStore struct {
	vt    uintptr
	refs  int32
	inner *domain.AssemblyStore
}

// newHostControl builds the triad around one immutable store. Nothing is
// mutated after construction, which keeps the runtime's reentrant
// resolution callbacks safe without locks.
func newHostControl(store *domain.AssemblyStore) *hostControl {
	s := &assemblyStore{vt: storeVtbl(), refs: 1, inner: store}
	m := &assemblyManager{vt: managerVtbl(), refs: 1, store: s}
	return &hostControl{vt: controlVtbl(), refs: 1, manager: m}
}

func (hc *hostControl) raw() uintptr { return uintptr(unsafe.Pointer(hc)) }

// setOut stores a pointer-sized value through an out parameter, tolerating
// a null destination.
func setOut(pp uintptr, v uintptr) {
	if pp != 0 {
		*(*uintptr)(unsafe.Pointer(pp)) = v
	}
}

func setOut64(pp uintptr, v uint64) {
	if pp != 0 {
		*(*uint64)(unsafe.Pointer(pp)) = v
	}
}

var controlVtbl = sync.OnceValue(func() uintptr {
	vt := &[5]uintptr{
		windows.NewCallback(func(this, riid, ppv uintptr) uintptr {
			hc := (*hostControl)(unsafe.Pointer(this))
			iid := (*windows.GUID)(unsafe.Pointer(riid))
			if guidEqual(iid, &iidIUnknown) || guidEqual(iid, &iidIHostControl) {
				atomic.AddInt32(&hc.refs, 1)
				setOut(ppv, this)
				return hrOK
			}
			setOut(ppv, 0)
			return uintptr(uint32(hrENointerface))
		}),
		windows.NewCallback(func(this uintptr) uintptr {
			hc := (*hostControl)(unsafe.Pointer(this))
			return uintptr(atomic.AddInt32(&hc.refs, 1))
		}),
		windows.NewCallback(func(this uintptr) uintptr {
			hc := (*hostControl)(unsafe.Pointer(this))
			return uintptr(atomic.AddInt32(&hc.refs, -1))
		}),
		// GetHostManager: only the assembly manager is provided; every
		// other host manager request is declined so the runtime keeps its
		// defaults.
		windows.NewCallback(func(this, riid, ppObject uintptr) uintptr {
			hc := (*hostControl)(unsafe.Pointer(this))
			iid := (*windows.GUID)(unsafe.Pointer(riid))
			if guidEqual(iid, &iidIHostAssemblyManager) {
				atomic.AddInt32(&hc.manager.refs, 1)
				setOut(ppObject, uintptr(unsafe.Pointer(hc.manager)))
				return hrOK
			}
			setOut(ppObject, 0)
			return uintptr(uint32(hrENointerface))
		}),
		// SetAppDomainManager: accepted and ignored.
		windows.NewCallback(func(this, dwAppDomainID, punkAppDomainManager uintptr) uintptr {
			return hrOK
		}),
	}
	return uintptr(unsafe.Pointer(vt))
})

var managerVtbl = sync.OnceValue(func() uintptr {
	vt := &[5]uintptr{
		windows.NewCallback(func(this, riid, ppv uintptr) uintptr {
			m := (*assemblyManager)(unsafe.Pointer(this))
			iid := (*windows.GUID)(unsafe.Pointer(riid))
			if guidEqual(iid, &iidIUnknown) || guidEqual(iid, &iidIHostAssemblyManager) {
				atomic.AddInt32(&m.refs, 1)
				setOut(ppv, this)
				return hrOK
			}
			setOut(ppv, 0)
			return uintptr(uint32(hrENointerface))
		}),
		windows.NewCallback(func(this uintptr) uintptr {
			m := (*assemblyManager)(unsafe.Pointer(this))
			return uintptr(atomic.AddInt32(&m.refs, 1))
		}),
		windows.NewCallback(func(this uintptr) uintptr {
			m := (*assemblyManager)(unsafe.Pointer(this))
			return uintptr(atomic.AddInt32(&m.refs, -1))
		}),
		// GetNonHostStoreAssemblies: a null list tells the runtime that
		// everything outside the host store loads through normal fusion
		// paths.
		windows.NewCallback(func(this, ppReferenceList uintptr) uintptr {
			setOut(ppReferenceList, 0)
			return hrOK
		}),
		windows.NewCallback(func(this, ppStore uintptr) uintptr {
			m := (*assemblyManager)(unsafe.Pointer(this))
			atomic.AddInt32(&m.store.refs, 1)
			setOut(ppStore, uintptr(unsafe.Pointer(m.store)))
			return hrOK
		}),
	}
	return uintptr(unsafe.Pointer(vt))
})

var storeVtbl = sync.OnceValue(func() uintptr {
	vt := &[5]uintptr{
		windows.NewCallback(storeQueryInterface),
		windows.NewCallback(func(this uintptr) uintptr {
			s := (*assemblyStore)(unsafe.Pointer(this))
			return uintptr(atomic.AddInt32(&s.refs, 1))
		}),
		windows.NewCallback(func(this uintptr) uintptr {
			s := (*assemblyStore)(unsafe.Pointer(this))
			return uintptr(atomic.AddInt32(&s.refs, -1))
		}),
		windows.NewCallback(provideAssembly),
		// ProvideModule: multi-module assemblies are never served from
		// the host store.
		windows.NewCallback(func(this, pBindInfo, pdwModuleID, ppStmModuleImage, ppStmPDB uintptr) uintptr {
			return uintptr(uint32(hrFileNotFound))
		}),
	}
	return uintptr(unsafe.Pointer(vt))
})

// storeQueryInterface answers for the store IID and, because some loader
// paths query the store through the manager interface it came from, for
// the manager IID as well.
func storeQueryInterface(this, riid, ppv uintptr) uintptr {
	s := (*assemblyStore)(unsafe.Pointer(this))
	iid := (*windows.GUID)(unsafe.Pointer(riid))
	if guidEqual(iid, &iidIUnknown) || guidEqual(iid, &iidIHostAssemblyStore) || guidEqual(iid, &iidIHostAssemblyManager) {
		atomic.AddInt32(&s.refs, 1)
		setOut(ppv, this)
		return hrOK
	}
	setOut(ppv, 0)
	return uintptr(uint32(hrENointerface))
}

// provideAssembly answers one resolution callback. It runs on the
// runtime's loader stack and must not block or call back into the host.
func provideAssembly(this, pBindInfo, pAssemblyID, pContext, ppStmAssemblyImage, ppStmPDB uintptr) uintptr {
	s := (*assemblyStore)(unsafe.Pointer(this))
	if pBindInfo == 0 {
		return uintptr(uint32(hrFileNotFound))
	}
	info := (*assemblyBindInfo)(unsafe.Pointer(pBindInfo))

	req := domain.BindRequest{
		AppDomainID:        info.AppDomainID,
		ReferencedIdentity: windows.UTF16PtrToString(info.ReferencedIdentity),
		PostPolicyIdentity: windows.UTF16PtrToString(info.PostPolicyIdentity),
		PolicyLevel:        info.PolicyLevel,
	}
	provided, err := s.inner.Provide(req)
	if err != nil {
		return uintptr(uint32(hrFileNotFound))
	}

	stream := shCreateMemStream(provided.Image)
	if stream == 0 {
		return uintptr(uint32(hrInsufficient))
	}
	setOut64(pAssemblyID, provided.AssemblyID)
	setOut64(pContext, provided.Context)
	setOut(ppStmAssemblyImage, stream)
	setOut(ppStmPDB, 0)
	return hrOK
}
