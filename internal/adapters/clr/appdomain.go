//go:build windows

package clr

import (
	"fmt"
	"strings"
	"syscall"
	"unsafe"

	"clrhost-cli/internal/domain"
	"clrhost-cli/internal/ports"
)

type appDomainVtbl struct {
	iDispatchVtbl
	GetToString               uintptr
	Equals                    uintptr
	GetHashCode               uintptr
	GetType                   uintptr
	InitializeLifetimeService uintptr
	GetLifetimeService        uintptr
	GetEvidence               uintptr
	eventSlots                [14]uintptr
	defineDynamicSlots        [9]uintptr
	createInstanceSlots       [6]uintptr
	Load                      uintptr
	LoadByName                uintptr
	LoadRaw                   uintptr
	loadOverloads             [4]uintptr
	executeAssemblySlots      [3]uintptr
	GetFriendlyName           uintptr
	GetBaseDirectory          uintptr
	GetRelativeSearchPath     uintptr
	GetShadowCopyFiles        uintptr
	GetAssemblies             uintptr
}

// appDomain wraps one _AppDomain reflection surface.
type appDomain struct {
	ptr uintptr
}

func (d *appDomain) vt() *appDomainVtbl {
	return (*appDomainVtbl)(unsafe.Pointer(vtbl(d.ptr)))
}

// LoadByIdentity loads an assembly by its canonical display name. With the
// bind interceptor installed, the resolution comes back to the in-memory
// store instead of disk.
func (d *appDomain) LoadByIdentity(identity string) (ports.Assembly, error) {
	name := sysAllocString(identity)
	defer sysFreeString(name)

	var out uintptr
	hr, _, _ := syscall.SyscallN(d.vt().LoadByName, d.ptr,
		name, uintptr(unsafe.Pointer(&out)))
	if err := checkHR("Load_2", hr); err != nil {
		return nil, err
	}
	return &assembly{ptr: out}, nil
}

// AssemblyByName finds an already loaded assembly by simple name,
// case-insensitively. Non-matching assemblies are released as they are
// passed over.
func (d *appDomain) AssemblyByName(name string) (ports.Assembly, error) {
	loaded, err := d.Assemblies()
	if err != nil {
		return nil, err
	}
	var found ports.Assembly
	for _, entry := range loaded {
		if found == nil && strings.EqualFold(simpleName(entry.Name), name) {
			found = entry.Assembly
			continue
		}
		entry.Assembly.(*assembly).release()
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrAssemblyNotFound, name)
	}
	return found, nil
}

// Assemblies lists every assembly loaded into the domain. The caller owns
// the returned references.
func (d *appDomain) Assemblies() ([]ports.NamedAssembly, error) {
	var sa uintptr
	hr, _, _ := syscall.SyscallN(d.vt().GetAssemblies, d.ptr,
		uintptr(unsafe.Pointer(&sa)))
	if err := checkHR("GetAssemblies", hr); err != nil {
		return nil, err
	}
	defer safeArrayDestroy(sa)

	ptrs, err := safeArrayUnknowns(sa)
	if err != nil {
		return nil, err
	}

	out := make([]ports.NamedAssembly, 0, len(ptrs))
	for _, p := range ptrs {
		a := &assembly{ptr: p}
		name, err := a.displayName()
		if err != nil {
			a.release()
			for _, kept := range out {
				kept.Assembly.(*assembly).release()
			}
			return nil, err
		}
		out = append(out, ports.NamedAssembly{Name: name, Assembly: a})
	}
	return out, nil
}

// simpleName strips the version, culture and key tokens off a display name.
func simpleName(displayName string) string {
	if i := strings.IndexByte(displayName, ','); i >= 0 {
		return strings.TrimSpace(displayName[:i])
	}
	return strings.TrimSpace(displayName)
}
