//go:build windows

package clr

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"clrhost-cli/internal/domain"
	"clrhost-cli/internal/ports"
)

type metaHostVtbl struct {
	iUnknownVtbl
	GetRuntime                       uintptr
	GetVersionFromFile               uintptr
	EnumerateInstalledRuntimes       uintptr
	EnumerateLoadedRuntimes          uintptr
	RequestRuntimeLoadedNotification uintptr
	QueryLegacyV2RuntimeBinding      uintptr
	ExitProcess                      uintptr
}

type enumUnknownVtbl struct {
	iUnknownVtbl
	Next  uintptr
	Skip  uintptr
	Reset uintptr
	Clone uintptr
}

// Locator discovers installed runtimes through the CLR meta host. It
// implements ports.RuntimeLocator and is the entry object everything else
// hangs off.
type Locator struct{}

func NewLocator() *Locator { return &Locator{} }

func (l *Locator) metaHost() (uintptr, error) {
	return clrCreateInstance(&clsidCLRMetaHost, &iidICLRMetaHost)
}

// Resolve binds a specific runtime generation, without loading it yet.
func (l *Locator) Resolve(version domain.RuntimeVersion) (ports.RuntimeInfo, error) {
	host, err := l.metaHost()
	if err != nil {
		return nil, err
	}
	defer release(host)

	wide, err := windows.UTF16PtrFromString(version.String())
	if err != nil {
		return nil, err
	}
	v := (*metaHostVtbl)(unsafe.Pointer(vtbl(host)))
	var info uintptr
	hr, _, _ := syscall.SyscallN(v.GetRuntime, host,
		uintptr(unsafe.Pointer(wide)),
		uintptr(unsafe.Pointer(&iidICLRRuntimeInfo)),
		uintptr(unsafe.Pointer(&info)))
	if err := checkHR("GetRuntime", hr); err != nil {
		return nil, err
	}
	return &runtimeInfo{ptr: info}, nil
}

// InstalledVersions walks the installed-runtime enumerator and reports
// each runtime's version string.
func (l *Locator) InstalledVersions() ([]string, error) {
	host, err := l.metaHost()
	if err != nil {
		return nil, err
	}
	defer release(host)

	v := (*metaHostVtbl)(unsafe.Pointer(vtbl(host)))
	var enum uintptr
	hr, _, _ := syscall.SyscallN(v.EnumerateInstalledRuntimes, host,
		uintptr(unsafe.Pointer(&enum)))
	if err := checkHR("EnumerateInstalledRuntimes", hr); err != nil {
		return nil, err
	}
	defer release(enum)

	ev := (*enumUnknownVtbl)(unsafe.Pointer(vtbl(enum)))
	var versions []string
	for {
		var item uintptr
		var fetched uint32
		hr, _, _ := syscall.SyscallN(ev.Next, enum, 1,
			uintptr(unsafe.Pointer(&item)),
			uintptr(unsafe.Pointer(&fetched)))
		if int32(hr) != hrOK || fetched == 0 || item == 0 {
			break
		}
		info := runtimeInfo{ptr: item}
		version, err := info.VersionString()
		release(item)
		if err != nil {
			return nil, err
		}
		versions = append(versions, version)
	}
	return versions, nil
}
