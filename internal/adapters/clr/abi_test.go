//go:build windows

package clr

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const slot = unsafe.Sizeof(uintptr(0))

// The wrappers depend on hand-laid struct layouts matching what mscoree
// and mscorlib actually dispatch through. These tests pin the offsets.

func TestVariantLayout(t *testing.T) {
	require.Equal(t, uintptr(24), unsafe.Sizeof(variant{}))
	assert.Equal(t, uintptr(0), unsafe.Offsetof(variant{}.vt))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(variant{}.val))
}

func TestAssemblyBindInfoLayout(t *testing.T) {
	var info assemblyBindInfo
	assert.Equal(t, uintptr(0), unsafe.Offsetof(info.AppDomainID))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(info.ReferencedIdentity))
	assert.Equal(t, uintptr(16), unsafe.Offsetof(info.PostPolicyIdentity))
	assert.Equal(t, uintptr(24), unsafe.Offsetof(info.PolicyLevel))
	assert.Equal(t, uintptr(32), unsafe.Sizeof(info))
}

func TestRuntimeInfoVtblSlots(t *testing.T) {
	var vt runtimeInfoVtbl
	assert.Equal(t, 3*slot, unsafe.Offsetof(vt.GetVersionString))
	assert.Equal(t, 8*slot, unsafe.Offsetof(vt.GetProcAddress))
	assert.Equal(t, 9*slot, unsafe.Offsetof(vt.GetInterface))
	assert.Equal(t, 10*slot, unsafe.Offsetof(vt.IsLoadable))
	assert.Equal(t, 14*slot, unsafe.Offsetof(vt.IsStarted))
}

func TestRuntimeHostVtblSlots(t *testing.T) {
	var vt runtimeHostVtbl
	assert.Equal(t, 3*slot, unsafe.Offsetof(vt.Start))
	assert.Equal(t, 4*slot, unsafe.Offsetof(vt.Stop))
	assert.Equal(t, 5*slot, unsafe.Offsetof(vt.SetHostControl))
}

func TestCorRuntimeHostVtblSlots(t *testing.T) {
	var vt corRuntimeHostVtbl
	assert.Equal(t, 10*slot, unsafe.Offsetof(vt.Start))
	assert.Equal(t, 11*slot, unsafe.Offsetof(vt.Stop))
	assert.Equal(t, 12*slot, unsafe.Offsetof(vt.CreateDomain))
	assert.Equal(t, 20*slot, unsafe.Offsetof(vt.UnloadDomain))
}

func TestAppDomainVtblSlots(t *testing.T) {
	var vt appDomainVtbl
	assert.Equal(t, 7*slot, unsafe.Offsetof(vt.GetToString))
	assert.Equal(t, 44*slot, unsafe.Offsetof(vt.LoadByName))
	assert.Equal(t, 53*slot, unsafe.Offsetof(vt.GetFriendlyName))
	assert.Equal(t, 57*slot, unsafe.Offsetof(vt.GetAssemblies))
}

func TestAssemblyVtblSlots(t *testing.T) {
	var vt assemblyVtbl
	assert.Equal(t, 7*slot, unsafe.Offsetof(vt.GetToString))
	assert.Equal(t, 15*slot, unsafe.Offsetof(vt.GetFullName))
	assert.Equal(t, 16*slot, unsafe.Offsetof(vt.GetEntryPoint))
	assert.Equal(t, 17*slot, unsafe.Offsetof(vt.GetTypeByName))
	assert.Equal(t, 41*slot, unsafe.Offsetof(vt.CreateInstance))
}

func TestTypeVtblSlots(t *testing.T) {
	var vt typeInfoVtbl
	assert.Equal(t, 7*slot, unsafe.Offsetof(vt.GetToString))
	assert.Equal(t, 46*slot, unsafe.Offsetof(vt.GetMethods))
	assert.Equal(t, 57*slot, unsafe.Offsetof(vt.InvokeMember))
	assert.Equal(t, 66*slot, unsafe.Offsetof(vt.GetMethodByName))
	assert.Equal(t, 76*slot, unsafe.Offsetof(vt.GetPropertyByName))
}

func TestMethodInfoVtblSlots(t *testing.T) {
	var vt methodInfoVtbl
	assert.Equal(t, 7*slot, unsafe.Offsetof(vt.GetToString))
	assert.Equal(t, 20*slot, unsafe.Offsetof(vt.GetMethodHandle))
	assert.Equal(t, 37*slot, unsafe.Offsetof(vt.Invoke))
}

func TestPropertyInfoVtblSlots(t *testing.T) {
	var vt propertyInfoVtbl
	assert.Equal(t, 7*slot, unsafe.Offsetof(vt.GetToString))
	assert.Equal(t, 18*slot, unsafe.Offsetof(vt.GetPropertyType))
	assert.Equal(t, 19*slot, unsafe.Offsetof(vt.GetValue))
}

func TestSimpleName(t *testing.T) {
	assert.Equal(t, "mscorlib", simpleName("mscorlib, Version=4.0.0.0, Culture=neutral, PublicKeyToken=b77a5c561934e089"))
	assert.Equal(t, "Payload", simpleName("Payload"))
	assert.Equal(t, "A", simpleName(" A , Version=1.0.0.0"))
}
