package application

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"clrhost-cli/internal/domain"
	"clrhost-cli/internal/ports/mocks"
)

type exitFixture struct {
	mscorlib *mocks.MockAssembly
	patcher  *mocks.MockMemoryPatcher
	releaser *mocks.MockReleaser

	envType    *mocks.MockType
	infoType   *mocks.MockType
	handleType *mocks.MockType
	exitMethod *mocks.MockMethod
	handleProp *mocks.MockProperty
}

func newExitFixture(t *testing.T) *exitFixture {
	return &exitFixture{
		mscorlib:   mocks.NewMockAssembly(t),
		patcher:    mocks.NewMockMemoryPatcher(t),
		releaser:   mocks.NewMockReleaser(t),
		envType:    mocks.NewMockType(t),
		infoType:   mocks.NewMockType(t),
		handleType: mocks.NewMockType(t),
		exitMethod: mocks.NewMockMethod(t),
		handleProp: mocks.NewMockProperty(t),
	}
}

// expectResolve wires the reflection chain from Environment.Exit down to a
// function pointer value.
func (f *exitFixture) expectResolve(pointer domain.Value) {
	methodObj := domain.FromObject(0xA0)
	handle := domain.FromObject(0xB0)

	f.mscorlib.EXPECT().Type("System.Environment").Return(f.envType, nil)
	f.envType.EXPECT().Method("Exit").Return(f.exitMethod, nil)
	f.exitMethod.EXPECT().AsValue().Return(methodObj, nil)
	f.exitMethod.EXPECT().Release()

	f.mscorlib.EXPECT().Type("System.Reflection.MethodInfo").Return(f.infoType, nil)
	f.infoType.EXPECT().Property("MethodHandle").Return(f.handleProp, nil)
	f.handleProp.EXPECT().Value(methodObj, []domain.Value(nil)).Return(handle, nil)
	f.handleProp.EXPECT().Release()

	f.mscorlib.EXPECT().Type("System.RuntimeMethodHandle").Return(f.handleType, nil)
	instanceCall := domain.FlagsFor(domain.MemberMethod, domain.Instance)
	f.handleType.EXPECT().Invoke("GetFunctionPointer", instanceCall, handle, []domain.Value(nil)).Return(pointer, nil)

	f.releaser.EXPECT().Release(methodObj)
	f.releaser.EXPECT().Release(handle)
}

func TestExitNeutralizerPatchesFunctionPointer(t *testing.T) {
	f := newExitFixture(t)
	f.expectResolve(domain.FromUintptr(0x7FFE1234))
	f.patcher.EXPECT().PatchReturn(uintptr(0x7FFE1234)).Return(nil)

	n := NewExitNeutralizer(f.mscorlib, f.patcher, f.releaser)
	require.NoError(t, n.Neutralize())
}

func TestExitNeutralizerRejectsNullPointer(t *testing.T) {
	f := newExitFixture(t)
	f.expectResolve(domain.FromUintptr(0))

	n := NewExitNeutralizer(f.mscorlib, f.patcher, f.releaser)
	err := n.Neutralize()
	require.Error(t, err)
	require.Contains(t, err.Error(), "null address")
}

func TestExitNeutralizerPropagatesPatchFailure(t *testing.T) {
	f := newExitFixture(t)
	f.expectResolve(domain.FromUintptr(0x1000))
	patchErr := errors.New("VirtualProtect denied")
	f.patcher.EXPECT().PatchReturn(uintptr(0x1000)).Return(patchErr)

	n := NewExitNeutralizer(f.mscorlib, f.patcher, f.releaser)
	require.ErrorIs(t, n.Neutralize(), patchErr)
}

func TestExitNeutralizerFailsWhenExitUnresolvable(t *testing.T) {
	f := newExitFixture(t)
	f.mscorlib.EXPECT().Type("System.Environment").Return(f.envType, nil)
	f.envType.EXPECT().Method("Exit").Return(nil, domain.ErrMethodNotFound)
	f.envType.EXPECT().MethodBySignature("Void Exit(Int32)").Return(nil, domain.ErrMethodNotFound)

	n := NewExitNeutralizer(f.mscorlib, f.patcher, f.releaser)
	require.ErrorIs(t, n.Neutralize(), domain.ErrMethodNotFound)
}
