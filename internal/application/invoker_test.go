package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clrhost-cli/internal/domain"
	"clrhost-cli/internal/ports/mocks"
)

func TestInvokerCallStaticUsesStaticMethodFlags(t *testing.T) {
	assembly := mocks.NewMockAssembly(t)
	releaser := mocks.NewMockReleaser(t)
	program := mocks.NewMockType(t)

	assembly.EXPECT().Type("Demo.Program").Return(program, nil)
	wantFlags := domain.BindingPublic | domain.BindingStatic | domain.BindingInvokeMethod
	args := []domain.Value{domain.FromInt32(42)}
	program.EXPECT().Invoke("Sum", wantFlags, domain.Empty(), args).Return(domain.FromInt32(84), nil)

	inv := NewInvoker(assembly, releaser)
	result, err := inv.CallStatic("Demo.Program", "Sum", args)
	require.NoError(t, err)
	got, err := result.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(84), got)
}

func TestInvokerCallInstanceUsesInstanceFlags(t *testing.T) {
	assembly := mocks.NewMockAssembly(t)
	releaser := mocks.NewMockReleaser(t)
	writer := mocks.NewMockType(t)

	instance := domain.FromObject(0xBEEF)
	assembly.EXPECT().Type("System.IO.StringWriter").Return(writer, nil)
	wantFlags := domain.BindingPublic | domain.BindingInstance | domain.BindingInvokeMethod
	writer.EXPECT().Invoke("ToString", wantFlags, instance, []domain.Value(nil)).Return(domain.FromString("ok"), nil)

	inv := NewInvoker(assembly, releaser)
	result, err := inv.CallInstance("System.IO.StringWriter", "ToString", instance, nil)
	require.NoError(t, err)
	text, err := result.String()
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}

func TestInvokerCallStaticReportsMissingType(t *testing.T) {
	assembly := mocks.NewMockAssembly(t)
	releaser := mocks.NewMockReleaser(t)

	assembly.EXPECT().Type("Demo.Missing").Return(nil, domain.ErrTypeNotFound)

	inv := NewInvoker(assembly, releaser)
	_, err := inv.CallStatic("Demo.Missing", "Main", nil)
	require.ErrorIs(t, err, domain.ErrTypeNotFound)
	assert.Contains(t, err.Error(), "Demo.Missing")
}

func TestInvokerPropertyValueReportsMissingProperty(t *testing.T) {
	assembly := mocks.NewMockAssembly(t)
	releaser := mocks.NewMockReleaser(t)
	console := mocks.NewMockType(t)

	assembly.EXPECT().Type("System.Console").Return(console, nil)
	console.EXPECT().Property("Nope").Return(nil, domain.ErrPropertyNotFound)

	inv := NewInvoker(assembly, releaser)
	_, err := inv.PropertyValue("System.Console", "Nope", domain.Empty())
	require.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestInvokerMethodFallsBackToSignatureScan(t *testing.T) {
	assembly := mocks.NewMockAssembly(t)
	releaser := mocks.NewMockReleaser(t)
	env := mocks.NewMockType(t)
	exit := mocks.NewMockMethod(t)

	assembly.EXPECT().Type("System.Environment").Return(env, nil)
	env.EXPECT().Method("Exit").Return(nil, domain.ErrMethodNotFound)
	env.EXPECT().MethodBySignature("Void Exit(Int32)").Return(exit, nil)

	inv := NewInvoker(assembly, releaser)
	m, err := inv.Method("System.Environment", "Exit", "Void Exit(Int32)")
	require.NoError(t, err)
	assert.Same(t, exit, m)
}

func TestInvokerMethodWithoutSignatureDoesNotScan(t *testing.T) {
	assembly := mocks.NewMockAssembly(t)
	releaser := mocks.NewMockReleaser(t)
	env := mocks.NewMockType(t)

	assembly.EXPECT().Type("System.Environment").Return(env, nil)
	env.EXPECT().Method("Exit").Return(nil, domain.ErrMethodNotFound)

	inv := NewInvoker(assembly, releaser)
	_, err := inv.Method("System.Environment", "Exit", "")
	require.ErrorIs(t, err, domain.ErrMethodNotFound)
}
