package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clrhost-cli/internal/domain"
	"clrhost-cli/internal/ports/mocks"
)

func TestEnvironmentOpenExposesMscorlib(t *testing.T) {
	locator := mocks.NewMockRuntimeLocator(t)
	info := mocks.NewMockRuntimeInfo(t)
	corHost := mocks.NewMockCorRuntimeHost(t)
	appDomain := mocks.NewMockAppDomain(t)
	mscorlib := mocks.NewMockAssembly(t)
	releaser := mocks.NewMockReleaser(t)

	locator.EXPECT().Resolve(domain.RuntimeV4).Return(info, nil)
	info.EXPECT().CorHost().Return(corHost, nil)
	corHost.EXPECT().Start().Return(nil)
	corHost.EXPECT().CreateDomain(mock.AnythingOfType("string")).Return(appDomain, nil)
	appDomain.EXPECT().AssemblyByName("mscorlib").Return(mscorlib, nil)
	corHost.EXPECT().UnloadDomain(appDomain).Return(nil).Once()
	corHost.EXPECT().Stop().Return(nil).Once()

	env := NewEnvironment(locator, releaser, domain.RuntimeV4)
	require.NoError(t, env.Open())

	got, err := env.Mscorlib()
	require.NoError(t, err)
	assert.Same(t, mscorlib, got)

	inv, err := env.Invoker()
	require.NoError(t, err)
	assert.NotNil(t, inv)

	require.NoError(t, env.Close())
	require.NoError(t, env.Close())

	_, err = env.Mscorlib()
	require.ErrorIs(t, err, domain.ErrNotPrepared)
}

func TestEnvironmentMscorlibBeforeOpen(t *testing.T) {
	locator := mocks.NewMockRuntimeLocator(t)
	releaser := mocks.NewMockReleaser(t)

	env := NewEnvironment(locator, releaser, domain.RuntimeV4)
	_, err := env.Mscorlib()
	require.ErrorIs(t, err, domain.ErrNotPrepared)
	_, err = env.Invoker()
	require.ErrorIs(t, err, domain.ErrNotPrepared)
}
