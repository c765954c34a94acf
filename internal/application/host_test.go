package application

import (
	"context"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clrhost-cli/internal/domain"
	"clrhost-cli/internal/ports/mocks"
)

const testIdentity = "Demo, Version=1.0.0.0, Culture=neutral, PublicKeyToken=null"

// managedImage builds the smallest PE32+ buffer that passes image
// validation: MZ stub, NT headers, executable characteristics, console
// subsystem and a non-empty COM descriptor directory.
func managedImage() []byte {
	img := make([]byte, 0x140)
	binary.LittleEndian.PutUint16(img[0:], 0x5A4D)
	binary.LittleEndian.PutUint32(img[0x3C:], 0x40)
	binary.LittleEndian.PutUint32(img[0x40:], 0x4550)
	binary.LittleEndian.PutUint16(img[0x40+22:], 0x0022)
	binary.LittleEndian.PutUint16(img[0x58:], 0x20B)
	binary.LittleEndian.PutUint16(img[0x58+68:], 3)
	comDir := 0x58 + 112 + 14*8
	binary.LittleEndian.PutUint32(img[comDir:], 0x2008)
	binary.LittleEndian.PutUint32(img[comDir+4:], 72)
	return img
}

type hostFixture struct {
	locator   *mocks.MockRuntimeLocator
	info      *mocks.MockRuntimeInfo
	idm       *mocks.MockIdentityManager
	clrHost   *mocks.MockRuntimeHost
	corHost   *mocks.MockCorRuntimeHost
	appDomain *mocks.MockAppDomain
	assembly  *mocks.MockAssembly
	patcher   *mocks.MockMemoryPatcher
	releaser  *mocks.MockReleaser
}

func newHostFixture(t *testing.T) *hostFixture {
	return &hostFixture{
		locator:   mocks.NewMockRuntimeLocator(t),
		info:      mocks.NewMockRuntimeInfo(t),
		idm:       mocks.NewMockIdentityManager(t),
		clrHost:   mocks.NewMockRuntimeHost(t),
		corHost:   mocks.NewMockCorRuntimeHost(t),
		appDomain: mocks.NewMockAppDomain(t),
		assembly:  mocks.NewMockAssembly(t),
		patcher:   mocks.NewMockMemoryPatcher(t),
		releaser:  mocks.NewMockReleaser(t),
	}
}

// expectPrepare wires the path up to a created domain with a fresh runtime.
func (f *hostFixture) expectPrepare(image []byte) {
	f.locator.EXPECT().Resolve(domain.RuntimeV4).Return(f.info, nil)
	f.info.EXPECT().IdentityManager().Return(f.idm, nil)
	f.idm.EXPECT().IdentityFromImage(image).Return(testIdentity, nil)
	f.info.EXPECT().RuntimeHost().Return(f.clrHost, nil)
	f.info.EXPECT().IsLoadable().Return(true, nil)
	f.info.EXPECT().IsStarted().Return(false, nil)

	register := f.clrHost.EXPECT().RegisterInterceptor(mock.MatchedBy(func(s *domain.AssemblyStore) bool {
		return s.Identity() == testIdentity
	})).Return(nil)
	f.clrHost.EXPECT().Start().Return(nil).NotBefore(register.Call)

	f.info.EXPECT().CorHost().Return(f.corHost, nil)
	f.corHost.EXPECT().Start().Return(nil)
	f.corHost.EXPECT().CreateDomain(mock.AnythingOfType("string")).Return(f.appDomain, nil)
}

func (f *hostFixture) expectTeardown() {
	f.corHost.EXPECT().UnloadDomain(f.appDomain).Return(nil).Once()
	f.corHost.EXPECT().Stop().Return(nil).Once()
}

func (f *hostFixture) host(opts Options) *Host {
	return NewHost(f.locator, f.patcher, f.releaser, opts)
}

func TestHostRunRejectsUnmanagedImage(t *testing.T) {
	f := newHostFixture(t)
	h := f.host(Options{})

	img := managedImage()
	comDir := 0x58 + 112 + 14*8
	binary.LittleEndian.PutUint32(img[comDir:], 0)
	binary.LittleEndian.PutUint32(img[comDir+4:], 0)

	_, err := h.Run(context.Background(), img, nil)
	require.ErrorIs(t, err, domain.ErrNotManaged)
}

func TestHostRunRejectsLibraryImage(t *testing.T) {
	f := newHostFixture(t)
	h := f.host(Options{})

	img := managedImage()
	binary.LittleEndian.PutUint16(img[0x40+22:], 0x2022)

	_, err := h.Run(context.Background(), img, nil)
	require.ErrorIs(t, err, domain.ErrNotExecutable)
}

func TestHostRunExecutesEntryPoint(t *testing.T) {
	f := newHostFixture(t)
	img := managedImage()
	f.expectPrepare(img)
	f.appDomain.EXPECT().LoadByIdentity(testIdentity).Return(f.assembly, nil)
	f.assembly.EXPECT().RunEntryPoint(domain.Strings([]string{"alpha", "beta"})).Return(nil)
	f.expectTeardown()

	h := f.host(Options{})
	out, err := h.Run(context.Background(), img, []string{"alpha", "beta"})
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, StateRuntimeStopped, h.State())
	assert.Equal(t, testIdentity, h.Identity())
}

func TestHostRunUsesConfiguredDomainName(t *testing.T) {
	f := newHostFixture(t)
	img := managedImage()

	f.locator.EXPECT().Resolve(domain.RuntimeV2).Return(f.info, nil)
	f.info.EXPECT().IdentityManager().Return(f.idm, nil)
	f.idm.EXPECT().IdentityFromImage(img).Return(testIdentity, nil)
	f.info.EXPECT().RuntimeHost().Return(f.clrHost, nil)
	f.info.EXPECT().IsLoadable().Return(true, nil)
	f.info.EXPECT().IsStarted().Return(false, nil)
	f.clrHost.EXPECT().RegisterInterceptor(mock.Anything).Return(nil)
	f.clrHost.EXPECT().Start().Return(nil)
	f.info.EXPECT().CorHost().Return(f.corHost, nil)
	f.corHost.EXPECT().Start().Return(nil)
	f.corHost.EXPECT().CreateDomain("Playground").Return(f.appDomain, nil)
	f.appDomain.EXPECT().LoadByIdentity(testIdentity).Return(f.assembly, nil)
	f.assembly.EXPECT().RunEntryPoint(domain.Strings(nil)).Return(nil)
	f.expectTeardown()

	h := f.host(Options{Version: domain.RuntimeV2, DomainName: "Playground"})
	_, err := h.Run(context.Background(), img, nil)
	require.NoError(t, err)
}

func TestHostRunSkipsInterceptorWhenRuntimeAlreadyStarted(t *testing.T) {
	f := newHostFixture(t)
	img := managedImage()

	f.locator.EXPECT().Resolve(domain.RuntimeV4).Return(f.info, nil)
	f.info.EXPECT().IdentityManager().Return(f.idm, nil)
	f.idm.EXPECT().IdentityFromImage(img).Return(testIdentity, nil)
	f.info.EXPECT().RuntimeHost().Return(f.clrHost, nil)
	f.info.EXPECT().IsLoadable().Return(true, nil)
	f.info.EXPECT().IsStarted().Return(true, nil)
	f.info.EXPECT().CorHost().Return(f.corHost, nil)
	f.corHost.EXPECT().Start().Return(nil)
	f.corHost.EXPECT().CreateDomain(mock.AnythingOfType("string")).Return(f.appDomain, nil)
	f.appDomain.EXPECT().LoadByIdentity(testIdentity).Return(f.assembly, nil)
	f.assembly.EXPECT().RunEntryPoint(domain.Strings(nil)).Return(nil)
	f.expectTeardown()

	h := f.host(Options{})
	_, err := h.Run(context.Background(), img, nil)
	require.NoError(t, err)
}

func TestHostRunTearsDownAfterEntryPointFailure(t *testing.T) {
	f := newHostFixture(t)
	img := managedImage()
	f.expectPrepare(img)
	f.appDomain.EXPECT().LoadByIdentity(testIdentity).Return(f.assembly, nil)
	boom := errors.New("unhandled managed exception")
	f.assembly.EXPECT().RunEntryPoint(domain.Strings(nil)).Return(boom)
	f.expectTeardown()

	h := f.host(Options{})
	_, err := h.Run(context.Background(), img, nil)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, StateRuntimeStopped, h.State())
}

func TestHostRunFailsWhenInterceptorRegistrationFails(t *testing.T) {
	f := newHostFixture(t)
	img := managedImage()

	f.locator.EXPECT().Resolve(domain.RuntimeV4).Return(f.info, nil)
	f.info.EXPECT().IdentityManager().Return(f.idm, nil)
	f.idm.EXPECT().IdentityFromImage(img).Return(testIdentity, nil)
	f.info.EXPECT().RuntimeHost().Return(f.clrHost, nil)
	f.info.EXPECT().IsLoadable().Return(true, nil)
	f.info.EXPECT().IsStarted().Return(false, nil)
	regErr := domain.NewCallError("SetHostControl", -2147418113)
	f.clrHost.EXPECT().RegisterInterceptor(mock.Anything).Return(regErr)

	h := f.host(Options{})
	_, err := h.Run(context.Background(), img, nil)
	require.Error(t, err)
	var callErr *domain.CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, "SetHostControl", callErr.Op)
}

func TestHostUnloadIsIdempotent(t *testing.T) {
	f := newHostFixture(t)
	img := managedImage()
	f.expectPrepare(img)
	f.appDomain.EXPECT().LoadByIdentity(testIdentity).Return(f.assembly, nil)
	f.assembly.EXPECT().RunEntryPoint(domain.Strings(nil)).Return(nil)
	f.expectTeardown()

	h := f.host(Options{})
	_, err := h.Run(context.Background(), img, nil)
	require.NoError(t, err)

	// The run already unloaded; the Once expectations above fail the test
	// if these reach the mocks again.
	require.NoError(t, h.Unload())
	require.NoError(t, h.Unload())
}

func TestHostRunRedirectsAndCapturesOutput(t *testing.T) {
	f := newHostFixture(t)
	img := managedImage()
	f.expectPrepare(img)
	f.appDomain.EXPECT().LoadByIdentity(testIdentity).Return(f.assembly, nil)

	mscorlib := mocks.NewMockAssembly(t)
	f.appDomain.EXPECT().AssemblyByName("mscorlib").Return(mscorlib, nil)

	writer := domain.FromObject(0x1000)
	savedOut := domain.FromObject(0x2000)
	savedErr := domain.FromObject(0x3000)

	consoleType := mocks.NewMockType(t)
	writerType := mocks.NewMockType(t)
	mscorlib.EXPECT().Type("System.Console").Return(consoleType, nil)
	mscorlib.EXPECT().Type("System.IO.StringWriter").Return(writerType, nil)
	mscorlib.EXPECT().CreateInstance("System.IO.StringWriter").Return(writer, nil)

	outProp := mocks.NewMockProperty(t)
	errProp := mocks.NewMockProperty(t)
	consoleType.EXPECT().Property("Out").Return(outProp, nil)
	consoleType.EXPECT().Property("Error").Return(errProp, nil)
	outProp.EXPECT().Value(domain.Empty(), []domain.Value(nil)).Return(savedOut, nil)
	errProp.EXPECT().Value(domain.Empty(), []domain.Value(nil)).Return(savedErr, nil)
	outProp.EXPECT().Release()
	errProp.EXPECT().Release()

	staticCall := domain.FlagsFor(domain.MemberMethod, domain.Static)
	instanceCall := domain.FlagsFor(domain.MemberMethod, domain.Instance)
	consoleType.EXPECT().Invoke("SetOut", staticCall, domain.Empty(), []domain.Value{writer}).Return(domain.Empty(), nil).Once()
	consoleType.EXPECT().Invoke("SetError", staticCall, domain.Empty(), []domain.Value{writer}).Return(domain.Empty(), nil).Once()

	f.assembly.EXPECT().RunEntryPoint(domain.Strings(nil)).Return(nil)

	writerType.EXPECT().Invoke("ToString", instanceCall, writer, []domain.Value(nil)).Return(domain.FromString("Hello World\r\n"), nil)

	consoleType.EXPECT().Invoke("SetOut", staticCall, domain.Empty(), []domain.Value{savedOut}).Return(domain.Empty(), nil).Once()
	consoleType.EXPECT().Invoke("SetError", staticCall, domain.Empty(), []domain.Value{savedErr}).Return(domain.Empty(), nil).Once()
	f.releaser.EXPECT().Release(writer)
	f.releaser.EXPECT().Release(savedOut)
	f.releaser.EXPECT().Release(savedErr)

	f.expectTeardown()

	h := f.host(Options{RedirectOutput: true})
	out, err := h.Run(context.Background(), img, nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello World\r\n", out)
}

func TestHostRunStopsBeforeLoadOnCancelledContext(t *testing.T) {
	f := newHostFixture(t)
	img := managedImage()

	f.locator.EXPECT().Resolve(domain.RuntimeV4).Return(f.info, nil)
	f.info.EXPECT().IdentityManager().Return(f.idm, nil)
	f.idm.EXPECT().IdentityFromImage(img).Return(testIdentity, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := f.host(Options{})
	_, err := h.Run(ctx, img, nil)
	require.ErrorIs(t, err, context.Canceled)
}
