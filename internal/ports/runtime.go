package ports

import "clrhost-cli/internal/domain"

// RuntimeLocator discovers hosting runtime versions and yields the
// version-info service for one of them.
type RuntimeLocator interface {
	Resolve(version domain.RuntimeVersion) (RuntimeInfo, error)
	InstalledVersions() ([]string, error)
}

// RuntimeInfo is the version-info service for one selected runtime.
type RuntimeInfo interface {
	VersionString() (string, error)
	IsLoadable() (bool, error)
	IsStarted() (bool, error)
	IdentityManager() (IdentityManager, error)
	RuntimeHost() (RuntimeHost, error)
	CorHost() (CorRuntimeHost, error)
}

// IdentityManager computes the canonical binding identity of an image.
type IdentityManager interface {
	IdentityFromImage(image []byte) (string, error)
}

// RuntimeHost is the hosting-control surface used before and around
// runtime start. The interceptor must be registered strictly before Start.
type RuntimeHost interface {
	RegisterInterceptor(store *domain.AssemblyStore) error
	Start() error
	Stop() error
}

// CorRuntimeHost creates and tears down isolated execution contexts.
type CorRuntimeHost interface {
	Start() error
	CreateDomain(name string) (AppDomain, error)
	UnloadDomain(d AppDomain) error
	Stop() error
}

// AppDomain is one isolated execution context.
type AppDomain interface {
	LoadByIdentity(identity string) (Assembly, error)
	AssemblyByName(name string) (Assembly, error)
	Assemblies() ([]NamedAssembly, error)
}

type NamedAssembly struct {
	Name     string
	Assembly Assembly
}

// Assembly is one loaded managed assembly.
type Assembly interface {
	Type(name string) (Type, error)
	CreateInstance(typeName string) (domain.Value, error)
	RunEntryPoint(args []domain.Value) error
}

// Type resolves and invokes members of one managed type.
type Type interface {
	Method(name string) (Method, error)
	MethodBySignature(signature string) (Method, error)
	Property(name string) (Property, error)
	Invoke(name string, flags domain.BindingFlags, instance domain.Value, args []domain.Value) (domain.Value, error)
}

// Method is a resolved method member. It is stateless beyond identifying
// the member and may be invoked repeatedly.
type Method interface {
	Signature() (string, error)
	Invoke(instance domain.Value, args []domain.Value) (domain.Value, error)
	AsValue() (domain.Value, error)
	Release()
}

// Property is a resolved property member.
type Property interface {
	Value(instance domain.Value, index []domain.Value) (domain.Value, error)
	Release()
}

// MemoryPatcher rewrites one byte of executable native code under a
// temporary writable remapping. Both protection transitions must succeed or
// the patch fails as a unit.
type MemoryPatcher interface {
	PatchReturn(addr uintptr) error
}
