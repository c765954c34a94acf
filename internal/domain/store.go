package domain

import "fmt"

// BindRequest is the data the runtime supplies when it asks an external
// store to satisfy an assembly resolution. It is only valid for the
// duration of one callback.
type BindRequest struct {
	AppDomainID        uint32
	ReferencedIdentity string
	PostPolicyIdentity string
	PolicyLevel        uint32
}

// ProvidedAssembly is the store's answer to a matching bind request. The
// image bytes are the original buffer, never a copy; the id only has to be
// non-zero and unique within the session.
type ProvidedAssembly struct {
	Image      []byte
	AssemblyID uint64
	Context    uint64
}

// storeAssemblyID is arbitrary but must not be zero.
const storeAssemblyID = 800

// AssemblyStore decides bind requests against the single in-memory image it
// was constructed with. It is immutable after construction, which makes the
// runtime's reentrant resolution callbacks trivially safe.
type AssemblyStore struct {
	identity string
	image    []byte
}

func NewAssemblyStore(identity string, image []byte) *AssemblyStore {
	return &AssemblyStore{identity: identity, image: image}
}

func (s *AssemblyStore) Identity() string { return s.identity }

// Provide answers one resolution attempt. The comparison is byte-for-byte:
// policy has already run on the runtime side, so anything but an exact
// post-policy match is somebody else's assembly.
func (s *AssemblyStore) Provide(req BindRequest) (ProvidedAssembly, error) {
	if req.PostPolicyIdentity != s.identity {
		return ProvidedAssembly{}, fmt.Errorf("%w: %q", ErrAssemblyNotRecognized, req.PostPolicyIdentity)
	}
	return ProvidedAssembly{Image: s.image, AssemblyID: storeAssemblyID, Context: 0}, nil
}

// ProvideModule always declines: multi-module assemblies are not served
// from this store.
func (s *AssemblyStore) ProvideModule(assemblyIdentity, moduleName string) error {
	return fmt.Errorf("%w: %s!%s", ErrModuleNotRecognized, assemblyIdentity, moduleName)
}
