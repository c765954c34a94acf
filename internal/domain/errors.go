package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotExecutable         = errors.New("buffer is not a valid executable image")
	ErrNotManaged            = errors.New("executable is not a managed assembly")
	ErrInvalidImage          = errors.New("missing or malformed NT header")
	ErrTypeNotFound          = errors.New("type not found")
	ErrMethodNotFound        = errors.New("method not found")
	ErrPropertyNotFound      = errors.New("property not found")
	ErrAssemblyNotFound      = errors.New("assembly not found")
	ErrAssemblyNotRecognized = errors.New("assembly not recognized")
	ErrModuleNotRecognized   = errors.New("module not recognized")
	ErrVariantUnsupported    = errors.New("variant type not supported")
	ErrIdentityExtraction    = errors.New("identity extraction failed")
	ErrRuntimeStart          = errors.New("runtime failed to start")
	ErrNoDomain              = errors.New("no application domain available")
	ErrRuntimeAlreadyStarted = errors.New("runtime already started, interceptor would have no effect")
	ErrNotPrepared           = errors.New("environment not prepared")
	ErrProfileNotFound       = errors.New("profile not found")
)

// CallError carries the failing native operation name and its raw HRESULT,
// the unit every CLR and COM boundary failure reduces to.
type CallError struct {
	Op string
	HR int32
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s failed with HRESULT 0x%08X", e.Op, uint32(e.HR))
}

func NewCallError(op string, hr int32) *CallError {
	return &CallError{Op: op, HR: hr}
}
