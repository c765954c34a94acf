package domain

// BindingFlags mirror System.Reflection.BindingFlags. Only the subset this
// host composes is named; the numeric values are fixed by the runtime.
type BindingFlags uint32

const (
	BindingDefault          BindingFlags = 0
	BindingIgnoreCase       BindingFlags = 1
	BindingDeclaredOnly     BindingFlags = 2
	BindingInstance         BindingFlags = 4
	BindingStatic           BindingFlags = 8
	BindingPublic           BindingFlags = 16
	BindingNonPublic        BindingFlags = 32
	BindingFlattenHierarchy BindingFlags = 64
	BindingInvokeMethod     BindingFlags = 256
	BindingCreateInstance   BindingFlags = 512
	BindingGetField         BindingFlags = 1024
	BindingSetField         BindingFlags = 2048
	BindingGetProperty      BindingFlags = 4096
	BindingSetProperty      BindingFlags = 8192
)

// Scope selects static versus instance member resolution.
type Scope uint8

const (
	Static Scope = iota
	Instance
)

// MemberKind selects the member category being invoked.
type MemberKind uint8

const (
	MemberMethod MemberKind = iota
	MemberProperty
)

// FlagsFor composes the binding flags for an invocation. Kind, visibility
// and scope must all be present or the runtime resolves no member at all.
func FlagsFor(kind MemberKind, scope Scope) BindingFlags {
	flags := BindingPublic
	switch scope {
	case Static:
		flags |= BindingStatic
	case Instance:
		flags |= BindingInstance
	}
	switch kind {
	case MemberMethod:
		flags |= BindingInvokeMethod
	case MemberProperty:
		flags |= BindingGetProperty
	}
	return flags
}

// EnumerationFlags is the wide net used when scanning all declared members
// for signature-based lookup.
func EnumerationFlags() BindingFlags {
	return BindingPublic | BindingStatic | BindingInstance | BindingFlattenHierarchy
}
