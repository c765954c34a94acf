//go:build windows

package clr

import "golang.org/x/sys/windows"

// Class and interface identifiers for the hosting surfaces. All of these
// are fixed by mscoree and mscorlib; none are negotiable.
var (
	clsidCLRMetaHost    = windows.GUID{Data1: 0x9280188d, Data2: 0x0e8e, Data3: 0x4867, Data4: [8]byte{0xb3, 0x0c, 0x7f, 0xa8, 0x38, 0x84, 0xe8, 0xde}}
	clsidCLRRuntimeHost = windows.GUID{Data1: 0x90F1A06E, Data2: 0x7712, Data3: 0x4762, Data4: [8]byte{0x86, 0xb5, 0x7a, 0x5e, 0xba, 0x6b, 0xdb, 0x02}}
	clsidCorRuntimeHost = windows.GUID{Data1: 0xCB2F6723, Data2: 0xAB3A, Data3: 0x11d2, Data4: [8]byte{0x9c, 0x40, 0x00, 0xc0, 0x4f, 0xa3, 0x0a, 0x3e}}

	iidIUnknown                    = windows.GUID{Data1: 0x00000000, Data2: 0x0000, Data3: 0x0000, Data4: [8]byte{0xc0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}}
	iidICLRMetaHost                = windows.GUID{Data1: 0xD332DB9E, Data2: 0xB9B3, Data3: 0x4125, Data4: [8]byte{0x82, 0x07, 0xa1, 0x48, 0x84, 0xf5, 0x32, 0x16}}
	iidICLRRuntimeInfo             = windows.GUID{Data1: 0xBD39D1D2, Data2: 0xBA2F, Data3: 0x486a, Data4: [8]byte{0x89, 0xb0, 0xb4, 0xb0, 0xcb, 0x46, 0x68, 0x91}}
	iidICLRRuntimeHost             = windows.GUID{Data1: 0x90F1A06C, Data2: 0x7712, Data3: 0x4762, Data4: [8]byte{0x86, 0xb5, 0x7a, 0x5e, 0xba, 0x6b, 0xdb, 0x02}}
	iidICorRuntimeHost             = windows.GUID{Data1: 0xCB2F6722, Data2: 0xAB3A, Data3: 0x11d2, Data4: [8]byte{0x9c, 0x40, 0x00, 0xc0, 0x4f, 0xa3, 0x0a, 0x3e}}
	iidICLRAssemblyIdentityManager = windows.GUID{Data1: 0x15f0a9da, Data2: 0x3ff6, Data3: 0x4393, Data4: [8]byte{0x9d, 0xa9, 0xfd, 0xfd, 0x28, 0x4e, 0x69, 0x72}}
	iidIHostControl                = windows.GUID{Data1: 0x02CA073C, Data2: 0x7079, Data3: 0x4860, Data4: [8]byte{0x88, 0x0a, 0xc2, 0xf7, 0xa4, 0x49, 0xc9, 0x91}}
	iidIHostAssemblyManager        = windows.GUID{Data1: 0x613dabd7, Data2: 0x62b2, Data3: 0x493e, Data4: [8]byte{0x9e, 0x65, 0xc1, 0xe3, 0x2a, 0x1e, 0x0c, 0x5e}}
	iidIHostAssemblyStore          = windows.GUID{Data1: 0x7b102a88, Data2: 0x3f7f, Data3: 0x42d4, Data4: [8]byte{0x85, 0x0f, 0xbc, 0x9d, 0x1c, 0xcd, 0xfa, 0xdb}}
	iidAppDomain                   = windows.GUID{Data1: 0x05F696DC, Data2: 0x2B29, Data3: 0x3663, Data4: [8]byte{0xad, 0x8b, 0xc4, 0x38, 0x9c, 0xf2, 0xa7, 0x13}}
)

func guidEqual(a, b *windows.GUID) bool {
	return a != nil && b != nil && *a == *b
}
