package domain

import "fmt"

// RuntimeVersion names an installable CLR generation. The version strings
// are the runtime's own and are not negotiable.
type RuntimeVersion uint8

const (
	RuntimeV4 RuntimeVersion = iota
	RuntimeV2
	RuntimeV3
)

func (v RuntimeVersion) String() string {
	switch v {
	case RuntimeV2:
		return "v2.0.50727"
	case RuntimeV3:
		return "v3.0"
	case RuntimeV4:
		return "v4.0.30319"
	}
	return "UNKNOWN"
}

// ParseRuntimeVersion accepts both the short spelling used on the command
// line (v2, v3, v4) and the full runtime version string.
func ParseRuntimeVersion(s string) (RuntimeVersion, error) {
	switch s {
	case "", "v4", "v4.0.30319":
		return RuntimeV4, nil
	case "v2", "v2.0.50727":
		return RuntimeV2, nil
	case "v3", "v3.0":
		return RuntimeV3, nil
	}
	return RuntimeV4, fmt.Errorf("unknown runtime version %q", s)
}
