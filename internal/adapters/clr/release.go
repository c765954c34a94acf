//go:build windows

package clr

import "clrhost-cli/internal/domain"

// ObjectReleaser drops the COM reference carried by object-kind values.
// Values of every other kind have no native side and pass through.
type ObjectReleaser struct{}

func NewObjectReleaser() *ObjectReleaser { return &ObjectReleaser{} }

func (ObjectReleaser) Release(v domain.Value) {
	if v.Kind() != domain.KindObject {
		return
	}
	if obj, err := v.Object(); err == nil {
		release(obj)
	}
}
