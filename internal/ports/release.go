package ports

import "clrhost-cli/internal/domain"

// Releaser frees the native resources behind a Value (text handles, object
// references). Values created for one call are handed back here on every
// exit path of that call.
type Releaser interface {
	Release(v domain.Value)
}
