package ports

import (
	"net/http"

	"assurscore/domain/core"
)

// Identity is the opaque caller identity supplied by the external auth
// collaborator. An empty UserID means an anonymous caller.
type Identity struct {
	UserID        core.UserID
	EmailVerified bool
}

// IsAnonymous reports whether the request carried no authenticated user.
func (i Identity) IsAnonymous() bool {
	return i.UserID.IsEmpty()
}

// IdentityProvider resolves the caller identity for a request. The core
// never authenticates by itself; whatever the provider says is taken as is.
type IdentityProvider interface {
	Identify(r *http.Request) Identity
}
