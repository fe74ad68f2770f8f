// Package identity adapts the external auth collaborator. The core never
// authenticates; it consumes whatever identity the edge attests to.
package identity

import (
	"net/http"
	"strings"

	"assurscore/domain/core"
	"assurscore/ports"
)

// HeaderProvider reads the identity from trusted headers set by the auth
// proxy in front of this service. Requests without the headers are anonymous.
type HeaderProvider struct {
	UserIDHeader        string
	EmailVerifiedHeader string
}

// NewHeaderProvider creates a provider with the default header names.
func NewHeaderProvider() *HeaderProvider {
	return &HeaderProvider{
		UserIDHeader:        "X-User-Id",
		EmailVerifiedHeader: "X-Email-Verified",
	}
}

var _ ports.IdentityProvider = (*HeaderProvider)(nil)

// Identify resolves the caller identity from request headers.
func (p *HeaderProvider) Identify(r *http.Request) ports.Identity {
	userID := strings.TrimSpace(r.Header.Get(p.UserIDHeader))
	if userID == "" {
		return ports.Identity{}
	}
	return ports.Identity{
		UserID:        core.UserID(userID),
		EmailVerified: strings.EqualFold(r.Header.Get(p.EmailVerifiedHeader), "true"),
	}
}
