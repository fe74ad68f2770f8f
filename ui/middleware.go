package ui

import (
	"context"
	"net/http"

	"assurscore/ports"
)

type contextKey string

const identityKey contextKey = "identity"

// withIdentity resolves the caller identity once per request and stores it
// in the request context. Anonymous requests carry an empty identity.
func (a *App) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := a.identity.Identify(r)
		ctx := context.WithValue(r.Context(), identityKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// callerIdentity returns the identity stored by withIdentity.
func callerIdentity(r *http.Request) ports.Identity {
	if id, ok := r.Context().Value(identityKey).(ports.Identity); ok {
		return id
	}
	return ports.Identity{}
}
