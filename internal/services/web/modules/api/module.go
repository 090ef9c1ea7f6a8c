// Package api exposes the JSON profile endpoints.
package api

import (
	"context"
	"net/http"

	module "github.com/louisbranch/profile.space/internal/services/web/module"

	profiledomain "github.com/louisbranch/profile.space/internal/profile"
)

// UserStore is the narrow account backend contract the API needs.
type UserStore interface {
	GetUser(ctx context.Context) (profiledomain.UserProfile, error)
	UpdateUser(ctx context.Context, id string, fields profiledomain.FormFields) (profiledomain.UserProfile, error)
}

// Module provides the JSON user API routes.
type Module struct {
	store UserStore
}

// New returns an API module backed by the given store.
func New(store UserStore) Module {
	return Module{store: store}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "api" }

// Healthy reports whether the module has an operational store.
func (m Module) Healthy() bool { return m.store != nil }

// Mount wires the JSON user routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.store)
	registerRoutes(mux, h)
	return module.Mount{Prefix: "/api/", Handler: mux}, nil
}
