// Package profile serves the localized profile editor pages.
package profile

import (
	"context"
	"net/http"

	module "github.com/louisbranch/profile.space/internal/services/web/module"
	"github.com/louisbranch/profile.space/internal/services/web/platform/notify"
	"github.com/louisbranch/profile.space/internal/services/web/platform/pagecache"
	"github.com/louisbranch/profile.space/internal/services/web/platform/sessions"

	profiledomain "github.com/louisbranch/profile.space/internal/profile"
)

// ProfileStore is the narrow account backend contract this module needs.
type ProfileStore interface {
	GetUser(ctx context.Context) (profiledomain.UserProfile, error)
	SaveProfile(ctx context.Context, fields profiledomain.FormFields) error
}

// Module provides the localized profile editor routes.
type Module struct {
	svc service
}

// Option configures the module.
type Option func(*Module)

// WithSessionRegistry overrides the edit-session registry.
func WithSessionRegistry(registry *sessions.Registry) Option {
	return func(m *Module) { m.svc.registry = registry }
}

// WithPageCache overrides the rendered-page cache.
func WithPageCache(cache *pagecache.Cache) Option {
	return func(m *Module) { m.svc.cache = cache }
}

// WithToasts overrides the toast store.
func WithToasts(toasts *notify.Store) Option {
	return func(m *Module) { m.svc.toasts = toasts }
}

// New returns a profile module backed by the given store.
func New(store ProfileStore, appName string, opts ...Option) Module {
	m := Module{svc: service{
		store:    store,
		cache:    pagecache.New(),
		registry: sessions.NewRegistry(),
		toasts:   notify.NewStore(),
		appName:  appName,
	}}
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "profile" }

// Healthy reports whether the module has an operational store.
func (m Module) Healthy() bool { return m.svc.store != nil }

// Mount wires localized profile route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.svc)
	registerRoutes(mux, h)
	return module.Mount{Prefix: "/", Handler: mux}, nil
}
