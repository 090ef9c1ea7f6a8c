// Package web composes the profile editor HTTP service.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/profile.space/internal/account"
	"github.com/louisbranch/profile.space/internal/platform/branding"
	"github.com/louisbranch/profile.space/internal/platform/i18n"
	"github.com/louisbranch/profile.space/internal/platform/timeouts"
	module "github.com/louisbranch/profile.space/internal/services/web/module"
	apimodule "github.com/louisbranch/profile.space/internal/services/web/modules/api"
	profilemodule "github.com/louisbranch/profile.space/internal/services/web/modules/profile"
	"github.com/louisbranch/profile.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/profile.space/internal/services/web/routepath"
)

// Config defines the inputs for the profile web server.
type Config struct {
	HTTPAddr string
	AppName  string
}

// Server hosts the profile editor HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler assembles the composed HTTP handler. The store backs both the
// rendered pages and the JSON API so their writes observe each other.
func NewHandler(config Config, store *account.Store) (http.Handler, error) {
	if store == nil {
		return nil, errors.New("account store is required")
	}
	appName := strings.TrimSpace(config.AppName)
	if appName == "" {
		appName = branding.AppName
	}

	mux := http.NewServeMux()
	mods := []module.Module{
		profilemodule.New(store, appName),
		apimodule.New(store),
	}
	for _, m := range mods {
		mount, err := m.Mount()
		if err != nil {
			return nil, fmt.Errorf("mount %s module: %w", m.ID(), err)
		}
		mux.Handle(mount.Prefix, mount.Handler)
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		for _, m := range mods {
			if reporter, ok := m.(module.HealthReporter); ok && !reporter.Healthy() {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})

	return httpx.Chain(mux, httpx.RequestID(), httpx.RecoverPanic(), localeRedirect()), nil
}

// localeRedirect sends unprefixed page requests to their negotiated locale.
// Unknown first segments are treated as unprefixed paths, so /fr/x redirects
// to /en/fr/x and 404s there instead of silently serving a wrong locale.
func localeRedirect() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if path == routepath.Health ||
				strings.HasPrefix(path, "/api/") ||
				strings.HasPrefix(path, routepath.StaticRoot) {
				next.ServeHTTP(w, r)
				return
			}
			segment := path
			segment = strings.TrimPrefix(segment, "/")
			if idx := strings.IndexByte(segment, '/'); idx >= 0 {
				segment = segment[:idx]
			}
			if _, ok := i18n.Parse(segment); ok {
				next.ServeHTTP(w, r)
				return
			}
			locale := i18n.Negotiate(r.Header.Get("Accept-Language"))
			target := "/" + string(locale) + path
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, target, http.StatusFound)
		})
	}
}

// New builds a configured web server.
func New(config Config, store *account.Store) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(config, store)
	if err != nil {
		return nil, err
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("profile web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
