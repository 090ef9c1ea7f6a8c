// Package web wires configuration and startup for the web command.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/profile.space/internal/account"
	"github.com/louisbranch/profile.space/internal/platform/branding"
	"github.com/louisbranch/profile.space/internal/platform/config"
	"github.com/louisbranch/profile.space/internal/platform/otel"
	"github.com/louisbranch/profile.space/internal/services/web"
)

const defaultHTTPAddr = "localhost:8087"

// Config holds the web command configuration.
type Config struct {
	HTTPAddr     string        `env:"PROFILE_SPACE_WEB_HTTP_ADDR"`
	AppName      string        `env:"PROFILE_SPACE_WEB_APP_NAME"`
	BackendDelay time.Duration `env:"PROFILE_SPACE_WEB_BACKEND_DELAY"`
}

// ParseConfig parses flags into a Config. Environment variables from
// environ fill in values first, then flags override them.
func ParseConfig(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	cfg := Config{
		HTTPAddr:     defaultHTTPAddr,
		AppName:      branding.AppName,
		BackendDelay: account.DefaultDelay,
	}
	if err := config.ParseEnvFrom(&cfg, environ); err != nil {
		return Config{}, err
	}
	if cfg.HTTPAddr = strings.TrimSpace(cfg.HTTPAddr); cfg.HTTPAddr == "" {
		cfg.HTTPAddr = defaultHTTPAddr
	}
	if cfg.AppName = strings.TrimSpace(cfg.AppName); cfg.AppName == "" {
		cfg.AppName = branding.AppName
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.AppName, "app-name", cfg.AppName, "Application display name")
	fs.DurationVar(&cfg.BackendDelay, "backend-delay", cfg.BackendDelay, "Simulated account backend latency")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the profile web server.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, "web")
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	server, err := web.New(web.Config{
		HTTPAddr: cfg.HTTPAddr,
		AppName:  cfg.AppName,
	}, account.NewStore(cfg.BackendDelay))
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
