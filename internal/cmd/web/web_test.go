package web

import (
	"flag"
	"testing"
	"time"

	"github.com/louisbranch/profile.space/internal/account"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8087" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.AppName != "profile.space" {
		t.Fatalf("AppName = %q", cfg.AppName)
	}
	if cfg.BackendDelay != account.DefaultDelay {
		t.Fatalf("BackendDelay = %v", cfg.BackendDelay)
	}
}

func TestParseConfigEnvFallback(t *testing.T) {
	t.Parallel()

	environ := map[string]string{
		"PROFILE_SPACE_WEB_HTTP_ADDR":     "127.0.0.1:9100",
		"PROFILE_SPACE_WEB_APP_NAME":      "  staging profile  ",
		"PROFILE_SPACE_WEB_BACKEND_DELAY": "25ms",
	}
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil, environ)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9100" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.AppName != "staging profile" {
		t.Fatalf("AppName = %q", cfg.AppName)
	}
	if cfg.BackendDelay != 25*time.Millisecond {
		t.Fatalf("BackendDelay = %v", cfg.BackendDelay)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Parallel()

	environ := map[string]string{
		"PROFILE_SPACE_WEB_HTTP_ADDR": "127.0.0.1:9999",
	}
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9002", "-backend-delay", "10ms"}, environ)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.BackendDelay != 10*time.Millisecond {
		t.Fatalf("BackendDelay = %v", cfg.BackendDelay)
	}
}

func TestParseConfigBadEnv(t *testing.T) {
	t.Parallel()

	environ := map[string]string{
		"PROFILE_SPACE_WEB_BACKEND_DELAY": "not-a-duration",
	}
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil, environ); err == nil {
		t.Fatal("expected error for malformed duration")
	}
}
