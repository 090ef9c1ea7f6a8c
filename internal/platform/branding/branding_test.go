package branding

import "testing"

func TestAppName(t *testing.T) {
	if AppName == "" {
		t.Fatal("expected AppName to be non-empty")
	}
	if AppName != "profile.space" {
		t.Fatalf("AppName = %q, want %q", AppName, "profile.space")
	}
}
