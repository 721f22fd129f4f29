package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("AUTH_USERNAME", "seven")
	t.Setenv("AUTH_PASSWORD", "7777")
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("GITHUB_REPO", "someone/blog_test")
	t.Setenv("PUBLISH_PATH_SCHEME", "dated")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.GitHub.APIURL != "https://api.github.com" {
		t.Fatalf("unexpected api url: %q", cfg.GitHub.APIURL)
	}
	if cfg.GitHub.Timeout != 10*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.GitHub.Timeout)
	}
	if cfg.Publish.HookTimeout != 5*time.Second {
		t.Fatalf("unexpected hook timeout: %v", cfg.Publish.HookTimeout)
	}
	if cfg.Publish.TZOffset != 8*time.Hour {
		t.Fatalf("unexpected tz offset: %v", cfg.Publish.TZOffset)
	}
}

func TestLoadConfig_RejectsUnknownScheme(t *testing.T) {
	t.Setenv("PUBLISH_PATH_SCHEME", "weekly")

	_, err := LoadConfig()
	if !errors.Is(err, ErrInvalidScheme) {
		t.Fatalf("expected ErrInvalidScheme, got %v", err)
	}
}

func TestValidate_MissingCredentials(t *testing.T) {
	cfg := &Config{}
	cfg.GitHub.Token = "t"
	cfg.GitHub.Repo = "o/r"
	if err := cfg.Validate(); !errors.Is(err, ErrMissingAuth) {
		t.Fatalf("expected ErrMissingAuth, got %v", err)
	}

	cfg.Auth = AuthConfig{Username: "u", Password: "p"}
	cfg.GitHub.Repo = "just-a-name"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidRepo) {
		t.Fatalf("expected ErrInvalidRepo, got %v", err)
	}

	cfg.GitHub.Token = ""
	if err := cfg.Validate(); !errors.Is(err, ErrMissingGitHub) {
		t.Fatalf("expected ErrMissingGitHub, got %v", err)
	}
}
