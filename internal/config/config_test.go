package config

import "testing"

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("HTTP_BODY_LIMIT_MB", "4")
	if got := getEnvAsInt("HTTP_BODY_LIMIT_MB", 1); got != 4 {
		t.Errorf("got %d, want 4", got)
	}

	t.Setenv("HTTP_BODY_LIMIT_MB", "not-a-number")
	if got := getEnvAsInt("HTTP_BODY_LIMIT_MB", 1); got != 1 {
		t.Errorf("unparsable value must fall back, got %d", got)
	}

	if got := getEnvAsInt("HTTP_BODY_LIMIT_MB_UNSET", 2); got != 2 {
		t.Errorf("missing value must fall back, got %d", got)
	}
}

func TestLoadReadsBodyLimit(t *testing.T) {
	t.Setenv("HTTP_BODY_LIMIT_MB", "8")
	cfg := Load()
	if cfg.App.BodyLimitMB != 8 {
		t.Errorf("BodyLimitMB = %d, want 8", cfg.App.BodyLimitMB)
	}
}
