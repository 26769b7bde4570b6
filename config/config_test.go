package config

import "testing"

func TestDefaults(t *testing.T) {
	c := DefaultConfig()
	if c.Source != "embedded" {
		t.Errorf("Source = %q, want embedded", c.Source)
	}
	if c.HTTPPort != "8080" {
		t.Errorf("HTTPPort = %q, want 8080", c.HTTPPort)
	}
	if c.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", c.LogLevel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DOCDECK_SOURCE", "dir")
	t.Setenv("DOCDECK_DOCS_DIR", "/srv/guides")
	t.Setenv("DOCDECK_MAX_RETRIES", "5")
	t.Setenv("DOCDECK_RATE_PER_SECOND", "2.5")
	t.Setenv("PORT", "9000")

	c := DefaultConfig()
	c.LoadFromEnv()

	if c.Source != "dir" {
		t.Errorf("Source = %q, want dir", c.Source)
	}
	if c.DocsDir != "/srv/guides" {
		t.Errorf("DocsDir = %q, want /srv/guides", c.DocsDir)
	}
	if c.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d, want 5", c.MaxRetries)
	}
	if c.RatePerSecond != 2.5 {
		t.Errorf("RatePerSecond = %v, want 2.5", c.RatePerSecond)
	}
	if c.HTTPPort != "9000" {
		t.Errorf("HTTPPort = %q, want 9000", c.HTTPPort)
	}
}

func TestLoadFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("DOCDECK_MAX_RETRIES", "many")
	t.Setenv("DOCDECK_RATE_PER_SECOND", "fast")

	c := DefaultConfig()
	c.LoadFromEnv()

	if c.MaxRetries != 2 {
		t.Errorf("MaxRetries = %d, want default 2 for unparseable value", c.MaxRetries)
	}
	if c.RatePerSecond != 10.0 {
		t.Errorf("RatePerSecond = %v, want default 10 for unparseable value", c.RatePerSecond)
	}
}
