package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	opts := GetDefaultOptions()

	if opts.BaseURL != defaultBaseURL {
		t.Errorf("BaseURL not set, got: %s", opts.BaseURL)
	}
	if opts.PageSize != defaultPageSize {
		t.Errorf("PageSize not set, got: %d", opts.PageSize)
	}
	if opts.Version != defaultVersion {
		t.Errorf("Version not set")
	}
}

func TestCheckDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "bookly-data")

	got, err := checkDataDir(dir)
	if err != nil {
		t.Fatalf("Error checking data dir: %s", err)
	}
	if got != dir {
		t.Errorf("Data dir mismatch, expected: %s, but got: %s", dir, got)
	}

	// Second call should see the created directory and return it unchanged.
	got, err = checkDataDir(dir)
	if err != nil {
		t.Fatalf("Error checking existing data dir: %s", err)
	}
	if got != dir {
		t.Errorf("Data dir mismatch, expected: %s, but got: %s", dir, got)
	}
}

func TestParseFile(t *testing.T) {
	GetDefaultOptions()

	opts, err := ParseFile("config_test.toml")
	if err != nil {
		t.Fatalf("Error loading config: %s", err)
	}
	t.Logf(`Config
		BaseURL: %s
		LogLevel: %s
		LogFile: %s
		HTTPTimeout: %d
		`, opts.BaseURL, opts.LogLevel, opts.LogFile, opts.HTTPTimeout)
	if opts.BaseURL != "https://bookly.example.com/api/" {
		t.Errorf("BaseURL not set")
	}
	if opts.LogLevel != "debug" {
		t.Errorf("LogLevel not set")
	}
	if opts.LogFile != "test.log" {
		t.Errorf("LogFile not set")
	}
	if opts.HTTPTimeout != 5 {
		t.Errorf("HTTPTimeout not set")
	}
}
