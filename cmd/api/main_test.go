package main

import "testing"

func TestRunInvalidConfig(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("CACHE_MODE", "disk")
	if code := run(); code != 2 {
		t.Fatalf("exit code: got %d want 2", code)
	}
}

func TestRunLoadFailure(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("CACHE_MODE", "memory")
	t.Setenv("PORT", "0")
	t.Setenv("DATA_SOURCE", t.TempDir())
	t.Setenv("LOAD_TIMEOUT", "5s")
	if code := run(); code != 1 {
		t.Fatalf("exit code: got %d want 1", code)
	}
}
