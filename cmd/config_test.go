package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// unsetEnv unsets the variables for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfig(t *testing.T) {
	unsetEnv(t, "PNL_METHOD", "PNL_PRECISION", "PNL_FORMAT", "PNL_CURRENCY", "PNL_VERBOSE")

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "PNL_METHOD=lifo\nPNL_PRECISION=4\nPNL_FORMAT=md\nPNL_VERBOSE=true\n"
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PNL_FORMAT", "jsonl")

	got := LoadConfig(envFile)
	want := Config{Method: "lifo", Precision: 4, Format: "jsonl", Verbose: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	unsetEnv(t, "PNL_METHOD", "PNL_PRECISION", "PNL_FORMAT", "PNL_CURRENCY", "PNL_VERBOSE")
	t.Setenv("PNL_PRECISION", "not a number")

	got := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	if diff := cmp.Diff(DefaultConfig(), got); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
}
