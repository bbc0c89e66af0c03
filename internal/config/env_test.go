package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("DODGE_TEST_VALUE", "x")
	if got := GetEnv("DODGE_TEST_VALUE", "y"); got != "x" {
		t.Errorf("GetEnv = %q, want x", got)
	}
	if got := GetEnv("DODGE_TEST_MISSING", "y"); got != "y" {
		t.Errorf("GetEnv = %q, want fallback y", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		fallback bool
		want     bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"on", false, true},
		{"false", true, false},
		{"OFF", true, false},
		{"no", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		t.Setenv("DODGE_TEST_BOOL", tt.value)
		if got := GetEnvBool("DODGE_TEST_BOOL", tt.fallback); got != tt.want {
			t.Errorf("GetEnvBool(%q, %v) = %v, want %v", tt.value, tt.fallback, got, tt.want)
		}
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("DODGE_DOTENV_A=from-file\nDODGE_DOTENV_B=from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DODGE_DOTENV_B", "from-env")
	t.Cleanup(func() { os.Unsetenv("DODGE_DOTENV_A") })

	if err := LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("DODGE_DOTENV_A"); got != "from-file" {
		t.Errorf("A = %q, want from-file", got)
	}
	if got := os.Getenv("DODGE_DOTENV_B"); got != "from-env" {
		t.Errorf("B = %q, existing variables must win", got)
	}
}

func TestScoreFileOverride(t *testing.T) {
	t.Setenv(EnvScoreFile, "/tmp/custom.json")
	if got := ScoreFile(); got != "/tmp/custom.json" {
		t.Errorf("ScoreFile = %q", got)
	}

	t.Setenv(EnvScoreFile, "")
	if got := ScoreFile(); filepath.Base(got) != DefaultScoreFileName {
		t.Errorf("ScoreFile = %q, want default file name", got)
	}
}
