package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

// The subtests share viper's package-level state, so they run in order: the
// not-found case comes first, before any file has been loaded.
func TestReadConfig(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		chdir(t, t.TempDir())

		if err := readConfig(); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if got := viper.GetInt("search.top-n"); got != defaultTopN {
			t.Fatalf("expected default top-n %d, got %d", defaultTopN, got)
		}
	})

	t.Run("unparsable file is an error", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "hr-agent.yaml"), []byte("search: ["), 0o644); err != nil {
			t.Fatalf("writing fixture: %s", err)
		}
		chdir(t, dir)

		if err := readConfig(); err == nil {
			t.Fatal("expected a parse error")
		}
	})

	t.Run("file in current directory is found", func(t *testing.T) {
		dir := t.TempDir()
		doc := "search:\n  top-n: 9\nemail:\n  default-tone: concise\n"
		if err := os.WriteFile(filepath.Join(dir, "hr-agent.yaml"), []byte(doc), 0o644); err != nil {
			t.Fatalf("writing fixture: %s", err)
		}
		chdir(t, dir)

		if err := readConfig(); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if got := viper.GetInt("search.top-n"); got != 9 {
			t.Fatalf("expected top-n 9 from the config file, got %d", got)
		}

		config, err := getConfig()
		if err != nil {
			t.Fatalf("unmarshaling config: %s", err)
		}
		if config.Search == nil || config.Search.TopN != 9 {
			t.Fatalf("expected Search.TopN 9, got %+v", config.Search)
		}
		if config.Email == nil || config.Email.DefaultTone != "concise" {
			t.Fatalf("expected concise default tone, got %+v", config.Email)
		}
	})
}

// chdir is t.Chdir for toolchains older than Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %s", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("changing directory: %s", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restoring working directory: %s", err)
		}
	})
}
