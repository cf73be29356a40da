package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ContactsPageSize != 8 {
		t.Fatalf("ContactsPageSize = %d, want 8", cfg.ContactsPageSize)
	}
	if cfg.CreatorsPageSize != 9 {
		t.Fatalf("CreatorsPageSize = %d, want 9", cfg.CreatorsPageSize)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.SeedFile != "" {
		t.Fatalf("SeedFile = %q, want empty", cfg.SeedFile)
	}

	wantPrefs := filepath.Join(home, ".config", "vuecrm", "prefs.toml")
	if cfg.PrefsPath != wantPrefs {
		t.Fatalf("PrefsPath = %q, want %q", cfg.PrefsPath, wantPrefs)
	}
	wantLog := filepath.Join(home, ".local", "state", "vuecrm", "vuecrm.log")
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
prefs_path = "  ~/p/prefs.toml  "
seed_file = "~/seed.yaml"
log_level = " DEBUG "
contacts_page_size = 3
creators_page_size = 4
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PrefsPath != filepath.Join(home, "p", "prefs.toml") {
		t.Fatalf("PrefsPath = %q, want it under HOME %q", cfg.PrefsPath, home)
	}
	if cfg.SeedFile != filepath.Join(home, "seed.yaml") {
		t.Fatalf("SeedFile = %q, want %q", cfg.SeedFile, filepath.Join(home, "seed.yaml"))
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.ContactsPageSize != 3 || cfg.CreatorsPageSize != 4 {
		t.Fatalf("page sizes = %d/%d, want 3/4", cfg.ContactsPageSize, cfg.CreatorsPageSize)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
prefs_path = "   "
log_level = ""
contacts_page_size = 0
creators_page_size = -2
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	def := Default()
	if cfg != def {
		t.Fatalf("Load = %+v, want defaults %+v", cfg, def)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`log_level = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestResolvePath_Precedence(t *testing.T) {
	t.Setenv(EnvPath, "")
	if got := ResolvePath(""); got != defaultConfigPath {
		t.Fatalf("ResolvePath(\"\") = %q, want %q", got, defaultConfigPath)
	}

	t.Setenv(EnvPath, "/env/config.toml")
	if got := ResolvePath(""); got != "/env/config.toml" {
		t.Fatalf("ResolvePath with env = %q, want %q", got, "/env/config.toml")
	}
	if got := ResolvePath("/flag.toml"); got != "/flag.toml" {
		t.Fatalf("ResolvePath with flag = %q, want %q", got, "/flag.toml")
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
