package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/vuecrm/internal/appearance"
)

func setupConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("VUECRM_CONFIG", "")
	body := strings.ReplaceAll(`
prefs_path = "$DIR/prefs.toml"
log_file = "$DIR/vuecrm.log"
contacts_page_size = 2
`, "$DIR", dir)
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := &cli{
		isTTY:  func() bool { return false },
		source: appearance.NewStatic(appearance.Dark),
	}
	root := newRootCmd(c)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootRequiresTerminal(t *testing.T) {
	cfg := setupConfig(t)
	_, err := execute(t, "--config", cfg)
	if !errors.Is(err, errNoTerminal) {
		t.Fatalf("err = %v, want errNoTerminal", err)
	}
}

func TestContactsList(t *testing.T) {
	cfg := setupConfig(t)

	out, err := execute(t, "--config", cfg, "contacts", "list", "--page", "2")
	if err != nil {
		t.Fatalf("contacts list: %v", err)
	}
	if !strings.Contains(out, "page 2/3") {
		t.Fatalf("output missing page footer:\n%s", out)
	}
	if !strings.Contains(out, "Alex Chen") || strings.Contains(out, "Jordan Lee") {
		t.Fatalf("page 2 should hold the third and fourth contacts:\n%s", out)
	}
}

func TestContactsListFilters(t *testing.T) {
	cfg := setupConfig(t)

	out, err := execute(t, "--config", cfg, "contacts", "list", "--status", "customer", "--query", "studio")
	if err != nil {
		t.Fatalf("contacts list: %v", err)
	}
	if !strings.Contains(out, "Jordan Lee") || strings.Contains(out, "Morgan Blake") {
		t.Fatalf("unexpected rows:\n%s", out)
	}
	if !strings.Contains(out, "page 1/1") {
		t.Fatalf("output missing page footer:\n%s", out)
	}

	out, err = execute(t, "--config", cfg, "contacts", "list", "--query", "nobody")
	if err != nil {
		t.Fatalf("contacts list: %v", err)
	}
	if !strings.Contains(out, "No contacts match") {
		t.Fatalf("output = %q, want no-match message", out)
	}
}

func TestContactsListRejectsUnknownStatus(t *testing.T) {
	cfg := setupConfig(t)
	if _, err := execute(t, "--config", cfg, "contacts", "list", "--status", "prospect"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestCreatorsList(t *testing.T) {
	cfg := setupConfig(t)

	out, err := execute(t, "--config", cfg, "creators", "list", "--tier", "vip")
	if err != nil {
		t.Fatalf("creators list: %v", err)
	}
	for _, want := range []string{"@jademonroe", "125.0K", "VIP", "page 1/1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestThemeCommands(t *testing.T) {
	cfg := setupConfig(t)

	out, err := execute(t, "--config", cfg, "theme", "get")
	if err != nil {
		t.Fatalf("theme get: %v", err)
	}
	if strings.TrimSpace(out) != "dark (os)" {
		t.Fatalf("theme get = %q, want dark (os)", out)
	}

	out, err = execute(t, "--config", cfg, "theme", "set", "light")
	if err != nil {
		t.Fatalf("theme set: %v", err)
	}
	if strings.TrimSpace(out) != "light (stored)" {
		t.Fatalf("theme set = %q, want light (stored)", out)
	}

	out, err = execute(t, "--config", cfg, "theme", "get")
	if err != nil {
		t.Fatalf("theme get: %v", err)
	}
	if strings.TrimSpace(out) != "light (stored)" {
		t.Fatalf("theme get after set = %q, want light (stored)", out)
	}

	out, err = execute(t, "--config", cfg, "theme", "clear")
	if err != nil {
		t.Fatalf("theme clear: %v", err)
	}
	if strings.TrimSpace(out) != "dark (os)" {
		t.Fatalf("theme clear = %q, want dark (os)", out)
	}
}

func TestThemeSetRejectsUnknownMode(t *testing.T) {
	cfg := setupConfig(t)
	if _, err := execute(t, "--config", cfg, "theme", "set", "sepia"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestPrefsFlagOverridesConfig(t *testing.T) {
	cfg := setupConfig(t)
	prefsPath := filepath.Join(t.TempDir(), "other.toml")

	if _, err := execute(t, "--config", cfg, "--prefs", prefsPath, "theme", "set", "light"); err != nil {
		t.Fatalf("theme set: %v", err)
	}
	if _, err := os.Stat(prefsPath); err != nil {
		t.Fatalf("prefs not written to override path: %v", err)
	}
}
