package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProject(t *testing.T, goMod, umbraYAML string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(goMod), 0o644); err != nil {
		t.Fatal(err)
	}
	if umbraYAML != "" {
		if err := os.WriteFile(filepath.Join(dir, "umbra.yaml"), []byte(umbraYAML), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestResolveDefaults(t *testing.T) {
	dir := writeProject(t, "module github.com/acme/widgets\n\ngo 1.24\n", "")

	cfg, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.ModulePath != "github.com/acme/widgets" {
		t.Errorf("unexpected module path %q", cfg.ModulePath)
	}
	if cfg.AppName != "widgets" {
		t.Errorf("expected app name from module path, got %q", cfg.AppName)
	}
	if cfg.RenderMode != "isolated" {
		t.Errorf("expected default render mode isolated, got %q", cfg.RenderMode)
	}
}

func TestResolveFromYAML(t *testing.T) {
	dir := writeProject(t, "module example.com/app\n",
		"app:\n  name: dashboard\nrender:\n  mode: shared\n")

	cfg, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.AppName != "dashboard" {
		t.Errorf("expected app name dashboard, got %q", cfg.AppName)
	}
	if cfg.RenderMode != "shared" {
		t.Errorf("expected render mode shared, got %q", cfg.RenderMode)
	}
}

func TestResolveRejectsInvalidMode(t *testing.T) {
	dir := writeProject(t, "module example.com/app\n", "render:\n  mode: floating\n")

	if _, err := Resolve(dir); err == nil {
		t.Error("expected error for invalid render mode")
	}
}

func TestResolveMissingGoMod(t *testing.T) {
	if _, err := Resolve(t.TempDir()); err == nil {
		t.Error("expected error without go.mod")
	}
}

func TestLoadOptionalAbsent(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg.App.Name != "" || cfg.Render.Mode != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoadOptionalMalformed(t *testing.T) {
	dir := writeProject(t, "module example.com/app\n", "app: [not a mapping\n")
	if _, err := LoadOptional(dir); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
