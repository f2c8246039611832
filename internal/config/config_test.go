package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/tuipractice/internal/model"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("expected missing config to be ignored, got %v", err)
	}
	if cfg.Practice.ExitOnComplete != nil || cfg.Display.WidthPct != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[practice]
exit-on-complete = false

[display]
width-pct = 0.5

[theme]
current-bg = "#112233"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Practice.ExitOnComplete == nil || *cfg.Practice.ExitOnComplete {
		t.Fatalf("expected exit-on-complete=false, got %v", cfg.Practice.ExitOnComplete)
	}
	if cfg.Practice.KeepTrailingNewline != nil {
		t.Fatalf("expected keep-trailing-newline to stay unset")
	}
	if cfg.Display.WidthPct == nil || *cfg.Display.WidthPct != 0.5 {
		t.Fatalf("expected width-pct=0.5, got %v", cfg.Display.WidthPct)
	}

	theme := cfg.Theme.ApplyTheme(model.DefaultTheme())
	if theme.CurrentBg != "#112233" {
		t.Fatalf("expected current-bg override, got %q", theme.CurrentBg)
	}
	if theme.Typed != model.DefaultTheme().Typed {
		t.Fatalf("expected typed color to keep its default, got %q", theme.Typed)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[display]\nwidth = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "display.width") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestDefaultConfigPathUsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	want := filepath.Join("/tmp/xdg", "tuipractice", "config.toml")
	if got := DefaultConfigPath(); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
