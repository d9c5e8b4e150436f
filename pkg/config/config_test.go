package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/dragbox/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestDecodeOverridesDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
[widget]
drag_opacity = 0.3
legacy_touch_exclusion = true

[layout]
gap = 0

[board]
tiles = ["one", "two"]
`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if cfg.Widget.DragOpacity != 0.3 || !cfg.Widget.LegacyTouchExclusion {
		t.Errorf("Widget = %+v", cfg.Widget)
	}
	if cfg.Layout.Gap != 0 || !cfg.Layout.Wrap {
		t.Errorf("Layout = %+v, want gap 0 and the default wrap", cfg.Layout)
	}
	if len(cfg.Board.Tiles) != 2 || cfg.Board.TileWidth != Default().Board.TileWidth {
		t.Errorf("Board = %+v", cfg.Board)
	}
	if cfg.Theme != Default().Theme {
		t.Errorf("Theme = %+v, want defaults", cfg.Theme)
	}

	opts := cfg.WidgetOptions(nil)
	if opts.DragOpacity != 0.3 || !opts.LegacyTouchExclusion || opts.Gap != 0 || !opts.Wrap {
		t.Errorf("WidgetOptions() = %+v", opts)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"syntax", `[widget`},
		{"unknown key", "[widget]\nspeed = 3"},
		{"opacity zero", "[widget]\ndrag_opacity = 0.0"},
		{"opacity above one", "[widget]\ndrag_opacity = 1.5"},
		{"negative gap", "[layout]\ngap = -1"},
		{"bad color", "[theme]\nborder = \"teal\""},
		{"no tiles", "[board]\ntiles = []"},
		{"blank tile", "[board]\ntiles = [\"a\", \" \"]"},
		{"narrow tiles", "[board]\ntile_width = 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.toml))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Decode() error = %v, want %v", err, errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[layout]\ngap = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Layout.Gap != 2 {
		t.Errorf("Layout.Gap = %d, want 2", cfg.Layout.Gap)
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}
}

func TestLoadDefaultPathMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Widget.DragOpacity != Default().Widget.DragOpacity {
		t.Error("missing default file should yield defaults")
	}
}

func TestDirXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}
	if want := filepath.Join("/tmp/custom-config", appName); dir != want {
		t.Errorf("Dir() = %q, want %q", dir, want)
	}
}

func TestDirDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".config", appName); dir != want {
		t.Errorf("Dir() = %q, want %q", dir, want)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Default()); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode(Encode()) error = %v\n%s", err, buf.String())
	}
	if got.Board.TileWidth != Default().Board.TileWidth || got.Theme != Default().Theme {
		t.Errorf("round trip = %+v", got)
	}
}
