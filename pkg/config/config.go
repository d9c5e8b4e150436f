// Package config loads dragbox settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/dragbox/config.toml, falling back to
// ~/.config/dragbox/config.toml. Every key is optional; missing keys keep
// their defaults:
//
//	[widget]
//	drag_opacity = 0.1
//	legacy_touch_exclusion = false
//
//	[layout]
//	wrap = true
//	gap = 1
//
//	[theme]
//	foreground = "255"
//	border = "36"
//	accent = "220"
//
//	[board]
//	tiles = ["alpha", "beta", "gamma", "delta"]
//	tile_width = 10
package config

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/dragbox/pkg/errors"
	"github.com/matzehuels/dragbox/pkg/render/screen"
	"github.com/matzehuels/dragbox/pkg/widget"
)

const (
	appName  = "dragbox"
	fileName = "config.toml"
)

// Config is the full set of user settings.
type Config struct {
	Widget WidgetConfig `toml:"widget"`
	Layout LayoutConfig `toml:"layout"`
	Theme  ThemeConfig  `toml:"theme"`
	Board  BoardConfig  `toml:"board"`
}

// WidgetConfig tunes drag behaviour.
type WidgetConfig struct {
	DragOpacity          float64 `toml:"drag_opacity"`
	LegacyTouchExclusion bool    `toml:"legacy_touch_exclusion"`
}

// LayoutConfig tunes container layout.
type LayoutConfig struct {
	Wrap bool `toml:"wrap"`
	Gap  int  `toml:"gap"`
}

// ThemeConfig holds terminal colors: ANSI numbers ("36") or hex ("#00afaf").
type ThemeConfig struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Border     string `toml:"border"`
	Accent     string `toml:"accent"`
}

// BoardConfig describes the tiles of the interactive demo.
type BoardConfig struct {
	Tiles     []string `toml:"tiles"`
	TileWidth int      `toml:"tile_width"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Widget: WidgetConfig{DragOpacity: widget.DefaultDragOpacity},
		Layout: LayoutConfig{Wrap: true, Gap: 1},
		Theme:  ThemeConfig{Foreground: "255", Border: "36", Accent: "220"},
		Board: BoardConfig{
			Tiles:     []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta"},
			TileWidth: 11,
		},
	}
}

// Dir returns the config directory using the XDG standard (~/.config/dragbox/).
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// DefaultPath returns the path of the user's config file.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads the config at path on top of the defaults. An empty path means
// [DefaultPath], and a missing default file yields the defaults. An explicit
// path that does not exist is an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		if os.IsNotExist(err) {
			return Config{}, errors.New(errors.ErrCodeFileNotFound, "config file %s not found", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open %s", path)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	return cfg, nil
}

// Decode parses TOML from r on top of the defaults and validates the result.
// Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

var colorRe = regexp.MustCompile(`^(#[0-9a-fA-F]{6}|#[0-9a-fA-F]{3}|[0-9]{1,3})$`)

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Widget.DragOpacity <= 0 || c.Widget.DragOpacity > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "widget.drag_opacity must be in (0, 1], got %g", c.Widget.DragOpacity)
	}
	if c.Layout.Gap < 0 || c.Layout.Gap > 10 {
		return errors.New(errors.ErrCodeInvalidConfig, "layout.gap must be between 0 and 10, got %d", c.Layout.Gap)
	}
	for name, v := range map[string]string{
		"foreground": c.Theme.Foreground,
		"background": c.Theme.Background,
		"border":     c.Theme.Border,
		"accent":     c.Theme.Accent,
	} {
		if v != "" && !colorRe.MatchString(v) {
			return errors.New(errors.ErrCodeInvalidConfig, "theme.%s: %q is not an ANSI or hex color", name, v)
		}
	}
	if len(c.Board.Tiles) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "board.tiles must not be empty")
	}
	for i, label := range c.Board.Tiles {
		if strings.TrimSpace(label) == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "board.tiles[%d] is blank", i)
		}
	}
	if c.Board.TileWidth < 3 {
		return errors.New(errors.ErrCodeInvalidConfig, "board.tile_width must be at least 3, got %d", c.Board.TileWidth)
	}
	return nil
}

// WidgetOptions returns the widget options described by c.
func (c Config) WidgetOptions(logger *log.Logger) widget.Options {
	return widget.Options{
		Logger:               logger,
		DragOpacity:          c.Widget.DragOpacity,
		LegacyTouchExclusion: c.Widget.LegacyTouchExclusion,
		Wrap:                 c.Layout.Wrap,
		Gap:                  c.Layout.Gap,
	}
}

// ScreenTheme returns the renderer theme described by c.
func (c Config) ScreenTheme() screen.Theme {
	return screen.Theme{
		Foreground: c.Theme.Foreground,
		Background: c.Theme.Background,
		Border:     c.Theme.Border,
	}
}
