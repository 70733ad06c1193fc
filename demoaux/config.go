// Package demoaux is the windowed harness shared by the demo programs:
// configuration, the GLFW render loop, input collection, FPS reporting,
// logging and file watching for hot reload.
package demoaux

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/soypat/geometry/ms3"
	"gopkg.in/yaml.v3"
)

// Config controls the demo window and the common demo parameters.
type Config struct {
	Width, Height int
	Title         string
	// VSync synchronizes buffer swaps with the display refresh rate.
	// When disabled the loop runs unthrottled.
	VSync bool
	// ShowFPS appends the frame rate to the window title once per second.
	ShowFPS bool
	Seed    int64
	// Count is the number of shapes generated by demos that take one.
	Count int
	// Image is the texture file loaded by textured demos.
	Image string
	// Watch reloads Image when it changes on disk.
	Watch    bool
	LogLevel string
	// Timeout closes the window after the given duration. Zero runs until closed.
	Timeout time.Duration
	// Background is the color the framebuffer is cleared to each frame.
	Background ms3.Vec
	// CaptureCursor hides and locks the cursor for mouse look.
	CaptureCursor bool
}

// DefaultConfig returns an 800x600 window configuration with vsync enabled.
func DefaultConfig(title string) Config {
	return Config{
		Width:      800,
		Height:     600,
		Title:      title,
		VSync:      true,
		Seed:       1,
		LogLevel:   "info",
		Background: ms3.Vec{X: 0.1, Y: 0.1, Z: 0.1},
	}
}

// Validate checks the configuration is usable to open a window.
func (cfg Config) Validate() error {
	switch {
	case cfg.Width <= 0 || cfg.Height <= 0:
		return fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	case cfg.Count < 0:
		return fmt.Errorf("negative count %d", cfg.Count)
	case cfg.Timeout < 0:
		return errors.New("negative timeout")
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return err
	}
	return nil
}

// fileConfig mirrors the flag-settable fields of [Config]. Nil fields were absent from the file.
type fileConfig struct {
	Width    *int    `toml:"width" yaml:"width"`
	Height   *int    `toml:"height" yaml:"height"`
	Title    *string `toml:"title" yaml:"title"`
	VSync    *bool   `toml:"vsync" yaml:"vsync"`
	ShowFPS  *bool   `toml:"fps" yaml:"fps"`
	Seed     *int64  `toml:"seed" yaml:"seed"`
	Count    *int    `toml:"count" yaml:"count"`
	Image    *string `toml:"image" yaml:"image"`
	Watch    *bool   `toml:"watch" yaml:"watch"`
	LogLevel *string `toml:"log_level" yaml:"log_level"`
	Timeout  *string `toml:"timeout" yaml:"timeout"`
}

// ParseFlags registers the configuration flags on fs with defaults taken from cfg
// and parses args. When -config names a TOML or YAML file its values are applied
// first and flags given explicitly in args override them.
func ParseFlags(fs *flag.FlagSet, args []string, cfg Config) (Config, error) {
	var configPath string
	fs.StringVar(&configPath, "config", "", "TOML or YAML configuration file")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "window width in screen coordinates")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "window height in screen coordinates")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "window title")
	fs.BoolVar(&cfg.VSync, "vsync", cfg.VSync, "synchronize buffer swaps with display refresh")
	fs.BoolVar(&cfg.ShowFPS, "fps", cfg.ShowFPS, "show frame rate in window title")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random number generator seed")
	fs.IntVar(&cfg.Count, "n", cfg.Count, "number of shapes to generate")
	fs.StringVar(&cfg.Image, "image", cfg.Image, "texture image file")
	fs.BoolVar(&cfg.Watch, "watch", cfg.Watch, "reload texture image on change")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "close window after duration, 0 disables")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if configPath != "" {
		set := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		fc, err := readConfigFile(configPath)
		if err != nil {
			return cfg, err
		}
		if err := fc.apply(&cfg, set); err != nil {
			return cfg, fmt.Errorf("%s: %w", configPath, err)
		}
	}
	return cfg, cfg.Validate()
}

func readConfigFile(path string) (fc fileConfig, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&fc)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&fc)
		if errors.Is(err, io.EOF) {
			err = nil // Empty document.
		}
	default:
		return fc, fmt.Errorf("unsupported config file extension %q", ext)
	}
	if err != nil {
		return fc, fmt.Errorf("decoding %s: %w", path, err)
	}
	return fc, nil
}

// apply copies file values into cfg for every field whose flag is not in set.
func (fc fileConfig) apply(cfg *Config, set map[string]bool) error {
	setIf(&cfg.Width, fc.Width, !set["width"])
	setIf(&cfg.Height, fc.Height, !set["height"])
	setIf(&cfg.Title, fc.Title, !set["title"])
	setIf(&cfg.VSync, fc.VSync, !set["vsync"])
	setIf(&cfg.ShowFPS, fc.ShowFPS, !set["fps"])
	setIf(&cfg.Seed, fc.Seed, !set["seed"])
	setIf(&cfg.Count, fc.Count, !set["n"])
	setIf(&cfg.Image, fc.Image, !set["image"])
	setIf(&cfg.Watch, fc.Watch, !set["watch"])
	setIf(&cfg.LogLevel, fc.LogLevel, !set["log-level"])
	if fc.Timeout != nil && !set["timeout"] {
		d, err := time.ParseDuration(*fc.Timeout)
		if err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
		cfg.Timeout = d
	}
	return nil
}

func setIf[T any](dst *T, v *T, ok bool) {
	if v != nil && ok {
		*dst = *v
	}
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return lvl, fmt.Errorf("invalid log level %q", s)
	}
	return lvl, nil
}
