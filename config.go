package micro

import (
	"encoding/json"
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Defaults applied by RunConfig for zero-valued fields.
const (
	DefaultWidth         = 256
	DefaultHeight        = 256
	DefaultWindowWidth   = 1000
	DefaultWindowHeight  = 1000
	DefaultBackground    = "#000000"
	DefaultScreenshotDir = "screenshots"
)

// RunConfig configures Run. Zero values select the defaults above.
type RunConfig struct {
	// Title is the window title.
	Title string `json:"title"`

	// WindowWidth and WindowHeight are the window size in screen pixels.
	WindowWidth  int `json:"windowWidth"`
	WindowHeight int `json:"windowHeight"`

	// Width and Height are the FrameBuffer resolution.
	Width  int `json:"width"`
	Height int `json:"height"`

	// FrameRateLimit caps updates per second. 0 runs one update per
	// displayed frame.
	FrameRateLimit int `json:"frameRateLimit"`

	// Palette names a stock palette. Colors, when non-empty, overrides it
	// with explicit "#rrggbb" entries.
	Palette string   `json:"palette"`
	Colors  []string `json:"colors,omitempty"`

	// Background is the "#rrggbb" color behind Unset pixels.
	Background string `json:"background"`

	// ShowFPS draws the measured frame rate into the buffer's corner.
	ShowFPS bool `json:"showFPS"`

	// Debug logs per-frame timing at debug level.
	Debug bool `json:"debug"`

	// ScreenshotDir receives PNGs queued with Screenshot.
	ScreenshotDir string `json:"screenshotDir"`

	// TestRunner, when set, drives scripted input and screenshots.
	TestRunner *TestRunner `json:"-"`
}

// LoadRunConfig parses a JSON config and applies defaults.
func LoadRunConfig(data []byte) (RunConfig, error) {
	var cfg RunConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("micro: parse run config: %w", err)
	}
	return cfg.withDefaults(), nil
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = "micro"
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.WindowWidth <= 0 {
		c.WindowWidth = DefaultWindowWidth
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = DefaultWindowHeight
	}
	if c.FrameRateLimit < 0 {
		c.FrameRateLimit = 0
	}
	if c.Palette == "" {
		c.Palette = DefaultPaletteName
	}
	if c.Background == "" {
		c.Background = DefaultBackground
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = DefaultScreenshotDir
	}
	return c
}

// ResolvePalette returns the configured palette.
func (c RunConfig) ResolvePalette() (Palette, error) {
	if len(c.Colors) > 0 {
		return ParsePalette(c.Colors...)
	}
	name := c.Palette
	if name == "" {
		name = DefaultPaletteName
	}
	return StockPalette(name)
}

// BackgroundColor parses Background.
func (c RunConfig) BackgroundColor() (color.RGBA, error) {
	hex := c.Background
	if hex == "" {
		hex = DefaultBackground
	}
	col, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("micro: background %q: %w", hex, err)
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
