package micro

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Screenshot queues a labeled capture of the current frame. The PNG is
// written to ScreenshotDir at the end of the next Draw, named
// "<timestamp>_<label>.png". Safe to call from Update or Draw.
func (r *runner) Screenshot(label string) {
	r.screenshotQueue = append(r.screenshotQueue, label)
}

// flushScreenshots writes every queued label from the last rendered frame.
func (r *runner) flushScreenshots() {
	if len(r.screenshotQueue) == 0 {
		return
	}
	stamp := time.Now().Format("20060102_150405")
	for _, label := range r.screenshotQueue {
		path := filepath.Join(r.cfg.ScreenshotDir, stamp+"_"+sanitizeLabel(label)+".png")
		if err := writePNG(path, r.rgba); err != nil {
			Logger().Warn("micro: screenshot", "label", label, "err", err)
		}
	}
	r.screenshotQueue = r.screenshotQueue[:0]
}

// SavePNG renders fb through pal and writes it to path, creating parent
// directories as needed.
func SavePNG(path string, fb *FrameBuffer, pal Palette, bg color.RGBA) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("micro: mkdir %s: %w", dir, err)
		}
	}
	return writePNG(path, RenderImage(fb, pal, bg))
}

func writePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
