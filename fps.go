package micro

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// fpsTextSize is the glyph height of the FPS overlay.
const fpsTextSize = 8

// DrawFPS writes the measured frame rate into fb's top-left corner.
func DrawFPS(fb *FrameBuffer, cache *GlyphCache, c ColorIndex) {
	DrawFPSValue(fb, cache, c, ebiten.ActualFPS())
}

// DrawFPSValue is DrawFPS with an explicit value.
func DrawFPSValue(fb *FrameBuffer, cache *GlyphCache, c ColorIndex, fps float64) {
	s := fmt.Sprintf("%.0f", fps)
	w := cache.Measure(s, fpsTextSize)
	fb.DrawRect(0, 0, w+2, fpsTextSize+2, Unset)
	fb.DrawText(cache, s, 1, 1, w+1, fpsTextSize, c, fpsTextSize)
}
