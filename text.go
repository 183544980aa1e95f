package micro

import (
	"fmt"
	"image"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// GlyphBaseSize is the pixel height glyph bitmaps are rendered at before
// being scaled to the requested font size.
const GlyphBaseSize = 24

// DefaultCharset is the set of characters cached by DefaultGlyphCache.
const DefaultCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789" +
	"!@#$%^&*()_+-=\\|;:',<.>/?[{]}\""

// Glyph is a 1-bit bitmap of a single character.
type Glyph struct {
	Width  int
	Height int
	Bits   []bool // row-major, len = Width*Height
}

// NewGlyph builds a glyph from rows of text where '#' marks an inked pixel.
// All rows must have the same length.
func NewGlyph(rows ...string) Glyph {
	if len(rows) == 0 {
		return Glyph{}
	}
	g := Glyph{Width: len(rows[0]), Height: len(rows)}
	g.Bits = make([]bool, g.Width*g.Height)
	for y, row := range rows {
		for x := 0; x < g.Width && x < len(row); x++ {
			g.Bits[x+y*g.Width] = row[x] == '#'
		}
	}
	return g
}

// Bit reports whether the pixel at (x, y) is inked.
func (g Glyph) Bit(x, y int) bool {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return false
	}
	return g.Bits[x+y*g.Width]
}

// GlyphSource renders a character into a 1-bit bitmap that is size pixels
// tall. ok is false when the source has no glyph for r.
type GlyphSource interface {
	Glyph(r rune, size int) (g Glyph, ok bool)
}

// FontGlyphSource renders glyphs from an OpenType/TrueType font.
// Faces are created lazily per size and kept for reuse.
type FontGlyphSource struct {
	font  *opentype.Font
	faces map[int]font.Face
}

// NewFontGlyphSource parses TTF/OTF data into a glyph source.
func NewFontGlyphSource(ttf []byte) (*FontGlyphSource, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("micro: parse font: %w", err)
	}
	return &FontGlyphSource{font: f, faces: make(map[int]font.Face)}, nil
}

// DefaultFontGlyphSource returns a source backed by the Go Regular font.
func DefaultFontGlyphSource() (*FontGlyphSource, error) {
	return NewFontGlyphSource(goregular.TTF)
}

func (s *FontGlyphSource) face(size int) (font.Face, error) {
	if f, ok := s.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	s.faces[size] = f
	return f, nil
}

// Glyph renders r with its ink box flush left and the em box top at row 0.
// Pixels with coverage above one half become set bits.
func (s *FontGlyphSource) Glyph(r rune, size int) (Glyph, bool) {
	if size <= 0 {
		return Glyph{}, false
	}
	var buf sfnt.Buffer
	if idx, err := s.font.GlyphIndex(&buf, r); err != nil || idx == 0 {
		return Glyph{}, false
	}
	face, err := s.face(size)
	if err != nil {
		Logger().Warn("micro: glyph face", "size", size, "err", err)
		return Glyph{}, false
	}
	bounds, advance, ok := face.GlyphBounds(r)
	if !ok {
		return Glyph{}, false
	}

	minX := bounds.Min.X.Floor()
	width := bounds.Max.X.Ceil() - minX
	if width <= 0 {
		minX = 0
		width = advance.Ceil()
	}
	if width <= 0 {
		return Glyph{}, false
	}

	dst := image.NewAlpha(image.Rect(0, 0, width, size))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(-minX), Y: face.Metrics().Ascent},
	}
	d.DrawString(string(r))

	g := Glyph{Width: width, Height: size, Bits: make([]bool, width*size)}
	for y := 0; y < size; y++ {
		for x := 0; x < width; x++ {
			g.Bits[x+y*width] = dst.AlphaAt(x, y).A > 128
		}
	}
	return g, true
}

// GlyphCache maps characters to prerendered glyph bitmaps. A nil or empty
// cache is valid: every character is treated as unknown.
type GlyphCache struct {
	glyphs map[rune]Glyph
}

// NewGlyphCache renders every rune of charset from src at GlyphBaseSize.
// Runes the source cannot render are left out and later skipped by DrawText.
func NewGlyphCache(src GlyphSource, charset string) *GlyphCache {
	gc := &GlyphCache{glyphs: make(map[rune]Glyph, len(charset))}
	if src == nil {
		return gc
	}
	for _, r := range charset {
		if g, ok := src.Glyph(r, GlyphBaseSize); ok && g.Width > 0 && g.Height > 0 {
			gc.glyphs[r] = g
		}
	}
	return gc
}

// Add stores g for r, replacing any existing glyph. Empty glyphs are ignored.
func (gc *GlyphCache) Add(r rune, g Glyph) {
	if g.Width <= 0 || g.Height <= 0 || len(g.Bits) < g.Width*g.Height {
		return
	}
	if gc.glyphs == nil {
		gc.glyphs = make(map[rune]Glyph)
	}
	gc.glyphs[r] = g
}

// Glyph returns the cached bitmap for r.
func (gc *GlyphCache) Glyph(r rune) (Glyph, bool) {
	if gc == nil {
		return Glyph{}, false
	}
	g, ok := gc.glyphs[r]
	return g, ok
}

// Len returns the number of cached glyphs.
func (gc *GlyphCache) Len() int {
	if gc == nil {
		return 0
	}
	return len(gc.glyphs)
}

var (
	defaultGlyphsOnce sync.Once
	defaultGlyphs     *GlyphCache
)

// DefaultGlyphCache returns the process-wide cache of DefaultCharset rendered
// from the Go Regular font. It is built on first use. If the font cannot be
// loaded the cache is empty and text draws nothing.
func DefaultGlyphCache() *GlyphCache {
	defaultGlyphsOnce.Do(func() {
		src, err := DefaultFontGlyphSource()
		if err != nil {
			Logger().Warn("micro: default glyph source unavailable", "err", err)
			defaultGlyphs = &GlyphCache{}
			return
		}
		defaultGlyphs = NewGlyphCache(src, DefaultCharset)
	})
	return defaultGlyphs
}

// ScaledWidth returns the width of g drawn fontSize pixels tall, preserving
// its aspect ratio: ceil(fontSize * Width / Height).
func (g Glyph) ScaledWidth(fontSize int) int {
	if g.Height <= 0 || fontSize <= 0 {
		return 0
	}
	return ceilDiv(fontSize*g.Width, g.Height)
}

// GlyphGap returns the horizontal gap inserted after every glyph.
func GlyphGap(fontSize int) int { return ceilDiv(fontSize, 8) }

// WordGap returns the horizontal space inserted between words.
func WordGap(fontSize int) int { return ceilDiv(fontSize, 2) }

// Advance returns how far the pen moves after drawing r at fontSize.
// Unknown characters advance by zero.
func (gc *GlyphCache) Advance(r rune, fontSize int) int {
	g, ok := gc.Glyph(r)
	if !ok {
		return 0
	}
	return g.ScaledWidth(fontSize) + GlyphGap(fontSize)
}

// Measure returns the width of s laid out on a single line.
func (gc *GlyphCache) Measure(s string, fontSize int) int {
	if fontSize <= 0 {
		return 0
	}
	width := 0
	words := strings.Split(s, " ")
	for i, word := range words {
		for _, r := range word {
			width += gc.Advance(r, fontSize)
		}
		if i < len(words)-1 {
			width += WordGap(fontSize)
		}
	}
	return width
}

// DrawText draws s with its top-left at (x, y) using glyphs from cache,
// scaled to fontSize pixels tall.
//
// w and h bound the text box; 0 means unbounded. A word that would reach
// x+w moves to a new line, but only if the current line already has content,
// so a single over-wide word never wraps forever. Once (line+1)*fontSize
// exceeds h, glyphs on that line and below are skipped whole.
// Characters missing from the cache take no space and draw nothing.
func (fb *FrameBuffer) DrawText(cache *GlyphCache, s string, x, y, w, h int, c ColorIndex, fontSize int) {
	if cache.Len() == 0 || fontSize <= 0 {
		return
	}
	gap := GlyphGap(fontSize)
	curX := x
	line := 0

	words := strings.Split(s, " ")
	for wi, word := range words {
		wordWidth := 0
		for _, r := range word {
			wordWidth += cache.Advance(r, fontSize)
		}

		if w != 0 && curX+wordWidth >= x+w && curX > x {
			curX = x
			line++
		}

		for _, r := range word {
			g, ok := cache.Glyph(r)
			if !ok {
				continue
			}
			if h != 0 && (line+1)*fontSize > h {
				continue
			}
			sw := g.ScaledWidth(fontSize)
			fb.drawGlyph(g, curX, y+line*fontSize, sw, fontSize, c)
			curX += sw + gap
		}

		if wi < len(words)-1 {
			curX += WordGap(fontSize)
		}
	}
}

// drawGlyph draws g scaled to sw x sh with nearest-neighbor sampling.
func (fb *FrameBuffer) drawGlyph(g Glyph, x, y, sw, sh int, c ColorIndex) {
	for row := 0; row < sh; row++ {
		by := row * g.Height / sh
		for col := 0; col < sw; col++ {
			bx := col * g.Width / sw
			if g.Bit(bx, by) {
				fb.Set(x+col, y+row, c)
			}
		}
	}
}
