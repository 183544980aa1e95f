package micro

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette maps the small integers stored in a FrameBuffer to display colors.
// micro never mutates a palette it is given.
type Palette []color.RGBA

// StockPalettes holds the built-in palettes by name, as hex strings.
var StockPalettes = map[string][]string{
	"bw": {
		"#000000", "#111111", "#222222", "#333333",
		"#444444", "#555555", "#666666", "#777777",
		"#888888", "#999999", "#AAAAAA", "#BBBBBB",
		"#CCCCCC", "#DDDDDD", "#EEEEEE", "#FFFFFF",
	},
}

// DefaultPaletteName is the stock palette used when none is configured.
const DefaultPaletteName = "bw"

// ParsePalette builds a palette from "#rrggbb" strings.
func ParsePalette(hex ...string) (Palette, error) {
	p := make(Palette, 0, len(hex))
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("micro: palette entry %d %q: %w", i, h, err)
		}
		r, g, b := c.RGB255()
		p = append(p, color.RGBA{R: r, G: g, B: b, A: 0xff})
	}
	return p, nil
}

// StockPalette returns a copy of the named stock palette.
func StockPalette(name string) (Palette, error) {
	hex, ok := StockPalettes[name]
	if !ok {
		return nil, fmt.Errorf("micro: unknown stock palette %q", name)
	}
	return ParsePalette(hex...)
}

// DefaultPalette returns the 16-step greyscale stock palette.
func DefaultPalette() Palette {
	p, err := StockPalette(DefaultPaletteName)
	if err != nil {
		panic(err) // stock data is static
	}
	return p
}

// Color returns the color for index i. Unset and out-of-range indices are
// fully transparent.
func (p Palette) Color(i ColorIndex) color.RGBA {
	if i < 0 || int(i) >= len(p) {
		return color.RGBA{}
	}
	return p[i]
}

// Nearest returns the index of the palette entry perceptually closest to c
// (CIE L*a*b* distance). An empty palette returns Unset.
func (p Palette) Nearest(c color.Color) ColorIndex {
	if len(p) == 0 {
		return Unset
	}
	want, _ := colorful.MakeColor(c)
	best, bestDist := Unset, math.MaxFloat64
	for i, pc := range p {
		have, _ := colorful.MakeColor(pc)
		if d := want.DistanceLab(have); d < bestDist {
			best, bestDist = ColorIndex(i), d
		}
	}
	return best
}
