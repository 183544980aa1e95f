// Package termview presents micro frame buffers in a terminal.
//
// Each terminal cell shows two vertically stacked buffer pixels using the
// upper half block: the foreground color is the top pixel and the
// background color the bottom one. Buffers larger than the terminal are
// downsampled by an integer step so the whole frame stays visible.
package termview

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/rcbc-cs/micro"
)

// HalfBlock is the rune drawn in every cell.
const HalfBlock = '▀'

// Presenter draws FrameBuffers onto a tcell screen.
type Presenter struct {
	screen  tcell.Screen
	palette micro.Palette
	bg      tcell.Color
}

// NewPresenter returns a presenter for an initialized screen. Unset pixels
// show bg.
func NewPresenter(screen tcell.Screen, pal micro.Palette, bg color.RGBA) *Presenter {
	return &Presenter{screen: screen, palette: pal, bg: rgb(bg)}
}

// Step returns the downsampling step used for a w x h buffer on the
// current screen size.
func (p *Presenter) Step(w, h int) int {
	cols, rows := p.screen.Size()
	if cols <= 0 || rows <= 0 {
		return 1
	}
	step := max(ceilDiv(w, cols), ceilDiv(h, rows*2), 1)
	return step
}

// Present draws fb and shows the screen.
func (p *Presenter) Present(fb *micro.FrameBuffer) {
	p.Draw(fb)
	p.screen.Show()
}

// Draw writes fb into the screen's cell buffer without showing it.
func (p *Presenter) Draw(fb *micro.FrameBuffer) {
	cols, rows := p.screen.Size()
	step := p.Step(fb.Width(), fb.Height())

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			x := cx * step
			top := p.color(fb, x, cy*2*step)
			bottom := p.color(fb, x, (cy*2+1)*step)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			p.screen.SetContent(cx, cy, HalfBlock, nil, style)
		}
	}
}

// CellStyle returns the style Draw uses for a cell whose top pixel is top and
// bottom pixel is bottom.
func (p *Presenter) CellStyle(top, bottom micro.ColorIndex) tcell.Style {
	return tcell.StyleDefault.Foreground(p.lookup(top)).Background(p.lookup(bottom))
}

func (p *Presenter) color(fb *micro.FrameBuffer, x, y int) tcell.Color {
	c, ok := fb.At(x, y)
	if !ok {
		return p.bg
	}
	return p.lookup(c)
}

func (p *Presenter) lookup(c micro.ColorIndex) tcell.Color {
	if c == micro.Unset || int(c) >= len(p.palette) {
		return p.bg
	}
	return rgb(p.palette.Color(c))
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
