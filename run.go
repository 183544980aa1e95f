package micro

import (
	"errors"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Frame is passed to Game.Update once per tick.
type Frame struct {
	// DT is the time since the previous update in seconds.
	DT float64
	// Count is the number of updates before this one.
	Count uint64
	// Input holds the polled controls.
	Input *InputState
}

// Game is implemented by programs driven by Run. Update advances the
// simulation; Draw renders into a buffer that has already been cleared.
type Game interface {
	Update(f *Frame) error
	Draw(fb *FrameBuffer)
}

// StackGame adapts a SequenceStack to Game: the top sequence is advanced and
// drawn each frame, and an empty stack ends the run.
type StackGame struct {
	Stack *SequenceStack
}

// ErrStackEmpty ends Run when a StackGame has no sequence left.
var ErrStackEmpty = errors.New("micro: sequence stack is empty")

// Update advances the top sequence.
func (g StackGame) Update(f *Frame) error {
	if g.Stack == nil || g.Stack.Len() == 0 {
		return ErrStackEmpty
	}
	g.Stack.Update(f.DT)
	return nil
}

// Draw draws the top sequence.
func (g StackGame) Draw(fb *FrameBuffer) {
	if g.Stack != nil {
		g.Stack.Draw(fb)
	}
}

// runner implements ebiten.Game around a micro Game.
type runner struct {
	game    Game
	cfg     RunConfig
	palette Palette
	bg      color.RGBA

	fb     *FrameBuffer
	rgba   *image.RGBA
	canvas *ebiten.Image
	input  *InputState

	count     uint64
	last      time.Time
	lastDraw  time.Duration
	lastFrame time.Duration

	screenshotQueue []string
}

func newRunner(game Game, cfg RunConfig) (*runner, error) {
	cfg = cfg.withDefaults()
	pal, err := cfg.ResolvePalette()
	if err != nil {
		return nil, err
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}
	fb := NewFrameBuffer(cfg.Width, cfg.Height)
	return &runner{
		game:    game,
		cfg:     cfg,
		palette: pal,
		bg:      bg,
		fb:      fb,
		rgba:    image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
		input:   NewInputState(),
	}, nil
}

// Run opens a window and drives game until it returns an error or the
// window is closed. A StackGame emptying its stack ends the run cleanly.
func Run(game Game, cfg RunConfig) error {
	r, err := newRunner(game, cfg)
	if err != nil {
		return err
	}
	cfg = r.cfg

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	if cfg.FrameRateLimit > 0 {
		ebiten.SetTPS(cfg.FrameRateLimit)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}

	Logger().Info("micro: run",
		"title", cfg.Title, "width", cfg.Width, "height", cfg.Height,
		"fpsLimit", cfg.FrameRateLimit, "palette", len(r.palette))

	err = ebiten.RunGame(r)
	if errors.Is(err, ErrStackEmpty) {
		return nil
	}
	return err
}

func (r *runner) Update() error {
	now := time.Now()
	dt := 1.0 / 60
	if tps := ebiten.TPS(); tps > 0 {
		dt = 1.0 / float64(tps)
	} else if !r.last.IsZero() {
		dt = now.Sub(r.last).Seconds()
	}
	r.last = now

	w, h := ebiten.WindowSize()
	r.input.Poll(float64(w)/float64(r.cfg.Width), float64(h)/float64(r.cfg.Height))

	if r.cfg.TestRunner != nil {
		r.cfg.TestRunner.step(r.input, r.Screenshot)
	}

	err := r.game.Update(&Frame{DT: dt, Count: r.count, Input: r.input})
	r.count++
	r.lastFrame = time.Since(now)
	return err
}

func (r *runner) Draw(screen *ebiten.Image) {
	t0 := time.Now()

	r.fb.Clear()
	r.game.Draw(r.fb)
	if r.cfg.ShowFPS {
		DrawFPS(r.fb, DefaultGlyphCache(), ColorIndex(len(r.palette)-1))
	}
	RenderInto(r.rgba, r.fb, r.palette, r.bg)

	if r.canvas == nil {
		r.canvas = ebiten.NewImage(r.cfg.Width, r.cfg.Height)
	}
	r.canvas.WritePixels(r.rgba.Pix)

	sb := screen.Bounds()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Scale(float64(sb.Dx())/float64(r.cfg.Width), float64(sb.Dy())/float64(r.cfg.Height))
	screen.Fill(r.bg)
	screen.DrawImage(r.canvas, op)

	r.lastDraw = time.Since(t0)
	if r.cfg.Debug {
		r.debugLog()
	}
	r.flushScreenshots()
}

func (r *runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
