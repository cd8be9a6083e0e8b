// Package game hosts the splash screen on top of the application content
// inside an ebiten game loop.
package game

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/splash/internal/config"
	"github.com/iburimskiy/splash/internal/host"
	"github.com/iburimskiy/splash/internal/palette"
	"github.com/iburimskiy/splash/internal/render"
	"github.com/iburimskiy/splash/internal/splash"
)

type Options struct {
	Debug bool
	// Cue, if non-nil, plays when the ring collapses.
	Cue splash.Player
}

type Game struct {
	splash  *splash.Layer
	host    *host.Controller
	content *ebitenui.UI

	width, height int
	quit          bool
	debug         bool

	// input edge detection
	prevKey map[ebiten.Key]bool
}

func NewGame(pal *palette.Palette, opts Options) *Game {
	seq := splash.New(pal.Colors())
	g := &Game{
		splash:  splash.NewLayer(seq, opts.Cue),
		host:    host.New(seq, config.DataReadyDelay),
		debug:   opts.Debug,
		prevKey: map[ebiten.Key]bool{},
	}
	g.content = newContentUI(g)
	return g
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) || g.quit {
		return ebiten.Termination
	}

	dt := host.TickDuration(ebiten.TPS())

	g.host.Show()
	g.host.Advance(dt)
	g.splash.Sequencer().Update(dt)

	// The content only takes input once nothing covers it.
	if g.splash.Done() {
		g.content.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.content.Draw(screen)

	g.splash.Draw(render.NewCanvas(screen))

	if g.debug {
		msg := fmt.Sprintf("phase: %s  data: %s (ready: %v)  FPS: %.2f",
			g.splash.Sequencer().Phase(), formatDuration(g.host.Elapsed()), g.host.Fired(), ebiten.ActualFPS())
		ebitenutil.DebugPrint(screen, msg)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.splash.Sequencer().Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
