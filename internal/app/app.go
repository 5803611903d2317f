//go:build ebiten

package app

import (
	"time"

	"lifeca/internal/core"
	"lifeca/internal/life"
	"lifeca/internal/render"
	"lifeca/internal/rules"
	"lifeca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the pixel width of the parameter panel.
const HUDWidth = 240

var ruleKeys = map[ebiten.Key]rules.ID{
	ebiten.KeyDigit1: rules.Conway,
	ebiten.KeyDigit2: rules.DayAndNight,
	ebiten.KeyDigit3: rules.WalledCities,
	ebiten.KeyDigit4: rules.CoralGrowth,
}

// Game adapts a life engine to the ebiten.Game interface.
type Game struct {
	engine  *life.Engine
	painter *render.GridPainter
	palette render.Palette
	hud     *ui.HUD
	overlay *ui.Overlay
	clock   *core.DeltaClock
}

// New constructs a Game for the provided engine.
func New(engine *life.Engine, palette render.Palette) *Game {
	size := engine.Size()
	return &Game{
		engine:  engine,
		painter: render.NewGridPainter(size.W, size.H),
		palette: palette,
		hud:     ui.NewHUD(engine, HUDWidth),
		overlay: ui.NewOverlay(engine.View(), engine.CellSize()),
		clock:   core.NewDeltaClock(),
	}
}

// WindowSize returns the outer window size for the board plus the panel.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}

// Update polls input, forwards it to the engine and advances by the frame's
// elapsed time.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.hud.Update(g.boardWidth())
	g.overlay.Update()

	in := g.poll()
	g.engine.Update(g.clock.Tick(), Events(in, time.Now().UnixNano())...)
	return nil
}

func (g *Game) poll() Input {
	in := Input{
		Toggle: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Faster: inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd),
		Slower: inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract),
		Clear:  inpututil.IsKeyJustPressed(ebiten.KeyC),
		Reseed: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Step:   inpututil.IsKeyJustPressed(ebiten.KeyN),
	}
	for key, id := range ruleKeys {
		if inpututil.IsKeyJustPressed(key) {
			in.Rule = id
		}
	}

	mx, my := ebiten.CursorPosition()
	if g.hud.Contains(mx, my) {
		return in
	}
	in.CursorX, in.CursorY = float64(mx), float64(my)
	in.PaintAlive = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.PaintDead = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	return in
}

// Draw renders the board, the overlay and the panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.engine.View(), g.palette, g.engine.CellSize())
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.boardWidth(), g.engine.CellSize())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.engine.Size()
	return g.boardWidth() + g.hud.Width(), int(float64(s.H) * g.engine.CellSize())
}

func (g *Game) boardWidth() int {
	return int(float64(g.engine.Size().W) * g.engine.CellSize())
}
