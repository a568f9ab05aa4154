//go:build ebiten

package app

import (
	"context"
	"image"

	"godforce-ca/internal/director"
	"godforce-ca/internal/render"
	"godforce-ca/internal/sims/godforce"
	"godforce-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the driven godforce world to the ebiten.Game interface.
type Game struct {
	ctx      context.Context
	driver   *Driver
	world    *godforce.World
	director *director.Director
	painter  *render.Painter
	hud      *ui.HUD
	overlay  *ui.Overlay
	cursor   render.Cursor

	width    int
	height   int
	hudWidth int
	seed     int64
}

// New constructs a Game. dir may be nil, in which case the G key does
// nothing.
func New(ctx context.Context, driver *Driver, dir *director.Director, hudWidth int) *Game {
	w := driver.World()
	cfg := w.Config()
	view, vig, pierce := Scene(cfg)
	return &Game{
		ctx:      ctx,
		driver:   driver,
		world:    w,
		director: dir,
		painter:  render.NewPainter(view, vig, pierce, cfg.Display.FOVDegrees),
		hud:      ui.NewHUD(w, hudWidth),
		overlay:  ui.NewOverlay(w, 4),
		cursor:   render.Cursor{Follow: cfg.Display.CursorFollow},
		width:    cfg.Display.Width,
		height:   cfg.Display.Height,
		hudWidth: hudWidth,
		seed:     cfg.Seed,
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if err := g.ctx.Err(); err != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.driver.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.driver.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.world.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.world.RandomBurst()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) && g.director != nil {
		g.director.Trigger(g.ctx)
	}

	g.overlay.Update()
	g.hud.Update(g.width)
	g.driver.Frame()
	g.trackCursor()
	g.hud.SetStatus(Status(g.driver))
	return nil
}

// trackCursor eases the 3D cursor toward the mouse projected onto the
// viewport plane. The cursor is inactive while the mouse is outside the
// simulation area.
func (g *Game) trackCursor() {
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= g.width || my >= g.height {
		g.cursor.Active = false
		return
	}
	t := g.driver.Elapsed()
	cam := g.painter.Camera(t, g.width, g.height)
	plane := float32(g.painter.View.ViewportCenter(t).Z)
	p := cam.Unproject(float32(mx), float32(my), plane)
	g.cursor.Track(p.Vec3())
	g.cursor.Active = true
}

// Draw renders the lattice, the overlays and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	sim := screen.SubImage(image.Rect(0, 0, g.width, g.height)).(*ebiten.Image)
	g.painter.Draw(sim, g.world.Grid(), g.driver.Elapsed(), &g.cursor)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.width, g.height)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width + g.hudWidth, g.height
}
