package termview

import (
	"context"
	"fmt"
	"time"

	"godforce-ca/internal/app"
	"godforce-ca/internal/core"
	"godforce-ca/internal/director"
	"godforce-ca/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Viewer drives a Driver at a fixed frame rate and draws the selected layer.
type Viewer struct {
	screen   tcell.Screen
	driver   *app.Driver
	director *director.Director
	view     render.View
	step     *core.FixedStep
	layer    int
	seed     int64
}

// New constructs a Viewer. The screen must already be initialized. dir may
// be nil.
func New(screen tcell.Screen, driver *app.Driver, dir *director.Director) *Viewer {
	cfg := driver.World().Config()
	view, _, _ := app.Scene(cfg)
	return &Viewer{
		screen:   screen,
		driver:   driver,
		director: dir,
		view:     view,
		step:     core.NewFixedStep(cfg.Schedule.TPS),
		seed:     cfg.Seed,
	}
}

// Layer returns the displayed layer.
func (v *Viewer) Layer() int { return v.layer }

// Run loops until ctx is done or the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(v.step.Interval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !v.HandleEvent(ctx, ev) {
				return nil
			}
		case <-ticker.C:
			v.Frame()
		}
	}
}

// Frame advances the driver once and redraws.
func (v *Viewer) Frame() {
	v.driver.Frame()
	w := v.driver.World()
	DrawLayer(v.screen, w.Grid(), v.layer, v.view, v.driver.Elapsed())
	DrawStatus(v.screen, fmt.Sprintf("layer %d/%d  %s", v.layer+1, w.Grid().Depth, app.Status(v.driver)))
	v.screen.Show()
}

// HandleEvent applies a key or resize event and reports whether the loop
// should continue.
func (v *Viewer) HandleEvent(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		depth := v.driver.World().Grid().Depth
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			v.driver.TogglePause()
		case 'n':
			v.driver.StepOnce()
		case 'r':
			v.driver.World().Reset(v.seed)
		case 'b':
			v.driver.World().RandomBurst()
		case 'g':
			if v.director != nil {
				v.director.Trigger(ctx)
			}
		case '[':
			v.layer = (v.layer - 1 + depth) % depth
		case ']':
			v.layer = (v.layer + 1) % depth
		}
	case *tcell.EventResize:
		v.screen.Clear()
		v.screen.Sync()
	}
	return true
}
